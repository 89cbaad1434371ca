// Package imager decodes textures into straight-alpha RGBA and writes still (PNG) and
// animated (GIF) images.
//
// Decoding accepts PNG, JPEG, GIF, BMP, TIFF and WebP sources. Animated
// output uses a shared palette across frames, a fixed per-frame delay of
// one second, an infinite loop count and restore-to-background disposal.
package imager
