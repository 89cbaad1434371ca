// Package tfcloader resolves resource identifiers into files of a mod's
// asset tree and loads or re-emits them for a documentation generator:
// textures (single frame or animated) and JSON documents.
//
// The CLI lives in cmd/tfc-loader; this root package exposes the same
// loader as a Go API.
//
// # Import
//
// The module path contains a hyphen but Go package names cannot, so the
// package is named tfcloader:
//
//	import "github.com/hellenic-development/tfc-loader" // package tfcloader
//
// # Quick start
//
//	l, err := tfcloader.Open(tfcloader.Options{
//	    AssetDir:  "../TerraFirmaCraft",
//	    OutputDir: "out/en_us",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_, img, err := l.LoadImage(ctx, "tfc:block/ore/native_copper")
//	ref, err := l.SaveImage(ctx, "tfc:block/ore/native_copper", img)
//	// ref == "../../_images/block_ore_native_copper.png"
//
// # Identifiers
//
// An identifier is "<domain>:<path>" or just "<path>", in which case the
// domain is "tfc". Identifiers must not contain '{' or '['.
//
// # Diagnostics
//
// Pass a [Logger] implementation in [Options.Logger] to receive progress
// messages and diagnostics. Every failed operation is logged once with the
// identifier (and for documents the resource type and root) that caused
// it. A missing document from a domain other than "tfc" is logged as a
// warning; every other failure is logged as an error. A nil Logger silences
// all output.
package tfcloader
