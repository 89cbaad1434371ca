package imager

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/gif"
	"image/png"
	"io"
	"os"

	// Still-image formats a texture may be stored in.
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	xdraw "golang.org/x/image/draw"
)

// Animation policy applied to every GIF written by EncodeGIF.
const (
	FrameDelay    = 100 // 1/100 s units, i.e. 1000 ms per frame
	LoopForever   = 0
	FrameDisposal = gif.DisposalBackground
)

// alphaThreshold is the alpha below which a pixel becomes the GIF's
// transparent index.
const alphaThreshold = 0x80

var (
	// ErrNoFrames is returned when an animation has no base frame.
	ErrNoFrames = errors.New("no frames to encode")
	// ErrFrameSize is returned when animation frames differ in size.
	ErrFrameSize = errors.New("frames differ in size")
)

// Decode reads an image in any registered format and converts it to
// straight-alpha NRGBA with its bounds moved to the origin.
func Decode(r io.Reader) (*image.NRGBA, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return ToNRGBA(src), nil
}

// ToNRGBA returns img as a zero-origin *image.NRGBA, copying pixels when
// needed. Straight-alpha sources are copied exactly, so partly transparent
// pixels keep their color.
func ToNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))

	switch src := img.(type) {
	case *image.NRGBA:
		if b.Min == (image.Point{}) {
			return src
		}
		for y := 0; y < b.Dy(); y++ {
			i := src.PixOffset(b.Min.X, b.Min.Y+y)
			copy(dst.Pix[y*dst.Stride:y*dst.Stride+4*b.Dx()], src.Pix[i:i+4*b.Dx()])
		}
	case *image.Paletted:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
				dst.SetNRGBA(x-b.Min.X, y-b.Min.Y, c)
			}
		}
	default:
		xdraw.Draw(dst, dst.Bounds(), img, b.Min, xdraw.Src)
	}

	return dst
}

// ReadFile opens and decodes the image at path.
func ReadFile(path string) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode(f)
}

// WritePNG encodes img as PNG to path, replacing any existing file.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file %q: %w", path, err)
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to write file %q: %w", path, err)
	}
	return f.Close()
}

// WriteGIF encodes frames as an animated GIF to path, replacing any
// existing file.
func WriteGIF(path string, frames []image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file %q: %w", path, err)
	}

	if err := EncodeGIF(f, frames); err != nil {
		f.Close()
		return fmt.Errorf("failed to write file %q: %w", path, err)
	}
	return f.Close()
}

// EncodeGIF writes frames as a looping animation. The first frame is the
// base frame; all frames must share its size. Every frame is shown for
// FrameDelay and cleared before the next one is drawn.
func EncodeGIF(w io.Writer, frames []image.Image) error {
	if err := ValidateFrames(frames); err != nil {
		return err
	}

	size := frames[0].Bounds().Size()
	pal := buildPalette(frames)
	anim := &gif.GIF{
		Image:     make([]*image.Paletted, 0, len(frames)),
		Delay:     make([]int, 0, len(frames)),
		Disposal:  make([]byte, 0, len(frames)),
		LoopCount: LoopForever,
		Config: image.Config{
			ColorModel: pal,
			Width:      size.X,
			Height:     size.Y,
		},
	}

	for _, frame := range frames {
		anim.Image = append(anim.Image, toPaletted(frame, pal))
		anim.Delay = append(anim.Delay, FrameDelay)
		anim.Disposal = append(anim.Disposal, FrameDisposal)
	}

	return gif.EncodeAll(w, anim)
}

// ValidateFrames checks that frames has a base frame and that every frame
// matches its size.
func ValidateFrames(frames []image.Image) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}

	size := frames[0].Bounds().Size()
	for i, frame := range frames[1:] {
		if got := frame.Bounds().Size(); got != size {
			return fmt.Errorf("%w: frame %d is %v, base frame is %v", ErrFrameSize, i+1, got, size)
		}
	}
	return nil
}

// buildPalette returns a palette whose index 0 is fully transparent. When
// the frames use at most 255 distinct opaque colors they are kept exactly;
// otherwise the web-safe palette is used.
func buildPalette(frames []image.Image) color.Palette {
	pal := color.Palette{color.RGBA{}}
	seen := make(map[color.RGBA]struct{})

	for _, frame := range frames {
		b := frame.Bounds()
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				c, ok := opaque(frame.At(x, y))
				if !ok {
					continue
				}
				if _, exists := seen[c]; exists {
					continue
				}
				seen[c] = struct{}{}
				pal = append(pal, c)
				if len(pal) > 256 {
					return append(color.Palette{color.RGBA{}}, palette.WebSafe...)
				}
			}
		}
	}

	return pal
}

func toPaletted(img image.Image, pal color.Palette) *image.Paletted {
	b := img.Bounds()
	dst := image.NewPaletted(image.Rect(0, 0, b.Dx(), b.Dy()), pal)
	opaquePal := pal[1:]

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c, ok := opaque(img.At(x, y))
			if !ok {
				continue // index 0, transparent
			}
			dst.SetColorIndex(x-b.Min.X, y-b.Min.Y, uint8(opaquePal.Index(c)+1))
		}
	}

	return dst
}

// opaque returns c with full alpha, or false when c falls below the
// transparency threshold.
func opaque(c color.Color) (color.RGBA, bool) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A < alphaThreshold {
		return color.RGBA{}, false
	}
	return color.RGBA{R: n.R, G: n.G, B: n.B, A: 0xff}, true
}
