// Package imgio loads images into lsb.PixelGrid values and writes them back out.
//
// Pixels are packed as 0xAARRGGBB with non-premultiplied channels, so the carrier bit of each pixel is the least significant bit of its blue channel.
// Only 8 bit channels fit in that packing, so images with 16 bit channels are rejected with ErrDepth instead of being silently truncated.
package imgio

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/saylorsolutions/stegx/pkg/lsb"
	"golang.org/x/image/bmp"
)

const (
	FormatPNG = "png"
	FormatBMP = "bmp"
)

// Formats lists the supported output formats. Only lossless formats are allowed, since anything else destroys hidden bits.
var Formats = []string{FormatPNG, FormatBMP}

var (
	ErrRead   = errors.New("can't read input file")
	ErrWrite  = errors.New("can't write output file")
	ErrFormat = errors.New("unsupported output format")
	ErrDepth  = errors.New("only images with 8 bit color channels are supported")
)

// ValidFormat reports whether format is one of Formats.
func ValidFormat(format string) bool {
	return lo.Contains(Formats, format)
}

// Pack converts a color to a packed 0xAARRGGBB value.
func Pack(c color.Color) uint32 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return uint32(n.A)<<24 | uint32(n.R)<<16 | uint32(n.G)<<8 | uint32(n.B)
}

// Unpack is the inverse of Pack.
func Unpack(c uint32) color.NRGBA {
	return color.NRGBA{
		R: uint8(c >> 16),
		G: uint8(c >> 8),
		B: uint8(c),
		A: uint8(c >> 24),
	}
}

// FromImage copies img into a new grid. The grid's origin is the top left corner of img's bounds.
func FromImage(img image.Image) *lsb.PixelGrid {
	bounds := img.Bounds()
	g := lsb.NewPixelGrid(bounds.Dx(), bounds.Dy())
	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			g.SetPixel(x, y, Pack(img.At(bounds.Min.X+x, bounds.Min.Y+y)))
		}
	}
	return g
}

// ToImage copies g into a new NRGBA image.
func ToImage(g lsb.Grid) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, g.Width(), g.Height()))
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			img.SetNRGBA(x, y, Unpack(g.Pixel(x, y)))
		}
	}
	return img
}

// Decode reads any registered image format (PNG, JPEG, GIF, BMP) from r.
func Decode(r io.Reader) (*lsb.PixelGrid, error) {
	img, _, err := image.Decode(bufio.NewReader(r))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}
	switch img.ColorModel() {
	case color.RGBA64Model, color.NRGBA64Model, color.Gray16Model:
		return nil, fmt.Errorf("%w: %w", ErrRead, ErrDepth)
	}
	return FromImage(img), nil
}

// Load opens and decodes the image file at path.
func Load(path string) (*lsb.PixelGrid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}
	defer func() {
		_ = f.Close()
	}()
	return Decode(f)
}

// Encode writes g to w in the given format.
func Encode(w io.Writer, g lsb.Grid, format string) error {
	img := ToImage(g)
	var err error
	switch format {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatBMP:
		err = bmp.Encode(w, img)
	default:
		return fmt.Errorf("%w: %w '%s'", ErrWrite, ErrFormat, format)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}

// Save writes g to a file at path in the given format.
// The image is written to a temporary file in the same directory and renamed into place, so a failed save leaves any existing file at path untouched.
func Save(g lsb.Grid, path, format string) (err error) {
	if !ValidFormat(format) {
		return fmt.Errorf("%w: %w '%s'", ErrWrite, ErrFormat, format)
	}
	dir, name := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	f, err := os.CreateTemp(dir, "."+name+"-*")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(tmp)
		}
	}()

	w := bufio.NewWriter(f)
	if err := Encode(w, g, format); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	if err := f.Chmod(0644); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}
