// Package thumbnail decodes image files and renders them as small blocks of
// terminal cells. Pixel data is held only while a thumbnail is being built.
package thumbnail

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"
)

// upperHalf draws the top pixel in the foreground and the bottom pixel in
// the background, so one cell holds two pixel rows.
const upperHalf = "▀"

// ErrInvalidBound indicates a non-positive thumbnail size.
var ErrInvalidBound = errors.New("thumbnail: width and height must be positive")

// Load decodes the image at path and scales it to exactly width×height pixels.
// The file is closed before Load returns.
func Load(path string, width, height int) (image.Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidBound, width, height)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("thumbnail: opening %s: %w", path, err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("thumbnail: decoding %s: %w", path, err)
	}

	return Scale(src, width, height), nil
}

// Scale resizes src to exactly width×height pixels with a Catmull-Rom kernel.
func Scale(src image.Image, width, height int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}

// Render draws img as lines of half-block cells, two pixel rows per line.
// Fully transparent pixels, and the missing bottom row of an odd-height
// image, take bg.
func Render(img image.Image, bg color.Color) string {
	b := img.Bounds()
	bgHex := hex(bg, "#000000")

	var sb strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		if y > b.Min.Y {
			sb.WriteByte('\n')
		}
		for x := b.Min.X; x < b.Max.X; x++ {
			top := hex(img.At(x, y), bgHex)
			bottom := bgHex
			if y+1 < b.Max.Y {
				bottom = hex(img.At(x, y+1), bgHex)
			}
			sb.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(top)).
				Background(lipgloss.Color(bottom)).
				Render(upperHalf))
		}
	}
	return sb.String()
}

// hex returns c as "#rrggbb", or fallback when c is fully transparent.
func hex(c color.Color, fallback string) string {
	if c == nil {
		return fallback
	}
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return fallback
	}
	return cf.Hex()
}
