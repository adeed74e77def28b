package mandelbrot

import (
	"fmt"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// GeneratePaletteSettings describes one gradient segment of the palette as a
// pair of hex colors and the number of steps blended between them. Blending
// happens in HSV space, which keeps the ramps vivid instead of washing out
// through gray.
type GeneratePaletteSettings struct {
	StartColor   string
	EndColor     string
	NumberColors int
}

func (gps *GeneratePaletteSettings) GeneratePalette() ([]color.RGBA, error) {
	start, err := colorful.Hex(gps.StartColor)
	if err != nil {
		return nil, fmt.Errorf("unable to parse start color %q - %s", gps.StartColor, err)
	}
	end, err := colorful.Hex(gps.EndColor)
	if err != nil {
		return nil, fmt.Errorf("unable to parse end color %q - %s", gps.EndColor, err)
	}
	if gps.NumberColors <= 0 {
		return nil, fmt.Errorf("palette segment needs a positive color count - got %d", gps.NumberColors)
	}

	palette := make([]color.RGBA, 0, gps.NumberColors)
	for j := 0; j < gps.NumberColors; j++ {
		fraction := float64(j) / float64(gps.NumberColors)
		r, g, b := start.BlendHsv(end, fraction).Clamped().RGB255()
		palette = append(palette, color.RGBA{R: r, G: g, B: b, A: 255})
	}
	return palette, nil
}

// defaultPaletteSettings is a magma-style ramp: near-black through purple and
// orange to pale yellow. 255 colors so a GIF frame palette still has room for
// the escape color.
func defaultPaletteSettings() []GeneratePaletteSettings {
	return []GeneratePaletteSettings{
		{StartColor: "#000004", EndColor: "#721f81", NumberColors: 85},
		{StartColor: "#721f81", EndColor: "#f1605d", NumberColors: 85},
		{StartColor: "#f1605d", EndColor: "#fcfdbf", NumberColors: 85},
	}
}
