package mandelbrot

import (
	"image"
	"image/color"
)

// GetColor maps one iteration count to its display color. Counts cycle
// through the palette; the did-not-escape sentinel gets the escape color.
func (m *Mandelbrot) GetColor(iteration int, maxIterations int) color.RGBA {
	if iteration >= maxIterations {
		return m.settings.EscapeColor
	}
	return m.settings.Palette[iteration%len(m.settings.Palette)]
}

// Colorize turns an iteration field into an RGBA image. Identical fields
// always produce byte-identical images.
func (m *Mandelbrot) Colorize(field Field, maxIterations int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, field.Width, field.Height))
	for row := 0; row < field.Height; row++ {
		for column := 0; column < field.Width; column++ {
			img.SetRGBA(column, row, m.GetColor(field.At(column, row), maxIterations))
		}
	}
	return img
}

// Render is the full pass for one window: evaluate the grid, then colorize.
func (m *Mandelbrot) Render(window Window, maxIterations int) *image.RGBA {
	field := m.Evaluate(window, maxIterations)
	return m.Colorize(field, maxIterations)
}
