package mandelbrot

import (
	"fmt"
	"image/color"

	"github.com/BrugadaSyndrome/bslogger"
)

// Settings configures one renderer: the pixel grid, the iteration budget, the
// escape boundary and the palette. Zero fields are treated as unset and get
// defaults from Verify; explicitly invalid values are configuration errors.
type Settings struct {
	logger bslogger.Logger

	Boundary                float64
	CenterX                 float64
	CenterY                 float64
	EscapeColor             color.RGBA
	GeneratePaletteSettings []GeneratePaletteSettings
	HalfWidth               float64
	Height                  int
	MaxIterations           int
	Palette                 []color.RGBA
	Width                   int
}

func (s *Settings) Verify() error {
	s.logger = bslogger.NewLogger("MandelbrotSettings", bslogger.Normal, nil)

	if s.Width < 0 || s.Height < 0 {
		return fmt.Errorf("grid dimensions must be positive - got %dx%d", s.Width, s.Height)
	}
	if s.MaxIterations < 0 {
		return fmt.Errorf("maxIterations must be positive - got %d", s.MaxIterations)
	}
	if s.Boundary < 0 {
		return fmt.Errorf("boundary must be positive - got %f", s.Boundary)
	}
	if s.HalfWidth < 0 {
		return fmt.Errorf("halfWidth must be positive - got %f", s.HalfWidth)
	}

	if s.Boundary == 0 {
		// Escape radius 2, compared against |z|^2
		s.Boundary = 4
	}
	if s.CenterX > 4.0 || s.CenterX < -4.0 {
		s.CenterX = -0.5
	}
	if s.CenterY > 4.0 || s.CenterY < -4.0 {
		s.CenterY = 0.0
	}
	if s.CenterX == 0 && s.CenterY == 0 {
		s.CenterX = -0.5
	}
	if s.EscapeColor == (color.RGBA{}) {
		s.EscapeColor = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	}
	if s.HalfWidth == 0 {
		s.HalfWidth = ReferenceHalfWidth
	}
	if s.HalfWidth < MinHalfWidth {
		s.HalfWidth = MinHalfWidth
	}
	if s.HalfWidth > MaxHalfWidth {
		s.HalfWidth = MaxHalfWidth
	}
	if s.Height == 0 {
		s.Height = 480
	}
	if s.MaxIterations == 0 {
		s.MaxIterations = 100
	}
	if s.Width == 0 {
		s.Width = 640
	}
	if s.Width < 2 || s.Height < 2 {
		return fmt.Errorf("grid dimensions must be at least 2x2 - got %dx%d", s.Width, s.Height)
	}

	if len(s.GeneratePaletteSettings) == 0 && len(s.Palette) == 0 {
		s.GeneratePaletteSettings = defaultPaletteSettings()
	}
	if len(s.GeneratePaletteSettings) > 0 {
		s.Palette = make([]color.RGBA, 0)
		for i := 0; i < len(s.GeneratePaletteSettings); i++ {
			segment, err := s.GeneratePaletteSettings[i].GeneratePalette()
			if err != nil {
				return err
			}
			s.Palette = append(s.Palette, segment...)
		}
	}
	if len(s.Palette) == 0 {
		s.Palette = []color.RGBA{{R: 255, G: 255, B: 255, A: 255}}
	}

	return nil
}

// InitialWindow is the view the front-ends start from.
func (s *Settings) InitialWindow() Window {
	return Window{CenterX: s.CenterX, CenterY: s.CenterY, HalfWidth: s.HalfWidth}
}
