package viewer

import (
	"encoding/json"
	"fmt"

	"github.com/BrugadaSyndrome/bslogger"

	"mandelzoom/mandelbrot"
	"mandelzoom/misc"
)

// Settings configures the interactive viewer. The grid dimensions of the
// embedded mandelbrot settings are ignored; the terminal size dictates them.
type Settings struct {
	logger bslogger.Logger

	AddIterations int
	Mandelbrot    mandelbrot.Settings
	ZoomInFactor  float64
	ZoomOutFactor float64
}

// NewSettings loads settings from an optional json file, applying defaults
// for anything left unset. Invalid configuration ends the program.
func NewSettings(settingsFile string) Settings {
	s := Settings{
		logger: bslogger.NewLogger("ViewerSettings", bslogger.Normal, nil),
	}
	if settingsFile != "" {
		bytes, err := misc.ReadFile(settingsFile)
		misc.CheckError(err, s.logger, misc.Fatal)
		misc.CheckError(json.Unmarshal(bytes, &s), s.logger, misc.Fatal)
	}
	misc.CheckError(s.Verify(), s.logger, misc.Fatal)
	s.logger.Debug(s.String())
	return s
}

func (s *Settings) String() string {
	output := "\nViewer settings\n"
	output += fmt.Sprintf("Zoom factors: in %v, out %v\n", s.ZoomInFactor, s.ZoomOutFactor)
	output += fmt.Sprintf("Added iterations per zoom: %d\n", s.AddIterations)
	return output
}

func (s *Settings) Verify() error {
	if s.ZoomInFactor < 0 || s.ZoomInFactor >= 1 {
		return fmt.Errorf("zoomInFactor must be inside (0, 1) - got %f", s.ZoomInFactor)
	}
	if s.ZoomOutFactor < 0 || s.ZoomOutFactor >= 1 {
		return fmt.Errorf("zoomOutFactor must be inside (0, 1) - got %f", s.ZoomOutFactor)
	}
	if s.AddIterations < 0 {
		return fmt.Errorf("addIterations must be positive - got %d", s.AddIterations)
	}

	if s.AddIterations == 0 {
		s.AddIterations = 50
	}
	if s.ZoomInFactor == 0 {
		s.ZoomInFactor = 0.5
	}
	if s.ZoomOutFactor == 0 {
		s.ZoomOutFactor = 0.5
	}

	return s.Mandelbrot.Verify()
}
