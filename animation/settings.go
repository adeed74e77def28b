package animation

import (
	"encoding/json"
	"fmt"

	"github.com/BrugadaSyndrome/bslogger"

	"mandelzoom/mandelbrot"
	"mandelzoom/misc"
)

// Settings drives one animation run: which point to dive into, how much the
// view shrinks per frame, how fast the result plays back and where frames and
// the final file land.
type Settings struct {
	logger bslogger.Logger

	AddIterations int
	FrameDelay    int
	FramePath     string
	Mandelbrot    mandelbrot.Settings
	OutputFile    string
	TargetX       float64
	TargetY       float64
	ZoomFactor    float64
}

// NewSettings loads settings from an optional json file, applying defaults
// for anything left unset. Invalid configuration ends the program before any
// rendering starts.
func NewSettings(settingsFile string) Settings {
	s := Settings{
		logger: bslogger.NewLogger("AnimationSettings", bslogger.Normal, nil),
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
	output := "\nAnimation settings\n"
	output += fmt.Sprintf("Target: (%v, %v)\n", s.TargetX, s.TargetY)
	output += fmt.Sprintf("Zoom factor: %v\n", s.ZoomFactor)
	output += fmt.Sprintf("Output: %s\n", s.OutputFile)
	return output
}

func (s *Settings) Verify() error {
	if s.ZoomFactor < 0 || s.ZoomFactor >= 1 {
		return fmt.Errorf("zoomFactor must be inside (0, 1) - got %f", s.ZoomFactor)
	}
	if s.FrameDelay < 0 {
		return fmt.Errorf("frameDelay must be positive - got %d", s.FrameDelay)
	}
	if s.AddIterations < 0 {
		return fmt.Errorf("addIterations must be positive - got %d", s.AddIterations)
	}

	if s.AddIterations == 0 {
		s.AddIterations = 50
	}
	if s.FrameDelay == 0 {
		s.FrameDelay = 5
	}
	if s.FramePath == "" {
		s.FramePath = "AnimatedFrames"
	}
	if s.OutputFile == "" {
		s.OutputFile = "mandelbrot_zoom.gif"
	}
	if s.TargetX == 0 && s.TargetY == 0 {
		// A visually rich spot on the boundary of the set
		s.TargetX = 0.360240443437614363236
		s.TargetY = -0.641313061064803174860
	}
	if s.ZoomFactor == 0 {
		s.ZoomFactor = 0.5
	}

	return s.Mandelbrot.Verify()
}
