package animation

import (
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"

	"github.com/BrugadaSyndrome/bslogger"

	"mandelzoom/mandelbrot"
	"mandelzoom/misc"
)

// Animator renders the zoom-in window sequence frame by frame and assembles
// the frames into one looping GIF. Frames already present in the frame
// directory are reused, so a run that was interrupted, or one that only
// changed playback settings, does not recompute finished frames.
type Animator struct {
	logger     bslogger.Logger
	mandelbrot mandelbrot.Mandelbrot
	settings   Settings
}

func NewAnimator(settings Settings) Animator {
	return Animator{
		logger:     bslogger.NewLogger("Animator", bslogger.Normal, nil),
		mandelbrot: mandelbrot.NewMandelbrot(settings.Mandelbrot),
		settings:   settings,
	}
}

// Run generates every frame of the zoom and writes the looping animation to
// the configured output file. The run is sequential and uncancellable; it
// simply finishes.
func (a *Animator) Run() error {
	start := mandelbrot.Window{
		CenterX:   a.settings.TargetX,
		CenterY:   a.settings.TargetY,
		HalfWidth: a.settings.Mandelbrot.HalfWidth,
	}
	windows := mandelbrot.ZoomSequence(start, a.settings.TargetX, a.settings.TargetY, a.settings.ZoomFactor)
	a.logger.Infof("Generating %d frames into %s", len(windows), a.settings.FramePath)

	if err := os.MkdirAll(a.settings.FramePath, os.ModePerm); err != nil {
		return fmt.Errorf("unable to create frame folder %s - %s", a.settings.FramePath, err)
	}
	if err := a.saveSettings(); err != nil {
		return err
	}

	palette := a.framePalette()
	anim := gif.GIF{LoopCount: 0}
	for i, window := range windows {
		frame, err := a.frame(i, window)
		if err != nil {
			return err
		}
		anim.Image = append(anim.Image, quantize(frame, palette))
		anim.Delay = append(anim.Delay, a.settings.FrameDelay)
	}

	output, err := os.Create(a.settings.OutputFile)
	if err != nil {
		return fmt.Errorf("unable to create %s - %s", a.settings.OutputFile, err)
	}
	if err := gif.EncodeAll(output, &anim); err != nil {
		output.Close()
		return fmt.Errorf("unable to encode %s - %s", a.settings.OutputFile, err)
	}
	if err := output.Close(); err != nil {
		return fmt.Errorf("unable to close %s - %s", a.settings.OutputFile, err)
	}

	a.logger.Infof("Wrote %s [%d frames]", a.settings.OutputFile, len(windows))
	return nil
}

// frame returns the image for one step of the zoom, rendering and caching it
// as a png unless a cached copy already exists. Deeper frames get a larger
// iteration budget so detail keeps up with the magnification.
func (a *Animator) frame(i int, window mandelbrot.Window) (image.Image, error) {
	name := filepath.Join(a.settings.FramePath, fmt.Sprintf("frame%d.png", i))

	if cached, err := loadFrame(name); err == nil {
		return cached, nil
	}

	maxIterations := a.settings.Mandelbrot.MaxIterations + i*a.settings.AddIterations
	rendered := a.mandelbrot.Render(window, maxIterations)
	a.logger.Debugf("Rendered frame %d [magnification %g, %d iterations]", i, window.Magnification(), maxIterations)

	if err := saveFrame(name, rendered); err != nil {
		return nil, err
	}
	return rendered, nil
}

// saveSettings copies the effective settings next to the frames so the run
// can be reproduced or resumed later.
func (a *Animator) saveSettings() error {
	bytes, err := json.MarshalIndent(&a.settings, "", "\t")
	if err != nil {
		return fmt.Errorf("unable to marshal settings - %s", err)
	}
	return misc.WriteFile(filepath.Join(a.settings.FramePath, "settings.json"), bytes)
}

// framePalette is the GIF color table: the escape color first, then the
// render palette, capped at the format's 256 entries.
func (a *Animator) framePalette() color.Palette {
	palette := make(color.Palette, 0, len(a.settings.Mandelbrot.Palette)+1)
	palette = append(palette, a.settings.Mandelbrot.EscapeColor)
	for _, c := range a.settings.Mandelbrot.Palette {
		if len(palette) == 256 {
			a.logger.Warningf("Palette has %d colors; a gif frame holds 256", len(a.settings.Mandelbrot.Palette)+1)
			break
		}
		palette = append(palette, c)
	}
	return palette
}

func quantize(frame image.Image, palette color.Palette) *image.Paletted {
	paletted := image.NewPaletted(frame.Bounds(), palette)
	draw.Draw(paletted, frame.Bounds(), frame, frame.Bounds().Min, draw.Src)
	return paletted
}

func loadFrame(name string) (image.Image, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return png.Decode(file)
}

func saveFrame(name string, frame image.Image) error {
	file, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("unable to create frame %s - %s", name, err)
	}
	if err := png.Encode(file, frame); err != nil {
		file.Close()
		return fmt.Errorf("unable to encode frame %s - %s", name, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("unable to close frame %s - %s", name, err)
	}
	return nil
}
