package viewer

import (
	"fmt"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/gdamore/tcell/v2"

	"mandelzoom/mandelbrot"
)

// Viewer explores the set interactively in the terminal. Every character cell
// shows two pixels stacked with the upper-half-block glyph, so the grid is
// the terminal width by twice the terminal height (minus the status line).
//
// Clicks are handled one at a time, each producing the next window from the
// current one; the window is the only piece of state the event loop threads
// through.
type Viewer struct {
	logger     bslogger.Logger
	mandelbrot mandelbrot.Mandelbrot
	screen     tcell.Screen
	settings   Settings

	gridWidth     int
	gridHeight    int
	maxIterations int
}

func NewViewer(settings Settings) (*Viewer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("unable to open a terminal screen - %s", err)
	}
	viewer := Viewer{
		logger:        bslogger.NewLogger("Viewer", bslogger.Normal, nil),
		mandelbrot:    mandelbrot.NewMandelbrot(settings.Mandelbrot),
		screen:        screen,
		settings:      settings,
		maxIterations: settings.Mandelbrot.MaxIterations,
	}
	return &viewer, nil
}

// Run drives the event loop until the user quits. Right click zooms in on the
// clicked point, left click zooms out, r resets the view, q or Escape quits.
func (v *Viewer) Run() error {
	if err := v.screen.Init(); err != nil {
		return fmt.Errorf("unable to initialize the terminal screen - %s", err)
	}
	defer v.screen.Fini()
	v.screen.EnableMouse()

	window := v.settings.Mandelbrot.InitialWindow()
	v.resize()
	v.draw(window)

	for {
		switch event := v.screen.PollEvent().(type) {
		case *tcell.EventResize:
			v.resize()
			v.screen.Sync()
			v.draw(window)
		case *tcell.EventKey:
			switch {
			case event.Key() == tcell.KeyEscape || event.Key() == tcell.KeyCtrlC:
				return nil
			case event.Rune() == 'q':
				return nil
			case event.Rune() == 'r':
				window = v.settings.Mandelbrot.InitialWindow()
				v.maxIterations = v.settings.Mandelbrot.MaxIterations
				v.draw(window)
			}
		case *tcell.EventMouse:
			next, handled := v.handleClick(window, event)
			if handled {
				window = next
				v.draw(window)
			}
		}
	}
}

// handleClick maps a mouse event to the next window. The clicked cell is
// clamped to the grid and converted to its complex coordinate, which becomes
// the new center. The iteration budget follows the zoom direction so deeper
// views keep their detail, never dropping below the configured base.
func (v *Viewer) handleClick(window mandelbrot.Window, event *tcell.EventMouse) (mandelbrot.Window, bool) {
	buttons := event.Buttons()
	if buttons&(tcell.ButtonPrimary|tcell.ButtonSecondary) == 0 {
		return window, false
	}

	column, row := event.Position()
	px := clamp(column, 0, v.gridWidth-1)
	py := clamp(row*2, 0, v.gridHeight-1)
	x, y := window.PointAt(px, py, v.gridWidth, v.gridHeight)

	if buttons&tcell.ButtonSecondary != 0 {
		v.maxIterations += v.settings.AddIterations
		return mandelbrot.ZoomIn(window, x, y, v.settings.ZoomInFactor), true
	}
	if v.maxIterations > v.settings.Mandelbrot.MaxIterations {
		v.maxIterations -= v.settings.AddIterations
	}
	return mandelbrot.ZoomOut(window, x, y, v.settings.ZoomOutFactor), true
}

// resize re-derives the pixel grid from the terminal size: one row is kept
// for the status line and every remaining row holds two pixel rows.
func (v *Viewer) resize() {
	columns, rows := v.screen.Size()
	if columns < 2 {
		columns = 2
	}
	if rows < 2 {
		rows = 2
	}
	v.gridWidth = columns
	v.gridHeight = (rows - 1) * 2

	settings := v.settings.Mandelbrot
	settings.Width = v.gridWidth
	settings.Height = v.gridHeight
	v.mandelbrot = mandelbrot.NewMandelbrot(settings)
}

func (v *Viewer) draw(window mandelbrot.Window) {
	img := v.mandelbrot.Render(window, v.maxIterations)
	for row := 0; row < v.gridHeight/2; row++ {
		for column := 0; column < v.gridWidth; column++ {
			top := img.RGBAAt(column, row*2)
			bottom := img.RGBAAt(column, row*2+1)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			v.screen.SetContent(column, row, '▀', nil, style)
		}
	}
	v.drawStatus(window)
	v.screen.Show()
}

func (v *Viewer) drawStatus(window mandelbrot.Window) {
	status := fmt.Sprintf(" center (%.15g, %.15g)  magnification %.6g  iterations %d | right click: zoom in, left click: zoom out, r: reset, q: quit",
		window.CenterX, window.CenterY, window.Magnification(), v.maxIterations)
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)

	_, rows := v.screen.Size()
	runes := []rune(status)
	for column := 0; column < v.gridWidth; column++ {
		r := ' '
		if column < len(runes) {
			r = runes[column]
		}
		v.screen.SetContent(column, rows-1, r, nil, style)
	}
}

func clamp(value int, low int, high int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
