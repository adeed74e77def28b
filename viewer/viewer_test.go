package viewer

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"mandelzoom/mandelbrot"
)

func newTestViewer(t *testing.T) *Viewer {
	t.Helper()
	s := Settings{}
	if err := s.Verify(); err != nil {
		t.Fatalf("unexpected settings error: %s", err)
	}
	grid := s.Mandelbrot
	grid.Width = 80
	grid.Height = 48
	return &Viewer{
		mandelbrot:    mandelbrot.NewMandelbrot(grid),
		settings:      s,
		gridWidth:     80,
		gridHeight:    48,
		maxIterations: s.Mandelbrot.MaxIterations,
	}
}

func TestHandleClickZoomIn(t *testing.T) {
	v := newTestViewer(t)
	window := mandelbrot.DefaultWindow()

	event := tcell.NewEventMouse(40, 12, tcell.ButtonSecondary, 0)
	next, handled := v.handleClick(window, event)
	if !handled {
		t.Fatal("a right click should be handled")
	}
	if next.HalfWidth != window.HalfWidth*v.settings.ZoomInFactor {
		t.Errorf("expected half width %g, got %g", window.HalfWidth*v.settings.ZoomInFactor, next.HalfWidth)
	}

	wantX, wantY := window.PointAt(40, 24, 80, 48)
	if next.CenterX != wantX || next.CenterY != wantY {
		t.Errorf("expected recentering on (%g, %g), got (%g, %g)", wantX, wantY, next.CenterX, next.CenterY)
	}
	if v.maxIterations != v.settings.Mandelbrot.MaxIterations+v.settings.AddIterations {
		t.Errorf("a zoom in should raise the iteration budget, got %d", v.maxIterations)
	}
}

func TestHandleClickZoomOut(t *testing.T) {
	v := newTestViewer(t)
	window := mandelbrot.Window{CenterX: -0.75, CenterY: 0.1, HalfWidth: 0.5}

	event := tcell.NewEventMouse(0, 0, tcell.ButtonPrimary, 0)
	next, handled := v.handleClick(window, event)
	if !handled {
		t.Fatal("a left click should be handled")
	}
	if next.HalfWidth != window.HalfWidth/v.settings.ZoomOutFactor {
		t.Errorf("expected half width %g, got %g", window.HalfWidth/v.settings.ZoomOutFactor, next.HalfWidth)
	}
	if v.maxIterations != v.settings.Mandelbrot.MaxIterations {
		t.Errorf("the iteration budget should never drop below the base, got %d", v.maxIterations)
	}
}

func TestHandleClickIterationBudget(t *testing.T) {
	v := newTestViewer(t)
	window := mandelbrot.DefaultWindow()

	window, _ = v.handleClick(window, tcell.NewEventMouse(40, 12, tcell.ButtonSecondary, 0))
	window, _ = v.handleClick(window, tcell.NewEventMouse(40, 12, tcell.ButtonSecondary, 0))
	base := v.settings.Mandelbrot.MaxIterations
	if v.maxIterations != base+2*v.settings.AddIterations {
		t.Errorf("expected %d iterations after two zooms, got %d", base+2*v.settings.AddIterations, v.maxIterations)
	}

	window, _ = v.handleClick(window, tcell.NewEventMouse(40, 12, tcell.ButtonPrimary, 0))
	_, _ = v.handleClick(window, tcell.NewEventMouse(40, 12, tcell.ButtonPrimary, 0))
	if v.maxIterations != base {
		t.Errorf("expected the budget back at the base %d, got %d", base, v.maxIterations)
	}
}

func TestHandleClickClampsToGrid(t *testing.T) {
	v := newTestViewer(t)
	window := mandelbrot.DefaultWindow()

	event := tcell.NewEventMouse(500, 300, tcell.ButtonSecondary, 0)
	next, handled := v.handleClick(window, event)
	if !handled {
		t.Fatal("an out-of-bounds click should still be handled")
	}

	wantX, wantY := window.PointAt(79, 47, 80, 48)
	if next.CenterX != wantX || next.CenterY != wantY {
		t.Errorf("expected the click clamped to the grid corner (%g, %g), got (%g, %g)",
			wantX, wantY, next.CenterX, next.CenterY)
	}
}

func TestHandleClickIgnoresMotion(t *testing.T) {
	v := newTestViewer(t)
	window := mandelbrot.DefaultWindow()

	event := tcell.NewEventMouse(10, 10, tcell.ButtonNone, 0)
	next, handled := v.handleClick(window, event)
	if handled {
		t.Error("mouse motion without buttons should be ignored")
	}
	if next != window {
		t.Error("an ignored event should leave the window unchanged")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		value, low, high, want int
	}{
		{5, 0, 10, 5},
		{-3, 0, 10, 0},
		{42, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tt := range tests {
		if got := clamp(tt.value, tt.low, tt.high); got != tt.want {
			t.Errorf("clamp(%d, %d, %d): expected %d, got %d", tt.value, tt.low, tt.high, tt.want, got)
		}
	}
}

func TestSettingsVerifyRejectsInvalid(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
	}{
		{"zoom in factor too large", Settings{ZoomInFactor: 2}},
		{"zoom out factor too large", Settings{ZoomOutFactor: 1}},
		{"negative iteration growth", Settings{AddIterations: -1}},
	}

	for _, tt := range tests {
		if err := tt.settings.Verify(); err == nil {
			t.Errorf("%s: expected a configuration error", tt.name)
		}
	}
}
