package mandelbrot

// ReferenceHalfWidth is half the horizontal span of the default full-set view.
const ReferenceHalfWidth = 1.5

// MinHalfWidth is the magnification floor. Past a 2^45 zoom the per-pixel
// coordinate step drops under the float64 resolution of the coordinates
// themselves, so adjacent pixels collapse onto identical points and the image
// degrades into noise.
const MinHalfWidth = ReferenceHalfWidth / (1 << 45)

// MaxHalfWidth bounds zooming out so the view cannot drift into a degenerate
// all-black frame. The whole set fits comfortably inside |c| <= 4.
const MaxHalfWidth = 4.0

// Window is the rectangle of the complex plane currently rendered. HalfWidth
// is half the horizontal span; the vertical span follows from the pixel grid
// so that pixels stay square. Windows are immutable; zooming produces a new
// value instead of mutating in place.
type Window struct {
	CenterX   float64
	CenterY   float64
	HalfWidth float64
}

// DefaultWindow returns the classic framing of the full set.
func DefaultWindow() Window {
	return Window{CenterX: -0.5, CenterY: 0, HalfWidth: ReferenceHalfWidth}
}

// Step is the distance on the complex plane between two horizontally adjacent
// pixels. The same step is used vertically to avoid distorting the set.
func (w Window) Step(width int) float64 {
	return (2 * w.HalfWidth) / float64(width-1)
}

// PointAt converts the (column, row) point on the image to the (x, y) point on
// the complex plane. Column 0 maps to the left edge and column width-1 to the
// right edge; rows grow downward while the imaginary axis grows upward, hence
// the sign flip.
func (w Window) PointAt(column int, row int, width int, height int) (float64, float64) {
	step := w.Step(width)
	x := w.CenterX + (float64(column)-float64(width-1)/2.0)*step
	y := w.CenterY - (float64(row)-float64(height-1)/2.0)*step
	return x, y
}

// Magnification reports how far the window is zoomed in relative to the
// default full-set view.
func (w Window) Magnification() float64 {
	return ReferenceHalfWidth / w.HalfWidth
}
