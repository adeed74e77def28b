package mandelbrot

// Mandelbrot evaluates escape times for pixel grids over a view window.
type Mandelbrot struct {
	settings Settings
}

func NewMandelbrot(settings Settings) Mandelbrot {
	return Mandelbrot{settings: settings}
}

// Field holds the per-pixel escape iteration counts of one render pass, in
// row-major order. A count equal to the maxIterations it was computed with
// means the point never escaped.
type Field struct {
	Width  int
	Height int
	Counts []int
}

func (f *Field) At(column int, row int) int {
	return f.Counts[row*f.Width+column]
}

// EscapeTime returns the number of iterations of z = z^2 + c before |z|^2
// exceeds the boundary, or maxIterations when c = (x, y) never escapes.
// https://en.wikipedia.org/wiki/Plotting_algorithms_for_the_Mandelbrot_set#Optimized_escape_time_algorithms
func (m *Mandelbrot) EscapeTime(x float64, y float64, maxIterations int) int {
	x1, y1, x2, y2 := 0.0, 0.0, 0.0, 0.0
	oldX, oldY := 0.0, 0.0
	period := 0
	iteration := 0
	for x2+y2 <= m.settings.Boundary && iteration < maxIterations {
		y1 = 2*x1*y1 + y
		x1 = x2 - y2 + x
		x2 = x1 * x1
		y2 = y1 * y1
		iteration++

		// Orbits that revisit a sampled z value are periodic and never escape
		// https://en.wikipedia.org/wiki/Plotting_algorithms_for_the_Mandelbrot_set#Periodicity_checking
		if x1 == oldX && y1 == oldY {
			iteration = maxIterations
			break
		}
		period++
		if period > 20 {
			period = 0
			oldX = x1
			oldY = y1
		}
	}
	return iteration
}

// Evaluate computes the escape time of every pixel of the settings grid over
// the given window. It is a pure function of its inputs; pixels are
// independent, so callers may split rows across goroutines if they want to.
func (m *Mandelbrot) Evaluate(window Window, maxIterations int) Field {
	field := Field{
		Width:  m.settings.Width,
		Height: m.settings.Height,
		Counts: make([]int, m.settings.Width*m.settings.Height),
	}
	i := 0
	for row := 0; row < field.Height; row++ {
		for column := 0; column < field.Width; column++ {
			x, y := window.PointAt(column, row, field.Width, field.Height)
			field.Counts[i] = m.EscapeTime(x, y, maxIterations)
			i++
		}
	}
	return field
}
