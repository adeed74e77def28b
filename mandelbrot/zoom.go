package mandelbrot

// ZoomIn produces the window after one zoom step toward (targetX, targetY).
// The clicked point becomes the new center and the half width shrinks by
// factor (0 < factor < 1). Requests that would cross the magnification floor
// saturate at MinHalfWidth instead of failing; the recenter still applies, so
// panning at the floor remains possible.
func ZoomIn(w Window, targetX float64, targetY float64, factor float64) Window {
	halfWidth := w.HalfWidth * factor
	if halfWidth < MinHalfWidth {
		halfWidth = MinHalfWidth
	}
	return Window{CenterX: targetX, CenterY: targetY, HalfWidth: halfWidth}
}

// ZoomOut is the inverse step: the half width grows by the reciprocal of
// factor (0 < factor < 1) and the clicked point becomes the new center.
// Growth saturates at MaxHalfWidth.
func ZoomOut(w Window, targetX float64, targetY float64, factor float64) Window {
	halfWidth := w.HalfWidth / factor
	if halfWidth > MaxHalfWidth {
		halfWidth = MaxHalfWidth
	}
	return Window{CenterX: targetX, CenterY: targetY, HalfWidth: halfWidth}
}

// ZoomSequence returns the finite list of windows an animation steps through:
// the start window followed by repeated ZoomIn applications with a fixed
// target and factor, ending on the window that reaches MinHalfWidth. The
// length is fully determined by the start half width and the factor.
func ZoomSequence(start Window, targetX float64, targetY float64, factor float64) []Window {
	windows := []Window{start}
	if factor <= 0 || factor >= 1 {
		return windows
	}
	w := start
	for w.HalfWidth > MinHalfWidth {
		w = ZoomIn(w, targetX, targetY, factor)
		windows = append(windows, w)
	}
	return windows
}
