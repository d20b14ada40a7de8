package game

// Rect is an axis-aligned box in play-field pixels.
type Rect struct {
	X, Y, W, H float64
}

// Inset shrinks the rect by p on every side.
func (r Rect) Inset(p float64) Rect {
	return Rect{X: r.X + p, Y: r.Y + p, W: r.W - 2*p, H: r.H - 2*p}
}

// Overlaps reports whether both interval pairs intersect. Strict
// inequality: rects that merely touch do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}
