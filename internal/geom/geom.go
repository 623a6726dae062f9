// Package geom provides the integer geometry primitives shared by the
// raster glyph model and the bitmap-to-outline vectorizer.
//
// Coordinates are glyph-local and always integral: the vectorizer works in
// a scaled pixel grid (see internal/vector), never in floating point.
package geom

import "fmt"

// Pos is an integer (x, y) position.
type Pos struct {
	X, Y int
}

// Add returns p translated by d.
func (p Pos) Add(d Pos) Pos {
	return Pos{p.X + d.X, p.Y + d.Y}
}

// Size is a non-negative (w, h) extent.
type Size struct {
	W, H int
}

// Area returns w*h.
func (s Size) Area() int {
	return s.W * s.H
}

// Rect is an axis-aligned rectangle given by its origin and size.
type Rect struct {
	Pos  Pos
	Size Size
}

// NewRect builds a Rect from explicit coordinates.
func NewRect(x, y, w, h int) Rect {
	return Rect{Pos{x, y}, Size{w, h}}
}

// X1, Y1 are the inclusive origin; X2, Y2 are the exclusive bound.
func (r Rect) X1() int { return r.Pos.X }
func (r Rect) Y1() int { return r.Pos.Y }
func (r Rect) X2() int { return r.Pos.X + r.Size.W }
func (r Rect) Y2() int { return r.Pos.Y + r.Size.H }

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Size.W <= 0 || r.Size.H <= 0
}

// Intersect returns the overlap of r and o, and whether it is non-empty.
func (r Rect) Intersect(o Rect) (Rect, bool) {
	x1 := max(r.X1(), o.X1())
	y1 := max(r.Y1(), o.Y1())
	x2 := min(r.X2(), o.X2())
	y2 := min(r.Y2(), o.Y2())
	if x2 <= x1 || y2 <= y1 {
		return Rect{}, false
	}
	return NewRect(x1, y1, x2-x1, y2-y1), true
}

// Vertex is an integer (y, x) point in glyph-local scaled coordinates.
// Ordering is lexicographic on (Y, X), matching the vectorizer's edge-graph
// invariant that successors are located by a vertex comparison.
type Vertex struct {
	Y, X int
}

// Less reports whether v sorts before o under the (y, x) order.
func (v Vertex) Less(o Vertex) bool {
	if v.Y != o.Y {
		return v.Y < o.Y
	}
	return v.X < o.X
}

// Equal reports whether v and o denote the same point.
func (v Vertex) Equal(o Vertex) bool {
	return v.Y == o.Y && v.X == o.X
}

func (v Vertex) String() string {
	return fmt.Sprintf("(%d,%d)", v.Y, v.X)
}

// Dir is an edge direction in degrees, one of the eight compass values
// {0, 45, 90, 135, 180, 225, 270, 315}. Diagonals (45/135/225/315) only
// ever appear in n1 output, or post n2_angle.
type Dir int

const (
	Dir0   Dir = 0
	Dir45  Dir = 45
	Dir90  Dir = 90
	Dir135 Dir = 135
	Dir180 Dir = 180
	Dir225 Dir = 225
	Dir270 Dir = 270
	Dir315 Dir = 315
)

// Norm normalizes d into [0, 360).
func (d Dir) Norm() Dir {
	d %= 360
	if d < 0 {
		d += 360
	}
	return d
}

// Edge is a directed segment between two vertices.
type Edge struct {
	Start, End Vertex
}

// TrivialDir classifies e's direction per the dy/dx sign table:
//
//	dy / dx   dx<0  dx=0  dx>0
//	dy>0       315     0    45
//	dy=0       270     -    90
//	dy<0       225   180   135
//
// The "dy=0,dx=0" degenerate case (a self-loop) has no well-defined
// direction; TrivialDir returns (0, false) for it.
func (e Edge) TrivialDir() (Dir, bool) {
	dy := e.End.Y - e.Start.Y
	dx := e.End.X - e.Start.X
	switch {
	case dy > 0 && dx < 0:
		return Dir315, true
	case dy > 0 && dx == 0:
		return Dir0, true
	case dy > 0 && dx > 0:
		return Dir45, true
	case dy == 0 && dx < 0:
		return Dir270, true
	case dy == 0 && dx > 0:
		return Dir90, true
	case dy < 0 && dx < 0:
		return Dir225, true
	case dy < 0 && dx == 0:
		return Dir180, true
	case dy < 0 && dx > 0:
		return Dir135, true
	default:
		return 0, false
	}
}

// Reverse returns e with its endpoints swapped.
func (e Edge) Reverse() Edge {
	return Edge{e.End, e.Start}
}

func (e Edge) String() string {
	return fmt.Sprintf("%s->%s", e.Start, e.End)
}
