package vector

import (
	"github.com/rkoesters/vfontas/internal/geom"
	"github.com/rkoesters/vfontas/internal/raster"
)

// neigh3x3 holds the nine boolean neighbors of a bitmap pixel, numbered as
// in the spec:
//
//	c1 c2 c3
//	c4 c5 c6
//	c7 c8 c9
type neigh3x3 struct {
	c1, c2, c3, c4, c5, c6, c7, c8, c9 bool
}

func sample3x3(g raster.Glyph, ux, uy int) neigh3x3 {
	return neigh3x3{
		c1: g.Get(ux-1, uy-1), c2: g.Get(ux, uy-1), c3: g.Get(ux+1, uy-1),
		c4: g.Get(ux-1, uy), c5: g.Get(ux, uy), c6: g.Get(ux+1, uy),
		c7: g.Get(ux-1, uy+1), c8: g.Get(ux, uy+1), c9: g.Get(ux+1, uy+1),
	}
}

// corners computes the five sub-pixel booleans (di, tl, tr, bl, br) from
// the neighborhood, exactly per the formulas in the spec.
func (n neigh3x3) corners() (di, tl, tr, bl, br bool) {
	di = n.c5

	tl = (n.c4 && ((n.c8 && ((!n.c7 && (n.c1 || n.c3 || n.c9)) || (!n.c1 && !n.c2) || (!n.c6 && !n.c9))) || n.c5)) ||
		(n.c5 && ((!n.c1 && !n.c9) || n.c7 || n.c8))

	tr = ((((!n.c7 && !n.c3) || n.c9 || n.c8 || n.c6) && n.c5)) ||
		(((!n.c9 && (n.c1 || n.c3 || n.c7)) || (!n.c2 && !n.c3) || (!n.c4 && !n.c7)) && n.c8 && n.c6)

	bl = (n.c5 && (n.c1 || n.c2 || (!n.c3 && !n.c7) || n.c4)) ||
		(n.c2 && n.c4 && ((!n.c1 && (n.c3 || n.c7 || n.c9)) || (!n.c3 && !n.c6) || (!n.c7 && !n.c8)))

	br = (n.c2 && ((n.c6 && ((!n.c3 && (n.c1 || n.c7 || n.c9)) || (!n.c1 && !n.c4) || (!n.c8 && !n.c9))) || n.c5)) ||
		(n.c5 && ((!n.c1 && !n.c9) || n.c3 || n.c6))

	return di, tl, tr, bl, br
}

// emitN1Pixel inserts the sub-pixel edges selected by corners() for the
// pixel at bitmap (x, y). Coordinates use the same yy = h-1-y-descent flip
// and sx/sy scale as emitSquare; the half-pixel nodal points that corner
// triangles and the diamond meet at are integral because sx, sy are even.
func emitN1Pixel(eg *EdgeGraph, gl raster.Glyph, x, y, descent int, sc Scale, di, tl, tr, bl, br bool) {
	h := gl.Size().H
	yy := h - 1 - y - descent
	nw := geom.Vertex{Y: yy * sc.SY, X: x * sc.SX}
	ne := geom.Vertex{Y: yy * sc.SY, X: (x + 1) * sc.SX}
	sw := geom.Vertex{Y: (yy + 1) * sc.SY, X: x * sc.SX}
	se := geom.Vertex{Y: (yy + 1) * sc.SY, X: (x + 1) * sc.SX}
	lm := geom.Vertex{Y: yy*sc.SY + sc.SY/2, X: x * sc.SX}
	rm := geom.Vertex{Y: yy*sc.SY + sc.SY/2, X: (x + 1) * sc.SX}
	tm := geom.Vertex{Y: yy * sc.SY, X: x*sc.SX + sc.SX/2}
	bm := geom.Vertex{Y: (yy + 1) * sc.SY, X: x*sc.SX + sc.SX/2}

	if di {
		eg.Insert(geom.Edge{Start: lm, End: bm})
		eg.Insert(geom.Edge{Start: bm, End: rm})
		eg.Insert(geom.Edge{Start: rm, End: tm})
		eg.Insert(geom.Edge{Start: tm, End: lm})
	}
	if tl {
		eg.Insert(geom.Edge{Start: tm, End: nw})
		eg.Insert(geom.Edge{Start: nw, End: lm})
		eg.Insert(geom.Edge{Start: lm, End: tm})
	}
	if tr {
		eg.Insert(geom.Edge{Start: rm, End: ne})
		eg.Insert(geom.Edge{Start: ne, End: tm})
		eg.Insert(geom.Edge{Start: tm, End: rm})
	}
	if br {
		eg.Insert(geom.Edge{Start: bm, End: se})
		eg.Insert(geom.Edge{Start: se, End: rm})
		eg.Insert(geom.Edge{Start: rm, End: bm})
	}
	if bl {
		eg.Insert(geom.Edge{Start: lm, End: sw})
		eg.Insert(geom.Edge{Start: sw, End: bm})
		eg.Insert(geom.Edge{Start: bm, End: lm})
	}
}

// N1 vectorizes g with the "n1" algorithm: every set pixel emits one of
// five sub-pixel shapes (a diamond plus four corner triangles) chosen by
// its 3x3 neighborhood, instead of a single square. Diagonals only appear
// in this algorithm's output.
func N1(g raster.Glyph, descent int, sc Scale) []Polygon {
	eg := NewEdgeGraph()
	size := g.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			if !g.Get(x, y) {
				continue
			}
			n := sample3x3(g, x, y)
			di, tl, tr, bl, br := n.corners()
			emitN1Pixel(eg, g, x, y, descent, sc, di, tl, tr, bl, br)
		}
	}
	eg.InternalEdgeDelete()
	return extractAll(eg, walkOpts{simplifyLines: true})
}
