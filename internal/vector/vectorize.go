// Package vector implements the bitmap-to-outline vectorizer: it converts
// a monochrome raster glyph into a list of closed, oriented polygons. Three
// strategies are supported -- simple, n1 and n2 -- selected by the caller;
// see Simple, N1 and N2.
package vector

import (
	"log"

	"github.com/rkoesters/vfontas/internal/geom"
	"github.com/rkoesters/vfontas/internal/raster"
)

// Polygon is a closed, oriented sequence of edges: Edges[i].End ==
// Edges[i+1].Start (indices mod len), and the last edge's End equals the
// first edge's Start.
type Polygon struct {
	Edges []geom.Edge
}

// Scale is the pair of integer scale factors applied to bitmap coordinates
// before emitting edges. The default is (2, 2); n2 requires an even scale
// so that its half-pixel nodal points are integral.
type Scale struct {
	SX, SY int
}

// DefaultScale is the vectorizer's default coordinate scale.
var DefaultScale = Scale{SX: 2, SY: 2}

// emitSquare inserts the four edges of the unit-pixel square at bitmap
// (x, y) into g, per the "pixel emission" rule of the spec: descent shifts
// the glyph's row origin, sx/sy scale to integer vectorizer coordinates,
// and every square is wound so the interior lies to the right of each edge
// (left edge downward, bottom edge rightward, right edge upward, top edge
// leftward).
func emitSquare(g *EdgeGraph, size raster.Glyph, x, y, descent int, sc Scale) {
	h := size.Size().H
	yy := h - 1 - y - descent
	nw := geom.Vertex{Y: yy * sc.SY, X: x * sc.SX}
	ne := geom.Vertex{Y: yy * sc.SY, X: (x + 1) * sc.SX}
	sw := geom.Vertex{Y: (yy + 1) * sc.SY, X: x * sc.SX}
	se := geom.Vertex{Y: (yy + 1) * sc.SY, X: (x + 1) * sc.SX}
	g.Insert(geom.Edge{Start: nw, End: sw}) // left, downward
	g.Insert(geom.Edge{Start: sw, End: se}) // bottom, rightward
	g.Insert(geom.Edge{Start: se, End: ne}) // right, upward
	g.Insert(geom.Edge{Start: ne, End: nw}) // top, leftward
}

// makeSquares emits one unit square per set pixel of the glyph.
func makeSquares(gl raster.Glyph, descent int, sc Scale) *EdgeGraph {
	eg := NewEdgeGraph()
	size := gl.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			if gl.Get(x, y) {
				emitSquare(eg, gl, x, y, descent, sc)
			}
		}
	}
	return eg
}

// P_SIMPLIFY_LINES and P_ISTHMUS are walk options for popPoly, named after
// the spec's flag constants.
type walkOpts struct {
	simplifyLines bool
	isthmus       bool
	bitmap        raster.Glyph // only consulted when isthmus is set
	descent       int
	sc            Scale
}

// extractAll repeatedly pops polygons from eg until it is empty.
func extractAll(eg *EdgeGraph, opts walkOpts) []Polygon {
	var polys []Polygon
	for !eg.Empty() {
		p, ok := popPoly(eg, opts)
		if !ok {
			break
		}
		polys = append(polys, p)
	}
	return polys
}

// popPoly walks a single closed polygon out of eg, removing its edges as it
// goes. The seed is the smallest remaining edge by vertex order. At each
// branch vertex with two outgoing edges, the inward (interior-preserving)
// candidate is chosen unless opts.isthmus asks for a neighborhood test.
func popPoly(eg *EdgeGraph, opts walkOpts) (Polygon, bool) {
	seed, ok := eg.AnyEdge()
	if !ok {
		return Polygon{}, false
	}
	eg.Remove(seed)
	poly := Polygon{Edges: []geom.Edge{seed}}

	for poly.Edges[len(poly.Edges)-1].End != seed.Start {
		last := poly.Edges[len(poly.Edges)-1]
		tail := last.End
		cands := eg.Neighbors(tail)
		if len(cands) == 0 {
			log.Printf("vector: corrupt outline: no outgoing edge at %s; breaking polygon cleanly", tail)
			break
		}
		nextEnd := chooseBranch(last, cands, opts)
		next := geom.Edge{Start: tail, End: nextEnd}
		if next.Start == next.End {
			log.Printf("vector: corrupt outline: self-loop at %s", next.Start)
			eg.Remove(next)
			break
		}
		eg.Remove(next)

		if opts.simplifyLines {
			nd, nok := next.TrivialDir()
			ld, lok := last.TrivialDir()
			if nok && lok && nd == ld {
				poly.Edges[len(poly.Edges)-1].End = next.End
				continue
			}
		}
		poly.Edges = append(poly.Edges, next)
	}
	return poly, true
}

// chooseBranch picks which of the (one or two) candidate End vertices to
// continue the walk to, given the direction of the edge that arrived at
// the branch vertex.
//
// With a single candidate there is no choice. With two, the spec's
// convention is: among the lexicographically sorted candidates, prefer the
// successor (the larger one) when the arriving direction is 0 or 270, and
// the predecessor (the smaller one) when it is 90 or 180. This keeps the
// interior on the right and makes shapes with enclaves emit a single
// self-touching polygon.
//
// Diagonal arrival directions (only possible in n1 output) are not
// addressed by the spec's table; this implementation defaults to the
// successor, which keeps the rule total and deterministic.
func chooseBranch(arriving geom.Edge, cands []geom.Vertex, opts walkOpts) geom.Vertex {
	if len(cands) == 1 {
		return cands[0]
	}
	// cands is sorted ascending: cands[0] is the predecessor, cands[len-1]
	// (there are at most two) is the successor.
	pred, succ := cands[0], cands[len(cands)-1]

	if opts.isthmus {
		if outward := isthmusPrefersOutward(arriving, opts); outward {
			// "outward" takes whichever candidate is NOT the inward one
			// selected by the base rule below.
			inward := inwardChoice(arriving, pred, succ)
			if inward == pred {
				return succ
			}
			return pred
		}
	}
	return inwardChoice(arriving, pred, succ)
}

func inwardChoice(arriving geom.Edge, pred, succ geom.Vertex) geom.Vertex {
	dir, ok := arriving.TrivialDir()
	if !ok {
		return succ
	}
	switch dir {
	case geom.Dir0, geom.Dir270:
		return succ
	case geom.Dir90, geom.Dir180:
		return pred
	default:
		return succ
	}
}

// isthmusPrefersOutward implements the P_ISTHMUS neighborhood test used by
// the n2ev variant. A branch vertex sits at the corner shared by up to four
// bitmap pixels; this checks the two "antijoin" diagonal-touch patterns
// (A1: NW & SE set, NE & SW clear; A2: the mirror image) documented in the
// glossary. Per the spec's open question, the joinworthy pattern J1 is
// deliberately left unmatched: any other neighborhood falls through to
// "outward".
func isthmusPrefersOutward(arriving geom.Edge, opts walkOpts) bool {
	tail := arriving.End
	yy := tail.Y / opts.sc.SY
	x := tail.X / opts.sc.SX
	y := opts.bitmap.Size().H - 1 - yy - opts.descent

	nw := opts.bitmap.Get(x-1, y+1)
	ne := opts.bitmap.Get(x, y+1)
	sw := opts.bitmap.Get(x-1, y)
	se := opts.bitmap.Get(x, y)

	a1 := nw && se && !ne && !sw
	a2 := ne && sw && !nw && !se
	if a1 || a2 {
		return false // antijoinworthy: keep the enclave separate
	}
	return true // no match: join (outward)
}
