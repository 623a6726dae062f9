package vector

import (
	"github.com/rkoesters/vfontas/internal/geom"
	"github.com/rkoesters/vfontas/internal/raster"
)

// N2 vectorizes g with the "n2" algorithm: pixel squares as in Simple, but
// each resulting polygon is post-processed by n2Angle to turn rectilinear
// staircases into short diagonal cuts, imitating outline smoothing while
// preserving one-pixel features (pimples) and collapsing symmetric notches
// (dimples).
func N2(g raster.Glyph, descent int, sc Scale) []Polygon {
	eg := makeSquares(g, descent, sc)
	eg.InternalEdgeDelete()
	polys := extractAll(eg, walkOpts{simplifyLines: false})
	out := make([]Polygon, len(polys))
	for i, p := range polys {
		out[i] = n2Angle(p, sc.SX/2, sc.SY/2)
	}
	return out
}

// N2EV vectorizes g with the n2ev variant: identical to N2, except the
// underlying polygon walk additionally consults the P_ISTHMUS neighborhood
// test at each two-way branch, yielding the "extra-vertex" treatment of
// certain diagonal crossings.
func N2EV(g raster.Glyph, descent int, sc Scale) []Polygon {
	eg := makeSquares(g, descent, sc)
	eg.InternalEdgeDelete()
	polys := extractAll(eg, walkOpts{simplifyLines: false, isthmus: true, bitmap: g, descent: descent, sc: sc})
	out := make([]Polygon, len(polys))
	for i, p := range polys {
		out[i] = n2Angle(p, sc.SX/2, sc.SY/2)
	}
	return out
}

type angleFlags uint8

const (
	flagHEAD angleFlags = 1 << iota
	flagTAIL
	flagXHEAD
	flagXTAIL
)

func norm360(d int) geom.Dir {
	d %= 360
	if d < 0 {
		d += 360
	}
	return geom.Dir(d)
}

// n2Angle introduces short diagonal cuts at rectilinear staircases while
// protecting one-pixel bumps (pimples) and collapsing symmetric notches
// (dimples), per the seven-edge sliding-window rules of the spec. halfSx
// and halfSy are the half-scaled-pixel step sizes used to shorten the two
// edges flanking each inserted diagonal.
func n2Angle(poly Polygon, halfSx, halfSy int) Polygon {
	n := len(poly.Edges)
	if n < 7 {
		return poly
	}
	dirs := make([]geom.Dir, n)
	for i, e := range poly.Edges {
		d, ok := e.TrivialDir()
		if !ok {
			return poly // a degenerate edge; leave the polygon untouched
		}
		dirs[i] = d
	}
	flags := make([]angleFlags, n)

	at := func(i int) geom.Dir { return dirs[((i%n)+n)%n] }

	for i := 0; i < n; i++ {
		dm3, dm2, dm1 := at(i-3), at(i-2), at(i-1)
		d00 := at(i)
		dp1, dp2, dp3 := at(i+1), at(i+2), at(i+3)

		mark := func(idx int, f angleFlags) { flags[((idx%n)+n)%n] |= f }

		// Pimple: protect a one-pixel bump.
		if d00 == dm2 && d00 == dp2 &&
			(dm3 == d00 || dm3 == dp1) &&
			(dp3 == d00 || dp3 == dm1) &&
			dm1 == norm360(int(dm2)+270) &&
			dp1 == norm360(int(dm2)+90) {
			for _, idx := range []int{i - 2, i - 1, i, i + 1, i + 2} {
				mark(idx, flagXHEAD|flagXTAIL)
			}
		}

		// Dimple: collapse a symmetric notch.
		if d00 == dm2 && d00 == dp2 &&
			dm1 == norm360(int(dm2)+90) &&
			dp1 == norm360(int(dm2)+270) {
			if dm3 == dm2 {
				for _, idx := range []int{i - 2, i - 1, i} {
					mark(idx, flagHEAD|flagTAIL)
				}
			}
			if dp3 == dp2 {
				for _, idx := range []int{i, i + 1, i + 2} {
					mark(idx, flagHEAD|flagTAIL)
				}
			}
		}

		// Chicane: a rectilinear step pattern.
		if dm1 == dp1 && (dp1 == norm360(int(d00)+90) || dp1 == norm360(int(d00)+270)) {
			eSerifTop := dm2 == dm1 && d00 == norm360(int(dm1)+270) && dp1 == dm1 &&
				dp2 == norm360(int(dm1)+90) && dp3 == dp2
			eSerifBottom := dp2 == dp1 && d00 == norm360(int(dp1)+90) && dm1 == dp1 &&
				dm2 == norm360(int(dp1)+270) && dm3 == dm2
			if !eSerifTop && !eSerifBottom {
				mark(i-1, flagTAIL)
				mark(i, flagHEAD|flagTAIL)
				mark(i+1, flagHEAD)
				if dp2 == d00 {
					mark(i+1, flagTAIL)
					mark(i+2, flagHEAD)
				}
				if dm2 == d00 {
					mark(i-2, flagTAIL)
					mark(i-1, flagHEAD)
				}
			}
		}
	}

	triggers := make([]bool, n)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		triggers[i] = flags[i]&flagTAIL != 0 && flags[j]&flagHEAD != 0 &&
			flags[i]&flagXTAIL == 0 && flags[j]&flagXHEAD == 0
	}

	step := func(d geom.Dir) (dy, dx int) {
		switch d {
		case geom.Dir0:
			return halfSy, 0
		case geom.Dir90:
			return 0, halfSx
		case geom.Dir180:
			return -halfSy, 0
		case geom.Dir270:
			return 0, -halfSx
		default:
			return 0, 0
		}
	}

	var out []geom.Edge
	for i := 0; i < n; i++ {
		e := poly.Edges[i]
		prevTrig := triggers[((i-1)%n+n)%n]
		curTrig := triggers[i]

		start, end := e.Start, e.End
		if prevTrig {
			dy, dx := step(dirs[i])
			start = geom.Vertex{Y: start.Y + dy, X: start.X + dx}
		}
		if curTrig {
			dy, dx := step(dirs[i])
			end = geom.Vertex{Y: end.Y - dy, X: end.X - dx}
		}
		if start != end {
			out = append(out, geom.Edge{Start: start, End: end})
		}
		if curTrig {
			nextStart := poly.Edges[(i+1)%n].Start
			dy, dx := step(dirs[(i+1)%n])
			nextStart = geom.Vertex{Y: nextStart.Y + dy, X: nextStart.X + dx}
			if end != nextStart {
				out = append(out, geom.Edge{Start: end, End: nextStart})
			}
		}
	}

	return Polygon{Edges: coalesce(out)}
}

// coalesce merges cyclically-consecutive edges that share the same
// direction, so a straight run stays a single edge.
func coalesce(edges []geom.Edge) []geom.Edge {
	if len(edges) < 2 {
		return edges
	}
	out := make([]geom.Edge, 0, len(edges))
	out = append(out, edges[0])
	for i := 1; i < len(edges); i++ {
		last := &out[len(out)-1]
		e := edges[i]
		ld, lok := last.TrivialDir()
		ed, eok := e.TrivialDir()
		if lok && eok && ld == ed && last.End == e.Start {
			last.End = e.End
			continue
		}
		out = append(out, e)
	}
	// Wrap-around merge.
	if len(out) > 1 {
		ld, lok := out[len(out)-1].TrivialDir()
		ed, eok := out[0].TrivialDir()
		if lok && eok && ld == ed && out[len(out)-1].End == out[0].Start {
			out[0].Start = out[len(out)-1].Start
			out = out[:len(out)-1]
		}
	}
	return out
}
