package vector

import (
	"sort"

	"github.com/rkoesters/vfontas/internal/geom"
)

// EdgeGraph is the vectorizer's working store: an ordered-by-vertex set of
// edges with the invariant that at most one edge exists per (start, end)
// tuple. Insertion order is irrelevant; successor lookup by Start == v is
// the hot path, backed by a map from Start to its sorted set of End
// vertices (a vertex never has more than two outgoing edges, by
// construction of the emission rules in this package).
type EdgeGraph struct {
	out map[geom.Vertex][]geom.Vertex
	n   int
}

// NewEdgeGraph returns an empty graph.
func NewEdgeGraph() *EdgeGraph {
	return &EdgeGraph{out: make(map[geom.Vertex][]geom.Vertex)}
}

// Len returns the number of edges currently in the graph.
func (g *EdgeGraph) Len() int { return g.n }

// Empty reports whether the graph holds no edges.
func (g *EdgeGraph) Empty() bool { return g.n == 0 }

// Insert adds e to the graph if (e.Start, e.End) is not already present.
func (g *EdgeGraph) Insert(e geom.Edge) {
	ends := g.out[e.Start]
	idx := sort.Search(len(ends), func(i int) bool { return !ends[i].Less(e.End) })
	if idx < len(ends) && ends[idx].Equal(e.End) {
		return
	}
	ends = append(ends, geom.Vertex{})
	copy(ends[idx+1:], ends[idx:])
	ends[idx] = e.End
	g.out[e.Start] = ends
	g.n++
}

// Has reports whether e is present.
func (g *EdgeGraph) Has(e geom.Edge) bool {
	ends := g.out[e.Start]
	idx := sort.Search(len(ends), func(i int) bool { return !ends[i].Less(e.End) })
	return idx < len(ends) && ends[idx].Equal(e.End)
}

// Remove deletes e from the graph, reporting whether it was present.
func (g *EdgeGraph) Remove(e geom.Edge) bool {
	ends := g.out[e.Start]
	idx := sort.Search(len(ends), func(i int) bool { return !ends[i].Less(e.End) })
	if idx >= len(ends) || !ends[idx].Equal(e.End) {
		return false
	}
	ends = append(ends[:idx], ends[idx+1:]...)
	if len(ends) == 0 {
		delete(g.out, e.Start)
	} else {
		g.out[e.Start] = ends
	}
	g.n--
	return true
}

// Neighbors returns the (ascending-sorted) End vertices of edges starting
// at v. The returned slice must not be mutated by the caller.
func (g *EdgeGraph) Neighbors(v geom.Vertex) []geom.Vertex {
	return g.out[v]
}

// AnyEdge returns the smallest edge in the graph under (Start, then End)
// lexicographic order, used to seed a new polygon walk.
func (g *EdgeGraph) AnyEdge() (geom.Edge, bool) {
	if g.n == 0 {
		return geom.Edge{}, false
	}
	starts := make([]geom.Vertex, 0, len(g.out))
	for s := range g.out {
		starts = append(starts, s)
	}
	sort.Slice(starts, func(i, j int) bool { return starts[i].Less(starts[j]) })
	s := starts[0]
	return geom.Edge{Start: s, End: g.out[s][0]}, true
}

// Edges returns a snapshot of every edge currently in the graph, in no
// particular order beyond being grouped by Start.
func (g *EdgeGraph) Edges() []geom.Edge {
	out := make([]geom.Edge, 0, g.n)
	for s, ends := range g.out {
		for _, e := range ends {
			out = append(out, geom.Edge{Start: s, End: e})
		}
	}
	return out
}

// InternalEdgeDelete removes every pair of edges (a->b) and (b->a) both
// present in the graph: this fuses adjacent emitted squares/triangles into
// larger polygons without re-orienting any remaining edge. A self-loop
// (a->a), were one ever inserted, has no effect here; it is instead caught
// as a corrupt outline during polygon extraction.
func (g *EdgeGraph) InternalEdgeDelete() {
	for _, e := range g.Edges() {
		if !g.Has(e) {
			continue // already removed as the reverse of an earlier pair
		}
		rev := e.Reverse()
		if g.Has(rev) {
			g.Remove(e)
			g.Remove(rev)
		}
	}
}
