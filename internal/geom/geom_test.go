package geom

import "testing"

func TestTrivialDir(t *testing.T) {
	cases := []struct {
		e    Edge
		want Dir
	}{
		{Edge{Vertex{0, 0}, Vertex{1, 0}}, Dir0},
		{Edge{Vertex{0, 0}, Vertex{1, 1}}, Dir45},
		{Edge{Vertex{0, 0}, Vertex{0, 1}}, Dir90},
		{Edge{Vertex{0, 0}, Vertex{-1, 1}}, Dir135},
		{Edge{Vertex{0, 0}, Vertex{-1, 0}}, Dir180},
		{Edge{Vertex{0, 0}, Vertex{-1, -1}}, Dir225},
		{Edge{Vertex{0, 0}, Vertex{0, -1}}, Dir270},
		{Edge{Vertex{0, 0}, Vertex{1, -1}}, Dir315},
	}
	for _, c := range cases {
		got, ok := c.e.TrivialDir()
		if !ok || got != c.want {
			t.Errorf("%v: got (%v,%v), want %v", c.e, got, ok, c.want)
		}
	}
}

func TestTrivialDirSelfLoop(t *testing.T) {
	e := Edge{Vertex{2, 2}, Vertex{2, 2}}
	if _, ok := e.TrivialDir(); ok {
		t.Errorf("self-loop should have no direction")
	}
}

func TestVertexOrdering(t *testing.T) {
	a := Vertex{0, 5}
	b := Vertex{1, 0}
	if !a.Less(b) {
		t.Errorf("expected (0,5) < (1,0) under (y,x) order")
	}
}

func TestRectIntersect(t *testing.T) {
	r1 := NewRect(0, 0, 10, 10)
	r2 := NewRect(5, 5, 10, 10)
	got, ok := r1.Intersect(r2)
	if !ok {
		t.Fatal("expected overlap")
	}
	if got != NewRect(5, 5, 5, 5) {
		t.Errorf("got %v", got)
	}
}
