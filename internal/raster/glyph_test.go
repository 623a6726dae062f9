package raster

import (
	"testing"

	"github.com/rkoesters/vfontas/internal/geom"
)

func sampleGlyph() Glyph {
	// A small 'A'-ish profile, 5x5.
	g := New(geom.Size{W: 5, H: 5})
	bits := [][]int{
		{0, 1, 1, 1, 0},
		{1, 0, 0, 0, 1},
		{1, 1, 1, 1, 1},
		{1, 0, 0, 0, 1},
		{1, 0, 0, 0, 1},
	}
	for y, row := range bits {
		for x, b := range row {
			g = g.Set(x, y, b == 1)
		}
	}
	return g
}

func TestRowpadRoundTrip(t *testing.T) {
	g := sampleGlyph()
	got, err := CreateFromRpad(g.Size(), g.AsRowpad())
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(g) {
		t.Errorf("round trip mismatch")
	}
}

func TestFlipInvolution(t *testing.T) {
	g := sampleGlyph()
	if !g.Flip(true, false).Flip(true, false).Equal(g) {
		t.Errorf("flip(flip(g,x,y),x,y) != g for x")
	}
	if !g.Flip(false, true).Flip(false, true).Equal(g) {
		t.Errorf("flip(flip(g,x,y),x,y) != g for y")
	}
	if !g.Flip(true, true).Flip(true, true).Equal(g) {
		t.Errorf("flip(flip(g,x,y),x,y) != g for both")
	}
}

func TestUpscaleIdentityAndSize(t *testing.T) {
	g := sampleGlyph()
	if !g.Upscale(1, 1).Equal(g) {
		t.Errorf("upscale by (1,1) should be identity")
	}
	up := g.Upscale(2, 3)
	want := geom.Size{W: g.Size().W * 2, H: g.Size().H * 3}
	if up.Size() != want {
		t.Errorf("got size %v, want %v", up.Size(), want)
	}
}

func TestCropToBlankEqualsSelf(t *testing.T) {
	g := sampleGlyph()
	rect := geom.NewRect(0, 0, g.Size().W, g.Size().H)
	if !g.Crop(rect).Equal(g) {
		t.Errorf("copy_to_blank(rect, blank(size), rect) != g")
	}
}

func TestOverstrikeSupersetAndZero(t *testing.T) {
	g := sampleGlyph()
	if !g.Overstrike(0).Equal(g) {
		t.Errorf("overstrike(g, 0) != g")
	}
	over := g.Overstrike(2)
	for y := 0; y < g.Size().H; y++ {
		for x := 0; x < g.Size().W; x++ {
			if g.Get(x, y) && !over.Get(x, y) {
				t.Fatalf("overstrike lost pixel at (%d,%d)", x, y)
			}
		}
	}
}

func TestFindBaseline(t *testing.T) {
	g := sampleGlyph()
	if got := g.FindBaseline(); got != 5 {
		t.Errorf("got %d, want 5", got)
	}
	blank := New(geom.Size{W: 4, H: 4})
	if got := blank.FindBaseline(); got != -1 {
		t.Errorf("got %d, want -1 for blank glyph", got)
	}
}

func TestLge(t *testing.T) {
	g := New(geom.Size{W: 10, H: 2})
	g = g.Set(8, 0, true).Set(8, 1, false)
	out := g.Lge(1)
	if !out.Get(9, 0) || out.Get(9, 1) {
		t.Errorf("lge(1) did not replicate column 8 into column 9")
	}
}

func TestAsPcltHeader(t *testing.T) {
	g := New(geom.Size{W: 3, H: 2})
	s := g.AsPclt()
	want := "PCLT\n3 2\n......\n......\n"
	if s != want {
		t.Errorf("got %q, want %q", s, want)
	}
}
