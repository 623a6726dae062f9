package vfont

import (
	"testing"

	"github.com/rkoesters/vfontas/internal/geom"
	"github.com/rkoesters/vfontas/internal/raster"
)

func TestNewEmptyNominalSize(t *testing.T) {
	f := New()
	if got := f.NominalSize(); got != (geom.Size{}) {
		t.Errorf("NominalSize() on empty font = %v, want zero value", got)
	}
}

func TestBlank(t *testing.T) {
	f := New()
	f.Blank(4, geom.Size{W: 8, H: 16})
	if len(f.Glyphs) != 4 {
		t.Fatalf("len(Glyphs) = %d, want 4", len(f.Glyphs))
	}
	for i, g := range f.Glyphs {
		if g.Size() != (geom.Size{W: 8, H: 16}) {
			t.Errorf("Glyphs[%d].Size() = %v, want {8 16}", i, g.Size())
		}
		for y := 0; y < 16; y++ {
			for x := 0; x < 8; x++ {
				if g.Get(x, y) {
					t.Fatalf("Glyphs[%d] not blank at (%d,%d)", i, x, y)
				}
			}
		}
	}
	if got := f.NominalSize(); got != (geom.Size{W: 8, H: 16}) {
		t.Errorf("NominalSize() = %v, want {8 16}", got)
	}
}

func TestAppend(t *testing.T) {
	f := New()
	g := raster.New(geom.Size{W: 4, H: 4})
	idx := f.Append(g)
	if idx != 0 {
		t.Errorf("first Append returned index %d, want 0", idx)
	}
	idx2 := f.Append(g)
	if idx2 != 1 {
		t.Errorf("second Append returned index %d, want 1", idx2)
	}
	if len(f.Glyphs) != 2 {
		t.Fatalf("len(Glyphs) = %d, want 2", len(f.Glyphs))
	}
}

func TestEnsureMapAndClearMap(t *testing.T) {
	f := New()
	if f.Map != nil {
		t.Fatal("new font should have a nil Map")
	}
	m := f.EnsureMap()
	if m == nil {
		t.Fatal("EnsureMap returned nil")
	}
	if f.Map != m {
		t.Error("EnsureMap did not store the map on the font")
	}
	// Idempotent.
	if f.EnsureMap() != m {
		t.Error("second EnsureMap call returned a different map")
	}
	f.ClearMap()
	if f.Map != nil {
		t.Error("ClearMap did not reset Map to nil")
	}
}

func TestSetProp(t *testing.T) {
	f := &Font{}
	f.SetProp("FAMILY", "Terminus")
	if f.Props["FAMILY"] != "Terminus" {
		t.Errorf("Props[FAMILY] = %q, want Terminus", f.Props["FAMILY"])
	}
	f.SetProp("FAMILY", "Fixed")
	if f.Props["FAMILY"] != "Fixed" {
		t.Errorf("second SetProp did not overwrite: got %q", f.Props["FAMILY"])
	}
}

func TestTransform(t *testing.T) {
	f := New()
	f.Blank(2, geom.Size{W: 4, H: 4})
	f.Transform(func(g raster.Glyph) raster.Glyph {
		return g.Set(0, 0, true)
	})
	for i, g := range f.Glyphs {
		if !g.Get(0, 0) {
			t.Errorf("Glyphs[%d] not transformed", i)
		}
	}
}
