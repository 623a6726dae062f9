package clt

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rkoesters/vfontas/internal/geom"
	"github.com/rkoesters/vfontas/internal/raster"
	"github.com/rkoesters/vfontas/internal/vfont"
)

func TestLoadParsesHeaderAndPixels(t *testing.T) {
	const text = "PCLT\n2 2\n##..\n..##\n"
	g, err := Load(strings.NewReader(text))
	if err != nil {
		t.Fatal(err)
	}
	sz := g.Size()
	if sz.W != 2 || sz.H != 2 {
		t.Fatalf("size = %v, want 2x2", sz)
	}
	if !g.Get(0, 0) || g.Get(1, 0) {
		t.Errorf("row 0 = %v,%v want true,false", g.Get(0, 0), g.Get(1, 0))
	}
	if g.Get(0, 1) || !g.Get(1, 1) {
		t.Errorf("row 1 = %v,%v want false,true", g.Get(0, 1), g.Get(1, 1))
	}
}

func TestLoadRejectsBadMagic(t *testing.T) {
	if _, err := Load(strings.NewReader("NOPE\n2 2\n....\n....\n")); err == nil {
		t.Fatal("expected error for bad header")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	g := raster.New(geom.Size{W: 2, H: 1}).Set(0, 0, true)
	var sb strings.Builder
	if err := Save(&sb, g); err != nil {
		t.Fatal(err)
	}
	g2, err := Load(strings.NewReader(sb.String()))
	if err != nil {
		t.Fatal(err)
	}
	if !g.Equal(g2) {
		t.Errorf("round trip mismatch: got %+v, want %+v", g2, g)
	}
}

func TestSaveFontWritesOneFilePerGlyph(t *testing.T) {
	f := vfont.New()
	f.Blank(1, geom.Size{W: 1, H: 1})
	f.EnsureMap().AddI2U(0, 'A')

	dir := t.TempDir()
	if err := SaveFont(dir, f); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "0041.clt")); err != nil {
		t.Errorf("expected 0041.clt: %v", err)
	}
}
