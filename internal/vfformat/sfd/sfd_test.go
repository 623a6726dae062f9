package sfd

import (
	"strings"
	"testing"

	"github.com/rkoesters/vfontas/internal/geom"
	"github.com/rkoesters/vfontas/internal/raster"
	"github.com/rkoesters/vfontas/internal/vfont"
	"github.com/rkoesters/vfontas/internal/vector"
)

func solidGlyph() raster.Glyph {
	g := raster.New(geom.Size{W: 2, H: 2})
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			g = g.Set(x, y, true)
		}
	}
	return g
}

func TestSaveEmitsOneCharPerGlyph(t *testing.T) {
	f := vfont.New()
	f.Append(solidGlyph())
	f.Append(solidGlyph())

	var sb strings.Builder
	if err := Save(&sb, f, Simple, 0, vector.DefaultScale); err != nil {
		t.Fatal(err)
	}
	out := sb.String()
	if strings.Count(out, "StartChar:") != 2 {
		t.Errorf("expected 2 StartChar blocks, got:\n%s", out)
	}
	if !strings.HasPrefix(out, "SplineFontDB: 3.0\n") {
		t.Errorf("missing SplineFontDB header: %q", out)
	}
	if !strings.HasSuffix(out, "EndChars\nEndSplineFont\n") {
		t.Errorf("missing trailer: %q", out)
	}
}

func TestSaveUsesPlaceholderNameWhenUnset(t *testing.T) {
	f := vfont.New()
	f.Append(solidGlyph())
	var sb strings.Builder
	if err := Save(&sb, f, Simple, 0, vector.DefaultScale); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(sb.String(), "FontName: Untitled\n") {
		t.Errorf("expected placeholder FontName, got %q", sb.String())
	}
}

func TestSaveHonorsSetName(t *testing.T) {
	f := vfont.New()
	f.Append(solidGlyph())
	f.SetProp("name", "MyFont")
	var sb strings.Builder
	if err := Save(&sb, f, Simple, 0, vector.DefaultScale); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(sb.String(), "FontName: MyFont\n") {
		t.Errorf("expected custom FontName, got %q", sb.String())
	}
}

func TestSplineSetClosesPolygon(t *testing.T) {
	f := vfont.New()
	f.Append(solidGlyph())
	var sb strings.Builder
	if err := Save(&sb, f, Simple, 0, vector.DefaultScale); err != nil {
		t.Fatal(err)
	}
	out := sb.String()
	if !strings.Contains(out, " m 1\n") || !strings.Contains(out, " l 1\n") {
		t.Errorf("expected moveto/lineto commands, got %q", out)
	}
}

func TestVectorizerAdaptersMatchUnderlyingAlgorithms(t *testing.T) {
	g := solidGlyph()
	want := vector.N2(g, 0, vector.DefaultScale)
	got := N2(g, 0, vector.DefaultScale)
	if len(want) != len(got) {
		t.Fatalf("N2 adapter polygon count = %d, want %d", len(got), len(want))
	}
}
