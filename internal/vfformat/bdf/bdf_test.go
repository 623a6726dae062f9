package bdf

import (
	"strings"
	"testing"

	"github.com/rkoesters/vfontas/internal/geom"
	"github.com/rkoesters/vfontas/internal/vfont"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	f := vfont.New()
	f.Blank(2, geom.Size{W: 8, H: 8})
	f.Glyphs[0] = f.Glyphs[0].Set(0, 0, true).Set(7, 7, true)
	f.EnsureMap().AddI2U(0, 'A')
	f.SetProp("name", "test-font")

	var sb strings.Builder
	if err := Save(&sb, f); err != nil {
		t.Fatal(err)
	}

	got, err := Load(strings.NewReader(sb.String()))
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Glyphs) != 2 {
		t.Fatalf("len(Glyphs) = %d, want 2", len(got.Glyphs))
	}
	if !got.Glyphs[0].Get(0, 0) || !got.Glyphs[0].Get(7, 7) {
		t.Error("glyph 0 lost its set pixels across a round trip")
	}
	if got.Map.ToIndex('A') != 0 {
		t.Errorf("ToIndex('A') = %d, want 0", got.Map.ToIndex('A'))
	}
	if got.Props["name"] != "test-font" {
		t.Errorf("Props[name] = %q, want test-font", got.Props["name"])
	}
}

func TestLoadRejectsMissingStartfont(t *testing.T) {
	if _, err := Load(strings.NewReader("FONT x\n")); err == nil {
		t.Fatal("expected error for missing STARTFONT")
	}
}

func TestLoadHandlesNonRectangularWidth(t *testing.T) {
	const doc = "STARTFONT 2.1\n" +
		"FONT odd\n" +
		"CHARS 1\n" +
		"STARTCHAR glyph0001\n" +
		"ENCODING 1\n" +
		"SWIDTH 1000 0\n" +
		"DWIDTH 9 0\n" +
		"BBX 9 1 0 0\n" +
		"BITMAP\n" +
		"8000\n" +
		"ENDCHAR\n" +
		"ENDFONT\n"
	f, err := Load(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	if !f.Glyphs[0].Get(0, 0) {
		t.Error("expected pixel (0,0) set for a 9-wide glyph's 2-byte row")
	}
}
