package psf

import (
	"strings"
	"testing"

	"github.com/rkoesters/vfontas/internal/geom"
	"github.com/rkoesters/vfontas/internal/vfont"
)

func blankFont(n int, w, h int) *vfont.Font {
	f := vfont.New()
	f.Blank(n, geom.Size{W: w, H: h})
	return f
}

func TestV1RoundTrip(t *testing.T) {
	f := blankFont(256, 8, 16)
	f.Glyphs[65] = f.Glyphs[65].Set(0, 0, true)
	f.EnsureMap().AddI2U(65, 'A')

	var sb strings.Builder
	if err := SaveV1(&sb, f); err != nil {
		t.Fatal(err)
	}
	got, err := Load(strings.NewReader(sb.String()))
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Glyphs) != 256 {
		t.Fatalf("len(Glyphs) = %d, want 256", len(got.Glyphs))
	}
	if !got.Glyphs[65].Get(0, 0) {
		t.Error("glyph 65 should have pixel (0,0) set")
	}
	if got.Map.ToIndex('A') != 65 {
		t.Errorf("ToIndex('A') = %d, want 65", got.Map.ToIndex('A'))
	}
}

func TestV1RejectsNonStandardWidth(t *testing.T) {
	f := blankFont(256, 16, 16)
	var sb strings.Builder
	if err := SaveV1(&sb, f); err == nil {
		t.Fatal("expected error for non-8-wide glyph")
	}
}

func TestV2RoundTrip(t *testing.T) {
	f := blankFont(4, 10, 18)
	f.Glyphs[2] = f.Glyphs[2].Set(3, 4, true)
	f.EnsureMap().AddI2U(2, 0x00E9) // e-acute, exercises the 2-byte UTF-8 path

	var sb strings.Builder
	if err := SaveV2(&sb, f); err != nil {
		t.Fatal(err)
	}
	got, err := Load(strings.NewReader(sb.String()))
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Glyphs) != 4 {
		t.Fatalf("len(Glyphs) = %d, want 4", len(got.Glyphs))
	}
	sz := got.Glyphs[2].Size()
	if sz.W != 10 || sz.H != 18 {
		t.Fatalf("size = %v, want 10x18", sz)
	}
	if !got.Glyphs[2].Get(3, 4) {
		t.Error("glyph 2 should have pixel (3,4) set")
	}
	if got.Map.ToIndex(0x00E9) != 2 {
		t.Errorf("ToIndex(0xE9) = %d, want 2", got.Map.ToIndex(0x00E9))
	}
}

func TestLoadRejectsBadMagic(t *testing.T) {
	if _, err := Load(strings.NewReader("not a font file at all")); err == nil {
		t.Fatal("expected error for unrecognized magic")
	}
}

func TestV2RequiresUniformGlyphSize(t *testing.T) {
	f := blankFont(2, 8, 8)
	f.Glyphs[1] = f.Glyphs[1].Upscale(2, 1)
	var sb strings.Builder
	if err := SaveV2(&sb, f); err == nil {
		t.Fatal("expected error for mismatched glyph size")
	}
}
