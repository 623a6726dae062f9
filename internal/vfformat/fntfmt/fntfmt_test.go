package fntfmt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rkoesters/vfontas/internal/geom"
	"github.com/rkoesters/vfontas/internal/vfont"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	f := vfont.New()
	f.Blank(NumGlyphs, geom.Size{W: 8, H: 16})
	f.Glyphs[1] = f.Glyphs[1].Set(0, 0, true).Set(7, 15, true)

	var buf bytes.Buffer
	if err := Save(&buf, f); err != nil {
		t.Fatal(err)
	}

	got, err := Load(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Glyphs) != NumGlyphs {
		t.Fatalf("len(Glyphs) = %d, want %d", len(got.Glyphs), NumGlyphs)
	}
	if !got.Glyphs[1].Get(0, 0) || !got.Glyphs[1].Get(7, 15) {
		t.Error("glyph 1 lost its set pixels across a round trip")
	}
}

func TestBlankFontSavesToExactZeroByteCount(t *testing.T) {
	f := vfont.New()
	f.Blank(NumGlyphs, geom.Size{W: 8, H: 16})

	var buf bytes.Buffer
	if err := Save(&buf, f); err != nil {
		t.Fatal(err)
	}
	want := NumGlyphs * 16
	if buf.Len() != want {
		t.Fatalf("len(output) = %d, want %d", buf.Len(), want)
	}
	for i, b := range buf.Bytes() {
		if b != 0 {
			t.Fatalf("byte %d = 0x%02x, want 0x00", i, b)
		}
	}
}

func TestSaveRejectsWrongGlyphCount(t *testing.T) {
	f := vfont.New()
	f.Blank(10, geom.Size{W: 8, H: 16})
	var buf bytes.Buffer
	if err := Save(&buf, f); err == nil {
		t.Fatal("expected error for a font without exactly 256 glyphs")
	}
}

func TestSaveRejectsMismatchedHeights(t *testing.T) {
	f := vfont.New()
	f.Blank(NumGlyphs, geom.Size{W: 8, H: 16})
	f.Glyphs[1] = f.Glyphs[1].Upscale(1, 2)
	var buf bytes.Buffer
	if err := Save(&buf, f); err == nil {
		t.Fatal("expected error for mismatched glyph heights")
	}
}

func TestSaveRejectsNonEightWideGlyph(t *testing.T) {
	f := vfont.New()
	f.Blank(NumGlyphs, geom.Size{W: 8, H: 16})
	f.Glyphs[1] = f.Glyphs[1].Upscale(2, 1)
	var buf bytes.Buffer
	if err := Save(&buf, f); err == nil {
		t.Fatal("expected error for a glyph wider than 8 pixels")
	}
}

func TestLoadRejectsSizeNotMultipleOf256(t *testing.T) {
	if _, err := Load(strings.NewReader(strings.Repeat("\x00", 300))); err == nil {
		t.Fatal("expected error for a size that is not a multiple of 256")
	}
}
