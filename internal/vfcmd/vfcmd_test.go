package vfcmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rkoesters/vfontas/internal/vfformat/fntfmt"
)

func newTestState() *State {
	st := NewState()
	st.Stdout = &bytes.Buffer{}
	return st
}

func TestBlankfntSavefntEmitsZeroBytes(t *testing.T) {
	var out bytes.Buffer
	st := newTestState()
	st.Stdout = &out
	if err := RunState(st, []string{"blankfnt", "savefnt=-"}); err != nil {
		t.Fatal(err)
	}
	want := fntfmt.NumGlyphs * 16
	if out.Len() != want {
		t.Fatalf("len(output) = %d, want %d", out.Len(), want)
	}
	for i, b := range out.Bytes() {
		if b != 0 {
			t.Fatalf("byte %d = 0x%02x, want 0", i, b)
		}
	}
}

func TestUnknownCommandFails(t *testing.T) {
	st := newTestState()
	if err := RunState(st, []string{"bogus"}); err == nil {
		t.Fatal("expected error for unknown command")
	}
}

func TestLeadingDashIgnored(t *testing.T) {
	st := newTestState()
	if err := RunState(st, []string{"-blankfnt"}); err != nil {
		t.Fatal(err)
	}
	if len(st.Font.Glyphs) != 256 {
		t.Fatalf("len(Glyphs) = %d, want 256", len(st.Font.Glyphs))
	}
}

func TestFliphTwiceIsIdentity(t *testing.T) {
	st := newTestState()
	if err := RunState(st, []string{"blankfnt"}); err != nil {
		t.Fatal(err)
	}
	st.Font.Glyphs[0] = st.Font.Glyphs[0].Set(0, 0, true)
	before := st.Font.Glyphs[0]
	if err := RunState(st, []string{"fliph", "fliph"}); err != nil {
		t.Fatal(err)
	}
	if !st.Font.Glyphs[0].Equal(before) {
		t.Error("fliph fliph should be the identity")
	}
}

func TestCanvasControlsBlankfntSize(t *testing.T) {
	st := newTestState()
	if err := RunState(st, []string{"canvas=10,20", "blankfnt"}); err != nil {
		t.Fatal(err)
	}
	size := st.Font.NominalSize()
	if size.W != 10 || size.H != 20 {
		t.Errorf("size = %v, want 10x20", size)
	}
}

func TestUpscaleUpdatesCanvasForSubsequentBlankfnt(t *testing.T) {
	st := newTestState()
	if err := RunState(st, []string{"blankfnt", "upscale=2,3"}); err != nil {
		t.Fatal(err)
	}
	size := st.Font.NominalSize()
	if size.W != 16 || size.H != 48 {
		t.Errorf("size after upscale = %v, want 16x48", size)
	}
	if st.Canvas.W != 16 || st.Canvas.H != 48 {
		t.Errorf("st.Canvas = %v, want 16x48", st.Canvas)
	}
}

func TestXlatSwapsGlyphsAndMap(t *testing.T) {
	st := newTestState()
	if err := RunState(st, []string{"blankfnt"}); err != nil {
		t.Fatal(err)
	}
	st.Font.Glyphs[1] = st.Font.Glyphs[1].Set(0, 0, true)
	m := st.Font.EnsureMap()
	m.AddI2U(1, 'A')
	if err := RunState(st, []string{"xlat=1,2"}); err != nil {
		t.Fatal(err)
	}
	if !st.Font.Glyphs[2].Get(0, 0) {
		t.Error("xlat should have moved the marked pixel to index 2")
	}
	if st.Font.Map.ToIndex('A') != 2 {
		t.Errorf("ToIndex('A') = %d, want 2", st.Font.Map.ToIndex('A'))
	}
}

func TestLgeuSkipsWithoutMap(t *testing.T) {
	st := newTestState()
	if err := RunState(st, []string{"blankfnt", "lgeu"}); err != nil {
		t.Fatal(err)
	}
}

func TestCropShrinksGlyphsAndCanvas(t *testing.T) {
	st := newTestState()
	if err := RunState(st, []string{"blankfnt", "crop=0,0,4,4"}); err != nil {
		t.Fatal(err)
	}
	size := st.Font.NominalSize()
	if size.W != 4 || size.H != 4 {
		t.Errorf("size after crop = %v, want 4x4", size)
	}
}

func TestSetnameAndSetpropRoundTripThroughSFD(t *testing.T) {
	st := newTestState()
	var out bytes.Buffer
	st.Stdout = &out
	if err := RunState(st, []string{"blankfnt", "setname=Example", "savesfd=-"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "FontName: Example") {
		t.Error("expected FontName: Example in SFD output")
	}
}

func TestLoadrawRejectsBadSize(t *testing.T) {
	st := newTestState()
	st.Stdin = strings.NewReader("abc")
	if err := RunState(st, []string{"loadraw=-,8,16"}); err == nil {
		t.Fatal("expected error for a stream that isn't a multiple of the glyph size")
	}
}
