package palette

import (
	"testing"

	"github.com/rkoesters/vfontas/internal/paleval"
)

func TestVGAFirstFourEntries(t *testing.T) {
	p := VGA()
	want := [4][3]uint8{
		{0x00, 0x00, 0x00}, {0xaa, 0x00, 0x00}, {0x00, 0xaa, 0x00}, {0xaa, 0x55, 0x00},
	}
	for i, w := range want {
		if p.RGB(i) != w {
			t.Errorf("VGA entry %d = %v, want %v", i, p.RGB(i), w)
		}
	}
}

func TestSyncCoherency(t *testing.T) {
	p := VGA()
	orig := p.Entries[4].RGB
	p.SyncFromRGB()
	if p.Entries[4].RGB != orig {
		t.Fatalf("SyncFromRGB mutated RGB: got %v, want %v", p.Entries[4].RGB, orig)
	}
	p.SyncFromLCh()
	got := p.Entries[4].RGB
	for c := 0; c < 3; c++ {
		d := int(got[c]) - int(orig[c])
		if d < -1 || d > 1 {
			t.Errorf("round trip through LCh for channel %d: got %d, want ~%d", c, got[c], orig[c])
		}
	}
}

func TestRegisterWriteRecomputesCompanion(t *testing.T) {
	p := VGA()
	regs := p.Registers(1) // red
	beforeL := p.Entries[1].LCh.L
	regs.Set('r', 0)
	if p.Entries[1].LCh.L == beforeL {
		t.Error("writing r should have recomputed LCh.L")
	}
	if p.Entries[1].RGB[0] != 0 {
		t.Errorf("RGB[0] = %d, want 0", p.Entries[1].RGB[0])
	}
}

func TestFreeScalarsAreGlobal(t *testing.T) {
	p := VGA()
	regs := p.AllRegisters()
	if err := paleval.Eval("x=42", regs[:1]); err != nil {
		t.Fatal(err)
	}
	if p.X != 42 {
		t.Errorf("p.X = %v, want 42 (global, not per-entry)", p.X)
	}
	if regs[5].Get('x') != 42 {
		t.Error("entry 5 should see the same global x register")
	}
}

func TestInv16(t *testing.T) {
	p := New()
	p.Entries[0].RGB = [3]uint8{10, 20, 30}
	p.SyncFromRGB()
	p.Inv16()
	want := [3]uint8{245, 235, 225}
	if p.Entries[0].RGB != want {
		t.Errorf("Inv16 entry 0 = %v, want %v", p.Entries[0].RGB, want)
	}
}

func TestEqKeepsDarkestSpacesRest(t *testing.T) {
	p := VGA()
	darkest := p.Entries[0].LCh.L // black, index 0 in VGA
	p.Eq(DefaultEqB)
	if got := p.Entries[0].LCh.L; got != darkest {
		t.Errorf("darkest L after Eq = %v, want unchanged %v", got, darkest)
	}
	sortedLs := make([]float64, 16)
	for i := range sortedLs {
		sortedLs[i] = p.Entries[i].LCh.L
	}
	// The brightest entry (white, index 15 in VGA) should land at ~100.
	maxL := 0.0
	for _, l := range sortedLs {
		if l > maxL {
			maxL = l
		}
	}
	if maxL < 99 || maxL > 101 {
		t.Errorf("brightest L after Eq = %v, want ~100", maxL)
	}
}

func TestLoEqLeavesIndices9To15Untouched(t *testing.T) {
	before := VGA()
	p := VGA()
	p.LoEq(DefaultLoEqB, DefaultLoEqG)
	for i := 9; i < 16; i++ {
		if p.Entries[i].RGB != before.Entries[i].RGB {
			t.Errorf("LoEq should not touch entry %d, got %v want %v", i, p.Entries[i].RGB, before.Entries[i].RGB)
		}
	}
}

func TestBlendZeroAndFull(t *testing.T) {
	a := VGA()
	b := Windows()
	a0 := *a
	a.Blend(0, b)
	if a.Entries[3].RGB != a0.Entries[3].RGB {
		t.Errorf("Blend(0, ...) should leave entries unchanged, got %v want %v", a.Entries[3].RGB, a0.Entries[3].RGB)
	}

	a = VGA()
	a.Blend(100, b)
	if a.Entries[3].RGB != b.Entries[3].RGB {
		t.Errorf("Blend(100, ...) should copy other entirely, got %v want %v", a.Entries[3].RGB, b.Entries[3].RGB)
	}
}
