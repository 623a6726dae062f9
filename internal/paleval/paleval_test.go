package paleval

import "testing"

// fakeEntry is a minimal in-memory Registers implementation for tests: it
// tracks the nine components directly without any cross-representation
// recomputation (that coupling lives in internal/palette).
type fakeEntry struct {
	vals map[byte]float64
}

func newFakeEntry() *fakeEntry {
	return &fakeEntry{vals: map[byte]float64{
		'r': 0, 'g': 0, 'b': 0, 'l': 0, 'c': 0, 'h': 0, 'x': 0, 'y': 0, 'z': 0,
	}}
}

func (f *fakeEntry) Get(name byte) float64     { return f.vals[name] }
func (f *fakeEntry) Set(name byte, v float64) { f.vals[name] = v }

func TestNoOpAssignment(t *testing.T) {
	e := newFakeEntry()
	e.vals['l'] = 42
	if err := Eval("(l=l)", []Registers{e}); err != nil {
		t.Fatal(err)
	}
	if e.vals['l'] != 42 {
		t.Errorf("l = %v, want 42", e.vals['l'])
	}
}

func TestScopedAssignment(t *testing.T) {
	entries := []*fakeEntry{newFakeEntry(), newFakeEntry(), newFakeEntry()}
	regs := []Registers{entries[0]}
	if err := Eval("l=100", regs); err != nil {
		t.Fatal(err)
	}
	if entries[0].vals['l'] != 100 {
		t.Errorf("entry 0's l = %v, want 100", entries[0].vals['l'])
	}
	for i := 1; i < 3; i++ {
		if entries[i].vals['l'] != 0 {
			t.Errorf("entry %d's l = %v, want untouched 0", i, entries[i].vals['l'])
		}
	}
}

func TestSequenceZeroesLCh(t *testing.T) {
	e := newFakeEntry()
	e.vals['l'], e.vals['c'], e.vals['h'] = 50, 30, 200
	if err := Eval("(l=l*0, c=c*0, h=h*0)", []Registers{e}); err != nil {
		t.Fatal(err)
	}
	if e.vals['l'] != 0 || e.vals['c'] != 0 || e.vals['h'] != 0 {
		t.Errorf("expected all LCh components zeroed, got l=%v c=%v h=%v", e.vals['l'], e.vals['c'], e.vals['h'])
	}
}

func TestPrecedence(t *testing.T) {
	a := newFakeEntry()
	a.vals['l'] = 10
	b := newFakeEntry()
	b.vals['l'] = 10
	if err := Eval("l=l+1*2", []Registers{a}); err != nil {
		t.Fatal(err)
	}
	if err := Eval("l=l+(1*2)", []Registers{b}); err != nil {
		t.Fatal(err)
	}
	if a.vals['l'] != b.vals['l'] {
		t.Errorf("l=l+1*2 -> %v, l=l+(1*2) -> %v, want equal", a.vals['l'], b.vals['l'])
	}
	if a.vals['l'] != 12 {
		t.Errorf("l=l+1*2 -> %v, want 12", a.vals['l'])
	}
}

func TestSAliasesC(t *testing.T) {
	e := newFakeEntry()
	if err := Eval("s=75", []Registers{e}); err != nil {
		t.Fatal(err)
	}
	if e.vals['c'] != 75 {
		t.Errorf("s=75 should write through to c, got c=%v", e.vals['c'])
	}
}

func TestHueNormalization(t *testing.T) {
	e := newFakeEntry()
	if err := Eval("h=h+730", []Registers{e}); err != nil {
		t.Fatal(err)
	}
	if e.vals['h'] != 10 {
		t.Errorf("h=h+730 should normalize to 10, got %v", e.vals['h'])
	}
	if err := Eval("h=h-20", []Registers{e}); err != nil {
		t.Fatal(err)
	}
	if e.vals['h'] != 350 {
		t.Errorf("h=h-20 (from 10) should normalize to 350, got %v", e.vals['h'])
	}
}

func TestPowerClampsNegativeBase(t *testing.T) {
	e := newFakeEntry()
	e.vals['l'] = -4
	if err := Eval("l=l^2", []Registers{e}); err != nil {
		t.Fatal(err)
	}
	if e.vals['l'] != 0 {
		t.Errorf("(-4)^2 with negative-base clamp should be 0, got %v", e.vals['l'])
	}
}

func TestAssignmentTargetMustBeRegister(t *testing.T) {
	e := newFakeEntry()
	err := Eval("1=2", []Registers{e})
	if err == nil {
		t.Fatal("expected a parse error for assigning to a literal")
	}
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if pe.Expr != "1=2" {
		t.Errorf("ParseError.Expr = %q, want original expression", pe.Expr)
	}
}

func TestParseScope(t *testing.T) {
	idx, err := ParseScope("0,2-4,7")
	if err != nil {
		t.Fatal(err)
	}
	want := []int{0, 2, 3, 4, 7}
	if len(idx) != len(want) {
		t.Fatalf("ParseScope(%q) = %v, want %v", "0,2-4,7", idx, want)
	}
	for i := range want {
		if idx[i] != want[i] {
			t.Errorf("index %d: got %d, want %d", i, idx[i], want[i])
		}
	}
}

func TestIsEvalShorthand(t *testing.T) {
	cases := map[string]bool{
		"(l=l)":  true,
		"l=100":  true,
		"vga":    false,
		"loadpal=foo.pal": false,
	}
	for cmd, want := range cases {
		if got := IsEvalShorthand(cmd); got != want {
			t.Errorf("IsEvalShorthand(%q) = %v, want %v", cmd, got, want)
		}
	}
}
