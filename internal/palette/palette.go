// Package palette implements the 16-entry palette composer's data model:
// a dual sRGB888/LCh representation per entry kept coherent after every
// mutation, plus the process-wide free scalars (x, y, z) the expression
// evaluator shares across entries.
package palette

import (
	"github.com/rkoesters/vfontas/internal/cie"
	"github.com/rkoesters/vfontas/internal/paleval"
)

// Entry is one palette slot: an sRGB888 triple and its companion LCh
// triple. Exactly one side is considered authoritative after any given
// mutation; Palette's Set methods recompute the other.
type Entry struct {
	RGB [3]uint8
	LCh cie.LCh
}

// Palette is 16 entries plus the three free scalars paleval's x/y/z
// registers read and write, and the color engine (whitepoint, matrix,
// gamma override) used to keep RGB and LCh coherent.
type Palette struct {
	Engine  *cie.Engine
	Entries [16]Entry
	X, Y, Z float64
}

// New returns a palette with every entry black, using a default D65
// engine.
func New() *Palette {
	p := &Palette{Engine: cie.NewEngine()}
	p.SyncFromRGB()
	return p
}

// SyncFromRGB recomputes every entry's LCh from its current RGB, the
// effect of the `syncfromrgb` command.
func (p *Palette) SyncFromRGB() {
	for i := range p.Entries {
		p.Entries[i].LCh = p.Engine.RGB888ToLCh(p.Entries[i].RGB)
	}
}

// SyncFromLCh recomputes every entry's RGB from its current LCh, the
// effect of the `syncfromlch` command.
func (p *Palette) SyncFromLCh() {
	for i := range p.Entries {
		p.Entries[i].RGB = p.Engine.LChToRGB888(p.Entries[i].LCh)
	}
}

// L implements contrast.Palette.
func (p *Palette) L(i int) float64 { return p.Entries[i].LCh.L }

// RGB implements contrast.Palette.
func (p *Palette) RGB(i int) [3]uint8 { return p.Entries[i].RGB }

// Registers returns a paleval.Registers view over entry i, recomputing
// the companion representation on every write.
func (p *Palette) Registers(i int) paleval.Registers {
	return &entryRegisters{p: p, i: i}
}

// AllRegisters returns a Registers view for every entry, in index order,
// the scope `eval=` (without `@LIST`) operates over.
func (p *Palette) AllRegisters() []paleval.Registers {
	out := make([]paleval.Registers, 16)
	for i := range out {
		out[i] = p.Registers(i)
	}
	return out
}

// ScopedRegisters returns a Registers view for each index in idx, the
// scope `eval@LIST=` operates over. Out-of-range indices are skipped.
func (p *Palette) ScopedRegisters(idx []int) []paleval.Registers {
	out := make([]paleval.Registers, 0, len(idx))
	for _, i := range idx {
		if i >= 0 && i < len(p.Entries) {
			out = append(out, p.Registers(i))
		}
	}
	return out
}

type entryRegisters struct {
	p *Palette
	i int
}

func (r *entryRegisters) Get(name byte) float64 {
	e := &r.p.Entries[r.i]
	switch name {
	case 'r':
		return float64(e.RGB[0])
	case 'g':
		return float64(e.RGB[1])
	case 'b':
		return float64(e.RGB[2])
	case 'l':
		return e.LCh.L
	case 'c':
		return e.LCh.C
	case 'h':
		return e.LCh.H
	case 'x':
		return r.p.X
	case 'y':
		return r.p.Y
	case 'z':
		return r.p.Z
	}
	return 0
}

func (r *entryRegisters) Set(name byte, v float64) {
	e := &r.p.Entries[r.i]
	switch name {
	case 'r':
		e.RGB[0] = clampByte(v)
		e.LCh = r.p.Engine.RGB888ToLCh(e.RGB)
	case 'g':
		e.RGB[1] = clampByte(v)
		e.LCh = r.p.Engine.RGB888ToLCh(e.RGB)
	case 'b':
		e.RGB[2] = clampByte(v)
		e.LCh = r.p.Engine.RGB888ToLCh(e.RGB)
	case 'l':
		e.LCh.L = v
		e.RGB = r.p.Engine.LChToRGB888(e.LCh)
	case 'c':
		e.LCh.C = v
		e.RGB = r.p.Engine.LChToRGB888(e.LCh)
	case 'h':
		e.LCh.H = v
		e.RGB = r.p.Engine.LChToRGB888(e.LCh)
	case 'x':
		r.p.X = v
	case 'y':
		r.p.Y = v
	case 'z':
		r.p.Z = v
	}
}

func clampByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
