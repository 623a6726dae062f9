package palette

import "sort"

// DefaultEqB is the default second-darkest target L for Eq.
const DefaultEqB = 100.0 / 16

// DefaultLoEqB and DefaultLoEqG are the default bounds for LoEq.
const (
	DefaultLoEqB = 100.0 / 9
	DefaultLoEqG = 100.0 * 8 / 9
)

// Eq spaces all 16 entries' L values linearly across [b, 100]: the
// darkest entry (by current L) keeps its L unchanged as a baseline, the
// second-darkest is assigned exactly b, and the remaining entries are
// spread evenly up to the brightest at 100, implementing `eq[=b]`.
func (p *Palette) Eq(b float64) {
	p.equalize(allIndices(), b, 100)
}

// LoEq is Eq restricted to the first 9 indices (the 8 ANSI colors plus
// index 8, "darkgray"), spacing the non-darkest entries across [b, g],
// implementing `loeq[=b[,g]]`.
func (p *Palette) LoEq(b, g float64) {
	p.equalize([]int{0, 1, 2, 3, 4, 5, 6, 7, 8}, b, g)
}

func allIndices() []int {
	idx := make([]int, 16)
	for i := range idx {
		idx[i] = i
	}
	return idx
}

func (p *Palette) equalize(idx []int, b, g float64) {
	if len(idx) == 0 {
		return
	}
	sorted := make([]int, len(idx))
	copy(sorted, idx)
	sort.Slice(sorted, func(i, j int) bool {
		return p.Entries[sorted[i]].LCh.L < p.Entries[sorted[j]].LCh.L
	})

	rest := sorted[1:] // darkest (sorted[0]) keeps its current L
	n := len(rest)
	for k, i := range rest {
		var target float64
		if n == 1 {
			target = b
		} else {
			target = b + (g-b)*float64(k)/float64(n-1)
		}
		p.Entries[i].LCh.L = target
	}
	p.SyncFromLCh()
}
