package contrast

// GridResult summarizes one (background-range x foreground-range) subgrid
// of a delta matrix.
type GridResult struct {
	Grid           string
	Count          int
	PenalizedCount int
	Sum            float64
	Mean           float64
	AdjustedSum    float64 // sum over non-penalized pairs only
	AdjustedMean   float64
}

// grids names the three reported subgrids and the index ranges each
// covers. Background is the narrower axis in the two restricted grids,
// matching the terminal convention that only the first 8 (non-bold)
// colors are ever used as a background, while text can use the full
// 16-color (bold-capable) foreground range.
var grids = []struct {
	name     string
	bgN, fgN int
}{
	{"16x16", 16, 16},
	{"8x16", 8, 16},
	{"8x8", 8, 8},
}

// Analyze slices m into the three standard subgrids and reports summary
// statistics for each, using penalize to classify a pair as insufficiently
// distinguishable.
func Analyze(m [16][16]float64, penalize func(float64) bool) []GridResult {
	out := make([]GridResult, len(grids))
	for gi, g := range grids {
		var r GridResult
		r.Grid = g.name
		for bg := 0; bg < g.bgN; bg++ {
			for fg := 0; fg < g.fgN; fg++ {
				d := m[bg][fg]
				r.Count++
				r.Sum += d
				if penalize(d) {
					r.PenalizedCount++
				} else {
					r.AdjustedSum += d
				}
			}
		}
		if r.Count > 0 {
			r.Mean = r.Sum / float64(r.Count)
		}
		if nonPenalized := r.Count - r.PenalizedCount; nonPenalized > 0 {
			r.AdjustedMean = r.AdjustedSum / float64(nonPenalized)
		}
		out[gi] = r
	}
	return out
}

// CXL runs the L-difference analyzer over p and reports all three
// subgrids.
func CXL(p Palette) []GridResult {
	return Analyze(DeltaMatrixCXL(p), PenaltyCXL)
}

// CXA runs the APCA analyzer over p and reports all three subgrids.
func CXA(p Palette) []GridResult {
	return Analyze(DeltaMatrixCXA(p), PenaltyCXA)
}
