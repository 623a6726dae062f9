// Package pbm saves a font as one standard P1 portable bitmap per glyph.
// PBM has no notion of a multi-glyph font, so unlike BDF/SFD it writes into
// a directory rather than a single file, per `savepbm FILE|DIR`.
package pbm

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/rkoesters/vfontas/internal/vfont"
)

// Save writes one "<codepoint-hex>.pbm" file per glyph into dir, creating
// it if necessary. The codepoint used is the lowest rune the font's unicode
// map assigns to that index, or the index itself under the identity default.
func Save(dir string, f *vfont.Font) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("pbm: %w", err)
	}
	for i, g := range f.Glyphs {
		cp := lowestCodepoint(f, i)
		name := filepath.Join(dir, fmt.Sprintf("%04X.pbm", cp))
		if err := os.WriteFile(name, []byte(g.AsPbm()), 0o644); err != nil {
			return fmt.Errorf("pbm: glyph %d: %w", i, err)
		}
	}
	return nil
}

func lowestCodepoint(f *vfont.Font, i int) rune {
	if f.Map == nil {
		return rune(i)
	}
	set := f.Map.ToUnicode(i)
	cps := make([]rune, 0, len(set))
	for cp := range set {
		cps = append(cps, cp)
	}
	sort.Slice(cps, func(a, b int) bool { return cps[a] < cps[b] })
	if len(cps) == 0 {
		return rune(i)
	}
	return cps[0]
}
