// Package clt loads and saves consoleet CLT glyphs: a text file per glyph,
// header "PCLT\n<w> <h>\n" followed by w*h pixels written two characters
// each ("##" set, anything else unset).
package clt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/rkoesters/vfontas/internal/geom"
	"github.com/rkoesters/vfontas/internal/raster"
	"github.com/rkoesters/vfontas/internal/vfont"
)

// Load parses r as a single CLT glyph, per the single-FILE `loadclt`
// argument grammar: each invocation reads and appends exactly one glyph.
func Load(r io.Reader) (raster.Glyph, error) {
	sc := bufio.NewScanner(r)
	if !sc.Scan() {
		return raster.Glyph{}, fmt.Errorf("clt: empty file")
	}
	if strings.TrimSpace(sc.Text()) != "PCLT" {
		return raster.Glyph{}, fmt.Errorf("clt: missing PCLT header")
	}
	if !sc.Scan() {
		return raster.Glyph{}, fmt.Errorf("clt: missing size line")
	}
	fields := strings.Fields(sc.Text())
	if len(fields) != 2 {
		return raster.Glyph{}, fmt.Errorf("clt: size line has %d fields, want 2", len(fields))
	}
	w, err := strconv.Atoi(fields[0])
	if err != nil {
		return raster.Glyph{}, fmt.Errorf("clt: bad width: %w", err)
	}
	h, err := strconv.Atoi(fields[1])
	if err != nil {
		return raster.Glyph{}, fmt.Errorf("clt: bad height: %w", err)
	}
	size := geom.Size{W: w, H: h}
	g := raster.New(size)
	for y := 0; y < h; y++ {
		if !sc.Scan() {
			return raster.Glyph{}, fmt.Errorf("clt: row %d: %w", y, io.ErrUnexpectedEOF)
		}
		row := sc.Text()
		for x := 0; x < w; x++ {
			pos := x * 2
			if pos+1 >= len(row) {
				continue
			}
			g = g.Set(x, y, row[pos:pos+2] == "##")
		}
	}
	if err := sc.Err(); err != nil {
		return raster.Glyph{}, err
	}
	return g, nil
}

// Save writes a single glyph as CLT text.
func Save(w io.Writer, g raster.Glyph) error {
	_, err := io.WriteString(w, g.AsPclt())
	return err
}

// SaveFont writes one "<codepoint-hex>.clt" file per glyph into dir, since
// like PBM, CLT has no notion of a multi-glyph container.
func SaveFont(dir string, f *vfont.Font) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("clt: %w", err)
	}
	for i, g := range f.Glyphs {
		cp := lowestCodepoint(f, i)
		name := filepath.Join(dir, fmt.Sprintf("%04X.clt", cp))
		if err := os.WriteFile(name, []byte(g.AsPclt()), 0o644); err != nil {
			return fmt.Errorf("clt: glyph %d: %w", i, err)
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
