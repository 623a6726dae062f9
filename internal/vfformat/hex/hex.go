// Package hex loads and saves the HEX bitmap font format: text lines of
// "<codepoint>:<hex-bytes>", one glyph per line, where 16 bytes describe
// an 8x16 glyph and 32 bytes describe a 16x16 glyph.
package hex

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/rkoesters/vfontas/internal/geom"
	"github.com/rkoesters/vfontas/internal/raster"
	"github.com/rkoesters/vfontas/internal/vfont"
)

// Load parses r as a HEX font, appending one glyph per line in file
// order and recording each glyph's codepoint in the returned font's
// unicode map.
func Load(r io.Reader) (*vfont.Font, error) {
	f := vfont.New()
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		colon := strings.IndexByte(line, ':')
		if colon < 0 {
			return nil, fmt.Errorf("hex: line %d: missing ':'", lineNo)
		}
		cp, err := strconv.ParseInt(line[:colon], 16, 32)
		if err != nil {
			return nil, fmt.Errorf("hex: line %d: bad codepoint: %w", lineNo, err)
		}
		raw, err := hex.DecodeString(line[colon+1:])
		if err != nil {
			return nil, fmt.Errorf("hex: line %d: bad hex data: %w", lineNo, err)
		}

		var size geom.Size
		switch len(raw) {
		case 16:
			size = geom.Size{W: 8, H: 16}
		case 32:
			size = geom.Size{W: 16, H: 16}
		default:
			return nil, fmt.Errorf("hex: line %d: %d bytes is neither an 8x16 nor 16x16 glyph", lineNo, len(raw))
		}

		g, err := raster.CreateFromRpad(size, raw)
		if err != nil {
			return nil, fmt.Errorf("hex: line %d: %w", lineNo, err)
		}
		idx := f.Append(g)
		f.EnsureMap().AddI2U(idx, rune(cp))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return f, nil
}

// Save writes f back out as a HEX font. Each glyph must be 8x16 or
// 16x16; its codepoint is the lowest rune in the unicode map's entry for
// its index (or the index itself under the identity default).
func Save(w io.Writer, f *vfont.Font) error {
	for i, g := range f.Glyphs {
		size := g.Size()
		if (size.W != 8 && size.W != 16) || size.H != 16 {
			return fmt.Errorf("hex: glyph %d has size %v, HEX only supports 8x16 or 16x16", i, size)
		}
		cp := lowestCodepoint(f, i)
		raw := g.AsRowpad()
		if _, err := fmt.Fprintf(w, "%04X:%s\n", cp, strings.ToUpper(hex.EncodeToString(raw))); err != nil {
			return err
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
