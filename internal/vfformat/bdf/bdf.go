// Package bdf loads and saves Glyph Bitmap Distribution Format fonts, the
// standard X11 text bitmap font form also read and written by FontForge.
package bdf

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rkoesters/vfontas/internal/geom"
	"github.com/rkoesters/vfontas/internal/raster"
	"github.com/rkoesters/vfontas/internal/vfont"
	"github.com/rkoesters/vfontas/internal/vferr"
)

// Load parses r as a BDF font. Only the fields this module round-trips are
// interpreted (STARTCHAR/ENCODING/BBX/BITMAP/ENDCHAR); unrecognized
// top-level keywords (COMMENT, PROPERTIES, ...) are skipped.
func Load(r io.Reader) (*vfont.Font, error) {
	sc := bufio.NewScanner(r)
	if !sc.Scan() {
		return nil, fmt.Errorf("bdf: %w", vferr.ErrTruncated)
	}
	if !strings.HasPrefix(sc.Text(), "STARTFONT") {
		return nil, fmt.Errorf("bdf: %w", vferr.ErrBadMagic)
	}

	f := vfont.New()
	var curName string
	var curEnc int
	var curSize geom.Size
	haveEnc := false

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "" || line == "ENDFONT":
			continue
		case strings.HasPrefix(line, "FONT "):
			f.SetProp("name", strings.TrimSpace(line[len("FONT "):]))
		case strings.HasPrefix(line, "STARTCHAR "):
			curName = strings.TrimSpace(line[len("STARTCHAR "):])
			haveEnc = false
		case strings.HasPrefix(line, "ENCODING "):
			n, err := strconv.Atoi(fields1(line))
			if err != nil {
				return nil, fmt.Errorf("bdf: char %q: bad ENCODING: %w", curName, err)
			}
			curEnc, haveEnc = n, true
		case strings.HasPrefix(line, "BBX "):
			ff := strings.Fields(line)
			if len(ff) < 3 {
				return nil, fmt.Errorf("bdf: char %q: malformed BBX", curName)
			}
			w, err1 := strconv.Atoi(ff[1])
			h, err2 := strconv.Atoi(ff[2])
			if err1 != nil || err2 != nil {
				return nil, fmt.Errorf("bdf: char %q: malformed BBX dimensions", curName)
			}
			curSize = geom.Size{W: w, H: h}
		case line == "BITMAP":
			rowBytes := (curSize.W + 7) / 8
			raw := make([]byte, 0, rowBytes*curSize.H)
			for y := 0; y < curSize.H; y++ {
				if !sc.Scan() {
					return nil, fmt.Errorf("bdf: char %q: %w", curName, vferr.ErrTruncated)
				}
				row, err := hex.DecodeString(strings.TrimSpace(sc.Text()))
				if err != nil {
					return nil, fmt.Errorf("bdf: char %q: bad BITMAP row: %w", curName, err)
				}
				raw = append(raw, row...)
			}
			g, err := raster.CreateFromRpad(curSize, raw)
			if err != nil {
				return nil, fmt.Errorf("bdf: char %q: %w", curName, err)
			}
			idx := f.Append(g)
			if haveEnc && curEnc >= 0 {
				f.EnsureMap().AddI2U(idx, rune(curEnc))
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return f, nil
}

func fields1(line string) string {
	ff := strings.Fields(line)
	if len(ff) < 2 {
		return ""
	}
	return ff[1]
}

// Save writes f as a BDF font. All glyphs should share one nominal size;
// Save uses the first glyph's size for FONTBOUNDINGBOX.
func Save(w io.Writer, f *vfont.Font) error {
	name := f.Props["name"]
	if name == "" {
		name = "untitled"
	}
	nominal := f.NominalSize()
	if _, err := fmt.Fprintf(w, "STARTFONT 2.1\nFONT %s\nSIZE %d 75 75\n"+
		"FONTBOUNDINGBOX %d %d 0 0\nSTARTPROPERTIES 0\nENDPROPERTIES\nCHARS %d\n",
		name, nominal.H, nominal.W, nominal.H, len(f.Glyphs)); err != nil {
		return err
	}
	for i, g := range f.Glyphs {
		if err := writeChar(w, f, i, g); err != nil {
			return fmt.Errorf("bdf: glyph %d: %w", i, err)
		}
	}
	_, err := io.WriteString(w, "ENDFONT\n")
	return err
}

func writeChar(w io.Writer, f *vfont.Font, idx int, g raster.Glyph) error {
	enc := idx
	if f.Map != nil {
		if cp := lowestCodepoint(f, idx); cp >= 0 {
			enc = cp
		}
	}
	size := g.Size()
	if _, err := fmt.Fprintf(w, "STARTCHAR glyph%04X\nENCODING %d\nSWIDTH 1000 0\nDWIDTH %d 0\nBBX %d %d 0 0\nBITMAP\n",
		enc, enc, size.W, size.W, size.H); err != nil {
		return err
	}
	rowBytes := (size.W + 7) / 8
	raw := g.AsRowpad()
	for y := 0; y < size.H; y++ {
		row := raw[y*rowBytes : (y+1)*rowBytes]
		if _, err := fmt.Fprintf(w, "%s\n", strings.ToUpper(hex.EncodeToString(row))); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "ENDCHAR\n")
	return err
}

func lowestCodepoint(f *vfont.Font, i int) int {
	set := f.Map.ToUnicode(i)
	best := -1
	for cp := range set {
		if best == -1 || int(cp) < best {
			best = int(cp)
		}
	}
	return best
}
