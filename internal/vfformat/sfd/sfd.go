// Package sfd writes a font as a FontForge SplineFontDB file: one file
// holding every glyph, each rendered to a SplineSet by one of the
// vectorizer algorithms in internal/vector. SFD is the vectorizer's
// primary sink -- the whole point of vectorizing a bitmap glyph is to hand
// FontForge something it can smooth, hint, and export to TrueType/OpenType.
package sfd

import (
	"fmt"
	"io"
	"log"

	"github.com/rkoesters/vfontas/internal/raster"
	"github.com/rkoesters/vfontas/internal/vfont"
	"github.com/rkoesters/vfontas/internal/vector"
)

// Vectorizer converts one glyph into closed outline polygons; the four
// save verbs (savesfd, saven1, saven2, saven2ev) differ only in which of
// these they pass.
type Vectorizer func(g raster.Glyph, descent int, sc vector.Scale) []vector.Polygon

// Simple, N1, N2 and N2EV adapt the internal/vector algorithms to the
// Vectorizer signature, so callers can pass vector.Simple etc. directly.
func Simple(g raster.Glyph, descent int, sc vector.Scale) []vector.Polygon {
	return vector.Simple(g, descent, sc)
}

func N1(g raster.Glyph, descent int, sc vector.Scale) []vector.Polygon {
	return vector.N1(g, descent, sc)
}

func N2(g raster.Glyph, descent int, sc vector.Scale) []vector.Polygon {
	return vector.N2(g, descent, sc)
}

func N2EV(g raster.Glyph, descent int, sc vector.Scale) []vector.Polygon {
	return vector.N2EV(g, descent, sc)
}

// Save writes f to w as an SFD file, vectorizing every glyph with vz at
// the given descent and coordinate scale. If f has never had its name set
// (via the setname/setprop verbs), a placeholder name is used and a
// warning naming the default is printed to stderr -- the spec's "default
// name hint".
func Save(w io.Writer, f *vfont.Font, vz Vectorizer, descent int, sc vector.Scale) error {
	name := f.Props["name"]
	if name == "" {
		name = "Untitled"
		log.Printf("sfd: font has no name set; writing SplineFontDB with placeholder FontName %q", name)
	}

	nominal := f.NominalSize()
	if _, err := fmt.Fprintf(w, "SplineFontDB: 3.0\n"+
		"FontName: %s\n"+
		"FullName: %s\n"+
		"FamilyName: %s\n"+
		"Ascent: %d\n"+
		"Descent: %d\n"+
		"BeginChars: %d %d\n",
		name, name, name, nominal.H-descent, descent, unicodeMax(f), len(f.Glyphs)); err != nil {
		return err
	}

	for i, g := range f.Glyphs {
		if err := writeChar(w, f, i, g, vz, descent, sc); err != nil {
			return fmt.Errorf("sfd: glyph %d: %w", i, err)
		}
	}

	_, err := io.WriteString(w, "EndChars\nEndSplineFont\n")
	return err
}

func unicodeMax(f *vfont.Font) int {
	max := len(f.Glyphs) - 1
	if max < 0 {
		max = 0
	}
	return max
}

func writeChar(w io.Writer, f *vfont.Font, idx int, g raster.Glyph, vz Vectorizer, descent int, sc vector.Scale) error {
	enc := idx
	if f.Map != nil {
		if cp := lowestCodepoint(f, idx); cp >= 0 {
			enc = int(cp)
		}
	}
	size := g.Size()
	if _, err := fmt.Fprintf(w, "StartChar: glyph%04X\nEncoding: %d %d %d\nWidth: %d\n"+
		"Flags: W\nLayerCount: 2\nFore\nSplineSet\n",
		enc, enc, enc, idx, size.W*sc.SX); err != nil {
		return err
	}

	for _, poly := range vz(g, descent, sc) {
		if err := writePolygon(w, poly); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "EndSplineSet\nEndChar\n")
	return err
}

func writePolygon(w io.Writer, poly vector.Polygon) error {
	if len(poly.Edges) == 0 {
		return nil
	}
	start := poly.Edges[0].Start
	if _, err := fmt.Fprintf(w, "%d %d m 1\n", start.X, start.Y); err != nil {
		return err
	}
	for _, e := range poly.Edges {
		if _, err := fmt.Fprintf(w, "%d %d l 1\n", e.End.X, e.End.Y); err != nil {
			return err
		}
	}
	return nil
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
