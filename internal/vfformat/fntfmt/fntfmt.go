// Package fntfmt loads and saves the classic headerless raw console font
// format: exactly 256 glyphs, each a fixed 8 pixels wide, one row-padded
// byte per row, concatenated with no header at all. Height is not stored;
// it is inferred from the file size (len(data) == 256*height) on load, the
// same convention the Linux console font tools (setfont/kbd) use for their
// "raw" font files before PSF existed. loadraw differs from loadfnt only in
// that it takes its glyph count and size from the command line instead of
// assuming this 256-glyph/8-wide convention.
package fntfmt

import (
	"fmt"
	"io"

	"github.com/rkoesters/vfontas/internal/geom"
	"github.com/rkoesters/vfontas/internal/raster"
	"github.com/rkoesters/vfontas/internal/vfont"
)

// NumGlyphs is the fixed glyph count of the raw console font convention.
const NumGlyphs = 256

// Width is the fixed glyph width; one row-padded byte per row.
const Width = 8

// Load reads r as a raw console font: 256 glyphs of 8xH, H inferred from
// the total byte count.
func Load(r io.Reader) (*vfont.Font, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("fntfmt: %w", err)
	}
	if len(data) == 0 || len(data)%NumGlyphs != 0 {
		return nil, fmt.Errorf("fntfmt: %d bytes is not a multiple of %d glyphs", len(data), NumGlyphs)
	}
	height := len(data) / NumGlyphs
	size := geom.Size{W: Width, H: height}

	f := vfont.New()
	for i := 0; i < NumGlyphs; i++ {
		raw := data[i*height : (i+1)*height]
		g, err := raster.CreateFromRpad(size, raw)
		if err != nil {
			return nil, fmt.Errorf("fntfmt: glyph %d: %w", i, err)
		}
		f.Append(g)
	}
	return f, nil
}

// Save writes f as a raw console font. Every glyph must be 8 pixels wide
// and share one height; the font must have exactly 256 glyphs, the one
// count the format can represent (it carries no glyph count of its own).
func Save(w io.Writer, f *vfont.Font) error {
	if len(f.Glyphs) != NumGlyphs {
		return fmt.Errorf("fntfmt: font has %d glyphs, want exactly %d", len(f.Glyphs), NumGlyphs)
	}
	height := f.Glyphs[0].Size().H
	for i, g := range f.Glyphs {
		size := g.Size()
		if size.W != Width {
			return fmt.Errorf("fntfmt: glyph %d has width %d, want %d", i, size.W, Width)
		}
		if size.H != height {
			return fmt.Errorf("fntfmt: glyph %d has height %d, want %d (all glyphs share one height)", i, size.H, height)
		}
	}
	for i, g := range f.Glyphs {
		if _, err := w.Write(g.AsRowpad()); err != nil {
			return fmt.Errorf("fntfmt: glyph %d: %w", i, err)
		}
	}
	return nil
}
