// Package vfont holds the font container: an indexed sequence of glyphs
// plus an optional unicode map and a string property bag for downstream
// format metadata (BDF/SFD headers and the like).
package vfont

import (
	"github.com/rkoesters/vfontas/internal/geom"
	"github.com/rkoesters/vfontas/internal/raster"
	"github.com/rkoesters/vfontas/internal/unimap"
)

// Font is an ordered glyph sequence, an optional codepoint map (owned by
// the font, with no back-pointer), and a string property bag.
type Font struct {
	Glyphs []raster.Glyph
	Map    *unimap.Map
	Props  map[string]string
}

// New returns an empty font.
func New() *Font {
	return &Font{Props: make(map[string]string)}
}

// NominalSize returns the first glyph's size, used as the nominal size for
// format headers. The zero Size is returned for an empty font.
func (f *Font) NominalSize() geom.Size {
	if len(f.Glyphs) == 0 {
		return geom.Size{}
	}
	return f.Glyphs[0].Size()
}

// EnsureMap lazily creates the font's unicode map.
func (f *Font) EnsureMap() *unimap.Map {
	if f.Map == nil {
		f.Map = unimap.New()
	}
	return f.Map
}

// ClearMap discards the font's unicode map; subsequent ToUnicode lookups
// fall back to identity for every index.
func (f *Font) ClearMap() {
	f.Map = nil
}

// SetProp sets a property, creating the bag if necessary.
func (f *Font) SetProp(k, v string) {
	if f.Props == nil {
		f.Props = make(map[string]string)
	}
	f.Props[k] = v
}

// Blank replaces the glyph sequence with n blank glyphs of the given size,
// discarding any prior glyphs (used by the "blankfnt" command).
func (f *Font) Blank(n int, size geom.Size) {
	f.Glyphs = make([]raster.Glyph, n)
	for i := range f.Glyphs {
		f.Glyphs[i] = raster.New(size)
	}
}

// Append adds g as the next glyph, returning its index.
func (f *Font) Append(g raster.Glyph) int {
	f.Glyphs = append(f.Glyphs, g)
	return len(f.Glyphs) - 1
}

// Transform applies fn to every glyph in place.
func (f *Font) Transform(fn func(raster.Glyph) raster.Glyph) {
	for i := range f.Glyphs {
		f.Glyphs[i] = fn(f.Glyphs[i])
	}
}
