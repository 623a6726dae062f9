// Package raster is the in-memory bitmap glyph model: a packed monochrome
// bitmap plus the pure-functional pixel transforms the vectorizer and the
// format loaders/writers operate on.
package raster

import (
	"fmt"

	"github.com/rkoesters/vfontas/internal/geom"
)

// Glyph is a width x height monochrome bitmap, bit-packed row-major,
// MSB-first within each byte: bit index n occupies byte n/8 at mask
// 1 << (7 - n%8). Size is constant for the glyph's lifetime; every
// pixel-modifying operation below returns a new Glyph.
type Glyph struct {
	size geom.Size
	bits []byte
}

// New returns a blank (all-zero) glyph of the given size.
func New(size geom.Size) Glyph {
	return Glyph{size: size, bits: make([]byte, byteLen(size))}
}

func byteLen(size geom.Size) int {
	n := size.Area()
	return (n + 7) / 8
}

// Size returns the glyph's dimensions.
func (g Glyph) Size() geom.Size { return g.size }

func bitIndex(size geom.Size, x, y int) int {
	return y*size.W + x
}

// Get reports whether the pixel at (x, y) is set. Out-of-bounds reads
// return false.
func (g Glyph) Get(x, y int) bool {
	if x < 0 || y < 0 || x >= g.size.W || y >= g.size.H {
		return false
	}
	n := bitIndex(g.size, x, y)
	return g.bits[n/8]&(1<<(7-uint(n%8))) != 0
}

// Set returns a copy of g with the pixel at (x, y) set to v. Out-of-bounds
// writes are ignored.
func (g Glyph) Set(x, y int, v bool) Glyph {
	if x < 0 || y < 0 || x >= g.size.W || y >= g.size.H {
		return g
	}
	out := g.clone()
	n := bitIndex(g.size, x, y)
	mask := byte(1 << (7 - uint(n%8)))
	if v {
		out.bits[n/8] |= mask
	} else {
		out.bits[n/8] &^= mask
	}
	return out
}

func (g Glyph) clone() Glyph {
	b := make([]byte, len(g.bits))
	copy(b, g.bits)
	return Glyph{size: g.size, bits: b}
}

// Equal reports whether g and o have the same size and pixel contents.
// Don't-care trailing bits beyond w*h are not compared.
func (g Glyph) Equal(o Glyph) bool {
	if g.size != o.size {
		return false
	}
	for y := 0; y < g.size.H; y++ {
		for x := 0; x < g.size.W; x++ {
			if g.Get(x, y) != o.Get(x, y) {
				return false
			}
		}
	}
	return true
}

// CreateFromRpad reads a row-padded bitmap (each row rounded up to whole
// bytes, MSB-first) into the tightly packed internal representation.
func CreateFromRpad(size geom.Size, data []byte) (Glyph, error) {
	rowBytes := (size.W + 7) / 8
	if len(data) < rowBytes*size.H {
		return Glyph{}, fmt.Errorf("raster: row-padded buffer too short: have %d bytes, need %d", len(data), rowBytes*size.H)
	}
	g := New(size)
	for y := 0; y < size.H; y++ {
		row := data[y*rowBytes : (y+1)*rowBytes]
		for x := 0; x < size.W; x++ {
			bit := row[x/8]&(1<<(7-uint(x%8))) != 0
			g = g.Set(x, y, bit)
		}
	}
	return g, nil
}

// AsRowpad is the inverse of CreateFromRpad; used by PSF2-style writers.
func (g Glyph) AsRowpad() []byte {
	rowBytes := (g.size.W + 7) / 8
	out := make([]byte, rowBytes*g.size.H)
	for y := 0; y < g.size.H; y++ {
		row := out[y*rowBytes : (y+1)*rowBytes]
		for x := 0; x < g.size.W; x++ {
			if g.Get(x, y) {
				row[x/8] |= 1 << (7 - uint(x%8))
			}
		}
	}
	return out
}

// AsPclt renders the glyph as consoleet CLT text: header "PCLT\n<w> <h>\n"
// followed by w x h pixels, two characters each ("##" set, ".." unset).
func (g Glyph) AsPclt() string {
	s := fmt.Sprintf("PCLT\n%d %d\n", g.size.W, g.size.H)
	for y := 0; y < g.size.H; y++ {
		for x := 0; x < g.size.W; x++ {
			if g.Get(x, y) {
				s += "##"
			} else {
				s += ".."
			}
		}
		s += "\n"
	}
	return s
}

// AsPbm renders the glyph as a standard P1 portable bitmap.
func (g Glyph) AsPbm() string {
	s := fmt.Sprintf("P1\n%d %d\n", g.size.W, g.size.H)
	for y := 0; y < g.size.H; y++ {
		for x := 0; x < g.size.W; x++ {
			if x > 0 {
				s += " "
			}
			if g.Get(x, y) {
				s += "1"
			} else {
				s += "0"
			}
		}
		s += "\n"
	}
	return s
}

// CopyRectTo samples srcRect from g, translates it to dstRect in a copy of
// dst, clipping to both canvases. If overwrite, unset source pixels clear
// the destination too (a plain crop/paste); otherwise set source pixels are
// OR-blended onto the destination, leaving unset source pixels untouched
// (an overstrike/overlay).
func (g Glyph) CopyRectTo(srcRect geom.Rect, dst Glyph, dstRect geom.Rect, overwrite bool) Glyph {
	out := dst.clone()
	srcBound := geom.NewRect(0, 0, g.size.W, g.size.H)
	dstBound := geom.NewRect(0, 0, dst.size.W, dst.size.H)
	sClip, ok1 := srcRect.Intersect(srcBound)
	if !ok1 {
		return out
	}
	w := min(sClip.Size.W, dstRect.Size.W)
	h := min(sClip.Size.H, dstRect.Size.H)
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			sx, sy := sClip.Pos.X+dx, sClip.Pos.Y+dy
			tx, ty := dstRect.Pos.X+dx, dstRect.Pos.Y+dy
			if tx < dstBound.X1() || tx >= dstBound.X2() || ty < dstBound.Y1() || ty >= dstBound.Y2() {
				continue
			}
			bit := g.Get(sx, sy)
			if bit {
				out = out.Set(tx, ty, true)
			} else if overwrite {
				out = out.Set(tx, ty, false)
			}
		}
	}
	return out
}

// Crop is the canonical "crop" operation: sample rect out of g into a blank
// canvas of rect's own size.
func (g Glyph) Crop(rect geom.Rect) Glyph {
	blank := New(rect.Size)
	dst := geom.NewRect(0, 0, rect.Size.W, rect.Size.H)
	return g.CopyRectTo(rect, blank, dst, true)
}

// Flip mirrors the glyph horizontally (x) and/or vertically (y).
func (g Glyph) Flip(x, y bool) Glyph {
	out := New(g.size)
	for yy := 0; yy < g.size.H; yy++ {
		for xx := 0; xx < g.size.W; xx++ {
			sx, sy := xx, yy
			if x {
				sx = g.size.W - 1 - xx
			}
			if y {
				sy = g.size.H - 1 - yy
			}
			out = out.Set(xx, yy, g.Get(sx, sy))
		}
	}
	return out
}

// Upscale replicates each pixel fx times horizontally and fy times
// vertically.
func (g Glyph) Upscale(fx, fy int) Glyph {
	if fx < 1 {
		fx = 1
	}
	if fy < 1 {
		fy = 1
	}
	out := New(geom.Size{W: g.size.W * fx, H: g.size.H * fy})
	for y := 0; y < g.size.H; y++ {
		for x := 0; x < g.size.W; x++ {
			if !g.Get(x, y) {
				continue
			}
			for dy := 0; dy < fy; dy++ {
				for dx := 0; dx < fx; dx++ {
					out = out.Set(x*fx+dx, y*fy+dy, true)
				}
			}
		}
	}
	return out
}

// Invert bitwise-negates the bitmap byte buffer. Trailing bits beyond w*h
// become set; callers must treat them as don't-care (Equal already does).
func (g Glyph) Invert() Glyph {
	out := g.clone()
	for i := range out.bits {
		out.bits[i] = ^out.bits[i]
	}
	return out
}

// Lge ("line graphics extension") copies, for every row, the pixel at
// column w-1-adj into column w-1. Emulates VGA's 9th-column replication for
// box-drawing characters.
func (g Glyph) Lge(adj int) Glyph {
	out := g.clone()
	src := g.size.W - 1 - adj
	dst := g.size.W - 1
	if src < 0 || dst < 0 {
		return out
	}
	for y := 0; y < g.size.H; y++ {
		out = out.Set(dst, y, g.Get(src, y))
	}
	return out
}

// Overstrike produces the OR of g with itself translated right by
// 1, 2, ..., px pixels -- a bold-ish emboldening.
func (g Glyph) Overstrike(px int) Glyph {
	out := g.clone()
	for d := 1; d <= px; d++ {
		for y := 0; y < g.size.H; y++ {
			for x := g.size.W - 1; x >= 0; x-- {
				if g.Get(x, y) {
					out = out.Set(x+d, y, true)
				}
			}
		}
	}
	return out
}

// FindBaseline returns y+1 of the lowest row containing any set pixel, or
// -1 if the glyph is entirely blank.
func (g Glyph) FindBaseline() int {
	for y := g.size.H - 1; y >= 0; y-- {
		for x := 0; x < g.size.W; x++ {
			if g.Get(x, y) {
				return y + 1
			}
		}
	}
	return -1
}
