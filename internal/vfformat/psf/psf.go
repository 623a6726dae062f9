// Package psf loads and saves PC Screen Font files, both the PSF1 and
// PSF2 header generations, per the bit-exact layouts in §6:
//
//	PSF1: magic 0x36 0x04, then <mode> <charsize>; length = (mode&1) ? 512
//	: 256; width is fixed at 8; a unicode table follows when
//	mode&(2|4) is set, a UCS-2 stream per glyph terminated by 0xFFFF.
//
//	PSF2: magic 0x72 0xB5 0x4A 0x86, then a little-endian header of
//	version, headersize, flags, length, charsize, height, width; glyphs
//	are row-padded; a unicode table follows when flags&1 is set, UTF-8
//	sequences per glyph separated by 0xFF, grouped by 0xFE for aliases.
package psf

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/rkoesters/vfontas/internal/geom"
	"github.com/rkoesters/vfontas/internal/raster"
	"github.com/rkoesters/vfontas/internal/vfont"
	"github.com/rkoesters/vfontas/internal/vferr"
)

const (
	psf1Magic0, psf1Magic1 = 0x36, 0x04
	psf1ModeHasTab         = 0x01
	psf1ModeHasSeq         = 0x02 // unused by this loader's simplified reading, kept for documentation
	psf1Separator          = 0xFFFF

	psf2Version    = 0
	psf2HasUnicode = 0x01
	psf2SeqSep     = 0xFE
	psf2GlyphSep   = 0xFF
)

var psf2Magic = [4]byte{0x72, 0xB5, 0x4A, 0x86}

// Load reads either a PSF1 or PSF2 file, dispatching on the magic bytes.
func Load(r io.Reader) (*vfont.Font, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(4)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("psf: %w", err)
	}
	if len(head) >= 4 && head[0] == psf2Magic[0] && head[1] == psf2Magic[1] && head[2] == psf2Magic[2] && head[3] == psf2Magic[3] {
		return loadV2(br)
	}
	if len(head) >= 2 && head[0] == psf1Magic0 && head[1] == psf1Magic1 {
		return loadV1(br)
	}
	return nil, fmt.Errorf("psf: %w", vferr.ErrBadMagic)
}

func loadV1(r *bufio.Reader) (*vfont.Font, error) {
	var hdr [4]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, fmt.Errorf("psf1: %w", vferr.ErrTruncated)
	}
	mode, charsize := hdr[2], int(hdr[3])
	length := 256
	if mode&1 != 0 {
		length = 512
	}

	f := vfont.New()
	for i := 0; i < length; i++ {
		raw := make([]byte, charsize)
		if _, err := io.ReadFull(r, raw); err != nil {
			return nil, fmt.Errorf("psf1: glyph %d: %w", i, vferr.ErrTruncated)
		}
		g, err := raster.CreateFromRpad(geom.Size{W: 8, H: charsize}, raw)
		if err != nil {
			return nil, fmt.Errorf("psf1: glyph %d: %w", i, err)
		}
		f.Append(g)
	}

	if mode&(2|4) != 0 {
		m := f.EnsureMap()
		for i := 0; i < length; i++ {
			inSeq := false
			for {
				var code uint16
				if err := binary.Read(r, binary.LittleEndian, &code); err != nil {
					return nil, fmt.Errorf("psf1: unicode table: glyph %d: %w", i, vferr.ErrTruncated)
				}
				if code == psf1Separator {
					break
				}
				const seqMarker = 0xFFFE
				if code == seqMarker {
					inSeq = true
					continue
				}
				if !inSeq {
					m.AddI2U(i, rune(code))
				}
				// Subsequent codes of a multi-rune sequence (inSeq) name a
				// combining sequence this single-codepoint map can't
				// represent; only the sequence's lead rune is recorded.
			}
		}
	}
	return f, nil
}

func loadV2(r *bufio.Reader) (*vfont.Font, error) {
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return nil, fmt.Errorf("psf2: %w", vferr.ErrTruncated)
	}
	var hdr struct {
		Version, HeaderSize, Flags, Length, CharSize, Height, Width uint32
	}
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return nil, fmt.Errorf("psf2: %w", vferr.ErrTruncated)
	}
	// headersize beyond the 8 fixed fields (32 bytes incl. magic) is
	// reserved padding some encoders add; skip to it explicitly.
	if skip := int(hdr.HeaderSize) - 32; skip > 0 {
		if _, err := io.CopyN(io.Discard, r, int64(skip)); err != nil {
			return nil, fmt.Errorf("psf2: %w", vferr.ErrTruncated)
		}
	}

	f := vfont.New()
	size := geom.Size{W: int(hdr.Width), H: int(hdr.Height)}
	for i := 0; i < int(hdr.Length); i++ {
		raw := make([]byte, hdr.CharSize)
		if _, err := io.ReadFull(r, raw); err != nil {
			return nil, fmt.Errorf("psf2: glyph %d: %w", i, vferr.ErrTruncated)
		}
		g, err := raster.CreateFromRpad(size, raw)
		if err != nil {
			return nil, fmt.Errorf("psf2: glyph %d: %w", i, err)
		}
		f.Append(g)
	}

	if hdr.Flags&psf2HasUnicode != 0 {
		m := f.EnsureMap()
		for i := 0; i < int(hdr.Length); i++ {
			recorded := false
			for {
				b, err := r.ReadByte()
				if err != nil {
					return nil, fmt.Errorf("psf2: unicode table: glyph %d: %w", i, vferr.ErrTruncated)
				}
				if b == psf2GlyphSep {
					break
				}
				if b == psf2SeqSep {
					recorded = true // stop recording further alias runes
					continue
				}
				if recorded {
					continue
				}
				if b < 0x80 {
					m.AddI2U(i, rune(b))
					continue
				}
				r2, n := decodeUTF8Cont(r, b)
				if n > 0 {
					m.AddI2U(i, r2)
				}
			}
		}
	}
	return f, nil
}

// decodeUTF8Cont decodes one UTF-8 rune whose lead byte (>= 0x80) has
// already been read from br.
func decodeUTF8Cont(br *bufio.Reader, lead byte) (rune, int) {
	var n int
	var r rune
	switch {
	case lead&0xE0 == 0xC0:
		n, r = 1, rune(lead&0x1F)
	case lead&0xF0 == 0xE0:
		n, r = 2, rune(lead&0x0F)
	case lead&0xF8 == 0xF0:
		n, r = 3, rune(lead&0x07)
	default:
		return 0, 0
	}
	for i := 0; i < n; i++ {
		b, err := br.ReadByte()
		if err != nil {
			return 0, 0
		}
		r = r<<6 | rune(b&0x3F)
	}
	return r, n
}

// SaveV1 writes f as a PSF1 file. Every glyph must be 8 pixels wide;
// charsize is taken from the first glyph's height and every glyph must
// share it. length is 256 unless f has more than 256 glyphs, in which
// case it is 512 (mode bit 0 set) -- f must then have exactly 512 glyphs.
func SaveV1(w io.Writer, f *vfont.Font) error {
	if len(f.Glyphs) == 0 {
		return fmt.Errorf("psf1: font has no glyphs")
	}
	charsize := f.Glyphs[0].Size().H
	var mode byte
	length := 256
	if len(f.Glyphs) > 256 {
		mode |= psf1ModeHasTab
		length = 512
	}
	if len(f.Glyphs) != length {
		return fmt.Errorf("psf1: font has %d glyphs, want %d", len(f.Glyphs), length)
	}
	if f.Map != nil {
		mode |= 2
	}
	if _, err := w.Write([]byte{psf1Magic0, psf1Magic1, mode, byte(charsize)}); err != nil {
		return err
	}
	for i, g := range f.Glyphs {
		size := g.Size()
		if size.W != 8 || size.H != charsize {
			return fmt.Errorf("psf1: glyph %d has size %v, want 8x%d", i, size, charsize)
		}
		if _, err := w.Write(g.AsRowpad()); err != nil {
			return err
		}
	}
	if f.Map != nil {
		for i := range f.Glyphs {
			for cp := range f.Map.ToUnicode(i) {
				if err := binary.Write(w, binary.LittleEndian, uint16(cp)); err != nil {
					return err
				}
			}
			if err := binary.Write(w, binary.LittleEndian, uint16(psf1Separator)); err != nil {
				return err
			}
		}
	}
	return nil
}

// SaveV2 writes f as a PSF2 file, any glyph size permitted.
func SaveV2(w io.Writer, f *vfont.Font) error {
	if len(f.Glyphs) == 0 {
		return fmt.Errorf("psf2: font has no glyphs")
	}
	size := f.Glyphs[0].Size()
	charsize := (size.W + 7) / 8 * size.H
	var flags uint32
	if f.Map != nil {
		flags = psf2HasUnicode
	}
	if _, err := w.Write(psf2Magic[:]); err != nil {
		return err
	}
	hdr := []uint32{psf2Version, 32, flags, uint32(len(f.Glyphs)), uint32(charsize), uint32(size.H), uint32(size.W)}
	for _, v := range hdr {
		if err := binary.Write(w, binary.LittleEndian, v); err != nil {
			return err
		}
	}
	for i, g := range f.Glyphs {
		if g.Size() != size {
			return fmt.Errorf("psf2: glyph %d has size %v, want %v (all glyphs must share one size)", i, g.Size(), size)
		}
		if _, err := w.Write(g.AsRowpad()); err != nil {
			return err
		}
	}
	if f.Map != nil {
		for i := range f.Glyphs {
			for cp := range f.Map.ToUnicode(i) {
				if _, err := w.Write([]byte(string(cp))); err != nil {
					return err
				}
			}
			if _, err := w.Write([]byte{psf2GlyphSep}); err != nil {
				return err
			}
		}
	}
	return nil
}
