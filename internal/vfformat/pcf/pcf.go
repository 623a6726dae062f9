// Package pcf loads and saves X11 Portable Compiled Format fonts. PCF is a
// table-of-contents binary container; this package reads and writes the
// three tables actually needed to round-trip a vfontas font -- METRICS,
// BITMAPS and BDF_ENCODINGS -- uncompressed, MSByte-first, MSBit-first,
// one byte of glyph-row padding, matching raster.Glyph's own row-pad
// convention. PROPERTIES, ACCELERATORS, SWIDTHS and GLYPH_NAMES, which a
// real bdftopcf-produced file may also carry, are neither required nor
// produced here.
package pcf

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/rkoesters/vfontas/internal/geom"
	"github.com/rkoesters/vfontas/internal/raster"
	"github.com/rkoesters/vfontas/internal/vfont"
	"github.com/rkoesters/vfontas/internal/vferr"
)

var magic = [4]byte{0x01, 'f', 'c', 'p'}

const (
	typeMetrics      = 1 << 2
	typeBitmaps      = 1 << 3
	typeBDFEncodings = 1 << 5

	// formatDefault selects MSByte-first, MSBit-first, 1-byte glyph
	// padding, 1-byte scan unit -- the layout raster.Glyph already uses.
	formatDefault = 0x00000000
)

type tocEntry struct {
	Type, Format, Size, Offset uint32
}

// Load reads r as a PCF font, locating and decoding its METRICS, BITMAPS
// and BDF_ENCODINGS tables. Tables in formats other than formatDefault are
// rejected as unsupported, since this module only ever writes that format.
func Load(r io.Reader) (*vfont.Font, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("pcf: %w", err)
	}
	if len(data) < 8 || [4]byte{data[0], data[1], data[2], data[3]} != magic {
		return nil, fmt.Errorf("pcf: %w", vferr.ErrBadMagic)
	}
	count := binary.LittleEndian.Uint32(data[4:8])
	toc := make(map[uint32]tocEntry, count)
	off := 8
	for i := uint32(0); i < count; i++ {
		if off+16 > len(data) {
			return nil, fmt.Errorf("pcf: %w", vferr.ErrTruncated)
		}
		e := tocEntry{
			Type:   binary.LittleEndian.Uint32(data[off:]),
			Format: binary.LittleEndian.Uint32(data[off+4:]),
			Size:   binary.LittleEndian.Uint32(data[off+8:]),
			Offset: binary.LittleEndian.Uint32(data[off+12:]),
		}
		toc[e.Type] = e
		off += 16
	}

	metricsEnt, ok := toc[typeMetrics]
	if !ok {
		return nil, fmt.Errorf("pcf: missing METRICS table")
	}
	bitmapsEnt, ok := toc[typeBitmaps]
	if !ok {
		return nil, fmt.Errorf("pcf: missing BITMAPS table")
	}

	sizes, err := readMetrics(data, metricsEnt)
	if err != nil {
		return nil, err
	}
	glyphs, err := readBitmaps(data, bitmapsEnt, sizes)
	if err != nil {
		return nil, err
	}

	f := vfont.New()
	for _, g := range glyphs {
		f.Append(g)
	}
	if encEnt, ok := toc[typeBDFEncodings]; ok {
		if err := readEncodings(data, encEnt, f); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func checkFormat(format uint32) error {
	if format != formatDefault {
		return fmt.Errorf("pcf: %w: table format 0x%x", vferr.ErrUnsupported, format)
	}
	return nil
}

func readMetrics(data []byte, e tocEntry) ([]geom.Size, error) {
	if err := checkFormat(e.Format); err != nil {
		return nil, err
	}
	p := int(e.Offset) + 4 // skip the per-table format word
	if p+4 > len(data) {
		return nil, fmt.Errorf("pcf: metrics: %w", vferr.ErrTruncated)
	}
	count := binary.BigEndian.Uint32(data[p:])
	p += 4
	sizes := make([]geom.Size, count)
	for i := range sizes {
		if p+12 > len(data) {
			return nil, fmt.Errorf("pcf: metrics: %w", vferr.ErrTruncated)
		}
		left := int16(binary.BigEndian.Uint16(data[p:]))
		right := int16(binary.BigEndian.Uint16(data[p+2:]))
		ascent := int16(binary.BigEndian.Uint16(data[p+4:]))
		descent := int16(binary.BigEndian.Uint16(data[p+6:]))
		// data[p+8:p+10] holds character attributes, unused here.
		sizes[i] = geom.Size{W: int(right - left), H: int(ascent + descent)}
		p += 12
	}
	return sizes, nil
}

func readBitmaps(data []byte, e tocEntry, sizes []geom.Size) ([]raster.Glyph, error) {
	if err := checkFormat(e.Format); err != nil {
		return nil, err
	}
	p := int(e.Offset) + 4
	if p+4 > len(data) {
		return nil, fmt.Errorf("pcf: bitmaps: %w", vferr.ErrTruncated)
	}
	count := binary.BigEndian.Uint32(data[p:])
	p += 4
	if int(count) != len(sizes) {
		return nil, fmt.Errorf("pcf: bitmaps: %d glyphs, metrics table has %d", count, len(sizes))
	}
	offsets := make([]uint32, count)
	for i := range offsets {
		if p+4 > len(data) {
			return nil, fmt.Errorf("pcf: bitmaps: %w", vferr.ErrTruncated)
		}
		offsets[i] = binary.BigEndian.Uint32(data[p:])
		p += 4
	}
	p += 4 * 4 // bitmapSizes[4], one per possible glyph-pad value; unused
	base := p
	glyphs := make([]raster.Glyph, count)
	for i, size := range sizes {
		rowBytes := (size.W + 7) / 8
		start := base + int(offsets[i])
		end := start + rowBytes*size.H
		if end > len(data) {
			return nil, fmt.Errorf("pcf: bitmaps: glyph %d: %w", i, vferr.ErrTruncated)
		}
		g, err := raster.CreateFromRpad(size, data[start:end])
		if err != nil {
			return nil, fmt.Errorf("pcf: bitmaps: glyph %d: %w", i, err)
		}
		glyphs[i] = g
	}
	return glyphs, nil
}

func readEncodings(data []byte, e tocEntry, f *vfont.Font) error {
	if err := checkFormat(e.Format); err != nil {
		return err
	}
	p := int(e.Offset) + 4
	if p+10 > len(data) {
		return fmt.Errorf("pcf: encodings: %w", vferr.ErrTruncated)
	}
	minByte2 := binary.BigEndian.Uint16(data[p:])
	maxByte2 := binary.BigEndian.Uint16(data[p+2:])
	minByte1 := binary.BigEndian.Uint16(data[p+4:])
	maxByte1 := binary.BigEndian.Uint16(data[p+6:])
	p += 10 // skip defaultChar too
	nEnc2 := int(maxByte2-minByte2) + 1
	nEnc1 := int(maxByte1-minByte1) + 1
	m := f.EnsureMap()
	for b1 := 0; b1 < nEnc1; b1++ {
		for b2 := 0; b2 < nEnc2; b2++ {
			if p+2 > len(data) {
				return fmt.Errorf("pcf: encodings: %w", vferr.ErrTruncated)
			}
			idx := int16(binary.BigEndian.Uint16(data[p:]))
			p += 2
			if idx < 0 {
				continue
			}
			cp := rune((b1+int(minByte1))<<8 | (b2 + int(minByte2)))
			m.AddI2U(int(idx), cp)
		}
	}
	return nil
}

// Save writes f as a minimal PCF file carrying METRICS, BITMAPS and (if f
// has a unicode map) BDF_ENCODINGS tables in formatDefault.
func Save(w io.Writer, f *vfont.Font) error {
	metrics := buildMetrics(f)
	bitmaps := buildBitmaps(f)
	var encodings []byte
	if f.Map != nil {
		encodings = buildEncodings(f)
	}

	type section struct {
		typ  uint32
		body []byte
	}
	sections := []section{
		{typeMetrics, metrics},
		{typeBitmaps, bitmaps},
	}
	if encodings != nil {
		sections = append(sections, section{typeBDFEncodings, encodings})
	}

	headerLen := 8 + 16*len(sections)
	off := uint32(headerLen)
	entries := make([]tocEntry, len(sections))
	for i, s := range sections {
		entries[i] = tocEntry{Type: s.typ, Format: formatDefault, Size: uint32(len(s.body)), Offset: off}
		off += uint32(len(s.body))
	}

	if _, err := w.Write(magic[:]); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(sections))); err != nil {
		return err
	}
	for _, e := range entries {
		for _, v := range []uint32{e.Type, e.Format, e.Size, e.Offset} {
			if err := binary.Write(w, binary.LittleEndian, v); err != nil {
				return err
			}
		}
	}
	for _, s := range sections {
		if _, err := w.Write(s.body); err != nil {
			return err
		}
	}
	return nil
}

func buildMetrics(f *vfont.Font) []byte {
	var buf []byte
	buf = appendU32BE(buf, formatDefault)
	buf = appendU32BE(buf, uint32(len(f.Glyphs)))
	for _, g := range f.Glyphs {
		size := g.Size()
		buf = appendU16BE(buf, 0)              // left bearing
		buf = appendU16BE(buf, uint16(size.W)) // right bearing
		buf = appendU16BE(buf, uint16(size.H)) // ascent
		buf = appendU16BE(buf, 0)              // descent
		buf = appendU16BE(buf, 0)              // character attributes
		buf = appendU16BE(buf, 0)              // unused; completes the 12-byte record
	}
	return buf
}

func buildBitmaps(f *vfont.Font) []byte {
	var buf []byte
	buf = appendU32BE(buf, formatDefault)
	buf = appendU32BE(buf, uint32(len(f.Glyphs)))
	offsets := make([]uint32, len(f.Glyphs))
	var payload []byte
	for i, g := range f.Glyphs {
		offsets[i] = uint32(len(payload))
		payload = append(payload, g.AsRowpad()...)
	}
	for _, o := range offsets {
		buf = appendU32BE(buf, o)
	}
	for i := 0; i < 4; i++ {
		buf = appendU32BE(buf, uint32(len(payload)))
	}
	buf = append(buf, payload...)
	return buf
}

func buildEncodings(f *vfont.Font) []byte {
	// Single-byte encoding space only: every mapped codepoint must fit in
	// one byte, matching the DOS/Latin-1 code pages this module otherwise
	// targets.
	minCP, maxCP := 255, 0
	for i := range f.Glyphs {
		for cp := range f.Map.ToUnicode(i) {
			if int(cp) < minCP {
				minCP = int(cp)
			}
			if int(cp) > maxCP {
				maxCP = int(cp)
			}
		}
	}
	if minCP > maxCP {
		minCP, maxCP = 0, 0
	}
	idxOf := make(map[rune]int)
	for i := range f.Glyphs {
		for cp := range f.Map.ToUnicode(i) {
			idxOf[cp] = i
		}
	}

	var buf []byte
	buf = appendU32BE(buf, formatDefault)
	buf = appendU16BE(buf, uint16(minCP)) // minByte2
	buf = appendU16BE(buf, uint16(maxCP)) // maxByte2
	buf = appendU16BE(buf, 0)             // minByte1
	buf = appendU16BE(buf, 0)             // maxByte1
	buf = appendU16BE(buf, 0xFFFF)        // defaultChar: none
	for cp := minCP; cp <= maxCP; cp++ {
		idx, ok := idxOf[rune(cp)]
		if !ok {
			buf = appendU16BE(buf, 0xFFFF)
			continue
		}
		buf = appendU16BE(buf, uint16(idx))
	}
	return buf
}

func appendU32BE(b []byte, v uint32) []byte {
	return append(b, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

func appendU16BE(b []byte, v uint16) []byte {
	return append(b, byte(v>>8), byte(v))
}
