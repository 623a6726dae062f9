// Package cpi loads and saves DOS CPI code page files: a `0xFF "FONT    "`
// file header, pnum=1 and ptyp=1 (this module only ever reads or writes a
// single code page per file), a chain of codepage entry headers (screen
// device_type=1 or printer device_type=2), each pointing at a code page
// info header that in turn carries one raster font. The xcpi.ice variant
// additionally applies the segment:offset-to-linear translation
// `(x>>12) + (x & 0xFFFF)` to the header's cpeh pointer and to
// cpih_offset (next_cpeh_offset is never followed), undoing
// the real-mode addressing some DOS-era CPI encoders stored instead of
// plain byte offsets.
package cpi

import (
	"encoding/binary"
	"fmt"
	"io"

	"golang.org/x/text/encoding/charmap"

	"github.com/rkoesters/vfontas/internal/geom"
	"github.com/rkoesters/vfontas/internal/raster"
	"github.com/rkoesters/vfontas/internal/vfont"
	"github.com/rkoesters/vfontas/internal/vferr"
)

const (
	DeviceScreen  = 1
	DevicePrinter = 2

	headerID0 = 0xFF
)

var headerID = [8]byte{'F', 'O', 'N', 'T', ' ', ' ', ' ', ' '}

// fixupSegOff applies the xcpi.ice segment:offset-to-linear translation.
func fixupSegOff(x uint32) uint32 {
	return (x >> 12) + (x & 0xFFFF)
}

// Load reads r as a CPI file holding exactly one code page and one font
// size, which is all a single vfontas font container can represent. If
// ice is true, the xcpi.ice offset translation is applied before
// following cpeh_offset/cpih_offset.
func Load(r io.Reader, ice bool) (*vfont.Font, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cpi: %w", err)
	}
	if len(data) < 24 || data[0] != headerID0 || [8]byte(data[1:9]) != headerID {
		return nil, fmt.Errorf("cpi: %w", vferr.ErrBadMagic)
	}
	pnum := binary.LittleEndian.Uint16(data[17:19])
	if pnum < 1 {
		return nil, fmt.Errorf("cpi: pnum=%d, want at least 1", pnum)
	}
	fontPtr := binary.LittleEndian.Uint32(data[20:24])

	cpehOff := fontPtr
	if ice {
		cpehOff = fixupSegOff(cpehOff)
	}
	if int(cpehOff)+28 > len(data) {
		return nil, fmt.Errorf("cpi: cpeh: %w", vferr.ErrTruncated)
	}
	deviceType := binary.LittleEndian.Uint16(data[cpehOff+6:])
	codepage := binary.LittleEndian.Uint16(data[cpehOff+16:])
	cpihOff := binary.LittleEndian.Uint32(data[cpehOff+24:])
	if ice {
		cpihOff = fixupSegOff(cpihOff)
	}

	if int(cpihOff)+4 > len(data) {
		return nil, fmt.Errorf("cpi: cpih: %w", vferr.ErrTruncated)
	}
	numFonts := binary.LittleEndian.Uint16(data[cpihOff+2:])
	if numFonts < 1 {
		return nil, fmt.Errorf("cpi: codepage %d has no font sizes", codepage)
	}
	p := int(cpihOff) + 6
	if p+4 > len(data) {
		return nil, fmt.Errorf("cpi: screen font header: %w", vferr.ErrTruncated)
	}
	height, width := data[p], data[p+1]
	numChars := binary.LittleEndian.Uint16(data[p+4:])
	p += 6

	rowBytes := (int(width) + 7) / 8
	need := rowBytes * int(height) * int(numChars)
	if p+need > len(data) {
		return nil, fmt.Errorf("cpi: glyph data: %w", vferr.ErrTruncated)
	}

	f := vfont.New()
	f.SetProp("cpi-device-type", deviceTypeName(deviceType))
	f.SetProp("cpi-codepage", fmt.Sprintf("%d", codepage))
	size := geom.Size{W: int(width), H: int(height)}
	for i := 0; i < int(numChars); i++ {
		raw := data[p : p+rowBytes*int(height)]
		p += rowBytes * int(height)
		g, err := raster.CreateFromRpad(size, raw)
		if err != nil {
			return nil, fmt.Errorf("cpi: glyph %d: %w", i, err)
		}
		f.Append(g)
	}
	return f, nil
}

func deviceTypeName(t uint16) string {
	if t == DevicePrinter {
		return "printer"
	}
	return "screen"
}

// LoadMapAuto derives a unicode map for f from the named DOS code page
// using golang.org/x/text's charmap tables, for the `loadmap=auto` verb:
// CPI files carry no byte->Unicode table of their own, only a raw glyph
// array indexed by byte value, so the mapping is reconstructed from the
// code page's well-known charmap instead of read from the file.
func LoadMapAuto(f *vfont.Font, codepage int) error {
	cm, err := charmapFor(codepage)
	if err != nil {
		return err
	}
	m := f.EnsureMap()
	for i := 0; i < len(f.Glyphs) && i < 256; i++ {
		r, ok := cm.DecodeByte(byte(i))
		if ok {
			m.AddI2U(i, r)
		}
	}
	return nil
}

func charmapFor(codepage int) (*charmap.Charmap, error) {
	switch codepage {
	case 437:
		return charmap.CodePage437, nil
	case 850:
		return charmap.CodePage850, nil
	case 852:
		return charmap.CodePage852, nil
	case 858:
		return charmap.CodePage858, nil
	case 860:
		return charmap.CodePage860, nil
	case 862:
		return charmap.CodePage862, nil
	case 863:
		return charmap.CodePage863, nil
	case 865:
		return charmap.CodePage865, nil
	case 866:
		return charmap.CodePage866, nil
	default:
		return nil, fmt.Errorf("cpi: %w: no built-in charmap for code page %d", vferr.ErrUnsupported, codepage)
	}
}

// Save writes f as a single-codepage, single-font-size CPI file. codepage
// and deviceType (DeviceScreen or DevicePrinter) describe the one entry
// this file carries; plain byte offsets are written (never the xcpi.ice
// segment:offset form).
func Save(w io.Writer, f *vfont.Font, codepage int, deviceType uint16) error {
	if len(f.Glyphs) == 0 {
		return fmt.Errorf("cpi: font has no glyphs")
	}
	size := f.Glyphs[0].Size()
	var glyphData []byte
	for i, g := range f.Glyphs {
		if g.Size() != size {
			return fmt.Errorf("cpi: glyph %d has size %v, want %v (CPI fonts are monosize)", i, g.Size(), size)
		}
		glyphData = append(glyphData, g.AsRowpad()...)
	}

	const headerLen = 24
	const cpehLen = 28
	const sfhLen = 6
	cpehOff := uint32(headerLen)
	cpihOff := cpehOff + cpehLen

	if _, err := w.Write([]byte{headerID0}); err != nil {
		return err
	}
	if _, err := w.Write(headerID[:]); err != nil {
		return err
	}
	if _, err := w.Write(make([]byte, 8)); err != nil { // reserved
		return err
	}
	if err := writeLE16(w, 1); err != nil { // pnum
		return err
	}
	if err := writeLE8(w, 1); err != nil { // ptyp
		return err
	}
	if err := writeLE32(w, cpehOff); err != nil { // fontptr
		return err
	}

	// CodePageEntryHeader
	if err := writeLE16(w, cpehLen); err != nil {
		return err
	}
	if err := writeLE32(w, 0xFFFFFFFF); err != nil { // next_cpeh_offset: none
		return err
	}
	if err := writeLE16(w, deviceType); err != nil {
		return err
	}
	if _, err := w.Write([]byte("EGA     ")); err != nil { // device_name
		return err
	}
	if err := writeLE16(w, uint16(codepage)); err != nil {
		return err
	}
	if _, err := w.Write(make([]byte, 6)); err != nil { // reserved
		return err
	}
	if err := writeLE32(w, cpihOff); err != nil {
		return err
	}

	// CodePageInfoHeader: version, num_fonts, size
	if err := writeLE16(w, 1); err != nil {
		return err
	}
	if err := writeLE16(w, 1); err != nil { // num_fonts
		return err
	}
	if err := writeLE16(w, uint16(sfhLen)+uint16(len(glyphData))); err != nil { // size
		return err
	}

	// ScreenFontHeader: height, width, yaspect, xaspect, num_chars
	if err := writeLE8(w, byte(size.H)); err != nil {
		return err
	}
	if err := writeLE8(w, byte(size.W)); err != nil {
		return err
	}
	if _, err := w.Write([]byte{0, 0}); err != nil { // yaspect, xaspect: unused
		return err
	}
	if err := writeLE16(w, uint16(len(f.Glyphs))); err != nil {
		return err
	}

	_, err := w.Write(glyphData)
	return err
}

func writeLE8(w io.Writer, v byte) error {
	_, err := w.Write([]byte{v})
	return err
}

func writeLE16(w io.Writer, v uint16) error {
	return binary.Write(w, binary.LittleEndian, v)
}

func writeLE32(w io.Writer, v uint32) error {
	return binary.Write(w, binary.LittleEndian, v)
}
