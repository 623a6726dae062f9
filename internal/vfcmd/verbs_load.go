package vfcmd

import (
	"fmt"
	"strconv"

	"github.com/rkoesters/vfontas/internal/geom"
	"github.com/rkoesters/vfontas/internal/raster"
	"github.com/rkoesters/vfontas/internal/unimap"
	"github.com/rkoesters/vfontas/internal/vfformat/bdf"
	"github.com/rkoesters/vfontas/internal/vfformat/clt"
	"github.com/rkoesters/vfontas/internal/vfformat/cpi"
	"github.com/rkoesters/vfontas/internal/vfformat/fntfmt"
	"github.com/rkoesters/vfontas/internal/vfformat/hex"
	"github.com/rkoesters/vfontas/internal/vfformat/pcf"
	"github.com/rkoesters/vfontas/internal/vfformat/psf"
)

func cmdLoadbdf(st *State, args []string) error {
	if err := wantArgs("loadbdf", args, 1); err != nil {
		return err
	}
	r, err := openInput(st, args[0])
	if err != nil {
		return fmt.Errorf("loadbdf: %w", err)
	}
	defer r.Close()
	f, err := bdf.Load(r)
	if err != nil {
		return fmt.Errorf("loadbdf: %w", err)
	}
	st.Font = f
	return nil
}

// loadclt appends a single glyph read from a CLT file; CLT has no
// multi-glyph container form, so repeated loadclt commands build up a
// font one glyph at a time.
func cmdLoadclt(st *State, args []string) error {
	if err := wantArgs("loadclt", args, 1); err != nil {
		return err
	}
	r, err := openInput(st, args[0])
	if err != nil {
		return fmt.Errorf("loadclt: %w", err)
	}
	defer r.Close()
	g, err := clt.Load(r)
	if err != nil {
		return fmt.Errorf("loadclt: %w", err)
	}
	st.Font.Append(g)
	return nil
}

func cmdLoadfnt(st *State, args []string) error {
	if err := wantArgs("loadfnt", args, 1); err != nil {
		return err
	}
	r, err := openInput(st, args[0])
	if err != nil {
		return fmt.Errorf("loadfnt: %w", err)
	}
	defer r.Close()
	f, err := fntfmt.Load(r)
	if err != nil {
		return fmt.Errorf("loadfnt: %w", err)
	}
	st.Font = f
	return nil
}

func cmdLoadhex(st *State, args []string) error {
	if err := wantArgs("loadhex", args, 1); err != nil {
		return err
	}
	r, err := openInput(st, args[0])
	if err != nil {
		return fmt.Errorf("loadhex: %w", err)
	}
	defer r.Close()
	f, err := hex.Load(r)
	if err != nil {
		return fmt.Errorf("loadhex: %w", err)
	}
	st.Font = f
	return nil
}

// loadmap=FILE replaces the font's unicode map from a unimap text file;
// loadmap=auto instead derives it from the DOS code page recorded by a
// prior xcpi/xcpi.ice load (the "cpi-codepage" property).
func cmdLoadmap(st *State, args []string) error {
	if err := wantArgs("loadmap", args, 1); err != nil {
		return err
	}
	if args[0] == "auto" {
		cp, ok := st.Font.Props["cpi-codepage"]
		if !ok {
			return fmt.Errorf("loadmap=auto: font has no cpi-codepage property (load a CPI file first)")
		}
		codepage, err := strconv.Atoi(cp)
		if err != nil {
			return fmt.Errorf("loadmap=auto: bad cpi-codepage property %q: %w", cp, err)
		}
		if err := cpi.LoadMapAuto(st.Font, codepage); err != nil {
			return fmt.Errorf("loadmap=auto: %w", err)
		}
		return nil
	}
	r, err := openInput(st, args[0])
	if err != nil {
		return fmt.Errorf("loadmap: %w", err)
	}
	defer r.Close()
	m, err := unimap.Load(r)
	if err != nil {
		return fmt.Errorf("loadmap: %w", err)
	}
	st.Font.Map = m
	return nil
}

func cmdLoadpcf(st *State, args []string) error {
	if err := wantArgs("loadpcf", args, 1); err != nil {
		return err
	}
	r, err := openInput(st, args[0])
	if err != nil {
		return fmt.Errorf("loadpcf: %w", err)
	}
	defer r.Close()
	f, err := pcf.Load(r)
	if err != nil {
		return fmt.Errorf("loadpcf: %w", err)
	}
	st.Font = f
	return nil
}

func cmdLoadpsf(st *State, args []string) error {
	if err := wantArgs("loadpsf", args, 1); err != nil {
		return err
	}
	r, err := openInput(st, args[0])
	if err != nil {
		return fmt.Errorf("loadpsf: %w", err)
	}
	defer r.Close()
	f, err := psf.Load(r)
	if err != nil {
		return fmt.Errorf("loadpsf: %w", err)
	}
	st.Font = f
	return nil
}

// loadraw=FILE,W,H reads a headerless row-padded bitmap stream of
// arbitrary glyph count, inferred from the file size -- the one load verb
// that cannot assume a fixed size/count convention the way loadfnt does.
func cmdLoadraw(st *State, args []string) error {
	if err := wantArgs("loadraw", args, 3); err != nil {
		return err
	}
	w, err := atoi("loadraw", args[1])
	if err != nil {
		return err
	}
	h, err := atoi("loadraw", args[2])
	if err != nil {
		return err
	}
	if w <= 0 || h <= 0 {
		return fmt.Errorf("loadraw: non-positive size %dx%d", w, h)
	}
	r, err := openInput(st, args[0])
	if err != nil {
		return fmt.Errorf("loadraw: %w", err)
	}
	defer r.Close()
	var data []byte
	buf := make([]byte, 4096)
	for {
		n, rerr := r.Read(buf)
		data = append(data, buf[:n]...)
		if rerr != nil {
			break
		}
	}
	size := geom.Size{W: w, H: h}
	rowBytes := (w + 7) / 8
	glyphBytes := rowBytes * h
	if glyphBytes == 0 || len(data)%glyphBytes != 0 {
		return fmt.Errorf("loadraw: %d bytes is not a multiple of %d bytes/glyph", len(data), glyphBytes)
	}
	n := len(data) / glyphBytes
	f := st.Font
	f.Blank(0, size)
	f.ClearMap()
	for i := 0; i < n; i++ {
		g, err := raster.CreateFromRpad(size, data[i*glyphBytes:(i+1)*glyphBytes])
		if err != nil {
			return fmt.Errorf("loadraw: glyph %d: %w", i, err)
		}
		f.Append(g)
	}
	return nil
}
