package vfcmd

import (
	"fmt"
	"log"

	"github.com/rkoesters/vfontas/internal/unimap"
	"github.com/rkoesters/vfontas/internal/vfformat/bdf"
	"github.com/rkoesters/vfontas/internal/vfformat/clt"
	"github.com/rkoesters/vfontas/internal/vfformat/cpi"
	"github.com/rkoesters/vfontas/internal/vfformat/fntfmt"
	"github.com/rkoesters/vfontas/internal/vfformat/pbm"
	"github.com/rkoesters/vfontas/internal/vfformat/pcf"
	"github.com/rkoesters/vfontas/internal/vfformat/psf"
	"github.com/rkoesters/vfontas/internal/vfformat/sfd"
)

func cmdSavebdf(st *State, args []string) error {
	if err := wantArgs("savebdf", args, 1); err != nil {
		return err
	}
	w, err := openOutput(st, args[0])
	if err != nil {
		return fmt.Errorf("savebdf: %w", err)
	}
	defer w.Close()
	if err := bdf.Save(w, st.Font); err != nil {
		return fmt.Errorf("savebdf: %w", err)
	}
	return nil
}

// saveclt always writes a directory: CLT is one file per glyph, so a
// multi-glyph font has no single-file form.
func cmdSaveclt(st *State, args []string) error {
	if err := wantArgs("saveclt", args, 1); err != nil {
		return err
	}
	if err := clt.SaveFont(args[0], st.Font); err != nil {
		return fmt.Errorf("saveclt: %w", err)
	}
	return nil
}

func cmdSavefnt(st *State, args []string) error {
	if err := wantArgs("savefnt", args, 1); err != nil {
		return err
	}
	w, err := openOutput(st, args[0])
	if err != nil {
		return fmt.Errorf("savefnt: %w", err)
	}
	defer w.Close()
	if err := fntfmt.Save(w, st.Font); err != nil {
		return fmt.Errorf("savefnt: %w", err)
	}
	return nil
}

func cmdSavemap(st *State, args []string) error {
	if err := wantArgs("savemap", args, 1); err != nil {
		return err
	}
	if st.Font.Map == nil {
		log.Printf("vfcmd: savemap: font has no unicode map; skipping")
		return nil
	}
	w, err := openOutput(st, args[0])
	if err != nil {
		return fmt.Errorf("savemap: %w", err)
	}
	defer w.Close()
	if err := unimap.Save(w, st.Font.Map); err != nil {
		return fmt.Errorf("savemap: %w", err)
	}
	return nil
}

func saveSFD(st *State, verb string, args []string, vz sfd.Vectorizer) error {
	if err := wantArgs(verb, args, 1); err != nil {
		return err
	}
	w, err := openOutput(st, args[0])
	if err != nil {
		return fmt.Errorf("%s: %w", verb, err)
	}
	defer w.Close()
	if err := sfd.Save(w, st.Font, vz, st.Descent, st.Scale); err != nil {
		return fmt.Errorf("%s: %w", verb, err)
	}
	return nil
}

func cmdSavesfd(st *State, args []string) error { return saveSFD(st, "savesfd", args, sfd.Simple) }
func cmdSaven1(st *State, args []string) error   { return saveSFD(st, "saven1", args, sfd.N1) }
func cmdSaven2(st *State, args []string) error   { return saveSFD(st, "saven2", args, sfd.N2) }
func cmdSaven2ev(st *State, args []string) error { return saveSFD(st, "saven2ev", args, sfd.N2EV) }

// savepbm always writes a directory, one PBM file per glyph.
func cmdSavepbm(st *State, args []string) error {
	if err := wantArgs("savepbm", args, 1); err != nil {
		return err
	}
	if err := pbm.Save(args[0], st.Font); err != nil {
		return fmt.Errorf("savepbm: %w", err)
	}
	return nil
}

func cmdSavepcf(st *State, args []string) error {
	if err := wantArgs("savepcf", args, 1); err != nil {
		return err
	}
	w, err := openOutput(st, args[0])
	if err != nil {
		return fmt.Errorf("savepcf: %w", err)
	}
	defer w.Close()
	if err := pcf.Save(w, st.Font); err != nil {
		return fmt.Errorf("savepcf: %w", err)
	}
	return nil
}

// savepsf always writes PSF2, the glossary's "preferred" version.
func cmdSavepsf(st *State, args []string) error {
	if err := wantArgs("savepsf", args, 1); err != nil {
		return err
	}
	w, err := openOutput(st, args[0])
	if err != nil {
		return fmt.Errorf("savepsf: %w", err)
	}
	defer w.Close()
	if err := psf.SaveV2(w, st.Font); err != nil {
		return fmt.Errorf("savepsf: %w", err)
	}
	return nil
}

func cpiCodepage(st *State) (int, error) {
	cp, ok := st.Font.Props["cpi-codepage"]
	if !ok {
		return 437, nil
	}
	var codepage int
	if _, err := fmt.Sscanf(cp, "%d", &codepage); err != nil {
		return 0, fmt.Errorf("bad cpi-codepage property %q: %w", cp, err)
	}
	return codepage, nil
}

// xcpi/xcpi.ice are "extract": load a CPI file and write its glyphs out as
// a directory of PBM files, the same way the CPI->PBM pipeline is exposed
// everywhere else. The two differ only in whether the segment:offset
// header-offset fixup is applied while reading the CPI file.
func extractCPI(st *State, verb string, args []string, ice bool) error {
	if err := wantArgs(verb, args, 2); err != nil {
		return err
	}
	r, err := openInput(st, args[0])
	if err != nil {
		return fmt.Errorf("%s: %w", verb, err)
	}
	defer r.Close()
	f, err := cpi.Load(r, ice)
	if err != nil {
		return fmt.Errorf("%s: %w", verb, err)
	}
	if err := pbm.Save(args[1], f); err != nil {
		return fmt.Errorf("%s: %w", verb, err)
	}
	st.Font = f
	return nil
}

func cmdXcpi(st *State, args []string) error    { return extractCPI(st, "xcpi", args, false) }
func cmdXcpiIce(st *State, args []string) error { return extractCPI(st, "xcpi.ice", args, true) }

// savecpi writes the current font as a single-codepage CPI file, using
// cpisep's device type (screen or printer) and the font's recorded code
// page (defaulting to 437 if the font was never loaded from a CPI file).
func cmdSavecpi(st *State, args []string) error {
	if err := wantArgs("savecpi", args, 1); err != nil {
		return err
	}
	codepage, err := cpiCodepage(st)
	if err != nil {
		return fmt.Errorf("savecpi: %w", err)
	}
	w, err := openOutput(st, args[0])
	if err != nil {
		return fmt.Errorf("savecpi: %w", err)
	}
	defer w.Close()
	if err := cpi.Save(w, st.Font, codepage, st.CPISep); err != nil {
		return fmt.Errorf("savecpi: %w", err)
	}
	return nil
}
