package palcmd

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rkoesters/vfontas/internal/contrast"
	"github.com/rkoesters/vfontas/internal/paleval"
	"github.com/rkoesters/vfontas/internal/palette"
)

func parseFloat(verb, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", verb, err)
	}
	return v, nil
}

func cmdVGA(st *State, args []string) error { st.Palette = palette.VGA(); return nil }
func cmdVGS(st *State, args []string) error { st.Palette = palette.VGSoft(); return nil }
func cmdWin(st *State, args []string) error { st.Palette = palette.Windows(); return nil }

func openPaletteFile(st *State, name string) (io.ReadCloser, error) {
	if name == "-" {
		return io.NopCloser(st.Stdin), nil
	}
	return os.Open(name)
}

func cmdLoadpal(st *State, args []string) error {
	if err := wantArgs("loadpal", args, 1); err != nil {
		return err
	}
	r, err := openPaletteFile(st, args[0])
	if err != nil {
		return fmt.Errorf("loadpal: %w", err)
	}
	defer r.Close()
	p, err := ParsePalette(r)
	if err != nil {
		return fmt.Errorf("loadpal: %w", err)
	}
	st.Palette = p
	return nil
}

func cmdLoadreg(st *State, args []string) error {
	if err := wantArgs("loadreg", args, 1); err != nil {
		return err
	}
	p, err := presetOrRegister(args[0])
	if err != nil {
		return fmt.Errorf("loadreg: %w", err)
	}
	if p == nil {
		f, err := os.Open(registerPath(args[0]))
		if err != nil {
			return fmt.Errorf("loadreg: %w", err)
		}
		defer f.Close()
		p, err = ParsePalette(f)
		if err != nil {
			return fmt.Errorf("loadreg: %w", err)
		}
	}
	st.Palette = p
	return nil
}

func cmdSavereg(st *State, args []string) error {
	if err := wantArgs("savereg", args, 1); err != nil {
		return err
	}
	f, err := os.Create(registerPath(args[0]))
	if err != nil {
		return fmt.Errorf("savereg: %w", err)
	}
	defer f.Close()
	if err := WritePalette(f, st.Palette); err != nil {
		return fmt.Errorf("savereg: %w", err)
	}
	return nil
}

func cmdBlend(st *State, args []string) error {
	if err := wantArgs("blend", args, 2); err != nil {
		return err
	}
	pct, err := parseFloat("blend", args[0])
	if err != nil {
		return err
	}
	other, err := presetOrRegister(args[1])
	if err != nil {
		return fmt.Errorf("blend: %w", err)
	}
	if other == nil {
		f, err := os.Open(registerPath(args[1]))
		if err != nil {
			return fmt.Errorf("blend: %w", err)
		}
		defer f.Close()
		other, err = ParsePalette(f)
		if err != nil {
			return fmt.Errorf("blend: %w", err)
		}
	}
	st.Palette.Blend(pct, other)
	return nil
}

func cmdEq(st *State, args []string) error {
	b := palette.DefaultEqB
	if len(args) == 1 && args[0] != "" {
		v, err := parseFloat("eq", args[0])
		if err != nil {
			return err
		}
		b = v
	} else if len(args) > 1 {
		return fmt.Errorf("eq: want 0 or 1 argument(s), got %d", len(args))
	}
	st.Palette.Eq(b)
	return nil
}

func cmdLoeq(st *State, args []string) error {
	b, g := palette.DefaultLoEqB, palette.DefaultLoEqG
	switch {
	case len(args) == 0:
		// bare "loeq"; keep the defaults.
	case len(args) == 1 && args[0] != "":
		v, err := parseFloat("loeq", args[0])
		if err != nil {
			return err
		}
		b = v
	case len(args) == 2:
		vb, err := parseFloat("loeq", args[0])
		if err != nil {
			return err
		}
		vg, err := parseFloat("loeq", args[1])
		if err != nil {
			return err
		}
		b, g = vb, vg
	case len(args) == 1 && args[0] == "":
		// keep the defaults.
	default:
		return fmt.Errorf("loeq: want 0, 1, or 2 argument(s), got %d", len(args))
	}
	st.Palette.LoEq(b, g)
	return nil
}

func cmdHSLTint(st *State, args []string) error {
	if err := wantArgs("hsltint", args, 3); err != nil {
		return err
	}
	dh, err := parseFloat("hsltint", args[0])
	if err != nil {
		return err
	}
	sScale, err := parseFloat("hsltint", args[1])
	if err != nil {
		return err
	}
	lScale, err := parseFloat("hsltint", args[2])
	if err != nil {
		return err
	}
	st.Palette.HSLTint(dh, sScale, lScale)
	return nil
}

func cmdLChTint(st *State, args []string) error {
	if err := wantArgs("lchtint", args, 3); err != nil {
		return err
	}
	dh, err := parseFloat("lchtint", args[0])
	if err != nil {
		return err
	}
	cScale, err := parseFloat("lchtint", args[1])
	if err != nil {
		return err
	}
	lScale, err := parseFloat("lchtint", args[2])
	if err != nil {
		return err
	}
	st.Palette.LChTint(dh, cScale, lScale)
	return nil
}

// ild sets the reference illuminant temperature the palette's CIE engine
// uses to convert between sRGB and LCh, then re-derives LCh from the
// existing RGB values (RGB stays the source of truth; the illuminant
// only changes how "perceptual" those pixels are interpreted as being).
func cmdIld(st *State, args []string) error {
	if err := wantArgs("ild", args, 1); err != nil {
		return err
	}
	t, err := parseFloat("ild", args[0])
	if err != nil {
		return err
	}
	st.Palette.Engine.SetIlluminant(t)
	st.Palette.SyncFromRGB()
	return nil
}

func cmdCfgamma(st *State, args []string) error {
	if err := wantArgs("cfgamma", args, 1); err != nil {
		return err
	}
	g, err := parseFloat("cfgamma", args[0])
	if err != nil {
		return err
	}
	st.Palette.Engine.SetGamma(g)
	st.Palette.SyncFromRGB()
	return nil
}

func cmdLch(st *State, args []string) error {
	for i := 0; i < 16; i++ {
		lch := st.Palette.Entries[i].LCh
		if _, err := fmt.Fprintf(st.Stdout, "entry %d: L=%.4f C=%.4f H=%.4f\n", i, lch.L, lch.C, lch.H); err != nil {
			return err
		}
	}
	return nil
}

func printGrids(w io.Writer, grids []contrast.GridResult) error {
	for _, g := range grids {
		_, err := fmt.Fprintf(w, "%s: count=%d penalized=%d sum=%.4f mean=%.4f adjustedSum=%.4f adjustedMean=%.4f\n",
			g.Grid, g.Count, g.PenalizedCount, g.Sum, g.Mean, g.AdjustedSum, g.AdjustedMean)
		if err != nil {
			return err
		}
	}
	return nil
}

func cmdCXL(st *State, args []string) error { return printGrids(st.Stdout, contrast.CXL(st.Palette)) }
func cmdCXA(st *State, args []string) error { return printGrids(st.Stdout, contrast.CXA(st.Palette)) }

func cmdInv16(st *State, args []string) error       { st.Palette.Inv16(); return nil }
func cmdSyncFromLCh(st *State, args []string) error { st.Palette.SyncFromLCh(); return nil }
func cmdSyncFromRGB(st *State, args []string) error { st.Palette.SyncFromRGB(); return nil }

func cmdEval(st *State, rawRest string, scope string) error {
	var regs []paleval.Registers
	if scope == "" {
		regs = st.Palette.AllRegisters()
	} else {
		idx, err := paleval.ParseScope(scope)
		if err != nil {
			return fmt.Errorf("eval: %w", err)
		}
		regs = st.Palette.ScopedRegisters(idx)
	}
	if err := paleval.Eval(rawRest, regs); err != nil {
		return fmt.Errorf("eval: %w", err)
	}
	return nil
}
