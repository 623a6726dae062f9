package palcmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rkoesters/vfontas/internal/palette"
)

// The formats below have no corresponding reader/writer pair elsewhere in
// the tree to ground against; each is built straight from its own public
// format convention (documented per-verb in DESIGN.md) since they only
// ever need to be written, never read back by palcomp itself.

// emitCT writes the Linux virtual-console "setvtrgb" format: three
// comma-separated lines of 16 decimal channel values, red/green/blue.
func emitCT(w io.Writer, p *palette.Palette) error {
	var rch, gch, bch []string
	for i := 0; i < 16; i++ {
		rgb := p.RGB(i)
		rch = append(rch, strconv.Itoa(int(rgb[0])))
		gch = append(gch, strconv.Itoa(int(rgb[1])))
		bch = append(bch, strconv.Itoa(int(rgb[2])))
	}
	_, err := fmt.Fprintf(w, "%s\n%s\n%s\n", strings.Join(rch, ","), strings.Join(gch, ","), strings.Join(bch, ","))
	return err
}

// emitCT256 writes OSC 4 dynamic-color-set escapes reprogramming a
// terminal's first 16 ANSI slots.
func emitCT256(w io.Writer, p *palette.Palette) error {
	for i := 0; i < 16; i++ {
		rgb := p.RGB(i)
		if _, err := fmt.Fprintf(w, "\x1b]4;%d;rgb:%02x/%02x/%02x\x1b\\", i, rgb[0], rgb[1], rgb[2]); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

// emitXFCE writes an xfce4-terminal "ColorPalette=" preference line.
func emitXFCE(w io.Writer, p *palette.Palette) error {
	if _, err := io.WriteString(w, "ColorPalette="); err != nil {
		return err
	}
	for i := 0; i < 16; i++ {
		rgb := p.RGB(i)
		if _, err := fmt.Fprintf(w, "#%02x%02x%02x;", rgb[0], rgb[1], rgb[2]); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

// emitXterm writes X resource lines in xterm's "*colorN" convention.
func emitXterm(w io.Writer, p *palette.Palette) error {
	for i := 0; i < 16; i++ {
		rgb := p.RGB(i)
		if _, err := fmt.Fprintf(w, "*color%d: #%02x%02x%02x\n", i, rgb[0], rgb[1], rgb[2]); err != nil {
			return err
		}
	}
	return nil
}

// fg/bg/bd emit ANSI truecolor SGR escapes for a conventional role each:
// fg is entry 7 (the classic default text color), bg is entry 0 (black),
// bd is entry 15 (bold/bright white) with the bold attribute set.
func emitFG(w io.Writer, p *palette.Palette) error {
	rgb := p.RGB(7)
	_, err := fmt.Fprintf(w, "\x1b[38;2;%d;%d;%dm", rgb[0], rgb[1], rgb[2])
	return err
}

func emitBG(w io.Writer, p *palette.Palette) error {
	rgb := p.RGB(0)
	_, err := fmt.Fprintf(w, "\x1b[48;2;%d;%d;%dm", rgb[0], rgb[1], rgb[2])
	return err
}

func emitBD(w io.Writer, p *palette.Palette) error {
	rgb := p.RGB(15)
	_, err := fmt.Fprintf(w, "\x1b[1;38;2;%d;%d;%dm", rgb[0], rgb[1], rgb[2])
	return err
}

// emitB0 resets all SGR attributes.
func emitB0(w io.Writer) error {
	_, err := io.WriteString(w, "\x1b[0m")
	return err
}

func cmdCT(st *State, args []string) error    { return emitCT(st.Stdout, st.Palette) }
func cmdCT256(st *State, args []string) error { return emitCT256(st.Stdout, st.Palette) }
func cmdXFCE(st *State, args []string) error  { return emitXFCE(st.Stdout, st.Palette) }
func cmdXterm(st *State, args []string) error { return emitXterm(st.Stdout, st.Palette) }
func cmdFG(st *State, args []string) error    { return emitFG(st.Stdout, st.Palette) }
func cmdBG(st *State, args []string) error    { return emitBG(st.Stdout, st.Palette) }
func cmdBD(st *State, args []string) error    { return emitBD(st.Stdout, st.Palette) }
func cmdB0(st *State, args []string) error    { return emitB0(st.Stdout) }
