package palcmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rkoesters/vfontas/internal/palette"
)

// ParsePalette reads a palette register file: 16 non-blank lines, each a
// "#rrggbb" color, in entry order. This is the format loadpal reads
// directly and loadreg/savereg use under the register-name convention
// in registerPath.
func ParsePalette(r io.Reader) (*palette.Palette, error) {
	sc := bufio.NewScanner(r)
	var lines []string
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(lines) != 16 {
		return nil, fmt.Errorf("palcmd: palette file has %d color line(s), want 16", len(lines))
	}
	p := palette.New()
	for i, line := range lines {
		rgb, err := parseHexColor(line)
		if err != nil {
			return nil, fmt.Errorf("palcmd: entry %d: %w", i, err)
		}
		p.Entries[i].RGB = rgb
	}
	p.SyncFromRGB()
	return p, nil
}

// WritePalette writes a palette in the same format ParsePalette reads.
func WritePalette(w io.Writer, p *palette.Palette) error {
	for i := 0; i < 16; i++ {
		rgb := p.RGB(i)
		if _, err := fmt.Fprintf(w, "#%02x%02x%02x\n", rgb[0], rgb[1], rgb[2]); err != nil {
			return err
		}
	}
	return nil
}

func parseHexColor(s string) ([3]uint8, error) {
	if len(s) != 7 || s[0] != '#' {
		return [3]uint8{}, fmt.Errorf("expected #rrggbb, got %q", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return [3]uint8{}, fmt.Errorf("expected #rrggbb, got %q: %w", s, err)
	}
	return [3]uint8{uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
}

// registerPath resolves a bare register NAME (as given to loadreg/savereg)
// to a file path: NAME.palreg in the current directory. There is no
// standard register-file naming scheme to ground this on, so the
// extension marks these as palcomp's own files rather than colliding with
// whatever else might be named NAME in a working directory.
func registerPath(name string) string {
	return name + ".palreg"
}

func presetOrRegister(name string) (*palette.Palette, error) {
	switch name {
	case "vga":
		return palette.VGA(), nil
	case "vgs":
		return palette.VGSoft(), nil
	case "win":
		return palette.Windows(), nil
	}
	return nil, nil
}
