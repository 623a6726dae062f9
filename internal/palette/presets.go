package palette

// vgaRGB is the classic 16-color VGA/Linux-console text-mode palette, in
// ANSI index order (black, red, green, yellow, blue, magenta, cyan, white,
// then the bold/bright set repeating the same order).
var vgaRGB = [16][3]uint8{
	{0x00, 0x00, 0x00}, {0xaa, 0x00, 0x00}, {0x00, 0xaa, 0x00}, {0xaa, 0x55, 0x00},
	{0x00, 0x00, 0xaa}, {0xaa, 0x00, 0xaa}, {0x00, 0xaa, 0xaa}, {0xaa, 0xaa, 0xaa},
	{0x55, 0x55, 0x55}, {0xff, 0x55, 0x55}, {0x55, 0xff, 0x55}, {0xff, 0xff, 0x55},
	{0x55, 0x55, 0xff}, {0xff, 0x55, 0xff}, {0x55, 0xff, 0xff}, {0xff, 0xff, 0xff},
}

// winRGB is the legacy Windows console palette (cmd.exe prior to the
// Windows 10 "campbell" scheme), in the same index order as vgaRGB.
var winRGB = [16][3]uint8{
	{0x00, 0x00, 0x00}, {0x80, 0x00, 0x00}, {0x00, 0x80, 0x00}, {0x80, 0x80, 0x00},
	{0x00, 0x00, 0x80}, {0x80, 0x00, 0x80}, {0x00, 0x80, 0x80}, {0xc0, 0xc0, 0xc0},
	{0x80, 0x80, 0x80}, {0xff, 0x00, 0x00}, {0x00, 0xff, 0x00}, {0xff, 0xff, 0x00},
	{0x00, 0x00, 0xff}, {0xff, 0x00, 0xff}, {0x00, 0xff, 0xff}, {0xff, 0xff, 0xff},
}

// vgsSoftenFactor blends vgaRGB's bright (8..15) set 20% of the way
// toward its dim counterpart, an approximation of console-setup's "vgs"
// (soft) variant, which trades a little contrast for less eye strain on
// CRT-era displays. Recorded as an interpretation in DESIGN.md: the exact
// source values are not given by the spec.
const vgsSoftenFactor = 0.20

// VGA returns the standard VGA/Linux-console 16-color palette.
func VGA() *Palette {
	return fromRGB(vgaRGB)
}

// VGSoft returns the "soft" VGA variant: the bright half of the palette
// desaturated slightly toward its dim counterpart.
func VGSoft() *Palette {
	rgb := vgaRGB
	for i := 8; i < 16; i++ {
		dim := vgaRGB[i-8]
		for c := 0; c < 3; c++ {
			bright := float64(rgb[i][c])
			rgb[i][c] = uint8(bright - (bright-float64(dim[c]))*vgsSoftenFactor)
		}
	}
	return fromRGB(rgb)
}

// Windows returns the legacy Windows console 16-color palette.
func Windows() *Palette {
	return fromRGB(winRGB)
}

func fromRGB(rgb [16][3]uint8) *Palette {
	p := New()
	for i, c := range rgb {
		p.Entries[i].RGB = c
	}
	p.SyncFromRGB()
	return p
}
