package vfcmd

import (
	"log"

	"github.com/rkoesters/vfontas/internal/geom"
	"github.com/rkoesters/vfontas/internal/raster"
)

func cmdBlankfnt(st *State, args []string) error {
	if err := wantArgs("blankfnt", args, 0); err != nil {
		return err
	}
	st.Font.Blank(256, st.Canvas)
	st.Font.ClearMap()
	return nil
}

func cmdCanvas(st *State, args []string) error {
	if err := wantArgs("canvas", args, 2); err != nil {
		return err
	}
	w, err := atoi("canvas", args[0])
	if err != nil {
		return err
	}
	h, err := atoi("canvas", args[1])
	if err != nil {
		return err
	}
	if w <= 0 || h <= 0 {
		log.Printf("vfcmd: canvas: ignoring non-positive size %dx%d", w, h)
		return nil
	}
	st.Canvas = geom.Size{W: w, H: h}
	return nil
}

func cmdClearmap(st *State, args []string) error {
	if err := wantArgs("clearmap", args, 0); err != nil {
		return err
	}
	st.Font.ClearMap()
	return nil
}

func cmdFliph(st *State, args []string) error {
	if err := wantArgs("fliph", args, 0); err != nil {
		return err
	}
	st.Font.Transform(func(g raster.Glyph) raster.Glyph { return g.Flip(true, false) })
	return nil
}

func cmdFlipv(st *State, args []string) error {
	if err := wantArgs("flipv", args, 0); err != nil {
		return err
	}
	st.Font.Transform(func(g raster.Glyph) raster.Glyph { return g.Flip(false, true) })
	return nil
}

func cmdInvert(st *State, args []string) error {
	if err := wantArgs("invert", args, 0); err != nil {
		return err
	}
	st.Font.Transform(func(g raster.Glyph) raster.Glyph { return g.Invert() })
	return nil
}

// lgeBoxDrawingIndex is the VGA 0xC0..0xDF index range lge applies to
// directly, with no unicode map involved.
func lgeBoxDrawingIndex(i int) bool { return i >= 0xC0 && i <= 0xDF }

// lgeBoxDrawingUnicode is the Unicode box-drawing block U+2500..U+257F
// lgeu/lgeuf match against instead.
func lgeBoxDrawingUnicode(cps map[rune]bool) bool {
	for cp := range cps {
		if cp >= 0x2500 && cp <= 0x257F {
			return true
		}
	}
	return false
}

func cmdLge(st *State, args []string) error {
	if err := wantArgs("lge", args, 0); err != nil {
		return err
	}
	for i, g := range st.Font.Glyphs {
		if lgeBoxDrawingIndex(i) {
			st.Font.Glyphs[i] = g.Lge(1)
		}
	}
	return nil
}

func cmdLgeu(st *State, args []string) error {
	if err := wantArgs("lgeu", args, 0); err != nil {
		return err
	}
	if st.Font.Map == nil {
		log.Printf("vfcmd: lgeu: font has no unicode map; skipping")
		return nil
	}
	for i, g := range st.Font.Glyphs {
		if lgeBoxDrawingUnicode(st.Font.Map.ToUnicode(i)) {
			st.Font.Glyphs[i] = g.Lge(1)
		}
	}
	return nil
}

func cmdLgeuf(st *State, args []string) error {
	if err := wantArgs("lgeuf", args, 0); err != nil {
		return err
	}
	for i, g := range st.Font.Glyphs {
		var cps map[rune]bool
		if st.Font.Map != nil {
			cps = st.Font.Map.ToUnicode(i)
		} else {
			cps = map[rune]bool{rune(i): true}
		}
		if lgeBoxDrawingUnicode(cps) {
			st.Font.Glyphs[i] = g.Lge(1)
		}
	}
	return nil
}

func cmdOverstrike(st *State, args []string) error {
	if err := wantArgs("overstrike", args, 1); err != nil {
		return err
	}
	px, err := atoi("overstrike", args[0])
	if err != nil {
		return err
	}
	if px < 0 {
		log.Printf("vfcmd: overstrike: ignoring negative width %d", px)
		return nil
	}
	st.Font.Transform(func(g raster.Glyph) raster.Glyph { return g.Overstrike(px) })
	return nil
}

func cmdSetbold(st *State, args []string) error {
	if err := wantArgs("setbold", args, 0); err != nil {
		return err
	}
	st.Font.SetProp("weight", "bold")
	return nil
}

func cmdSetname(st *State, args []string) error {
	if err := wantArgs("setname", args, 1); err != nil {
		return err
	}
	st.Font.SetProp("name", args[0])
	return nil
}

func cmdSetprop(st *State, args []string) error {
	if err := wantArgs("setprop", args, 2); err != nil {
		return err
	}
	st.Font.SetProp(args[0], args[1])
	return nil
}

func cmdUpscale(st *State, args []string) error {
	if err := wantArgs("upscale", args, 2); err != nil {
		return err
	}
	fx, err := atoi("upscale", args[0])
	if err != nil {
		return err
	}
	fy, err := atoi("upscale", args[1])
	if err != nil {
		return err
	}
	if fx < 1 || fy < 1 {
		log.Printf("vfcmd: upscale: ignoring non-positive factor (%d, %d)", fx, fy)
		return nil
	}
	st.Font.Transform(func(g raster.Glyph) raster.Glyph { return g.Upscale(fx, fy) })
	st.Canvas = geom.Size{W: st.Canvas.W * fx, H: st.Canvas.H * fy}
	return nil
}

func cmdMove(st *State, args []string) error {
	if err := wantArgs("move", args, 2); err != nil {
		return err
	}
	dx, err := atoi("move", args[0])
	if err != nil {
		return err
	}
	dy, err := atoi("move", args[1])
	if err != nil {
		return err
	}
	st.Font.Transform(func(g raster.Glyph) raster.Glyph {
		size := g.Size()
		full := geom.NewRect(0, 0, size.W, size.H)
		dst := geom.NewRect(dx, dy, size.W, size.H)
		return g.CopyRectTo(full, raster.New(size), dst, true)
	})
	return nil
}

func cmdCrop(st *State, args []string) error {
	if err := wantArgs("crop", args, 4); err != nil {
		return err
	}
	x, err := atoi("crop", args[0])
	if err != nil {
		return err
	}
	y, err := atoi("crop", args[1])
	if err != nil {
		return err
	}
	w, err := atoi("crop", args[2])
	if err != nil {
		return err
	}
	h, err := atoi("crop", args[3])
	if err != nil {
		return err
	}
	if w <= 0 || h <= 0 {
		log.Printf("vfcmd: crop: ignoring non-positive size %dx%d", w, h)
		return nil
	}
	rect := geom.NewRect(x, y, w, h)
	st.Font.Transform(func(g raster.Glyph) raster.Glyph { return g.Crop(rect) })
	st.Canvas = geom.Size{W: w, H: h}
	return nil
}

func cmdCopy(st *State, args []string) error {
	if err := wantArgs("copy", args, 6); err != nil {
		return err
	}
	vals := make([]int, 6)
	for i, a := range args {
		v, err := atoi("copy", a)
		if err != nil {
			return err
		}
		vals[i] = v
	}
	x, y, w, h, bx, by := vals[0], vals[1], vals[2], vals[3], vals[4], vals[5]
	if w <= 0 || h <= 0 {
		log.Printf("vfcmd: copy: ignoring non-positive size %dx%d", w, h)
		return nil
	}
	src := geom.NewRect(x, y, w, h)
	dst := geom.NewRect(bx, by, w, h)
	st.Font.Transform(func(g raster.Glyph) raster.Glyph { return g.CopyRectTo(src, g, dst, false) })
	return nil
}

// xlat relocates glyph slot X to index Y, swapping both the raster data and
// (if present) the unicode map entries -- the font-level counterpart to
// move's pixel-level translation.
func cmdXlat(st *State, args []string) error {
	if err := wantArgs("xlat", args, 2); err != nil {
		return err
	}
	x, err := atoi("xlat", args[0])
	if err != nil {
		return err
	}
	y, err := atoi("xlat", args[1])
	if err != nil {
		return err
	}
	n := len(st.Font.Glyphs)
	if x < 0 || x >= n || y < 0 || y >= n {
		log.Printf("vfcmd: xlat: index out of range (%d, %d) for %d glyphs", x, y, n)
		return nil
	}
	st.Font.Glyphs[x], st.Font.Glyphs[y] = st.Font.Glyphs[y], st.Font.Glyphs[x]
	if st.Font.Map != nil {
		st.Font.Map.SwapIdx(x, y)
	}
	return nil
}

func cmdCpisep(st *State, args []string) error {
	if err := wantArgs("cpisep", args, 1); err != nil {
		return err
	}
	switch args[0] {
	case "screen":
		st.CPISep = 1
	case "printer":
		st.CPISep = 2
	default:
		v, err := atoi("cpisep", args[0])
		if err != nil {
			return err
		}
		st.CPISep = uint16(v)
	}
	return nil
}
