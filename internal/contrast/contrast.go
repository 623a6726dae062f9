// Package contrast implements the palette composer's two contrast
// analyzers: cxl, a plain LCh lightness difference, and cxa, the
// APCA/SAPC perceptual contrast algorithm (W3 draft version 0.0.98G).
// Both walk every (background, foreground) pair of a 16-entry palette and
// report per-subgrid summary statistics.
package contrast

import "math"

// Palette is the minimal surface the analyzers need from a palette: the
// LCh lightness of an entry (for cxl) and its sRGB888 triple (for cxa).
type Palette interface {
	L(i int) float64
	RGB(i int) [3]uint8
}

// The APCA 0.0.98G constants, named exactly as the algorithm's reference
// implementation names them.
const (
	apcaNormBG      = 0.56
	apcaNormTXT     = 0.57
	apcaRevTXT      = 0.62
	apcaRevBG       = 0.65
	apcaBlackThresh = 0.022
	apcaBlackClamp  = 1.414
	apcaScaleBoW    = 1.14
	apcaScaleWoB    = 1.14
	apcaLoOffset    = 0.027
	apcaDeltaYMin   = 5e-4
)

// apcaLuminance computes APCA's own relative luminance from an sRGB888
// triple: a simple power-law expansion (gamma 2.4, no piecewise
// breakpoint) weighted by the standard Rec.709 coefficients, exactly as
// the APCA reference algorithm defines Y -- deliberately independent of
// any configured whitepoint or gamma override in internal/cie, since APCA
// specifies its own luminance model.
func apcaLuminance(rgb [3]uint8) float64 {
	r := math.Pow(float64(rgb[0])/255, 2.4)
	g := math.Pow(float64(rgb[1])/255, 2.4)
	b := math.Pow(float64(rgb[2])/255, 2.4)
	return 0.2126729*r + 0.7151522*g + 0.0721750*b
}

func apcaBlackClampY(y float64) float64 {
	if y <= apcaBlackThresh {
		return y + math.Pow(apcaBlackThresh-y, apcaBlackClamp)
	}
	return y
}

// apcaContrast returns the signed APCA contrast (as a percentage, Lc) of
// text luminance ytxt against background luminance ybg.
func apcaContrast(ytxt, ybg float64) float64 {
	ytxt = apcaBlackClampY(ytxt)
	ybg = apcaBlackClampY(ybg)

	if math.Abs(ybg-ytxt) < apcaDeltaYMin {
		return 0
	}

	var sapc, out float64
	if ybg > ytxt {
		sapc = (math.Pow(ybg, apcaNormBG) - math.Pow(ytxt, apcaNormTXT)) * apcaScaleBoW
		if sapc < apcaLoOffset {
			out = 0
		} else {
			out = sapc - apcaLoOffset
		}
	} else {
		sapc = (math.Pow(ybg, apcaRevBG) - math.Pow(ytxt, apcaRevTXT)) * apcaScaleWoB
		if sapc > -apcaLoOffset {
			out = 0
		} else {
			out = sapc + apcaLoOffset
		}
	}
	return out * 100
}

// DeltaMatrixCXL returns delta[bg][fg] = |L[fg] - L[bg]| for every pair of
// the palette's 16 entries.
func DeltaMatrixCXL(p Palette) [16][16]float64 {
	var ls [16]float64
	for i := range ls {
		ls[i] = p.L(i)
	}
	var m [16][16]float64
	for bg := 0; bg < 16; bg++ {
		for fg := 0; fg < 16; fg++ {
			m[bg][fg] = math.Abs(ls[fg] - ls[bg])
		}
	}
	return m
}

// DeltaMatrixCXA returns delta[bg][fg] = APCA(fg as text, bg as
// background), unsigned (absolute value), so that the penalty predicate
// and the "9 is worse" convention both read the same way cxl's does.
func DeltaMatrixCXA(p Palette) [16][16]float64 {
	var ys [16]float64
	for i := range ys {
		ys[i] = apcaLuminance(p.RGB(i))
	}
	var m [16][16]float64
	for bg := 0; bg < 16; bg++ {
		for fg := 0; fg < 16; fg++ {
			m[bg][fg] = math.Abs(apcaContrast(ys[fg], ys[bg]))
		}
	}
	return m
}

// PenaltyCXL and PenaltyCXA are the two analyzers' penalty predicates:
// a pair is "penalized" (insufficiently distinguishable) when its
// contrast falls below these thresholds.
func PenaltyCXL(delta float64) bool { return delta < 7.0 }
func PenaltyCXA(delta float64) bool { return delta < 7.3 }
