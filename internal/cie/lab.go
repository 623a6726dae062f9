package cie

import "math"

const (
	labEpsilon = 216.0 / 24389.0
	labKappa   = 24389.0 / 27.0
)

// Lab is a CIE L*a*b* color.
type Lab struct {
	L, A, B float64
}

// LCh is the cylindrical representation of Lab: L unchanged, C the chroma
// (radius), h the hue angle in degrees, normalized to [0, 360).
type LCh struct {
	L, C, H float64
}

func labF(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return (labKappa*t + 16) / 116
}

func labFInv(t float64) float64 {
	t3 := t * t * t
	if t3 > labEpsilon {
		return t3
	}
	return (116*t - 16) / labKappa
}

// XYZToLab converts CIE XYZ to L*a*b*, normalizing against the engine's
// current whitepoint.
func (e *Engine) XYZToLab(xyz [3]float64) Lab {
	wp := e.Whitepoint
	fx := labF(xyz[0] / wp[0])
	fy := labF(xyz[1] / wp[1])
	fz := labF(xyz[2] / wp[2])
	return Lab{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

// LabToXYZ is the inverse of XYZToLab.
func (e *Engine) LabToXYZ(lab Lab) [3]float64 {
	wp := e.Whitepoint
	fy := (lab.L + 16) / 116
	fx := fy + lab.A/500
	fz := fy - lab.B/200

	var y float64
	if lab.L > labKappa*labEpsilon {
		y = math.Pow(fy, 3)
	} else {
		y = lab.L / labKappa
	}
	return [3]float64{labFInv(fx) * wp[0], y * wp[1], labFInv(fz) * wp[2]}
}

// LabToLCh converts Lab to its cylindrical LCh form.
func LabToLCh(lab Lab) LCh {
	c := math.Hypot(lab.A, lab.B)
	h := math.Atan2(lab.B, lab.A) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	return LCh{L: lab.L, C: c, H: h}
}

// LChToLab converts LCh back to rectangular Lab.
func LChToLab(lch LCh) Lab {
	rad := lch.H * math.Pi / 180
	return Lab{
		L: lch.L,
		A: lch.C * math.Cos(rad),
		B: lch.C * math.Sin(rad),
	}
}

// RGB888ToLCh composes the full sRGB -> linear -> XYZ -> Lab -> LCh chain.
func (e *Engine) RGB888ToLCh(rgb [3]uint8) LCh {
	return LabToLCh(e.XYZToLab(e.RGB888ToXYZ(rgb)))
}

// LChToRGB888 composes the full LCh -> Lab -> XYZ -> linear -> sRGB chain.
func (e *Engine) LChToRGB888(lch LCh) [3]uint8 {
	return e.XYZToRGB888(e.LabToXYZ(LChToLab(lch)))
}
