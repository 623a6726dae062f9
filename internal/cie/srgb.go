package cie

import "math"

// sRGB companding breakpoints, in the standard piecewise transfer function.
const (
	srgbBreak   = 0.04045
	linearBreak = srgbBreak / 12.92
	invGamma    = 12.0 / 5.0
)

// ToLinear expands one sRGB channel (normalized to [0,1]) to linear light.
// If e has a gamma override set, a pure power law c^g is used instead of
// the standard piecewise curve.
func (e *Engine) ToLinear(c float64) float64 {
	if e.gamma != 0 {
		if c < 0 {
			return 0
		}
		return math.Pow(c, e.gamma)
	}
	if c <= srgbBreak {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// FromLinear compresses one linear-light channel (normalized to [0,1]) to
// sRGB. The inverse of ToLinear, including the gamma override.
func (e *Engine) FromLinear(c float64) float64 {
	if e.gamma != 0 {
		if c < 0 {
			return 0
		}
		return math.Pow(c, 1/e.gamma)
	}
	if c <= linearBreak {
		return c * 12.92
	}
	return 1.055*math.Pow(c, 1/invGamma) - 0.055
}

// RGB888ToLinear converts an 8-bit-per-channel sRGB triple to normalized
// linear RGB.
func (e *Engine) RGB888ToLinear(rgb [3]uint8) [3]float64 {
	return [3]float64{
		e.ToLinear(float64(rgb[0]) / 255),
		e.ToLinear(float64(rgb[1]) / 255),
		e.ToLinear(float64(rgb[2]) / 255),
	}
}

// LinearToRGB888 converts normalized linear RGB to an 8-bit-per-channel
// sRGB triple, clamping to [0,255] and rounding to nearest.
func (e *Engine) LinearToRGB888(lin [3]float64) [3]uint8 {
	var out [3]uint8
	for i, c := range lin {
		s := e.FromLinear(c)
		out[i] = clamp255(s*255 + 0.5)
	}
	return out
}

func clamp255(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
