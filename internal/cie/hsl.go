package cie

import "math"

// HSL is hue (degrees, [0,360)), saturation and lightness (both [0,1]).
type HSL struct {
	H, S, L float64
}

// RGB888ToHSL converts an 8-bit sRGB triple directly to HSL; this is a
// companding-independent transform over the sRGB channel values
// themselves, not the linear-light ones.
func RGB888ToHSL(rgb [3]uint8) HSL {
	r := float64(rgb[0]) / 255
	g := float64(rgb[1]) / 255
	b := float64(rgb[2]) / 255

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l := (max + min) / 2

	if max == min {
		return HSL{H: 0, S: 0, L: l}
	}

	d := max - min
	var s float64
	if l > 0.5 {
		s = d / (2 - max - min)
	} else {
		s = d / (max + min)
	}

	var h float64
	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	case b:
		h = (r-g)/d + 4
	}
	h *= 60

	return HSL{H: h, S: s, L: l}
}

// HSLToRGB888 is the inverse of RGB888ToHSL.
func HSLToRGB888(hsl HSL) [3]uint8 {
	if hsl.S == 0 {
		v := clamp255(hsl.L*255 + 0.5)
		return [3]uint8{v, v, v}
	}

	var q float64
	if hsl.L < 0.5 {
		q = hsl.L * (1 + hsl.S)
	} else {
		q = hsl.L + hsl.S - hsl.L*hsl.S
	}
	p := 2*hsl.L - q
	h := hsl.H / 360

	r := hueToChannel(p, q, h+1.0/3)
	g := hueToChannel(p, q, h)
	b := hueToChannel(p, q, h-1.0/3)

	return [3]uint8{
		clamp255(r*255 + 0.5),
		clamp255(g*255 + 0.5),
		clamp255(b*255 + 0.5),
	}
}

func hueToChannel(p, q, t float64) float64 {
	for t < 0 {
		t++
	}
	for t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}
