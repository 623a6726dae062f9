package palette

import "github.com/rkoesters/vfontas/internal/cie"

// Blend mixes every entry of p with the corresponding entry of other,
// linearly in sRGB space, by pct percent toward other (pct=0 leaves p
// unchanged, pct=100 copies other entirely), implementing `blend=PCT,NAME`.
func (p *Palette) Blend(pct float64, other *Palette) {
	t := pct / 100
	for i := range p.Entries {
		for c := 0; c < 3; c++ {
			a := float64(p.Entries[i].RGB[c])
			b := float64(other.Entries[i].RGB[c])
			p.Entries[i].RGB[c] = clampByte(a + (b-a)*t)
		}
	}
	p.SyncFromRGB()
}

// HSLTint shifts every entry's hue by dh degrees and scales its
// saturation and lightness by sScale and lScale respectively, working in
// HSL space, implementing `hsltint=dh,sScale,lScale`.
func (p *Palette) HSLTint(dh, sScale, lScale float64) {
	for i := range p.Entries {
		hsl := cie.RGB888ToHSL(p.Entries[i].RGB)
		hsl.H = normalizeDeg(hsl.H + dh)
		hsl.S = clamp01(hsl.S * sScale)
		hsl.L = clamp01(hsl.L * lScale)
		p.Entries[i].RGB = cie.HSLToRGB888(hsl)
	}
	p.SyncFromRGB()
}

// LChTint shifts every entry's hue by dh degrees and scales its chroma
// and lightness by cScale and lScale respectively, working in LCh space,
// implementing `lchtint=dh,cScale,lScale`.
func (p *Palette) LChTint(dh, cScale, lScale float64) {
	for i := range p.Entries {
		lch := p.Entries[i].LCh
		lch.H = normalizeDeg(lch.H + dh)
		lch.C *= cScale
		lch.L *= lScale
		p.Entries[i].LCh = lch
	}
	p.SyncFromLCh()
}

// Inv16 bitwise-inverts every entry's sRGB channels (255-c), mirroring
// internal/raster's bitwise Invert for bitmaps, implementing `inv16`.
func (p *Palette) Inv16() {
	for i := range p.Entries {
		for c := 0; c < 3; c++ {
			p.Entries[i].RGB[c] = 255 - p.Entries[i].RGB[c]
		}
	}
	p.SyncFromRGB()
}

func normalizeDeg(h float64) float64 {
	for h < 0 {
		h += 360
	}
	for h >= 360 {
		h -= 360
	}
	return h
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
