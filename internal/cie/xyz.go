package cie

// LinearToXYZ transforms normalized linear RGB to CIE XYZ using the
// engine's current whitepoint-derived matrix.
func (e *Engine) LinearToXYZ(lin [3]float64) [3]float64 {
	return mulMatVec(e.toXYZ, lin)
}

// XYZToLinear is the inverse of LinearToXYZ.
func (e *Engine) XYZToLinear(xyz [3]float64) [3]float64 {
	return mulMatVec(e.fromXYZ, xyz)
}

// RGB888ToXYZ composes sRGB decoding and the RGB->XYZ matrix.
func (e *Engine) RGB888ToXYZ(rgb [3]uint8) [3]float64 {
	return e.LinearToXYZ(e.RGB888ToLinear(rgb))
}

// XYZToRGB888 composes the XYZ->RGB matrix and sRGB encoding.
func (e *Engine) XYZToRGB888(xyz [3]float64) [3]uint8 {
	return e.LinearToRGB888(e.XYZToLinear(xyz))
}
