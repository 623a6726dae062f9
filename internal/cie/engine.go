// Package cie implements the color-space pipeline behind the palette
// composer: sRGB, linear RGB, CIE XYZ, CIE L*a*b*/LCh and HSL, plus the
// illuminant-D whitepoint arithmetic that parameterizes the RGB<->XYZ
// matrix. Every conversion is a pure function; the only mutable state is
// an Engine, which carries the whitepoint, the derived matrix, and an
// optional gamma override.
package cie

// primaries are the xy chromaticities of the sRGB primaries, fixed
// regardless of whitepoint.
var primaries = [3][2]float64{
	{0.64, 0.33}, // R
	{0.30, 0.60}, // G
	{0.15, 0.06}, // B
}

// Engine holds the process-wide color configuration: the current
// whitepoint (as XYZ tristimulus values), the RGB->XYZ matrix derived from
// it, and an optional gamma override replacing the sRGB companding curve.
// The zero value is not ready for use; call NewEngine.
type Engine struct {
	Whitepoint [3]float64 // XYZ, Y == 1
	toXYZ      [3][3]float64
	fromXYZ    [3][3]float64
	gamma      float64 // 0 means "use standard sRGB companding"
}

// NewEngine returns an engine configured for illuminant D65 at 6500K, the
// default whitepoint, with no gamma override.
func NewEngine() *Engine {
	e := &Engine{}
	e.SetIlluminant(6500)
	return e
}

// SetIlluminant recomputes the whitepoint for illuminant D at the given
// correlated color temperature (in Kelvin) and rederives the RGB->XYZ
// matrix, implementing the `ild=T` command.
func (e *Engine) SetIlluminant(tempK float64) {
	e.Whitepoint = illuminantD(tempK)
	e.toXYZ = rgbToXYZMatrix(e.Whitepoint)
	e.fromXYZ = invert3x3(e.toXYZ)
}

// SetGamma overrides the sRGB companding curve with a pure power law
// c^g on expansion (and its inverse on compression), implementing the
// `cfgamma=g` command. A value of 0 restores standard sRGB companding.
func (e *Engine) SetGamma(g float64) {
	e.gamma = g
}

// illuminantD computes the XYZ tristimulus values (Y == 1) of illuminant D
// at the given correlated color temperature, via the standard CIE daylight
// locus chromaticity polynomial and the planckian-locus-to-xy conversion.
func illuminantD(tempK float64) [3]float64 {
	var x float64
	t := tempK
	switch {
	case t <= 7000:
		x = -4.6070e9/(t*t*t) + 2.9678e6/(t*t) + 0.09911e3/t + 0.244063
	default:
		x = -2.0064e9/(t*t*t) + 1.9018e6/(t*t) + 0.24748e3/t + 0.237040
	}
	y := -3*x*x + 2.87*x - 0.275
	return xyYToXYZ(x, y, 1)
}

func xyYToXYZ(x, y, Y float64) [3]float64 {
	if y == 0 {
		return [3]float64{0, 0, 0}
	}
	return [3]float64{x / y * Y, Y, (1 - x - y) / y * Y}
}

// rgbToXYZMatrix derives the linear-RGB -> XYZ matrix from the fixed sRGB
// primaries and the given whitepoint, following M = M' . diag(M'^-1 . W)
// where M' is the unscaled xy-matrix of the primaries.
func rgbToXYZMatrix(whitepoint [3]float64) [3][3]float64 {
	var mPrime [3][3]float64
	for col, p := range primaries {
		xyz := xyYToXYZ(p[0], p[1], 1)
		mPrime[0][col] = xyz[0]
		mPrime[1][col] = xyz[1]
		mPrime[2][col] = xyz[2]
	}
	mPrimeInv := invert3x3(mPrime)
	s := mulMatVec(mPrimeInv, whitepoint)

	var m [3][3]float64
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			m[row][col] = mPrime[row][col] * s[col]
		}
	}
	return m
}

func mulMatVec(m [3][3]float64, v [3]float64) [3]float64 {
	return [3]float64{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

func invert3x3(m [3][3]float64) [3][3]float64 {
	det := m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
	if det == 0 {
		return [3][3]float64{}
	}
	invDet := 1 / det
	var inv [3][3]float64
	inv[0][0] = (m[1][1]*m[2][2] - m[1][2]*m[2][1]) * invDet
	inv[0][1] = (m[0][2]*m[2][1] - m[0][1]*m[2][2]) * invDet
	inv[0][2] = (m[0][1]*m[1][2] - m[0][2]*m[1][1]) * invDet
	inv[1][0] = (m[1][2]*m[2][0] - m[1][0]*m[2][2]) * invDet
	inv[1][1] = (m[0][0]*m[2][2] - m[0][2]*m[2][0]) * invDet
	inv[1][2] = (m[0][2]*m[1][0] - m[0][0]*m[1][2]) * invDet
	inv[2][0] = (m[1][0]*m[2][1] - m[1][1]*m[2][0]) * invDet
	inv[2][1] = (m[0][1]*m[2][0] - m[0][0]*m[2][1]) * invDet
	inv[2][2] = (m[0][0]*m[1][1] - m[0][1]*m[1][0]) * invDet
	return inv
}
