package vector

import "github.com/rkoesters/vfontas/internal/raster"

// Simple vectorizes g with the "simple" algorithm: one axis-aligned square
// per set pixel, fused by internal-edge removal, walked with line
// simplification. The resulting polygons exactly reproduce the bitmap's
// topology at native scale.
func Simple(g raster.Glyph, descent int, sc Scale) []Polygon {
	eg := makeSquares(g, descent, sc)
	eg.InternalEdgeDelete()
	return extractAll(eg, walkOpts{simplifyLines: true})
}
