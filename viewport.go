package touchstrip

import "math"

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// Viewport maps screen coordinates onto the panel's coordinate space. The
// panel origin is drawn at (X, Y) on screen, scaled by Scale and rotated by
// Rotation radians (clockwise) about that origin.
type Viewport struct {
	X, Y     float64
	Scale    float64
	Rotation float64

	matrix    [6]float64
	invMatrix [6]float64
	key       [4]float64
	valid     bool
}

// NewViewport returns a viewport placing the panel at (x, y) with the given
// scale and no rotation.
func NewViewport(x, y, scale float64) *Viewport {
	return &Viewport{X: x, Y: y, Scale: scale}
}

// FitViewport returns a viewport that fits a square panel of panelSize
// units into a screen of the given size, centred.
func FitViewport(screenW, screenH, panelSize float64) *Viewport {
	side := math.Min(screenW, screenH)
	scale := 1.0
	if panelSize > 0 {
		scale = side / panelSize
	}
	return NewViewport((screenW-side)/2, (screenH-side)/2, scale)
}

// computeMatrix returns the panel→screen matrix, recomputing it when a field
// changed since the last call.
func (v *Viewport) computeMatrix() [6]float64 {
	key := [4]float64{v.X, v.Y, v.Scale, v.Rotation}
	if v.valid && key == v.key {
		return v.matrix
	}
	s := v.Scale
	if s == 0 {
		s = 1
	}
	sin, cos := math.Sincos(v.Rotation)
	v.matrix = [6]float64{cos * s, sin * s, -sin * s, cos * s, v.X, v.Y}
	v.invMatrix = invertAffine(v.matrix)
	v.key = key
	v.valid = true
	return v.matrix
}

// PanelToScreen converts panel coordinates to screen coordinates.
func (v *Viewport) PanelToScreen(p Vec2) Vec2 {
	m := v.computeMatrix()
	x, y := transformPoint(m, p.X, p.Y)
	return Vec2{x, y}
}

// ScreenToPanel converts screen coordinates to panel coordinates.
func (v *Viewport) ScreenToPanel(sx, sy float64) Vec2 {
	v.computeMatrix()
	x, y := transformPoint(v.invMatrix, sx, sy)
	return Vec2{x, y}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular.
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}
