package primitive

import "github.com/go-gl/mathgl/mgl64"

// Plane is a plane in 3D space defined by a unit normal and a signed distance
// from the origin along the normal. A point p lies on the plane when
// Normal·p + D == 0, and in the positive (inside) half-space when
// Normal·p + D > 0.
type Plane struct {
	normalD mgl64.Vec4
}

// NewPlane builds a Plane from a 4D vector whose first three components are
// the normal and whose last component is the distance along the normal from
// the origin. The vector is scaled by the reciprocal length of its normal
// part, so the stored normal is unit length and D is the true signed
// distance. A zero-length normal is a caller contract violation and
// propagates NaN.
func NewPlane(normalD mgl64.Vec4) Plane {
	return Plane{normalD: normalD.Mul(1 / normalD.Vec3().Len())}
}

// Normal returns the plane's unit normal.
func (p Plane) Normal() mgl64.Vec3 {
	return p.normalD.Vec3()
}

// D returns the signed distance from the origin along the normal.
func (p Plane) D() float64 {
	return p.normalD.W()
}

// NormalD returns the normal and signed distance packed as a Vec4, suitable
// for testing homogeneous points with a single dot product.
func (p Plane) NormalD() mgl64.Vec4 {
	return p.normalD
}
