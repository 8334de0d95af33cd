package primitive

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Aabb represents an axis-aligned bounding box, stored as a center point and
// the half-extents along each axis. Half-extents are expected to be
// componentwise non-negative; a zero extent is a valid (point) box.
type Aabb struct {
	Center      mgl64.Vec3
	HalfExtents mgl64.Vec3
}

// AabbFromMinMax builds an Aabb from its minimum and maximum corners.
func AabbFromMinMax(minimum, maximum mgl64.Vec3) Aabb {
	return Aabb{
		Center:      maximum.Add(minimum).Mul(0.5),
		HalfExtents: maximum.Sub(minimum).Mul(0.5),
	}
}

// AabbFromSphere returns the tightest Aabb enclosing the sphere.
func AabbFromSphere(sphere Sphere) Aabb {
	return Aabb{
		Center:      sphere.Center,
		HalfExtents: mgl64.Vec3{sphere.Radius, sphere.Radius, sphere.Radius},
	}
}

// Min returns the minimum corner of the box.
func (a Aabb) Min() mgl64.Vec3 {
	return a.Center.Sub(a.HalfExtents)
}

// Max returns the maximum corner of the box.
func (a Aabb) Max() mgl64.Vec3 {
	return a.Center.Add(a.HalfExtents)
}

// RelativeRadius returns the radius of the box as projected onto the given
// unit plane normal, with the box oriented along the three world-space axes.
// The axes are the columns of the linear part of a model-to-world matrix and
// may carry scale; they do not need to be orthonormal.
func (a Aabb) RelativeRadius(pNormal mgl64.Vec3, axes [3]mgl64.Vec3) float64 {
	return mgl64.Vec3{
		math.Abs(pNormal.Dot(axes[0])),
		math.Abs(pNormal.Dot(axes[1])),
		math.Abs(pNormal.Dot(axes[2])),
	}.Dot(a.HalfExtents)
}
