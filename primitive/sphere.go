package primitive

import "github.com/go-gl/mathgl/mgl64"

// Sphere represents a bounding sphere in world space.
type Sphere struct {
	Center mgl64.Vec3
	Radius float64
}

// IntersectsObb reports whether the sphere overlaps the oriented box obtained
// by transforming aabb with localToWorld. The box's radius is projected onto
// the direction from the box center to the sphere center, so the test is
// exact along that axis and conservative elsewhere. Used for point-light
// versus object culling.
func (s Sphere) IntersectsObb(aabb Aabb, localToWorld mgl64.Mat4) bool {
	centerWorld := localToWorld.Mul4x1(aabb.Center.Vec4(1)).Vec3()
	axes := [3]mgl64.Vec3{
		localToWorld.Col(0).Vec3(),
		localToWorld.Col(1).Vec3(),
		localToWorld.Col(2).Vec3(),
	}

	v := centerWorld.Sub(s.Center)
	d := v.Len()
	relativeRadius := aabb.RelativeRadius(v.Mul(1/d), axes)

	return d < s.Radius+relativeRadius
}
