package primitive

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Frustum is a camera or light view volume bounded by 6 planes, ordered
// left, right, top, bottom, near, far. All plane normals point into the
// contained volume. A Frustum carries no identity of its own; it is rebuilt
// from the view parameters every frame.
type Frustum struct {
	Planes [6]Plane
}

// FrustumFromViewProjection extracts a Frustum from a combined
// view-projection matrix using the Gribb/Hartmann row construction for the
// side and near planes. The far plane is not read from the matrix: it is
// built explicitly from the camera's world translation, its backward
// direction, and the far distance, so projections with an infinite far plane
// still produce a finite culling volume.
func FrustumFromViewProjection(viewProjection mgl64.Mat4, viewTranslation, viewBackward mgl64.Vec3, far float64) Frustum {
	row3 := viewProjection.Row(3)

	var f Frustum
	for i := 0; i < 5; i++ {
		row := viewProjection.Row(i / 2)
		// Le signe alterne à l'intérieur de chaque paire de plans
		if i&1 == 0 && i != 4 {
			f.Planes[i] = NewPlane(row3.Add(row))
		} else {
			f.Planes[i] = NewPlane(row3.Sub(row))
		}
	}

	farCenter := viewTranslation.Sub(viewBackward.Mul(far))
	f.Planes[5] = NewPlane(viewBackward.Vec4(-viewBackward.Dot(farCenter)))

	return f
}

// IntersectsSphere reports whether the sphere touches the frustum volume.
// The far plane is only tested when intersectFar is true. The test is
// conservative: a sphere inside the volume is never rejected, but spheres
// outside near a frustum corner may still be accepted.
func (f Frustum) IntersectsSphere(sphere Sphere, intersectFar bool) bool {
	center := sphere.Center.Vec4(1)

	planeCount := 5
	if intersectFar {
		planeCount = 6
	}

	for _, plane := range f.Planes[:planeCount] {
		if plane.NormalD().Dot(center)+sphere.Radius <= 0 {
			return false
		}
	}
	return true
}

// IntersectsObb reports whether the oriented box, given as a local-space Aabb
// and its model-to-world matrix, touches the frustum volume. Each plane is
// tested against the box's projected radius along the plane normal; this is
// the same separating-axis technique as the sphere test generalized to a
// box, not a full SAT, so it shares the sphere test's conservative behavior.
func (f Frustum) IntersectsObb(aabb Aabb, modelToWorld mgl64.Mat4, intersectFar bool) bool {
	centerWorld := modelToWorld.Mul4x1(aabb.Center.Vec4(1))
	axes := [3]mgl64.Vec3{
		modelToWorld.Col(0).Vec3(),
		modelToWorld.Col(1).Vec3(),
		modelToWorld.Col(2).Vec3(),
	}

	planeCount := 5
	if intersectFar {
		planeCount = 6
	}

	for _, plane := range f.Planes[:planeCount] {
		relativeRadius := aabb.RelativeRadius(plane.Normal(), axes)
		if plane.NormalD().Dot(centerWorld)+relativeRadius <= 0 {
			return false
		}
	}
	return true
}

// InfinitePerspective returns a reversed-depth perspective projection matrix
// with an infinite far plane. fovY is the vertical field of view in radians.
// Culling against such a projection relies on the explicit far plane passed
// to FrustumFromViewProjection.
func InfinitePerspective(fovY, aspect, near float64) mgl64.Mat4 {
	f := 1 / math.Tan(fovY/2)
	// colonne-major
	return mgl64.Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, 0, -1,
		0, 0, near, 0,
	}
}
