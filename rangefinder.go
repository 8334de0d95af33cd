package prism

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/prismengine/prism/transform"
)

// ViewRangefinder computes view-space depth keys for ordering draw
// submissions. It keeps only row 2 of the inverse view matrix, which is the
// one row needed to project a world position onto the view Z axis, so each
// per-object query is a single 4-component dot product. A rangefinder is
// rebuilt once per view per frame.
type ViewRangefinder struct {
	inverseViewRow2 mgl64.Vec4
}

// RangefinderFromViewMatrix creates a rangefinder from a view matrix, the
// camera's world-space pose.
func RangefinderFromViewMatrix(viewMatrix mgl64.Mat4) ViewRangefinder {
	return ViewRangefinder{
		inverseViewRow2: viewMatrix.Inv().Row(2),
	}
}

// Distance returns the view-space Z value for a world-space model matrix.
func (r ViewRangefinder) Distance(model mgl64.Mat4) float64 {
	// Row 2 of the inverse view dotted with the model's translation column
	// gives the view-space Z of the model origin.
	return r.inverseViewRow2.Dot(model.Col(3))
}

// DistanceTransform returns the view-space Z value for a GlobalTransform.
func (r ViewRangefinder) DistanceTransform(world transform.GlobalTransform) float64 {
	return r.inverseViewRow2.Dot(world.Translation().Vec4(1))
}
