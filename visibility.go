// Package prism is the spatial transform and bounding-volume culling core of
// a real-time 3D renderer. The transform subpackage maintains each object's
// place in world space through a hierarchical transform model, the primitive
// subpackage decides which bounding volumes a camera or light can see, and
// this root package ties both into the per-frame passes: hierarchy
// propagation, frustum culling, and depth ordering of the survivors.
package prism

import (
	"sort"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/prismengine/prism/primitive"
	"github.com/prismengine/prism/transform"
)

const DEFAULT_WORKERS = 1

// Renderable is the per-object input to the culling pass: local-space bounds
// plus the world transform resolved by the last propagation pass.
type Renderable struct {
	Bounds primitive.Aabb
	World  transform.GlobalTransform
}

// View bundles the per-frame culling state of one camera or light:
// the frustum to cull against and the rangefinder to depth-sort with.
// Both are rebuilt every frame from the view parameters.
type View struct {
	Frustum     primitive.Frustum
	Rangefinder ViewRangefinder
}

// NewView derives a View from a camera's world-space view matrix, its
// projection matrix, and the far distance bounding the culling volume. The
// far distance is independent of the projection, so infinite-far projections
// still cull to a finite volume.
func NewView(viewMatrix, projection mgl64.Mat4, far float64) View {
	viewProjection := projection.Mul4(viewMatrix.Inv())
	translation := viewMatrix.Col(3).Vec3()
	backward := viewMatrix.Col(2).Vec3().Normalize()

	return View{
		Frustum:     primitive.FrustumFromViewProjection(viewProjection, translation, backward, far),
		Rangefinder: RangefinderFromViewMatrix(viewMatrix),
	}
}

// VisibleIndices tests every renderable's oriented bounding box against the
// frustum across workersCount goroutines and returns the indices of the
// visible ones in ascending order. The far plane is skipped; the test is
// conservative, so false positives near frustum corners are possible but
// visible objects are never dropped.
func VisibleIndices(frustum primitive.Frustum, renderables []Renderable, workersCount int) []int {
	return cullIndices(len(renderables), workersCount, func(i int) bool {
		return frustum.IntersectsObb(renderables[i].Bounds, renderables[i].World.Matrix(), false)
	})
}

// SphereVisibleIndices returns the indices of the renderables whose oriented
// bounding boxes overlap the sphere, in ascending order. This is the
// point-light culling pass: the sphere is the light's position and range.
func SphereVisibleIndices(sphere primitive.Sphere, renderables []Renderable, workersCount int) []int {
	return cullIndices(len(renderables), workersCount, func(i int) bool {
		return sphere.IntersectsObb(renderables[i].Bounds, renderables[i].World.Matrix())
	})
}

// SortFrontToBack orders the index list nearest first. The camera looks
// along -Z in view space, so nearer objects have the greater view-space Z.
// Depth keys are computed once per index before sorting.
func SortFrontToBack(rangefinder ViewRangefinder, renderables []Renderable, indices []int) {
	sortByDepth(rangefinder, renderables, indices, true)
}

// SortBackToFront orders the index list farthest first, the order required
// for correct blending of transparent geometry.
func SortBackToFront(rangefinder ViewRangefinder, renderables []Renderable, indices []int) {
	sortByDepth(rangefinder, renderables, indices, false)
}

func sortByDepth(rangefinder ViewRangefinder, renderables []Renderable, indices []int, descending bool) {
	keys := make(map[int]float64, len(indices))
	for _, i := range indices {
		keys[i] = rangefinder.DistanceTransform(renderables[i].World)
	}
	sort.SliceStable(indices, func(a, b int) bool {
		if descending {
			return keys[indices[a]] > keys[indices[b]]
		}
		return keys[indices[a]] < keys[indices[b]]
	})
}
