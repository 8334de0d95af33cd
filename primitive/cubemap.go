package primitive

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// cubeFaces lists the forward and up orientation of the 6 cube faces in the
// order +X, -X, +Y, -Y, +Z, -Z, matching the usual cubemap face layout.
var cubeFaces = [6]struct {
	forward mgl64.Vec3
	up      mgl64.Vec3
}{
	{mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, -1, 0}},
	{mgl64.Vec3{-1, 0, 0}, mgl64.Vec3{0, -1, 0}},
	{mgl64.Vec3{0, 1, 0}, mgl64.Vec3{0, 0, 1}},
	{mgl64.Vec3{0, -1, 0}, mgl64.Vec3{0, 0, -1}},
	{mgl64.Vec3{0, 0, 1}, mgl64.Vec3{0, -1, 0}},
	{mgl64.Vec3{0, 0, -1}, mgl64.Vec3{0, -1, 0}},
}

// CubemapFrusta holds one Frustum per cube face for omnidirectional
// visibility determination, typically for a point light. Like Frustum it is
// rebuilt every frame from the light's position and range.
type CubemapFrusta struct {
	Frusta [6]Frustum
}

// NewCubemapFrusta builds the 6 face frusta for an omnidirectional view
// placed at translation. Each face uses a square 90° reversed-depth
// projection with the given near distance; far caps the culling volume of
// every face.
func NewCubemapFrusta(translation mgl64.Vec3, near, far float64) CubemapFrusta {
	projection := InfinitePerspective(math.Pi/2, 1, near)

	var c CubemapFrusta
	for i, face := range cubeFaces {
		view := mgl64.LookAtV(translation, translation.Add(face.forward), face.up)
		viewProjection := projection.Mul4(view)
		backward := face.forward.Mul(-1)
		c.Frusta[i] = FrustumFromViewProjection(viewProjection, translation, backward, far)
	}
	return c
}
