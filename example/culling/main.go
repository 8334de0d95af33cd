package main

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/prismengine/prism"
	"github.com/prismengine/prism/primitive"
	"github.com/prismengine/prism/transform"
)

// SetupScene builds a small hierarchy: a spinning hub at the origin with four
// satellite cubes parented to it, plus a few free-standing cubes.
func SetupScene(angle float64) ([]prism.HierarchyEntry, []primitive.Aabb) {
	hub := transform.FromXYZ(0, 0, -10)
	hub.RotateY(angle)

	entries := []prism.HierarchyEntry{
		{Local: hub, Parent: -1},
	}
	for i := 0; i < 4; i++ {
		orbit := transform.FromXYZ(6, 0, 0)
		orbit.RotateAround(mgl64.Vec3{}, mgl64.QuatRotate(float64(i)*math.Pi/2, mgl64.Vec3{0, 1, 0}))
		entries = append(entries, prism.HierarchyEntry{Local: orbit, Parent: 0})
	}

	// Cubes libres : un visible, un derrière la caméra, un hors de portée
	entries = append(entries,
		prism.HierarchyEntry{Local: transform.FromXYZ(2, 1, -20), Parent: -1},
		prism.HierarchyEntry{Local: transform.FromXYZ(0, 0, 15), Parent: -1},
		prism.HierarchyEntry{Local: transform.FromXYZ(80, 0, -20), Parent: -1},
	)

	bounds := make([]primitive.Aabb, len(entries))
	for i := range bounds {
		bounds[i] = primitive.Aabb{HalfExtents: mgl64.Vec3{0.5, 0.5, 0.5}}
	}
	return entries, bounds
}

func main() {
	fmt.Println("🎥 Frustum culling demo")

	entries, bounds := SetupScene(math.Pi / 6)

	// Résoudre la hiérarchie en transformations monde
	worlds := make([]transform.GlobalTransform, len(entries))
	prism.PropagateTransforms(entries, worlds)

	renderables := make([]prism.Renderable, len(entries))
	for i := range entries {
		renderables[i] = prism.Renderable{Bounds: bounds[i], World: worlds[i]}
	}

	// Caméra à l'origine regardant -Z
	camera := transform.Identity().LookingAt(mgl64.Vec3{0, 0, -10}, mgl64.Vec3{0, 1, 0})
	projection := primitive.InfinitePerspective(math.Pi/3, 16.0/9.0, 0.1)
	view := prism.NewView(camera.Matrix(), projection, 100)

	visible := prism.VisibleIndices(view.Frustum, renderables, 4)
	fmt.Printf("   %d/%d objects visible: %v\n", len(visible), len(renderables), visible)

	prism.SortFrontToBack(view.Rangefinder, renderables, visible)
	fmt.Println("   draw order (front to back):")
	for _, i := range visible {
		pos := renderables[i].World.Translation()
		fmt.Printf("   - object %d at %v (depth %.2f)\n", i, pos, view.Rangefinder.DistanceTransform(renderables[i].World))
	}

	// Lumière ponctuelle au centre du hub
	light := primitive.Sphere{Center: mgl64.Vec3{0, 0, -10}, Radius: 8}
	lit := prism.SphereVisibleIndices(light, renderables, 4)
	fmt.Printf("💡 %d objects in light range: %v\n", len(lit), lit)

	frusta := primitive.NewCubemapFrusta(light.Center, 0.1, light.Radius)
	for face, frustum := range frusta.Frusta {
		fmt.Printf("   shadow face %d: %v\n", face, prism.VisibleIndices(frustum, renderables, 2))
	}
}
