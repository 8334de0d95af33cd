// Package transform provides the hierarchical transform model: Transform is
// an entity's translation-rotation-scale relative to its parent, and
// GlobalTransform is the resolved affine map from the entity's local space to
// world space, produced by composing Transforms down the hierarchy.
package transform

import "github.com/go-gl/mathgl/mgl64"

// Transform represents a position, orientation and non-uniform scale relative
// to a parent space. Scale components may structurally be zero or negative,
// which produces degenerate or mirrored transforms; keeping them meaningful
// is the caller's responsibility.
type Transform struct {
	Translation mgl64.Vec3
	Rotation    mgl64.Quat
	Scale       mgl64.Vec3
}

// Identity returns a Transform with no translation, no rotation, and a scale
// of 1 on all axes.
func Identity() Transform {
	return Transform{
		Rotation: mgl64.QuatIdent(),
		Scale:    mgl64.Vec3{1, 1, 1},
	}
}

// FromXYZ returns a Transform translated to (x, y, z).
func FromXYZ(x, y, z float64) Transform {
	return FromTranslation(mgl64.Vec3{x, y, z})
}

// FromTranslation returns a Transform with the given translation.
func FromTranslation(translation mgl64.Vec3) Transform {
	t := Identity()
	t.Translation = translation
	return t
}

// FromRotation returns a Transform with the given rotation.
func FromRotation(rotation mgl64.Quat) Transform {
	t := Identity()
	t.Rotation = rotation
	return t
}

// FromScale returns a Transform with the given scale.
func FromScale(scale mgl64.Vec3) Transform {
	t := Identity()
	t.Scale = scale
	return t
}

// FromMatrix extracts translation, rotation and scale from a 3D affine
// transformation matrix. The extraction is lossy if the matrix carries shear.
func FromMatrix(matrix mgl64.Mat4) Transform {
	scale, rotation, translation := toScaleRotationTranslation(
		matrix.Col(0).Vec3(),
		matrix.Col(1).Vec3(),
		matrix.Col(2).Vec3(),
		matrix.Col(3).Vec3(),
	)
	return Transform{Translation: translation, Rotation: rotation, Scale: scale}
}

// WithTranslation returns the Transform with its translation replaced.
func (t Transform) WithTranslation(translation mgl64.Vec3) Transform {
	t.Translation = translation
	return t
}

// WithRotation returns the Transform with its rotation replaced.
func (t Transform) WithRotation(rotation mgl64.Quat) Transform {
	t.Rotation = rotation
	return t
}

// WithScale returns the Transform with its scale replaced.
func (t Transform) WithScale(scale mgl64.Vec3) Transform {
	t.Scale = scale
	return t
}

// LookingAt returns the Transform rotated so that Forward points at target
// and Up leans towards up.
func (t Transform) LookingAt(target, up mgl64.Vec3) Transform {
	t.LookAt(target, up)
	return t
}

// LookingTo returns the Transform rotated so that Forward points along
// direction and Up leans towards up.
func (t Transform) LookingTo(direction, up mgl64.Vec3) Transform {
	t.LookTo(direction, up)
	return t
}

// Matrix returns the affine transformation matrix composed from the
// translation, rotation and scale.
func (t Transform) Matrix() mgl64.Mat4 {
	x := t.Rotation.Rotate(mgl64.Vec3{t.Scale[0], 0, 0})
	y := t.Rotation.Rotate(mgl64.Vec3{0, t.Scale[1], 0})
	z := t.Rotation.Rotate(mgl64.Vec3{0, 0, t.Scale[2]})
	return mgl64.Mat4{
		x[0], x[1], x[2], 0,
		y[0], y[1], y[2], 0,
		z[0], z[1], z[2], 0,
		t.Translation[0], t.Translation[1], t.Translation[2], 1,
	}
}

// Affine returns the Transform as a GlobalTransform.
func (t Transform) Affine() GlobalTransform {
	return GlobalFromTransform(t)
}

// LocalX returns the unit vector of the local X axis in parent space.
func (t Transform) LocalX() mgl64.Vec3 {
	return t.Rotation.Rotate(mgl64.Vec3{1, 0, 0})
}

// Left is the -X direction.
func (t Transform) Left() mgl64.Vec3 {
	return t.LocalX().Mul(-1)
}

// Right is the +X direction.
func (t Transform) Right() mgl64.Vec3 {
	return t.LocalX()
}

// LocalY returns the unit vector of the local Y axis in parent space.
func (t Transform) LocalY() mgl64.Vec3 {
	return t.Rotation.Rotate(mgl64.Vec3{0, 1, 0})
}

// Up is the +Y direction.
func (t Transform) Up() mgl64.Vec3 {
	return t.LocalY()
}

// Down is the -Y direction.
func (t Transform) Down() mgl64.Vec3 {
	return t.LocalY().Mul(-1)
}

// LocalZ returns the unit vector of the local Z axis in parent space.
func (t Transform) LocalZ() mgl64.Vec3 {
	return t.Rotation.Rotate(mgl64.Vec3{0, 0, 1})
}

// Forward is the -Z direction, the way the entity faces.
func (t Transform) Forward() mgl64.Vec3 {
	return t.LocalZ().Mul(-1)
}

// Back is the +Z direction.
func (t Transform) Back() mgl64.Vec3 {
	return t.LocalZ()
}

// Rotate applies rotation in parent space (pre-multiplication).
func (t *Transform) Rotate(rotation mgl64.Quat) {
	t.Rotation = rotation.Mul(t.Rotation)
}

// RotateAxis rotates around the given parent-space axis by angle radians.
// The axis must be normalized.
func (t *Transform) RotateAxis(axis mgl64.Vec3, angle float64) {
	t.Rotate(mgl64.QuatRotate(angle, axis))
}

// RotateX rotates around the parent-space X axis by angle radians.
func (t *Transform) RotateX(angle float64) {
	t.RotateAxis(mgl64.Vec3{1, 0, 0}, angle)
}

// RotateY rotates around the parent-space Y axis by angle radians.
func (t *Transform) RotateY(angle float64) {
	t.RotateAxis(mgl64.Vec3{0, 1, 0}, angle)
}

// RotateZ rotates around the parent-space Z axis by angle radians.
func (t *Transform) RotateZ(angle float64) {
	t.RotateAxis(mgl64.Vec3{0, 0, 1}, angle)
}

// RotateLocal applies rotation in the Transform's own space
// (post-multiplication).
func (t *Transform) RotateLocal(rotation mgl64.Quat) {
	t.Rotation = t.Rotation.Mul(rotation)
}

// RotateLocalAxis rotates around the given local axis by angle radians.
// The axis must be normalized.
func (t *Transform) RotateLocalAxis(axis mgl64.Vec3, angle float64) {
	t.RotateLocal(mgl64.QuatRotate(angle, axis))
}

// RotateLocalX rotates around the local X axis by angle radians.
func (t *Transform) RotateLocalX(angle float64) {
	t.RotateLocalAxis(mgl64.Vec3{1, 0, 0}, angle)
}

// RotateLocalY rotates around the local Y axis by angle radians.
func (t *Transform) RotateLocalY(angle float64) {
	t.RotateLocalAxis(mgl64.Vec3{0, 1, 0}, angle)
}

// RotateLocalZ rotates around the local Z axis by angle radians.
func (t *Transform) RotateLocalZ(angle float64) {
	t.RotateLocalAxis(mgl64.Vec3{0, 0, 1}, angle)
}

// TranslateAround moves the translation around a parent-space pivot point by
// the given rotation, without changing the orientation.
func (t *Transform) TranslateAround(point mgl64.Vec3, rotation mgl64.Quat) {
	t.Translation = point.Add(rotation.Rotate(t.Translation.Sub(point)))
}

// RotateAround rotates the Transform around a parent-space pivot point,
// moving its translation and rotating its orientation together.
func (t *Transform) RotateAround(point mgl64.Vec3, rotation mgl64.Quat) {
	t.TranslateAround(point, rotation)
	t.Rotate(rotation)
}

// LookAt rotates the Transform so that Forward points at target and Up leans
// towards up. target equal to the translation, or up parallel to the view
// direction, is a caller contract violation and propagates NaN.
func (t *Transform) LookAt(target, up mgl64.Vec3) {
	t.LookTo(target.Sub(t.Translation), up)
}

// LookTo rotates the Transform so that Forward points along direction and Up
// leans towards up. A zero direction, or up parallel to direction, is a
// caller contract violation and propagates NaN.
func (t *Transform) LookTo(direction, up mgl64.Vec3) {
	forward := direction.Normalize().Mul(-1)
	right := up.Cross(forward).Normalize()
	orthoUp := forward.Cross(right)
	t.Rotation = mgl64.Mat4ToQuat(mgl64.Mat4{
		right[0], right[1], right[2], 0,
		orthoUp[0], orthoUp[1], orthoUp[2], 0,
		forward[0], forward[1], forward[2], 0,
		0, 0, 0, 1,
	})
}

// MulTransform composes the Transform with a child transform: the child's
// translation is carried through this Transform, rotations multiply, and
// scales multiply componentwise. The result maps the child's local space
// into this Transform's parent space.
func (t Transform) MulTransform(child Transform) Transform {
	return Transform{
		Translation: t.TransformPoint(child.Translation),
		Rotation:    t.Rotation.Mul(child.Rotation),
		Scale: mgl64.Vec3{
			t.Scale[0] * child.Scale[0],
			t.Scale[1] * child.Scale[1],
			t.Scale[2] * child.Scale[2],
		},
	}
}

// TransformPoint applies scale, then rotation, then translation to the point.
// The order is fixed and not commutative.
func (t Transform) TransformPoint(point mgl64.Vec3) mgl64.Vec3 {
	point = mgl64.Vec3{
		t.Scale[0] * point[0],
		t.Scale[1] * point[1],
		t.Scale[2] * point[2],
	}
	point = t.Rotation.Rotate(point)
	return point.Add(t.Translation)
}
