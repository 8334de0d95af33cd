package transform

import "github.com/go-gl/mathgl/mgl64"

// GlobalTransform is the resolved transform from an entity's local space to
// world space. It is stored as a single affine map (a 3x3 linear part plus a
// translation) rather than as translation-rotation-scale fields: composing a
// rotated parent with a non-uniformly scaled child introduces shear, which a
// TRS triple cannot represent. The affine form keeps composition exact; the
// decomposition queries below are explicitly lossy.
type GlobalTransform struct {
	linear      mgl64.Mat3
	translation mgl64.Vec3
}

// GlobalIdentity returns the GlobalTransform mapping every point to itself.
func GlobalIdentity() GlobalTransform {
	return GlobalTransform{linear: mgl64.Ident3()}
}

// GlobalFromXYZ returns a GlobalTransform translated to (x, y, z).
func GlobalFromXYZ(x, y, z float64) GlobalTransform {
	return GlobalFromTranslation(mgl64.Vec3{x, y, z})
}

// GlobalFromTranslation returns a GlobalTransform with the given translation.
func GlobalFromTranslation(translation mgl64.Vec3) GlobalTransform {
	return GlobalTransform{linear: mgl64.Ident3(), translation: translation}
}

// GlobalFromRotation returns a GlobalTransform with the given rotation.
func GlobalFromRotation(rotation mgl64.Quat) GlobalTransform {
	return GlobalFromTransform(FromRotation(rotation))
}

// GlobalFromScale returns a GlobalTransform with the given scale.
func GlobalFromScale(scale mgl64.Vec3) GlobalTransform {
	return GlobalTransform{
		linear: mgl64.Mat3{
			scale[0], 0, 0,
			0, scale[1], 0,
			0, 0, scale[2],
		},
	}
}

// GlobalFromTransform resolves a root-level Transform into a GlobalTransform.
func GlobalFromTransform(t Transform) GlobalTransform {
	x := t.Rotation.Rotate(mgl64.Vec3{t.Scale[0], 0, 0})
	y := t.Rotation.Rotate(mgl64.Vec3{0, t.Scale[1], 0})
	z := t.Rotation.Rotate(mgl64.Vec3{0, 0, t.Scale[2]})
	return GlobalTransform{
		// colonne-major
		linear: mgl64.Mat3{
			x[0], x[1], x[2],
			y[0], y[1], y[2],
			z[0], z[1], z[2],
		},
		translation: t.Translation,
	}
}

// GlobalFromMatrix builds a GlobalTransform from a 3D affine transformation
// matrix. The fourth row is assumed to be (0, 0, 0, 1).
func GlobalFromMatrix(matrix mgl64.Mat4) GlobalTransform {
	c0 := matrix.Col(0).Vec3()
	c1 := matrix.Col(1).Vec3()
	c2 := matrix.Col(2).Vec3()
	return GlobalTransform{
		linear: mgl64.Mat3{
			c0[0], c0[1], c0[2],
			c1[0], c1[1], c1[2],
			c2[0], c2[1], c2[2],
		},
		translation: matrix.Col(3).Vec3(),
	}
}

// Matrix returns the affine map as a 4x4 transformation matrix.
func (g GlobalTransform) Matrix() mgl64.Mat4 {
	c0 := g.linear.Col(0)
	c1 := g.linear.Col(1)
	c2 := g.linear.Col(2)
	return mgl64.Mat4{
		c0[0], c0[1], c0[2], 0,
		c1[0], c1[1], c1[2], 0,
		c2[0], c2[1], c2[2], 0,
		g.translation[0], g.translation[1], g.translation[2], 1,
	}
}

// Mul composes two GlobalTransforms by multiplying the stored affine maps
// directly; scale and shear compounding is exact.
func (g GlobalTransform) Mul(other GlobalTransform) GlobalTransform {
	return GlobalTransform{
		linear:      g.linear.Mul3(other.linear),
		translation: g.linear.Mul3x1(other.translation).Add(g.translation),
	}
}

// MulTransform composes the GlobalTransform with a child Transform, yielding
// the child's GlobalTransform. This is the hierarchy propagation step.
func (g GlobalTransform) MulTransform(child Transform) GlobalTransform {
	return g.Mul(child.Affine())
}

// TransformPoint applies the affine map (shear, scale, rotation, then
// translation) to the point.
func (g GlobalTransform) TransformPoint(point mgl64.Vec3) mgl64.Vec3 {
	return g.linear.Mul3x1(point).Add(g.translation)
}

// Translation returns the world-space position.
func (g GlobalTransform) Translation() mgl64.Vec3 {
	return g.translation
}

// Radius returns an upper bound of the world-space radius spanned by the
// given local-space extents.
func (g GlobalTransform) Radius(extents mgl64.Vec3) float64 {
	return g.linear.Mul3x1(extents).Len()
}

// ToScaleRotationTranslation decomposes the affine map into scale, rotation
// and translation. The decomposition is only valid when the map is free of
// shear; shear is not detected, it silently distorts the result.
func (g GlobalTransform) ToScaleRotationTranslation() (mgl64.Vec3, mgl64.Quat, mgl64.Vec3) {
	return toScaleRotationTranslation(g.linear.Col(0), g.linear.Col(1), g.linear.Col(2), g.translation)
}

// ComputeTransform returns the GlobalTransform as a Transform, under the same
// shear-free assumption as ToScaleRotationTranslation.
func (g GlobalTransform) ComputeTransform() Transform {
	scale, rotation, translation := g.ToScaleRotationTranslation()
	return Transform{Translation: translation, Rotation: rotation, Scale: scale}
}

// RightDirection returns the normalized local +X axis in world space. The
// normalization tolerates uniform scale; shear or non-uniform scale distorts
// the direction.
func (g GlobalTransform) RightDirection() mgl64.Vec3 {
	return g.linear.Mul3x1(mgl64.Vec3{1, 0, 0}).Normalize()
}

// LeftDirection returns the normalized local -X axis in world space.
func (g GlobalTransform) LeftDirection() mgl64.Vec3 {
	return g.RightDirection().Mul(-1)
}

// UpDirection returns the normalized local +Y axis in world space.
func (g GlobalTransform) UpDirection() mgl64.Vec3 {
	return g.linear.Mul3x1(mgl64.Vec3{0, 1, 0}).Normalize()
}

// DownDirection returns the normalized local -Y axis in world space.
func (g GlobalTransform) DownDirection() mgl64.Vec3 {
	return g.UpDirection().Mul(-1)
}

// BackDirection returns the normalized local +Z axis in world space.
func (g GlobalTransform) BackDirection() mgl64.Vec3 {
	return g.linear.Mul3x1(mgl64.Vec3{0, 0, 1}).Normalize()
}

// ForwardDirection returns the normalized local -Z axis in world space.
func (g GlobalTransform) ForwardDirection() mgl64.Vec3 {
	return g.BackDirection().Mul(-1)
}

// toScaleRotationTranslation extracts a TRS triple from affine map columns.
// When the determinant is negative the mirroring is folded into the X scale.
func toScaleRotationTranslation(c0, c1, c2, translation mgl64.Vec3) (mgl64.Vec3, mgl64.Quat, mgl64.Vec3) {
	det := c0.Dot(c1.Cross(c2))
	sign := 1.0
	if det < 0 {
		sign = -1.0
	}

	scale := mgl64.Vec3{c0.Len() * sign, c1.Len(), c2.Len()}

	// Une échelle nulle propage NaN, par contrat d'appel
	r0 := c0.Mul(1 / scale[0])
	r1 := c1.Mul(1 / scale[1])
	r2 := c2.Mul(1 / scale[2])
	rotation := mgl64.Mat4ToQuat(mgl64.Mat4{
		r0[0], r0[1], r0[2], 0,
		r1[0], r1[1], r1[2], 0,
		r2[0], r2[1], r2[2], 0,
		0, 0, 0, 1,
	})

	return scale, rotation, translation
}
