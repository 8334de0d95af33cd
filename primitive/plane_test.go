package primitive

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestNewPlaneNormalizes(t *testing.T) {
	tests := []struct {
		name     string
		in       mgl64.Vec4
		normal   mgl64.Vec3
		distance float64
	}{
		{
			name:     "scaled axis normal",
			in:       mgl64.Vec4{3, 0, 0, 6},
			normal:   mgl64.Vec3{1, 0, 0},
			distance: 2,
		},
		{
			name:     "non-axis normal",
			in:       mgl64.Vec4{0, 4, 3, 10},
			normal:   mgl64.Vec3{0, 0.8, 0.6},
			distance: 2,
		},
		{
			name:     "negative components",
			in:       mgl64.Vec4{0, -2, 0, -2},
			normal:   mgl64.Vec3{0, -1, 0},
			distance: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plane := NewPlane(tt.in)

			if !floatEqual(plane.Normal().Len(), 1, 1e-9) {
				t.Errorf("Normal length = %v, want 1", plane.Normal().Len())
			}
			if !vec3Equal(plane.Normal(), tt.normal, 1e-9) {
				t.Errorf("Normal = %v, want %v", plane.Normal(), tt.normal)
			}
			if !floatEqual(plane.D(), tt.distance, 1e-9) {
				t.Errorf("D = %v, want %v", plane.D(), tt.distance)
			}
		})
	}
}

func TestPlaneHalfSpace(t *testing.T) {
	// Plan y = -1, intérieur au-dessus
	plane := NewPlane(mgl64.Vec4{0, 1, 0, 1})

	if d := plane.NormalD().Dot(mgl64.Vec4{0, 0, 0, 1}); d <= 0 {
		t.Errorf("origin should be in the positive half-space, got %v", d)
	}
	if d := plane.NormalD().Dot(mgl64.Vec4{0, -1, 0, 1}); !floatEqual(d, 0, 1e-9) {
		t.Errorf("point on the plane should give 0, got %v", d)
	}
	if d := plane.NormalD().Dot(mgl64.Vec4{0, -2, 0, 1}); d >= 0 {
		t.Errorf("point below should be in the negative half-space, got %v", d)
	}
}
