package material

import (
	"testing"

	"github.com/raydiancy/go-whitted-raytracer/pkg/core"
)

func TestPresets(t *testing.T) {
	tests := []struct {
		name        string
		mat         *Material
		transparent bool
	}{
		{"matte", Matte(core.NewColor(1, 0, 0)), false},
		{"mirror", Mirror(0.8, core.White()), false},
		{"glass", Glass(), true},
		{"vacuum", Vacuum(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.mat.Transparent() != tt.transparent {
				t.Errorf("Expected transparent=%t", tt.transparent)
			}
			if tt.mat.RefractionIndex < 1 {
				t.Errorf("Expected refraction index >= 1, got %f", tt.mat.RefractionIndex)
			}
		})
	}
}

func TestMirror_EnergySplit(t *testing.T) {
	m := Mirror(0.8, core.White())
	if m.Reflectance != 0.8 {
		t.Errorf("Expected reflectance 0.8, got %f", m.Reflectance)
	}
	// The diffuse share shrinks as the mirror share grows
	if m.Diffuse >= Mirror(0.2, core.White()).Diffuse {
		t.Error("Expected higher reflectance to leave less diffuse energy")
	}
}

func TestHitRecord_SetFaceNormal(t *testing.T) {
	outward := core.NewVec3(0, 0, 1)

	tests := []struct {
		name           string
		rayDirection   core.Vec3
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{
			name:           "ray against normal hits front face",
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "ray along normal hits back face",
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedFront:  false,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit := &HitRecord{}
			ray := core.NewRay(core.NewVec3(0, 0, 0), tt.rayDirection)
			hit.SetFaceNormal(ray, outward)

			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, hit.FrontFace)
			}
			if hit.Normal != tt.expectedNormal {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
		})
	}
}
