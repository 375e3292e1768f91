package material

import (
	"math"
	"testing"

	"github.com/raydiancy/go-whitted-raytracer/pkg/core"
)

func vecApproxEqual(a, b core.Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}

func TestReflect(t *testing.T) {
	n := core.NewVec3(0, 1, 0)

	tests := []struct {
		name     string
		incoming core.Vec3
		expected core.Vec3
	}{
		{
			name:     "45 degrees",
			incoming: core.NewVec3(1, -1, 0).Normalize(),
			expected: core.NewVec3(1, 1, 0).Normalize(),
		},
		{
			name:     "head on",
			incoming: core.NewVec3(0, -1, 0),
			expected: core.NewVec3(0, 1, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reflect(tt.incoming, n)
			if !vecApproxEqual(got, tt.expected, 1e-12) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestRefract_HeadOnPassesStraightThrough(t *testing.T) {
	v := core.NewVec3(0, -1, 0)
	n := core.NewVec3(0, 1, 0)

	refracted, ok := Refract(v, n, 1.5)
	if !ok {
		t.Fatal("Expected refraction, got total internal reflection")
	}
	if !vecApproxEqual(refracted, v, 1e-12) {
		t.Errorf("Expected head-on ray to continue straight, got %v", refracted)
	}
}

func TestRefract_SnellsLaw(t *testing.T) {
	// 45 degree incidence entering glass (ratio 1.5)
	v := core.NewVec3(1, -1, 0).Normalize()
	n := core.NewVec3(0, 1, 0)

	refracted, ok := Refract(v, n, 1.5)
	if !ok {
		t.Fatal("Expected refraction below the critical angle")
	}
	if math.Abs(refracted.Length()-1.0) > 1e-12 {
		t.Errorf("Expected unit refracted direction, got length %f", refracted.Length())
	}

	// sin(theta_t) = sin(theta_i) / ratio
	sinIncident := math.Sqrt(0.5)
	sinTransmitted := math.Abs(refracted.X)
	if math.Abs(sinTransmitted-sinIncident/1.5) > 1e-9 {
		t.Errorf("Snell's law violated: sin_t=%f, expected %f", sinTransmitted, sinIncident/1.5)
	}
	if refracted.Y >= 0 {
		t.Error("Expected refracted ray to continue into the surface")
	}
}

func TestRefract_TotalInternalReflection(t *testing.T) {
	// Exiting glass at a grazing angle: the critical angle for ratio
	// 1/1.5 is about 41.8 degrees, so 60 degrees must reflect totally
	angle := 60.0 * math.Pi / 180.0
	v := core.NewVec3(math.Sin(angle), -math.Cos(angle), 0)
	n := core.NewVec3(0, 1, 0)

	if _, ok := Refract(v, n, 1.0/1.5); ok {
		t.Error("Expected total internal reflection past the critical angle")
	}
}

func TestFresnel_NormalIncidence(t *testing.T) {
	v := core.NewVec3(0, -1, 0)
	n := core.NewVec3(0, 1, 0)

	// At normal incidence reflectance is ((r-1)/(r+1))²; 4% for glass
	got := Fresnel(v, n, 1.5)
	expected := math.Pow((1.5-1)/(1.5+1), 2)
	if math.Abs(got-expected) > 1e-9 {
		t.Errorf("Expected reflectance %f, got %f", expected, got)
	}
}

func TestFresnel_IncreasesTowardGrazing(t *testing.T) {
	n := core.NewVec3(0, 1, 0)
	previous := -1.0

	for _, degrees := range []float64{0, 20, 40, 60, 80} {
		angle := degrees * math.Pi / 180.0
		v := core.NewVec3(math.Sin(angle), -math.Cos(angle), 0)
		f := Fresnel(v, n, 1.5)
		if f < previous {
			t.Errorf("Expected reflectance to grow toward grazing, dropped to %f at %v degrees", f, degrees)
		}
		if f < 0 || f > 1 {
			t.Errorf("Reflectance %f out of [0,1] at %v degrees", f, degrees)
		}
		previous = f
	}
}

func TestBlinnSpecular(t *testing.T) {
	normal := core.NewVec3(0, 1, 0)

	// Light and viewer both along the normal: halfway vector is the
	// normal itself, maximum highlight
	full := BlinnSpecular(normal, normal, normal, 50)
	if math.Abs(full-1.0) > 1e-9 {
		t.Errorf("Expected full highlight 1.0, got %f", full)
	}

	// Halfway vector below the horizon contributes nothing
	lightDir := core.NewVec3(0.2, -1, 0).Normalize()
	viewDir := core.NewVec3(-0.2, -1, 0).Normalize()
	if got := BlinnSpecular(viewDir, lightDir, normal, 50); got != 0 {
		t.Errorf("Expected zero highlight below the horizon, got %f", got)
	}
}

func TestBlinnSpecular_ShininessNarrowsHighlight(t *testing.T) {
	normal := core.NewVec3(0, 1, 0)
	lightDir := core.NewVec3(0.3, 1, 0).Normalize()
	viewDir := core.NewVec3(0, 1, 0)

	soft := BlinnSpecular(viewDir, lightDir, normal, 10)
	sharp := BlinnSpecular(viewDir, lightDir, normal, 200)
	if sharp >= soft {
		t.Errorf("Expected higher shininess to dim off-axis highlight: %f >= %f", sharp, soft)
	}
}
