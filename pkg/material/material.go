package material

import (
	"github.com/raydiancy/go-whitted-raytracer/pkg/core"
)

// Material describes the optical properties of a surface under the Phong
// illumination model, plus the mirror and refraction behavior used by the
// recursive tracer.
type Material struct {
	Color           core.Color // Base color of the material
	Ambient         float64    // Ambient reflection constant in [0,1]
	Diffuse         float64    // Diffuse reflection constant in [0,1]
	Specular        float64    // Specular reflection constant in [0,1]
	Shininess       float64    // Specular exponent; larger means a smaller highlight
	Reflectance     float64    // Mirror reflectance: 0 = no reflection, 1 = perfect mirror
	Refractivity    float64    // Transmitted fraction: 0 = opaque, 1 = fully transmissive
	RefractionIndex float64    // Index of refraction; 1 = vacuum
}

// Vacuum returns a material that behaves like nothing: fully transmissive
// with index 1 and no surface response.
func Vacuum() *Material {
	return &Material{
		Color:           core.Black(),
		Shininess:       1,
		Refractivity:    1,
		RefractionIndex: 1,
	}
}

// Matte returns a diffuse material of the given color
func Matte(color core.Color) *Material {
	return &Material{
		Color:           color,
		Ambient:         0.2,
		Diffuse:         0.6,
		Specular:        0.2,
		Shininess:       10,
		RefractionIndex: 1,
	}
}

// Mirror returns a reflective material of the given reflectance and color
func Mirror(reflectance float64, color core.Color) *Material {
	return &Material{
		Color:           color,
		Diffuse:         0.9 - reflectance,
		Specular:        0.1,
		Shininess:       50,
		Reflectance:     reflectance,
		RefractionIndex: 1,
	}
}

// Glass returns a transparent material that looks like glass
func Glass() *Material {
	return &Material{
		Color:           core.White(),
		Specular:        0.1,
		Shininess:       200,
		Refractivity:    0.9,
		RefractionIndex: 1.5,
	}
}

// Transparent reports whether the material transmits light
func (m *Material) Transparent() bool {
	return m.Refractivity > 0
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Unit surface normal, facing against the incoming ray
	T         float64   // Parameter t along the ray
	FrontFace bool      // Whether the ray hit the front face
	Material  *Material // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face.
// The stored normal always opposes the incoming ray direction, which the
// shading stage relies on for the epsilon offset of secondary rays.
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Multiply(-1)
	}
}
