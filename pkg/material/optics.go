package material

import (
	"math"

	"github.com/raydiancy/go-whitted-raytracer/pkg/core"
)

// Reflect computes the mirror reflection of direction v about normal n.
// Both vectors must be unit length.
func Reflect(v, n core.Vec3) core.Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// Refract computes the transmitted direction of unit vector v crossing a
// surface with unit normal n, where ratio is the index of refraction of the
// medium being entered divided by the index of the medium being exited.
// It returns false on total internal reflection.
func Refract(v, n core.Vec3, ratio float64) (core.Vec3, bool) {
	if ratio == 0 {
		return core.Vec3{}, false
	}
	r := 1.0 / ratio
	w := -r * v.Dot(n)
	k := 1.0 + (w+r)*(w-r)
	if k < 0 {
		return core.Vec3{}, false
	}
	return v.Multiply(r).Add(n.Multiply(w - math.Sqrt(k))), true
}

// Fresnel computes the reflectance of unit direction v hitting a surface
// with unit normal n, averaging the orthogonal and parallel polarizations.
// ratio is defined as for Refract. Callers must only invoke this outside
// the total internal reflection regime.
func Fresnel(v, n core.Vec3, ratio float64) float64 {
	c := -v.Dot(n) // cosine of the angle of incidence
	s := ratio*ratio + c*c - 1.0
	if s < 0 {
		return 1.0 // grazing past the critical angle reflects everything
	}
	g := math.Sqrt(s) // ratio * cosine of the angle of refraction
	gpc := g + c
	gmc := g - c
	f1 := gmc / gpc
	f2 := (c*gpc - 1.0) / (c*gmc + 1.0)
	return f1 * f1 * (f2*f2 + 1.0) / 2.0
}

// BlinnSpecular computes the specular factor for the Blinn-Phong highlight:
// the cosine between the halfway vector and the normal raised to the
// shininess exponent. viewDir points back toward the viewer, lightDir
// toward the light; both must be unit length.
func BlinnSpecular(viewDir, lightDir, normal core.Vec3, shininess float64) float64 {
	halfway := lightDir.Add(viewDir).Normalize()
	cos := halfway.Dot(normal)
	if cos <= 0 {
		return 0
	}
	return math.Pow(cos, shininess)
}
