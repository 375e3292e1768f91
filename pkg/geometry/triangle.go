package geometry

import (
	"github.com/raydiancy/go-whitted-raytracer/pkg/core"
	"github.com/raydiancy/go-whitted-raytracer/pkg/material"
)

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	V0, V1, V2 core.Vec3 // The three vertices
	Material   *material.Material

	normals    [3]core.Vec3 // Optional per-vertex normals
	hasNormals bool
	faceNormal core.Vec3 // Cached geometric normal
	bbox       core.AABB // Cached bounding box
}

// NewTriangle creates a new triangle from three vertices. The shading
// normal is the face normal.
func NewTriangle(v0, v1, v2 core.Vec3, mat *material.Material) *Triangle {
	t := &Triangle{V0: v0, V1: v1, V2: v2, Material: mat}
	t.faceNormal = v1.Subtract(v0).Cross(v2.Subtract(v0)).Normalize()
	t.bbox = core.NewAABBFromPoints(v0, v1, v2)
	return t
}

// NewTriangleWithNormals creates a triangle with per-vertex normals that
// are barycentrically interpolated at hit points.
func NewTriangleWithNormals(v0, v1, v2, n0, n1, n2 core.Vec3, mat *material.Material) *Triangle {
	t := NewTriangle(v0, v1, v2, mat)
	t.normals = [3]core.Vec3{n0.Normalize(), n1.Normalize(), n2.Normalize()}
	t.hasNormals = true
	return t
}

// Hit tests if a ray intersects with the triangle using the Möller-Trumbore algorithm
func (t *Triangle) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	u, v, tParam, ok := intersectTriangle(t.V0, t.V1, t.V2, ray, tMin, tMax)
	if !ok {
		return nil, false
	}

	hitRecord := &material.HitRecord{
		T:        tParam,
		Point:    ray.At(tParam),
		Material: t.Material,
	}
	hitRecord.SetFaceNormal(ray, t.shadingNormal(u, v))

	return hitRecord, true
}

// shadingNormal returns the normal at barycentric coordinates (u, v):
// interpolated vertex normals when present, the face normal otherwise.
func (t *Triangle) shadingNormal(u, v float64) core.Vec3 {
	if !t.hasNormals {
		return t.faceNormal
	}
	w := 1.0 - u - v
	return t.normals[0].Multiply(w).
		Add(t.normals[1].Multiply(u)).
		Add(t.normals[2].Multiply(v)).
		Normalize()
}

// BoundingBox returns the axis-aligned bounding box for this triangle
func (t *Triangle) BoundingBox() core.AABB {
	return t.bbox
}

// FaceNormal returns the triangle's geometric normal
func (t *Triangle) FaceNormal() core.Vec3 {
	return t.faceNormal
}

// intersectTriangle runs the Möller-Trumbore intersection test and returns
// the barycentric coordinates (u, v) and ray parameter t of the hit.
// Degenerate (zero-area) triangles always miss: their determinant is zero
// for every ray direction.
func intersectTriangle(v0, v1, v2 core.Vec3, ray core.Ray, tMin, tMax float64) (u, v, t float64, ok bool) {
	const epsilon = 1e-8

	edge1 := v1.Subtract(v0)
	edge2 := v2.Subtract(v0)

	h := ray.Direction.Cross(edge2)
	det := edge1.Dot(h)

	// Near-zero determinant: the ray lies in (or parallel to) the plane
	if det > -epsilon && det < epsilon {
		return 0, 0, 0, false
	}

	invDet := 1.0 / det
	s := ray.Origin.Subtract(v0)
	u = invDet * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return 0, 0, 0, false
	}

	q := s.Cross(edge1)
	v = invDet * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return 0, 0, 0, false
	}

	t = invDet * edge2.Dot(q)
	if t < tMin || t > tMax {
		return 0, 0, 0, false
	}

	return u, v, t, true
}
