package geometry

import (
	"math"

	"github.com/raydiancy/go-whitted-raytracer/pkg/core"
	"github.com/raydiancy/go-whitted-raytracer/pkg/material"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point    core.Vec3 // A point on the plane
	Normal   core.Vec3 // Normal vector (normalized on construction)
	Material *material.Material
}

// NewPlane creates a new plane
func NewPlane(point, normal core.Vec3, mat *material.Material) *Plane {
	return &Plane{
		Point:    point,
		Normal:   normal.Normalize(),
		Material: mat,
	}
}

// Hit tests if a ray intersects with the plane
func (p *Plane) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	denominator := ray.Direction.Dot(p.Normal)

	// Parallel rays (and degenerate zero normals) never intersect
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if t < tMin || t > tMax {
		return nil, false
	}

	hitRecord := &material.HitRecord{
		T:        t,
		Point:    ray.At(t),
		Material: p.Material,
	}
	hitRecord.SetFaceNormal(ray, p.Normal)

	return hitRecord, true
}

// BoundingBox returns a bounding box for this plane. Planes are unbounded,
// so the box is world-sized; axis-aligned planes get a thin slab instead so
// they prune well inside the BVH.
func (p *Plane) BoundingBox() core.AABB {
	const largeValue = 1e6
	const epsilon = 0.001 // Small thickness to avoid zero-width boxes

	switch {
	case p.Normal.Y == 0 && p.Normal.Z == 0:
		// Perpendicular to the X axis (e.g. a wall at x = constant)
		x := p.Point.X
		return core.NewAABB(
			core.NewVec3(x-epsilon, -largeValue, -largeValue),
			core.NewVec3(x+epsilon, largeValue, largeValue),
		)
	case p.Normal.X == 0 && p.Normal.Z == 0:
		// Perpendicular to the Y axis (e.g. a ground plane at y = constant)
		y := p.Point.Y
		return core.NewAABB(
			core.NewVec3(-largeValue, y-epsilon, -largeValue),
			core.NewVec3(largeValue, y+epsilon, largeValue),
		)
	case p.Normal.X == 0 && p.Normal.Y == 0:
		// Perpendicular to the Z axis (e.g. a back wall at z = constant)
		z := p.Point.Z
		return core.NewAABB(
			core.NewVec3(-largeValue, -largeValue, z-epsilon),
			core.NewVec3(largeValue, largeValue, z+epsilon),
		)
	default:
		return core.NewAABB(
			core.NewVec3(-largeValue, -largeValue, -largeValue),
			core.NewVec3(largeValue, largeValue, largeValue),
		)
	}
}
