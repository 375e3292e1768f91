package geometry

import (
	"github.com/raydiancy/go-whitted-raytracer/pkg/core"
	"github.com/raydiancy/go-whitted-raytracer/pkg/material"
)

// Shape interface for objects that can be hit by rays
type Shape interface {
	// Hit returns the nearest intersection with t in [tMin, tMax], if any
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)

	// BoundingBox returns an axis-aligned box enclosing the shape
	BoundingBox() core.AABB
}

// Compound is implemented by shapes that are collections of simpler shapes.
// The scene flattens compounds so each component becomes its own BVH leaf
// candidate instead of hiding a whole mesh behind one bounding box.
type Compound interface {
	Triangles() []Shape
}
