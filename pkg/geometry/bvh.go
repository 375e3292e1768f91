package geometry

import (
	"sort"

	"github.com/raydiancy/go-whitted-raytracer/pkg/core"
	"github.com/raydiancy/go-whitted-raytracer/pkg/material"
)

// BVHNode represents a node in the Bounding Volume Hierarchy
type BVHNode struct {
	BoundingBox core.AABB
	Left        *BVHNode
	Right       *BVHNode
	Shapes      []Shape // Shapes for leaf nodes (nil for internal nodes)
}

// BVH represents a Bounding Volume Hierarchy for fast nearest-hit queries.
// It is built once over an immutable shape list and is read-only afterwards,
// so concurrent queries need no locking.
type BVH struct {
	Root *BVHNode
}

// Leaf threshold: nodes with this many or fewer shapes become leaves
const leafThreshold = 4

// NewBVH constructs a BVH from a slice of shapes. An empty slice yields a
// BVH whose every query misses.
func NewBVH(shapes []Shape) *BVH {
	if len(shapes) == 0 {
		return &BVH{Root: nil}
	}

	// Copy the slice: building sorts it in place
	shapesCopy := make([]Shape, len(shapes))
	copy(shapesCopy, shapes)

	return &BVH{Root: buildBVH(shapesCopy)}
}

// buildBVH recursively builds the tree with median splits along the
// longest axis of the combined bounding box
func buildBVH(shapes []Shape) *BVHNode {
	boundingBox := shapes[0].BoundingBox()
	for i := 1; i < len(shapes); i++ {
		boundingBox = boundingBox.Union(shapes[i].BoundingBox())
	}

	if len(shapes) <= leafThreshold {
		return &BVHNode{
			BoundingBox: boundingBox,
			Shapes:      shapes,
		}
	}

	axis := boundingBox.LongestAxis()
	sortShapesByAxis(shapes, axis)

	mid := len(shapes) / 2
	return &BVHNode{
		BoundingBox: boundingBox,
		Left:        buildBVH(shapes[:mid]),
		Right:       buildBVH(shapes[mid:]),
	}
}

// sortShapesByAxis sorts shapes by their bounding box center along the given axis
func sortShapesByAxis(shapes []Shape, axis int) {
	sort.Slice(shapes, func(i, j int) bool {
		return shapes[i].BoundingBox().Center().Axis(axis) <
			shapes[j].BoundingBox().Center().Axis(axis)
	})
}

// Hit returns the nearest intersection across all shapes in the BVH
func (bvh *BVH) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	if bvh.Root == nil {
		return nil, false
	}
	return hitNode(bvh.Root, ray, tMin, tMax)
}

// hitNode recursively finds the nearest hit below a node. tMax carries the
// best hit distance found so far, pruning subtrees whose boxes start
// farther away.
func hitNode(node *BVHNode, ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	if _, _, ok := node.BoundingBox.HitInterval(ray, tMin, tMax); !ok {
		return nil, false
	}

	// Leaf: linear scan keeping the minimum-t hit
	if node.Shapes != nil {
		var closestHit *material.HitRecord
		hitAnything := false
		closestSoFar := tMax

		for _, shape := range node.Shapes {
			if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
				hitAnything = true
				closestSoFar = hit.T
				closestHit = hit
			}
		}

		return closestHit, hitAnything
	}

	// Internal: visit the child whose box is entered first, then use the
	// shrunken interval to prune the far child
	near, far := node.Left, node.Right
	nearT, _, nearOk := near.BoundingBox.HitInterval(ray, tMin, tMax)
	farT, _, farOk := far.BoundingBox.HitInterval(ray, tMin, tMax)
	if !nearOk || (farOk && farT < nearT) {
		near, far = far, near
		nearT, nearOk, farT, farOk = farT, farOk, nearT, nearOk
	}

	var closestHit *material.HitRecord
	hitAnything := false
	closestSoFar := tMax

	if nearOk {
		if hit, isHit := hitNode(near, ray, tMin, closestSoFar); isHit {
			hitAnything = true
			closestSoFar = hit.T
			closestHit = hit
		}
	}
	if farOk && farT <= closestSoFar {
		if hit, isHit := hitNode(far, ray, tMin, closestSoFar); isHit {
			hitAnything = true
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, hitAnything
}

// Occluded reports whether any shape intersects the ray within [tMin, tMax].
// Unlike Hit it stops at the first intersection found, which is all shadow
// rays need.
func (bvh *BVH) Occluded(ray core.Ray, tMin, tMax float64) bool {
	return occludedNode(bvh.Root, ray, tMin, tMax)
}

func occludedNode(node *BVHNode, ray core.Ray, tMin, tMax float64) bool {
	if node == nil || !node.BoundingBox.Hit(ray, tMin, tMax) {
		return false
	}

	if node.Shapes != nil {
		for _, shape := range node.Shapes {
			if _, isHit := shape.Hit(ray, tMin, tMax); isHit {
				return true
			}
		}
		return false
	}

	return occludedNode(node.Left, ray, tMin, tMax) || occludedNode(node.Right, ray, tMin, tMax)
}
