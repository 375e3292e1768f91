package geometry

import (
	"fmt"

	"github.com/raydiancy/go-whitted-raytracer/pkg/core"
	"github.com/raydiancy/go-whitted-raytracer/pkg/material"
)

// TriangleMesh represents an indexed collection of triangles. The mesh owns
// a single shared vertex buffer; each triangle is a lightweight view that
// references it by index, so vertex data is never duplicated. For good
// acceleration the scene registers the individual triangles with its BVH
// instead of treating the whole mesh as one box (see Compound).
type TriangleMesh struct {
	vertices  []core.Vec3
	normals   []core.Vec3 // Per-vertex normals, optional
	triangles []Shape
	bvh       *BVH // For standalone intersection queries
	bbox      core.AABB
	material  *material.Material
}

// MeshOptions contains optional parameters for triangle mesh creation
type MeshOptions struct {
	// VertexNormals holds per-vertex shading normals. When present, hits
	// interpolate them barycentrically instead of using face normals.
	VertexNormals []core.Vec3
	// NormalFaces maps each face corner to an index into VertexNormals.
	// When nil, the position indices are reused.
	NormalFaces []int
}

// NewTriangleMesh creates a mesh from a vertex buffer and face index list
// (three indices per triangle). Malformed index data is a construction-time
// error; the intersection code assumes validated input.
func NewTriangleMesh(vertices []core.Vec3, faces []int, mat *material.Material, options *MeshOptions) (*TriangleMesh, error) {
	if len(faces)%3 != 0 {
		return nil, fmt.Errorf("face index count %d is not a multiple of 3", len(faces))
	}

	mesh := &TriangleMesh{
		vertices: vertices,
		material: mat,
	}

	var normalFaces []int
	if options != nil && options.VertexNormals != nil {
		mesh.normals = options.VertexNormals
		normalFaces = options.NormalFaces
		if normalFaces == nil {
			normalFaces = faces
		}
		if len(normalFaces) != len(faces) {
			return nil, fmt.Errorf("normal index count %d does not match face index count %d", len(normalFaces), len(faces))
		}
	}

	numTriangles := len(faces) / 3
	mesh.triangles = make([]Shape, 0, numTriangles)

	for i := 0; i < numTriangles; i++ {
		i0, i1, i2 := faces[i*3], faces[i*3+1], faces[i*3+2]
		if err := checkIndex(len(vertices), i0, i1, i2); err != nil {
			return nil, fmt.Errorf("face %d: %w", i, err)
		}

		tri := &meshTriangle{
			mesh: mesh,
			i0:   i0, i1: i1, i2: i2,
			n0: -1, n1: -1, n2: -1,
		}
		if mesh.normals != nil {
			n0, n1, n2 := normalFaces[i*3], normalFaces[i*3+1], normalFaces[i*3+2]
			if err := checkIndex(len(mesh.normals), n0, n1, n2); err != nil {
				return nil, fmt.Errorf("face %d normals: %w", i, err)
			}
			tri.n0, tri.n1, tri.n2 = n0, n1, n2
		}

		v0, v1, v2 := vertices[i0], vertices[i1], vertices[i2]
		tri.faceNormal = v1.Subtract(v0).Cross(v2.Subtract(v0)).Normalize()
		tri.bbox = core.NewAABBFromPoints(v0, v1, v2)

		mesh.triangles = append(mesh.triangles, tri)
	}

	mesh.bvh = NewBVH(mesh.triangles)
	if mesh.bvh.Root != nil {
		mesh.bbox = mesh.bvh.Root.BoundingBox
	}

	return mesh, nil
}

// checkIndex verifies that all indices address a buffer of length n
func checkIndex(n int, indices ...int) error {
	for _, idx := range indices {
		if idx < 0 || idx >= n {
			return fmt.Errorf("index %d out of range [0, %d)", idx, n)
		}
	}
	return nil
}

// Hit tests if a ray intersects any triangle in the mesh
func (tm *TriangleMesh) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	return tm.bvh.Hit(ray, tMin, tMax)
}

// BoundingBox returns the axis-aligned bounding box for the entire mesh
func (tm *TriangleMesh) BoundingBox() core.AABB {
	return tm.bbox
}

// Triangles returns the component triangles for flattening into a scene BVH
func (tm *TriangleMesh) Triangles() []Shape {
	return tm.triangles
}

// TriangleCount returns the number of triangles in the mesh
func (tm *TriangleMesh) TriangleCount() int {
	return len(tm.triangles)
}

// meshTriangle is a view of one triangle of a mesh. It stores only indices
// into the mesh's shared buffers plus cached derived data.
type meshTriangle struct {
	mesh       *TriangleMesh
	i0, i1, i2 int // Vertex indices
	n0, n1, n2 int // Normal indices, -1 when the mesh has no normals
	faceNormal core.Vec3
	bbox       core.AABB
}

// Hit tests if a ray intersects the triangle
func (mt *meshTriangle) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	verts := mt.mesh.vertices
	u, v, t, ok := intersectTriangle(verts[mt.i0], verts[mt.i1], verts[mt.i2], ray, tMin, tMax)
	if !ok {
		return nil, false
	}

	hitRecord := &material.HitRecord{
		T:        t,
		Point:    ray.At(t),
		Material: mt.mesh.material,
	}
	hitRecord.SetFaceNormal(ray, mt.shadingNormal(u, v))

	return hitRecord, true
}

// shadingNormal interpolates vertex normals when the mesh carries them
func (mt *meshTriangle) shadingNormal(u, v float64) core.Vec3 {
	if mt.n0 < 0 {
		return mt.faceNormal
	}
	normals := mt.mesh.normals
	w := 1.0 - u - v
	return normals[mt.n0].Multiply(w).
		Add(normals[mt.n1].Multiply(u)).
		Add(normals[mt.n2].Multiply(v)).
		Normalize()
}

// BoundingBox returns the triangle's bounding box
func (mt *meshTriangle) BoundingBox() core.AABB {
	return mt.bbox
}
