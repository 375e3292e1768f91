package loaders

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/raydiancy/go-whitted-raytracer/pkg/core"
	"github.com/raydiancy/go-whitted-raytracer/pkg/geometry"
	"github.com/raydiancy/go-whitted-raytracer/pkg/material"
)

// OBJData contains the raw triangle data loaded from an OBJ file
type OBJData struct {
	Vertices    []core.Vec3 // Vertex positions
	Normals     []core.Vec3 // Vertex normals - empty if not present
	Faces       []int       // Triangle vertex indices, 3 per triangle, 0-based
	NormalFaces []int       // Normal index per face corner - empty unless every corner has one
}

// LoadOBJ loads a Wavefront OBJ file and returns its triangle data.
// Supported statements: v, vn and f with the "v", "v/vt", "v//vn" and
// "v/vt/vn" corner forms; faces with more than three corners are
// triangulated as a fan. Everything else is ignored.
func LoadOBJ(filename string) (*OBJData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open OBJ file: %w", err)
	}
	defer file.Close()

	data := &OBJData{}
	missingNormals := false
	lineNum := 0

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lineNum++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			vertex, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: vertex: %w", lineNum, err)
			}
			data.Vertices = append(data.Vertices, vertex)

		case "vn":
			normal, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: normal: %w", lineNum, err)
			}
			data.Normals = append(data.Normals, normal)

		case "f":
			corners := fields[1:]
			if len(corners) < 3 {
				return nil, fmt.Errorf("line %d: face has %d corners, need at least 3", lineNum, len(corners))
			}
			indices := make([]int, len(corners))
			normals := make([]int, len(corners))
			for i, corner := range corners {
				vi, ni, err := parseCorner(corner)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNum, err)
				}
				indices[i] = vi
				normals[i] = ni
				if ni < 0 {
					missingNormals = true
				}
			}
			// Fan triangulation for quads and larger polygons
			for i := 1; i+1 < len(indices); i++ {
				data.Faces = append(data.Faces, indices[0], indices[i], indices[i+1])
				data.NormalFaces = append(data.NormalFaces, normals[0], normals[i], normals[i+1])
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read OBJ file: %w", err)
	}

	// Interpolated shading needs a normal at every corner; a partial set
	// would silently mix face and vertex normals, so drop them instead
	if missingNormals || len(data.Normals) == 0 {
		data.NormalFaces = nil
	}

	return data, nil
}

// Mesh builds a triangle mesh from the loaded data with the given material.
// Out-of-range indices surface here as construction errors.
func (d *OBJData) Mesh(mat *material.Material) (*geometry.TriangleMesh, error) {
	var options *geometry.MeshOptions
	if d.NormalFaces != nil {
		options = &geometry.MeshOptions{
			VertexNormals: d.Normals,
			NormalFaces:   d.NormalFaces,
		}
	}
	return geometry.NewTriangleMesh(d.Vertices, d.Faces, mat, options)
}

// parseVec3 parses three float fields
func parseVec3(fields []string) (core.Vec3, error) {
	if len(fields) < 3 {
		return core.Vec3{}, fmt.Errorf("expected 3 coordinates, got %d", len(fields))
	}
	var coords [3]float64
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return core.Vec3{}, fmt.Errorf("invalid coordinate %q: %w", fields[i], err)
		}
		coords[i] = v
	}
	return core.NewVec3(coords[0], coords[1], coords[2]), nil
}

// parseCorner parses one face corner ("7", "7/1", "7//3" or "7/1/3") and
// returns the 0-based vertex index plus the 0-based normal index, or -1
// when the corner carries no normal
func parseCorner(corner string) (vertexIdx, normalIdx int, err error) {
	parts := strings.Split(corner, "/")

	vi, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid vertex index %q: %w", parts[0], err)
	}

	normalIdx = -1
	if len(parts) == 3 && parts[2] != "" {
		ni, err := strconv.Atoi(parts[2])
		if err != nil {
			return 0, 0, fmt.Errorf("invalid normal index %q: %w", parts[2], err)
		}
		normalIdx = ni - 1
	}

	// OBJ indices are 1-based
	return vi - 1, normalIdx, nil
}
