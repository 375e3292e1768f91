package scene

import (
	"fmt"
	"math"

	"github.com/raydiancy/go-whitted-raytracer/pkg/core"
	"github.com/raydiancy/go-whitted-raytracer/pkg/geometry"
	"github.com/raydiancy/go-whitted-raytracer/pkg/loaders"
	"github.com/raydiancy/go-whitted-raytracer/pkg/material"
	"github.com/raydiancy/go-whitted-raytracer/pkg/renderer"
)

// NewDefaultScene creates a scene with a ground plane, matte, mirror and
// glass spheres, a triangle and two point lights
func NewDefaultScene(width, height int) (*Scene, error) {
	camera, err := renderer.NewCamera(
		core.NewVec3(0, 2, 8),       // position
		core.NewVec3(0, 0.5, 0),     // look at
		core.NewVec3(0, 1, 0),       // up
		90.0*math.Pi/180.0,          // horizontal fov
		width, height,
	)
	if err != nil {
		return nil, err
	}

	s := &Scene{
		Camera:  camera,
		Ambient: core.White(),
	}

	s.Add(
		geometry.NewPlane(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0),
			material.Matte(core.NewGray(0.5))),
		geometry.NewSphere(core.NewVec3(-2.2, 0, 0), 1.0,
			material.Matte(core.NewColor(0.8, 0.2, 0.2))),
		geometry.NewSphere(core.NewVec3(0, 0, -1), 1.0,
			material.Mirror(0.8, core.NewGray(0.9))),
		geometry.NewSphere(core.NewVec3(2.2, 0, 0), 1.0,
			material.Glass()),
		geometry.NewTriangle(
			core.NewVec3(-1, -1, -3),
			core.NewVec3(3, -1, -3),
			core.NewVec3(1, 2.5, -3),
			material.Matte(core.NewColor(0.2, 0.7, 0.3))),
	)

	s.AddLight(core.NewVec3(-5, 6, 5), core.NewGray(0.9))
	s.AddLight(core.NewVec3(6, 4, 2), core.NewGray(0.4))

	return s, nil
}

// NewMeshScene creates a scene around a triangle mesh loaded from an OBJ file
func NewMeshScene(path string, width, height int) (*Scene, error) {
	data, err := loaders.LoadOBJ(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load mesh scene: %w", err)
	}

	mesh, err := data.Mesh(material.Matte(core.NewColor(0.7, 0.6, 0.4)))
	if err != nil {
		return nil, fmt.Errorf("failed to build mesh: %w", err)
	}

	// Frame the mesh from a distance proportional to its size
	bbox := mesh.BoundingBox()
	center := bbox.Center()
	extent := bbox.Size().Length()
	if extent == 0 {
		extent = 1
	}

	camera, err := renderer.NewCamera(
		center.Add(core.NewVec3(0, 0.4*extent, 1.2*extent)),
		center,
		core.NewVec3(0, 1, 0),
		60.0*math.Pi/180.0,
		width, height,
	)
	if err != nil {
		return nil, err
	}

	s := &Scene{
		Camera:  camera,
		Ambient: core.White(),
	}
	s.Add(
		mesh,
		geometry.NewPlane(core.NewVec3(0, bbox.Min.Y, 0), core.NewVec3(0, 1, 0),
			material.Matte(core.NewGray(0.5))),
	)
	s.AddLight(center.Add(core.NewVec3(-extent, extent, extent)), core.NewGray(0.9))
	s.AddLight(center.Add(core.NewVec3(extent, 0.5*extent, 0)), core.NewGray(0.3))

	return s, nil
}
