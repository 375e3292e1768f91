package scene

import (
	"fmt"

	"github.com/raydiancy/go-whitted-raytracer/pkg/core"
	"github.com/raydiancy/go-whitted-raytracer/pkg/geometry"
	"github.com/raydiancy/go-whitted-raytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering: the camera, the
// object list, the point lights and the ambient light color. After
// Preprocess the scene is immutable for the duration of a render.
type Scene struct {
	Camera  *renderer.Camera
	Shapes  []geometry.Shape
	Lights  []renderer.Light
	Ambient core.Color

	bvh *geometry.BVH
}

// Add appends shapes to the scene
func (s *Scene) Add(shapes ...geometry.Shape) {
	s.Shapes = append(s.Shapes, shapes...)
}

// AddLight appends a point light to the scene
func (s *Scene) AddLight(position core.Vec3, color core.Color) {
	s.Lights = append(s.Lights, renderer.Light{Position: position, Color: color})
}

// Preprocess validates the scene and builds the BVH over its objects.
// Compound shapes (triangle meshes) are flattened so every component
// triangle becomes its own BVH leaf candidate; feeding a whole mesh in as
// one box would defeat the acceleration structure.
func (s *Scene) Preprocess() error {
	if s.Camera == nil {
		return fmt.Errorf("scene has no camera")
	}

	flattened := make([]geometry.Shape, 0, len(s.Shapes))
	for _, shape := range s.Shapes {
		if compound, ok := shape.(geometry.Compound); ok {
			flattened = append(flattened, compound.Triangles()...)
		} else {
			flattened = append(flattened, shape)
		}
	}

	s.bvh = geometry.NewBVH(flattened)
	return nil
}

// GetCamera implements renderer.Scene
func (s *Scene) GetCamera() *renderer.Camera {
	return s.Camera
}

// GetBVH implements renderer.Scene. Preprocess must have been called.
func (s *Scene) GetBVH() *geometry.BVH {
	return s.bvh
}

// GetLights implements renderer.Scene
func (s *Scene) GetLights() []renderer.Light {
	return s.Lights
}

// GetAmbient implements renderer.Scene
func (s *Scene) GetAmbient() core.Color {
	return s.Ambient
}
