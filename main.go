package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/raydiancy/go-whitted-raytracer/pkg/renderer"
	"github.com/raydiancy/go-whitted-raytracer/pkg/scene"
)

func main() {
	sceneType := flag.String("scene", "default", "Scene type: 'default' or 'mesh'")
	meshPath := flag.String("mesh", "", "OBJ file for the mesh scene")
	width := flag.Int("width", 800, "Image width in pixels")
	height := flag.Int("height", 450, "Image height in pixels")
	maxDepth := flag.Int("depth", 5, "Maximum reflection/refraction depth")
	output := flag.String("output", "output/render.png", "Output PNG path")
	flag.Parse()

	selectedScene, err := createScene(*sceneType, *meshPath, *width, *height)
	if err != nil {
		log.Fatalf("failed to build scene: %v", err)
	}

	if err := selectedScene.Preprocess(); err != nil {
		log.Fatalf("failed to preprocess scene: %v", err)
	}

	config := renderer.DefaultConfig()
	config.MaxDepth = *maxDepth

	rt := renderer.NewRaytracer(selectedScene, config, log.Default())
	fb := rt.Render()

	if err := writePNG(*output, fb); err != nil {
		log.Fatalf("failed to write image: %v", err)
	}
	fmt.Printf("wrote %s\n", *output)
}

// createScene builds the scene selected on the command line
func createScene(sceneType, meshPath string, width, height int) (*scene.Scene, error) {
	switch sceneType {
	case "default":
		return scene.NewDefaultScene(width, height)
	case "mesh":
		if meshPath == "" {
			return nil, fmt.Errorf("the mesh scene requires -mesh <file.obj>")
		}
		return scene.NewMeshScene(meshPath, width, height)
	default:
		return nil, fmt.Errorf("unknown scene type: %s", sceneType)
	}
}

// writePNG encodes the framebuffer to a PNG file, creating the directory if needed
func writePNG(path string, fb *renderer.Framebuffer) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, fb.ToImage()); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}
