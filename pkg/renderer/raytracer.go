package renderer

import (
	"math"
	"time"

	"github.com/raydiancy/go-whitted-raytracer/pkg/core"
	"github.com/raydiancy/go-whitted-raytracer/pkg/geometry"
	"github.com/raydiancy/go-whitted-raytracer/pkg/material"
)

// Light is a point light source
type Light struct {
	Position core.Vec3
	Color    core.Color
}

// Scene provides the immutable inputs of a render. Declared here to avoid a
// circular import with the scene package.
type Scene interface {
	GetCamera() *Camera
	GetBVH() *geometry.BVH
	GetLights() []Light
	GetAmbient() core.Color
}

// Config contains the rendering configuration
type Config struct {
	// MaxDepth bounds the reflection/refraction recursion. 0 disables
	// secondary rays entirely.
	MaxDepth int
	// Epsilon is the minimum ray parameter accepted by intersection tests
	// and the offset applied to secondary ray origins, guarding against
	// self-intersection ("shadow acne").
	Epsilon float64
	// Background is returned for rays that escape the scene
	Background core.AlphaColor
	// IntensityThreshold stops recursion once a branch's contribution to
	// the pixel falls below it, regardless of remaining depth
	IntensityThreshold float64
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		MaxDepth:           5,
		Epsilon:            1e-4,
		Background:         core.Transparent(),
		IntensityThreshold: 1.0 / 256.0,
	}
}

// Raytracer renders a scene by recursive ray tracing: Phong local
// illumination with shadow rays, plus mirror reflection and Fresnel-weighted
// refraction up to a bounded depth.
type Raytracer struct {
	scene  Scene
	config Config
	logger core.Logger
	stats  RenderStats
}

// NewRaytracer creates a raytracer for the given scene. A nil logger
// disables progress output.
func NewRaytracer(scene Scene, config Config, logger core.Logger) *Raytracer {
	return &Raytracer{
		scene:  scene,
		config: config,
		logger: logger,
	}
}

// Stats returns the counters of the last render
func (rt *Raytracer) Stats() RenderStats {
	return rt.stats
}

// Render traces one primary ray per pixel and returns the filled
// framebuffer. Each pixel is a pure computation over the immutable scene
// and BVH, so pixels could be rendered in any order or concurrently.
func (rt *Raytracer) Render() *Framebuffer {
	camera := rt.scene.GetCamera()
	fb := NewFramebuffer(camera.Width, camera.Height)

	rt.stats = RenderStats{}
	start := time.Now()

	for y := 0; y < camera.Height; y++ {
		for x := 0; x < camera.Width; x++ {
			ray := camera.GetRay(x, y)
			rt.stats.PrimaryRays++
			fb.Set(x, y, rt.traceRay(ray, 1.0, rt.config.MaxDepth))
		}
	}

	rt.stats.Duration = time.Since(start)
	if rt.logger != nil {
		rt.logger.Printf("rendered %dx%d in %v (%d primary, %d shadow, %d secondary rays)",
			camera.Width, camera.Height, rt.stats.Duration,
			rt.stats.PrimaryRays, rt.stats.ShadowRays, rt.stats.SecondaryRays)
	}

	return fb
}

// traceRay returns the color seen along the ray. intensity is the weight
// this ray's result will carry in the final pixel; once it falls below the
// configured threshold, deeper branches are cut off. depth is the number of
// reflection/refraction bounces still allowed.
func (rt *Raytracer) traceRay(ray core.Ray, intensity float64, depth int) core.AlphaColor {
	hit, isHit := rt.scene.GetBVH().Hit(ray, rt.config.Epsilon, math.Inf(1))
	if !isHit {
		return rt.config.Background
	}
	return rt.shadeLocal(ray, hit).Add(rt.shadeRecursive(ray, hit, intensity, depth))
}

// shadeLocal computes the Phong illumination at the hit point: the ambient
// term plus, for every unoccluded light, a Lambert diffuse term and a
// Blinn-Phong specular term.
func (rt *Raytracer) shadeLocal(ray core.Ray, hit *material.HitRecord) core.AlphaColor {
	mat := hit.Material
	color := rt.scene.GetAmbient().Mul(mat.Color).Scale(mat.Ambient)

	// Secondary rays start a little off the surface, along the shading
	// normal, so the surface cannot shadow or reflect itself
	offsetPoint := hit.Point.Add(hit.Normal.Multiply(rt.config.Epsilon))
	viewDir := ray.Direction.Negate()

	for _, light := range rt.scene.GetLights() {
		lightVec := light.Position.Subtract(offsetPoint)
		lightDistance := lightVec.Length()
		if lightDistance == 0 {
			continue
		}
		lightDir := lightVec.Multiply(1.0 / lightDistance)

		shadowRay := core.Ray{Origin: offsetPoint, Direction: lightDir}
		rt.stats.ShadowRays++
		// Hits beyond the light do not occlude it
		if rt.scene.GetBVH().Occluded(shadowRay, rt.config.Epsilon, lightDistance) {
			continue
		}

		lambert := mat.Diffuse * math.Max(0, lightDir.Dot(hit.Normal))
		color = color.Add(light.Color.Mul(mat.Color).Scale(lambert))

		specular := mat.Specular * material.BlinnSpecular(viewDir, lightDir, hit.Normal, mat.Shininess)
		color = color.Add(light.Color.Scale(specular))
	}

	return core.Opaque(color)
}

// shadeRecursive adds the mirror reflection and refraction contributions,
// spawning recursive rays while depth and intensity allow.
func (rt *Raytracer) shadeRecursive(ray core.Ray, hit *material.HitRecord, intensity float64, depth int) core.AlphaColor {
	color := core.AlphaColor{}
	if depth <= 0 {
		return color
	}
	mat := hit.Material

	if w := mat.Reflectance; w > 0 && w*intensity > rt.config.IntensityThreshold {
		reflected := rt.spawn(hit.Point, material.Reflect(ray.Direction, hit.Normal), hit.Normal)
		color = color.Add(rt.traceRay(reflected, intensity*w, depth-1).Scale(w))
	}

	if mat.Transparent() && mat.Refractivity*intensity > rt.config.IntensityThreshold {
		color = color.Add(rt.refract(ray, hit, intensity, depth))
	}

	return color
}

// refract traces the transmitted ray through a transparent surface, or the
// reflected ray instead under total internal reflection. Outside TIR the
// energy splits between reflection and transmission by the Fresnel factor.
func (rt *Raytracer) refract(ray core.Ray, hit *material.HitRecord, intensity float64, depth int) core.AlphaColor {
	mat := hit.Material

	// hit.Normal already opposes the ray; FrontFace distinguishes entering
	// the medium from exiting it, which flips the index ratio
	ratio := mat.RefractionIndex
	if !hit.FrontFace {
		ratio = 1.0 / mat.RefractionIndex
	}

	reflected := rt.spawn(hit.Point, material.Reflect(ray.Direction, hit.Normal), hit.Normal)

	transmittedDir, ok := material.Refract(ray.Direction, hit.Normal, ratio)
	if !ok {
		// Total internal reflection: everything reflects
		w := mat.Refractivity
		return rt.traceRay(reflected, intensity*w, depth-1).Scale(w)
	}

	fresnel := material.Fresnel(ray.Direction, hit.Normal, ratio)
	reflectedWeight := mat.Refractivity * fresnel
	transmittedWeight := mat.Refractivity * (1.0 - fresnel)

	// The transmitted ray continues on the far side of the surface
	transmitted := rt.spawn(hit.Point, transmittedDir, hit.Normal.Negate())

	color := rt.traceRay(reflected, intensity*reflectedWeight, depth-1).Scale(reflectedWeight)
	return color.Add(rt.traceRay(transmitted, intensity*transmittedWeight, depth-1).Scale(transmittedWeight))
}

// spawn builds a secondary ray whose origin is offset from the surface
// along the given normal to avoid immediate self-intersection
func (rt *Raytracer) spawn(point, direction, offsetNormal core.Vec3) core.Ray {
	rt.stats.SecondaryRays++
	return core.Ray{
		Origin:    point.Add(offsetNormal.Multiply(rt.config.Epsilon)),
		Direction: direction,
	}
}
