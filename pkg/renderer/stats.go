package renderer

import "time"

// RenderStats collects counters for a single render
type RenderStats struct {
	PrimaryRays   int           // Rays generated by the camera
	ShadowRays    int           // Occlusion queries toward lights
	SecondaryRays int           // Reflection and refraction rays
	Duration      time.Duration // Wall time of the render
}

// TotalRays returns the total number of rays traced
func (s RenderStats) TotalRays() int {
	return s.PrimaryRays + s.ShadowRays + s.SecondaryRays
}
