package renderer

import (
	"fmt"
	"math"

	"github.com/raydiancy/go-whitted-raytracer/pkg/core"
)

// Camera generates primary rays for rendering. The orthonormal basis is
// derived once at construction and reused for every pixel.
type Camera struct {
	Position      core.Vec3
	LookAt        core.Vec3
	Up            core.Vec3
	HorizontalFOV float64 // Horizontal field of view in radians, in (0, π)
	AspectRatio   float64 // width / height
	Width         int     // Image width in pixels
	Height        int     // Image height in pixels

	forward core.Vec3 // Unit view direction
	right   core.Vec3 // Scaled by tan(fov/2)
	up      core.Vec3 // Scaled by tan(fov/2) / aspect
}

// NewCamera creates a camera and derives its basis vectors
func NewCamera(position, lookAt, up core.Vec3, horizontalFOV float64, width, height int) (*Camera, error) {
	c := &Camera{
		Position:      position,
		LookAt:        lookAt,
		Up:            up,
		HorizontalFOV: horizontalFOV,
		AspectRatio:   float64(width) / float64(height),
		Width:         width,
		Height:        height,
	}
	if err := c.setup(); err != nil {
		return nil, err
	}
	return c, nil
}

// setup validates the parameters and computes the camera basis
func (c *Camera) setup() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid image dimensions %dx%d", c.Width, c.Height)
	}
	if c.HorizontalFOV <= 0 || c.HorizontalFOV >= math.Pi {
		return fmt.Errorf("horizontal fov %v out of range (0, π)", c.HorizontalFOV)
	}

	view := c.LookAt.Subtract(c.Position)
	if view.LengthSquared() == 0 {
		return fmt.Errorf("camera position and look-at point coincide")
	}
	c.forward = view.Normalize()

	right := c.forward.Cross(c.Up)
	if right.LengthSquared() == 0 {
		return fmt.Errorf("up vector is parallel to the view direction")
	}

	// Half the film width at unit distance from the eye
	halfWidth := math.Tan(c.HorizontalFOV / 2.0)
	c.right = right.Normalize().Multiply(halfWidth)
	c.up = c.right.Cross(c.forward).Normalize().Multiply(halfWidth / c.AspectRatio)

	return nil
}

// GetRay generates the primary ray through the center of pixel (px, py).
// Pure function of its arguments and the immutable camera basis.
func (c *Camera) GetRay(px, py int) core.Ray {
	// Map pixel centers to film coordinates in [-0.5, 0.5], y pointing up
	x := (float64(px)+0.5)/float64(c.Width) - 0.5
	y := 0.5 - (float64(py)+0.5)/float64(c.Height)

	direction := c.forward.
		Add(c.right.Multiply(x)).
		Add(c.up.Multiply(y))

	return core.NewRay(c.Position, direction)
}
