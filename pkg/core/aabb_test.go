package core

import (
	"math"
	"testing"
)

func TestNewAABB_NormalizesCorners(t *testing.T) {
	aabb := NewAABB(NewVec3(1, -2, 3), NewVec3(-1, 2, -3))
	if aabb.Min != NewVec3(-1, -2, -3) || aabb.Max != NewVec3(1, 2, 3) {
		t.Errorf("Expected normalized corners, got min=%v max=%v", aabb.Min, aabb.Max)
	}
	if !aabb.IsValid() {
		t.Error("Expected valid AABB")
	}
}

func TestAABB_HitInterval(t *testing.T) {
	box := NewAABB(NewVec3(0, 0, 0), NewVec3(1, 1, 1))

	tests := []struct {
		name       string
		ray        Ray
		expectHit  bool
		expectedT0 float64
		expectedT1 float64
	}{
		{
			name:       "straight through",
			ray:        NewRay(NewVec3(-1, 0.5, 0.5), NewVec3(1, 0, 0)),
			expectHit:  true,
			expectedT0: 1,
			expectedT1: 2,
		},
		{
			name:       "parallel inside slab",
			ray:        NewRay(NewVec3(0.5, -1, 0.5), NewVec3(0, 1, 0)),
			expectHit:  true,
			expectedT0: 1,
			expectedT1: 2,
		},
		{
			name:      "parallel outside slab",
			ray:       NewRay(NewVec3(2, -1, 0.5), NewVec3(0, 1, 0)),
			expectHit: false,
		},
		{
			name:      "points away",
			ray:       NewRay(NewVec3(-1, 0.5, 0.5), NewVec3(-1, 0, 0)),
			expectHit: false,
		},
		{
			name:      "misses corner",
			ray:       NewRay(NewVec3(-1, 2, 0.5), NewVec3(1, 0, 0)),
			expectHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t0, t1, ok := box.HitInterval(tt.ray, 0.001, 1000.0)
			if ok != tt.expectHit {
				t.Fatalf("Expected hit=%t, got %t", tt.expectHit, ok)
			}
			if !ok {
				return
			}
			if math.Abs(t0-tt.expectedT0) > 1e-9 || math.Abs(t1-tt.expectedT1) > 1e-9 {
				t.Errorf("Expected interval [%f, %f], got [%f, %f]", tt.expectedT0, tt.expectedT1, t0, t1)
			}
		})
	}
}

func TestAABB_HitDegenerateBox(t *testing.T) {
	// A zero-extent box must still answer intersection queries without
	// division faults
	point := NewVec3(1, 1, 1)
	box := NewAABB(point, point)

	hitting := NewRay(NewVec3(1, 1, 0), NewVec3(0, 0, 1))
	if !box.Hit(hitting, 0.001, 1000.0) {
		t.Error("Expected ray through the degenerate box to hit")
	}

	missing := NewRay(NewVec3(0, 0, 0), NewVec3(0, 0, 1))
	if box.Hit(missing, 0.001, 1000.0) {
		t.Error("Expected ray beside the degenerate box to miss")
	}
}

func TestAABB_HitRespectsRange(t *testing.T) {
	box := NewAABB(NewVec3(0, 0, 0), NewVec3(1, 1, 1))
	ray := NewRay(NewVec3(-1, 0.5, 0.5), NewVec3(1, 0, 0))

	if box.Hit(ray, 0.001, 0.5) {
		t.Error("Expected miss with tMax before the box")
	}
	if box.Hit(ray, 3.0, 1000.0) {
		t.Error("Expected miss with tMin past the box")
	}
}

func TestAABB_Union(t *testing.T) {
	a := NewAABB(NewVec3(0, 0, 0), NewVec3(1, 1, 1))
	b := NewAABB(NewVec3(-1, 0.5, 0), NewVec3(0.5, 2, 3))

	union := a.Union(b)
	if union.Min != NewVec3(-1, 0, 0) || union.Max != NewVec3(1, 2, 3) {
		t.Errorf("Unexpected union min=%v max=%v", union.Min, union.Max)
	}
	if !union.Contains(a) || !union.Contains(b) {
		t.Error("Expected union to contain both inputs")
	}
}

func TestAABB_LongestAxis(t *testing.T) {
	tests := []struct {
		name     string
		box      AABB
		expected int
	}{
		{"x longest", NewAABB(NewVec3(0, 0, 0), NewVec3(5, 1, 1)), 0},
		{"y longest", NewAABB(NewVec3(0, 0, 0), NewVec3(1, 5, 1)), 1},
		{"z longest", NewAABB(NewVec3(0, 0, 0), NewVec3(1, 1, 5)), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.box.LongestAxis(); got != tt.expected {
				t.Errorf("Expected axis %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestNewAABBFromPoints(t *testing.T) {
	box := NewAABBFromPoints(NewVec3(1, 5, -2), NewVec3(-3, 0, 4), NewVec3(2, 1, 0))
	if box.Min != NewVec3(-3, 0, -2) || box.Max != NewVec3(2, 5, 4) {
		t.Errorf("Unexpected bounds min=%v max=%v", box.Min, box.Max)
	}

	empty := NewAABBFromPoints()
	if empty != (AABB{}) {
		t.Errorf("Expected zero AABB for no points, got %+v", empty)
	}
}
