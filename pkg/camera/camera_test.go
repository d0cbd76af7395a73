package camera

import (
	"testing"

	"prism/pkg/geom"
)

func TestOrthoCenterRayPointsForward(t *testing.T) {
	c := NewOrtho(geom.Vec3{X: 0, Y: 0, Z: 10}, geom.Vec3{X: 0, Y: 0, Z: 0}, geom.Vec3{X: 0, Y: 1, Z: 0}, 6, 6, Grid{})
	ray := c.PrimaryRay(400, 300, 0, 0, 800, 600)
	if ray.Direction.Z > -0.99 {
		t.Errorf("expected ray pointing toward -Z, got %v", ray.Direction)
	}
	if ray.Origin.X < -0.01 || ray.Origin.X > 0.01 {
		t.Errorf("expected center pixel ray near camera axis, got origin %v", ray.Origin)
	}
}

func TestPerspectiveRaysDivergeAtFOV(t *testing.T) {
	c := NewPerspective(geom.Vec3{X: 0, Y: 0, Z: 10}, geom.Vec3{X: 0, Y: 0, Z: 0}, geom.Vec3{X: 0, Y: 1, Z: 0}, 800, 600, 90)
	left := c.PrimaryRay(0, 300, 0, 0, 800, 600)
	right := c.PrimaryRay(799, 300, 0, 0, 800, 600)
	if left.Direction.X >= 0 {
		t.Errorf("expected leftmost ray to point toward -X, got %v", left.Direction)
	}
	if right.Direction.X <= 0 {
		t.Errorf("expected rightmost ray to point toward +X, got %v", right.Direction)
	}
}

func TestPerspectiveOriginIsCameraPosition(t *testing.T) {
	pos := geom.Vec3{X: 1, Y: 2, Z: 3}
	c := NewPerspective(pos, geom.Vec3{X: 0, Y: 0, Z: 0}, geom.Vec3{X: 0, Y: 1, Z: 0}, 800, 600, 60)
	ray := c.PrimaryRay(400, 300, 0, 0, 800, 600)
	if ray.Origin != pos {
		t.Errorf("expected perspective ray origin == camera position, got %v", ray.Origin)
	}
}
