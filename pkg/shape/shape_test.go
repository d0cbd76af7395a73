package shape

import (
	"testing"

	"prism/pkg/geom"
	"prism/pkg/material"
)

func TestSphereIntersectFrontHit(t *testing.T) {
	s := Sphere{Center: geom.Vec3{0, 0, 0}, Radius: 1, Material: material.Material{Color: geom.White}}
	ray := geom.Ray{Origin: geom.Vec3{0, 0, -5}, Direction: geom.Vec3{0, 0, 1}}
	hit, ok := s.Intersect(ray, geom.Epsilon, 1e9)
	if !ok {
		t.Fatalf("expected hit")
	}
	if hit.T < 3.99 || hit.T > 4.01 {
		t.Errorf("expected t ~4, got %f", hit.T)
	}
	if hit.Normal.Z > -0.99 {
		t.Errorf("expected normal facing ray origin, got %v", hit.Normal)
	}
}

func TestSphereIntersectMiss(t *testing.T) {
	s := Sphere{Center: geom.Vec3{10, 10, 10}, Radius: 1}
	ray := geom.Ray{Origin: geom.Vec3{0, 0, -5}, Direction: geom.Vec3{0, 0, 1}}
	if _, ok := s.Intersect(ray, geom.Epsilon, 1e9); ok {
		t.Errorf("expected miss")
	}
}

func TestPlaneIntersect(t *testing.T) {
	p := Plane{Point: geom.Vec3{0, 0, 0}, Normal: geom.Normal{0, 1, 0}, Material: material.Material{Color: geom.White}}
	ray := geom.Ray{Origin: geom.Vec3{0, 5, 0}, Direction: geom.Vec3{0, -1, 0}}
	hit, ok := p.Intersect(ray, geom.Epsilon, 1e9)
	if !ok {
		t.Fatalf("expected hit")
	}
	if hit.T < 4.99 || hit.T > 5.01 {
		t.Errorf("expected t ~5, got %f", hit.T)
	}
}

func TestPlaneIntersectParallel(t *testing.T) {
	p := Plane{Point: geom.Vec3{0, 0, 0}, Normal: geom.Normal{0, 1, 0}}
	ray := geom.Ray{Origin: geom.Vec3{0, 5, 0}, Direction: geom.Vec3{1, 0, 0}}
	if _, ok := p.Intersect(ray, geom.Epsilon, 1e9); ok {
		t.Errorf("expected miss for parallel ray")
	}
}

func TestCubeIntersectFromOutside(t *testing.T) {
	c := Cube{Center: geom.Vec3{0, 0, 0}, Size: geom.Vec3{2, 2, 2}, Material: material.Material{Color: geom.White}}
	ray := geom.Ray{Origin: geom.Vec3{0, 0, -5}, Direction: geom.Vec3{0, 0, 1}}
	hit, ok := c.Intersect(ray, geom.Epsilon, 1e9)
	if !ok {
		t.Fatalf("expected hit")
	}
	if hit.T < 3.99 || hit.T > 4.01 {
		t.Errorf("expected t ~4, got %f", hit.T)
	}
	if hit.Normal != (geom.Normal{0, 0, -1}) {
		t.Errorf("expected -Z face normal, got %v", hit.Normal)
	}
}

func TestCubeIntersectMiss(t *testing.T) {
	c := Cube{Center: geom.Vec3{20, 20, 20}, Size: geom.Vec3{2, 2, 2}}
	ray := geom.Ray{Origin: geom.Vec3{0, 0, -5}, Direction: geom.Vec3{0, 0, 1}}
	if _, ok := c.Intersect(ray, geom.Epsilon, 1e9); ok {
		t.Errorf("expected miss")
	}
}

func TestMaterialGridEffective(t *testing.T) {
	m := material.Material{
		Color: geom.Color{R: 1},
		Texture: material.Texture{
			Kind:      material.GridTexture,
			LineColor: geom.Color{B: 1},
			LineWidth: 0.1,
			CellSize:  1.0,
		},
	}
	onLine := m.Effective(0.02, 0.5)
	if onLine.Color != (geom.Color{B: 1}) {
		t.Errorf("expected line color near grid line, got %v", onLine.Color)
	}
	offLine := m.Effective(0.5, 0.5)
	if offLine.Color != m.Color {
		t.Errorf("expected base color off grid line, got %v", offLine.Color)
	}
}

func TestMaterialCheckerboardEffective(t *testing.T) {
	a := material.Material{Color: geom.Color{R: 1}}
	b := material.Material{Color: geom.Color{B: 1}}
	m := material.Material{Texture: material.Texture{Kind: material.CheckerboardTexture, MaterialA: &a, MaterialB: &b}}

	if got := m.Effective(0.5, 0.5); got.Color != a.Color {
		t.Errorf("expected material A at (0,0) cell, got %v", got.Color)
	}
	if got := m.Effective(1.5, 0.5); got.Color != b.Color {
		t.Errorf("expected material B at (1,0) cell, got %v", got.Color)
	}
}
