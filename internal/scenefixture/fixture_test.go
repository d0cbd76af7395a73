package scenefixture

import (
	"testing"

	"prism/pkg/mesh"
	"prism/pkg/shape"
)

func TestRedSphereHasOneShapeAndLight(t *testing.T) {
	s := RedSphere()
	if len(s.Shapes) != 1 {
		t.Errorf("expected 1 shape, got %d", len(s.Shapes))
	}
	if len(s.Lights) != 1 {
		t.Errorf("expected 1 light, got %d", len(s.Lights))
	}
}

func TestReflectionCutoffHasReflectiveSphere(t *testing.T) {
	s := ReflectionCutoff()
	if len(s.Shapes) != 2 {
		t.Fatalf("expected 2 shapes, got %d", len(s.Shapes))
	}
	mirror, ok := s.Shapes[1].(shape.Sphere)
	if !ok || mirror.Material.Reflectivity <= 0 {
		t.Errorf("expected second shape to be a reflective sphere, got %+v", s.Shapes[1])
	}
}

func TestLargeMeshProducesManyTriangles(t *testing.T) {
	s, err := LargeMesh(4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Shapes) != 1 {
		t.Fatalf("expected a single mesh shape, got %d", len(s.Shapes))
	}
	m, ok := s.Shapes[0].(*mesh.Mesh)
	if !ok {
		t.Fatalf("expected *mesh.Mesh, got %T", s.Shapes[0])
	}
	if len(m.Triangles) != 20*256 {
		t.Errorf("expected four subdivisions to yield 5120 triangles, got %d", len(m.Triangles))
	}
}

func TestIcosphereSubdivisionGrowsFaceCount(t *testing.T) {
	base := icosphereTriangles(0)
	if len(base) != 20 {
		t.Errorf("expected base icosahedron to have 20 faces, got %d", len(base))
	}
	once := icosphereTriangles(1)
	if len(once) != 80 {
		t.Errorf("expected one subdivision to yield 80 faces, got %d", len(once))
	}
	twice := icosphereTriangles(2)
	if len(twice) != 320 {
		t.Errorf("expected two subdivisions to yield 320 faces, got %d", len(twice))
	}
}
