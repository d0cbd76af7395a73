package scene

import (
	"testing"

	"prism/pkg/mesh"
)

const minimalSceneJSON = `{
  "camera": {
    "kind": "perspective",
    "position": {"X": 0, "Y": 0, "Z": 10},
    "target": {"X": 0, "Y": 0, "Z": 0},
    "up": {"X": 0, "Y": 1, "Z": 0},
    "width": 800,
    "height": 600,
    "fov_degrees": 60
  },
  "objects": [
    {
      "kind": "sphere",
      "center": {"X": 0, "Y": 0, "Z": 0},
      "radius": 1,
      "material": {"color": "#ff0000", "ambient": 0.1, "diffuse": 0.7, "specular": 0.3, "shininess": 32}
    }
  ],
  "lights": [
    {"position": {"X": 5, "Y": 5, "Z": 5}, "color": "#ffffff", "intensity": 1.0}
  ],
  "scene_settings": {
    "ambient_color": "#ffffff",
    "ambient_intensity": 0.1,
    "background_color": "#000000"
  }
}`

func TestLoadMinimalScene(t *testing.T) {
	s, err := Load([]byte(minimalSceneJSON))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Shapes) != 1 {
		t.Fatalf("expected 1 shape, got %d", len(s.Shapes))
	}
	if len(s.Lights) != 1 {
		t.Fatalf("expected 1 light, got %d", len(s.Lights))
	}
	if s.Lights[0].IsArea() {
		t.Errorf("point light with zero diameter should not report IsArea")
	}
}

func TestLoadRejectsUnknownObjectKind(t *testing.T) {
	const badJSON = `{
		"camera": {"kind": "perspective", "position": {"X":0,"Y":0,"Z":10}, "target": {"X":0,"Y":0,"Z":0}, "up": {"X":0,"Y":1,"Z":0}, "width": 800, "height": 600, "fov_degrees": 60},
		"objects": [{"kind": "torus", "material": {"color": "#ffffff"}}],
		"scene_settings": {"ambient_color": "#ffffff", "background_color": "#000000"}
	}`
	_, err := Load([]byte(badJSON))
	if err == nil {
		t.Fatal("expected error for unknown object kind")
	}
}

func TestLoadRejectsMalformedColor(t *testing.T) {
	const badJSON = `{
		"camera": {"kind": "perspective", "position": {"X":0,"Y":0,"Z":10}, "target": {"X":0,"Y":0,"Z":0}, "up": {"X":0,"Y":1,"Z":0}, "width": 800, "height": 600, "fov_degrees": 60},
		"objects": [{"kind": "sphere", "radius": 1, "material": {"color": "notacolor"}}],
		"scene_settings": {"ambient_color": "#ffffff", "background_color": "#000000"}
	}`
	_, err := Load([]byte(badJSON))
	if err == nil {
		t.Fatal("expected error for malformed color")
	}
}

func TestLoadRejectsInvalidJSON(t *testing.T) {
	_, err := Load([]byte("{not json"))
	if err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestLoadMeshObjectDeserializesDistinctVertices(t *testing.T) {
	const meshJSON = `{
		"camera": {"kind": "perspective", "position": {"X":0,"Y":0,"Z":10}, "target": {"X":0,"Y":0,"Z":0}, "up": {"X":0,"Y":1,"Z":0}, "width": 800, "height": 600, "fov_degrees": 60},
		"objects": [
			{
				"kind": "mesh",
				"triangles": [
					{"v0": {"X":0,"Y":0,"Z":0}, "v1": {"X":1,"Y":0,"Z":0}, "v2": {"X":0,"Y":1,"Z":0}}
				],
				"material": {"color": "#ffffff"}
			}
		],
		"scene_settings": {"ambient_color": "#ffffff", "background_color": "#000000"}
	}`
	s, err := Load([]byte(meshJSON))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Shapes) != 1 {
		t.Fatalf("expected 1 shape, got %d", len(s.Shapes))
	}
	m, ok := s.Shapes[0].(*mesh.Mesh)
	if !ok {
		t.Fatalf("expected *mesh.Mesh, got %T", s.Shapes[0])
	}
	if len(m.Triangles) != 1 {
		t.Fatalf("expected 1 triangle, got %d", len(m.Triangles))
	}
	tri := m.Triangles[0]
	if tri.V0 == tri.V1 || tri.V1 == tri.V2 || tri.V0 == tri.V2 {
		t.Fatalf("expected distinct vertices, got degenerate triangle %+v", tri)
	}
	if tri.V1.X != 1 {
		t.Errorf("expected v1.X=1, got %v", tri.V1.X)
	}
	if tri.V2.Y != 1 {
		t.Errorf("expected v2.Y=1, got %v", tri.V2.Y)
	}
}
