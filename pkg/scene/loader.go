package scene

import (
	"encoding/json"
	"fmt"
	"os"

	"prism/pkg/camera"
	"prism/pkg/geom"
	"prism/pkg/material"
	"prism/pkg/mesh"
	"prism/pkg/sceneerr"
	"prism/pkg/shape"
)

// JSON scene schema (§6). Mesh files are loaded externally (STL parsing is
// out of scope) and supplied here as a flat triangle array; objectConfig's
// "mesh" kind references triangles already present on the in-memory
// document rather than a filename, keeping file I/O out of this package.

type vec3Config struct {
	X, Y, Z float64
}

type cameraConfig struct {
	Kind       string     `json:"kind"` // "ortho" | "perspective"
	Position   vec3Config `json:"position"`
	Target     vec3Config `json:"target"`
	Up         vec3Config `json:"up"`
	Width      float64    `json:"width"`
	Height     float64    `json:"height"`
	FovDegrees float64    `json:"fov_degrees,omitempty"`
	Grid       *struct {
		Pitch     float64 `json:"pitch"`
		Color     string  `json:"color"`
		Thickness float64 `json:"thickness"`
	} `json:"grid,omitempty"`
}

type materialConfig struct {
	Color        string          `json:"color"`
	Ambient      float64         `json:"ambient"`
	Diffuse      float64         `json:"diffuse"`
	Specular     float64         `json:"specular"`
	Shininess    float64         `json:"shininess"`
	Reflectivity float64         `json:"reflectivity,omitempty"`
	Grid         *gridTexture    `json:"grid_texture,omitempty"`
	Checkerboard *checkerTexture `json:"checkerboard_texture,omitempty"`
}

type gridTexture struct {
	LineColor string  `json:"line_color"`
	LineWidth float64 `json:"line_width"`
	CellSize  float64 `json:"cell_size"`
}

type checkerTexture struct {
	MaterialA materialConfig `json:"material_a"`
	MaterialB materialConfig `json:"material_b"`
}

type triangleConfig struct {
	V0 vec3Config `json:"v0"`
	V1 vec3Config `json:"v1"`
	V2 vec3Config `json:"v2"`
}

type objectConfig struct {
	Kind      string           `json:"kind"` // sphere | plane | cube | mesh
	Center    vec3Config       `json:"center,omitempty"`
	Radius    float64          `json:"radius,omitempty"`
	Point     vec3Config       `json:"point,omitempty"`
	Normal    vec3Config       `json:"normal,omitempty"`
	Size      vec3Config       `json:"size,omitempty"`
	Triangles []triangleConfig `json:"triangles,omitempty"`
	Material  materialConfig   `json:"material"`
	Transform []string         `json:"transform,omitempty"`
}

type lightConfig struct {
	Position  vec3Config `json:"position"`
	Color     string     `json:"color"`
	Intensity float64    `json:"intensity"`
	Diameter  float64    `json:"diameter,omitempty"`
}

type fogConfig struct {
	Color   string  `json:"color"`
	Density float64 `json:"density"`
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
}

type outlineConfig struct {
	Enabled       bool    `json:"enabled"`
	DepthWeight   float64 `json:"depth_weight"`
	NormalWeight  float64 `json:"normal_weight"`
	Threshold     float64 `json:"threshold"`
	Color         string  `json:"color"`
	Thickness     float64 `json:"thickness"`
	Use8Neighbors bool    `json:"use_8_neighbors"`
}

type settingsConfig struct {
	AmbientColor     string         `json:"ambient_color"`
	AmbientIntensity float64        `json:"ambient_intensity"`
	Background       string         `json:"background_color"`
	Fog              *fogConfig     `json:"fog,omitempty"`
	Outline          *outlineConfig `json:"outline,omitempty"`
}

type documentConfig struct {
	Camera   cameraConfig   `json:"camera"`
	Objects  []objectConfig `json:"objects"`
	Lights   []lightConfig  `json:"lights"`
	Settings settingsConfig `json:"scene_settings"`
}

// LoadFile reads and parses a scene JSON document from disk.
func LoadFile(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, sceneerr.Wrap(sceneerr.InvalidScene, "reading scene file", err)
	}
	return Load(data)
}

// Load parses scene JSON already read into memory, validating every
// object, light, and camera field at construction time (§7). No partial
// scene is ever returned alongside an error.
func Load(data []byte) (*Scene, error) {
	var doc documentConfig
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, sceneerr.Wrap(sceneerr.InvalidScene, "parsing scene JSON", err)
	}

	cam, err := buildCameraFromConfig(doc.Camera)
	if err != nil {
		return nil, err
	}

	shapes, err := buildShapes(doc.Objects)
	if err != nil {
		return nil, err
	}

	lights, err := buildLights(doc.Lights)
	if err != nil {
		return nil, err
	}

	settings, err := buildSettings(doc.Settings)
	if err != nil {
		return nil, err
	}

	return &Scene{Camera: cam, Shapes: shapes, Lights: lights, Settings: settings}, nil
}

func toVec3(v vec3Config) geom.Vec3 { return geom.Vec3{X: v.X, Y: v.Y, Z: v.Z} }

func buildCameraFromConfig(c cameraConfig) (camera.Camera, error) {
	var grid camera.Grid
	if c.Grid != nil {
		col, err := ParseColor(c.Grid.Color)
		if err != nil {
			return camera.Camera{}, err
		}
		grid = camera.Grid{Enabled: true, Pitch: c.Grid.Pitch, Color: col, Thickness: c.Grid.Thickness}
	}
	isOrtho := c.Kind == "ortho"
	return BuildCamera(isOrtho, toVec3(c.Position), toVec3(c.Target), toVec3(c.Up), c.Width, c.Height, c.FovDegrees, grid)
}

func buildMaterial(mc materialConfig) (material.Material, error) {
	col, err := ParseColor(mc.Color)
	if err != nil {
		return material.Material{}, err
	}
	m := material.Material{
		Color:        col,
		Ambient:      mc.Ambient,
		Diffuse:      mc.Diffuse,
		Specular:     mc.Specular,
		Shininess:    mc.Shininess,
		Reflectivity: mc.Reflectivity,
	}
	switch {
	case mc.Grid != nil:
		lineColor, err := ParseColor(mc.Grid.LineColor)
		if err != nil {
			return material.Material{}, err
		}
		m.Texture = material.Texture{
			Kind:      material.GridTexture,
			LineColor: lineColor,
			LineWidth: mc.Grid.LineWidth,
			CellSize:  mc.Grid.CellSize,
		}
	case mc.Checkerboard != nil:
		a, err := buildMaterial(mc.Checkerboard.MaterialA)
		if err != nil {
			return material.Material{}, err
		}
		b, err := buildMaterial(mc.Checkerboard.MaterialB)
		if err != nil {
			return material.Material{}, err
		}
		m.Texture = material.Texture{Kind: material.CheckerboardTexture, MaterialA: &a, MaterialB: &b}
	}
	return m, nil
}

func buildShapes(objects []objectConfig) ([]shape.Shape, error) {
	var holders []shape.Shape
	for i, oc := range objects {
		mat, err := buildMaterial(oc.Material)
		if err != nil {
			return nil, err
		}
		t, err := ParseTransform(oc.Transform)
		if err != nil {
			return nil, err
		}

		switch oc.Kind {
		case "sphere":
			s, err := BuildSphere(toVec3(oc.Center), oc.Radius, mat, t)
			if err != nil {
				return nil, err
			}
			holders = append(holders, s)
		case "plane":
			p, err := BuildPlane(toVec3(oc.Point), toVec3(oc.Normal).ToNormal(), mat, t)
			if err != nil {
				return nil, err
			}
			holders = append(holders, p)
		case "cube":
			c, err := BuildCube(toVec3(oc.Center), toVec3(oc.Size), mat, t)
			if err != nil {
				return nil, err
			}
			holders = append(holders, c)
		case "mesh":
			var tris []mesh.Triangle
			for _, tc := range oc.Triangles {
				v0, v1, v2 := t.ApplyPoint(toVec3(tc.V0)), t.ApplyPoint(toVec3(tc.V1)), t.ApplyPoint(toVec3(tc.V2))
				if tri, ok := mesh.NewTriangle(v0, v1, v2, mat); ok {
					tris = append(tris, tri)
				}
			}
			m, err := mesh.NewMesh(tris)
			if err != nil {
				return nil, err
			}
			holders = append(holders, m)
		default:
			return nil, sceneerr.New(sceneerr.InvalidScene, fmt.Sprintf("object %d: unknown kind %q", i, oc.Kind))
		}
	}
	return holders, nil
}

func buildLights(lights []lightConfig) ([]Light, error) {
	out := make([]Light, 0, len(lights))
	for i, lc := range lights {
		if lc.Intensity < 0 {
			return nil, sceneerr.New(sceneerr.InvalidScene, fmt.Sprintf("light %d: intensity must be >= 0", i))
		}
		col, err := ParseColor(lc.Color)
		if err != nil {
			return nil, err
		}
		out = append(out, Light{Position: toVec3(lc.Position), Color: col, Intensity: lc.Intensity, Diameter: lc.Diameter})
	}
	return out, nil
}

func buildSettings(sc settingsConfig) (Settings, error) {
	ambientColor, err := ParseColor(sc.AmbientColor)
	if err != nil {
		return Settings{}, err
	}
	background, err := ParseColor(sc.Background)
	if err != nil {
		return Settings{}, err
	}
	settings := Settings{
		Ambient:    Ambient{Color: ambientColor, Intensity: sc.AmbientIntensity},
		Background: background,
	}
	if sc.Fog != nil {
		fogColor, err := ParseColor(sc.Fog.Color)
		if err != nil {
			return Settings{}, err
		}
		settings.Fog = &Fog{Color: fogColor, Density: sc.Fog.Density, Start: sc.Fog.Start, End: sc.Fog.End}
	}
	if sc.Outline != nil {
		outlineColor, err := ParseColor(sc.Outline.Color)
		if err != nil {
			return Settings{}, err
		}
		settings.Outline = &Outline{
			Enabled:       sc.Outline.Enabled,
			DepthWeight:   sc.Outline.DepthWeight,
			NormalWeight:  sc.Outline.NormalWeight,
			Threshold:     sc.Outline.Threshold,
			Color:         outlineColor,
			Thickness:     sc.Outline.Thickness,
			Use8Neighbors: sc.Outline.Use8Neighbors,
		}
	}
	return settings, nil
}
