package shade

import (
	"math"
	"testing"

	"prism/pkg/camera"
	"prism/pkg/geom"
	"prism/pkg/material"
	"prism/pkg/rng"
	"prism/pkg/scene"
	"prism/pkg/shape"
)

func redSphereScene() *scene.Scene {
	cam := camera.NewOrtho(
		geom.Vec3{X: 0, Y: 0, Z: 10}, geom.Vec3{X: 0, Y: 0, Z: 0}, geom.Vec3{X: 0, Y: 1, Z: 0},
		6, 6, camera.Grid{},
	)
	mat := material.Material{
		Color: geom.Color{R: 1, G: 0.27, B: 0.27}, Ambient: 0.1, Diffuse: 0.8, Specular: 0.4, Shininess: 32,
	}
	sphere := shape.Sphere{Center: geom.Vec3{X: 0, Y: 0, Z: 0}, Radius: 1.5, Material: mat}
	return &scene.Scene{
		Camera: cam,
		Shapes: []shape.Shape{sphere},
		Lights: []scene.Light{{Position: geom.Vec3{X: 3, Y: 3, Z: 5}, Color: geom.White, Intensity: 1.0}},
		Settings: scene.Settings{
			Ambient:    scene.Ambient{Color: geom.White, Intensity: 0.1},
			Background: geom.Color{R: 0, G: 0.067, B: 0.133},
		},
	}
}

func TestShadeCenterPixelBrighterThanAmbientDarkerThanBase(t *testing.T) {
	sc := redSphereScene()
	shader := Shader{Scene: sc, MaxDepth: 4}
	cam := sc.Camera
	ray := cam.PrimaryRay(400, 300, 0, 0, 800, 600)
	rnd := rng.NewXorShift32(1)
	c := shader.Shade(ray, 0, rnd)

	baseColor := geom.Color{R: 1, G: 0.27, B: 0.27}
	ambientOnly := baseColor.Mul(0.1 * 0.1)
	if c.R <= ambientOnly.R {
		t.Errorf("expected shaded red channel %v brighter than ambient-only %v", c.R, ambientOnly.R)
	}
	if c.R >= baseColor.R+0.01 {
		t.Errorf("expected shaded red channel %v no brighter than base color %v", c.R, baseColor.R)
	}
}

func TestShadeMissReturnsBackground(t *testing.T) {
	sc := redSphereScene()
	shader := Shader{Scene: sc, MaxDepth: 4}
	ray := geom.Ray{Origin: geom.Vec3{X: 100, Y: 100, Z: 100}, Direction: geom.Vec3{X: 0, Y: 0, Z: -1}}
	c := shader.Shade(ray, 0, rng.NewXorShift32(1))
	if c != sc.Settings.Background {
		t.Errorf("expected background color on miss, got %v", c)
	}
}

func TestReflectionBudgetZeroMatchesNonReflective(t *testing.T) {
	mat := material.Material{Color: geom.Color{R: 0.5, G: 0.5, B: 0.5}, Ambient: 0.1, Diffuse: 0.8, Specular: 0.2, Shininess: 16}
	reflective := mat
	reflective.Reflectivity = 1.0

	base := &scene.Scene{
		Camera: camera.NewPerspective(geom.Vec3{X: 0, Y: 0, Z: 5}, geom.Vec3{X: 0, Y: 0, Z: 0}, geom.Vec3{X: 0, Y: 1, Z: 0}, 200, 200, 60),
		Shapes: []shape.Shape{shape.Sphere{Center: geom.Vec3{X: 0, Y: 0, Z: 0}, Radius: 1, Material: mat}},
		Lights: []scene.Light{{Position: geom.Vec3{X: 5, Y: 5, Z: 5}, Color: geom.White, Intensity: 1}},
		Settings: scene.Settings{
			Ambient:    scene.Ambient{Color: geom.White, Intensity: 0.2},
			Background: geom.Black,
		},
	}
	reflScene := *base
	reflScene.Shapes = []shape.Shape{shape.Sphere{Center: geom.Vec3{X: 0, Y: 0, Z: 0}, Radius: 1, Material: reflective}}

	shaderBase := Shader{Scene: base, MaxDepth: 4}
	shaderRefl := Shader{Scene: &reflScene, MaxDepth: 0}

	ray := base.Camera.PrimaryRay(100, 100, 0, 0, 200, 200)
	cBase := shaderBase.Shade(ray, 0, rng.NewXorShift32(1))
	cRefl := shaderRefl.Shade(ray, 0, rng.NewXorShift32(1))

	if math.Abs(cBase.R-cRefl.R) > 1e-9 || math.Abs(cBase.G-cRefl.G) > 1e-9 || math.Abs(cBase.B-cRefl.B) > 1e-9 {
		t.Errorf("expected max_depth=0 reflective shade to match non-reflective shade, got %v vs %v", cRefl, cBase)
	}
}

func TestFogMovesTowardFogColorAsDensityIncreases(t *testing.T) {
	mat := material.Material{Color: geom.Color{R: 1, G: 1, B: 1}, Ambient: 0.2, Diffuse: 0.8, Specular: 0, Shininess: 1}
	mkScene := func(density float64) *scene.Scene {
		return &scene.Scene{
			Camera: camera.NewPerspective(geom.Vec3{X: 0, Y: 0, Z: 5}, geom.Vec3{X: 0, Y: 0, Z: 0}, geom.Vec3{X: 0, Y: 1, Z: 0}, 100, 100, 60),
			Shapes: []shape.Shape{shape.Sphere{Center: geom.Vec3{X: 0, Y: 0, Z: 0}, Radius: 1, Material: mat}},
			Lights: []scene.Light{{Position: geom.Vec3{X: 5, Y: 5, Z: 5}, Color: geom.White, Intensity: 1}},
			Settings: scene.Settings{
				Ambient:    scene.Ambient{Color: geom.White, Intensity: 0.2},
				Background: geom.Black,
				Fog:        &scene.Fog{Color: geom.Color{R: 0, G: 1, B: 0}, Density: density, Start: 0, End: 10},
			},
		}
	}
	low := mkScene(0.1)
	high := mkScene(2.0)
	ray := low.Camera.PrimaryRay(50, 50, 0, 0, 100, 100)

	cLow := (Shader{Scene: low, MaxDepth: 4}).Shade(ray, 0, rng.NewXorShift32(1))
	cHigh := (Shader{Scene: high, MaxDepth: 4}).Shade(ray, 0, rng.NewXorShift32(1))

	fogColor := geom.Color{R: 0, G: 1, B: 0}
	distLow := math.Abs(cLow.G - fogColor.G)
	distHigh := math.Abs(cHigh.G - fogColor.G)
	if distHigh > distLow {
		t.Errorf("expected higher fog density to move color closer to fog color: low dist %v, high dist %v", distLow, distHigh)
	}
}

func TestOrthoGridBackgroundOnGridLine(t *testing.T) {
	cam := camera.NewOrtho(
		geom.Vec3{X: 0, Y: 0, Z: 10}, geom.Vec3{X: 0, Y: 0, Z: 0}, geom.Vec3{X: 0, Y: 1, Z: 0},
		10, 10, camera.Grid{Enabled: true, Pitch: 1.0, Color: geom.Color{R: 0.27, G: 0.27, B: 0.27}, Thickness: 0.05},
	)
	sc := &scene.Scene{
		Camera:   cam,
		Shapes:   nil,
		Settings: scene.Settings{Background: geom.Black},
	}
	shader := Shader{Scene: sc, MaxDepth: 1}

	ray := geom.Ray{Origin: geom.Vec3{X: 0, Y: 0, Z: 10}, Direction: geom.Vec3{X: 0, Y: 0, Z: -1}}
	c := shader.Shade(ray, 0, rng.NewXorShift32(1))
	if c != cam.Grid.Color {
		t.Errorf("expected grid color at origin-crossing ray, got %v", c)
	}

	offRay := geom.Ray{Origin: geom.Vec3{X: 0.5, Y: 0.5, Z: 10}, Direction: geom.Vec3{X: 0, Y: 0, Z: -1}}
	c2 := shader.Shade(offRay, 0, rng.NewXorShift32(1))
	if c2 != sc.Settings.Background {
		t.Errorf("expected background color off grid line, got %v", c2)
	}
}
