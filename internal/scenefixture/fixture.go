// Package scenefixture holds built-in demo/test scenes exercising spheres,
// planes and triangle meshes (no fixture uses a cube), used by the CLI's
// --demo flag and by package tests that
// need a ready-made scene without writing JSON.
package scenefixture

import (
	"image/color"

	"golang.org/x/image/colornames"

	"prism/pkg/camera"
	"prism/pkg/geom"
	"prism/pkg/material"
	"prism/pkg/mesh"
	"prism/pkg/scene"
	"prism/pkg/shape"
)

func fromNRGBA(c color.RGBA) geom.Color {
	return geom.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// RedSphere builds the "single red sphere" scenario: an orthographic camera,
// one sphere, one point light, a dark-blue background.
func RedSphere() *scene.Scene {
	cam := camera.NewOrtho(
		geom.Vec3{X: 0, Y: 0, Z: 10}, geom.Vec3{X: 0, Y: 0, Z: 0}, geom.Vec3{X: 0, Y: 1, Z: 0},
		6, 6, camera.Grid{},
	)
	mat := material.Material{
		Color: fromNRGBA(colornames.Indianred), Ambient: 0.1, Diffuse: 0.8, Specular: 0.4, Shininess: 32,
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

// ReflectionCutoff builds the reflection-budget scenario: a matte sphere
// facing a fully reflective one.
func ReflectionCutoff() *scene.Scene {
	cam := camera.NewPerspective(geom.Vec3{X: 0, Y: 1, Z: 8}, geom.Vec3{X: 0, Y: 0, Z: 0}, geom.Vec3{X: 0, Y: 1, Z: 0}, 8, 6, 50)
	matte := material.Material{Color: fromNRGBA(colornames.Gold), Ambient: 0.1, Diffuse: 0.8, Specular: 0.3, Shininess: 24}
	mirror := material.Material{
		Color: geom.Color{R: 0.9, G: 0.9, B: 0.9}, Ambient: 0.05, Diffuse: 0.1, Specular: 0.6, Shininess: 64,
		Reflectivity: 1.0,
	}
	return &scene.Scene{
		Camera: cam,
		Shapes: []shape.Shape{
			shape.Sphere{Center: geom.Vec3{X: -1.5, Y: 0, Z: 0}, Radius: 1, Material: matte},
			shape.Sphere{Center: geom.Vec3{X: 1.5, Y: 0, Z: 0}, Radius: 1, Material: mirror},
		},
		Lights: []scene.Light{{Position: geom.Vec3{X: 4, Y: 5, Z: 6}, Color: geom.White, Intensity: 1.2}},
		Settings: scene.Settings{
			Ambient:    scene.Ambient{Color: geom.White, Intensity: 0.15},
			Background: geom.Black,
		},
	}
}

// AreaLightSoftness builds the penumbra scenario: a sphere over a ground
// plane lit by a disk area light, producing a soft shadow edge.
func AreaLightSoftness() *scene.Scene {
	cam := camera.NewOrtho(
		geom.Vec3{X: 0, Y: 2, Z: 10}, geom.Vec3{X: 0, Y: 0, Z: 0}, geom.Vec3{X: 0, Y: 1, Z: 0},
		8, 6, camera.Grid{},
	)
	sphereMat := material.Material{Color: fromNRGBA(colornames.Indianred), Ambient: 0.1, Diffuse: 0.8, Specular: 0.4, Shininess: 32}
	groundMat := material.Material{Color: fromNRGBA(colornames.Gray), Ambient: 0.1, Diffuse: 0.7, Specular: 0.1, Shininess: 8}
	return &scene.Scene{
		Camera: cam,
		Shapes: []shape.Shape{
			shape.Sphere{Center: geom.Vec3{X: 0, Y: 1.5, Z: 0}, Radius: 1.5, Material: sphereMat},
			shape.Plane{Point: geom.Vec3{X: 0, Y: 0, Z: 0}, Normal: geom.Normal{X: 0, Y: 1, Z: 0}, Material: groundMat},
		},
		Lights: []scene.Light{{Position: geom.Vec3{X: 3, Y: 5, Z: 3}, Color: geom.White, Intensity: 1.0, Diameter: 2.0}},
		Settings: scene.Settings{
			Ambient:    scene.Ambient{Color: geom.White, Intensity: 0.1},
			Background: geom.Color{R: 0, G: 0.067, B: 0.133},
		},
	}
}

// OrthoGridBackground builds the grid-idempotence scenario: no objects, an
// orthographic camera, and a grid background.
func OrthoGridBackground() *scene.Scene {
	cam := camera.NewOrtho(
		geom.Vec3{X: 0, Y: 0, Z: 10}, geom.Vec3{X: 0, Y: 0, Z: 0}, geom.Vec3{X: 0, Y: 1, Z: 0},
		10, 10, camera.Grid{Enabled: true, Pitch: 1.0, Color: fromNRGBA(colornames.Dimgray), Thickness: 0.05},
	)
	return &scene.Scene{
		Camera:   cam,
		Settings: scene.Settings{Background: geom.Black},
	}
}

// LargeMesh builds the KD-tree-vs-brute-force scenario: a procedurally
// subdivided icosphere with several thousand triangles.
func LargeMesh(subdivisions int) (*scene.Scene, error) {
	tris := icosphereTriangles(subdivisions)
	mat := material.Material{Color: fromNRGBA(colornames.Royalblue), Ambient: 0.1, Diffuse: 0.8, Specular: 0.3, Shininess: 32}

	var meshTris []mesh.Triangle
	for _, tri := range tris {
		if t, ok := mesh.NewTriangle(tri[0], tri[1], tri[2], mat); ok {
			meshTris = append(meshTris, t)
		}
	}
	m, err := mesh.NewMesh(meshTris)
	if err != nil {
		return nil, err
	}

	cam := camera.NewPerspective(geom.Vec3{X: 0, Y: 0, Z: 5}, geom.Vec3{X: 0, Y: 0, Z: 0}, geom.Vec3{X: 0, Y: 1, Z: 0}, 200, 200, 50)
	return &scene.Scene{
		Camera: cam,
		Shapes: []shape.Shape{m},
		Lights: []scene.Light{{Position: geom.Vec3{X: 5, Y: 5, Z: 5}, Color: geom.White, Intensity: 1.0}},
		Settings: scene.Settings{
			Ambient:    scene.Ambient{Color: geom.White, Intensity: 0.1},
			Background: geom.Black,
		},
	}, nil
}
