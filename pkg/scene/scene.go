// Package scene holds the scene graph: object list, light list, global
// settings, and the built camera, plus the JSON ingestion of all of it
// (one of the distilled core's named external collaborators, kept here as
// a thin, clearly-bounded layer — see loader.go).
package scene

import (
	"prism/pkg/camera"
	"prism/pkg/geom"
	"prism/pkg/shape"
)

// AreaSamples is the fixed disk-sample count for area lights (§4.4 step 5).
const AreaSamples = 16

// Light is either a point light (Diameter == 0) or a disk area light
// (Diameter > 0), oriented to face the hit point at sampling time.
type Light struct {
	Position  geom.Vec3
	Color     geom.Color
	Intensity float64
	Diameter  float64
}

func (l Light) IsArea() bool { return l.Diameter > 0 }

// Ambient is the scene-wide ambient term: color and intensity multiplied
// into each material's own ambient coefficient.
type Ambient struct {
	Color     geom.Color
	Intensity float64
}

// Fog is optional atmospheric compositing (§4.4 step 7).
type Fog struct {
	Color   geom.Color
	Density float64
	Start   float64
	End     float64
}

// Outline configures the optional screen-space edge-detection post-pass
// (§4.7).
type Outline struct {
	Enabled       bool
	DepthWeight   float64
	NormalWeight  float64
	Threshold     float64
	Color         geom.Color
	Thickness     float64
	Use8Neighbors bool
}

// Settings is the scene-wide configuration independent of any one object.
type Settings struct {
	Ambient    Ambient
	Background geom.Color
	Fog        *Fog
	Outline    *Outline
}

// Scene is the fully validated, immutable scene graph consumed by the
// renderer. Nothing in the hot render path mutates it (§5).
type Scene struct {
	Camera   camera.Camera
	Shapes   []shape.Shape
	Lights   []Light
	Settings Settings
}
