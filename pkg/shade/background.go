package shade

import (
	"math"

	"prism/pkg/camera"
	"prism/pkg/geom"
)

// background resolves a miss ray to a color: the orthographic world-grid
// pattern when the camera has one configured, else the scene's flat
// background color (§4.6).
func (s Shader) background(ray geom.Ray) geom.Color {
	cam := s.Scene.Camera
	grid := cam.Grid
	if cam.Kind != camera.Ortho || !grid.Enabled || grid.Pitch <= 0 {
		return s.Scene.Settings.Background
	}

	axis, planeValue := dominantAxis(cam.ViewDirection())
	t, ok := intersectAxisPlane(ray, axis, planeValue)
	if !ok {
		return s.Scene.Settings.Background
	}

	p := ray.At(t)
	u, v := inPlaneCoords(p, axis)
	if nearGridLine(u, grid.Pitch, grid.Thickness) || nearGridLine(v, grid.Pitch, grid.Thickness) {
		return grid.Color
	}
	return s.Scene.Settings.Background
}

// gridAxis names which world coordinate plane the grid is drawn on.
type gridAxis int

const (
	axisX gridAxis = iota // YZ plane, x = const
	axisY                 // XZ plane, y = const
	axisZ                 // XY plane, z = const
)

// dominantAxis picks the world axis plane most perpendicular to the view
// direction, i.e. whose normal has the largest-magnitude component along
// the view direction. The plane passes through the world origin.
func dominantAxis(view geom.Vec3) (gridAxis, float64) {
	ax, ay, az := math.Abs(view.X), math.Abs(view.Y), math.Abs(view.Z)
	switch {
	case ax >= ay && ax >= az:
		return axisX, 0
	case ay >= ax && ay >= az:
		return axisY, 0
	default:
		return axisZ, 0
	}
}

func intersectAxisPlane(ray geom.Ray, axis gridAxis, value float64) (float64, bool) {
	var originComp, dirComp float64
	switch axis {
	case axisX:
		originComp, dirComp = ray.Origin.X, ray.Direction.X
	case axisY:
		originComp, dirComp = ray.Origin.Y, ray.Direction.Y
	default:
		originComp, dirComp = ray.Origin.Z, ray.Direction.Z
	}
	if math.Abs(dirComp) < geom.Epsilon {
		return 0, false
	}
	t := (value - originComp) / dirComp
	if t <= geom.Epsilon {
		return 0, false
	}
	return t, true
}

func inPlaneCoords(p geom.Vec3, axis gridAxis) (float64, float64) {
	switch axis {
	case axisX:
		return p.Y, p.Z
	case axisY:
		return p.X, p.Z
	default:
		return p.X, p.Y
	}
}

func nearGridLine(c, pitch, thickness float64) bool {
	m := math.Mod(c, pitch)
	if m < 0 {
		m += pitch
	}
	dist := m
	if pitch-m < dist {
		dist = pitch - m
	}
	return dist <= thickness/2
}
