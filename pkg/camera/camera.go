// Package camera implements primary-ray generation for the two supported
// projections (§4.5) and holds the orthographic world-grid background
// settings (§4.6); pkg/shade resolves the background itself.
package camera

import (
	"math"

	"prism/pkg/geom"
	"prism/pkg/motion"
)

// Kind tags which projection a Camera uses.
type Kind int

const (
	Perspective Kind = iota
	Ortho
)

// Grid configures the orthographic world-plane background pattern.
type Grid struct {
	Enabled   bool
	Pitch     float64
	Color     geom.Color
	Thickness float64
}

// Camera is a tagged variant over Ortho and Perspective projections. Both
// share the same look-at basis construction; only the image-plane mapping
// to a ray differs.
type Camera struct {
	Kind Kind

	Position geom.Vec3
	Target   geom.Vec3
	Up       geom.Vec3
	Width    float64
	Height   float64

	// Perspective only
	FovDegrees float64

	// Ortho only
	Grid Grid

	// Track, when non-nil, overrides Position/Target per-frame via AtTime;
	// the static fields above are then only the basis used before the
	// first AtTime call (§4 supplemented keyframed-motion extension).
	Track *motion.Track

	forward, right, upBasis geom.Vec3
	fovScale                float64
}

// NewOrtho constructs an orthographic camera. Width/height are world-space
// extents of the image plane.
func NewOrtho(position, target, up geom.Vec3, width, height float64, grid Grid) Camera {
	c := Camera{Kind: Ortho, Position: position, Target: target, Up: up, Width: width, Height: height, Grid: grid}
	c.buildBasis()
	return c
}

// NewPerspective constructs a perspective camera; fovDegrees is the
// vertical field of view. Width/height are stored but not used by
// PrimaryRay, which takes the aspect ratio from the viewport dimensions it
// is given.
func NewPerspective(position, target, up geom.Vec3, width, height, fovDegrees float64) Camera {
	c := Camera{Kind: Perspective, Position: position, Target: target, Up: up, Width: width, Height: height, FovDegrees: fovDegrees}
	c.buildBasis()
	return c
}

func (c *Camera) buildBasis() {
	c.forward = c.Target.Sub(c.Position).Normalize()
	c.right = c.forward.Cross(c.Up).Normalize()
	c.upBasis = c.right.Cross(c.forward).Normalize()
	if c.Kind == Perspective {
		c.fovScale = math.Tan(c.FovDegrees * math.Pi / 180 / 2)
	}
}

// PrimaryRay generates the ray through pixel (px, py) offset by subsample
// (dx, dy) in [-0.5, 0.5] pixel space, for a viewport of the given
// dimensions.
func (c Camera) PrimaryRay(px, py int, dx, dy float64, viewportW, viewportH int) geom.Ray {
	// Map pixel + subsample offset to normalized device coords in
	// [-0.5, 0.5] across the viewport, then to image-plane (u,v).
	ndcX := (float64(px)+0.5+dx)/float64(viewportW) - 0.5
	ndcY := 0.5 - (float64(py)+0.5+dy)/float64(viewportH)

	switch c.Kind {
	case Ortho:
		u := ndcX * c.Width
		v := ndcY * c.Height
		origin := c.Position.Add(c.right.Mul(u)).Add(c.upBasis.Mul(v))
		return geom.Ray{Origin: origin, Direction: c.forward}
	default: // Perspective
		aspect := float64(viewportW) / float64(viewportH)
		u := ndcX * 2 * c.fovScale * aspect
		v := ndcY * 2 * c.fovScale
		dir := c.forward.Add(c.right.Mul(u)).Add(c.upBasis.Mul(v)).Normalize()
		return geom.Ray{Origin: c.Position, Direction: dir}
	}
}

// ViewDirection exposes the camera's forward basis vector, used by the
// background resolver to pick the most-perpendicular world plane.
func (c Camera) ViewDirection() geom.Vec3 { return c.forward }

// AtTime samples the camera's motion track at time t and rebuilds the
// look-at basis for that position/target. Cameras without a Track return
// themselves unchanged, so callers can always call AtTime uniformly.
func (c Camera) AtTime(t float64) Camera {
	if c.Track == nil {
		return c
	}
	c.Position, c.Target = c.Track.At(t)
	c.buildBasis()
	return c
}
