package scene

import (
	"prism/internal/xform"
	"prism/pkg/camera"
	"prism/pkg/geom"
	"prism/pkg/material"
	"prism/pkg/sceneerr"
	"prism/pkg/shape"
)

// Transform re-exports internal/xform.Transform so callers outside the
// module's internal tree (none exist, since this is all one module, but
// keeps the dependency direction obvious) build transforms exclusively
// through this package's ParseTransform.
type Transform = xform.Transform

func ParseTransform(strs []string) (Transform, error) { return xform.Parse(strs) }

// BuildSphere bakes an ordered transform list into a sphere's center and
// radius (uniform scale only — enforced by Transform.UniformScale).
func BuildSphere(center geom.Vec3, radius float64, mat material.Material, t Transform) (shape.Sphere, error) {
	if radius <= 0 {
		return shape.Sphere{}, sceneerr.New(sceneerr.InvalidScene, "sphere radius must be positive")
	}
	scale, err := t.UniformScale()
	if err != nil {
		return shape.Sphere{}, err
	}
	newRadius := radius * scale
	if newRadius <= 0 {
		return shape.Sphere{}, sceneerr.New(sceneerr.InvalidScene, "sphere radius must be positive after transform")
	}
	return shape.Sphere{Center: t.ApplyPoint(center), Radius: newRadius, Material: mat}, nil
}

// BuildPlane bakes a transform into a plane's point and normal.
func BuildPlane(point geom.Vec3, normal geom.Normal, mat material.Material, t Transform) (shape.Plane, error) {
	if normal.ToVec3().LengthSquared() < geom.Epsilon*geom.Epsilon {
		return shape.Plane{}, sceneerr.New(sceneerr.InvalidScene, "plane normal must be non-zero")
	}
	n := t.ApplyDirection(normal.ToVec3()).Normalize().ToNormal()
	return shape.Plane{Point: t.ApplyPoint(point), Normal: n, Material: mat}, nil
}

// BuildCube bakes a transform into a cube's center and per-axis size
// (non-uniform scale permitted here since Parse already rejected any
// transform list combining non-uniform scale with rotation).
func BuildCube(center, size geom.Vec3, mat material.Material, t Transform) (shape.Cube, error) {
	if size.X <= 0 || size.Y <= 0 || size.Z <= 0 {
		return shape.Cube{}, sceneerr.New(sceneerr.InvalidScene, "cube size must be positive on every axis")
	}
	axisScale := t.AxisScale()
	newSize := size.Scale(axisScale)
	if newSize.X <= 0 || newSize.Y <= 0 || newSize.Z <= 0 {
		return shape.Cube{}, sceneerr.New(sceneerr.InvalidScene, "cube has zero volume after transform")
	}
	return shape.Cube{Center: t.ApplyPoint(center), Size: newSize, Material: mat}, nil
}

// BuildCamera validates field of view and up/forward orthogonality before
// constructing either projection.
func BuildCamera(isOrtho bool, position, target, up geom.Vec3, width, height, fovDegrees float64, grid camera.Grid) (camera.Camera, error) {
	forward := target.Sub(position)
	if forward.LengthSquared() < geom.Epsilon*geom.Epsilon {
		return camera.Camera{}, sceneerr.New(sceneerr.InvalidScene, "camera target must differ from position")
	}
	forward = forward.Normalize()
	right := forward.Cross(up)
	if right.LengthSquared() < geom.Epsilon*geom.Epsilon {
		return camera.Camera{}, sceneerr.New(sceneerr.InvalidScene, "camera up vector is parallel to view direction (non-orthogonal basis after up collapse)")
	}

	if isOrtho {
		return camera.NewOrtho(position, target, up, width, height, grid), nil
	}
	if fovDegrees <= 0 || fovDegrees >= 180 {
		return camera.Camera{}, sceneerr.New(sceneerr.InvalidScene, "perspective fov must be in (0, 180) degrees")
	}
	return camera.NewPerspective(position, target, up, width, height, fovDegrees), nil
}

// ParseColor wraps geom.ParseHexColor into the typed scene error kind.
func ParseColor(hex string) (geom.Color, error) {
	c, err := geom.ParseHexColor(hex)
	if err != nil {
		return geom.Color{}, sceneerr.Wrap(sceneerr.InvalidColor, "parsing color", err)
	}
	return c, nil
}
