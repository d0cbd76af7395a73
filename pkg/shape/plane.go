package shape

import (
	"math"

	"prism/pkg/geom"
	"prism/pkg/material"
)

// Plane is an infinite plane through Point with unit Normal. Infinite
// primitives are excluded from scene-bounds calculations.
type Plane struct {
	Point    geom.Vec3
	Normal   geom.Normal
	Material material.Material
}

func (p Plane) Intersect(ray geom.Ray, tMin, tMax float64) (Hit, bool) {
	denom := ray.Direction.DotNormal(p.Normal)
	if math.Abs(denom) < geom.Epsilon {
		return Hit{}, false
	}
	t := p.Point.Sub(ray.Origin).DotNormal(p.Normal) / denom
	if t <= tMin || t > tMax {
		return Hit{}, false
	}

	hitPoint := ray.At(t)
	n := FaceNormalTowardRay(p.Normal, ray.Direction)
	u, v := planeUV(p.Normal, p.Point, hitPoint)
	mat := p.Material.Effective(u, v)

	return Hit{T: t, Point: hitPoint, Normal: n, Material: mat, U: u, V: v}, true
}

func (p Plane) AABB() geom.AABB {
	inf := math.Inf(1)
	return geom.AABB{
		Min: geom.Vec3{X: -inf, Y: -inf, Z: -inf},
		Max: geom.Vec3{X: inf, Y: inf, Z: inf},
	}
}

// planeUV builds a deterministic orthonormal in-plane basis from the
// plane's normal and projects the hit point onto it relative to the
// plane's reference point.
func planeUV(n geom.Normal, origin, hit geom.Vec3) (float64, float64) {
	axisU, axisV := orthonormalBasis(n)
	d := hit.Sub(origin)
	return d.Dot(axisU), d.Dot(axisV)
}

// orthonormalBasis derives two vectors perpendicular to n (and to each
// other) without any external input, so the same plane always yields the
// same texture axes.
func orthonormalBasis(n geom.Normal) (geom.Vec3, geom.Vec3) {
	nv := n.ToVec3()
	ref := geom.Vec3{X: 0, Y: 1, Z: 0}
	if math.Abs(nv.Y) > 0.99 {
		ref = geom.Vec3{X: 1, Y: 0, Z: 0}
	}
	u := nv.Cross(ref).Normalize()
	v := nv.Cross(u).Normalize()
	return u, v
}
