package shape

import (
	"math"

	"prism/pkg/geom"
	"prism/pkg/material"
)

// Sphere is centered at Center with the given Radius (> 0). Spheres ignore
// textures in the core (§4.1): Effective material is not computed, the hit
// carries the material with its texture cleared, and u/v are always zero.
type Sphere struct {
	Center   geom.Vec3
	Radius   float64
	Material material.Material
}

func (s Sphere) Intersect(ray geom.Ray, tMin, tMax float64) (Hit, bool) {
	oc := ray.Origin.Sub(s.Center)
	a := ray.Direction.Dot(ray.Direction)
	b := 2 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	disc := b*b - 4*a*c
	if disc < 0 {
		return Hit{}, false
	}
	sqrtDisc := math.Sqrt(disc)

	t := (-b - sqrtDisc) / (2 * a)
	if t <= tMin || t > tMax {
		t = (-b + sqrtDisc) / (2 * a)
		if t <= tMin || t > tMax {
			return Hit{}, false
		}
	}

	p := ray.At(t)
	n := p.Sub(s.Center).Mul(1 / s.Radius).ToNormal()
	n = FaceNormalTowardRay(n, ray.Direction)

	mat := s.Material
	mat.Texture = material.Texture{}
	return Hit{T: t, Point: p, Normal: n, Material: mat}, true
}

func (s Sphere) AABB() geom.AABB {
	r := geom.Vec3{X: s.Radius, Y: s.Radius, Z: s.Radius}
	return geom.AABB{Min: s.Center.Sub(r), Max: s.Center.Add(r)}
}
