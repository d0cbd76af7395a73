package shape

import (
	"prism/pkg/geom"
	"prism/pkg/material"
)

// Cube is an axis-aligned box centered at Center with full extents
// (W, H, D). Intersected as a slab test; the normal is the axis of the
// entry slab.
type Cube struct {
	Center   geom.Vec3
	Size     geom.Vec3 // (W, H, D)
	Material material.Material
}

func (c Cube) bounds() geom.AABB {
	half := c.Size.Mul(0.5)
	return geom.AABB{Min: c.Center.Sub(half), Max: c.Center.Add(half)}
}

func (c Cube) Intersect(ray geom.Ray, tMin, tMax float64) (Hit, bool) {
	box := c.bounds()
	tEnter, tExit, enterAxis, enterSign, ok := intersectBoxAxes(box, ray, tMin, tMax)
	if !ok {
		return Hit{}, false
	}

	t := tEnter
	if t <= tMin {
		t = tExit
		if t <= tMin || t > tMax {
			return Hit{}, false
		}
	}
	// Recompute which axis/sign produced the chosen t, since tEnter may
	// have been replaced by tExit above (ray origin inside the box).
	hitPoint := ray.At(t)
	axis, sign := enterAxis, enterSign
	if t != tEnter {
		axis, sign = exitBoxAxis(box, ray, t)
	}

	n := axisNormal(axis, sign)
	n = FaceNormalTowardRay(n, ray.Direction)
	u, v := cubeFaceUV(box, hitPoint, axis)
	mat := c.Material.Effective(u, v)

	return Hit{T: t, Point: hitPoint, Normal: n, Material: mat, U: u, V: v}, true
}

func (c Cube) AABB() geom.AABB { return c.bounds() }

// intersectBoxAxes is the slab method, additionally tracking which axis and
// which side (sign) produced the entry t, so the entry normal can be
// derived without a second full pass.
func intersectBoxAxes(box geom.AABB, r geom.Ray, tMin, tMax float64) (tEnter, tExit float64, axis int, sign float64, ok bool) {
	tEnter, tExit = tMin, tMax
	axis, sign = 0, -1

	for a := 0; a < 3; a++ {
		origin, dir := axisComponent(r.Origin, a), axisComponent(r.Direction, a)
		lo, hi := box.AxisMin(a), box.AxisMax(a)

		if dir == 0 {
			if origin < lo || origin > hi {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t1, t2 := (lo-origin)/dir, (hi-origin)/dir
		s1, s2 := -1.0, 1.0
		if t1 > t2 {
			t1, t2 = t2, t1
			s1, s2 = s2, s1
		}
		if t1 > tEnter {
			tEnter, axis, sign = t1, a, s1
		}
		if t2 < tExit {
			tExit = t2
		}
		if tEnter > tExit {
			return 0, 0, 0, 0, false
		}
	}
	return tEnter, tExit, axis, sign, true
}

func exitBoxAxis(box geom.AABB, r geom.Ray, tExit float64) (axis int, sign float64) {
	const eps = 1e-9
	for a := 0; a < 3; a++ {
		origin, dir := axisComponent(r.Origin, a), axisComponent(r.Direction, a)
		lo, hi := box.AxisMin(a), box.AxisMax(a)
		if dir == 0 {
			continue
		}
		t1, t2 := (lo-origin)/dir, (hi-origin)/dir
		sign := -1.0
		if t1 > t2 {
			t1, t2 = t2, t1
			sign = 1.0
		}
		if abs(t2-tExit) < eps {
			return a, sign
		}
	}
	return 0, 1
}

func axisComponent(v geom.Vec3, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

func axisNormal(axis int, sign float64) geom.Normal {
	switch axis {
	case 0:
		return geom.Normal{X: sign, Y: 0, Z: 0}
	case 1:
		return geom.Normal{X: 0, Y: sign, Z: 0}
	default:
		return geom.Normal{X: 0, Y: 0, Z: sign}
	}
}

// cubeFaceUV derives (u,v) from the two in-plane coordinates of the entry
// face, relative to the box's own min corner so grids tile consistently.
func cubeFaceUV(box geom.AABB, hit geom.Vec3, axis int) (float64, float64) {
	switch axis {
	case 0:
		return hit.Z - box.Min.Z, hit.Y - box.Min.Y
	case 1:
		return hit.X - box.Min.X, hit.Z - box.Min.Z
	default:
		return hit.X - box.Min.X, hit.Y - box.Min.Y
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
