package geom

import "math"

// AABB is an axis-aligned bounding box.
type AABB struct{ Min, Max Vec3 }

// EmptyAABB returns an AABB with Min > Max, suitable as the start of a fold
// over Expand/Union calls.
func EmptyAABB() AABB {
	return AABB{
		Min: Vec3{math.Inf(1), math.Inf(1), math.Inf(1)},
		Max: Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)},
	}
}

func (a AABB) Contains(p Vec3) bool {
	return p.X >= a.Min.X && p.X <= a.Max.X &&
		p.Y >= a.Min.Y && p.Y <= a.Max.Y &&
		p.Z >= a.Min.Z && p.Z <= a.Max.Z
}

func (a AABB) Center() Vec3 {
	return a.Min.Add(a.Max).Mul(0.5)
}

// Expand returns a new AABB that includes the given point.
func (a AABB) Expand(p Vec3) AABB {
	return AABB{
		Min: Vec3{math.Min(a.Min.X, p.X), math.Min(a.Min.Y, p.Y), math.Min(a.Min.Z, p.Z)},
		Max: Vec3{math.Max(a.Max.X, p.X), math.Max(a.Max.Y, p.Y), math.Max(a.Max.Z, p.Z)},
	}
}

// Union returns the smallest AABB containing both boxes.
func (a AABB) Union(b AABB) AABB {
	return AABB{
		Min: Vec3{math.Min(a.Min.X, b.Min.X), math.Min(a.Min.Y, b.Min.Y), math.Min(a.Min.Z, b.Min.Z)},
		Max: Vec3{math.Max(a.Max.X, b.Max.X), math.Max(a.Max.Y, b.Max.Y), math.Max(a.Max.Z, b.Max.Z)},
	}
}

// SurfaceArea is used by the KD-tree build heuristics.
func (a AABB) SurfaceArea() float64 {
	d := a.Max.Sub(a.Min)
	if d.X < 0 || d.Y < 0 || d.Z < 0 {
		return 0
	}
	return 2 * (d.X*d.Y + d.Y*d.Z + d.Z*d.X)
}

// LongestAxis returns 0, 1, or 2 for X, Y, Z.
func (a AABB) LongestAxis() int {
	d := a.Max.Sub(a.Min)
	if d.X > d.Y && d.X > d.Z {
		return 0
	}
	if d.Y > d.Z {
		return 1
	}
	return 2
}

func (a AABB) AxisMin(axis int) float64 {
	switch axis {
	case 0:
		return a.Min.X
	case 1:
		return a.Min.Y
	default:
		return a.Min.Z
	}
}

func (a AABB) AxisMax(axis int) float64 {
	switch axis {
	case 0:
		return a.Max.X
	case 1:
		return a.Max.Y
	default:
		return a.Max.Z
	}
}

// IntersectRay performs a ray-AABB intersection test using the slab method,
// returning the entry/exit parametric distances and whether the ray hits
// the box ahead of its origin within [tMin, tMax].
func (a AABB) IntersectRay(r Ray, tMin, tMax float64) (float64, float64, bool) {
	for axis := 0; axis < 3; axis++ {
		origin, dir := axisComponent(r.Origin, axis), axisComponent(r.Direction, axis)
		lo, hi := a.AxisMin(axis), a.AxisMax(axis)

		if math.Abs(dir) < Epsilon {
			if origin < lo || origin > hi {
				return 0, 0, false
			}
			continue
		}
		t1 := (lo - origin) / dir
		t2 := (hi - origin) / dir
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tMin {
			tMin = t1
		}
		if t2 < tMax {
			tMax = t2
		}
		if tMin > tMax {
			return 0, 0, false
		}
	}
	return tMin, tMax, true
}

func axisComponent(v Vec3, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}
