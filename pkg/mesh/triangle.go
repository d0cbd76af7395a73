// Package mesh implements triangle storage for mesh primitives. Triangle
// intersection uses the Möller–Trumbore algorithm; spatial acceleration is
// delegated to pkg/kdtree.
package mesh

import (
	"math"

	"prism/pkg/geom"
	"prism/pkg/material"
	"prism/pkg/shape"
)

// Triangle is one face of a mesh: three world-space vertices and a
// precomputed unit face normal, shared by every point on the triangle
// (meshes in this core carry no per-vertex normals).
type Triangle struct {
	V0, V1, V2 geom.Vec3
	Normal     geom.Normal
	Material   material.Material
}

// NewTriangle computes the face normal from vertex winding. Returns ok=false
// for a degenerate (zero-area) triangle, which callers filter out per
// §4.8 (silently skipped, never propagated as a rendering error).
func NewTriangle(v0, v1, v2 geom.Vec3, mat material.Material) (Triangle, bool) {
	edge1 := v1.Sub(v0)
	edge2 := v2.Sub(v0)
	cross := edge1.Cross(edge2)
	if cross.LengthSquared() < geom.Epsilon*geom.Epsilon {
		return Triangle{}, false
	}
	return Triangle{V0: v0, V1: v1, V2: v2, Normal: cross.Normalize().ToNormal(), Material: mat}, true
}

// Intersect implements Möller–Trumbore. The core accepts hits on either
// face side; the returned normal is flipped toward the ray per the
// face-normal invariant.
func (tr Triangle) Intersect(ray geom.Ray, tMin, tMax float64) (shape.Hit, bool) {
	const eps = 1e-8

	edge1 := tr.V1.Sub(tr.V0)
	edge2 := tr.V2.Sub(tr.V0)
	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)
	if math.Abs(a) < eps {
		return shape.Hit{}, false
	}

	f := 1.0 / a
	s := ray.Origin.Sub(tr.V0)
	u := f * s.Dot(h)
	if u < 0 || u > 1 {
		return shape.Hit{}, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0 || u+v > 1 {
		return shape.Hit{}, false
	}

	t := f * edge2.Dot(q)
	if t <= tMin || t > tMax {
		return shape.Hit{}, false
	}

	hitPoint := ray.At(t)
	n := shape.FaceNormalTowardRay(tr.Normal, ray.Direction)
	return shape.Hit{T: t, Point: hitPoint, Normal: n, Material: tr.Material, U: u, V: v}, true
}

func (tr Triangle) AABB() geom.AABB {
	box := geom.EmptyAABB()
	box = box.Expand(tr.V0)
	box = box.Expand(tr.V1)
	box = box.Expand(tr.V2)
	return box
}
