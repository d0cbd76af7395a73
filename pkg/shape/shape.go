// Package shape implements the non-mesh primitives (sphere, plane, cube)
// and the Shape interface shared with triangle meshes.
package shape

import (
	"prism/pkg/geom"
	"prism/pkg/material"
)

// Hit is the result of a successful intersection: distance, world point,
// normal facing against the incoming ray, the material to shade with, and object-space
// surface coordinates for texturing.
type Hit struct {
	T        float64
	Point    geom.Vec3
	Normal   geom.Normal
	Material material.Material
	U, V     float64
}

// Shape is implemented by every intersectable thing in the scene: the
// built-in primitives here and mesh.Mesh. Kept as the one place dynamic
// dispatch is used, per the tagged-variant design used everywhere else.
type Shape interface {
	// Intersect returns the closest hit with t in [tMin, tMax], if any.
	Intersect(ray geom.Ray, tMin, tMax float64) (Hit, bool)
	// AABB returns the shape's world-space bounding box. Infinite
	// primitives (planes) return an unbounded box and are expected to be
	// excluded from scene bounds calculations by the caller.
	AABB() geom.AABB
}

// FaceNormalTowardRay flips n so it points against the ray direction,
// satisfying invariant (i): normals at hits point against the incoming ray.
func FaceNormalTowardRay(n geom.Normal, rayDir geom.Vec3) geom.Normal {
	if n.Dot(rayDir) > 0 {
		return n.Negate()
	}
	return n
}
