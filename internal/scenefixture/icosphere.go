package scenefixture

import "prism/pkg/geom"

// icosphereTriangles generates a unit icosahedron subdivided `subdivisions`
// times, replacing STL file ingestion (out of scope) as the built-in way to
// exercise the mesh/KD-tree path with thousands of triangles.
func icosphereTriangles(subdivisions int) [][3]geom.Vec3 {
	const t = 1.6180339887498949 // golden ratio

	verts := []geom.Vec3{
		{X: -1, Y: t, Z: 0}, {X: 1, Y: t, Z: 0}, {X: -1, Y: -t, Z: 0}, {X: 1, Y: -t, Z: 0},
		{X: 0, Y: -1, Z: t}, {X: 0, Y: 1, Z: t}, {X: 0, Y: -1, Z: -t}, {X: 0, Y: 1, Z: -t},
		{X: t, Y: 0, Z: -1}, {X: t, Y: 0, Z: 1}, {X: -t, Y: 0, Z: -1}, {X: -t, Y: 0, Z: 1},
	}
	for i := range verts {
		verts[i] = verts[i].Normalize()
	}

	faces := [][3]int{
		{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
		{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
		{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
		{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
	}

	tris := make([][3]geom.Vec3, len(faces))
	for i, f := range faces {
		tris[i] = [3]geom.Vec3{verts[f[0]], verts[f[1]], verts[f[2]]}
	}

	for s := 0; s < subdivisions; s++ {
		tris = subdivide(tris)
	}
	return tris
}

// subdivide splits each triangle into 4 by bisecting its edges and
// reprojecting the new vertices onto the unit sphere.
func subdivide(tris [][3]geom.Vec3) [][3]geom.Vec3 {
	out := make([][3]geom.Vec3, 0, len(tris)*4)
	for _, tri := range tris {
		a, b, c := tri[0], tri[1], tri[2]
		ab := a.Lerp(b, 0.5).Normalize()
		bc := b.Lerp(c, 0.5).Normalize()
		ca := c.Lerp(a, 0.5).Normalize()
		out = append(out,
			[3]geom.Vec3{a, ab, ca},
			[3]geom.Vec3{b, bc, ab},
			[3]geom.Vec3{c, ca, bc},
			[3]geom.Vec3{ab, bc, ca},
		)
	}
	return out
}
