package mesh

import (
	"fmt"

	"golang.org/x/exp/slices"

	"prism/pkg/geom"
	"prism/pkg/kdtree"
	"prism/pkg/sceneerr"
	"prism/pkg/shape"
)

// Mesh is a triangle soup plus its owned KD-tree, built once at scene
// construction and read-only thereafter (§5).
type Mesh struct {
	Triangles []Triangle
	tree      *kdtree.Tree
	bounds    geom.AABB
}

// NewMesh filters degenerate triangles, Morton-sorts the survivors so that
// adjacent array entries end up spatially adjacent (the KD-tree's node
// bounds come from its median splits and do not depend on this order), and
// builds the acceleration structure. Returns sceneerr.DegenerateMesh if no triangles
// survive filtering.
func NewMesh(rawTriangles []Triangle) (*Mesh, error) {
	tris := make([]Triangle, 0, len(rawTriangles))
	for _, t := range rawTriangles {
		if t.Normal == (geom.Normal{}) {
			continue // zero normal marks a triangle NewTriangle already rejected
		}
		tris = append(tris, t)
	}
	if len(tris) == 0 {
		return nil, sceneerr.New(sceneerr.DegenerateMesh, "mesh has zero triangles after filtering")
	}

	bounds := geom.EmptyAABB()
	for _, t := range tris {
		bounds = bounds.Union(t.AABB())
	}
	sortByMortonCode(tris, bounds)

	shapes := make([]shape.Shape, len(tris))
	for i, t := range tris {
		shapes[i] = t
	}

	return &Mesh{
		Triangles: tris,
		tree:      kdtree.Build(shapes),
		bounds:    bounds,
	}, nil
}

func sortByMortonCode(tris []Triangle, bounds geom.AABB) {
	extent := bounds.Max.Sub(bounds.Min)
	normalize := func(v geom.Vec3) (float64, float64, float64) {
		x, y, z := 0.0, 0.0, 0.0
		if extent.X > 0 {
			x = (v.X - bounds.Min.X) / extent.X
		}
		if extent.Y > 0 {
			y = (v.Y - bounds.Min.Y) / extent.Y
		}
		if extent.Z > 0 {
			z = (v.Z - bounds.Min.Z) / extent.Z
		}
		return x, y, z
	}
	codes := make([]uint32, len(tris))
	for i, t := range tris {
		c := t.AABB().Center()
		x, y, z := normalize(c)
		codes[i] = morton3D(x, y, z)
	}

	order := make([]int, len(tris))
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(a, b int) int {
		switch {
		case codes[a] < codes[b]:
			return -1
		case codes[a] > codes[b]:
			return 1
		default:
			return 0
		}
	})

	sorted := make([]Triangle, len(tris))
	for i, idx := range order {
		sorted[i] = tris[idx]
	}
	copy(tris, sorted)
}

func (m *Mesh) Intersect(ray geom.Ray, tMin, tMax float64) (shape.Hit, bool) {
	return m.tree.Intersect(ray, tMin, tMax)
}

func (m *Mesh) AABB() geom.AABB { return m.bounds }

// BruteForceIntersect bypasses the KD-tree entirely, used by the mesh's own
// equivalence tests and available to callers that want to double-check the
// tree against a linear scan.
func (m *Mesh) BruteForceIntersect(ray geom.Ray, tMin, tMax float64) (shape.Hit, bool) {
	shapes := make([]shape.Shape, len(m.Triangles))
	for i, t := range m.Triangles {
		shapes[i] = t
	}
	return kdtree.BruteForce(shapes, ray, tMin, tMax)
}

func (m *Mesh) String() string {
	return fmt.Sprintf("Mesh{%d triangles}", len(m.Triangles))
}
