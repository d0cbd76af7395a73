// Package kdtree implements the spatial binary tree over triangle AABBs
// used to accelerate mesh intersection (§4.2). Nodes live in a single
// contiguous arena and reference children by index, per the "arena +
// indices" design note: cache-friendly, allocation-free per node, and
// trivially shareable read-only across render worker goroutines.
package kdtree

import (
	"prism/pkg/geom"
	"prism/pkg/shape"
)

// LeafMax and DepthMax are the build termination thresholds recommended by
// the design (8-16 and 20-24 respectively); picked at the middle of each
// range.
const (
	LeafMax  = 12
	DepthMax = 22
)

// node is stored by value in Tree.nodes; Left/Right are indices into that
// slice, -1 meaning "no child" (only possible at a leaf).
type node struct {
	bounds      geom.AABB
	left, right int
	// leaf-only
	triangles []int
	isLeaf    bool
}

// Tree is a built, read-only KD-tree over a fixed slice of shapes supplied
// at Build time. The tree never copies or reorders the caller's shapes; it
// only stores indices into it.
type Tree struct {
	nodes  []node
	shapes []shape.Shape
	root   int
}

// Build constructs a KD-tree over shapes using median-split, cycling the
// split axis x→y→z by tree depth (the Open Question in spec's design notes
// resolved in favor of median-split: deterministic given triangle order,
// no centroid-percentile sampling to keep bit-exact across builds). An
// empty input yields a tree whose root is a single empty leaf.
func Build(shapes []shape.Shape) *Tree {
	t := &Tree{shapes: shapes}
	indices := make([]int, len(shapes))
	for i := range shapes {
		indices[i] = i
	}
	bounds := sceneBounds(shapes, indices)
	t.root = t.buildNode(bounds, indices, 0)
	return t
}

func sceneBounds(shapes []shape.Shape, indices []int) geom.AABB {
	box := geom.EmptyAABB()
	for _, i := range indices {
		box = box.Union(shapes[i].AABB())
	}
	return box
}

// buildNode appends a node to t.nodes and returns its index.
func (t *Tree) buildNode(bounds geom.AABB, indices []int, depth int) int {
	if len(indices) <= LeafMax || depth >= DepthMax {
		return t.appendLeaf(bounds, indices)
	}

	axis := depth % 3
	median := medianCentroid(t.shapes, indices, axis)

	var leftIdx, rightIdx []int
	for _, i := range indices {
		box := t.shapes[i].AABB()
		overlapsLeft := box.AxisMin(axis) <= median
		overlapsRight := box.AxisMax(axis) >= median
		switch {
		case overlapsLeft && overlapsRight:
			// Spans the split plane: bounded duplication into both children.
			leftIdx = append(leftIdx, i)
			rightIdx = append(rightIdx, i)
		case overlapsLeft:
			leftIdx = append(leftIdx, i)
		case overlapsRight:
			rightIdx = append(rightIdx, i)
		default:
			// Only an inverted box (Min > Max) reaches here; it goes left.
			// A box touching the median counts as overlapping both sides.
			leftIdx = append(leftIdx, i)
		}
	}

	// Collapse empty leaves upward: if the split didn't separate anything
	// (e.g. all triangles straddle the plane), stop recursing to avoid
	// infinite subdivision.
	if len(leftIdx) == 0 || len(rightIdx) == 0 || len(leftIdx) == len(indices) || len(rightIdx) == len(indices) {
		return t.appendLeaf(bounds, indices)
	}

	leftBounds, rightBounds := splitBounds(bounds, axis, median)

	idx := len(t.nodes)
	t.nodes = append(t.nodes, node{bounds: bounds})
	left := t.buildNode(leftBounds, leftIdx, depth+1)
	right := t.buildNode(rightBounds, rightIdx, depth+1)
	t.nodes[idx].left = left
	t.nodes[idx].right = right
	return idx
}

func (t *Tree) appendLeaf(bounds geom.AABB, indices []int) int {
	tris := make([]int, len(indices))
	copy(tris, indices)
	idx := len(t.nodes)
	t.nodes = append(t.nodes, node{bounds: bounds, left: -1, right: -1, triangles: tris, isLeaf: true})
	return idx
}

func splitBounds(bounds geom.AABB, axis int, median float64) (geom.AABB, geom.AABB) {
	left, right := bounds, bounds
	switch axis {
	case 0:
		left.Max.X, right.Min.X = median, median
	case 1:
		left.Max.Y, right.Min.Y = median, median
	default:
		left.Max.Z, right.Min.Z = median, median
	}
	return left, right
}

func medianCentroid(shapes []shape.Shape, indices []int, axis int) float64 {
	vals := make([]float64, len(indices))
	for i, idx := range indices {
		c := shapes[idx].AABB().Center()
		vals[i] = axisOf(c, axis)
	}
	insertionSort(vals)
	return vals[len(vals)/2]
}

func axisOf(v geom.Vec3, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// insertionSort keeps the per-node median computation simple and fully
// deterministic; mesh.NewMesh does the larger one-time triangle reorder
// with golang.org/x/exp/slices before Build ever sees the triangles.
func insertionSort(vals []float64) {
	for i := 1; i < len(vals); i++ {
		v := vals[i]
		j := i - 1
		for j >= 0 && vals[j] > v {
			vals[j+1] = vals[j]
			j--
		}
		vals[j+1] = v
	}
}

// Intersect performs front-to-back traversal, returning the closest hit
// within [tMin, tMax].
func (t *Tree) Intersect(ray geom.Ray, tMin, tMax float64) (shape.Hit, bool) {
	if len(t.nodes) == 0 {
		return shape.Hit{}, false
	}
	return t.intersectNode(t.root, ray, tMin, tMax, 0)
}

func (t *Tree) intersectNode(idx int, ray geom.Ray, tMin, tMax float64, depth int) (shape.Hit, bool) {
	n := &t.nodes[idx]
	entry, exit, ok := n.bounds.IntersectRay(ray, tMin, tMax)
	if !ok {
		return shape.Hit{}, false
	}
	_ = entry

	if n.isLeaf {
		var best shape.Hit
		found := false
		bestT := tMax
		for _, ti := range n.triangles {
			if hit, ok := t.shapes[ti].Intersect(ray, tMin, bestT); ok {
				best, bestT, found = hit, hit.T, true
			}
		}
		return best, found
	}

	// Recurse children front-to-back by the sign of the ray direction on
	// the axis this node split on. The axis isn't stored on interior
	// nodes; it is recovered from the depth, the same depth%3 cycle Build
	// uses. The far child is still searched with tMax tightened to the
	// near child's hit, so a closer hit there is never missed.
	first, second := n.left, n.right
	if axisOf(ray.Direction, depth%3) < 0 {
		first, second = second, first
	}
	if hit, ok := t.intersectNode(first, ray, tMin, exit, depth+1); ok {
		if hit2, ok2 := t.intersectNode(second, ray, tMin, hit.T, depth+1); ok2 {
			return hit2, true
		}
		return hit, true
	}
	return t.intersectNode(second, ray, tMin, exit, depth+1)
}

// BruteForce linearly scans every shape, used by the KD-tree/brute-force
// equivalence tests (§8) to confirm the tree never diverges from the
// naive answer.
func BruteForce(shapes []shape.Shape, ray geom.Ray, tMin, tMax float64) (shape.Hit, bool) {
	var best shape.Hit
	found := false
	bestT := tMax
	for _, s := range shapes {
		if hit, ok := s.Intersect(ray, tMin, bestT); ok {
			best, bestT, found = hit, hit.T, true
		}
	}
	return best, found
}
