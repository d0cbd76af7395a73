// Package xform parses and composes the transform-string mini-language
// scene objects use: an ordered list of rotate(x,y,z)|translate(x,y,z)|
// scale(x,y,z) entries, applied in list order, with rotation angles in
// degrees and each individual rotate composed Z·Y·X locally.
//
// Closed primitives don't carry a matrix — transforms are baked into their
// natural parameters (sphere center + uniform-scaled radius; plane point +
// normal; cube center + per-axis size). That's simpler than carrying a
// matrix per primitive but forbids shear: a non-uniform scale combined
// with any rotation in the same transform list can't be represented as a
// new center/size, so it's rejected at build time rather than silently
// producing the wrong shape. Parse applies this check to every transform
// list, so mesh transforms are rejected for the same combination even
// though their vertices are transformed directly.
package xform

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"

	"prism/pkg/geom"
	"prism/pkg/sceneerr"
)

type opKind int

const (
	opRotate opKind = iota
	opTranslate
	opScale
)

type op struct {
	kind    opKind
	x, y, z float64
}

// Transform is a parsed, composed ordered list of rotate/translate/scale
// operations.
type Transform struct {
	ops    []op
	matrix mgl64.Mat4

	hasRotation        bool
	hasNonUniformScale bool
}

// Identity is the empty transform: every Apply* method is a no-op.
func Identity() Transform {
	return Transform{matrix: mgl64.Ident4()}
}

// Parse parses an ordered list of transform strings such as
// "rotate(0,45,0)", "translate(1,0,0)", "scale(2,2,2)" and composes them
// in list order (each later op is applied after the earlier ones, i.e.
// the composed matrix is opN * ... * op1 so points are transformed in the
// order the strings were listed).
func Parse(transforms []string) (Transform, error) {
	t := Identity()
	for _, s := range transforms {
		o, err := parseOne(s)
		if err != nil {
			return Transform{}, sceneerr.Wrap(sceneerr.InvalidTransform, fmt.Sprintf("parsing %q", s), err)
		}
		t.ops = append(t.ops, o)
		switch o.kind {
		case opRotate:
			t.hasRotation = true
			rz := mgl64.HomogRotate3DZ(mgl64.DegToRad(o.z))
			ry := mgl64.HomogRotate3DY(mgl64.DegToRad(o.y))
			rx := mgl64.HomogRotate3DX(mgl64.DegToRad(o.x))
			t.matrix = rz.Mul4(ry).Mul4(rx).Mul4(t.matrix)
		case opTranslate:
			t.matrix = mgl64.Translate3D(o.x, o.y, o.z).Mul4(t.matrix)
		case opScale:
			if o.x != o.y || o.y != o.z {
				t.hasNonUniformScale = true
			}
			t.matrix = mgl64.Scale3D(o.x, o.y, o.z).Mul4(t.matrix)
		}
	}
	if t.hasRotation && t.hasNonUniformScale {
		return Transform{}, sceneerr.New(sceneerr.InvalidTransform,
			"non-uniform scale combined with rotation cannot be baked into a primitive's parameters without shear")
	}
	return t, nil
}

func parseOne(s string) (op, error) {
	s = strings.TrimSpace(s)
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return op{}, fmt.Errorf("expected name(x,y,z), got %q", s)
	}
	name := strings.TrimSpace(s[:open])
	args := strings.Split(s[open+1:len(s)-1], ",")
	if len(args) != 3 {
		return op{}, fmt.Errorf("expected exactly 3 arguments, got %d", len(args))
	}
	vals := make([]float64, 3)
	for i, a := range args {
		v, err := strconv.ParseFloat(strings.TrimSpace(a), 64)
		if err != nil {
			return op{}, fmt.Errorf("argument %d (%q): %w", i, a, err)
		}
		vals[i] = v
	}

	var kind opKind
	switch name {
	case "rotate":
		kind = opRotate
	case "translate":
		kind = opTranslate
	case "scale":
		kind = opScale
	default:
		return op{}, fmt.Errorf("unknown transform %q", name)
	}
	return op{kind: kind, x: vals[0], y: vals[1], z: vals[2]}, nil
}

// ApplyPoint transforms a world point (mesh vertex).
func (t Transform) ApplyPoint(p geom.Vec3) geom.Vec3 {
	v := t.matrix.Mul4x1(mgl64.Vec4{p.X, p.Y, p.Z, 1})
	return geom.Vec3{X: v[0], Y: v[1], Z: v[2]}
}

// ApplyDirection transforms a surface normal (used for plane normals),
// ignoring translation. It uses the inverse-transpose of the matrix, so a
// non-uniform scale (allowed when no rotation is present) still yields a
// normal perpendicular to the transformed surface; the result is not
// normalized.
func (t Transform) ApplyDirection(v geom.Vec3) geom.Vec3 {
	r := t.matrix.Inv().Transpose().Mul4x1(mgl64.Vec4{v.X, v.Y, v.Z, 0})
	return geom.Vec3{X: r[0], Y: r[1], Z: r[2]}
}

// UniformScale returns the scale factor baked into the transform, requiring
// it be the same on all three axes. Parse only rejects non-uniform scale
// combined with rotation; a non-uniform-scale-only transform passes Parse
// and, applied to a sphere, is reported here instead, since spheres are
// the only primitive that cares.
func (t Transform) UniformScale() (float64, error) {
	sx := t.matrix.Mul4x1(mgl64.Vec4{1, 0, 0, 0})
	sy := t.matrix.Mul4x1(mgl64.Vec4{0, 1, 0, 0})
	sz := t.matrix.Mul4x1(mgl64.Vec4{0, 0, 1, 0})
	lx := math.Sqrt(sx[0]*sx[0] + sx[1]*sx[1] + sx[2]*sx[2])
	ly := math.Sqrt(sy[0]*sy[0] + sy[1]*sy[1] + sy[2]*sy[2])
	lz := math.Sqrt(sz[0]*sz[0] + sz[1]*sz[1] + sz[2]*sz[2])
	const tol = 1e-6
	if math.Abs(lx-ly) > tol || math.Abs(ly-lz) > tol {
		return 0, sceneerr.New(sceneerr.InvalidTransform, "sphere requires uniform scale")
	}
	return lx, nil
}

// AxisScale returns the per-axis scale magnitude baked into the transform,
// valid for cubes (axis-aligned boxes tolerate non-uniform scale as long
// as no rotation is present, already enforced by Parse).
func (t Transform) AxisScale() geom.Vec3 {
	sx := t.matrix.Mul4x1(mgl64.Vec4{1, 0, 0, 0})
	sy := t.matrix.Mul4x1(mgl64.Vec4{0, 1, 0, 0})
	sz := t.matrix.Mul4x1(mgl64.Vec4{0, 0, 1, 0})
	return geom.Vec3{
		X: math.Sqrt(sx[0]*sx[0] + sx[1]*sx[1] + sx[2]*sx[2]),
		Y: math.Sqrt(sy[0]*sy[0] + sy[1]*sy[1] + sy[2]*sy[2]),
		Z: math.Sqrt(sz[0]*sz[0] + sz[1]*sz[1] + sz[2]*sz[2]),
	}
}
