package geom

// Ray is a half-line: points of the form Origin + t*Direction for t >= 0.
// Direction is not required to be normalized by this type; callers that
// need world-space t values to be distances normalize before constructing.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Bias nudges a hit point off the surface along n, avoiding self-shadowing
// and self-reflection from floating point rounding at the intersection.
func Bias(p Vec3, n Normal) Vec3 {
	return p.Add(n.ToVec3().Mul(Epsilon))
}

// Epsilon is the renderer-wide tolerance for surface-acne and
// parallel/degenerate tests, named per the shading and intersection
// invariants rather than scattered as magic numbers.
const Epsilon = 1e-4
