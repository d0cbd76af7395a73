// Package geom provides the vector, color, ray, and bounding-box primitives
// shared by every other package in the renderer.
package geom

import "math"

// Vec3 represents a point or direction in 3D space.
type Vec3 struct{ X, Y, Z float64 }

// Normal represents a surface normal. Kept as a distinct type from Vec3 so
// shading code can't accidentally add a position to a normal.
type Normal struct{ X, Y, Z float64 }

func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Mul scales the vector by a scalar.
func (a Vec3) Mul(t float64) Vec3 {
	return Vec3{a.X * t, a.Y * t, a.Z * t}
}

// Scale multiplies componentwise, used for non-uniform transform scale.
func (a Vec3) Scale(b Vec3) Vec3 {
	return Vec3{a.X * b.X, a.Y * b.Y, a.Z * b.Z}
}

func (a Vec3) Dot(b Vec3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func (a Vec3) DotNormal(n Normal) float64 {
	return a.X*n.X + a.Y*n.Y + a.Z*n.Z
}

func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

func (a Vec3) LengthSquared() float64 {
	return a.X*a.X + a.Y*a.Y + a.Z*a.Z
}

func (a Vec3) Length() float64 {
	return math.Sqrt(a.LengthSquared())
}

// Normalize returns a unit vector in the same direction. A zero-length
// vector is returned unchanged rather than producing NaNs.
func (a Vec3) Normalize() Vec3 {
	d := a.Length()
	if d == 0 {
		return a
	}
	return Vec3{a.X / d, a.Y / d, a.Z / d}
}

// Lerp linearly interpolates between a and b at parameter t in [0,1].
func (a Vec3) Lerp(b Vec3, t float64) Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// Reflect reflects a (an incoming direction) about normal n.
func (a Vec3) Reflect(n Vec3) Vec3 {
	return a.Sub(n.Mul(2 * a.Dot(n)))
}

// ToNormal drops a vector into a Normal without renormalizing.
func (a Vec3) ToNormal() Normal { return Normal{a.X, a.Y, a.Z} }

func (n Normal) ToVec3() Vec3 { return Vec3{n.X, n.Y, n.Z} }

func (n Normal) Dot(b Vec3) float64 {
	return n.X*b.X + n.Y*b.Y + n.Z*b.Z
}

func (n Normal) Negate() Normal { return Normal{-n.X, -n.Y, -n.Z} }

func (n Normal) Normalize() Normal {
	return n.ToVec3().Normalize().ToNormal()
}
