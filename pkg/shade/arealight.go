package shade

import (
	"math"

	"prism/pkg/geom"
	"prism/pkg/rng"
	"prism/pkg/scene"
)

// sampleDisk draws scene.AreaSamples points on the light's disk, oriented to
// face the hit point p. The disk basis is any orthonormal frame
// perpendicular to the direction from the light to p (§4.4 step 5); the
// radial pattern itself is deterministic given rnd's stream, so the same
// pixel always samples the same positions.
func sampleDisk(light scene.Light, p geom.Vec3, rnd *rng.XorShift32) []geom.Vec3 {
	toPoint := p.Sub(light.Position)
	if toPoint.LengthSquared() < geom.Epsilon*geom.Epsilon {
		return []geom.Vec3{light.Position}
	}
	forward := toPoint.Normalize()
	ref := geom.Vec3{X: 0, Y: 1, Z: 0}
	if math.Abs(forward.Y) > 0.99 {
		ref = geom.Vec3{X: 1, Y: 0, Z: 0}
	}
	u := forward.Cross(ref).Normalize()
	v := forward.Cross(u)

	radius := light.Diameter / 2
	samples := make([]geom.Vec3, scene.AreaSamples)
	for i := 0; i < scene.AreaSamples; i++ {
		r := radius * math.Sqrt(rnd.Float64())
		theta := rnd.Float64() * 2 * math.Pi
		offset := u.Mul(r * math.Cos(theta)).Add(v.Mul(r * math.Sin(theta)))
		samples[i] = light.Position.Add(offset)
	}
	return samples
}
