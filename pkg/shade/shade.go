// Package shade implements the closest-hit dispatch and Phong shading
// pipeline (§4.4): ambient, per-light diffuse/specular with hard and soft
// shadows, recursive mirror reflection, and fog compositing.
package shade

import (
	"math"

	"prism/pkg/geom"
	"prism/pkg/material"
	"prism/pkg/rng"
	"prism/pkg/scene"
	"prism/pkg/shape"
)

// Shader evaluates shade(ray, depth) against a single built scene.
type Shader struct {
	Scene    *scene.Scene
	MaxDepth int
}

// ClosestHit linearly scans every primitive (meshes delegate to their own
// KD-tree internally) and returns the nearest hit in [tMin, tMax].
func ClosestHit(shapes []shape.Shape, ray geom.Ray, tMin, tMax float64) (shape.Hit, bool) {
	var best shape.Hit
	found := false
	for _, s := range shapes {
		if hit, ok := s.Intersect(ray, tMin, tMax); ok {
			if !found || hit.T < best.T {
				best = hit
				found = true
				tMax = hit.T
			}
		}
	}
	return best, found
}

// Shade evaluates the 8-step shading algorithm for a single ray. rnd is the
// pixel's deterministic RNG stream, shared across reflection recursion and
// area-light sampling so the whole shade call is reproducible from one seed.
func (s Shader) Shade(ray geom.Ray, depth int, rnd *rng.XorShift32) geom.Color {
	hit, ok := ClosestHit(s.Scene.Shapes, ray, geom.Epsilon, math.Inf(1))
	if !ok {
		return s.background(ray)
	}

	eff := hit.Material.Effective(hit.U, hit.V)
	n := shape.FaceNormalTowardRay(hit.Normal, ray.Direction)
	view := ray.Direction.Mul(-1)

	ambient := s.Scene.Settings.Ambient
	c := eff.Color.Mul(eff.Ambient).Modulate(ambient.Color.Mul(ambient.Intensity))

	for i := range s.Scene.Lights {
		c = c.Add(s.lightContribution(s.Scene.Lights[i], hit.Point, n, view, eff, rnd))
	}

	if eff.Reflectivity > 0 && depth < s.MaxDepth {
		reflected := ray.Direction.Sub(n.ToVec3().Mul(2 * ray.Direction.DotNormal(n)))
		reflectedRay := geom.Ray{Origin: geom.Bias(hit.Point, n), Direction: reflected}
		reflColor := s.Shade(reflectedRay, depth+1, rnd)
		c = c.Mul(1 - eff.Reflectivity).Add(reflColor.Mul(eff.Reflectivity))
	}

	if fog := s.Scene.Settings.Fog; fog != nil {
		f := clamp01((hit.T - fog.Start) / (fog.End - fog.Start))
		blend := 1 - math.Exp(-fog.Density*f)
		c = c.Mul(1 - blend).Add(fog.Color.Mul(blend))
	}

	return c.Clamp()
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// lightContribution implements step 5 of the shading pipeline for one
// light: sample positions (single for point, AreaSamples disk samples for
// area), average diffuse+specular across them, and scale by the fraction
// of samples whose shadow ray is unoccluded.
func (s Shader) lightContribution(light scene.Light, p geom.Vec3, n geom.Normal, view geom.Vec3, m material.Material, rnd *rng.XorShift32) geom.Color {
	samples := lightSamples(light, p, rnd)
	if len(samples) == 0 {
		return geom.Black
	}

	visible := 0.0
	var diffuseSum, specularSum geom.Color
	for _, lp := range samples {
		lightVec := lp.Sub(p)
		dist := lightVec.Length()
		if dist < geom.Epsilon {
			continue
		}
		ldir := lightVec.Mul(1 / dist)

		if s.unoccluded(p, n, lp) {
			visible++
		}

		ndotl := math.Max(0, n.Dot(ldir))
		diffuseSum = diffuseSum.Add(m.Color.Mul(ndotl))

		r := ldir.Mul(-1).Reflect(n.ToVec3())
		spec := math.Pow(math.Max(0, r.Dot(view)), m.Shininess)
		specularSum = specularSum.Add(geom.White.Mul(spec))
	}

	count := float64(len(samples))
	v := visible / count
	diffuse := diffuseSum.Mul(1.0 / count).Mul(m.Diffuse * v)
	specular := specularSum.Mul(1.0 / count).Mul(m.Specular * v)

	lightColor := light.Color.Mul(light.Intensity)
	return diffuse.Modulate(lightColor).Add(specular.Modulate(lightColor))
}

// unoccluded casts a shadow ray from the biased hit point toward a single
// light sample position and reports whether nothing blocks it.
func (s Shader) unoccluded(p geom.Vec3, n geom.Normal, lp geom.Vec3) bool {
	origin := geom.Bias(p, n)
	dir := lp.Sub(origin)
	d := dir.Length()
	if d < geom.Epsilon {
		return true
	}
	shadowRay := geom.Ray{Origin: origin, Direction: dir.Mul(1 / d)}
	_, hit := ClosestHit(s.Scene.Shapes, shadowRay, geom.Epsilon, d-geom.Epsilon)
	return !hit
}

func lightSamples(light scene.Light, p geom.Vec3, rnd *rng.XorShift32) []geom.Vec3 {
	if !light.IsArea() {
		return []geom.Vec3{light.Position}
	}
	return sampleDisk(light, p, rnd)
}
