// Package render implements the tile-parallel, deterministic rasterizer:
// anti-aliasing sample generation, per-pixel seeded sampling, the worker
// pool, and the optional outline post-pass.
package render

import (
	"math"

	"prism/pkg/rng"
)

// AntiAliasing tags which subpixel sample pattern a render uses.
type AntiAliasing int

const (
	NoJitter AntiAliasing = iota
	Quincunx
	Stochastic
)

// Offset is a subpixel sample position in [-0.5, 0.5] pixel space.
type Offset struct{ DX, DY float64 }

var quincunxOffsets = []Offset{
	{0, 0},
	{0.25, 0.25}, {0.25, -0.25}, {-0.25, 0.25}, {-0.25, -0.25},
}

// Samples returns the subpixel offsets for one pixel. Quincunx is fixed and
// RNG-free; Stochastic draws its phase from the pixel's own seeded stream,
// so the pattern is reproducible per pixel but varies pixel to pixel.
func Samples(mode AntiAliasing, n int, rnd *rng.XorShift32) []Offset {
	switch mode {
	case Quincunx:
		return quincunxOffsets
	case Stochastic:
		return stochasticSamples(n, rnd)
	default:
		return []Offset{{0, 0}}
	}
}

func stochasticSamples(n int, rnd *rng.XorShift32) []Offset {
	if n <= 1 {
		return []Offset{{rnd.Float64() - 0.5, rnd.Float64() - 0.5}}
	}
	phase := rnd.Float64() * 2 * math.Pi
	const radius = 0.25
	offsets := make([]Offset, n)
	for k := 0; k < n; k++ {
		theta := phase + 2*math.Pi*float64(k)/float64(n)
		offsets[k] = Offset{DX: radius * math.Cos(theta), DY: radius * math.Sin(theta)}
	}
	return offsets
}
