package render

import (
	"log"
	"math"
	"runtime"
	"sync"

	"github.com/google/uuid"

	"prism/pkg/geom"
	"prism/pkg/rng"
	"prism/pkg/scene"
	"prism/pkg/shade"
)

const tileSize = 32

// tile is a rectangular pixel block, half-open on the high edge.
type tile struct{ X0, Y0, X1, Y1 int }

// Render rasterizes sc into an H*W framebuffer per opts. The output is
// byte-identical regardless of opts.Threads (§5, §8 determinism property):
// every worker only ever touches its own tile's pixels, and every pixel's
// RNG seed is a pure function of (x, y, sample index, domain tag).
func Render(sc *scene.Scene, width, height int, opts Options) (*Framebuffer, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	runID := uuid.New().String()
	outlineEnabled := sc.Settings.Outline != nil && sc.Settings.Outline.Enabled
	aaMode := opts.EffectiveAntiAliasing(outlineEnabled)

	fb := NewFramebuffer(width, height)
	var aux *auxBuffer
	if outlineEnabled {
		aux = newAuxBuffer(width, height)
	}

	shader := shade.Shader{Scene: sc, MaxDepth: opts.MaxDepth}

	threads := opts.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	tiles := makeTiles(width, height)
	// runID is an advisory tag for log lines only, never affects pixel output.
	log.Printf("render %s: %dx%d, %d tiles, %d workers", runID, width, height, len(tiles), threads)
	if aaMode != opts.AntiAliasing {
		log.Printf("render %s: quincunx anti-aliasing falls back to no-jitter while outlines are enabled", runID)
	}

	pool(threads, tiles, func(t tile) {
		renderTile(shader, fb, aux, t, width, height, aaMode, opts.Samples)
	})

	if outlineEnabled {
		applyOutline(fb, aux, *sc.Settings.Outline)
	}

	return fb, nil
}

func makeTiles(width, height int) []tile {
	var tiles []tile
	for y := 0; y < height; y += tileSize {
		for x := 0; x < width; x += tileSize {
			tiles = append(tiles, tile{
				X0: x, Y0: y,
				X1: minInt(x+tileSize, width),
				Y1: minInt(y+tileSize, height),
			})
		}
	}
	return tiles
}

// pool runs fn over every tile using a fixed-size worker pool; each tile is
// dispatched to exactly one worker and workers never share pixel ranges.
func pool(threads int, tiles []tile, fn func(tile)) {
	jobs := make(chan tile, len(tiles))
	var workers sync.WaitGroup
	workers.Add(threads)
	for i := 0; i < threads; i++ {
		go func() {
			defer workers.Done()
			for t := range jobs {
				fn(t)
			}
		}()
	}
	for _, t := range tiles {
		jobs <- t
	}
	close(jobs)
	workers.Wait()
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func renderTile(shader shade.Shader, fb *Framebuffer, aux *auxBuffer, t tile, width, height int, aaMode AntiAliasing, samples int) {
	for y := t.Y0; y < t.Y1; y++ {
		for x := t.X0; x < t.X1; x++ {
			renderPixel(shader, fb, aux, x, y, width, height, aaMode, samples)
		}
	}
}

func renderPixel(shader shade.Shader, fb *Framebuffer, aux *auxBuffer, x, y, width, height int, aaMode AntiAliasing, samples int) {
	phaseRNG := rng.ForPixel(x, y, 0, "jitter")
	offsets := Samples(aaMode, samples, phaseRNG)

	var sum geom.Color
	var centerDepth float64
	var centerNormal geom.Vec3
	centerHit := false

	cam := shader.Scene.Camera
	for s, off := range offsets {
		ray := cam.PrimaryRay(x, y, off.DX, off.DY, width, height)
		lightRNG := rng.ForPixel(x, y, s, "arealight")
		c := shader.Shade(ray, 0, lightRNG)
		sum = sum.Add(c)

		if aux != nil && s == 0 {
			if hit, ok := shade.ClosestHit(shader.Scene.Shapes, ray, geom.Epsilon, math.Inf(1)); ok {
				centerDepth, centerNormal, centerHit = hit.T, hit.Normal.ToVec3(), true
			}
		}
	}

	avg := sum.Mul(1.0 / float64(len(offsets)))
	fb.Set(x, y, avg)
	if aux != nil {
		aux.set(x, y, centerDepth, centerNormal, centerHit)
	}
}
