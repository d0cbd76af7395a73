package render

import "prism/pkg/sceneerr"

// Options configures one render call (§6's "Render call" interface).
type Options struct {
	MaxDepth     int
	AntiAliasing AntiAliasing
	Samples      int // required for Stochastic, ignored otherwise
	Threads      int // 0 means hardware concurrency
}

// DefaultOptions matches the documented defaults: max_depth=10, NoJitter.
func DefaultOptions() Options {
	return Options{MaxDepth: 10, AntiAliasing: NoJitter}
}

// Validate enforces the one cross-field invariant the renderer owns:
// Stochastic needs at least one sample.
func (o Options) Validate() error {
	if o.AntiAliasing == Stochastic && o.Samples < 1 {
		return sceneerr.New(sceneerr.IncompatibleOptions, "stochastic anti-aliasing requires samples >= 1")
	}
	return nil
}

// EffectiveAntiAliasing applies the Quincunx+outline fallback rule from
// §4.7: Quincunx with outlines enabled degrades to NoJitter.
func (o Options) EffectiveAntiAliasing(outlineEnabled bool) AntiAliasing {
	if o.AntiAliasing == Quincunx && outlineEnabled {
		return NoJitter
	}
	return o.AntiAliasing
}
