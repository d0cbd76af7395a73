// Package motion implements keyframed camera motion, an opt-in extension
// beyond the static single-exposure core: a Track interpolates camera
// position and target across a list of timed keyframes so a caller can
// render an animation by sampling At per frame.
package motion

import "prism/pkg/geom"

// Keyframe pins a camera's position and look-at target at a point in time.
type Keyframe struct {
	Time     float64
	Position geom.Vec3
	Target   geom.Vec3
}

// Track is an ordered list of keyframes sampled by time via linear
// interpolation between the two bracketing keyframes.
type Track struct {
	Keyframes []Keyframe
}

// At returns the interpolated position and target at time t. A track with
// no keyframes returns the zero value; one keyframe holds that value for
// all t; t outside the track's range clamps to the nearest endpoint.
func (tr Track) At(t float64) (position, target geom.Vec3) {
	kfs := tr.Keyframes
	if len(kfs) == 0 {
		return geom.Vec3{}, geom.Vec3{}
	}
	if t <= kfs[0].Time {
		return kfs[0].Position, kfs[0].Target
	}
	last := kfs[len(kfs)-1]
	if t >= last.Time {
		return last.Position, last.Target
	}

	prev, next := kfs[0], last
	for i := 1; i < len(kfs); i++ {
		if kfs[i].Time >= t {
			prev, next = kfs[i-1], kfs[i]
			break
		}
	}
	if next.Time == prev.Time {
		return prev.Position, prev.Target
	}
	alpha := (t - prev.Time) / (next.Time - prev.Time)
	return prev.Position.Lerp(next.Position, alpha), prev.Target.Lerp(next.Target, alpha)
}
