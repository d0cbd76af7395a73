package motion

import (
	"testing"

	"prism/pkg/geom"
)

func TestTrackAtInterpolatesBetweenKeyframes(t *testing.T) {
	tr := Track{Keyframes: []Keyframe{
		{Time: 0, Position: geom.Vec3{X: 0, Y: 0, Z: 0}, Target: geom.Vec3{X: 0, Y: 0, Z: -1}},
		{Time: 10, Position: geom.Vec3{X: 10, Y: 0, Z: 0}, Target: geom.Vec3{X: 0, Y: 0, Z: -1}},
	}}
	pos, _ := tr.At(5)
	if pos.X != 5 {
		t.Errorf("expected interpolated X=5 at t=5, got %v", pos.X)
	}
}

func TestTrackAtClampsOutsideRange(t *testing.T) {
	tr := Track{Keyframes: []Keyframe{
		{Time: 0, Position: geom.Vec3{X: 0, Y: 0, Z: 0}},
		{Time: 10, Position: geom.Vec3{X: 10, Y: 0, Z: 0}},
	}}
	pos, _ := tr.At(-5)
	if pos.X != 0 {
		t.Errorf("expected clamp to first keyframe, got %v", pos.X)
	}
	pos, _ = tr.At(50)
	if pos.X != 10 {
		t.Errorf("expected clamp to last keyframe, got %v", pos.X)
	}
}

func TestTrackAtEmptyReturnsZeroValue(t *testing.T) {
	var tr Track
	pos, target := tr.At(5)
	if pos != (geom.Vec3{}) || target != (geom.Vec3{}) {
		t.Errorf("expected zero value for empty track, got %v %v", pos, target)
	}
}
