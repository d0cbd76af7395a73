package xform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prism/pkg/geom"
)

func TestParseTranslate(t *testing.T) {
	tr, err := Parse([]string{"translate(1,2,3)"})
	require.NoError(t, err)
	got := tr.ApplyPoint(geom.Vec3{X: 0, Y: 0, Z: 0})
	assert.Equal(t, geom.Vec3{X: 1, Y: 2, Z: 3}, got)
}

func TestParseUniformScale(t *testing.T) {
	tr, err := Parse([]string{"scale(2,2,2)"})
	require.NoError(t, err)
	s, err := tr.UniformScale()
	require.NoError(t, err)
	assert.InDelta(t, 2.0, s, 1e-9)
}

func TestParseRejectsShear(t *testing.T) {
	_, err := Parse([]string{"scale(1,2,3)", "rotate(0,45,0)"})
	require.Error(t, err)
}

func TestParseRejectsMalformed(t *testing.T) {
	_, err := Parse([]string{"rotate(1,2)"})
	require.Error(t, err)
}

func TestAxisScaleNoRotation(t *testing.T) {
	tr, err := Parse([]string{"scale(1,2,3)"})
	require.NoError(t, err)
	got := tr.AxisScale()
	assert.InDelta(t, 1.0, got.X, 1e-9)
	assert.InDelta(t, 2.0, got.Y, 1e-9)
	assert.InDelta(t, 3.0, got.Z, 1e-9)
}
