package vmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec3(t *testing.T) {
	a := XYZ(1, 2, 3)
	b := XYZ(4, 5, 6)

	assert.Equal(t, XYZ(5, 7, 9), a.Add(b))
	assert.Equal(t, XYZ(-3, -3, -3), a.Sub(b))
	assert.Equal(t, XYZ(2, 4, 6), a.Scale(2))
	assert.Equal(t, XYZ(2, 2.5, 3), b.Div(2))
	assert.InDelta(t, 32.0, a.Dot(b), 1e-6)
	assert.Equal(t, XYZ(-3, 6, -3), a.Cross(b))
	assert.InDelta(t, 5.0, XYZ(3, 4, 0).Len(), 1e-6)
	assert.InDelta(t, 25.0, XYZ(3, 4, 0).Len2(), 1e-6)
	assert.InDelta(t, 1.0, a.Normal().Len(), 1e-6)
}

func TestRemap(t *testing.T) {
	assert.Equal(t, 50, Remap(5, -10, 10, -100, 100))
	assert.InDelta(t, 0.0, Remap(0.5, 0.0, 1.0, -1.0, 1.0), 1e-9)
	// Out of range stays out of range proportionally.
	assert.InDelta(t, 3.0, Remap(1.5, 0.0, 1.0, 0.0, 2.0), 1e-9)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 5, Clamp(5, 0, 10))
	assert.Equal(t, 0, Clamp(-3, 0, 10))
	assert.Equal(t, 10, Clamp(42, 0, 10))
	assert.InDelta(t, 0.25, Clamp(0.25, 0.0, 1.0), 1e-9)
}
