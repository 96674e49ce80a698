package toolpath_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leftmike/printstate"
	"github.com/leftmike/printstate/toolpath"
)

func distance(pos, center printstate.Position) float64 {
	return math.Hypot(pos[printstate.X]-center[printstate.X], pos[printstate.Y]-center[printstate.Y])
}

func TestArcCenterOffset(t *testing.T) {
	layers := toolpath.Extract(build(t, "G1 X10 Y0 E1\nG3 X0 Y10 I-10 J0 E1\n"))
	require.Len(t, layers, 1)
	require.Len(t, layers[0].Paths, 1)

	path := layers[0].Paths[0]
	assert.Equal(t, printstate.Position{0, 0, 0}, path[0])
	assert.Equal(t, printstate.Position{10, 0, 0}, path[1])
	assert.Equal(t, printstate.Position{0, 10, 0}, path[len(path)-1])
	assert.Greater(t, len(path), 10)

	for _, pos := range path[1:] {
		assert.InDelta(t, 10, distance(pos, printstate.Position{}), 1e-9)
		assert.GreaterOrEqual(t, pos[printstate.X], -1e-9)
		assert.GreaterOrEqual(t, pos[printstate.Y], -1e-9)
	}
}

func TestArcRadius(t *testing.T) {
	layers := toolpath.Extract(build(t, "G2 X20 Y0 R10 E1\n"))
	require.Len(t, layers, 1)
	require.Len(t, layers[0].Paths, 1)

	path := layers[0].Paths[0]
	assert.Equal(t, printstate.Position{20, 0, 0}, path[len(path)-1])
	for _, pos := range path {
		assert.InDelta(t, 10, distance(pos, printstate.Position{10, 0, 0}), 1e-6)
	}

	// Clockwise from the left end of the diameter passes over the top.
	mid := path[len(path)/2]
	assert.Greater(t, mid[printstate.Y], 9.0)
}

func TestArcHelix(t *testing.T) {
	layers := toolpath.Extract(build(t, "G1 X10 E1\nG2 X-10 Y0 Z2 I-10 J0 E1\n"))
	path := layers[0].Paths[0]

	prevZ := -1.0
	for _, pos := range path[1:] {
		assert.Greater(t, pos[printstate.Z], prevZ)
		prevZ = pos[printstate.Z]
	}
	assert.Equal(t, 2.0, prevZ)

	mid := path[1+(len(path)-1)/2]
	assert.Less(t, mid[printstate.Y], 0.0)
}

func TestArcTravel(t *testing.T) {
	layers := toolpath.Extract(build(t, "G0 X10\nG3 X-10 Y0 I-10\n"))
	require.Len(t, layers[0].Travel, 2)
	assert.Equal(t, toolpath.Path{{0, 0, 0}, {10, 0, 0}}, layers[0].Travel[0])
	assert.Greater(t, len(layers[0].Travel[1]), 3)
}
