package toolpath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leftmike/printstate"
	"github.com/leftmike/printstate/toolpath"
)

const program = `G1 Z0.2 F600
;LAYER_CHANGE
;Z:0.2
G1 X10 Y10
G1 X20 Y10 E1
G1 X20 Y20 E1
G1 X30 Y30
G1 X40 Y30 E1
;LAYER_CHANGE
;Z:0.4
G1 Z0.4
G1 X10 Y10 E1
`

func build(t *testing.T, s string) *printstate.Document {
	t.Helper()

	doc, err := printstate.Build(s, printstate.Options{QuietWarnings: true})
	require.NoError(t, err)
	return doc
}

func TestExtract(t *testing.T) {
	layers := toolpath.Extract(build(t, program))
	require.Len(t, layers, 3)

	assert.Equal(t, 0, layers[0].Number)
	assert.Empty(t, layers[0].Paths)
	assert.Equal(t, []toolpath.Path{{{0, 0, 0}, {0, 0, 0.2}}}, layers[0].Travel)

	assert.Equal(t, 1, layers[1].Number)
	assert.Equal(t, []toolpath.Path{
		{{10, 10, 0.2}, {20, 10, 0.2}, {20, 20, 0.2}},
		{{30, 30, 0.2}, {40, 30, 0.2}},
	}, layers[1].Paths)
	assert.Len(t, layers[1].Travel, 2)

	assert.Equal(t, 2, layers[2].Number)
	assert.Equal(t, []toolpath.Path{
		{{40, 30, 0.4}, {10, 10, 0.4}},
	}, layers[2].Paths)

	l, ok := toolpath.Find(layers, 2)
	assert.True(t, ok)
	assert.Equal(t, 2, l.Number)
	_, ok = toolpath.Find(layers, 7)
	assert.False(t, ok)
}

func TestCommentSplitsPath(t *testing.T) {
	layers := toolpath.Extract(build(t, `G1 X1 E1
;WIDTH:0.45
G1 X2 E1
`))
	require.Len(t, layers, 1)
	assert.Equal(t, []toolpath.Path{
		{{0, 0, 0}, {1, 0, 0}},
		{{1, 0, 0}, {2, 0, 0}},
	}, layers[0].Paths)
}

func TestSetPositionDrawsNothing(t *testing.T) {
	layers := toolpath.Extract(build(t, `G1 X50 Y50
G92 X0 Y0
G1 X10 E1
G92 E0
G1 X20 E1
`))
	require.Len(t, layers, 1)
	assert.Equal(t, []toolpath.Path{{{0, 0, 0}, {50, 50, 0}}}, layers[0].Travel)
	assert.Equal(t, []toolpath.Path{
		{{50, 50, 0}, {60, 50, 0}},
		{{60, 50, 0}, {70, 50, 0}},
	}, layers[0].Paths)
}

func TestBounds(t *testing.T) {
	layers := toolpath.Extract(build(t, program))

	min, max, ok := toolpath.Bounds(layers)
	require.True(t, ok)
	assert.Equal(t, printstate.Position{10, 10, 0.2}, min)
	assert.Equal(t, printstate.Position{40, 30, 0.4}, max)

	mid, ok := toolpath.Midpoint(layers)
	require.True(t, ok)
	assert.InDelta(t, 25.0, mid[printstate.X], 1e-9)
	assert.InDelta(t, 20.0, mid[printstate.Y], 1e-9)
	assert.InDelta(t, 0.3, mid[printstate.Z], 1e-9)

	_, _, ok = toolpath.Bounds(toolpath.Extract(build(t, "G28\n")))
	assert.False(t, ok)
}
