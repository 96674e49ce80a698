// Package toolpath turns the per-line states of a document into the polylines a viewer
// draws: one set of extrusion paths per layer.
package toolpath

import (
	"math"

	"github.com/leftmike/printstate"
)

type Path []printstate.Position

type Layer struct {
	Number int
	Paths  []Path // extruding moves
	Travel []Path // non-extruding moves, one per line
}

// Extract groups consecutive lines with the same layer and splits each group into paths
// wherever extrusion starts or stops. A path starts at the position of the line before
// its first extruding line. Arcs are drawn as a series of chords.
//
// Positions are absolute, so a G92 reset moves nothing and draws nothing.
func Extract(doc *printstate.Document) []Layer {
	var layers []Layer
	var cur *Layer
	var prev printstate.Position
	var extruding bool

	for _, line := range doc.Lines {
		st := line.State
		pos := st.AbsolutePosition()
		if cur == nil || cur.Number != st.Layer {
			layers = append(layers, Layer{Number: st.Layer})
			cur = &layers[len(layers)-1]
			extruding = false
		}

		if st.Extruding {
			if !extruding {
				cur.Paths = append(cur.Paths, Path{prev})
			}
			last := len(cur.Paths) - 1
			cur.Paths[last] = append(cur.Paths[last], interpolate(prev, pos, line.Text)...)
		} else if pos != prev {
			cur.Travel = append(cur.Travel, append(Path{prev}, interpolate(prev, pos, line.Text)...))
		}
		extruding = st.Extruding
		prev = pos
	}

	return layers
}

// Find returns the layer with the given number.
func Find(layers []Layer, num int) (Layer, bool) {
	for _, l := range layers {
		if l.Number == num {
			return l, true
		}
	}
	return Layer{}, false
}

// Bounds returns the corners of the box holding every extrusion path; ok is false when
// there are no paths.
func Bounds(layers []Layer) (min, max printstate.Position, ok bool) {
	min = printstate.Position{math.Inf(1), math.Inf(1), math.Inf(1)}
	max = printstate.Position{math.Inf(-1), math.Inf(-1), math.Inf(-1)}

	for _, l := range layers {
		for _, p := range l.Paths {
			for _, pos := range p {
				for axis := range pos {
					min[axis] = math.Min(min[axis], pos[axis])
					max[axis] = math.Max(max[axis], pos[axis])
				}
				ok = true
			}
		}
	}

	if !ok {
		return printstate.Position{}, printstate.Position{}, false
	}
	return min, max, true
}

// Midpoint is the center of the bounding box of the extrusion paths.
func Midpoint(layers []Layer) (printstate.Position, bool) {
	min, max, ok := Bounds(layers)
	if !ok {
		return printstate.Position{}, false
	}
	var mid printstate.Position
	for axis := range mid {
		mid[axis] = (min[axis] + max[axis]) / 2
	}
	return mid, true
}
