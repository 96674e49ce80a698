// Package printstate replays 3D printer G-code, as written by slicers such as
// PrusaSlicer, and records the machine state after every line.
package printstate

import (
	"fmt"
	"strconv"
)

// Axis indexes a Position.
const (
	X = iota
	Y
	Z
)

type Position [3]float64

func (pos Position) String() string {
	return fmt.Sprintf("{x: %s, y: %s, z: %s}", formatNumber(pos[X]), formatNumber(pos[Y]),
		formatNumber(pos[Z]))
}

func (pos Position) Add(other Position) Position {
	return Position{pos[X] + other[X], pos[Y] + other[Y], pos[Z] + other[Z]}
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

type ToolchangePhase byte

const (
	NoToolchange ToolchangePhase = iota
	ToolChange                   // ; CP TOOLCHANGE START
	ToolUnload                   // ; CP TOOLCHANGE UNLOAD
	ToolWipe                     // ; CP TOOLCHANGE WIPE
)

func (tp ToolchangePhase) String() string {
	switch tp {
	case NoToolchange:
		return "none"
	case ToolChange:
		return "tool_change"
	case ToolUnload:
		return "tool_unload"
	case ToolWipe:
		return "tool_wipe"
	}
	return fmt.Sprintf("ToolchangePhase(%d)", int(tp))
}

// MarshalText lets snapshots be dumped as YAML or JSON with readable phase names.
func (tp ToolchangePhase) MarshalText() ([]byte, error) {
	return []byte(tp.String()), nil
}

// MachineState is the printer state after a line has been applied. The zero value is the
// state before the first line: at the origin, absolute positioning, layer 0, no tool.
type MachineState struct {
	Position       Position          `json:"position" yaml:"position,flow"`
	OriginOffset   Position          `json:"origin_offset" yaml:"origin_offset,flow"`
	ExtrudedAmount float64           `json:"extruded_amount" yaml:"extruded_amount"`
	ExtrudeOffset  float64           `json:"extrude_offset" yaml:"extrude_offset"`
	Extruding      bool              `json:"extruding" yaml:"extruding"`
	Feedrate       float64           `json:"feedrate" yaml:"feedrate"`
	Relative       bool              `json:"relative" yaml:"relative"`
	Layer          int               `json:"layer" yaml:"layer"`
	LayerHeight    float64           `json:"layer_height" yaml:"layer_height"`
	MoveType       string            `json:"move_type,omitempty" yaml:"move_type,omitempty"`
	Phase          ToolchangePhase   `json:"toolchange_phase" yaml:"toolchange_phase"`
	Tool           uint              `json:"tool" yaml:"tool"`
	ToolSelected   bool              `json:"tool_selected" yaml:"tool_selected"`
	Variables      map[string]string `json:"variables,omitempty" yaml:"variables,omitempty"`
}

// Clone returns a copy which shares nothing with st.
func (st MachineState) Clone() MachineState {
	if st.Variables != nil {
		vars := make(map[string]string, len(st.Variables))
		for k, v := range st.Variables {
			vars[k] = v
		}
		st.Variables = vars
	}
	return st
}

// AbsolutePosition undoes every G92 reset: it is the position in the frame in place
// before the first reset.
func (st MachineState) AbsolutePosition() Position {
	return st.Position.Add(st.OriginOffset)
}

// TotalExtruded is the filament fed since the start, across G92 E resets.
func (st MachineState) TotalExtruded() float64 {
	return st.ExtrudedAmount + st.ExtrudeOffset
}

// SelectedTool returns the active tool, if any.
func (st MachineState) SelectedTool() (uint, bool) {
	return st.Tool, st.ToolSelected
}

func (st *MachineState) setVariable(key, val string) {
	if st.Variables == nil {
		st.Variables = map[string]string{}
	}
	st.Variables[key] = val
}
