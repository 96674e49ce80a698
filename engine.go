package printstate

import (
	"fmt"
	"strings"
	"unicode"
)

// Engine applies lines, one at a time, to a single working MachineState.
type Engine struct {
	state MachineState

	// Warn is called for arguments which are skipped; it may be nil.
	Warn func(msg string)
}

func NewEngine(warn func(msg string)) *Engine {
	return &Engine{Warn: warn}
}

// State returns a snapshot of the working state.
func (eng *Engine) State() MachineState {
	return eng.state.Clone()
}

func (eng *Engine) warnf(format string, args ...interface{}) {
	if eng.Warn != nil {
		eng.Warn(fmt.Sprintf(format, args...))
	}
}

// Process applies one line of source text: comments go to the comment interpreter,
// anything else is tokenized and executed.
func (eng *Engine) Process(line string) error {
	trimmed := strings.TrimSpace(line)
	if strings.HasPrefix(trimmed, ";") {
		eng.Comment(line)
		return nil
	}

	toks := Tokenize(line)
	if len(toks) == 0 {
		eng.state.Extruding = false
		code, _, _ := strings.Cut(trimmed, ";")
		if strings.IndexFunc(code, isWordRune) >= 0 {
			return fmt.Errorf("%w: no command found", ErrUnsupported)
		} else if trimmed != "" {
			eng.warnf("no command found")
		}
		return nil
	}
	return eng.Execute(toks)
}

// Execute applies a tokenized command. The first token must be a recognized op-code.
func (eng *Engine) Execute(toks []Token) error {
	eng.state.Extruding = false

	cmd, err := Decode(toks)
	if err != nil {
		return err
	}

	switch cmd.Op {
	case RapidMove, LinearMove:
		eng.moveTo(cmd.Op, cmd.Args)
	case ClockwiseArc, CounterClockwiseArc:
		return eng.arcTo(cmd.Op, cmd.Args)
	case Dwell:
		eng.dwell(cmd.Args)
	case UnitsInches:
		return fmt.Errorf("%w: G20 set units to inches; only millimeters are supported",
			ErrUnsupported)
	case UnitsMillimeters, BedLeveling, CancelMesh, FirmwareNoOp:
		// Nothing tracked changes.
	case Home:
		eng.home(cmd.Args)
	case AbsolutePositioning:
		eng.state.Relative = false
	case RelativePositioning:
		eng.state.Relative = true
	case SetPosition:
		eng.setPosition(cmd.Args)
	case ToolPark:
		return eng.parkTool(cmd)
	case ToolSelect:
		eng.state.Tool = cmd.Tool
		eng.state.ToolSelected = true
		eng.toolModifiers(cmd)
	default:
		panic(fmt.Sprintf("unexpected op-code: %s", cmd.Op))
	}

	return nil
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func axisOf(letter byte) int {
	switch letter {
	case 'X':
		return X
	case 'Y':
		return Y
	case 'Z':
		return Z
	}
	panic(fmt.Sprintf("unexpected axis: %c", letter))
}

func (eng *Engine) moveTo(op OpCode, args []Token) {
	st := &eng.state
	for _, arg := range args {
		switch arg.Letter() {
		case 'X', 'Y', 'Z':
			num, ok := arg.Value()
			if !ok {
				eng.warnf("%s: expected a number: %s", op, arg)
				continue
			}
			axis := axisOf(arg.Letter())
			if st.Relative {
				st.Position[axis] += num
			} else {
				st.Position[axis] = num
			}
		case 'E':
			// Extrusion always accumulates, whatever the positioning mode.
			num, ok := arg.Value()
			if !ok {
				eng.warnf("%s: expected a number: %s", op, arg)
				continue
			}
			st.ExtrudedAmount += num
			st.Extruding = true
		case 'F':
			num, ok := arg.Value()
			if !ok {
				eng.warnf("%s: expected a number: %s", op, arg)
				continue
			}
			st.Feedrate = num
		default:
			eng.warnf("%s: argument %s not recognized", op, arg)
		}
	}
}

// arcTo only tracks the end point of the arc; the center (I, J) and radius (R) are dropped.
func (eng *Engine) arcTo(op OpCode, args []Token) error {
	var end []Token
	var sawX, sawY bool
	for _, arg := range args {
		switch arg.Letter() {
		case 'I', 'J', 'R':
			continue
		case 'X':
			sawX = sawX || arg.HasValue()
		case 'Y':
			sawY = sawY || arg.HasValue()
		}
		end = append(end, arg)
	}

	if !sawX || !sawY {
		return fmt.Errorf("%w: %s requires both X and Y end point coordinates", ErrProtocol, op)
	}

	eng.moveTo(op, end)
	return nil
}

func (eng *Engine) dwell(args []Token) {
	for _, arg := range args {
		switch arg.Letter() {
		case 'P', 'S':
		default:
			eng.warnf("G4: argument %s not recognized", arg)
		}
	}
}

func (eng *Engine) home(args []Token) {
	var sawAxis bool
	for _, arg := range args {
		switch arg.Letter() {
		case 'X', 'Y', 'Z':
			eng.state.Position[axisOf(arg.Letter())] = 0
			sawAxis = true
		case 'W', 'C', 'P', 'I':
		default:
			eng.warnf("G28: argument %s not recognized", arg)
		}
	}

	if !sawAxis {
		eng.state.Position = Position{}
	}
}

// setPosition handles G92: the difference between the old and the new value is kept in
// the offsets so that AbsolutePosition and TotalExtruded stay continuous.
func (eng *Engine) setPosition(args []Token) {
	st := &eng.state

	if len(args) == 0 {
		st.OriginOffset = st.OriginOffset.Add(st.Position)
		st.ExtrudeOffset += st.ExtrudedAmount
		st.Position = Position{}
		st.ExtrudedAmount = 0
		return
	}

	for _, arg := range args {
		// A letter without a number, eg. G92 Y, sets that value to zero.
		num, _ := arg.Value()
		switch arg.Letter() {
		case 'X', 'Y', 'Z':
			axis := axisOf(arg.Letter())
			st.OriginOffset[axis] += st.Position[axis] - num
			st.Position[axis] = num
		case 'E':
			st.ExtrudeOffset += st.ExtrudedAmount - num
			st.ExtrudedAmount = num
		default:
			eng.warnf("G92: argument %s not recognized", arg)
		}
	}
}

// parkTool handles P<n>. Parking may name tool 0, the active tool, or any tool when none
// is active; naming some other tool is a protocol violation.
func (eng *Engine) parkTool(cmd Command) error {
	st := &eng.state
	if cmd.Tool != 0 && st.ToolSelected && cmd.Tool != st.Tool {
		return fmt.Errorf("%w: %s while tool T%d is active", ErrProtocol, cmd.Code, st.Tool)
	}

	st.Tool = 0
	st.ToolSelected = false
	eng.toolModifiers(cmd)
	return nil
}

// toolModifiers accepts the firmware options of P and T without modelling them:
// F feedrate, S1 no XY move, M tool mapping, L Z lift, D Z return.
func (eng *Engine) toolModifiers(cmd Command) {
	for _, arg := range cmd.Args {
		switch arg.Letter() {
		case 'F', 'M', 'L', 'D':
		case 'S':
			if num, ok := arg.Value(); ok && num == 1 {
				continue
			}
			eng.warnf("%s: argument %s not recognized", cmd.Code, arg)
		default:
			eng.warnf("%s: argument %s not recognized", cmd.Code, arg)
		}
	}
}
