package printstate

import (
	"fmt"
	"strconv"
)

type OpCode int

const (
	RapidMove             OpCode = iota + 1 // G0
	LinearMove                              // G1
	ClockwiseArc                            // G2
	CounterClockwiseArc                     // G3
	Dwell                                   // G4
	UnitsInches                             // G20
	UnitsMillimeters                        // G21
	Home                                    // G28
	BedLeveling                             // G29
	CancelMesh                              // G80
	AbsolutePositioning                     // G90
	RelativePositioning                     // G91
	SetPosition                             // G92
	ToolPark                                // P<n>
	ToolSelect                              // T<n>
	FirmwareNoOp                            // M codes which do not change tracked state
)

var (
	gCodes = map[string]OpCode{
		"G0":  RapidMove,
		"G1":  LinearMove,
		"G2":  ClockwiseArc,
		"G3":  CounterClockwiseArc,
		"G4":  Dwell,
		"G20": UnitsInches,
		"G21": UnitsMillimeters,
		"G28": Home,
		"G29": BedLeveling,
		"G80": CancelMesh,
		"G90": AbsolutePositioning,
		"G91": RelativePositioning,
		"G92": SetPosition,
	}

	// Known M codes, all of which leave position, extrusion and layer alone.
	mCodes = map[string]string{
		"M17":    "enable steppers",
		"M73":    "set build percentage",
		"M77":    "stop print timer",
		"M82":    "absolute extrusion",
		"M83":    "relative extrusion",
		"M84":    "disable steppers",
		"M104":   "set hotend temperature",
		"M104.1": "set hotend temperature with preheat",
		"M106":   "set fan speed",
		"M107":   "fan off",
		"M109":   "wait for hotend temperature",
		"M115":   "firmware capabilities",
		"M117":   "display message",
		"M140":   "set bed temperature",
		"M142":   "set heatbreak temperature",
		"M190":   "wait for bed temperature",
		"M201":   "set max acceleration",
		"M203":   "set max feedrate",
		"M204":   "set default acceleration",
		"M205":   "set advanced settings",
		"M217":   "set filament swap parameters",
		"M220":   "set speed factor",
		"M221":   "set flow rate",
		"M302":   "allow cold extrusion",
		"M486":   "object labels",
		"M555":   "set print area",
		"M572":   "set pressure advance",
		"M593":   "set input shaping",
		"M862.1": "check nozzle diameter",
		"M862.2": "check printer model code",
		"M862.3": "check model name",
		"M862.5": "check gcode level",
		"M862.6": "check firmware feature",
		"M900":   "set linear advance",
	}
)

func (op OpCode) String() string {
	switch op {
	case RapidMove:
		return "G0"
	case LinearMove:
		return "G1"
	case ClockwiseArc:
		return "G2"
	case CounterClockwiseArc:
		return "G3"
	case Dwell:
		return "G4"
	case UnitsInches:
		return "G20"
	case UnitsMillimeters:
		return "G21"
	case Home:
		return "G28"
	case BedLeveling:
		return "G29"
	case CancelMesh:
		return "G80"
	case AbsolutePositioning:
		return "G90"
	case RelativePositioning:
		return "G91"
	case SetPosition:
		return "G92"
	case ToolPark:
		return "P"
	case ToolSelect:
		return "T"
	case FirmwareNoOp:
		return "M"
	}
	return fmt.Sprintf("OpCode(%d)", int(op))
}

// Command is a decoded op-code together with the tokens that follow it.
type Command struct {
	Op   OpCode
	Code Token // the op-code token as written, eg. M104.1 or T3
	Tool uint  // for ToolPark and ToolSelect
	Args []Token
}

// Decode maps the first token of a line onto the closed set of recognized op-codes.
// Anything outside that set is an ErrUnsupported error.
func Decode(toks []Token) (Command, error) {
	if len(toks) == 0 {
		return Command{}, fmt.Errorf("%w: empty command", ErrUnsupported)
	}

	code := toks[0]
	cmd := Command{Code: code, Args: toks[1:]}
	if !code.IsOpCode() {
		return Command{}, fmt.Errorf("%w: expected an op-code, got %s", ErrUnsupported, code)
	}

	switch code.Letter() {
	case 'G':
		op, ok := gCodes[string(code)]
		if !ok {
			return Command{}, fmt.Errorf("%w: command %s", ErrUnsupported, code)
		}
		cmd.Op = op
	case 'M':
		if _, ok := mCodes[string(code)]; !ok {
			return Command{}, fmt.Errorf("%w: command %s", ErrUnsupported, code)
		}
		cmd.Op = FirmwareNoOp
	case 'P', 'T':
		tool, err := strconv.ParseUint(string(code[1:]), 10, 32)
		if err != nil {
			return Command{}, fmt.Errorf("%w: expected a tool number: %s", ErrUnsupported, code)
		}
		cmd.Tool = uint(tool)
		if code.Letter() == 'P' {
			cmd.Op = ToolPark
		} else {
			cmd.Op = ToolSelect
		}
	default:
		return Command{}, fmt.Errorf("%w: command %s", ErrUnsupported, code)
	}

	return cmd, nil
}
