package toolpath

import (
	"errors"
	"math"

	"github.com/leftmike/printstate"
)

const (
	minimumDelta = 0.0001

	// Arcs are drawn as chords of about this length.
	chordLength = 0.5
)

func hypot(pos1, pos2 printstate.Position) float64 {
	return math.Hypot(pos1[printstate.X]-pos2[printstate.X], pos1[printstate.Y]-pos2[printstate.Y])
}

func radiusCenter(curPos, endPos printstate.Position, radius float64,
	clockwise bool) (printstate.Position, error) {

	if curPos[printstate.X] == endPos[printstate.X] && curPos[printstate.Y] == endPos[printstate.Y] {
		return printstate.Position{}, errors.New("expected endpoint different than current with radius")
	}

	dist := hypot(curPos, endPos)
	delta := dist - math.Abs(radius)*2
	if delta > minimumDelta {
		return printstate.Position{}, errors.New("radius too small")
	} else if delta > 0.0 {
		dist = math.Abs(radius) * 2
	}

	theta := math.Atan2(endPos[printstate.Y]-curPos[printstate.Y],
		endPos[printstate.X]-curPos[printstate.X])
	if (clockwise && radius > 0.0) || (!clockwise && radius < 0.0) {
		theta -= math.Pi / 2.0
	} else {
		theta += math.Pi / 2.0
	}

	offset := math.Abs(radius) * math.Cos(math.Asin(dist/(math.Abs(radius)*2)))
	return printstate.Position{
		(curPos[printstate.X]+endPos[printstate.X])/2 + offset*math.Cos(theta),
		(curPos[printstate.Y]+endPos[printstate.Y])/2 + offset*math.Sin(theta),
		curPos[printstate.Z],
	}, nil
}

func angleOf(pos, centerPos printstate.Position) float64 {
	angle := math.Atan2(pos[printstate.Y]-centerPos[printstate.Y],
		pos[printstate.X]-centerPos[printstate.X])
	if angle < 0.0 {
		angle += math.Pi * 2
	}
	return angle
}

// arcPoints returns the points along an arc in the XY plane from curPos to endPos, not
// including curPos. Z changes linearly along the arc.
func arcPoints(curPos, endPos, centerPos printstate.Position,
	clockwise bool) []printstate.Position {

	radius := hypot(curPos, centerPos)
	if radius < minimumDelta {
		return []printstate.Position{endPos}
	}

	angle := angleOf(curPos, centerPos)
	endAngle := angleOf(endPos, centerPos)

	angleDir := 1.0
	if clockwise {
		angleDir = -1.0
	}

	var angleTotal float64
	if angle == endAngle {
		angleTotal = math.Pi * 2
	} else if clockwise {
		angleTotal = angle - endAngle
	} else {
		angleTotal = endAngle - angle
	}
	if angleTotal < 0.0 {
		angleTotal += math.Pi * 2
	}

	normal := endPos[printstate.Z] - curPos[printstate.Z]
	numSteps := math.Floor(math.Hypot(angleTotal*radius, math.Abs(normal)) / chordLength)
	stepAngle := angleTotal / numSteps
	stepNormal := normal / numSteps

	var pts []printstate.Position
	for step := float64(1.0); step < numSteps; step += 1.0 {
		a := angle + step*stepAngle*angleDir
		pts = append(pts, printstate.Position{
			centerPos[printstate.X] + radius*math.Cos(a),
			centerPos[printstate.Y] + radius*math.Sin(a),
			curPos[printstate.Z] + step*stepNormal,
		})
	}
	return append(pts, endPos)
}

// interpolate returns the points drawn for the move from prevPos to endPos made by the
// command in text. G2 and G3 are drawn along their arc, using I and J offsets from prevPos
// for the center, or R for the radius; anything else is a straight segment.
func interpolate(prevPos, endPos printstate.Position, text string) []printstate.Position {
	straight := []printstate.Position{endPos}

	cmd, err := printstate.Decode(printstate.Tokenize(text))
	if err != nil ||
		(cmd.Op != printstate.ClockwiseArc && cmd.Op != printstate.CounterClockwiseArc) {
		return straight
	}
	clockwise := cmd.Op == printstate.ClockwiseArc

	centerPos := prevPos
	var radius float64
	var offset bool
	for _, arg := range cmd.Args {
		num, ok := arg.Value()
		if !ok {
			continue
		}
		switch arg.Letter() {
		case 'I':
			centerPos[printstate.X] += num
			offset = true
		case 'J':
			centerPos[printstate.Y] += num
			offset = true
		case 'R':
			radius = num
		}
	}

	if !offset {
		if radius == 0.0 {
			return straight
		}
		centerPos, err = radiusCenter(prevPos, endPos, radius, clockwise)
		if err != nil {
			return straight
		}
	}
	return arcPoints(prevPos, endPos, centerPos, clockwise)
}
