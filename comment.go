package printstate

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	variablePattern = regexp.MustCompile(`^\s*;\s*([\p{L}\p{N}_\s]+)=\s*(.*)$`)

	toolchangeMarkers = []struct {
		prefix string
		phase  ToolchangePhase
	}{
		{"; CP TOOLCHANGE START", ToolChange},
		{"; CP TOOLCHANGE UNLOAD", ToolUnload},
		{"; CP TOOLCHANGE WIPE", ToolWipe},
		{"; CP TOOLCHANGE END", NoToolchange},
	}
)

// Comment folds a ; comment line into the state. Only the first matching form applies:
// key = value variables, ;LAYER_CHANGE, ;Z:<height>, ; CP TOOLCHANGE markers, ;TYPE:.
func (eng *Engine) Comment(line string) {
	st := &eng.state
	st.Extruding = false

	if m := variablePattern.FindStringSubmatch(line); m != nil {
		st.setVariable(strings.TrimSpace(m[1]), strings.TrimSpace(m[2]))
		return
	}

	comment := strings.TrimLeft(line, " \t")
	if strings.HasPrefix(comment, ";LAYER_CHANGE") {
		st.Layer += 1
	} else if strings.HasPrefix(comment, ";Z:") {
		s := strings.TrimSpace(field(comment))
		height, err := strconv.ParseFloat(s, 64)
		if err != nil {
			eng.warnf("layer height: expected a number: %q", s)
			return
		}
		st.LayerHeight = height
	} else if strings.HasPrefix(comment, "; CP TOOLCHANGE ") {
		for _, tm := range toolchangeMarkers {
			if strings.HasPrefix(comment, tm.prefix) {
				st.Phase = tm.phase
				break
			}
		}
	} else if strings.HasPrefix(comment, ";TYPE:") {
		st.MoveType = field(comment)
	}
}

// field returns the text between the first and second colon.
func field(comment string) string {
	s := comment[strings.IndexByte(comment, ':')+1:]
	if i := strings.IndexByte(s, ':'); i >= 0 {
		s = s[:i]
	}
	return s
}
