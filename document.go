package printstate

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/leftmike/printstate/internal/logging"
)

// maxLineLength bounds a single source line; slicers emit lines far shorter than this.
const maxLineLength = 1024 * 1024

// Line is one line of source text and the state after it was applied.
type Line struct {
	Text  string
	State MachineState
}

// Document holds every line of a program with its state snapshot, in source order.
type Document struct {
	Lines     []Line
	LineCount int
	Warnings  []Warning
}

type Options struct {
	// Logger receives warnings; the default logger is used when it is nil.
	Logger *log.Logger

	// QuietWarnings stops warnings from being logged. They are still collected in
	// Document.Warnings.
	QuietWarnings bool
}

// Build constructs a Document from the text of a program.
func Build(text string, opts Options) (*Document, error) {
	return Read(strings.NewReader(text), opts)
}

// Read constructs a Document from r. A fatal error stops the build and is returned as a
// *LineError naming the offending line.
func Read(r io.Reader, opts Options) (*Document, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Default()
	}

	doc := &Document{}
	var num int
	var text string
	eng := NewEngine(func(msg string) {
		w := Warning{Line: num, Text: text, Msg: msg}
		doc.Warnings = append(doc.Warnings, w)
		if !opts.QuietWarnings {
			logger.Warn(msg, logging.FieldLine, num, logging.FieldText, text)
		}
	})

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	for scanner.Scan() {
		num += 1
		text = scanner.Text()

		err := eng.Process(text)
		if err != nil {
			return nil, &LineError{Line: num, Text: text, Err: err}
		}
		doc.Lines = append(doc.Lines, Line{Text: text, State: eng.State()})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read line %d: %w", num+1, err)
	}

	doc.LineCount = len(doc.Lines)
	logger.Debug("document built", logging.FieldLines, doc.LineCount,
		logging.FieldWarnings, len(doc.Warnings))
	return doc, nil
}

// Final returns the state after the last line.
func (doc *Document) Final() MachineState {
	if len(doc.Lines) == 0 {
		return MachineState{}
	}
	return doc.Lines[len(doc.Lines)-1].State
}

// Layers returns the highest layer reached; layers only ever increase.
func (doc *Document) Layers() int {
	return doc.Final().Layer
}
