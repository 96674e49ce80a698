package printstate

import (
	"regexp"
	"strconv"
	"strings"
)

// Token is a single word of a command line: either an op-code such as G1, M104 or T0,
// or a parameter such as X135.599, E.0677 or a bare Y.
type Token string

var (
	tokenPattern = regexp.MustCompile(`[GMTDP]\d+\.?\d*|T\d+|[XYZABCEFHIJRS]-?\d*\.?\d*`)
)

// Tokenize splits one line into tokens. Anything after a ; is a comment and is dropped;
// whitespace between tokens is optional. Letters are case-insensitive: g1 x10 is G1 X10.
func Tokenize(line string) []Token {
	if i := strings.IndexByte(line, ';'); i >= 0 {
		line = line[:i]
	}
	line = strings.ToUpper(line)

	words := tokenPattern.FindAllString(line, -1)
	if len(words) == 0 {
		return nil
	}
	toks := make([]Token, len(words))
	for i, w := range words {
		toks[i] = Token(w)
	}
	return toks
}

func (tok Token) Letter() byte {
	if tok == "" {
		return 0
	}
	return tok[0]
}

// Value returns the number following the letter; ok is false when there is none.
func (tok Token) Value() (float64, bool) {
	if len(tok) < 2 {
		return 0, false
	}
	s := string(tok[1:])
	if s == "-" || s == "." || s == "-." {
		return 0, false
	}
	num, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return num, true
}

func (tok Token) HasValue() bool {
	_, ok := tok.Value()
	return ok
}

// IsOpCode reports whether tok names a command rather than supplying an argument.
func (tok Token) IsOpCode() bool {
	if len(tok) < 2 {
		return false
	}
	switch tok[0] {
	case 'G', 'M', 'T', 'D', 'P':
		return tok[1] >= '0' && tok[1] <= '9'
	}
	return false
}

func (tok Token) String() string {
	return string(tok)
}
