package param

import (
	"strings"
	"unicode/utf8"
)

// scanState tracks where the scan currently is with respect to double quotes
// and backslash escapes. An escape makes exactly the next character inert, so
// it gets its own pair of states rather than a side flag: two backslashes in
// a row consume each other and whatever follows them is live again.
type scanState int

const (
	statePlain scanState = iota
	stateQuoted
	stateEscapedPlain
	stateEscapedQuoted
)

// scanner splits an input string into raw parameter tokens. A delimiter only
// ends a token when it is neither inside a double-quoted span nor escaped.
// Quote state is continuous across the whole input, not reset per token, so a
// delimiter that follows an unbalanced quote is still absorbed into the token.
//
// The quote and backslash characters themselves stay in the token text
// exactly as they appeared. Stripping them is the splitter's job.
type scanner struct {
	input  string
	delims string
	pos    int
	state  scanState
	tok    string
	done   bool
}

func newScanner(input string, delims []rune) *scanner {
	return &scanner{input: input, delims: string(delims)}
}

// scan advances to the next token, which is then available from text(). It
// returns false once the input is exhausted. The end of input always ends the
// final token, whether or not a delimiter was seen, so even an empty input
// yields one (empty) token.
func (s *scanner) scan() bool {
	if s.done {
		return false
	}

	start := s.pos
	for s.pos < len(s.input) {
		c, size := utf8.DecodeRuneInString(s.input[s.pos:])
		switch s.state {
		case stateEscapedPlain:
			s.state = statePlain
		case stateEscapedQuoted:
			s.state = stateQuoted
		case statePlain:
			switch {
			case c == '\\':
				s.state = stateEscapedPlain
			case c == '"':
				s.state = stateQuoted
			case strings.ContainsRune(s.delims, c):
				s.tok = s.input[start:s.pos]
				s.pos += size
				return true
			}
		case stateQuoted:
			switch c {
			case '\\':
				s.state = stateEscapedQuoted
			case '"':
				s.state = statePlain
			}
		}
		s.pos += size
	}

	s.tok = s.input[start:]
	s.done = true
	return true
}

// text returns the raw token found by the last call to scan.
func (s *scanner) text() string {
	return s.tok
}

// indexUnquotedEquals locates the first "=" in the token that is neither
// inside double quotes nor escaped, walking the token with a fresh
// quote/escape state. It returns -1 when the token holds no such character.
func indexUnquotedEquals(tok string) int {
	state := statePlain
	for i, c := range tok {
		switch state {
		case stateEscapedPlain:
			state = statePlain
		case stateEscapedQuoted:
			state = stateQuoted
		case statePlain:
			switch c {
			case '\\':
				state = stateEscapedPlain
			case '"':
				state = stateQuoted
			case '=':
				return i
			}
		case stateQuoted:
			switch c {
			case '\\':
				state = stateEscapedQuoted
			case '"':
				state = statePlain
			}
		}
	}
	return -1
}

// unquote strips exactly one pair of enclosing double quotes from a trimmed
// value. It only applies when the value both begins and ends with a quote and
// the final quote is not hidden behind a backslash, so a dangling open quote
// like `"stuff` stays as it is. Interior content, including any backslash
// escapes, is kept byte for byte.
func unquote(v string) string {
	if len(v) < 2 || v[0] != '"' || v[len(v)-1] != '"' {
		return v
	}

	state := statePlain
	for i, c := range v {
		switch state {
		case stateEscapedPlain:
			if i == len(v)-1 {
				return v
			}
			state = statePlain
		case stateEscapedQuoted:
			if i == len(v)-1 {
				return v
			}
			state = stateQuoted
		case statePlain:
			switch c {
			case '\\':
				state = stateEscapedPlain
			case '"':
				state = stateQuoted
			}
		case stateQuoted:
			switch c {
			case '\\':
				state = stateEscapedQuoted
			case '"':
				state = statePlain
			}
		}
	}
	return v[1 : len(v)-1]
}
