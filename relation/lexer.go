package relation

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

const (
	TkNumber = iota
	TkError
	TkEof
)

// Row lexer. A relation file line is a list of whitespace separated numbers,
// each token is handed to strconv.ParseFloat as is, so everything Go accepts
// as a float64 literal (exponent, inf, nan, hex mantissa) is accepted here.
type Lexeme struct {
	Text string
	Real float64
}

type Lexer struct {
	Source string
	Cursor int
	Token  int
	Lexeme Lexeme
	Line   int
}

func newLexer(line int, source string) *Lexer {
	return &Lexer{
		Source: source,
		Token:  -1,
		Line:   line,
	}
}

func (self *Lexer) nextRune() (rune, int) {
	if self.Cursor == len(self.Source) {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRuneInString(self.Source[self.Cursor:])
}

func (self *Lexer) isWS(r rune) bool {
	switch r {
	case ' ', '\r', '\t', '\n', '\b', '\v', '\f':
		return true
	default:
		return false
	}
}

func (self *Lexer) dinfo(where int) string {
	return fmt.Sprintf("around position(%d: %d)", self.Line, where+1)
}

func (self *Lexer) err(where int, msg string) int {
	self.Lexeme.Text = fmt.Sprintf("%s: %s", self.dinfo(where), msg)
	self.Token = TkError
	return TkError
}

func (self *Lexer) eof() int {
	self.Token = TkEof
	return TkEof
}

func (self *Lexer) Next() int {
	if self.Token == TkEof || self.Token == TkError {
		return self.Token
	}
	return self.next()
}

func (self *Lexer) next() int {
	// skip leading whitespace
	for {
		r, sz := self.nextRune()
		if r == utf8.RuneError {
			if sz == 0 {
				return self.eof()
			}
			return self.err(self.Cursor, "invalid utf8 character")
		}
		if !self.isWS(r) {
			break
		}
		self.Cursor += sz
	}
	return self.lexNum()
}

func (self *Lexer) lexNum() int {
	start := self.Cursor
	for {
		r, sz := self.nextRune()
		if r == utf8.RuneError {
			if sz == 0 {
				break
			}
			return self.err(self.Cursor, "invalid utf8 character")
		}
		if self.isWS(r) {
			break
		}
		self.Cursor += sz
	}

	text := self.Source[start:self.Cursor]
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		// keep the range error message short, strconv repeats the input
		return self.err(start, fmt.Sprintf("invalid number %q", text))
	}
	self.Lexeme.Text = text
	self.Lexeme.Real = f
	self.Token = TkNumber
	return TkNumber
}

// Lex a whole line into a pair. ok is false for a blank line, which is not an
// error, the caller simply skips it.
func lexPair(
	line int,
	source string,
) (Pair, bool, error) {
	l := newLexer(line, source)
	var nums [2]float64
	cnt := 0

	for {
		switch l.Next() {
		case TkEof:
			if cnt == 0 {
				return Pair{}, false, nil
			}
			if cnt != 2 {
				return Pair{}, false, err(
					ErrMalformedRow,
					"lex",
					"%s: expect 2 numbers, got %d",
					l.dinfo(0),
					cnt,
				)
			}
			return Pair{Key: nums[0], Value: nums[1]}, true, nil

		case TkError:
			return Pair{}, false, err(ErrMalformedRow, "lex", "%s", l.Lexeme.Text)

		default:
			if cnt == 2 {
				return Pair{}, false, err(
					ErrMalformedRow,
					"lex",
					"%s: unexpected trailing token %q",
					l.dinfo(l.Cursor-len(l.Lexeme.Text)),
					l.Lexeme.Text,
				)
			}
			nums[cnt] = l.Lexeme.Real
			cnt++
		}
	}
}
