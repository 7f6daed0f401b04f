// Package lexer scans an expression string into the token stream consumed by
// the converter and evaluator.
//
// Recognition is greedy and order-sensitive: at each position an explicit
// ordered list of recognizers is attempted and the first match wins. Date
// literals are tried before plain numbers, so "2024-01-01" is one date-time
// token and never 2024 minus 01 minus 01; the now keyword is only taken when
// not followed by another identifier character.
package lexer

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/calvess/dateexpr/internal/temporal"
	"github.com/calvess/dateexpr/internal/token"
)

// datePattern gates the date recognizer: a calendar date optionally followed
// by a case-insensitive T and up to HH[:MM[:SS]]. A pattern match commits the
// recognizer; a failed parse of the matched text is then a hard INVALID_DATE.
var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}([Tt]\d{2}(:\d{2}(:\d{2})?)?)?`)

// Tokenize scans text into tokens. Whitespace is insignificant and stripped
// before scanning. The first malformed lexeme aborts the scan with a LexError.
func Tokenize(text string) ([]token.Token, error) {
	s := &scanner{input: []rune(stripWhitespace(text))}
	for s.pos < len(s.input) {
		if err := s.next(); err != nil {
			return nil, err
		}
	}
	return s.tokens, nil
}

type scanner struct {
	input  []rune
	pos    int
	tokens []token.Token
}

// recognizer attempts to consume one token at the cursor. It reports whether
// it matched; a recognizer that matches malformed content returns an error
// instead of yielding to later recognizers.
type recognizer func(*scanner) (bool, error)

// recognizers are attempted in priority order. Ordering is load-bearing:
// dates before numbers, the now keyword before single characters.
var recognizers = []recognizer{
	(*scanner).scanDate,
	(*scanner).scanNow,
	(*scanner).scanDuration,
	(*scanner).scanOperator,
	(*scanner).scanNumber,
}

func (s *scanner) next() error {
	for _, rec := range recognizers {
		matched, err := rec(s)
		if err != nil {
			return err
		}
		if matched {
			return nil
		}
	}
	return newLexError(ErrCodeInvalidCharacter, s.pos, string(s.input[s.pos]), nil)
}

func (s *scanner) rest() string {
	return string(s.input[s.pos:])
}

func (s *scanner) emit(t token.Token) {
	s.tokens = append(s.tokens, t)
}

func (s *scanner) scanDate() (bool, error) {
	lexeme := datePattern.FindString(s.rest())
	if lexeme == "" {
		return false, nil
	}
	t, err := temporal.ParseDateTime(lexeme)
	if err != nil {
		return false, newLexError(ErrCodeInvalidDate, s.pos, lexeme, err)
	}
	s.emit(token.NewDateTime(t, s.pos))
	s.pos += len(lexeme) // pattern is ASCII, byte length == rune length
	return true, nil
}

func (s *scanner) scanNow() (bool, error) {
	const keyword = "now"
	if !strings.HasPrefix(s.rest(), keyword) {
		return false, nil
	}
	if next := s.pos + len(keyword); next < len(s.input) && isIdentChar(s.input[next]) {
		return false, nil // "nowhere" is not now + here
	}
	s.emit(token.New(token.Now, s.pos))
	s.pos += len(keyword)
	return true, nil
}

func (s *scanner) scanDuration() (bool, error) {
	if c := s.input[s.pos]; c != 'P' && c != 'p' {
		return false, nil
	}
	end := s.pos + 1
	for end < len(s.input) && isIdentChar(s.input[end]) {
		end++
	}
	lexeme := string(s.input[s.pos:end])
	d, err := temporal.ParseDuration(lexeme)
	if err != nil {
		return false, newLexError(ErrCodeInvalidDuration, s.pos, lexeme, err)
	}
	s.emit(token.NewDuration(d, s.pos))
	s.pos = end
	return true, nil
}

func (s *scanner) scanOperator() (bool, error) {
	var kind token.Kind
	switch s.input[s.pos] {
	case '+':
		kind = token.Plus
	case '-':
		kind = s.minusKind()
	case '*':
		kind = token.Star
	case '/':
		kind = token.Slash
	case '(':
		kind = token.LeftParen
	case ')':
		kind = token.RightParen
	default:
		return false, nil
	}
	s.emit(token.New(kind, s.pos))
	s.pos++
	return true, nil
}

// minusKind disambiguates unary from binary minus: unary when the stream is
// empty or the previous token is an operator or an opening paren, i.e.
// exactly where a binary minus would be syntactically invalid.
func (s *scanner) minusKind() token.Kind {
	if len(s.tokens) == 0 {
		return token.UnaryMinus
	}
	prev := s.tokens[len(s.tokens)-1]
	if prev.IsOperator() || prev.Kind == token.LeftParen {
		return token.UnaryMinus
	}
	return token.Minus
}

func (s *scanner) scanNumber() (bool, error) {
	if c := s.input[s.pos]; !isDigit(c) && c != '.' {
		return false, nil
	}
	end := s.pos
	sawPoint := false
	for end < len(s.input) {
		c := s.input[end]
		if c == '.' {
			if sawPoint {
				break // at most one decimal point
			}
			sawPoint = true
		} else if !isDigit(c) {
			break
		}
		end++
	}
	lexeme := string(s.input[s.pos:end])
	n, err := strconv.ParseFloat(lexeme, 64)
	if err != nil || math.IsNaN(n) {
		return false, newLexError(ErrCodeInvalidNumber, s.pos, lexeme, err)
	}
	s.emit(token.NewNumber(n, s.pos))
	s.pos = end
	return true, nil
}

func stripWhitespace(text string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isIdentChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
