package scan

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
)

// Esc is the byte that introduces every escape sequence.
const Esc = 0x1B

var (
	// ErrTruncated is returned when the stream ends inside a sequence or
	// its payload.
	ErrTruncated = errors.New("truncated sequence")

	// ErrMalformed is returned for a byte that cannot appear at its position
	// in a sequence.
	ErrMalformed = errors.New("malformed sequence")
)

// Token is one classified unit of a PCL stream: a two-byte sequence, or
// one parameter of a parameterised sequence.
type Token struct {
	// Offset is the stream offset of the introducing Esc byte. Tokens of
	// one combined sequence share it.
	Offset int64

	Ind   byte
	Group byte
	Term  byte

	// Value is the integer part of the value field, clamped to int32.
	Value int32

	// Exact is true when the value field is present and has no fractional
	// part.
	Exact bool

	// HasValue is true when the value field is present.
	HasValue bool

	// Text is the value field as written, e.g. "-12.5".
	Text string
}

// Label returns the token in display form, e.g. "<Esc>&l26A".
func (t Token) Label() string {
	var sb strings.Builder
	sb.WriteString("<Esc>")
	sb.WriteByte(t.Ind)
	if t.Term == 0 {
		return sb.String()
	}
	if t.Group != 0 {
		sb.WriteByte(t.Group)
	}
	sb.WriteString(t.Text)
	sb.WriteByte(t.Term)
	return sb.String()
}

// Scanner reads tokens from a PCL stream.
type Scanner struct {
	r      *bufio.Reader
	offset int64

	// pending combined sequence
	inChain bool
	start   int64
	ind     byte
	group   byte
}

// NewScanner creates a Scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{r: bufio.NewReader(r)}
}

// Offset returns the number of bytes consumed so far.
func (s *Scanner) Offset() int64 {
	return s.offset
}

// Next returns the next token. It returns io.EOF at the end of the stream.
func (s *Scanner) Next() (Token, error) {
	if s.inChain {
		return s.parameter()
	}

	for {
		c, err := s.readByte()
		if err != nil {
			return Token{}, err
		}
		if c == Esc {
			break
		}
	}
	s.start = s.offset - 1

	c, err := s.mustByte()
	if err != nil {
		return Token{}, err
	}
	switch {
	case isParamChar(c):
		s.ind = c
		s.group = 0
		next, err := s.peekByte()
		if err != nil {
			return Token{}, err
		}
		if isGroupChar(next) {
			s.group = next
			_, _ = s.readByte()
		}
		s.inChain = true
		return s.parameter()
	case c >= 0x30 && c <= 0x7E:
		return Token{Offset: s.start, Ind: c}, nil
	default:
		return Token{}, fmt.Errorf("%w: byte 0x%02X after Esc at offset %d", ErrMalformed, c, s.start)
	}
}

// parameter reads one value field and parameter character of the pending
// sequence.
func (s *Scanner) parameter() (Token, error) {
	tok := Token{Offset: s.start, Ind: s.ind, Group: s.group}

	var text strings.Builder
	c, err := s.mustByte()
	for err == nil && isValueChar(c) {
		text.WriteByte(c)
		c, err = s.mustByte()
	}
	if err != nil {
		s.inChain = false
		return Token{}, err
	}

	switch {
	case isTermChar(c):
		s.inChain = false
		tok.Term = c
	case isGroupChar(c):
		tok.Term = c - 0x20
	default:
		s.inChain = false
		return Token{}, fmt.Errorf("%w: byte 0x%02X in sequence at offset %d", ErrMalformed, c, s.start)
	}

	tok.Text = text.String()
	if tok.Text != "" {
		v, exact, err := parseValue(tok.Text)
		if err != nil {
			s.inChain = false
			return Token{}, fmt.Errorf("%w: value %q at offset %d", ErrMalformed, tok.Text, s.start)
		}
		tok.Value = v
		tok.Exact = exact
		tok.HasValue = true
	}
	return tok, nil
}

// Skip discards the next n bytes, e.g. a payload. It returns ErrTruncated
// when fewer bytes remain.
func (s *Scanner) Skip(n int64) error {
	for n > 0 {
		chunk := n
		if chunk > math.MaxInt32 {
			chunk = math.MaxInt32
		}
		got, err := s.r.Discard(int(chunk))
		s.offset += int64(got)
		n -= int64(got)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return fmt.Errorf("%w: payload short by %d bytes at offset %d", ErrTruncated, n, s.offset)
			}
			return err
		}
	}
	return nil
}

func (s *Scanner) readByte() (byte, error) {
	c, err := s.r.ReadByte()
	if err != nil {
		return 0, err
	}
	s.offset++
	return c, nil
}

// mustByte reads a byte inside a sequence, where EOF is an error.
func (s *Scanner) mustByte() (byte, error) {
	c, err := s.readByte()
	if errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("%w at offset %d", ErrTruncated, s.start)
	}
	return c, err
}

func (s *Scanner) peekByte() (byte, error) {
	b, err := s.r.Peek(1)
	if errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("%w at offset %d", ErrTruncated, s.start)
	}
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// parseValue parses a value field: optional sign, digits, optional
// fraction. exact is false when the fraction is non-zero or the integer
// part does not fit in an int32.
func parseValue(text string) (v int32, exact bool, err error) {
	digits := text
	neg := false
	switch {
	case strings.HasPrefix(digits, "-"):
		neg = true
		digits = digits[1:]
	case strings.HasPrefix(digits, "+"):
		digits = digits[1:]
	}

	whole, frac, _ := strings.Cut(digits, ".")
	if whole == "" && frac == "" {
		return 0, false, errors.New("no digits")
	}
	if strings.ContainsAny(whole, "+-.") || strings.ContainsAny(frac, "+-.") {
		return 0, false, errors.New("misplaced sign or point")
	}

	exact = strings.Trim(frac, "0") == ""
	var n int64
	for _, c := range []byte(whole) {
		n = n*10 + int64(c-'0')
		if n > math.MaxInt32 {
			n = math.MaxInt32
			exact = false
		}
	}
	if neg {
		n = -n
	}
	return int32(n), exact, nil
}

// isParamChar reports whether c introduces a parameterised sequence.
func isParamChar(c byte) bool {
	return c >= 0x21 && c <= 0x2F
}

// isGroupChar reports whether c is in the group character range. Inside a
// sequence the same range marks a combined parameter.
func isGroupChar(c byte) bool {
	return c >= 0x60 && c <= 0x7E
}

// isTermChar reports whether c is in the termination character range.
func isTermChar(c byte) bool {
	return c >= 0x40 && c <= 0x5E
}

func isValueChar(c byte) bool {
	return (c >= '0' && c <= '9') || c == '+' || c == '-' || c == '.'
}
