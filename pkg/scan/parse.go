package scan

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// escPrefixes are the accepted spellings of the Esc byte in typed input.
var escPrefixes = []string{"<esc>", "esc", "\\e", "^["}

// ParseSequence parses a typed sequence such as "&l26A", "<Esc>&l1o2A",
// "\x1bE" or "E" into tokens. A '#' in place of the value field, as in
// "&l#A", yields a token without a value.
func ParseSequence(s string) ([]Token, error) {
	in := strings.TrimSpace(norm.NFKC.String(s))
	lower := strings.ToLower(in)
	for _, p := range escPrefixes {
		if strings.HasPrefix(lower, p) {
			in = in[len(p):]
			break
		}
	}
	in = strings.TrimPrefix(in, "\x1b")
	if in == "" {
		return nil, fmt.Errorf("%w: empty sequence", ErrMalformed)
	}
	if strings.IndexByte(in, Esc) >= 0 {
		return nil, fmt.Errorf("%w: %q holds more than one sequence", ErrMalformed, s)
	}
	for i := 0; i < len(in); i++ {
		if in[i] < 0x20 || in[i] > 0x7E {
			return nil, fmt.Errorf("%w: %q is not printable ASCII", ErrMalformed, s)
		}
	}

	// "#" marks the value field as absent.
	in = strings.ReplaceAll(in, "#", "")

	sc := NewScanner(strings.NewReader("\x1b" + in))
	var tokens []Token
	for {
		tok, err := sc.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			if errors.Is(err, ErrMalformed) {
				return nil, err
			}
			return nil, fmt.Errorf("%w: %q: %w", ErrMalformed, s, err)
		}
		tokens = append(tokens, tok)
		if !sc.inChain && sc.Offset() < int64(len(in)+1) {
			return nil, fmt.Errorf("%w: trailing %q after sequence", ErrMalformed, in[sc.Offset()-1:])
		}
	}
	return tokens, nil
}
