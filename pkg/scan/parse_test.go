package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSequence(t *testing.T) {
	tests := []struct {
		in   string
		want []Token
	}{
		{"&l26A", []Token{{Ind: '&', Group: 'l', Term: 'A', Value: 26, Exact: true, HasValue: true, Text: "26"}}},
		{"<Esc>&l26A", []Token{{Ind: '&', Group: 'l', Term: 'A', Value: 26, Exact: true, HasValue: true, Text: "26"}}},
		{"  ESC&l#A ", []Token{{Ind: '&', Group: 'l', Term: 'A'}}},
		{"\x1bE", []Token{{Ind: 'E'}}},
		{"E", []Token{{Ind: 'E'}}},
		{"\\e(8U", []Token{{Ind: '(', Term: 'U', Value: 8, Exact: true, HasValue: true, Text: "8"}}},
		// full-width forms normalise to ASCII
		{"＆ｌ２６Ａ", []Token{{Ind: '&', Group: 'l', Term: 'A', Value: 26, Exact: true, HasValue: true, Text: "26"}}},
		{"&l1o2A", []Token{
			{Ind: '&', Group: 'l', Term: 'O', Value: 1, Exact: true, HasValue: true, Text: "1"},
			{Ind: '&', Group: 'l', Term: 'A', Value: 2, Exact: true, HasValue: true, Text: "2"},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSequence(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSequence_Errors(t *testing.T) {
	for _, in := range []string{
		"",
		"<Esc>",
		"&l26",
		"&l26AX",
		"EE",
		"&l1A\x1bE",
		"&l1\tA",
		"&lé A",
	} {
		_, err := ParseSequence(in)
		assert.ErrorIs(t, err, ErrMalformed, "input %q", in)
	}
}
