package seq

import "testing"

func TestDescription_Unmatched(t *testing.T) {
	tests := []struct {
		name      string
		template  string
		unmatched string
		marker    bool
	}{
		{
			name:      "discrete root",
			template:  "Duplex Page Side Selection (# = discrete value)",
			unmatched: "Duplex Page Side Selection (# = unknown/illegal value)",
			marker:    true,
		},
		{
			name:      "first occurrence only",
			template:  "discrete discrete",
			unmatched: "unknown/illegal discrete",
			marker:    true,
		},
		{
			name:      "no marker",
			template:  "Number of Copies (# = number of copies)",
			unmatched: "Number of Copies (# = number of copies)",
		},
		{
			name: "empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDescription(tt.template)
			if d.hasMarker() != tt.marker {
				t.Errorf("hasMarker() = %v, want %v", d.hasMarker(), tt.marker)
			}
			if got := d.Unmatched(); got != tt.unmatched {
				t.Errorf("Unmatched() = %q, want %q", got, tt.unmatched)
			}
			if got := d.String(); got != tt.template {
				t.Errorf("String() = %q after Unmatched, want %q", got, tt.template)
			}
		})
	}
}

func TestEntry_Label(t *testing.T) {
	tests := []struct {
		name     string
		entry    Entry
		expected string
	}{
		{
			name:     "unknown",
			entry:    Entry{Key: UnknownKey},
			expected: "<Esc>?",
		},
		{
			name:     "two-byte",
			entry:    Entry{Key: RootKey('E', 0, 0), Flags: FlagNoGroup | FlagNoValue},
			expected: "<Esc>E",
		},
		{
			name:     "family root",
			entry:    Entry{Key: RootKey('&', 'l', 'A')},
			expected: "<Esc>&l#A",
		},
		{
			name:     "value",
			entry:    Entry{Key: ValueKey('&', 'l', 'A', 26)},
			expected: "<Esc>&l26A",
		},
		{
			name:     "negative value",
			entry:    Entry{Key: ValueKey('%', 0, 'X', -12345), Flags: FlagNoGroup},
			expected: "<Esc>%-12345X",
		},
		{
			name:     "no group",
			entry:    Entry{Key: ValueKey('(', 0, 'U', 8), Flags: FlagNoGroup},
			expected: "<Esc>(8U",
		},
		{
			name:     "hex",
			entry:    Entry{Key: ValueKey('*', 'c', 'E', 0x41), Flags: FlagDisplayHex},
			expected: "<Esc>*c0x41E",
		},
		{
			name:     "no value",
			entry:    Entry{Key: RootKey('*', 'r', 'C'), Flags: FlagNoValue},
			expected: "<Esc>*rC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.entry.Label(); got != tt.expected {
				t.Errorf("Label() = %s, want %s", got, tt.expected)
			}
		})
	}
}

func TestEntry_IsGenericFallback(t *testing.T) {
	root := Entry{Flags: FlagDiscrete | FlagGenericFallback}
	sub := Entry{Flags: FlagDiscrete}

	if !root.IsGenericFallback() {
		t.Error("discrete root not reported as generic fallback")
	}
	if sub.IsGenericFallback() {
		t.Error("discrete value entry reported as generic fallback")
	}
	if (Entry{Flags: FlagGenericFallback}).IsGenericFallback() {
		t.Error("generic flag alone reported as generic fallback")
	}
}

func TestFlags_String(t *testing.T) {
	if got := Flags(0).String(); got != "none" {
		t.Errorf("Flags(0).String() = %s", got)
	}
	if got := (FlagNoGroup | FlagDiscrete).String(); got != "no-group|discrete" {
		t.Errorf("String() = %s", got)
	}
}

func TestParseCategory(t *testing.T) {
	for _, c := range Categories() {
		got, err := ParseCategory(c.String())
		if err != nil {
			t.Fatalf("ParseCategory(%s): %v", c, err)
		}
		if got != c {
			t.Errorf("ParseCategory(%s) = %s", c, got)
		}
	}

	if got, err := ParseCategory("raster-graphics"); err != nil || got != CategoryRasterGraphics {
		t.Errorf("ParseCategory(raster-graphics) = %s, %v", got, err)
	}
	if _, err := ParseCategory("bogus"); err == nil {
		t.Error("expected error for unknown category")
	}
}
