package seq

import (
	"slices"
	"testing"
)

func TestKey_String(t *testing.T) {
	tests := []struct {
		name     string
		key      Key
		expected string
	}{
		{"root", RootKey('&', 'l', 'A'), "266C41"},
		{"value", ValueKey('&', 'l', 'A', 26), "266C41:1A"},
		{"no group", RootKey('(', 0, 'U'), "280055"},
		{"two-byte", RootKey('E', 0, 0), "450000"},
		{"unknown", UnknownKey, "000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.key.String(); got != tt.expected {
				t.Errorf("Key.String() = %s, want %s", got, tt.expected)
			}
		})
	}
}

func TestKey_RootAndValue(t *testing.T) {
	k := ValueKey('*', 'b', 'M', 2)

	if k.IsRoot() {
		t.Error("value key reported as root")
	}
	if got := k.Root(); got != RootKey('*', 'b', 'M') {
		t.Errorf("Root() = %v", got)
	}
	if got := k.Root().WithValue(2); got != k {
		t.Errorf("WithValue() = %v, want %v", got, k)
	}
	// A value of zero is still a value key.
	if ValueKey('*', 'b', 'M', 0) == RootKey('*', 'b', 'M') {
		t.Error("value 0 key equals root key")
	}
}

func TestKey_Compare(t *testing.T) {
	keys := []Key{
		ValueKey('&', 'l', 'A', 26),
		RootKey('*', 'b', 'M'),
		ValueKey('&', 'l', 'A', -1),
		RootKey('&', 'l', 'A'),
		RootKey('&', 'a', 'G'),
	}
	slices.SortFunc(keys, Key.Compare)

	want := []Key{
		RootKey('&', 'a', 'G'),
		RootKey('&', 'l', 'A'),
		ValueKey('&', 'l', 'A', -1),
		ValueKey('&', 'l', 'A', 26),
		RootKey('*', 'b', 'M'),
	}
	if !slices.Equal(keys, want) {
		t.Errorf("sorted keys = %v, want %v", keys, want)
	}
}
