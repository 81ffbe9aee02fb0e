package seq

import (
	"cmp"
	"fmt"
)

// Key identifies a registry entry: three identity bytes and, for entries
// describing one specific value, that value.
type Key struct {
	// Ind is the parameterised character (or the second byte of a two-byte
	// sequence).
	Ind byte

	// Group is the group character; zero when the sequence has none.
	Group byte

	// Term is the upper-case termination character; zero for two-byte
	// sequences.
	Term byte

	// Value is the specific value; only meaningful when HasValue is set.
	Value int32

	// HasValue distinguishes a value entry from the family root.
	HasValue bool
}

// UnknownKey is reserved for the Unknown Entry. No escape sequence has a
// NUL parameterised character, so it can never collide with a family.
var UnknownKey = Key{}

// RootKey returns the family key for the given identity bytes.
func RootKey(ind, group, term byte) Key {
	return Key{Ind: ind, Group: group, Term: term}
}

// ValueKey returns the key of a specific value within a family.
func ValueKey(ind, group, term byte, value int32) Key {
	return Key{Ind: ind, Group: group, Term: term, Value: value, HasValue: true}
}

// Root returns the family key of k.
func (k Key) Root() Key {
	return RootKey(k.Ind, k.Group, k.Term)
}

// WithValue returns the key of a specific value in k's family.
func (k Key) WithValue(v int32) Key {
	return ValueKey(k.Ind, k.Group, k.Term, v)
}

// IsRoot reports whether k is a family key.
func (k Key) IsRoot() bool {
	return !k.HasValue
}

// String returns the textual key: two hex digits per identity byte,
// followed by ":" and the hexadecimal value for value keys.
func (k Key) String() string {
	root := fmt.Sprintf("%02X%02X%02X", k.Ind, k.Group, k.Term)
	if !k.HasValue {
		return root
	}
	return fmt.Sprintf("%s:%X", root, k.Value)
}

// Compare orders keys by identity bytes, then roots before values, then by
// value.
func (k Key) Compare(o Key) int {
	if c := cmp.Compare(k.Ind, o.Ind); c != 0 {
		return c
	}
	if c := cmp.Compare(k.Group, o.Group); c != 0 {
		return c
	}
	if c := cmp.Compare(k.Term, o.Term); c != 0 {
		return c
	}
	if k.HasValue != o.HasValue {
		if k.HasValue {
			return 1
		}
		return -1
	}
	return cmp.Compare(k.Value, o.Value)
}
