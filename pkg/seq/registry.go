package seq

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrDuplicateKey is returned when two definitions compose the same key.
	ErrDuplicateKey = errors.New("duplicate sequence key")

	// ErrOrphanValue is returned when a value entry has no family root.
	ErrOrphanValue = errors.New("value entry without family root")

	// ErrReservedKey is returned when an entry uses the Unknown Entry's
	// identity.
	ErrReservedKey = errors.New("reserved sequence key")

	// ErrSealed is returned when adding to a registry after population.
	ErrSealed = errors.New("registry is sealed")
)

// unknownDescription is the text reported for sequences that match nothing.
const unknownDescription = "*** Unknown sequence ***"

// Registry maps sequence keys to entries. It is populated once and is
// read-only after Seal; concurrent reads are safe.
type Registry struct {
	entries  map[Key]*Entry
	keys     []Key
	children map[Key]int
	unknown  Entry
	sorted   bool
	sealed   bool
}

// NewRegistry creates an empty registry holding only the Unknown Entry.
func NewRegistry() *Registry {
	return &Registry{
		entries:  make(map[Key]*Entry),
		children: make(map[Key]int),
		unknown: Entry{
			Key:         UnknownKey,
			Param:       Param{Kind: ParamGeneric},
			Category:    CategoryUnknown,
			Description: NewDescription(unknownDescription),
		},
	}
}

// Add inserts an entry. Keys are write-once: a second entry with the same
// key is rejected, as is a value entry whose root has not been added.
func (r *Registry) Add(e Entry) error {
	if r.sealed {
		return ErrSealed
	}
	if e.Key.Root() == UnknownKey {
		return fmt.Errorf("%w: %s", ErrReservedKey, e.Key)
	}
	if _, exists := r.entries[e.Key]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateKey, e.Key)
	}
	if e.Key.HasValue {
		if _, ok := r.entries[e.Key.Root()]; !ok {
			return fmt.Errorf("%w: %s", ErrOrphanValue, e.Key)
		}
		r.children[e.Key.Root()]++
	}

	stored := e
	r.entries[e.Key] = &stored
	r.keys = append(r.keys, e.Key)
	r.sorted = false
	return nil
}

// Seal ends population. Later calls to Add fail with ErrSealed.
func (r *Registry) Seal() {
	r.sort()
	r.sealed = true
}

func (r *Registry) sort() {
	if r.sorted {
		return
	}
	slices.SortFunc(r.keys, Key.Compare)
	r.sorted = true
}

// Lookup returns the entry stored under k.
func (r *Registry) Lookup(k Key) (Entry, bool) {
	e, ok := r.entries[k]
	if !ok {
		return Entry{}, false
	}
	return *e, true
}

// Unknown returns the entry reported when nothing matches.
func (r *Registry) Unknown() Entry {
	return r.unknown
}

// Len returns the number of keyed entries. The Unknown Entry is not
// counted.
func (r *Registry) Len() int {
	return len(r.entries)
}

// ValueCount returns the number of value entries in the family of k.
func (r *Registry) ValueCount(k Key) int {
	return r.children[k.Root()]
}

// Each calls fn for every entry in key order until fn returns false.
func (r *Registry) Each(fn func(Entry) bool) {
	r.sort()
	for _, k := range r.keys {
		if !fn(*r.entries[k]) {
			return
		}
	}
}

// Entries returns all entries in key order.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, 0, len(r.entries))
	r.Each(func(e Entry) bool {
		out = append(out, e)
		return true
	})
	return out
}

// Values returns the value entries of the family of k in key order.
func (r *Registry) Values(k Key) []Entry {
	root := k.Root()
	var out []Entry
	r.Each(func(e Entry) bool {
		if e.Key.HasValue && e.Key.Root() == root {
			out = append(out, e)
		}
		return true
	})
	return out
}
