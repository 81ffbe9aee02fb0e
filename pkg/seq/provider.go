package seq

import (
	"errors"
	"fmt"
)

// ErrNotDiscrete is returned when expanding a family whose root is not a
// discrete-value root.
var ErrNotDiscrete = errors.New("family root is not discrete")

// Provider enumerates the values of an external reference table (paper
// sizes, typefaces, ...). Indices run from 0 to Count()-1.
type Provider interface {
	// Count returns the number of items currently known.
	Count() int

	// IDValue returns the sequence value that selects item index.
	IDValue(index int) int32

	// Describe returns the human-readable name of item index.
	Describe(index int) string
}

// Selected is an item returned by a SelectorProvider.
type Selected struct {
	// Kind is the provider-specific encoded identifier.
	Kind uint16

	// ID is the sequence value that selects the item.
	ID int32

	// Name is the human-readable name.
	Name string
}

// SelectorProvider is a provider whose items are partitioned by a selector
// byte. The symbol set catalog uses the terminating letter of the symbol
// set id as selector.
type SelectorProvider interface {
	// Count returns the number of items across all selectors.
	Count() int

	// Select returns item index if it belongs to selector.
	Select(index int, selector byte) (Selected, bool)
}

// Providers groups the reference tables used to populate the registry.
// Nil providers contribute nothing.
type Providers struct {
	PaperSizes   Provider
	SymbolSets   SelectorProvider
	Typefaces    Provider
	Orientations Provider
	LogicalOps   Provider
	TextParsing  Provider
}

type filtered struct {
	items []Selected
}

// Filter returns a Provider over the items of sp matching selector.
func Filter(sp SelectorProvider, selector byte) Provider {
	f := &filtered{}
	if sp == nil {
		return f
	}
	n := sp.Count()
	for i := 0; i < n; i++ {
		if item, ok := sp.Select(i, selector); ok {
			f.items = append(f.items, item)
		}
	}
	return f
}

func (f *filtered) Count() int                { return len(f.items) }
func (f *filtered) IDValue(index int) int32   { return f.items[index].ID }
func (f *filtered) Describe(index int) string { return f.items[index].Name }

// ExpandFamily adds one discrete value entry to the family rooted at root
// for every item of p. Value entries inherit the root's category, actions
// and display flags; their description is label + ": " + the item name.
// It returns the number of entries added. A nil or empty provider adds
// nothing.
func ExpandFamily(r *Registry, root Key, label string, p Provider) (int, error) {
	parent, ok := r.Lookup(root.Root())
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrOrphanValue, root.Root())
	}
	if !parent.Flags.Has(FlagDiscrete) {
		return 0, fmt.Errorf("%w: %s", ErrNotDiscrete, root.Root())
	}
	if p == nil {
		return 0, nil
	}

	inherited := parent.Flags & (FlagNoGroup | FlagDisplayHex | FlagObsolete | FlagResetHPGL2)
	n := p.Count()
	for i := 0; i < n; i++ {
		v := p.IDValue(i)
		err := r.Add(Entry{
			Key:         parent.Key.WithValue(v),
			Param:       Param{Kind: ParamDiscrete, Value: v},
			Flags:       inherited | FlagDiscrete,
			Category:    parent.Category,
			Action:      parent.Action,
			Overlay:     parent.Overlay,
			Description: NewDescription(label + ": " + p.Describe(i)),
		})
		if err != nil {
			return i, err
		}
	}
	return n, nil
}
