package catalog

import (
	"fmt"
	"strconv"

	"github.com/pclscope/pcl-go/pkg/seq"
)

var (
	_ seq.Provider         = Table(nil)
	_ seq.Provider         = PaperSizes(nil)
	_ seq.SelectorProvider = SymbolSets(nil)
	_ seq.Provider         = (*ROPTable)(nil)
)

// Item is a table row: the sequence value and its name.
type Item struct {
	ID   int32  `yaml:"id"`
	Name string `yaml:"name"`
}

// Table is a plain reference table. It implements seq.Provider.
type Table []Item

func newTable(items []Item) (Table, error) {
	seen := make(map[int32]bool, len(items))
	for _, it := range items {
		if seen[it.ID] {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, it.ID)
		}
		seen[it.ID] = true
	}
	return Table(items), nil
}

func (t Table) Count() int                { return len(t) }
func (t Table) IDValue(index int) int32   { return t[index].ID }
func (t Table) Describe(index int) string { return t[index].Name }

// PaperSize is a page size. Dimensions are in millimetres, zero when the
// size is printer defined.
type PaperSize struct {
	ID     int32   `yaml:"id"`
	Name   string  `yaml:"name"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PaperSizes implements seq.Provider.
type PaperSizes []PaperSize

func newPaperSizes(items []PaperSize) (PaperSizes, error) {
	seen := make(map[int32]bool, len(items))
	for _, p := range items {
		if seen[p.ID] {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, p.ID)
		}
		seen[p.ID] = true
	}
	return PaperSizes(items), nil
}

func (p PaperSizes) Count() int              { return len(p) }
func (p PaperSizes) IDValue(index int) int32 { return p[index].ID }

func (p PaperSizes) Describe(index int) string {
	ps := p[index]
	if ps.Width == 0 || ps.Height == 0 {
		return ps.Name
	}
	return fmt.Sprintf("%s (%g x %g mm)", ps.Name, ps.Width, ps.Height)
}

// SymbolSet is a symbol set such as "8U" (Roman-8).
type SymbolSet struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`

	// Kind is the encoded id: number*32 + letter - 64.
	Kind uint16 `yaml:"-"`
}

// Number returns the numeric part of the id.
func (s SymbolSet) Number() int32 {
	return int32(s.Kind / 32)
}

// Letter returns the terminating letter of the id.
func (s SymbolSet) Letter() byte {
	return byte(s.Kind%32) + 64
}

// ParseSymbolSetID splits an id such as "19U" and returns its encoded kind.
func ParseSymbolSetID(id string) (uint16, error) {
	if len(id) < 2 {
		return 0, fmt.Errorf("%w: symbol set %q", ErrInvalidID, id)
	}
	letter := id[len(id)-1]
	if letter < 'A' || letter > 'Z' {
		return 0, fmt.Errorf("%w: symbol set %q: terminator must be A-Z", ErrInvalidID, id)
	}
	n, err := strconv.ParseUint(id[:len(id)-1], 10, 16)
	if err != nil || n > 2047 {
		return 0, fmt.Errorf("%w: symbol set %q: number must be 0-2047", ErrInvalidID, id)
	}
	return uint16(n)*32 + uint16(letter-64), nil
}

// SymbolSets implements seq.SelectorProvider; the selector is the
// terminating letter.
type SymbolSets []SymbolSet

// fontIDLetter terminates <Esc>(#X and <Esc>)#X, which select a font by id
// rather than a symbol set.
const fontIDLetter = 'X'

func newSymbolSets(items []SymbolSet) (SymbolSets, error) {
	seen := make(map[uint16]bool, len(items))
	for i := range items {
		kind, err := ParseSymbolSetID(items[i].ID)
		if err != nil {
			return nil, err
		}
		if byte(kind%32)+64 == fontIDLetter {
			return nil, fmt.Errorf("%w: symbol set %q: letter X selects a font id", ErrInvalidID, items[i].ID)
		}
		if seen[kind] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, items[i].ID)
		}
		seen[kind] = true
		items[i].Kind = kind
	}
	return SymbolSets(items), nil
}

func (s SymbolSets) Count() int { return len(s) }

func (s SymbolSets) Select(index int, selector byte) (seq.Selected, bool) {
	set := s[index]
	if set.Letter() != selector {
		return seq.Selected{}, false
	}
	return seq.Selected{Kind: set.Kind, ID: set.Number(), Name: set.Name}, true
}

// ROPTable covers all 256 ternary raster operations. Operations not named
// in the catalog are described by their code.
type ROPTable struct {
	names [256]string
}

func newROPTable(items []Item) (*ROPTable, error) {
	t := &ROPTable{}
	for _, it := range items {
		if it.ID < 0 || it.ID > 255 {
			return nil, fmt.Errorf("%w: raster operation %d", ErrInvalidID, it.ID)
		}
		if t.names[it.ID] != "" {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, it.ID)
		}
		t.names[it.ID] = it.Name
	}
	for code := range t.names {
		if t.names[code] == "" {
			t.names[code] = fmt.Sprintf("ROP3 0x%02X", code)
		}
	}
	return t, nil
}

func (t *ROPTable) Count() int                { return len(t.names) }
func (t *ROPTable) IDValue(index int) int32   { return int32(index) }
func (t *ROPTable) Describe(index int) string { return t.names[index] }
