package seq

import (
	"fmt"
	"strings"
)

const (
	// discreteMarker is the placeholder substituted when a value does not
	// match any entry of a discrete family.
	discreteMarker = "discrete"

	unmatchedText = "unknown/illegal"
)

// Description is an entry's human-readable text. The position of the
// "discrete" marker is located once, at construction.
type Description struct {
	text    string
	mark    int
	hasMark bool
}

// NewDescription creates a Description from a template.
func NewDescription(text string) Description {
	d := Description{text: text}
	if i := strings.Index(text, discreteMarker); i >= 0 {
		d.mark = i
		d.hasMark = true
	}
	return d
}

// String returns the template text.
func (d Description) String() string {
	return d.text
}

// hasMarker reports whether the template contains a substitution point.
func (d Description) hasMarker() bool {
	return d.hasMark
}

// Unmatched returns the text used when a value fell through to the family
// root: the marker is replaced by "unknown/illegal".
func (d Description) Unmatched() string {
	if !d.hasMarker() {
		return d.text
	}
	return d.text[:d.mark] + unmatchedText + d.text[d.mark+len(discreteMarker):]
}

// Entry describes one escape-sequence family, or one value of a family.
type Entry struct {
	Key         Key
	Param       Param
	Flags       Flags
	Category    Category
	Action      Action
	Overlay     Overlay
	Description Description
}

// Obsolete reports whether the entry is flagged obsolete.
func (e Entry) Obsolete() bool {
	return e.Flags.Has(FlagObsolete)
}

// IsGenericFallback reports whether e is the root of a discrete family.
func (e Entry) IsGenericFallback() bool {
	return e.Flags.Has(FlagDiscrete | FlagGenericFallback)
}

// Label returns the sequence in display form, e.g. "<Esc>&l#A",
// "<Esc>&l26A" or "<Esc>E".
func (e Entry) Label() string {
	if e.Key == UnknownKey {
		return "<Esc>?"
	}

	var sb strings.Builder
	sb.WriteString("<Esc>")
	sb.WriteByte(e.Key.Ind)
	if e.Key.Term == 0 {
		return sb.String()
	}
	if e.Key.Group != 0 {
		sb.WriteByte(e.Key.Group)
	}
	if !e.Flags.Has(FlagNoValue) {
		switch {
		case !e.Key.HasValue:
			sb.WriteByte('#')
		case e.Flags.Has(FlagDisplayHex):
			fmt.Fprintf(&sb, "0x%X", e.Key.Value)
		default:
			fmt.Fprintf(&sb, "%d", e.Key.Value)
		}
	}
	sb.WriteByte(e.Key.Term)
	return sb.String()
}
