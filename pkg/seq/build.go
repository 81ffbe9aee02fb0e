package seq

import (
	"fmt"
	"log/slog"
)

// family defines one escape-sequence family in the literal tables.
//
// The sequence notation omits the escape character: "&l#A" has the
// parameterised character '&', group character 'l', a value field and
// termination character 'A'. "(#@" has no group character, "*rC" has no
// value field and a single character such as "E" is a two-byte sequence.
type family struct {
	seq     string
	cat     Category
	desc    string
	flags   Flags
	action  Action
	overlay Overlay
	values  []value
	expand  expansion
}

// value defines one discrete value of a family.
type value struct {
	v       int32
	desc    string
	action  Action
	overlay Overlay
	flags   Flags
}

// expansion names the reference table that supplies a family's values.
type expansion uint8

const (
	expandNone expansion = iota
	expandPaperSize
	expandTypeface
	expandOrientation
	expandLogicalOp
	expandTextParsing
)

// discreteSuffix is appended to the description of discrete family roots.
const discreteSuffix = " (# = discrete value)"

// Option configures Build.
type Option func(*builder)

// WithLogger sets the logger used to report population progress.
func WithLogger(l *slog.Logger) Option {
	return func(b *builder) {
		if l != nil {
			b.logger = l
		}
	}
}

type builder struct {
	reg    *Registry
	p      Providers
	logger *slog.Logger
}

// Build creates the registry from the literal family tables and the given
// reference table providers. A key collision is a defect in the tables and
// is returned as an error; the registry must not be used in that case.
func Build(p Providers, opts ...Option) (*Registry, error) {
	b := &builder{
		reg:    NewRegistry(),
		p:      p,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(b)
	}

	groups := []struct {
		name     string
		families []family
	}{
		{"simple", simpleFamilies},
		{"job control", jobControlFamilies},
		{"page control", pageControlFamilies},
		{"cursor positioning", cursorFamilies},
		{"font selection", fontSelectionFamilies()},
		{"font management", fontManagementFamilies},
		{"soft font", softFontFamilies},
		{"macro", macroFamilies},
		{"status readback", statusReadbackFamilies},
		{"raster graphics", rasterFamilies},
		{"rectangular area", rectangularAreaFamilies},
		{"user pattern", patternFamilies},
		{"print model", printModelFamilies},
		{"colour", colourFamilies},
		{"picture frame", pictureFrameFamilies},
	}
	for _, g := range groups {
		for _, f := range g.families {
			if err := b.addFamily(f); err != nil {
				return nil, fmt.Errorf("%s families: %w", g.name, err)
			}
		}
	}

	if err := b.addSymbolSetFamilies(); err != nil {
		return nil, fmt.Errorf("symbol set families: %w", err)
	}

	b.reg.Seal()
	b.logger.Debug("sequence registry built", "entries", b.reg.Len())
	return b.reg, nil
}

// MustBuild is like Build but panics if the tables are inconsistent.
func MustBuild(p Providers, opts ...Option) *Registry {
	r, err := Build(p, opts...)
	if err != nil {
		panic(fmt.Sprintf("seq: registry corrupt: %v", err))
	}
	return r
}

// parseNotation splits a family notation into identity bytes and the
// structural flags it implies.
func parseNotation(s string) (ind, group, term byte, flags Flags, err error) {
	if len(s) == 0 {
		return 0, 0, 0, 0, fmt.Errorf("empty sequence notation")
	}
	ind = s[0]
	if len(s) == 1 {
		return ind, 0, 0, FlagNoGroup | FlagNoValue, nil
	}

	rest := s[1:]
	if isGroupChar(rest[0]) {
		group = rest[0]
		rest = rest[1:]
	} else {
		flags |= FlagNoGroup
	}
	if len(rest) > 0 && rest[0] == '#' {
		rest = rest[1:]
	} else {
		flags |= FlagNoValue
	}
	if len(rest) != 1 || !isTermChar(rest[0]) {
		return 0, 0, 0, 0, fmt.Errorf("invalid sequence notation %q", s)
	}
	return ind, group, rest[0], flags, nil
}

// isGroupChar reports whether c is in the group character range.
func isGroupChar(c byte) bool {
	return c >= 0x60 && c <= 0x7E
}

// isTermChar reports whether c is in the termination character range.
func isTermChar(c byte) bool {
	return c >= 0x40 && c <= 0x5E
}

func (b *builder) addFamily(f family) error {
	ind, group, term, structural, err := parseNotation(f.seq)
	if err != nil {
		return err
	}

	root := Entry{
		Key:         RootKey(ind, group, term),
		Flags:       f.flags | structural,
		Category:    f.cat,
		Action:      f.action,
		Overlay:     f.overlay,
		Description: NewDescription(f.desc),
	}

	discrete := len(f.values) > 0 || f.expand != expandNone
	switch {
	case structural.Has(FlagNoValue):
		root.Param = Param{Kind: ParamNone}
	case discrete:
		root.Param = Param{Kind: ParamGeneric}
		root.Flags |= FlagDiscrete | FlagGenericFallback
		root.Description = NewDescription(f.desc + discreteSuffix)
	case f.flags.Has(FlagVarious):
		root.Param = Param{Kind: ParamVarious}
	default:
		root.Param = Param{Kind: ParamContinuous}
	}

	if err := b.reg.Add(root); err != nil {
		return err
	}

	inherited := root.Flags & (FlagNoGroup | FlagDisplayHex | FlagObsolete | FlagResetHPGL2)
	for _, v := range f.values {
		action := f.action
		if v.action != ActionNone {
			action = v.action
		}
		overlay := f.overlay
		if v.overlay != OverlayNone {
			overlay = v.overlay
		}
		err := b.reg.Add(Entry{
			Key:         root.Key.WithValue(v.v),
			Param:       Param{Kind: ParamDiscrete, Value: v.v},
			Flags:       inherited | v.flags | FlagDiscrete,
			Category:    f.cat,
			Action:      action,
			Overlay:     overlay,
			Description: NewDescription(f.desc + ": " + v.desc),
		})
		if err != nil {
			return err
		}
	}

	if f.expand == expandNone {
		return nil
	}
	n, err := ExpandFamily(b.reg, root.Key, f.desc, b.provider(f.expand))
	if err != nil {
		return err
	}
	b.logger.Debug("expanded family", "sequence", root.Label(), "values", n)
	return nil
}

func (b *builder) provider(x expansion) Provider {
	var p Provider
	switch x {
	case expandPaperSize:
		p = b.p.PaperSizes
	case expandTypeface:
		p = b.p.Typefaces
	case expandOrientation:
		p = b.p.Orientations
	case expandLogicalOp:
		p = b.p.LogicalOps
	case expandTextParsing:
		p = b.p.TextParsing
	}
	return p
}

// addSymbolSetFamilies adds the primary and secondary symbol set families,
// one per terminating letter. <Esc>(#X and <Esc>)#X select a font by id and
// are already defined, so letter X is left to them.
func (b *builder) addSymbolSetFamilies() error {
	for _, side := range []struct {
		ind   byte
		label string
	}{
		{'(', "Primary Font Symbol Set"},
		{')', "Secondary Font Symbol Set"},
	} {
		total := 0
		for letter := byte('A'); letter <= 'Z'; letter++ {
			key := RootKey(side.ind, 0, letter)
			if _, taken := b.reg.Lookup(key); taken {
				if n := Filter(b.p.SymbolSets, letter).Count(); n > 0 {
					b.logger.Warn("symbol sets ignored, letter is taken by another sequence",
						"indicator", string(side.ind), "letter", string(letter), "count", n)
				}
				continue
			}
			err := b.reg.Add(Entry{
				Key:         key,
				Param:       Param{Kind: ParamGeneric},
				Flags:       FlagNoGroup | FlagDiscrete | FlagGenericFallback,
				Category:    CategoryFontSelection,
				Description: NewDescription(side.label + discreteSuffix),
			})
			if err != nil {
				return err
			}
			n, err := ExpandFamily(b.reg, key, side.label, Filter(b.p.SymbolSets, letter))
			if err != nil {
				return err
			}
			total += n
		}
		b.logger.Debug("expanded symbol set families", "indicator", string(side.ind), "values", total)
	}
	return nil
}
