package seq

import (
	"fmt"
	"strings"
)

// Category is the functional area an escape sequence belongs to.
type Category uint8

const (
	CategoryUnknown Category = iota
	CategoryJobControl
	CategoryPageControl
	CategoryCursorPositioning
	CategoryFontSelection
	CategoryFontManagement
	CategorySoftFontCreation
	CategorySymbolSetCreation
	CategoryRasterGraphics
	CategoryRectangularArea
	CategoryUserPattern
	CategoryColour
	CategoryMacro
	CategoryStatusReadback
	CategoryPictureFrame
	CategoryPrintModel
	CategoryMisc
)

var categoryNames = [...]string{
	CategoryUnknown:           "UNKNOWN",
	CategoryJobControl:        "JOB_CONTROL",
	CategoryPageControl:       "PAGE_CONTROL",
	CategoryCursorPositioning: "CURSOR_POSITIONING",
	CategoryFontSelection:     "FONT_SELECTION",
	CategoryFontManagement:    "FONT_MANAGEMENT",
	CategorySoftFontCreation:  "SOFT_FONT_CREATION",
	CategorySymbolSetCreation: "SYMBOL_SET_CREATION",
	CategoryRasterGraphics:    "RASTER_GRAPHICS",
	CategoryRectangularArea:   "RECTANGULAR_AREA",
	CategoryUserPattern:       "USER_PATTERN",
	CategoryColour:            "COLOUR",
	CategoryMacro:             "MACRO",
	CategoryStatusReadback:    "STATUS_READBACK",
	CategoryPictureFrame:      "PICTURE_FRAME",
	CategoryPrintModel:        "PRINT_MODEL",
	CategoryMisc:              "MISC",
}

// String returns the category name.
func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "UNKNOWN"
}

// Categories returns all categories in declaration order.
func Categories() []Category {
	cats := make([]Category, len(categoryNames))
	for i := range categoryNames {
		cats[i] = Category(i)
	}
	return cats
}

// ParseCategory parses a category name (case-insensitive, '-' and '_' are
// interchangeable).
func ParseCategory(s string) (Category, error) {
	name := strings.ToUpper(strings.ReplaceAll(s, "-", "_"))
	for i, n := range categoryNames {
		if n == name {
			return Category(i), nil
		}
	}
	return CategoryUnknown, fmt.Errorf("unknown category: %s", s)
}

// Action tells a stream parser that a sequence needs special handling.
type Action uint8

const (
	// ActionNone requires no special handling.
	ActionNone Action = iota

	// ActionMacroStart opens a macro definition; subsequent sequences are
	// nested one level deeper.
	ActionMacroStart

	// ActionMacroStop closes the current macro definition.
	ActionMacroStop

	// ActionMacroCall executes or calls a previously defined macro.
	ActionMacroCall

	// ActionEnterHPGL2 switches the interpreter into HP-GL/2 mode.
	ActionEnterHPGL2

	// ActionEnterPCL switches the interpreter back to PCL from HP-GL/2.
	ActionEnterPCL

	// ActionExitLanguage is the Universal Exit Language; the data that follows
	// belongs to the job control language.
	ActionExitLanguage

	// ActionEmbeddedData is followed by a binary payload of value bytes.
	ActionEmbeddedData

	// ActionFontHeader is followed by a soft font header.
	ActionFontHeader

	// ActionFontChar is followed by a soft font character descriptor and data.
	ActionFontChar

	// ActionSymbolSetMap is followed by a user-defined symbol set map.
	ActionSymbolSetMap

	// ActionRasterData is followed by a row or plane of raster data.
	ActionRasterData

	// ActionPatternData is followed by a user-defined pattern.
	ActionPatternData

	// ActionConfigureImageData is followed by a configure image data block.
	ActionConfigureImageData

	// ActionAlphaNumericID is followed by an operation code and a string id.
	ActionAlphaNumericID

	// ActionTransparentData is followed by bytes to be printed as characters.
	ActionTransparentData
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "NONE"
	case ActionMacroStart:
		return "MACRO_START"
	case ActionMacroStop:
		return "MACRO_STOP"
	case ActionMacroCall:
		return "MACRO_CALL"
	case ActionEnterHPGL2:
		return "ENTER_HPGL2"
	case ActionEnterPCL:
		return "ENTER_PCL"
	case ActionExitLanguage:
		return "EXIT_LANGUAGE"
	case ActionEmbeddedData:
		return "EMBEDDED_DATA"
	case ActionFontHeader:
		return "FONT_HEADER"
	case ActionFontChar:
		return "FONT_CHAR"
	case ActionSymbolSetMap:
		return "SYMBOL_SET_MAP"
	case ActionRasterData:
		return "RASTER_DATA"
	case ActionPatternData:
		return "PATTERN_DATA"
	case ActionConfigureImageData:
		return "CONFIGURE_IMAGE_DATA"
	case ActionAlphaNumericID:
		return "ALPHANUMERIC_ID"
	case ActionTransparentData:
		return "TRANSPARENT_DATA"
	default:
		return "UNKNOWN"
	}
}

// CarriesData reports whether the sequence is followed by a payload whose
// length is given by the value field.
func (a Action) CarriesData() bool {
	switch a {
	case ActionEmbeddedData, ActionFontHeader, ActionFontChar, ActionSymbolSetMap,
		ActionRasterData, ActionPatternData, ActionConfigureImageData,
		ActionAlphaNumericID, ActionTransparentData:
		return true
	default:
		return false
	}
}

// Overlay is the side effect a sequence has on the page or on printer
// resources. It is used when analysing macros and overlays.
type Overlay uint8

const (
	// OverlayNone has no side effect of interest.
	OverlayNone Overlay = iota

	// OverlayReset resets the printer environment.
	OverlayReset

	// OverlayPageAdvance ejects the current page or starts a new one.
	OverlayPageAdvance

	// OverlayDownload downloads a resource (font, pattern, symbol set).
	OverlayDownload

	// OverlayDelete deletes one or more resources.
	OverlayDelete

	// OverlayIDAssign assigns an identifier used by later sequences.
	OverlayIDAssign

	// OverlayMacroControl defines, runs or manages macros.
	OverlayMacroControl
)

// String returns the overlay action name.
func (o Overlay) String() string {
	switch o {
	case OverlayNone:
		return "NONE"
	case OverlayReset:
		return "RESET"
	case OverlayPageAdvance:
		return "PAGE_ADVANCE"
	case OverlayDownload:
		return "DOWNLOAD"
	case OverlayDelete:
		return "DELETE"
	case OverlayIDAssign:
		return "ID_ASSIGN"
	case OverlayMacroControl:
		return "MACRO_CONTROL"
	default:
		return "UNKNOWN"
	}
}

// ParamKind describes how an entry's value field is matched.
type ParamKind uint8

const (
	// ParamGeneric marks the fallback root of a family with discrete values.
	ParamGeneric ParamKind = iota

	// ParamContinuous marks a family whose value is an arbitrary operand.
	ParamContinuous

	// ParamVarious marks a family whose values are printer dependent.
	ParamVarious

	// ParamDiscrete marks an entry for one specific value.
	ParamDiscrete

	// ParamNone marks a sequence that has no value field.
	ParamNone
)

// String returns the parameter kind name.
func (k ParamKind) String() string {
	switch k {
	case ParamGeneric:
		return "GENERIC"
	case ParamContinuous:
		return "CONTINUOUS"
	case ParamVarious:
		return "VARIOUS"
	case ParamDiscrete:
		return "DISCRETE"
	case ParamNone:
		return "NONE"
	default:
		return "UNKNOWN"
	}
}

// Param is the nominal value of an entry. Value is only meaningful for
// ParamDiscrete.
type Param struct {
	Kind  ParamKind
	Value int32
}

// String returns the parameter in display form.
func (p Param) String() string {
	if p.Kind == ParamDiscrete {
		return fmt.Sprintf("%d", p.Value)
	}
	return p.Kind.String()
}

// Flags holds the boolean properties of an entry.
type Flags uint16

const (
	// FlagObsolete marks sequences no longer supported by current printers.
	FlagObsolete Flags = 1 << iota

	// FlagResetHPGL2 marks sequences that also reset the HP-GL/2 context.
	FlagResetHPGL2

	// FlagNoGroup marks sequences without a group character.
	FlagNoGroup

	// FlagNoValue marks sequences without a value field.
	FlagNoValue

	// FlagValueIsLen marks sequences whose value is the length of a payload.
	FlagValueIsLen

	// FlagDisplayHex displays the value in hexadecimal.
	FlagDisplayHex

	// FlagDiscrete marks every entry of a family with enumerable values.
	FlagDiscrete

	// FlagGenericFallback marks the root entry of a discrete family.
	FlagGenericFallback

	// FlagVarious marks families with printer-dependent values.
	FlagVarious
)

var flagNames = []struct {
	flag Flags
	name string
}{
	{FlagObsolete, "obsolete"},
	{FlagResetHPGL2, "reset-hpgl2"},
	{FlagNoGroup, "no-group"},
	{FlagNoValue, "no-value"},
	{FlagValueIsLen, "value-is-len"},
	{FlagDisplayHex, "display-hex"},
	{FlagDiscrete, "discrete"},
	{FlagGenericFallback, "generic"},
	{FlagVarious, "various"},
}

// Has reports whether all bits of f are set.
func (fl Flags) Has(f Flags) bool {
	return fl&f == f
}

// String returns the set flag names separated by '|'.
func (fl Flags) String() string {
	if fl == 0 {
		return "none"
	}
	var names []string
	for _, fn := range flagNames {
		if fl.Has(fn.flag) {
			names = append(names, fn.name)
		}
	}
	return strings.Join(names, "|")
}
