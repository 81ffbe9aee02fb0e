package seq

// fontSelectionFamilies returns the font selection families. The font
// characteristic sequences exist for both the primary ('(') and secondary
// (')') font and differ only in the parameterised character.
func fontSelectionFamilies() []family {
	var families []family
	for _, side := range []struct {
		ind  string
		name string
	}{
		{"(", "Primary"},
		{")", "Secondary"},
	} {
		families = append(families,
			family{
				seq:  side.ind + "#X",
				cat:  CategoryFontSelection,
				desc: side.name + " Font Selection by ID (# = font ID)",
			},
			family{
				seq:  side.ind + "#@",
				cat:  CategoryFontSelection,
				desc: side.name + " Font: Default",
				values: []value{
					{v: 0, desc: "Default symbol set"},
					{v: 1, desc: "Default font"},
					{v: 2, desc: "Primary font as secondary font"},
					{v: 3, desc: "Default font characteristics"},
				},
			},
			family{
				seq:  side.ind + "s#P",
				cat:  CategoryFontSelection,
				desc: side.name + " Font: Spacing",
				values: []value{
					{v: 0, desc: "Fixed"},
					{v: 1, desc: "Proportional"},
				},
			},
			family{
				seq:  side.ind + "s#H",
				cat:  CategoryFontSelection,
				desc: side.name + " Font: Pitch (# = characters per inch)",
			},
			family{
				seq:  side.ind + "s#V",
				cat:  CategoryFontSelection,
				desc: side.name + " Font: Height (# = points)",
			},
			family{
				seq:    side.ind + "s#S",
				cat:    CategoryFontSelection,
				desc:   side.name + " Font: Style",
				values: fontStyles,
			},
			family{
				seq:    side.ind + "s#B",
				cat:    CategoryFontSelection,
				desc:   side.name + " Font: Stroke Weight",
				values: strokeWeights,
			},
			family{
				seq:    side.ind + "s#T",
				cat:    CategoryFontSelection,
				desc:   side.name + " Font: Typeface",
				expand: expandTypeface,
			},
		)
	}

	return append(families,
		family{
			seq:   "&k#S",
			cat:   CategoryFontSelection,
			desc:  "Pitch Mode",
			flags: FlagObsolete,
			values: []value{
				{v: 0, desc: "10.0 characters per inch"},
				{v: 2, desc: "16.5 - 16.7 characters per inch"},
				{v: 4, desc: "12.0 characters per inch"},
			},
		},
		family{
			seq:  "&d#D",
			cat:  CategoryFontSelection,
			desc: "Underline On",
			values: []value{
				{v: 0, desc: "Fixed position"},
				{v: 3, desc: "Floating position"},
			},
		},
		family{seq: "&d@", cat: CategoryFontSelection, desc: "Underline Off"},
		family{
			seq:    "&t#P",
			cat:    CategoryFontSelection,
			desc:   "Text Parsing Method",
			expand: expandTextParsing,
		},
		family{
			seq:  "&c#T",
			cat:  CategoryFontSelection,
			desc: "Text Path Direction",
			values: []value{
				{v: -1, desc: "Vertical rotated"},
				{v: 0, desc: "Horizontal"},
			},
		},
		family{
			seq:    "&p#X",
			cat:    CategoryFontSelection,
			desc:   "Transparent Print Data (# = number of bytes)",
			flags:  FlagValueIsLen,
			action: ActionTransparentData,
		},
	)
}

var fontStyles = []value{
	{v: 0, desc: "Upright, solid"},
	{v: 1, desc: "Italic"},
	{v: 2, desc: "Alternate italic"},
	{v: 4, desc: "Condensed"},
	{v: 5, desc: "Condensed italic"},
	{v: 8, desc: "Compressed"},
	{v: 24, desc: "Expanded"},
	{v: 32, desc: "Outline"},
	{v: 64, desc: "Inline"},
	{v: 128, desc: "Shadowed"},
	{v: 160, desc: "Outline shadowed"},
}

var strokeWeights = []value{
	{v: -7, desc: "Ultra thin"},
	{v: -6, desc: "Extra thin"},
	{v: -5, desc: "Thin"},
	{v: -4, desc: "Extra light"},
	{v: -3, desc: "Light"},
	{v: -2, desc: "Demi light"},
	{v: -1, desc: "Semi light"},
	{v: 0, desc: "Medium, book or text"},
	{v: 1, desc: "Semi bold"},
	{v: 2, desc: "Demi bold"},
	{v: 3, desc: "Bold"},
	{v: 4, desc: "Extra bold"},
	{v: 5, desc: "Black"},
	{v: 6, desc: "Extra black"},
	{v: 7, desc: "Ultra black"},
}

var fontManagementFamilies = []family{
	{seq: "*c#D", cat: CategoryFontManagement, desc: "Font ID (# = font ID)", overlay: OverlayIDAssign},
	{seq: "*c#E", cat: CategoryFontManagement, desc: "Character Code (# = character code)", flags: FlagDisplayHex},
	{
		seq:  "*c#F",
		cat:  CategoryFontManagement,
		desc: "Font Control",
		values: []value{
			{v: 0, desc: "Delete all fonts", overlay: OverlayDelete},
			{v: 1, desc: "Delete all temporary fonts", overlay: OverlayDelete},
			{v: 2, desc: "Delete font (current font ID)", overlay: OverlayDelete},
			{v: 3, desc: "Delete character (current font ID and character code)", overlay: OverlayDelete},
			{v: 4, desc: "Make font temporary"},
			{v: 5, desc: "Make font permanent"},
			{v: 6, desc: "Copy current font as temporary font"},
		},
	},
	{seq: "*c#R", cat: CategoryFontManagement, desc: "Symbol Set ID Code (# = symbol set code)", overlay: OverlayIDAssign},
	{
		seq:  "*c#S",
		cat:  CategoryFontManagement,
		desc: "Symbol Set Control",
		values: []value{
			{v: 0, desc: "Delete all user-defined symbol sets", overlay: OverlayDelete},
			{v: 1, desc: "Delete all temporary user-defined symbol sets", overlay: OverlayDelete},
			{v: 2, desc: "Delete current user-defined symbol set", overlay: OverlayDelete},
			{v: 4, desc: "Make symbol set temporary"},
			{v: 5, desc: "Make symbol set permanent"},
		},
	},
	{
		seq:     "&n#W",
		cat:     CategoryFontManagement,
		desc:    "Alphanumeric ID (# = number of bytes)",
		flags:   FlagValueIsLen,
		action:  ActionAlphaNumericID,
		overlay: OverlayIDAssign,
	},
}

var softFontFamilies = []family{
	{
		seq:     ")s#W",
		cat:     CategorySoftFontCreation,
		desc:    "Font Header (# = number of bytes)",
		flags:   FlagValueIsLen,
		action:  ActionFontHeader,
		overlay: OverlayDownload,
	},
	{
		seq:     "(s#W",
		cat:     CategorySoftFontCreation,
		desc:    "Character Descriptor and Data (# = number of bytes)",
		flags:   FlagValueIsLen,
		action:  ActionFontChar,
		overlay: OverlayDownload,
	},
	{
		seq:     "(f#W",
		cat:     CategorySymbolSetCreation,
		desc:    "Define Symbol Set (# = number of bytes)",
		flags:   FlagValueIsLen,
		action:  ActionSymbolSetMap,
		overlay: OverlayDownload,
	},
}
