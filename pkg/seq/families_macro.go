package seq

var macroFamilies = []family{
	{seq: "&f#Y", cat: CategoryMacro, desc: "Macro ID (# = macro ID)", overlay: OverlayIDAssign},
	{
		seq:     "&f#X",
		cat:     CategoryMacro,
		desc:    "Macro Control",
		overlay: OverlayMacroControl,
		values: []value{
			{v: 0, desc: "Start macro definition", action: ActionMacroStart},
			{v: 1, desc: "Stop macro definition", action: ActionMacroStop},
			{v: 2, desc: "Execute macro", action: ActionMacroCall},
			{v: 3, desc: "Call macro", action: ActionMacroCall},
			{v: 4, desc: "Enable overlay"},
			{v: 5, desc: "Disable overlay"},
			{v: 6, desc: "Delete all macros", overlay: OverlayDelete},
			{v: 7, desc: "Delete all temporary macros", overlay: OverlayDelete},
			{v: 8, desc: "Delete macro (current macro ID)", overlay: OverlayDelete},
			{v: 9, desc: "Make macro temporary"},
			{v: 10, desc: "Make macro permanent"},
		},
	},
}

var statusReadbackFamilies = []family{
	{
		seq:  "*s#T",
		cat:  CategoryStatusReadback,
		desc: "Set Location Type",
		values: []value{
			{v: 0, desc: "Invalid location"},
			{v: 1, desc: "Currently selected"},
			{v: 2, desc: "All locations"},
			{v: 3, desc: "Internal"},
			{v: 4, desc: "Downloaded entity"},
			{v: 5, desc: "Cartridge"},
			{v: 7, desc: "User-installed ROM devices"},
		},
	},
	{seq: "*s#U", cat: CategoryStatusReadback, desc: "Set Location Unit (# = printer-dependent unit)", flags: FlagVarious},
	{
		seq:  "*s#I",
		cat:  CategoryStatusReadback,
		desc: "Inquire Entity",
		values: []value{
			{v: 0, desc: "Font"},
			{v: 1, desc: "Macro"},
			{v: 2, desc: "User-defined pattern"},
			{v: 3, desc: "Symbol set"},
			{v: 4, desc: "Font extended"},
		},
	},
	{
		seq:  "*s#M",
		cat:  CategoryStatusReadback,
		desc: "Free Space",
		values: []value{
			{v: 1, desc: "Report free memory"},
		},
	},
	{seq: "*s#X", cat: CategoryStatusReadback, desc: "Echo (# = echo value)"},
}
