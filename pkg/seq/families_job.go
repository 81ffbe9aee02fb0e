package seq

import "strconv"

// simpleFamilies are the two-byte sequences.
var simpleFamilies = []family{
	{seq: "E", cat: CategoryJobControl, desc: "Printer Reset", flags: FlagResetHPGL2, overlay: OverlayReset},
	{seq: "9", cat: CategoryPageControl, desc: "Clear Horizontal Margins"},
	{seq: "=", cat: CategoryCursorPositioning, desc: "Half Line Feed"},
	{seq: "Y", cat: CategoryMisc, desc: "Display Functions On"},
	{seq: "Z", cat: CategoryMisc, desc: "Display Functions Off"},
	{seq: "z", cat: CategoryMisc, desc: "Self Test", flags: FlagObsolete},
}

var jobControlFamilies = []family{
	{
		seq:    "%#X",
		cat:    CategoryJobControl,
		desc:   "Universal Exit Language",
		action: ActionExitLanguage,
		values: []value{
			{v: -12345, desc: "Start of PJL"},
		},
	},
	{
		seq:    "%#A",
		cat:    CategoryJobControl,
		desc:   "Enter PCL Mode",
		action: ActionEnterPCL,
		values: []value{
			{v: 0, desc: "Use previous PCL cursor position"},
			{v: 1, desc: "Use current HP-GL/2 pen position"},
		},
	},
	{
		seq:    "%#B",
		cat:    CategoryJobControl,
		desc:   "Enter HP-GL/2 Mode",
		action: ActionEnterHPGL2,
		values: []value{
			{v: -1, desc: "Stand-alone plotter mode"},
			{v: 0, desc: "Use previous HP-GL/2 pen position"},
			{v: 1, desc: "Use current PCL cursor position"},
		},
	},
	{seq: "&l#X", cat: CategoryJobControl, desc: "Number of Copies (# = number of copies)"},
	{
		seq:  "&l#S",
		cat:  CategoryJobControl,
		desc: "Simplex/Duplex Print",
		values: []value{
			{v: 0, desc: "Simplex"},
			{v: 1, desc: "Duplex, long-edge binding"},
			{v: 2, desc: "Duplex, short-edge binding"},
		},
	},
	{
		seq:     "&a#G",
		cat:     CategoryJobControl,
		desc:    "Duplex Page Side Selection",
		overlay: OverlayPageAdvance,
		values: []value{
			{v: 0, desc: "Next side"},
			{v: 1, desc: "Front side"},
			{v: 2, desc: "Back side"},
		},
	},
	{seq: "&l#U", cat: CategoryJobControl, desc: "Left Offset Registration (# = decipoints)"},
	{seq: "&l#Z", cat: CategoryJobControl, desc: "Top Offset Registration (# = decipoints)"},
	{
		seq:  "&l#T",
		cat:  CategoryJobControl,
		desc: "Job Separation",
		values: []value{
			{v: 1, desc: "Enable job separation"},
		},
	},
	{seq: "&l#G", cat: CategoryJobControl, desc: "Output Bin (# = printer-dependent bin number)", flags: FlagVarious},
	{
		seq:    "&u#D",
		cat:    CategoryJobControl,
		desc:   "Unit of Measure",
		values: unitsOfMeasure(),
	},
	{
		seq:  "&r#F",
		cat:  CategoryJobControl,
		desc: "Flush All Pages",
		values: []value{
			{v: 0, desc: "Flush all complete pages"},
			{v: 1, desc: "Flush all page data"},
		},
	},
	{
		seq:    "&b#W",
		cat:    CategoryJobControl,
		desc:   "AppleTalk Configuration (# = number of bytes)",
		flags:  FlagValueIsLen,
		action: ActionEmbeddedData,
	},
}

// unitsOfMeasure returns the PCL unit resolutions accepted by <Esc>&u#D.
func unitsOfMeasure() []value {
	dpi := []int32{
		96, 100, 120, 144, 150, 160, 180, 200, 225, 240, 288, 300, 360,
		400, 450, 480, 600, 720, 800, 900, 1200, 1440, 1800, 2400, 3600, 7200,
	}
	values := make([]value, len(dpi))
	for i, d := range dpi {
		values[i] = value{v: d, desc: strconv.Itoa(int(d)) + " units per inch"}
	}
	return values
}
