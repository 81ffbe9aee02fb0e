package seq

import "fmt"

var pageControlFamilies = []family{
	{
		seq:     "&l#A",
		cat:     CategoryPageControl,
		desc:    "Page Size",
		overlay: OverlayPageAdvance,
		expand:  expandPaperSize,
	},
	{
		seq:     "&l#H",
		cat:     CategoryPageControl,
		desc:    "Paper Source",
		overlay: OverlayPageAdvance,
		values: []value{
			{v: 0, desc: "Eject current page"},
			{v: 1, desc: "Main paper source"},
			{v: 2, desc: "Manual feed, paper"},
			{v: 3, desc: "Manual feed, envelope"},
			{v: 4, desc: "Alternate paper source"},
			{v: 5, desc: "Optional large paper source"},
			{v: 6, desc: "Envelope feeder"},
			{v: 7, desc: "Auto select"},
			{v: 8, desc: "Tray 1"},
		},
	},
	{
		seq:  "&l#M",
		cat:  CategoryPageControl,
		desc: "Media Type",
		values: []value{
			{v: 0, desc: "Plain paper"},
			{v: 1, desc: "Bond paper"},
			{v: 2, desc: "Special paper"},
			{v: 3, desc: "Glossy film"},
			{v: 4, desc: "Transparency film"},
		},
	},
	{
		seq:    "&l#O",
		cat:    CategoryPageControl,
		desc:   "Page Orientation",
		expand: expandOrientation,
	},
	{
		seq:  "&a#P",
		cat:  CategoryPageControl,
		desc: "Print Direction",
		values: []value{
			{v: 0, desc: "0 degrees"},
			{v: 90, desc: "90 degrees counter-clockwise"},
			{v: 180, desc: "180 degrees counter-clockwise"},
			{v: 270, desc: "270 degrees counter-clockwise"},
		},
	},
	{seq: "&l#E", cat: CategoryPageControl, desc: "Top Margin (# = lines)"},
	{seq: "&l#F", cat: CategoryPageControl, desc: "Text Length (# = lines)"},
	{seq: "&a#L", cat: CategoryPageControl, desc: "Left Margin (# = columns)"},
	{seq: "&a#M", cat: CategoryPageControl, desc: "Right Margin (# = columns)"},
	{
		seq:  "&l#L",
		cat:  CategoryPageControl,
		desc: "Perforation Skip",
		values: []value{
			{v: 0, desc: "Disable"},
			{v: 1, desc: "Enable"},
		},
	},
	{seq: "&k#H", cat: CategoryPageControl, desc: "Horizontal Motion Index (# = 1/120 inch increments)"},
	{seq: "&l#C", cat: CategoryPageControl, desc: "Vertical Motion Index (# = 1/48 inch increments)"},
	{
		seq:    "&l#D",
		cat:    CategoryPageControl,
		desc:   "Line Spacing",
		values: linesPerInch(),
	},
	{seq: "&l#P", cat: CategoryPageControl, desc: "Page Length (# = lines)", flags: FlagObsolete},
	{
		seq:  "&k#G",
		cat:  CategoryPageControl,
		desc: "Line Termination",
		values: []value{
			{v: 0, desc: "CR=CR, LF=LF, FF=FF"},
			{v: 1, desc: "CR=CR+LF, LF=LF, FF=FF"},
			{v: 2, desc: "CR=CR, LF=CR+LF, FF=CR+FF"},
			{v: 3, desc: "CR=CR+LF, LF=CR+LF, FF=CR+FF"},
		},
	},
	{
		seq:  "&s#C",
		cat:  CategoryPageControl,
		desc: "End-of-Line Wrap",
		values: []value{
			{v: 0, desc: "Enable"},
			{v: 1, desc: "Disable"},
		},
	},
}

var cursorFamilies = []family{
	{seq: "&a#R", cat: CategoryCursorPositioning, desc: "Vertical Cursor Position (# = rows)"},
	{seq: "&a#C", cat: CategoryCursorPositioning, desc: "Horizontal Cursor Position (# = columns)"},
	{seq: "&a#V", cat: CategoryCursorPositioning, desc: "Vertical Cursor Position (# = decipoints)"},
	{seq: "&a#H", cat: CategoryCursorPositioning, desc: "Horizontal Cursor Position (# = decipoints)"},
	{seq: "*p#X", cat: CategoryCursorPositioning, desc: "Horizontal Cursor Position (# = PCL units)"},
	{seq: "*p#Y", cat: CategoryCursorPositioning, desc: "Vertical Cursor Position (# = PCL units)"},
	{
		seq:  "&f#S",
		cat:  CategoryCursorPositioning,
		desc: "Push/Pop Cursor Position",
		values: []value{
			{v: 0, desc: "Push position"},
			{v: 1, desc: "Pop position"},
		},
	},
}

func linesPerInch() []value {
	lpi := []int32{0, 1, 2, 3, 4, 5, 6, 8, 12, 16, 24, 48}
	values := make([]value, len(lpi))
	for i, n := range lpi {
		desc := "No line feeds"
		if n > 0 {
			desc = fmt.Sprintf("%d lines per inch", n)
		}
		values[i] = value{v: n, desc: desc}
	}
	return values
}
