package seq

var rasterFamilies = []family{
	{
		seq:  "*t#R",
		cat:  CategoryRasterGraphics,
		desc: "Raster Graphics Resolution",
		values: []value{
			{v: 75, desc: "75 dots per inch"},
			{v: 100, desc: "100 dots per inch"},
			{v: 150, desc: "150 dots per inch"},
			{v: 200, desc: "200 dots per inch"},
			{v: 300, desc: "300 dots per inch"},
			{v: 600, desc: "600 dots per inch"},
		},
	},
	{
		seq:  "*r#A",
		cat:  CategoryRasterGraphics,
		desc: "Start Raster Graphics",
		values: []value{
			{v: 0, desc: "Start at left graphics margin"},
			{v: 1, desc: "Start at current cursor position"},
			{v: 2, desc: "Start at left graphics margin, scale mode"},
			{v: 3, desc: "Start at current cursor position, scale mode"},
		},
	},
	{seq: "*rB", cat: CategoryRasterGraphics, desc: "End Raster Graphics (old form)", flags: FlagObsolete},
	{seq: "*rC", cat: CategoryRasterGraphics, desc: "End Raster Graphics"},
	{
		seq:  "*b#M",
		cat:  CategoryRasterGraphics,
		desc: "Raster Compression Method",
		values: []value{
			{v: 0, desc: "Unencoded"},
			{v: 1, desc: "Run-length encoding"},
			{v: 2, desc: "Tagged Image File Format"},
			{v: 3, desc: "Delta row compression"},
			{v: 5, desc: "Adaptive compression"},
			{v: 9, desc: "Replacement delta row"},
		},
	},
	{
		seq:    "*b#W",
		cat:    CategoryRasterGraphics,
		desc:   "Transfer Raster Data by Row/Block (# = number of bytes)",
		flags:  FlagValueIsLen,
		action: ActionRasterData,
	},
	{
		seq:    "*b#V",
		cat:    CategoryRasterGraphics,
		desc:   "Transfer Raster Data by Plane (# = number of bytes)",
		flags:  FlagValueIsLen,
		action: ActionRasterData,
	},
	{seq: "*b#Y", cat: CategoryRasterGraphics, desc: "Raster Y Offset (# = raster lines)"},
	{
		seq:  "*r#F",
		cat:  CategoryRasterGraphics,
		desc: "Raster Graphics Presentation",
		values: []value{
			{v: 0, desc: "Follow orientation of logical page"},
			{v: 3, desc: "Along width of physical page"},
		},
	},
	{seq: "*r#S", cat: CategoryRasterGraphics, desc: "Source Raster Width (# = pixels)"},
	{seq: "*r#T", cat: CategoryRasterGraphics, desc: "Source Raster Height (# = raster rows)"},
	{seq: "*t#H", cat: CategoryRasterGraphics, desc: "Destination Raster Width (# = decipoints)"},
	{seq: "*t#V", cat: CategoryRasterGraphics, desc: "Destination Raster Height (# = decipoints)"},
	{
		seq:    "*g#W",
		cat:    CategoryRasterGraphics,
		desc:   "Configure Raster Data (# = number of bytes)",
		flags:  FlagValueIsLen,
		action: ActionEmbeddedData,
	},
}

var rectangularAreaFamilies = []family{
	{seq: "*c#A", cat: CategoryRectangularArea, desc: "Rectangle Width (# = PCL units)"},
	{seq: "*c#B", cat: CategoryRectangularArea, desc: "Rectangle Height (# = PCL units)"},
	{seq: "*c#H", cat: CategoryRectangularArea, desc: "Rectangle Width (# = decipoints)"},
	{seq: "*c#V", cat: CategoryRectangularArea, desc: "Rectangle Height (# = decipoints)"},
	{
		seq:  "*c#P",
		cat:  CategoryRectangularArea,
		desc: "Fill Rectangular Area",
		values: []value{
			{v: 0, desc: "Solid fill, current colour"},
			{v: 1, desc: "Erase, white fill"},
			{v: 2, desc: "Shaded fill"},
			{v: 3, desc: "Cross-hatch fill"},
			{v: 4, desc: "User-defined pattern fill"},
			{v: 5, desc: "Current pattern fill"},
		},
	},
}

var patternFamilies = []family{
	{seq: "*c#G", cat: CategoryUserPattern, desc: "Area Fill ID (# = pattern ID or shading level)", overlay: OverlayIDAssign},
	{
		seq:  "*v#T",
		cat:  CategoryUserPattern,
		desc: "Select Current Pattern",
		values: []value{
			{v: 0, desc: "Solid black"},
			{v: 1, desc: "Solid white"},
			{v: 2, desc: "Shading pattern"},
			{v: 3, desc: "Cross-hatch pattern"},
			{v: 4, desc: "User-defined pattern"},
		},
	},
	{
		seq:     "*c#W",
		cat:     CategoryUserPattern,
		desc:    "User-Defined Pattern (# = number of bytes)",
		flags:   FlagValueIsLen,
		action:  ActionPatternData,
		overlay: OverlayDownload,
	},
	{
		seq:  "*c#Q",
		cat:  CategoryUserPattern,
		desc: "Pattern Control",
		values: []value{
			{v: 0, desc: "Delete all patterns", overlay: OverlayDelete},
			{v: 1, desc: "Delete all temporary patterns", overlay: OverlayDelete},
			{v: 2, desc: "Delete pattern (current pattern ID)", overlay: OverlayDelete},
			{v: 4, desc: "Make pattern temporary"},
			{v: 5, desc: "Make pattern permanent"},
		},
	},
	{
		seq:  "*p#R",
		cat:  CategoryUserPattern,
		desc: "Set Pattern Reference Point",
		values: []value{
			{v: 0, desc: "Rotate pattern with print direction"},
			{v: 1, desc: "Keep pattern fixed"},
		},
	},
}

var printModelFamilies = []family{
	{
		seq:  "*v#N",
		cat:  CategoryPrintModel,
		desc: "Source Transparency Mode",
		values: []value{
			{v: 0, desc: "Transparent"},
			{v: 1, desc: "Opaque"},
		},
	},
	{
		seq:  "*v#O",
		cat:  CategoryPrintModel,
		desc: "Pattern Transparency Mode",
		values: []value{
			{v: 0, desc: "Transparent"},
			{v: 1, desc: "Opaque"},
		},
	},
	{
		seq:    "*l#O",
		cat:    CategoryPrintModel,
		desc:   "Logical Operation",
		expand: expandLogicalOp,
	},
	{
		seq:  "*l#R",
		cat:  CategoryPrintModel,
		desc: "Pixel Placement",
		values: []value{
			{v: 0, desc: "Grid intersection"},
			{v: 1, desc: "Grid centered"},
		},
	},
}

var colourFamilies = []family{
	{
		seq:    "*v#W",
		cat:    CategoryColour,
		desc:   "Configure Image Data (# = number of bytes)",
		flags:  FlagValueIsLen,
		action: ActionConfigureImageData,
	},
	{
		seq:  "*r#U",
		cat:  CategoryColour,
		desc: "Simple Colour",
		values: []value{
			{v: -4, desc: "4-plane KCMY palette"},
			{v: -3, desc: "3-plane CMY palette"},
			{v: 1, desc: "Single plane K palette"},
			{v: 3, desc: "3-plane RGB palette"},
		},
	},
	{seq: "*v#A", cat: CategoryColour, desc: "Colour Component One (# = component value)"},
	{seq: "*v#B", cat: CategoryColour, desc: "Colour Component Two (# = component value)"},
	{seq: "*v#C", cat: CategoryColour, desc: "Colour Component Three (# = component value)"},
	{seq: "*v#I", cat: CategoryColour, desc: "Assign Colour Index (# = palette index)"},
	{seq: "*v#S", cat: CategoryColour, desc: "Foreground Colour (# = palette index)"},
	{
		seq:  "*p#P",
		cat:  CategoryColour,
		desc: "Push/Pop Palette",
		values: []value{
			{v: 0, desc: "Push palette"},
			{v: 1, desc: "Pop palette"},
		},
	},
	{seq: "&p#S", cat: CategoryColour, desc: "Select Palette (# = palette ID)"},
	{seq: "&p#I", cat: CategoryColour, desc: "Palette Control ID (# = palette ID)", overlay: OverlayIDAssign},
	{
		seq:  "&p#C",
		cat:  CategoryColour,
		desc: "Palette Control",
		values: []value{
			{v: 0, desc: "Delete all palettes except those on the stack", overlay: OverlayDelete},
			{v: 1, desc: "Delete all palettes on the stack", overlay: OverlayDelete},
			{v: 2, desc: "Delete palette (palette control ID)", overlay: OverlayDelete},
			{v: 6, desc: "Copy active palette to palette control ID"},
		},
	},
	{
		seq:  "*t#J",
		cat:  CategoryColour,
		desc: "Render Algorithm",
		values: []value{
			{v: 0, desc: "Continuous tone detail"},
			{v: 1, desc: "Snap to primaries"},
			{v: 2, desc: "Snap black to white, colour to black"},
			{v: 3, desc: "Device best dither"},
			{v: 4, desc: "Error diffusion"},
			{v: 5, desc: "Monochrome device best dither"},
			{v: 6, desc: "Monochrome error diffusion"},
			{v: 7, desc: "Cluster ordered dither"},
			{v: 8, desc: "Monochrome cluster ordered dither"},
			{v: 9, desc: "User-defined dither"},
			{v: 10, desc: "Monochrome user-defined dither"},
		},
	},
	{seq: "*t#I", cat: CategoryColour, desc: "Gamma Correction (# = gamma value)"},
	{
		seq:    "*i#W",
		cat:    CategoryColour,
		desc:   "Viewing Illuminant (# = number of bytes)",
		flags:  FlagValueIsLen,
		action: ActionEmbeddedData,
	},
	{
		seq:    "*o#W",
		cat:    CategoryColour,
		desc:   "Driver Configuration (# = number of bytes)",
		flags:  FlagValueIsLen,
		action: ActionEmbeddedData,
	},
	{
		seq:    "*l#W",
		cat:    CategoryColour,
		desc:   "Colour Lookup Tables (# = number of bytes)",
		flags:  FlagValueIsLen,
		action: ActionEmbeddedData,
	},
	{
		seq:     "*m#W",
		cat:     CategoryColour,
		desc:    "Download Dither Matrix (# = number of bytes)",
		flags:   FlagValueIsLen,
		action:  ActionEmbeddedData,
		overlay: OverlayDownload,
	},
	{
		seq:  "&b#M",
		cat:  CategoryColour,
		desc: "Monochrome Print Mode",
		values: []value{
			{v: 0, desc: "Mixed render algorithm mode"},
			{v: 1, desc: "Grey-scale equivalent mode"},
		},
	},
	{
		seq:  "*o#M",
		cat:  CategoryColour,
		desc: "Print Quality",
		values: []value{
			{v: -1, desc: "Draft"},
			{v: 0, desc: "Normal"},
			{v: 1, desc: "Presentation"},
		},
	},
}

var pictureFrameFamilies = []family{
	{seq: "*c#X", cat: CategoryPictureFrame, desc: "Picture Frame Horizontal Size (# = decipoints)"},
	{seq: "*c#Y", cat: CategoryPictureFrame, desc: "Picture Frame Vertical Size (# = decipoints)"},
	{seq: "*c#K", cat: CategoryPictureFrame, desc: "HP-GL/2 Plot Horizontal Size (# = inches)"},
	{seq: "*c#L", cat: CategoryPictureFrame, desc: "HP-GL/2 Plot Vertical Size (# = inches)"},
	{
		seq:  "*c#T",
		cat:  CategoryPictureFrame,
		desc: "Set Picture Frame Anchor Point",
		values: []value{
			{v: 0, desc: "Anchor at current cursor position"},
		},
	},
}
