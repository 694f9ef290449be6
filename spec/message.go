package spec

import "github.com/scorix/grib2/section"

// DataField represents the innermost repeatable sequence (sections 4-7)
// This is the atomic unit of data in GRIB2 - a single data field with its metadata
type DataField struct {
	ProductDef section.Section4 // Section 4 - Product Definition (required)
	DataRep    section.Section5 // Section 5 - Data Representation (required)
	Bitmap     section.Section6 // Section 6 - Bitmap (optional, nil if not present)
	Data       section.Section7 // Section 7 - Data (required)
}

// GridBlock represents the middle repeatable sequence (sections 3-7)
// Contains a grid definition followed by one or more data fields using that grid
type GridBlock struct {
	GridDef section.Section3 // Section 3 - Grid Definition (required for this block)
	Fields  []DataField      // Data fields using this grid (sections 4-7 repeated)
}

// LocalBlock represents the outermost repeatable sequence (sections 2-7)
// Contains optional local use section followed by one or more grid blocks
type LocalBlock struct {
	LocalUse section.Section2 // Section 2 - Local Use (optional, nil if not present)
	Grids    []GridBlock      // Grid blocks (sections 3-7 repeated)
}

// Message represents a complete GRIB2 message according to WMO specification
// Supports the full three-level nesting structure defined in the standard
//
// Structure pattern:
// Section 0 (Indicator) - appears once at start
// Section 1 (Identification) - appears once after Section 0
// [Repeated blocks containing sections 2-7, 3-7, or 4-7]
// Section 8 (End) - appears once at end
//
// Three levels of repetition are supported:
// 1. Local blocks (sections 2-7 repeated)
// 2. Grid blocks (sections 3-7 repeated within a local block)
// 3. Data fields (sections 4-7 repeated within a grid block)
type Message struct {
	// Fixed sections - appear exactly once per message
	Indicator      section.Section0 // Section 0 - Indicator (required, appears once)
	Identification section.Section1 // Section 1 - Identification (required, appears once)

	// Variable sections - can be repeated according to the specification
	Blocks []LocalBlock // Local blocks (sections 2-7 repeated)

	// Terminator section - appears exactly once per message
	End section.Section8 // Section 8 - End (required, appears once)
}

// Submessages flattens the message's three-level repeated-section tree into
// the flat sequence of 7-slot SubmessageViews that decode and grid consume,
// in the order the fields were read. A message with N grid blocks across M
// local blocks, each holding its own data fields, yields one view per data
// field with the enclosing local/grid context carried along.
func (m Message) Submessages() []SubmessageView {
	var views []SubmessageView
	for _, local := range m.Blocks {
		for _, grid := range local.Grids {
			for _, field := range grid.Fields {
				views = append(views, NewSubmessageView(
					m.Indicator,
					m.Identification,
					local.LocalUse,
					grid.GridDef,
					field.ProductDef,
					field.DataRep,
					field.Bitmap,
					field.Data,
				))
			}
		}
	}
	return views
}

// NumDataFields counts the data fields nested across every local and grid
// block, without materializing SubmessageViews for them.
func (m Message) NumDataFields() int {
	n := 0
	for _, local := range m.Blocks {
		for _, grid := range local.Grids {
			n += len(grid.Fields)
		}
	}
	return n
}
