package tables

// WMO Code Table 5.0: Data representation template number.

var dataRepTemplateEntries = []*Entry{
	{0, "Simple", "Grid point data - simple packing", ""},
	{2, "Complex", "Grid point data - complex packing", ""},
	{3, "ComplexSpatialDiff", "Grid point data - complex packing and spatial differencing", ""},
	{40, "JPEG2000", "Grid point data - JPEG 2000 code stream format", ""},
	{41, "PNG", "Grid point data - PNG", ""},
	{42, "CCSDS", "Grid point data - CCSDS recommended lossless compression", ""},
	{200, "RunLength", "Run length packing with level values", ""},
}

// DataRepTemplateTable is WMO Code Table 5.0.
var DataRepTemplateTable = NewSimpleTable(dataRepTemplateEntries, "unsupported data representation template")

// WMO Code Table 5.5: Missing value management for complex packing.

var missingValueManagementEntries = []*Entry{
	{0, "NoExplicit", "No explicit missing values included within the data values", ""},
	{1, "Primary", "Primary missing values included within the data values", ""},
	{2, "PrimaryAndSecondary", "Primary and secondary missing values included within the data values", ""},
}

// MissingValueManagementTable is WMO Code Table 5.5.
var MissingValueManagementTable = NewSimpleTable(missingValueManagementEntries, "unknown missing value management")

// WMO Code Table 5.6: Order of spatial differencing.

var spatialDifferencingOrderEntries = []*Entry{
	{1, "First", "First-order spatial differencing", ""},
	{2, "Second", "Second-order spatial differencing", ""},
}

// SpatialDifferencingOrderTable is WMO Code Table 5.6.
var SpatialDifferencingOrderTable = NewSimpleTable(spatialDifferencingOrderEntries, "unknown spatial differencing order")

// WMO Code Table 5.1: Type of original field values.

var originalFieldTypeEntries = []*Entry{
	{0, "FloatingPoint", "Floating point", ""},
	{1, "Integer", "Integer", ""},
}

// OriginalFieldTypeTable is WMO Code Table 5.1.
var OriginalFieldTypeTable = NewSimpleTable(originalFieldTypeEntries, "unknown original field type")

// IsFloatingPoint reports whether the declared original-field-type code designates
// floating point data, the gate complex packing decoders must check before
// attempting to decode (§4.H.2's "float-type gate").
func IsFloatingPoint(code int) bool {
	return code == 0
}
