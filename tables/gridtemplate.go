package tables

// WMO Code Table 3.1: Grid definition template number.

var gridTemplateEntries = []*Entry{
	{0, "LatLon", "Latitude/longitude (equirectangular, or Plate Carrée)", ""},
	{20, "PolarStereographic", "Polar stereographic projection", ""},
	{30, "Lambert", "Lambert conformal conic projection", ""},
	{40, "Gaussian", "Gaussian latitude/longitude", ""},
}

// GridTemplateTable is WMO Code Table 3.1.
var GridTemplateTable = NewSimpleTable(gridTemplateEntries, "unsupported grid template")
