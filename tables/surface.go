package tables

// WMO Code Table 4.5: Fixed surface types, presentation table consulted when
// describing a product definition's level/surface fields.

var fixedSurfaceEntries = []*Entry{
	{1, "GroundOrWaterSurface", "Ground or water surface", ""},
	{2, "CloudBase", "Cloud base level", ""},
	{3, "CloudTop", "Level of cloud tops", ""},
	{100, "IsobaricSurface", "Isobaric surface", "Pa"},
	{101, "MeanSeaLevel", "Mean sea level", ""},
	{102, "SpecificAltitude", "Specific altitude above mean sea level", "m"},
	{103, "SpecificHeight", "Specific height level above ground", "m"},
	{104, "SigmaLevel", "Sigma level", ""},
	{105, "HybridLevel", "Hybrid level", ""},
	{106, "DepthBelowLand", "Depth below land surface", "m"},
	{108, "PressureDifferenceFromGround", "Level at specified pressure difference from ground to level", "Pa"},
}

var fixedSurfaceRanges = []RangeEntry{
	{192, 254, "Local", "Reserved for local use"},
	{255, 255, "Missing", "Missing"},
}

// FixedSurfaceTable is WMO Code Table 4.5.
var FixedSurfaceTable = NewRangeTable(fixedSurfaceEntries, fixedSurfaceRanges, "unknown fixed surface")

// WMO Code Table 4.4: Time range indicator / unit of time range.

var timeUnitEntries = []*Entry{
	{0, "Minute", "Minute", "min"},
	{1, "Hour", "Hour", "h"},
	{2, "Day", "Day", "d"},
	{3, "Month", "Month", "mo"},
	{4, "Year", "Year", "yr"},
	{10, "ThreeHours", "3 hours", "3h"},
	{11, "SixHours", "6 hours", "6h"},
	{12, "TwelveHours", "12 hours", "12h"},
	{13, "Second", "Second", "s"},
}

// TimeUnitTable is WMO Code Table 4.4.
var TimeUnitTable = NewSimpleTable(timeUnitEntries, "unknown time unit")
