package tables

// WMO Code Table 0.0: Discipline of processed data in the GRIB message.

var disciplineEntries = []*Entry{
	{0, "Meteorological", "Meteorological products", ""},
	{1, "Hydrological", "Hydrological products", ""},
	{2, "LandSurface", "Land surface products", ""},
	{3, "Space", "Space products (deprecated)", ""},
	{4, "SpaceWeather", "Space weather products", ""},
	{10, "Oceanographic", "Oceanographic products", ""},
	{20, "Health", "Health and socioeconomic impacts", ""},
}

var disciplineRanges = []RangeEntry{
	{192, 254, "Local", "Reserved for local use"},
	{255, 255, "Missing", "Missing"},
}

// DisciplineTable is WMO Code Table 0.0.
var DisciplineTable = NewRangeTable(disciplineEntries, disciplineRanges, "unknown discipline")
