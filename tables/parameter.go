package tables

// WMO Code Table 4.2: Parameter number, which varies by discipline and parameter
// category. Presentation-only; carries the meteorological-discipline (0) entries
// most commonly produced by operational forecast models, the discipline this
// module's test fixtures exercise.

var meteorologicalTemperatureEntries = []*Entry{
	{0, "Temperature", "Temperature", "K"},
	{1, "VirtualTemperature", "Virtual temperature", "K"},
	{2, "PotentialTemperature", "Potential temperature", "K"},
	{6, "DewpointTemperature", "Dewpoint temperature", "K"},
	{10, "LatentHeatNetFlux", "Latent heat net flux", "W m-2"},
}

var meteorologicalMoistureEntries = []*Entry{
	{0, "SpecificHumidity", "Specific humidity", "kg kg-1"},
	{1, "RelativeHumidity", "Relative humidity", "%"},
	{8, "TotalPrecipitation", "Total precipitation", "kg m-2"},
	{11, "SnowDepth", "Snow depth", "m"},
}

var meteorologicalMomentumEntries = []*Entry{
	{0, "WindDirection", "Wind direction (from which blowing)", "deg"},
	{1, "WindSpeed", "Wind speed", "m s-1"},
	{2, "UComponentOfWind", "U-component of wind", "m s-1"},
	{3, "VComponentOfWind", "V-component of wind", "m s-1"},
}

// parameterCategoryTables holds WMO Code Table 4.2 tables, each scoped to
// meteorological discipline (0) and one parameter category; GRIB2 needs (discipline, category, number) to
// resolve a parameter, so this package exposes a table per (discipline, category)
// pair through ParameterTableFor.
var parameterCategoryTables = map[[2]int]Table{
	{0, 0}: NewSimpleTable(meteorologicalTemperatureEntries, "unknown temperature parameter"),
	{0, 1}: NewSimpleTable(meteorologicalMoistureEntries, "unknown moisture parameter"),
	{0, 2}: NewSimpleTable(meteorologicalMomentumEntries, "unknown momentum parameter"),
}

// ParameterTableFor returns the table 4.2 entries for a (discipline, category) pair,
// or nil if this build does not carry presentation data for that combination.
func ParameterTableFor(discipline, category int) Table {
	return parameterCategoryTables[[2]int{discipline, category}]
}
