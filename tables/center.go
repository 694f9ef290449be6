package tables

// WMO Common Code Table C-1: Identification of originating/generating centers.
// Presentation-only; the full table has 200+ entries, this carries the centers
// most commonly seen in circulated GRIB2 data.

var centerEntries = []*Entry{
	{7, "NCEP", "US National Centers for Environmental Prediction", ""},
	{8, "NWS-NWSTG", "US NWS Telecommunications Gateway", ""},
	{9, "NWS-OTHER", "US NWS - Other", ""},
	{34, "JMA", "Japan Meteorological Agency - Tokyo", ""},
	{38, "CMA", "China Meteorological Administration - Beijing", ""},
	{40, "KMA", "Korea Meteorological Administration - Seoul", ""},
	{46, "ROSHYDROMET", "Russian Federal Service for Hydrometeorology - Moscow", ""},
	{52, "NHC", "US National Hurricane Center", ""},
	{54, "CMC", "Canadian Meteorological Centre - Montreal", ""},
	{57, "USAF", "US Air Force Global Weather Central", ""},
	{58, "FNMOC", "US Navy Fleet Numerical Meteorology and Oceanography Center", ""},
	{59, "NOAA-FSL", "US NOAA Forecast Systems Laboratory", ""},
	{60, "NCAR", "US National Center for Atmospheric Research", ""},
	{74, "UKMO", "UK Met Office - Exeter", ""},
	{78, "DWD", "Deutscher Wetterdienst - Offenbach", ""},
	{80, "CNMCA", "Italian Meteorological Service - Rome", ""},
	{82, "EDZW", "ECMWF Operations Centre", ""},
	{85, "METEO-FRANCE", "Météo-France - Toulouse", ""},
	{86, "FMI", "Finnish Meteorological Institute - Helsinki", ""},
	{87, "DNMI", "Norwegian Meteorological Institute - Oslo", ""},
	{88, "SMHI", "Swedish Meteorological and Hydrological Institute", ""},
	{94, "UKMO-EXT", "UK Met Office (alternate identifier)", ""},
	{97, "ESA", "European Space Agency", ""},
	{98, "ECMWF", "European Centre for Medium-Range Weather Forecasts", ""},
	{99, "DEBILT", "KNMI - De Bilt, Netherlands", ""},
	{161, "NCMRWF", "India National Centre for Medium Range Weather Forecasting", ""},
}

// CenterTable is WMO Common Code Table C-1.
var CenterTable = NewSimpleTable(centerEntries, "unknown originating center")
