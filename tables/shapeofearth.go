package tables

// WMO Code Table 3.2: Shape of the reference system (Earth) used by a grid
// definition template. Consulted by the decode path when computing grid iterator
// radii, not merely for presentation.

var shapeOfEarthEntries = []*Entry{
	{0, "Sphere6367470", "Earth assumed spherical, radius 6,367,470.0 m", "m"},
	{1, "SphereSpecified", "Earth assumed spherical, radius specified by producer", "m"},
	{2, "IAU1965", "Earth assumed oblate spheroid, IAU 1965 (6378160.0, 1/297.0)", ""},
	{3, "OblateSpecifiedKm", "Earth assumed oblate spheroid, axes specified by producer (km)", "km"},
	{4, "GRS80", "Earth assumed oblate spheroid, IAG-GRS80", ""},
	{5, "WGS84", "Earth assumed represented by WGS84", ""},
	{6, "Sphere6371229", "Earth assumed spherical, radius 6,371,229.0 m", "m"},
	{7, "OblateSpecifiedM", "Earth assumed oblate spheroid, axes specified by producer (m)", "m"},
	{8, "Sphere6371200", "Earth assumed spherical, radius 6,371,200.0 m (historical table 2 equivalent)", "m"},
	{9, "OSGB1936", "Earth assumed oblate spheroid as used by Ordnance Survey of Great Britain 1936", ""},
}

// ShapeOfEarthTable is WMO Code Table 3.2.
var ShapeOfEarthTable = NewSimpleTable(shapeOfEarthEntries, "unknown shape of earth")

// SphericalRadiusMeters returns the spherical Earth radius in meters to use for grid
// projections when the declared shape code is one of the spherical variants, and
// false when the shape is not one of the three fixed spherical radii (code 0, 6 or 8) —
// callers for oblate/specified shapes must read the scale/radius octets themselves.
func SphericalRadiusMeters(code int) (float64, bool) {
	switch code {
	case 0:
		return 6367470.0, true
	case 6:
		return 6371229.0, true
	case 8:
		return 6371200.0, true
	default:
		return 0, false
	}
}
