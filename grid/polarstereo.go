package grid

import (
	"math"

	"github.com/scorix/grib2/tables"
	"github.com/scorix/grib2/template"
)

// PolarStereographic computes grid coordinates for a template 3.20 polar
// stereographic projection using the USGS GCTP spherical-Earth formulas.
// North/south pole is chosen from the projection center flag's bit 0.
func PolarStereographic(g *template.PolarStereoGrid) []Point {
	nx := int(g.NumberOfGridPointsAlongX)
	ny := int(g.NumberOfGridPointsAlongY)

	earthRadius, ok := tables.SphericalRadiusMeters(int(g.ShapeOfEarth))
	if !ok {
		earthRadius = 6371229.0
	}

	lat1 := float64(g.LatitudeOfFirstGridPoint) / 1e6 * math.Pi / 180
	lon1 := float64(g.LongitudeOfFirstGridPoint) / 1e6 * math.Pi / 180
	loV := float64(g.OrientationOfGrid) / 1e6 * math.Pi / 180
	dx := float64(g.XDirectionIncrement) / 1000.0
	dy := float64(g.YDirectionIncrement) / 1000.0

	isNorth := g.ProjectionCenterFlag&0x80 == 0

	const laD = 60.0 * math.Pi / 180.0 // standard latitude used by WMO polar stereographic grids
	mcs := math.Cos(laD)
	tcs := math.Tan((math.Pi/2.0 - laD) / 2.0)

	var x0, y0 float64
	if isNorth {
		t := math.Tan((math.Pi/2.0 - lat1) / 2.0)
		rho := earthRadius * mcs * t / tcs
		theta := lon1 - loV
		x0 = rho * math.Sin(theta)
		y0 = -rho * math.Cos(theta)
	} else {
		t := math.Tan((math.Pi/2.0 + lat1) / 2.0)
		rho := earthRadius * mcs * t / tcs
		theta := lon1 - loV
		x0 = rho * math.Sin(theta)
		y0 = rho * math.Cos(theta)
	}

	scan := decodeScanningMode(g.ScanningMode)

	points := make([]Point, 0, nx*ny)
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			di, dj := float64(i)*dx, float64(j)*dy
			if !scan.iPositive {
				di = -di
			}
			if !scan.jPositive {
				dj = -dj
			}
			x, y := x0+di, y0+dj
			rho := math.Hypot(x, y)

			var lat, lon float64
			if rho == 0 {
				if isNorth {
					lat = math.Pi / 2
				} else {
					lat = -math.Pi / 2
				}
			} else if isNorth {
				ts := rho * tcs / (earthRadius * mcs)
				lat = math.Pi/2 - 2*math.Atan(ts)
				lon = loV + math.Atan2(x, -y)
			} else {
				ts := rho * tcs / (earthRadius * mcs)
				lat = -math.Pi/2 + 2*math.Atan(ts)
				lon = loV + math.Atan2(x, y)
			}

			points = append(points, Point{
				Lat: lat * 180 / math.Pi,
				Lon: normalizeLon(lon * 180 / math.Pi),
			})
		}
	}
	return points
}
