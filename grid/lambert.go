package grid

import (
	"math"

	"github.com/scorix/grib2/tables"
	"github.com/scorix/grib2/template"
)

// lambertCone holds the derived quantities that LambertConformal uses both to
// project the first grid point and to map each grid (x, y) back to lat/lon,
// so each grid point doesn't recompute n and F from scratch.
type lambertCone struct {
	n, bigF     float64
	earthRadius float64
	lov         float64
}

func newLambertCone(latin1, latin2, lov, earthRadius float64) lambertCone {
	var n float64
	if latin1 == latin2 {
		n = math.Sin(toRad(latin1))
	} else {
		phi1 := toRad(latin1)
		phi2 := toRad(latin2)
		n = math.Log(math.Cos(phi1)/math.Cos(phi2)) /
			math.Log(math.Tan(math.Pi/4+phi2/2)/math.Tan(math.Pi/4+phi1/2))
	}
	phi1 := toRad(latin1)
	bigF := math.Cos(phi1) * math.Pow(math.Tan(math.Pi/4+phi1/2), n) / n
	return lambertCone{n: n, bigF: bigF, earthRadius: earthRadius, lov: lov}
}

func (c lambertCone) rho(latDeg float64) float64 {
	phi := toRad(latDeg)
	return c.earthRadius * c.bigF / math.Pow(math.Tan(math.Pi/4+phi/2), c.n)
}

func toRad(d float64) float64 { return d * math.Pi / 180 }
func toDeg(r float64) float64 { return r * 180 / math.Pi }

func normLonSigned(lon float64) float64 {
	for lon > 180 {
		lon -= 360
	}
	for lon < -180 {
		lon += 360
	}
	return lon
}

// LambertConformal computes grid coordinates for a template 3.30 Lambert
// conformal conic projection.
func LambertConformal(g *template.LambertGrid) []Point {
	nx := int(g.NumberOfGridPointsAlongX)
	ny := int(g.NumberOfGridPointsAlongY)

	earthRadius, ok := tables.SphericalRadiusMeters(int(g.ShapeOfEarth))
	if !ok {
		earthRadius = 6371229.0
	}

	la1 := float64(g.LatitudeOfFirstGridPoint) / 1e6
	lo1 := normLonSigned(float64(g.LongitudeOfFirstGridPoint) / 1e6)
	lov := normLonSigned(float64(g.OrientationOfGrid) / 1e6)
	latin1 := float64(g.LatitudeOfIntersection1) / 1e6
	latin2 := float64(g.LatitudeOfIntersection2) / 1e6
	dx := float64(g.XDirectionIncrement) / 1000.0
	dy := float64(g.YDirectionIncrement) / 1000.0

	cone := newLambertCone(latin1, latin2, lov, earthRadius)

	rho0 := cone.rho(la1)
	theta0 := cone.n * toRad(lo1-lov)
	x0 := rho0 * math.Sin(theta0)
	y0 := -rho0 * math.Cos(theta0)

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
			x := x0 + di
			y := y0 + dj

			rho := math.Hypot(x, y)
			var lat, lon float64
			if rho == 0 {
				lat, lon = 90, lov
			} else {
				theta := math.Atan2(x, -y)
				phi := 2*math.Atan(math.Pow(earthRadius*cone.bigF/rho, 1/cone.n)) - math.Pi/2
				lat = toDeg(phi)
				lon = lov + toDeg(theta)/cone.n
			}

			points = append(points, Point{Lat: lat, Lon: normalizeLon(lon)})
		}
	}
	return points
}
