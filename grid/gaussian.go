package grid

import (
	"fmt"
	"math"

	"github.com/scorix/grib2/template"
)

// gaussianLatitudes computes the 2n latitudes (degrees, north to south) of a
// full Gaussian grid with n parallels between pole and equator per
// hemisphere (2n latitudes total). Each latitude is arcsin of a zero of the
// Legendre polynomial P_2n, found by Newton's method starting from the
// classical asymptotic estimate for Gauss-Legendre nodes.
func gaussianLatitudes(n int) []float64 {
	total := 2 * n
	roots := make([]float64, total)

	for i := 0; i < n; i++ {
		// Initial guess for the i-th root (0-indexed from the north) of P_total.
		theta := math.Pi * (float64(i) + 0.75) / (float64(total) + 0.5)
		x := math.Cos(theta)

		for iter := 0; iter < 100; iter++ {
			p0, p1 := 1.0, x
			for k := 2; k <= total; k++ {
				pk := ((2*float64(k)-1)*x*p1 - (float64(k)-1)*p0) / float64(k)
				p0 = p1
				p1 = pk
			}
			// derivative of P_total at x via the standard recurrence relation
			deriv := float64(total) * (x*p1 - p0) / (x*x - 1)
			dx := p1 / deriv
			x -= dx
			if math.Abs(dx) < 1e-14 {
				break
			}
		}

		roots[i] = x
		roots[total-1-i] = -x
	}

	lats := make([]float64, total)
	for i, x := range roots {
		lats[i] = math.Asin(x) * 180 / math.Pi
	}
	return lats
}

// Gaussian computes grid coordinates for a template 3.40 Gaussian
// latitude/longitude grid. Longitudes are evenly spaced (NumberOfGridPointsAlongX
// points per latitude row); latitudes are the Gaussian quadrature nodes for
// NumberOfParallels points between pole and equator.
func Gaussian(g *template.GaussianGrid) ([]Point, error) {
	nx := int(g.NumberOfGridPointsAlongX)
	n := int(g.NumberOfParallels)
	if n <= 0 {
		return nil, fmt.Errorf("grid: gaussian template requires NumberOfParallels > 0")
	}

	lats := gaussianLatitudes(n)
	lon1 := float64(g.LongitudeOfFirstGridPoint) / 1e6
	dlon := 360.0 / float64(nx)

	scan := decodeScanningMode(g.ScanningMode)

	points := make([]Point, 0, nx*len(lats))
	for _, lat := range lats {
		rowLat := lat
		if scan.jPositive {
			rowLat = -rowLat
		}
		for i := 0; i < nx; i++ {
			lon := lon1 + float64(i)*dlon
			if !scan.iPositive {
				lon = lon1 - float64(i)*dlon
			}
			points = append(points, Point{Lat: rowLat, Lon: normalizeLon(lon)})
		}
	}
	return points, nil
}
