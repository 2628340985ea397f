package standstat

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// ClarkEvans computes the Clark-Evans aggregation index for a point pattern
// on a toroidal plot of the given extents: the observed mean first-nearest-
// neighbor distance divided by the distance expected under a homogeneous
// Poisson process of the same intensity, 0.5*sqrt(area/n).
//
// Values near 1 indicate complete spatial randomness, values below 1
// clustering, values above 1 regularity. Requires at least two points and
// positive extents.
func ClarkEvans(xmax, ymax float64, x, y []float64) (float64, error) {
	nearest, err := clarkEvansNearest(xmax, ymax, x, y, 1)
	if err != nil {
		return 0, err
	}
	return clarkEvansRatio(xmax, ymax, nearest), nil
}

// clarkEvansNearest validates the Clark-Evans inputs and returns the
// first-nearest-neighbor distances, computed with the given worker count
// (<= 1 means sequential).
func clarkEvansNearest(xmax, ymax float64, x, y []float64, workers int) ([]float64, error) {
	if err := validateExtents(xmax, ymax); err != nil {
		return nil, err
	}
	if err := validatePoints(x, y); err != nil {
		return nil, err
	}
	if len(x) < 2 {
		return nil, fmt.Errorf("standstat: Clark-Evans index needs at least 2 points, got %d", len(x))
	}
	metric := Toroidal{Xmax: xmax, Ymax: ymax}
	if workers > 1 {
		return NeighborDistancesParallel(x, y, 1, metric, workers)
	}
	return NeighborDistances(x, y, 1, metric)
}

func clarkEvansRatio(xmax, ymax float64, nearest []float64) float64 {
	observed := stat.Mean(nearest, nil)
	expected := 0.5 * math.Sqrt(xmax*ymax/float64(len(nearest)))
	return observed / expected
}
