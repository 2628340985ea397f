package standstat

import "math"

// noTargetDistance fills every result slot when the target group is empty,
// so callers folding the distances into an energy term see "far away" rather
// than an error or NaN.
const noTargetDistance = 1000.0

// NearestTargetDistances returns, for each querier point (x1, y1), the planar
// distance to its nearest target point (x2, y2). The two groups are
// independent; a point appearing in both groups will find itself at distance
// zero. An empty target group yields noTargetDistance for every querier; an
// empty querier group yields an empty result.
func NearestTargetDistances(x1, y1, x2, y2 []float64) ([]float64, error) {
	if err := validatePoints(x1, y1); err != nil {
		return nil, err
	}
	if err := validatePoints(x2, y2); err != nil {
		return nil, err
	}

	out := make([]float64, len(x1))
	if len(x2) == 0 {
		for i := range out {
			out[i] = noTargetDistance
		}
		return out, nil
	}

	for i := range x1 {
		out[i] = nearestTargetDistance(x1[i], y1[i], x2, y2)
	}
	return out, nil
}

// nearestTargetDistance is a running minimum over reduced (squared) distances
// with a single sqrt at the end.
func nearestTargetDistance(qx, qy float64, x2, y2 []float64) float64 {
	minSq := math.Inf(1)
	for j := range x2 {
		if d := (Planar{}).ReducedDistance(qx, qy, x2[j], y2[j]); d < minSq {
			minSq = d
		}
	}
	return math.Sqrt(minSq)
}
