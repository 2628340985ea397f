package standstat

import "math"

// Metric computes the distance between two plot coordinates. ReducedDistance
// returns squared distance (skips the sqrt) for comparison-only call sites
// such as coverage tests and running minima.
type Metric interface {
	Distance(x1, y1, x2, y2 float64) float64
	ReducedDistance(x1, y1, x2, y2 float64) float64
}

// Planar is the ordinary Euclidean metric on a bounded plot. It is used by
// the canopy cover and crown overlap computations, where the plot edge is a
// hard boundary.
type Planar struct{}

func (Planar) Distance(x1, y1, x2, y2 float64) float64 {
	return math.Sqrt(Planar{}.ReducedDistance(x1, y1, x2, y2))
}

func (Planar) ReducedDistance(x1, y1, x2, y2 float64) float64 {
	dx := x1 - x2
	dy := y1 - y2
	return dx*dx + dy*dy
}

// Toroidal is the Euclidean metric on a plot that wraps at its edges,
// modeling an infinite tiled plane: each axis separation is the minimum of
// the direct and the wrapped separation. Pattern statistics use this metric
// to avoid edge effects. Both extents must be positive.
type Toroidal struct {
	Xmax, Ymax float64
}

func (t Toroidal) Distance(x1, y1, x2, y2 float64) float64 {
	return math.Sqrt(t.ReducedDistance(x1, y1, x2, y2))
}

func (t Toroidal) ReducedDistance(x1, y1, x2, y2 float64) float64 {
	dx := math.Abs(x1 - x2)
	dy := math.Abs(y1 - y2)
	dx = math.Min(dx, t.Xmax-dx)
	dy = math.Min(dy, t.Ymax-dy)
	return dx*dx + dy*dy
}
