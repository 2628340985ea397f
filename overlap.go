package standstat

import (
	"fmt"
	"math"
)

// CrownOverlap returns the total pairwise overlap area between circular crown
// footprints, summing one lens-intersection term per overlapping pair. Areas
// are not clipped to the plot boundary. Requires at least one footprint.
func CrownOverlap(x, y, radius []float64) (float64, error) {
	if err := validateFootprints(x, y, radius); err != nil {
		return 0, err
	}
	if len(x) == 0 {
		return 0, fmt.Errorf("standstat: crown overlap needs at least 1 footprint, got 0")
	}

	var total float64
	for i := 0; i < len(x)-1; i++ {
		for j := i + 1; j < len(x); j++ {
			d := Planar{}.Distance(x[i], y[i], x[j], y[j])
			total += lensArea(d, radius[i], radius[j])
		}
	}
	return total, nil
}

// lensArea returns the intersection area of two circles with radii r1, r2
// and center distance d.
func lensArea(d, r1, r2 float64) float64 {
	if d >= r1+r2 {
		return 0
	}
	if d <= math.Abs(r1-r2) {
		// The smaller circle lies entirely inside the larger. This branch
		// also absorbs d == 0, keeping the divisions below safe.
		r := math.Min(r1, r2)
		return math.Pi * r * r
	}

	r1sq := r1 * r1
	r2sq := r2 * r2
	dsq := d * d
	a1 := r1sq * math.Acos(clampUnit((dsq+r1sq-r2sq)/(2*d*r1)))
	a2 := r2sq * math.Acos(clampUnit((dsq+r2sq-r1sq)/(2*d*r2)))
	// Heron-style term for the kite spanned by the two centers and the two
	// circle intersection points. Clamped at zero against rounding.
	tri := 0.5 * math.Sqrt(math.Max(0, (r1+r2+d)*(r1+r2-d)*(r1-r2+d)*(-r1+r2+d)))
	return a1 + a2 - tri
}

// clampUnit clamps v into [-1, 1], guarding acos arguments against
// floating-point drift just outside its domain.
func clampUnit(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
