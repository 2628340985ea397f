package standstat

import "fmt"

// validatePoints checks that x and y form equal-length parallel coordinate
// arrays.
func validatePoints(x, y []float64) error {
	if len(y) != len(x) {
		return fmt.Errorf("standstat: coordinate arrays must be the same length, got x=%d y=%d", len(x), len(y))
	}
	return nil
}

// validateFootprints checks parallel coordinate/radius arrays and rejects
// negative radii.
func validateFootprints(x, y, radius []float64) error {
	if len(y) != len(x) || len(radius) != len(x) {
		return fmt.Errorf("standstat: footprint arrays must be the same length, got x=%d y=%d radius=%d",
			len(x), len(y), len(radius))
	}
	for i, r := range radius {
		if r < 0 {
			return fmt.Errorf("standstat: radius[%d] = %g, must be >= 0", i, r)
		}
	}
	return nil
}

// validateExtents rejects non-positive plot extents.
func validateExtents(xmax, ymax float64) error {
	if xmax <= 0 || ymax <= 0 {
		return fmt.Errorf("standstat: plot extents must be positive, got xmax=%g ymax=%g", xmax, ymax)
	}
	return nil
}

// validateGrid rejects non-positive discretization parameters.
func validateGrid(plotSize, gridRes float64) error {
	if plotSize <= 0 {
		return fmt.Errorf("standstat: plotSize must be positive, got %g", plotSize)
	}
	if gridRes <= 0 {
		return fmt.Errorf("standstat: gridRes must be positive, got %g", gridRes)
	}
	return nil
}
