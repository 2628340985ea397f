package standstat

import (
	"fmt"
	"math"
)

// AllometricParams holds the per-species coefficients (A, B) of one
// allometric equation.
type AllometricParams struct {
	A, B float64
}

// Allometric floors and clamps, in meters. They keep the fitted equations
// from producing physically impossible values for extreme diameters.
const (
	minCrownRadius = 0.3
	breastHeight   = 1.3
	minCrownBase   = 0.5
	minDBHForRatio = 5.0
	minCrownRatio  = 0.4
	maxCrownRatio  = 0.95
)

// validateAllometry checks the shared preconditions of the allometric
// batch equations.
func validateAllometry(dbh []float64, species []int, params []AllometricParams) error {
	if len(species) != len(dbh) {
		return fmt.Errorf("standstat: dbh and species must be the same length, got %d and %d",
			len(dbh), len(species))
	}
	for i, sp := range species {
		if sp < 0 || sp >= len(params) {
			return fmt.Errorf("standstat: species[%d] = %d out of range for %d parameter sets",
				i, sp, len(params))
		}
	}
	return nil
}

// CrownRadius returns per-tree crown radii from the linear allometry
// a + b*dbh for each tree's species, floored at 0.3 m.
func CrownRadius(dbh []float64, species []int, params []AllometricParams) ([]float64, error) {
	if err := validateAllometry(dbh, species, params); err != nil {
		return nil, err
	}
	radius := make([]float64, len(dbh))
	for i := range dbh {
		p := params[species[i]]
		radius[i] = math.Max(minCrownRadius, p.A+p.B*dbh[i])
	}
	return radius, nil
}

// TreeHeight returns per-tree heights from the asymptotic allometry
// 1.3 + a*(1 - exp(-b*dbh)) for each tree's species.
func TreeHeight(dbh []float64, species []int, params []AllometricParams) ([]float64, error) {
	if err := validateAllometry(dbh, species, params); err != nil {
		return nil, err
	}
	height := make([]float64, len(dbh))
	for i := range dbh {
		p := params[species[i]]
		height[i] = breastHeight + p.A*(1.0-math.Exp(-p.B*dbh[i]))
	}
	return height, nil
}

// CrownBaseHeight returns per-tree crown base heights. The live-crown ratio
// a - b*ln(dbh) is evaluated at dbh floored to 5 cm and clamped into
// [0.4, 0.95]; the base is height*(1-ratio), never below 0.5 m.
func CrownBaseHeight(dbh, height []float64, species []int, params []AllometricParams) ([]float64, error) {
	if err := validateAllometry(dbh, species, params); err != nil {
		return nil, err
	}
	if len(height) != len(dbh) {
		return nil, fmt.Errorf("standstat: dbh and height must be the same length, got %d and %d",
			len(dbh), len(height))
	}
	base := make([]float64, len(dbh))
	for i := range dbh {
		p := params[species[i]]
		ratio := p.A - p.B*math.Log(math.Max(minDBHForRatio, dbh[i]))
		ratio = math.Min(maxCrownRatio, math.Max(minCrownRatio, ratio))
		base[i] = math.Max(minCrownBase, height[i]*(1.0-ratio))
	}
	return base, nil
}
