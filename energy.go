package standstat

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Energy returns the sum of squared deviations between values and targets,
// the unweighted fitness contribution of a metric vector. Both slices must
// be the same length.
func Energy(values, targets []float64) (float64, error) {
	if len(targets) != len(values) {
		return 0, fmt.Errorf("standstat: values and targets must be the same length, got %d and %d",
			len(values), len(targets))
	}
	d := floats.Distance(values, targets, 2)
	return d * d, nil
}

// EnergyWeighted returns the weighted sum of squared deviations
// sum(weights[i] * (values[i]-targets[i])^2). All slices must be the same
// length.
func EnergyWeighted(values, targets, weights []float64) (float64, error) {
	if len(targets) != len(values) || len(weights) != len(values) {
		return 0, fmt.Errorf("standstat: values, targets and weights must be the same length, got %d, %d and %d",
			len(values), len(targets), len(weights))
	}
	var energy float64
	for i := range values {
		diff := values[i] - targets[i]
		energy += weights[i] * diff * diff
	}
	return energy, nil
}

// EnergyComponents partitions the weighted squared deviations by component id
// and sums within each group. It returns the distinct ids in ascending order
// and the matching per-component energies, so callers can inspect which
// objective component dominates. All slices must be the same length.
func EnergyComponents(values, targets, weights []float64, componentIDs []int) ([]int, []float64, error) {
	if len(targets) != len(values) || len(weights) != len(values) || len(componentIDs) != len(values) {
		return nil, nil, fmt.Errorf("standstat: values, targets, weights and componentIDs must be the same length, got %d, %d, %d and %d",
			len(values), len(targets), len(weights), len(componentIDs))
	}

	acc := make(map[int]float64)
	for i := range values {
		diff := values[i] - targets[i]
		acc[componentIDs[i]] += weights[i] * diff * diff
	}

	ids := make([]int, 0, len(acc))
	for id := range acc {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	energies := make([]float64, len(ids))
	for i, id := range ids {
		energies[i] = acc[id]
	}
	return ids, energies, nil
}
