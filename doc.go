// Package standstat computes spatial point-pattern statistics and canopy
// metrics for tree stands on a bounded rectangular plot.
//
// The package is the numeric core of a stand-layout optimization loop: it
// provides the Clark-Evans aggregation index under toroidal (wrap-around)
// boundary conditions, grid-rasterized canopy cover, exact pairwise crown
// overlap areas, nearest-target distances between two tree groups, and
// squared-deviation energy reducers that fold any metric into an objective.
//
// Basic usage:
//
//	ce, err := standstat.ClarkEvans(100, 100, x, y)
//	cover, err := standstat.CanopyCover(x, y, crownRadius, 100, 0.5)
//	overlap, err := standstat.CrownOverlap(x, y, crownRadius)
//	energy, err := standstat.Energy([]float64{ce}, []float64{ceTarget})
//
// All inputs are flat parallel slices indexed 0..n-1. Every entry point is a
// pure function over its inputs: nothing is cached between calls and no
// operation mutates its arguments.
//
// # Distance metrics
//
// Pattern statistics (ClarkEvans, NeighborDistances) use the toroidal metric,
// which treats opposite plot edges as adjacent. Canopy cover, crown overlap,
// and nearest-target distances treat the plot as bounded and use the planar
// metric. Both are available as [Toroidal] and [Planar].
//
// # Parallel variants
//
// Heavy computations have ...Parallel variants that split work across a fixed
// number of goroutines; pass 0 workers to use runtime.NumCPU(). Parallel
// variants return results identical to their sequential counterparts.
package standstat
