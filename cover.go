package standstat

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// minBucketSize is the floor on the bucket-index cell size used by the
// indexed rasterizer. Bucket occupancy then scales with crown radius rather
// than tree count, keeping per-cell candidate lists roughly bounded.
const minBucketSize = 5.0

// CoverAlgorithm selects the canopy cover rasterization strategy.
type CoverAlgorithm string

const (
	CoverAuto     CoverAlgorithm = "auto"
	CoverDirect   CoverAlgorithm = "direct"
	CoverIndexed  CoverAlgorithm = "indexed"
	CoverParallel CoverAlgorithm = "parallel"
)

// gridCells returns the number of coverage-grid cells per axis.
func gridCells(plotSize, gridRes float64) int {
	return int(math.Ceil(plotSize / gridRes))
}

// cellCovered reports whether the grid-cell center (cellX, cellY) lies within
// footprint i. All rasterizer variants share this exact test, which is what
// makes their outputs bit-identical.
func cellCovered(cellX, cellY float64, x, y, radius []float64, i int) bool {
	dx := cellX - x[i]
	dy := cellY - y[i]
	return dx*dx+dy*dy <= radius[i]*radius[i]
}

// CanopyCover returns the fraction of plot grid cells whose center lies
// within at least one crown footprint, on a square plotSize x plotSize plot
// discretized at gridRes. The plot is treated as bounded (planar distance);
// crown parts outside the plot are ignored by construction.
//
// Each footprint only visits the cells of its own clamped bounding box, so
// the cost is proportional to the total crown area in cells. Zero footprints
// yield zero coverage.
func CanopyCover(x, y, radius []float64, plotSize, gridRes float64) (float64, error) {
	if err := validateFootprints(x, y, radius); err != nil {
		return 0, err
	}
	if err := validateGrid(plotSize, gridRes); err != nil {
		return 0, err
	}

	cells := gridCells(plotSize, gridRes)
	grid := make([]bool, cells*cells)

	for i := range x {
		r := radius[i]
		xlo := max(0, int(math.Floor((x[i]-r)/gridRes)))
		xhi := min(cells-1, int(math.Ceil((x[i]+r)/gridRes)))
		ylo := max(0, int(math.Floor((y[i]-r)/gridRes)))
		yhi := min(cells-1, int(math.Ceil((y[i]+r)/gridRes)))

		for xi := xlo; xi <= xhi; xi++ {
			cellX := (float64(xi) + 0.5) * gridRes
			for yi := ylo; yi <= yhi; yi++ {
				cellY := (float64(yi) + 0.5) * gridRes
				if cellCovered(cellX, cellY, x, y, radius, i) {
					grid[yi*cells+xi] = true
				}
			}
		}
	}

	covered := 0
	for _, c := range grid {
		if c {
			covered++
		}
	}
	return float64(covered) / float64(cells*cells), nil
}

// CanopyCoverIndexed computes the same fraction as [CanopyCover] but scans
// per grid cell, consulting a bucket index to test only nearby footprints and
// stopping at the first one that covers the cell. Faster for large stands,
// where most footprints are far from most cells.
func CanopyCoverIndexed(x, y, radius []float64, plotSize, gridRes float64) (float64, error) {
	if err := validateFootprints(x, y, radius); err != nil {
		return 0, err
	}
	if err := validateGrid(plotSize, gridRes); err != nil {
		return 0, err
	}

	cells := gridCells(plotSize, gridRes)
	if len(x) == 0 {
		return 0, nil
	}

	maxRadius := floats.Max(radius)
	index := NewBucketGrid(plotSize, math.Max(2*maxRadius, minBucketSize))
	for i := range x {
		index.Insert(i, x[i], y[i])
	}

	covered := 0
	var nearby []int
	for xi := 0; xi < cells; xi++ {
		cellX := (float64(xi) + 0.5) * gridRes
		for yi := 0; yi < cells; yi++ {
			cellY := (float64(yi) + 0.5) * gridRes
			nearby = index.AppendNearby(nearby[:0], cellX, cellY, maxRadius)
			for _, id := range nearby {
				if cellCovered(cellX, cellY, x, y, radius, id) {
					covered++
					break
				}
			}
		}
	}
	return float64(covered) / float64(cells*cells), nil
}

// CanopyCoverWith dispatches to one of the rasterizer variants. CoverAuto
// (or the empty string) picks by scale: parallel for large grids, indexed for
// large stands, direct otherwise. workers is only used by the parallel
// variant; 0 means runtime.NumCPU().
func CanopyCoverWith(x, y, radius []float64, plotSize, gridRes float64, algo CoverAlgorithm, workers int) (float64, error) {
	if algo == CoverAuto || algo == "" {
		cells := gridCells(plotSize, gridRes)
		switch {
		case cells*cells >= 1<<18 && workers != 1:
			algo = CoverParallel
		case len(x) >= 256:
			algo = CoverIndexed
		default:
			algo = CoverDirect
		}
	}

	switch algo {
	case CoverDirect:
		return CanopyCover(x, y, radius, plotSize, gridRes)
	case CoverIndexed:
		return CanopyCoverIndexed(x, y, radius, plotSize, gridRes)
	case CoverParallel:
		return CanopyCoverParallel(x, y, radius, plotSize, gridRes, workers)
	default:
		return 0, fmt.Errorf("standstat: invalid cover algorithm %q", algo)
	}
}
