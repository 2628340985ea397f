package standstat

import (
	"math"
	"runtime"
	"sync"
)

// resolveWorkers maps the workers argument onto an effective goroutine count:
// 0 means runtime.NumCPU(), negative values are treated as 1.
func resolveWorkers(workers int) int {
	if workers == 0 {
		return runtime.NumCPU()
	}
	if workers < 1 {
		return 1
	}
	return workers
}

// NeighborDistancesParallel computes the same per-point mean k-nearest
// distances as [NeighborDistances] using multiple goroutines. Each worker
// owns a contiguous range of points and scans the full point set for each
// owned point, so no two workers ever write the same neighbor bookkeeping.
// Falls back to the sequential path if the effective worker count is 1.
//
// The result is bit-identical to NeighborDistances: both paths collect the
// same k smallest distances per point and sum them in ascending order.
func NeighborDistancesParallel(x, y []float64, k int, metric Metric, workers int) ([]float64, error) {
	if err := validateNeighbors(x, y, k); err != nil {
		return nil, err
	}
	workers = resolveWorkers(workers)
	n := len(x)
	if workers <= 1 || n <= 1 {
		return NeighborDistances(x, y, k, metric)
	}

	out := make([]float64, n)

	var wg sync.WaitGroup
	rowsPerWorker := (n + workers - 1) / workers

	for w := 0; w < workers; w++ {
		start := w * rowsPerWorker
		end := min(start+rowsPerWorker, n)
		if start >= n {
			break
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			if k == 1 {
				for i := start; i < end; i++ {
					out[i] = parallelFirstNeighbor(x, y, metric, i)
				}
				return
			}
			h := make(distHeap, 0, k)
			for i := start; i < end; i++ {
				h = h[:0]
				for j := 0; j < n; j++ {
					if j == i {
						continue
					}
					h.offer(metric.Distance(x[i], y[i], x[j], y[j]), k)
				}
				out[i] = meanAscending(h)
			}
		}(start, end)
	}

	wg.Wait()
	return out, nil
}

// parallelFirstNeighbor is the k=1 fast path for a single owned point:
// a running minimum over reduced distances against every other point.
func parallelFirstNeighbor(x, y []float64, metric Metric, i int) float64 {
	minSq := sentinelDistance * sentinelDistance
	for j := range x {
		if j == i {
			continue
		}
		if d := metric.ReducedDistance(x[i], y[i], x[j], y[j]); d < minSq {
			minSq = d
		}
	}
	return math.Sqrt(minSq)
}

// ClarkEvansParallel computes the same index as [ClarkEvans] with the
// first-nearest-neighbor search split across workers.
func ClarkEvansParallel(xmax, ymax float64, x, y []float64, workers int) (float64, error) {
	nearest, err := clarkEvansNearest(xmax, ymax, x, y, resolveWorkers(workers))
	if err != nil {
		return 0, err
	}
	return clarkEvansRatio(xmax, ymax, nearest), nil
}

// CanopyCoverParallel computes the same fraction as [CanopyCover] with the
// coverage grid cells partitioned across workers. Each worker owns a
// contiguous cell range and counts its own covered cells; the per-worker
// counts are summed after all workers join, so no shared location is ever
// written by two goroutines.
func CanopyCoverParallel(x, y, radius []float64, plotSize, gridRes float64, workers int) (float64, error) {
	if err := validateFootprints(x, y, radius); err != nil {
		return 0, err
	}
	if err := validateGrid(plotSize, gridRes); err != nil {
		return 0, err
	}
	workers = resolveWorkers(workers)
	if workers <= 1 {
		return CanopyCover(x, y, radius, plotSize, gridRes)
	}

	cells := gridCells(plotSize, gridRes)
	total := cells * cells
	counts := make([]int, workers)

	var wg sync.WaitGroup
	cellsPerWorker := (total + workers - 1) / workers

	for w := 0; w < workers; w++ {
		start := w * cellsPerWorker
		end := min(start+cellsPerWorker, total)
		if start >= total {
			break
		}

		wg.Add(1)
		go func(w, start, end int) {
			defer wg.Done()
			covered := 0
			for c := start; c < end; c++ {
				xi := c % cells
				yi := c / cells
				cellX := (float64(xi) + 0.5) * gridRes
				cellY := (float64(yi) + 0.5) * gridRes
				for i := range x {
					if cellCovered(cellX, cellY, x, y, radius, i) {
						covered++
						break
					}
				}
			}
			counts[w] = covered
		}(w, start, end)
	}

	wg.Wait()
	covered := 0
	for _, c := range counts {
		covered += c
	}
	return float64(covered) / float64(total), nil
}

// NearestTargetDistancesParallel computes the same distances as
// [NearestTargetDistances] with the querier points partitioned across
// workers.
func NearestTargetDistancesParallel(x1, y1, x2, y2 []float64, workers int) ([]float64, error) {
	workers = resolveWorkers(workers)
	if workers <= 1 || len(x1) <= 1 || len(x2) == 0 {
		return NearestTargetDistances(x1, y1, x2, y2)
	}
	if err := validatePoints(x1, y1); err != nil {
		return nil, err
	}
	if err := validatePoints(x2, y2); err != nil {
		return nil, err
	}

	n := len(x1)
	out := make([]float64, n)

	var wg sync.WaitGroup
	rowsPerWorker := (n + workers - 1) / workers

	for w := 0; w < workers; w++ {
		start := w * rowsPerWorker
		end := min(start+rowsPerWorker, n)
		if start >= n {
			break
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				out[i] = nearestTargetDistance(x1[i], y1[i], x2, y2)
			}
		}(start, end)
	}

	wg.Wait()
	return out, nil
}
