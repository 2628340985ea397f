package standstat

import (
	"container/heap"
	"fmt"
	"math"
)

// sentinelDistance pads neighbor bookkeeping before any real distance has
// been seen. It exceeds any plausible plot diagonal by several orders of
// magnitude.
const sentinelDistance = 1e10

// distHeap is a max-heap of candidate neighbor distances, used as a bounded
// "k smallest seen so far" structure: push until the heap holds k entries,
// then replace the root whenever a smaller distance arrives. Each offer is
// O(log k).
type distHeap []float64

func (h distHeap) Len() int           { return len(h) }
func (h distHeap) Less(i, j int) bool { return h[i] > h[j] }
func (h distHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *distHeap) Push(x any) { *h = append(*h, x.(float64)) }

func (h *distHeap) Pop() any {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]
	return v
}

// offer keeps the k smallest distances seen so far.
func (h *distHeap) offer(d float64, k int) {
	if h.Len() < k {
		heap.Push(h, d)
	} else if d < (*h)[0] {
		(*h)[0] = d
		heap.Fix(h, 0)
	}
}

// meanAscending drains the heap and averages its contents, summing smallest
// first so that any two code paths producing the same distance multiset
// produce bit-identical means.
func meanAscending(h distHeap) float64 {
	vals := make([]float64, h.Len())
	for i := h.Len() - 1; i >= 0; i-- {
		vals[i] = heap.Pop(&h).(float64)
	}
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

// validateNeighbors checks the shared preconditions of the neighbor engine.
func validateNeighbors(x, y []float64, k int) error {
	if err := validatePoints(x, y); err != nil {
		return err
	}
	if k < 1 {
		return fmt.Errorf("standstat: k must be >= 1, got %d", k)
	}
	if len(x) <= k {
		return fmt.Errorf("standstat: need more than k=%d points for k nearest neighbors, got %d", k, len(x))
	}
	return nil
}

// NeighborDistances returns, for each point, the mean distance to its k
// nearest other points under the given metric. The result has one entry per
// input point. Requires k >= 1 and more than k points.
//
// Distances are computed once per unordered pair and offered to both points'
// bounded heaps, so the pair loop does n(n-1)/2 metric evaluations. For k = 1
// a running-minimum fast path skips the heap entirely.
func NeighborDistances(x, y []float64, k int, metric Metric) ([]float64, error) {
	if err := validateNeighbors(x, y, k); err != nil {
		return nil, err
	}
	if k == 1 {
		return firstNeighborDistances(x, y, metric), nil
	}

	n := len(x)
	heaps := make([]distHeap, n)
	for i := range heaps {
		heaps[i] = make(distHeap, 0, k)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := metric.Distance(x[i], y[i], x[j], y[j])
			heaps[i].offer(d, k)
			heaps[j].offer(d, k)
		}
	}

	out := make([]float64, n)
	for i := range heaps {
		out[i] = meanAscending(heaps[i])
	}
	return out, nil
}

// firstNeighborDistances is the k=1 fast path: a running minimum over reduced
// (squared) distances per point, with a single sqrt at the end.
func firstNeighborDistances(x, y []float64, metric Metric) []float64 {
	n := len(x)
	nearest := make([]float64, n)
	for i := range nearest {
		nearest[i] = sentinelDistance * sentinelDistance
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := metric.ReducedDistance(x[i], y[i], x[j], y[j])
			if d < nearest[i] {
				nearest[i] = d
			}
			if d < nearest[j] {
				nearest[j] = d
			}
		}
	}
	for i := range nearest {
		nearest[i] = math.Sqrt(nearest[i])
	}
	return nearest
}
