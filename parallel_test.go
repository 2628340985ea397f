package standstat

import (
	"math/rand"
	"testing"
)

func randomPoints(seed int64, n int, extent float64) (x, y []float64) {
	rng := rand.New(rand.NewSource(seed))
	x = make([]float64, n)
	y = make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = rng.Float64() * extent
		y[i] = rng.Float64() * extent
	}
	return x, y
}

func TestNeighborDistancesParallel_BitIdentical(t *testing.T) {
	x, y := randomPoints(21, 80, 50)
	metric := Toroidal{Xmax: 50, Ymax: 50}

	for _, k := range []int{1, 2, 5} {
		sequential, err := NeighborDistances(x, y, k, metric)
		if err != nil {
			t.Fatalf("k=%d: sequential: %v", k, err)
		}
		for _, workers := range []int{1, 2, 3, 8} {
			parallel, err := NeighborDistancesParallel(x, y, k, metric, workers)
			if err != nil {
				t.Fatalf("k=%d workers=%d: parallel: %v", k, workers, err)
			}
			for i := range sequential {
				if parallel[i] != sequential[i] {
					t.Errorf("k=%d workers=%d: result[%d] = %v, expected %v (bitwise)",
						k, workers, i, parallel[i], sequential[i])
				}
			}
		}
	}
}

func TestNeighborDistancesParallel_MoreWorkersThanPoints(t *testing.T) {
	x := []float64{0, 3, 9}
	y := []float64{0, 4, 0}
	sequential, err := NeighborDistances(x, y, 1, Planar{})
	if err != nil {
		t.Fatalf("sequential: %v", err)
	}
	parallel, err := NeighborDistancesParallel(x, y, 1, Planar{}, 16)
	if err != nil {
		t.Fatalf("parallel: %v", err)
	}
	for i := range sequential {
		if parallel[i] != sequential[i] {
			t.Errorf("result[%d] = %v, expected %v", i, parallel[i], sequential[i])
		}
	}
}

func TestNeighborDistancesParallel_PropagatesValidation(t *testing.T) {
	if _, err := NeighborDistancesParallel([]float64{1}, []float64{1}, 1, Planar{}, 4); err == nil {
		t.Errorf("expected error for single point")
	}
	if _, err := NeighborDistancesParallel([]float64{1, 2}, []float64{1}, 1, Planar{}, 4); err == nil {
		t.Errorf("expected error for mismatched lengths")
	}
}

func TestClarkEvansParallel_MatchesSequential(t *testing.T) {
	x, y := randomPoints(33, 120, 80)
	sequential, err := ClarkEvans(80, 80, x, y)
	if err != nil {
		t.Fatalf("sequential: %v", err)
	}
	for _, workers := range []int{0, 2, 5} {
		parallel, err := ClarkEvansParallel(80, 80, x, y, workers)
		if err != nil {
			t.Fatalf("workers=%d: %v", workers, err)
		}
		if parallel != sequential {
			t.Errorf("workers=%d: %v != %v", workers, parallel, sequential)
		}
	}
}

func TestClarkEvansParallel_SquareLatticeScenario(t *testing.T) {
	x := []float64{0, 10, 0, 10}
	y := []float64{0, 0, 10, 10}
	ce, err := ClarkEvansParallel(20, 20, x, y, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(ce, 2.0, floatTol) {
		t.Errorf("expected 2.0, got %v", ce)
	}
}

func TestNearestTargetDistancesParallel_MatchesSequential(t *testing.T) {
	x1, y1 := randomPoints(44, 70, 100)
	x2, y2 := randomPoints(45, 30, 100)

	sequential, err := NearestTargetDistances(x1, y1, x2, y2)
	if err != nil {
		t.Fatalf("sequential: %v", err)
	}
	for _, workers := range []int{2, 4, 9} {
		parallel, err := NearestTargetDistancesParallel(x1, y1, x2, y2, workers)
		if err != nil {
			t.Fatalf("workers=%d: %v", workers, err)
		}
		for i := range sequential {
			if parallel[i] != sequential[i] {
				t.Errorf("workers=%d: result[%d] = %v, expected %v",
					workers, i, parallel[i], sequential[i])
			}
		}
	}
}

func TestNearestTargetDistancesParallel_NoTargetsSentinel(t *testing.T) {
	x1, y1 := randomPoints(46, 10, 10)
	got, err := NearestTargetDistancesParallel(x1, y1, nil, nil, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, d := range got {
		if d != noTargetDistance {
			t.Errorf("querier %d: expected sentinel, got %v", i, d)
		}
	}
}

func TestResolveWorkers(t *testing.T) {
	if got := resolveWorkers(3); got != 3 {
		t.Errorf("expected 3, got %d", got)
	}
	if got := resolveWorkers(-2); got != 1 {
		t.Errorf("expected 1, got %d", got)
	}
	if got := resolveWorkers(0); got < 1 {
		t.Errorf("expected at least 1 for auto, got %d", got)
	}
}
