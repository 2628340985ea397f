package standstat

import (
	"math/rand"
	"testing"
)

func benchStand(n int, plotSize, maxR float64) (x, y, r []float64) {
	rng := rand.New(rand.NewSource(42))
	x = make([]float64, n)
	y = make([]float64, n)
	r = make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = rng.Float64() * plotSize
		y[i] = rng.Float64() * plotSize
		r[i] = 0.5 + rng.Float64()*maxR
	}
	return x, y, r
}

// --- Clark-Evans ---

func benchClarkEvans(b *testing.B, n, workers int) {
	b.Helper()
	x, y, _ := benchStand(n, 100, 0)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if workers > 1 {
			ClarkEvansParallel(100, 100, x, y, workers)
		} else {
			ClarkEvans(100, 100, x, y)
		}
	}
}

func BenchmarkClarkEvans_500(b *testing.B)             { benchClarkEvans(b, 500, 1) }
func BenchmarkClarkEvans_2000(b *testing.B)            { benchClarkEvans(b, 2000, 1) }
func BenchmarkClarkEvansParallel_2000_4w(b *testing.B) { benchClarkEvans(b, 2000, 4) }

// --- Neighbor engine ---

func benchNeighborDistances(b *testing.B, n, k int) {
	b.Helper()
	x, y, _ := benchStand(n, 100, 0)
	metric := Toroidal{Xmax: 100, Ymax: 100}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		NeighborDistances(x, y, k, metric)
	}
}

func BenchmarkNeighborDistances_500_k1(b *testing.B) { benchNeighborDistances(b, 500, 1) }
func BenchmarkNeighborDistances_500_k5(b *testing.B) { benchNeighborDistances(b, 500, 5) }

// --- Canopy cover variants ---

func benchCover(b *testing.B, algo CoverAlgorithm, n, workers int) {
	b.Helper()
	x, y, r := benchStand(n, 100, 4)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		CanopyCoverWith(x, y, r, 100, 0.5, algo, workers)
	}
}

func BenchmarkCanopyCoverDirect_200(b *testing.B)       { benchCover(b, CoverDirect, 200, 1) }
func BenchmarkCanopyCoverIndexed_200(b *testing.B)      { benchCover(b, CoverIndexed, 200, 1) }
func BenchmarkCanopyCoverDirect_2000(b *testing.B)      { benchCover(b, CoverDirect, 2000, 1) }
func BenchmarkCanopyCoverIndexed_2000(b *testing.B)     { benchCover(b, CoverIndexed, 2000, 1) }
func BenchmarkCanopyCoverParallel_2000_4w(b *testing.B) { benchCover(b, CoverParallel, 2000, 4) }

// --- Crown overlap ---

func benchCrownOverlap(b *testing.B, n int) {
	b.Helper()
	x, y, r := benchStand(n, 100, 4)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		CrownOverlap(x, y, r)
	}
}

func BenchmarkCrownOverlap_200(b *testing.B)  { benchCrownOverlap(b, 200) }
func BenchmarkCrownOverlap_1000(b *testing.B) { benchCrownOverlap(b, 1000) }
