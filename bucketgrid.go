package standstat

import "math"

// BucketGrid is a uniform bucket index over a square plot: each bucket holds
// the ids of the points inserted into its cell. It accelerates "what lies
// within radius r of (x, y)" queries by scanning only the bucket rings that
// can contain such points. The grid is built once per top-level call and
// read-only afterwards.
//
// Coordinates outside [0, plotSize) are clamped into the edge buckets on
// insert, so stray points never index out of bounds.
type BucketGrid struct {
	cellSize float64
	cells    int // buckets per axis
	buckets  [][]int
}

// NewBucketGrid creates an empty bucket index covering a plotSize x plotSize
// plot with square buckets of the given cell size.
func NewBucketGrid(plotSize, cellSize float64) *BucketGrid {
	cells := int(math.Ceil(plotSize / cellSize))
	if cells < 1 {
		cells = 1
	}
	return &BucketGrid{
		cellSize: cellSize,
		cells:    cells,
		buckets:  make([][]int, cells*cells),
	}
}

func (g *BucketGrid) bucketAt(x, y float64) int {
	ix := min(g.cells-1, int(math.Floor(x/g.cellSize)))
	iy := min(g.cells-1, int(math.Floor(y/g.cellSize)))
	ix = max(ix, 0)
	iy = max(iy, 0)
	return iy*g.cells + ix
}

// Insert adds id at coordinate (x, y).
func (g *BucketGrid) Insert(id int, x, y float64) {
	b := g.bucketAt(x, y)
	g.buckets[b] = append(g.buckets[b], id)
}

// Nearby returns the ids of all inserted points that could lie within radius
// of (x, y). The result is a superset of the true in-radius set: callers
// still apply the exact distance test.
func (g *BucketGrid) Nearby(x, y, radius float64) []int {
	return g.AppendNearby(nil, x, y, radius)
}

// AppendNearby is Nearby appending into dst, letting callers reuse a buffer
// across queries.
func (g *BucketGrid) AppendNearby(dst []int, x, y, radius float64) []int {
	ring := int(math.Ceil(radius / g.cellSize))
	cx := int(math.Floor(x / g.cellSize))
	cy := int(math.Floor(y / g.cellSize))

	for dy := -ring; dy <= ring; dy++ {
		iy := cy + dy
		if iy < 0 || iy >= g.cells {
			continue
		}
		for dx := -ring; dx <= ring; dx++ {
			ix := cx + dx
			if ix < 0 || ix >= g.cells {
				continue
			}
			dst = append(dst, g.buckets[iy*g.cells+ix]...)
		}
	}
	return dst
}
