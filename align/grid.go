package align

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/dijkstra"
	"github.com/katalvlaran/lvlath/matrix"
)

const (
	// weightScale converts float costs into the int64 weight domain of the
	// shortest-path search; path costs are resolved at 1/weightScale.
	weightScale = 1e6

	// maxScaledCost guards the int64 conversion: any cell whose scaled
	// cost would leave the representable weight range is treated as
	// impassable, exactly like +Inf.
	maxScaledCost = float64(math.MaxInt64) / (4 * weightScale)

	// gridSource and gridTarget are the virtual endpoints of the warp grid.
	gridSource = "src"
	gridTarget = "dst"
)

// warpGrid projects a local-cost surface onto a directed weighted graph
// whose shortest src→dst path is the optimal warping path.
//
// One vertex per admissible cell (i,j), named "i,j", plus the two virtual
// endpoints. Edges encode the step moves of the warping recurrence:
// ↓ and → advance one sequence and charge the slope penalty, ↘ advances
// both and charges none. Every edge carries the scaled cost of its
// TARGET cell, so a path accumulates exactly the cells it visits; the
// entry cell is counted once by the edge out of src. Cells outside the
// Sakoe–Chiba band, or with +Inf cost, are simply not built.
//
// Closed alignments admit only (0,0) as start and (n−1,m−1) as end;
// openBegin admits every (0,j), openEnd admits every (n−1,j), leaving a
// head or tail of the second sequence unmatched.
//
// Complexity: O(n·m·log(n·m)) time, O(n·m) memory.
type warpGrid struct {
	cost      [][]float64 // local cost surface, cost[i][j] ≥ 0 or +Inf
	penalty   float64     // slope penalty charged on non-diagonal steps
	window    int         // Sakoe–Chiba radius; windowUnset = unconstrained
	openBegin bool        // admit any (0,j) as a start cell
	openEnd   bool        // admit any (n-1,j) as an end cell
}

// inBand reports whether cell (i,j) lies inside the warp window.
func (wg warpGrid) inBand(i, j int) bool {
	if wg.window < 0 {
		return true
	}
	d := i - j
	if d < 0 {
		d = -d
	}

	return d <= wg.window
}

// passable returns the scaled weight of cell (i,j) and whether the cell
// participates in the grid at all.
func (wg warpGrid) passable(i, j int) (int64, bool) {
	if !wg.inBand(i, j) {
		return 0, false
	}

	return scaledCost(wg.cost[i][j])
}

// scaledCost converts a float cell cost into an engine weight. The
// second return is false when the cell is impassable (+Inf, or a cost
// too large for the weight domain).
func scaledCost(c float64) (int64, bool) {
	if math.IsInf(c, 1) || c > maxScaledCost {
		return 0, false
	}

	return int64(math.Round(c * weightScale)), true
}

// cellID formats the unique vertex identifier for cell (i,j).
func cellID(i, j int) string {
	return fmt.Sprintf("%d,%d", i, j)
}

// parseCellID recovers (i,j) from a vertex identifier produced by cellID.
func parseCellID(id string) (int, int, error) {
	r, c, ok := strings.Cut(id, ",")
	if !ok {
		return 0, 0, errors.Newf("align: malformed grid vertex %q", id)
	}
	i, err := strconv.Atoi(r)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "align: malformed grid vertex %q", id)
	}
	j, err := strconv.Atoi(c)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "align: malformed grid vertex %q", id)
	}

	return i, j, nil
}

// solve builds the grid graph and delegates the search to Dijkstra.
// It returns the alignment cost and the warping path in step order.
// When no admissible path exists (window fully closed, or an impassable
// wall) the cost is +Inf and the path is empty.
func (wg warpGrid) solve() (float64, [][2]int, error) {
	n := len(wg.cost)
	m := len(wg.cost[0])
	penaltyW := int64(math.Round(wg.penalty * weightScale))

	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())

	// Stage 1: vertices for the virtual endpoints and every admissible cell.
	if err := g.AddVertex(gridSource); err != nil {
		return 0, nil, errors.Wrap(err, "align: warp grid")
	}
	if err := g.AddVertex(gridTarget); err != nil {
		return 0, nil, errors.Wrap(err, "align: warp grid")
	}
	var (
		i, j int   // cell coordinates
		w    int64 // scaled cell weight
		ok   bool  // cell admissibility
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < m; j++ {
			if _, ok = wg.passable(i, j); !ok {
				continue
			}
			if err = g.AddVertex(cellID(i, j)); err != nil {
				return 0, nil, errors.Wrap(err, "align: warp grid")
			}
		}
	}

	// Stage 2: step edges out of each admissible cell. The weight carries
	// the target cell cost, plus the slope penalty off the diagonal.
	moves := [3]struct {
		di, dj  int
		penalty int64
	}{
		{1, 0, penaltyW},  // ↓ advance first sequence only
		{0, 1, penaltyW},  // → advance second sequence only
		{1, 1, 0},         // ↘ advance both
	}
	for i = 0; i < n; i++ {
		for j = 0; j < m; j++ {
			if _, ok = wg.passable(i, j); !ok {
				continue
			}
			for _, mv := range moves {
				ti, tj := i+mv.di, j+mv.dj
				if ti >= n || tj >= m {
					continue
				}
				if w, ok = wg.passable(ti, tj); !ok {
					continue
				}
				if _, err = g.AddEdge(cellID(i, j), cellID(ti, tj), w+mv.penalty); err != nil {
					return 0, nil, errors.Wrap(err, "align: warp grid")
				}
			}
		}
	}

	// Stage 3: endpoint edges. Start edges carry the entry cell cost so
	// it is counted exactly once; end edges are free.
	startCols := 1
	if wg.openBegin {
		startCols = m
	}
	for j = 0; j < startCols; j++ {
		if w, ok = wg.passable(0, j); !ok {
			continue
		}
		if _, err = g.AddEdge(gridSource, cellID(0, j), w); err != nil {
			return 0, nil, errors.Wrap(err, "align: warp grid")
		}
	}
	endFrom := m - 1
	if wg.openEnd {
		endFrom = 0
	}
	for j = endFrom; j < m; j++ {
		if _, ok = wg.passable(n-1, j); !ok {
			continue
		}
		if _, err = g.AddEdge(cellID(n-1, j), gridTarget, 0); err != nil {
			return 0, nil, errors.Wrap(err, "align: warp grid")
		}
	}

	// Stage 4: delegate the search.
	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(gridSource), dijkstra.WithReturnPath())
	if err != nil {
		return 0, nil, errors.Wrap(err, "align: warp grid search")
	}
	total, reached := dist[gridTarget]
	if !reached || total == math.MaxInt64 {
		return math.Inf(1), nil, nil
	}

	// Stage 5: read the path back, dst→src, and reverse it into step order.
	pairs := make([][2]int, 0, n+m)
	for v := prev[gridTarget]; v != "" && v != gridSource; v = prev[v] {
		if i, j, err = parseCellID(v); err != nil {
			return 0, nil, err
		}
		pairs = append(pairs, [2]int{i, j})
	}
	for l, r := 0, len(pairs)-1; l < r; l, r = l+1, r-1 {
		pairs[l], pairs[r] = pairs[r], pairs[l]
	}

	return float64(total) / weightScale, pairs, nil
}

// denseRows materializes a Dense cost matrix into the row slices the
// warp grid consumes. The matrix is assumed validated.
func denseRows(d *matrix.Dense) ([][]float64, error) {
	n, m := d.Rows(), d.Cols()
	rows := make([][]float64, n)
	var (
		i, j int
		c    float64
		err  error
	)
	for i = 0; i < n; i++ {
		row := make([]float64, m)
		for j = 0; j < m; j++ {
			if c, err = d.At(i, j); err != nil {
				return nil, errors.Wrap(ErrBadCostMatrix, err.Error())
			}
			row[j] = c
		}
		rows[i] = row
	}

	return rows, nil
}
