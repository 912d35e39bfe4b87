package tanner

import (
	"fmt"
	"math"

	"github.com/qcldpc-go/qcldpc/matrix"
)

// checkPrefix and varPrefix distinguish the two vertex classes of the
// bipartite Tanner graph in a single graph's flat ID namespace.
const (
	checkPrefix = "c"
	varPrefix   = "v"
)

// CheckVertex returns the vertex ID for check node row.
func CheckVertex(row int) string { return fmt.Sprintf("%s%d", checkPrefix, row) }

// VarVertex returns the vertex ID for variable node col.
func VarVertex(col int) string { return fmt.Sprintf("%s%d", varPrefix, col) }

// Build constructs the bipartite Tanner graph of h: one vertex per check
// node (row), one per variable node (column), and an undirected edge for
// every 1-entry of h. The graph is unweighted and carries no loops or
// multi-edges, since H has at most one 1 per (row, col) pair.
func Build(h *matrix.ParityMatrix) (*graph, error) {
	if h == nil {
		return nil, ErrNilMatrix
	}

	g := newGraph()
	for r := 0; r < h.Rows(); r++ {
		if err := g.addVertex(CheckVertex(r)); err != nil {
			return nil, fmt.Errorf("tanner: add check vertex %d: %w", r, err)
		}
	}
	for c := 0; c < h.Cols(); c++ {
		if err := g.addVertex(VarVertex(c)); err != nil {
			return nil, fmt.Errorf("tanner: add variable vertex %d: %w", c, err)
		}
	}

	var buildErr error
	h.VisitNonZero(func(row, col int) {
		if buildErr != nil {
			return
		}
		if err := g.addEdge(CheckVertex(row), VarVertex(col)); err != nil {
			buildErr = fmt.Errorf("tanner: add edge c%d-v%d: %w", row, col, err)
		}
	})
	if buildErr != nil {
		return nil, buildErr
	}

	return g, nil
}

// Girth returns the length of the shortest cycle in g (the standard
// Tanner-graph quality metric: a short girth means nearby check nodes
// overlap on variable nodes, which weakens belief propagation). It
// returns ErrNoCycle if g contains no cycle at all.
//
// Method: for every edge (u, v), run a breadth-first search from u with
// that specific edge excluded in both directions and take 1 + the
// resulting distance to v, if v is still reachable; the cycle length is
// the shortest path between its endpoints that does not use the edge
// itself, closed by that edge. The girth is the minimum of this
// quantity over all edges.
func Girth(g *graph) (int, error) {
	best := math.MaxInt32
	for _, e := range g.edgesSnapshot() {
		depth := bfsDepth(g, e.from, e.from, e.to)
		if d, ok := depth[e.to]; ok {
			if cycle := d + 1; cycle < best {
				best = cycle
			}
		}
	}

	if best == math.MaxInt32 {
		return 0, ErrNoCycle
	}

	return best, nil
}
