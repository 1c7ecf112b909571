package puzzle

// Edge is a match between two adjacent cells whose facing ports are both
// open. A points to the cell with the lower board index.
type Edge struct {
	A, B Coord
}

// PortRef identifies one open port of one cell.
type PortRef struct {
	Cell Coord
	Dir  Direction
}

// Evaluation is the derived solved/unsolved verdict for one board
// snapshot, with diagnostics for UI feedback. It is never stored as board
// state; recompute it after every rotation.
type Evaluation struct {
	// Solved is true when no port dangles and all ported cells form a
	// single connected component.
	Solved bool
	// Edges are the mutual matches of the match graph.
	Edges []Edge
	// Dangling lists every open port with no reciprocating neighbor port,
	// either because the neighbor does not face back or because there is
	// no neighbor at the boundary.
	Dangling []PortRef
	// Components counts connected components among cells that have at
	// least one open port. Blank cells are excluded.
	Components int
}

// DanglingCells returns the set of cells owning at least one dangling port.
func (e Evaluation) DanglingCells() map[Coord]bool {
	cells := make(map[Coord]bool, len(e.Dangling))
	for _, p := range e.Dangling {
		cells[p.Cell] = true
	}
	return cells
}

// Solved reports whether the snapshot satisfies both the mismatch rule and
// the connectivity rule.
func Solved(s Snapshot) bool {
	return Evaluate(s).Solved
}

// Evaluate decides solved/unsolved for a board snapshot.
//
// It builds the match graph (an edge wherever two adjacent cells have
// mutually-facing open ports), records every dangling port, and counts
// connected components over the ported cells with a union-find. The board
// is solved only if no port dangles and at most one component exists; a
// board with no ported cells at all is vacuously solved.
//
// Evaluation is a total, pure function of the snapshot: repeated calls
// return identical results.
func Evaluate(s Snapshot) Evaluation {
	var eval Evaluation

	uf := newUnionFind(len(s.Cells))

	for i, cell := range s.Cells {
		at := C(i%s.Width, i/s.Width)
		for _, d := range cell.Ports.Directions(s.Topo.Dirs) {
			nc, ok := s.Neighbor(at, d)
			if !ok {
				eval.Dangling = append(eval.Dangling, PortRef{Cell: at, Dir: d})
				continue
			}
			neighbor, _ := s.At(nc)
			if !neighbor.Ports.Has(s.Topo.Inverse(d)) {
				eval.Dangling = append(eval.Dangling, PortRef{Cell: at, Dir: d})
				continue
			}
			// Mutual match. Record the edge once, from the lower index.
			j := nc.Y*s.Width + nc.X
			if i < j {
				eval.Edges = append(eval.Edges, Edge{A: at, B: nc})
				uf.union(i, j)
			}
		}
	}

	components := 0
	for i, cell := range s.Cells {
		if cell.Ports.Count() > 0 && uf.find(i) == i {
			components++
		}
	}
	eval.Components = components

	eval.Solved = len(eval.Dangling) == 0 && components <= 1
	return eval
}

// unionFind is a small disjoint-set over cell indices, used to count the
// connected components of the match graph.
type unionFind struct {
	parent []int
	rank   []int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{
		parent: make([]int, n),
		rank:   make([]int, n),
	}
	for i := range uf.parent {
		uf.parent[i] = i
	}
	return uf
}

func (uf *unionFind) find(x int) int {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]] // path halving
		x = uf.parent[x]
	}
	return x
}

func (uf *unionFind) union(a, b int) {
	ra, rb := uf.find(a), uf.find(b)
	if ra == rb {
		return
	}
	if uf.rank[ra] < uf.rank[rb] {
		ra, rb = rb, ra
	}
	uf.parent[rb] = ra
	if uf.rank[ra] == uf.rank[rb] {
		uf.rank[ra]++
	}
}
