package puzzle

// CellSpec assigns one cell its shape and initial rotation.
type CellSpec struct {
	Kind ShapeKind
	Rot  int
}

// Level is the read-only description a board is constructed from: board
// dimensions, per-cell shape assignment and optional initial rotations,
// all in row-major order. Levels are supplied by an external catalog; the
// core never mutates or persists them.
type Level struct {
	ID       string
	Name     string
	Topology string
	Width    int
	Height   int
	Cells    []CellSpec
}

// Validate checks the level for internal consistency without building a
// board. Returns a LevelError describing the first problem found.
func (l Level) Validate() error {
	topo, ok := TopologyByName(l.Topology)
	if !ok {
		return levelErrorf("BAD_TOPOLOGY", "unknown topology %q", l.Topology)
	}
	if l.Width <= 0 || l.Height <= 0 {
		return levelErrorf("BAD_SIZE", "dimensions %dx%d must be positive", l.Width, l.Height)
	}
	if len(l.Cells) != l.Width*l.Height {
		return levelErrorf("CELL_COUNT", "have %d cells, want %d for %dx%d",
			len(l.Cells), l.Width*l.Height, l.Width, l.Height)
	}
	for i, cell := range l.Cells {
		if _, ok := topo.Shape(cell.Kind); !ok {
			return levelErrorf("BAD_SHAPE", "cell %d: shape %d not in %s catalog",
				i, cell.Kind, topo.Name)
		}
	}
	return nil
}
