package puzzle

import "math/rand"

// Tile is one cell's state: a catalog shape plus its current rotation step.
// Tiles are owned by the board that contains them; only Board.Rotate
// mutates them.
type Tile struct {
	Shape Shape
	Rot   int
}

// Ports returns the tile's effective open directions at its current
// rotation.
func (t Tile) Ports(topo *Topology) PortSet {
	return EffectivePorts(topo, t.Shape, t.Rot)
}

// Board is a fixed-size grid of tiles stored as a flat row-major array.
// Dimensions and shapes are fixed at construction; only rotation steps
// change afterwards. The board is a plain value owned by its caller and is
// not safe for concurrent mutation.
type Board struct {
	topo   *Topology
	width  int
	height int
	tiles  []Tile
}

// NewBoard constructs a board from level data. Rotations from the level
// are normalized into [0, period) per shape; missing rotations default to
// zero. Returns a LevelError if the level is malformed.
func NewBoard(level Level) (*Board, error) {
	if err := level.Validate(); err != nil {
		return nil, err
	}
	topo, _ := TopologyByName(level.Topology)

	tiles := make([]Tile, len(level.Cells))
	for i, cell := range level.Cells {
		shape, _ := topo.Shape(cell.Kind)
		rot := ((cell.Rot % shape.Period) + shape.Period) % shape.Period
		tiles[i] = Tile{Shape: shape, Rot: rot}
	}

	return &Board{
		topo:   topo,
		width:  level.Width,
		height: level.Height,
		tiles:  tiles,
	}, nil
}

// Topology returns the board's grid topology.
func (b *Board) Topology() *Topology {
	return b.topo
}

// Width returns the board width in cells.
func (b *Board) Width() int {
	return b.width
}

// Height returns the board height in cells.
func (b *Board) Height() int {
	return b.height
}

// InBounds reports whether the coordinate is on the board.
func (b *Board) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < b.width && c.Y >= 0 && c.Y < b.height
}

func (b *Board) index(c Coord) int {
	return c.Y*b.width + c.X
}

// Tile returns the tile at the given coordinate.
func (b *Board) Tile(c Coord) (Tile, error) {
	if !b.InBounds(c) {
		return Tile{}, OutOfBoundsError{Coord: c}
	}
	return b.tiles[b.index(c)], nil
}

// Neighbor returns the adjacent coordinate in the given direction, or
// false at the grid boundary. A boundary is not an error; boundary cells
// simply have fewer possible matches.
func (b *Board) Neighbor(c Coord, d Direction) (Coord, bool) {
	n := c.Add(b.topo.Offset(d, c.Y))
	if !b.InBounds(n) {
		return Coord{}, false
	}
	return n, true
}

// Rotate advances a cell's rotation by delta steps (any integer, negative
// for counter-clockwise) modulo the cell shape's rotation period. This is
// the only mutating operation on a constructed board.
func (b *Board) Rotate(c Coord, delta int) error {
	if !b.InBounds(c) {
		return OutOfBoundsError{Coord: c}
	}
	t := &b.tiles[b.index(c)]
	p := t.Shape.Period
	t.Rot = ((t.Rot+delta)%p + p) % p
	return nil
}

// Scramble assigns every tile a random rotation in [0, period).
func (b *Board) Scramble(r *rand.Rand) {
	for i := range b.tiles {
		b.tiles[i].Rot = r.Intn(b.tiles[i].Shape.Period)
	}
}

// Snapshot exposes per-cell effective ports as a read-only view for the
// evaluator and renderers, detached from further board mutation.
func (b *Board) Snapshot() Snapshot {
	cells := make([]CellView, len(b.tiles))
	for i, t := range b.tiles {
		cells[i] = CellView{
			Kind:  t.Shape.Kind,
			Rot:   t.Rot,
			Ports: t.Ports(b.topo),
		}
	}
	return Snapshot{
		Topo:   b.topo,
		Width:  b.width,
		Height: b.height,
		Cells:  cells,
	}
}

// Level re-encodes the board's current state as level data, including the
// current rotations. This is the snapshot/restore primitive used by the
// editor and by save/resume collaborators.
func (b *Board) Level() Level {
	cells := make([]CellSpec, len(b.tiles))
	for i, t := range b.tiles {
		cells[i] = CellSpec{Kind: t.Shape.Kind, Rot: t.Rot}
	}
	return Level{
		Topology: b.topo.Name,
		Width:    b.width,
		Height:   b.height,
		Cells:    cells,
	}
}

// CellView is one cell of a board snapshot.
type CellView struct {
	Kind  ShapeKind
	Rot   int
	Ports PortSet
}

// Snapshot is an immutable view of a board at one instant.
type Snapshot struct {
	Topo   *Topology
	Width  int
	Height int
	Cells  []CellView
}

// InBounds reports whether the coordinate is on the snapshot.
func (s Snapshot) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < s.Width && c.Y >= 0 && c.Y < s.Height
}

// At returns the cell view at the given coordinate.
func (s Snapshot) At(c Coord) (CellView, bool) {
	if !s.InBounds(c) {
		return CellView{}, false
	}
	return s.Cells[c.Y*s.Width+c.X], true
}

// Neighbor returns the adjacent coordinate in the given direction, or
// false at the boundary.
func (s Snapshot) Neighbor(c Coord, d Direction) (Coord, bool) {
	n := c.Add(s.Topo.Offset(d, c.Y))
	if !s.InBounds(n) {
		return Coord{}, false
	}
	return n, true
}
