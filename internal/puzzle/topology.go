// Package puzzle provides the core game logic for the Conduit connector puzzle.
// This package is UI-agnostic and deterministic.
package puzzle

import "fmt"

// Direction is an index into a topology's clockwise cyclic ordering of
// adjacency directions.
type Direction uint8

// Square-grid directions.
const (
	North Direction = iota
	East
	South
	West
)

// Hex-grid directions (pointy-top, clockwise from east).
const (
	HexEast Direction = iota
	HexSouthEast
	HexSouthWest
	HexWest
	HexNorthWest
	HexNorthEast
)

// Coord represents a 2D cell coordinate on the board.
// X increases to the right, Y increases downward (screen coordinates).
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns the sum of two coordinates.
func (c Coord) Add(other Coord) Coord {
	return Coord{X: c.X + other.X, Y: c.Y + other.Y}
}

// Topology describes a grid's adjacency structure: how many directions a
// cell has, their clockwise cyclic ordering, and the coordinate offset each
// direction maps to. Tile and board logic is parameterized over it so that
// square and hex grids share one implementation.
type Topology struct {
	// Name identifies the topology in level files ("square", "hex").
	Name string
	// Dirs is the number of adjacency directions, which is also the
	// rotation period of an asymmetric shape.
	Dirs int

	// offsets holds neighbor offsets indexed by row parity then direction.
	// Square grids ignore parity; hex grids use odd-r offset rows.
	offsets [2][]Coord
	names   []string
	shapes  map[ShapeKind]Shape
}

// Square is the four-directional grid topology (quarter-turn rotations).
var Square = newTopology(
	"square",
	[]string{"N", "E", "S", "W"},
	[]Coord{{0, -1}, {1, 0}, {0, 1}, {-1, 0}},
	nil,
)

// Hex is the six-directional pointy-top hex topology using odd-r offset
// coordinates: odd rows are shifted half a cell to the right.
var Hex = newTopology(
	"hex",
	[]string{"E", "SE", "SW", "W", "NW", "NE"},
	[]Coord{{1, 0}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}},
	[]Coord{{1, 0}, {1, 1}, {0, 1}, {-1, 0}, {0, -1}, {1, -1}},
)

func newTopology(name string, names []string, even, odd []Coord) *Topology {
	if odd == nil {
		odd = even
	}
	t := &Topology{
		Name:    name,
		Dirs:    len(even),
		offsets: [2][]Coord{even, odd},
		names:   names,
	}
	t.shapes = buildCatalog(t)
	return t
}

// Topologies returns all supported topologies.
func Topologies() []*Topology {
	return []*Topology{Square, Hex}
}

// TopologyByName looks up a topology by its level-file name.
func TopologyByName(name string) (*Topology, bool) {
	for _, t := range Topologies() {
		if t.Name == name {
			return t, true
		}
	}
	return nil, false
}

// Inverse returns the direction a neighbor uses to look back.
func (t *Topology) Inverse(d Direction) Direction {
	return Direction((int(d) + t.Dirs/2) % t.Dirs)
}

// RotateDir advances a direction by the given number of clockwise steps.
// Negative steps rotate counter-clockwise.
func (t *Topology) RotateDir(d Direction, steps int) Direction {
	n := t.Dirs
	s := ((int(d)+steps)%n + n) % n
	return Direction(s)
}

// Offset returns the coordinate offset for moving one cell in the given
// direction from a cell in the given row.
func (t *Topology) Offset(d Direction, row int) Coord {
	parity := ((row % 2) + 2) % 2
	return t.offsets[parity][d]
}

// DirString returns a short human-readable name for a direction.
func (t *Topology) DirString(d Direction) string {
	if int(d) < len(t.names) {
		return t.names[d]
	}
	return fmt.Sprintf("dir%d", d)
}

// AllPorts returns the port set with every direction open.
func (t *Topology) AllPorts() PortSet {
	return PortSet(1<<t.Dirs) - 1
}
