package puzzle

import "math/bits"

// PortSet is an immutable set of open connector directions, stored as a
// bitmask over a topology's directions.
type PortSet uint8

// PortsOf builds a port set from individual directions.
func PortsOf(dirs ...Direction) PortSet {
	var p PortSet
	for _, d := range dirs {
		p |= 1 << d
	}
	return p
}

// Has reports whether the given direction is open.
func (p PortSet) Has(d Direction) bool {
	return p&(1<<d) != 0
}

// Count returns the number of open ports.
func (p PortSet) Count() int {
	return bits.OnesCount8(uint8(p))
}

// Rotate returns the set rotated clockwise by steps within a cyclic
// ordering of n directions. Negative steps rotate counter-clockwise.
func (p PortSet) Rotate(steps, n int) PortSet {
	k := ((steps % n) + n) % n
	if k == 0 {
		return p
	}
	mask := PortSet(1<<n) - 1
	return ((p << k) | (p >> (n - k))) & mask
}

// Directions lists the open directions in ascending order.
func (p PortSet) Directions(n int) []Direction {
	dirs := make([]Direction, 0, p.Count())
	for d := 0; d < n; d++ {
		if p.Has(Direction(d)) {
			dirs = append(dirs, Direction(d))
		}
	}
	return dirs
}

// ShapeKind identifies a connector shape in the closed catalog.
// The catalog is fixed and small, so shapes are a tagged variant rather
// than an interface hierarchy.
type ShapeKind uint8

const (
	ShapeBlank    ShapeKind = iota // no ports
	ShapeEnd                       // single port
	ShapeStraight                  // two opposite ports
	ShapeElbow                     // two adjacent ports
	ShapeTee                       // three-way junction
	ShapeCross                     // every port open
)

// String returns the level-file name of the shape kind.
func (k ShapeKind) String() string {
	switch k {
	case ShapeBlank:
		return "blank"
	case ShapeEnd:
		return "end"
	case ShapeStraight:
		return "straight"
	case ShapeElbow:
		return "elbow"
	case ShapeTee:
		return "tee"
	case ShapeCross:
		return "cross"
	default:
		return "unknown"
	}
}

// ParseShapeKind resolves a level-file shape name.
func ParseShapeKind(s string) (ShapeKind, bool) {
	for _, k := range []ShapeKind{ShapeBlank, ShapeEnd, ShapeStraight, ShapeElbow, ShapeTee, ShapeCross} {
		if k.String() == s {
			return k, true
		}
	}
	return ShapeBlank, false
}

// Shape is one entry of a topology's catalog: the ports it opens in its
// reference rotation and the number of distinct rotation states.
type Shape struct {
	Kind   ShapeKind
	Base   PortSet
	Period int
}

// Shape looks up the catalog entry for a shape kind.
func (t *Topology) Shape(kind ShapeKind) (Shape, bool) {
	s, ok := t.shapes[kind]
	return s, ok
}

// Catalog returns the topology's shapes ordered by kind.
func (t *Topology) Catalog() []Shape {
	kinds := []ShapeKind{ShapeBlank, ShapeEnd, ShapeStraight, ShapeElbow, ShapeTee, ShapeCross}
	out := make([]Shape, 0, len(kinds))
	for _, k := range kinds {
		if s, ok := t.shapes[k]; ok {
			out = append(out, s)
		}
	}
	return out
}

// EffectivePorts applies a cyclic rotation to the shape's base port set.
// Pure: the same inputs always yield the same set, and rotating by the
// shape's period returns the base set.
func EffectivePorts(t *Topology, s Shape, rot int) PortSet {
	return s.Base.Rotate(rot, t.Dirs)
}

// buildCatalog derives the shape table for a topology. Base port sets
// follow the same pattern on any direction count: an end opens direction 0,
// a straight opens 0 and its inverse, an elbow opens 0 and 1, a tee opens
// every other direction starting at 0 on hex grids and all-but-direction-0
// on square grids, a cross opens everything.
func buildCatalog(t *Topology) map[ShapeKind]Shape {
	n := t.Dirs
	bases := map[ShapeKind]PortSet{
		ShapeBlank:    0,
		ShapeEnd:      PortsOf(0),
		ShapeStraight: PortsOf(0, Direction(n/2)),
		ShapeElbow:    PortsOf(0, 1),
		ShapeCross:    PortSet(1<<n) - 1,
	}
	if n == 6 {
		// Y-junction on hex grids.
		bases[ShapeTee] = PortsOf(0, 2, 4)
	} else {
		// T-junction: every port except direction 0 (north).
		bases[ShapeTee] = (PortSet(1<<n) - 1) &^ PortsOf(0)
	}

	shapes := make(map[ShapeKind]Shape, len(bases))
	for kind, base := range bases {
		shapes[kind] = Shape{
			Kind:   kind,
			Base:   base,
			Period: rotationPeriod(base, n),
		}
	}
	return shapes
}

// rotationPeriod finds the smallest positive number of steps after which
// the port set repeats. A symmetric shape (straight, cross, blank) has a
// period smaller than the direction count.
func rotationPeriod(base PortSet, n int) int {
	for p := 1; p < n; p++ {
		if base.Rotate(p, n) == base {
			return p
		}
	}
	return n
}
