package puzzle

import "testing"

func TestRotationPeriods(t *testing.T) {
	tests := []struct {
		topo   *Topology
		kind   ShapeKind
		period int
	}{
		{Square, ShapeBlank, 1},
		{Square, ShapeEnd, 4},
		{Square, ShapeStraight, 2},
		{Square, ShapeElbow, 4},
		{Square, ShapeTee, 4},
		{Square, ShapeCross, 1},
		{Hex, ShapeBlank, 1},
		{Hex, ShapeEnd, 6},
		{Hex, ShapeStraight, 3},
		{Hex, ShapeElbow, 6},
		{Hex, ShapeTee, 2},
		{Hex, ShapeCross, 1},
	}

	for _, tc := range tests {
		t.Run(tc.topo.Name+"/"+tc.kind.String(), func(t *testing.T) {
			shape, ok := tc.topo.Shape(tc.kind)
			if !ok {
				t.Fatalf("shape %v missing from %s catalog", tc.kind, tc.topo.Name)
			}
			if shape.Period != tc.period {
				t.Errorf("period = %d, expected %d", shape.Period, tc.period)
			}
		})
	}
}

func TestEffectivePortsPeriodIsNoop(t *testing.T) {
	// Rotating by the shape's own period must return the same port set,
	// for every shape, every topology and every starting rotation.
	for _, topo := range Topologies() {
		for _, shape := range topo.Catalog() {
			for rot := 0; rot < topo.Dirs; rot++ {
				got := EffectivePorts(topo, shape, rot+shape.Period)
				want := EffectivePorts(topo, shape, rot)
				if got != want {
					t.Errorf("%s/%s: ports at rot %d+period = %04b, expected %04b",
						topo.Name, shape.Kind, rot, got, want)
				}
			}
		}
	}
}

func TestPortSetRotateInvertible(t *testing.T) {
	for _, topo := range Topologies() {
		for _, shape := range topo.Catalog() {
			for steps := -7; steps <= 7; steps++ {
				rotated := shape.Base.Rotate(steps, topo.Dirs)
				back := rotated.Rotate(-steps, topo.Dirs)
				if back != shape.Base {
					t.Errorf("%s/%s: rotate %d then %d = %04b, expected %04b",
						topo.Name, shape.Kind, steps, -steps, back, shape.Base)
				}
			}
		}
	}
}

func TestPortSetRotateSquare(t *testing.T) {
	tests := []struct {
		name     string
		ports    PortSet
		steps    int
		expected PortSet
	}{
		{"end one step", PortsOf(North), 1, PortsOf(East)},
		{"end full turn", PortsOf(North), 4, PortsOf(North)},
		{"end counter-clockwise", PortsOf(North), -1, PortsOf(West)},
		{"straight half turn", PortsOf(North, South), 1, PortsOf(East, West)},
		{"elbow", PortsOf(North, East), 2, PortsOf(South, West)},
		{"cross is fixed", PortsOf(North, East, South, West), 3, PortsOf(North, East, South, West)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.ports.Rotate(tc.steps, Square.Dirs)
			if got != tc.expected {
				t.Errorf("Rotate(%d) = %04b, expected %04b", tc.steps, got, tc.expected)
			}
		})
	}
}

func TestInverseDirections(t *testing.T) {
	if Square.Inverse(North) != South || Square.Inverse(East) != West {
		t.Error("square inverse directions wrong")
	}
	for d := 0; d < Hex.Dirs; d++ {
		dir := Direction(d)
		if Hex.Inverse(Hex.Inverse(dir)) != dir {
			t.Errorf("hex inverse not involutive for %s", Hex.DirString(dir))
		}
	}
}

func TestParseShapeKind(t *testing.T) {
	for _, shape := range Square.Catalog() {
		kind, ok := ParseShapeKind(shape.Kind.String())
		if !ok || kind != shape.Kind {
			t.Errorf("ParseShapeKind(%q) = %v, %v", shape.Kind.String(), kind, ok)
		}
	}
	if _, ok := ParseShapeKind("spiral"); ok {
		t.Error("ParseShapeKind accepted an unknown name")
	}
}
