package formats

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/okurenko/conduit/internal/puzzle"
)

type yamlSize struct {
	W int `yaml:"w"`
	H int `yaml:"h"`
}

type yamlCell struct {
	X     int    `yaml:"x"`
	Y     int    `yaml:"y"`
	Shape string `yaml:"shape"`
	Rot   int    `yaml:"rot"`
}

// yamlLevel is the on-disk YAML schema. Square levels may use the compact
// `rows` notation (same cell characters as the text format); any topology
// can list `cells` explicitly, with unlisted cells defaulting to blank.
type yamlLevel struct {
	ID       string     `yaml:"id"`
	Name     string     `yaml:"name"`
	Topology string     `yaml:"topology"`
	Size     yamlSize   `yaml:"size"`
	Rows     []string   `yaml:"rows,omitempty"`
	Cells    []yamlCell `yaml:"cells,omitempty"`
}

// ParseYAML parses a YAML level definition.
func ParseYAML(data []byte) (puzzle.Level, error) {
	var raw yamlLevel
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return puzzle.Level{}, fmt.Errorf("parse yaml: %w", err)
	}
	if raw.Topology == "" {
		raw.Topology = puzzle.Square.Name
	}
	if len(raw.Rows) > 0 && len(raw.Cells) > 0 {
		return puzzle.Level{}, fmt.Errorf("level %q: rows and cells are mutually exclusive", raw.ID)
	}

	level := puzzle.Level{
		ID:       raw.ID,
		Name:     raw.Name,
		Topology: raw.Topology,
		Width:    raw.Size.W,
		Height:   raw.Size.H,
	}

	switch {
	case len(raw.Rows) > 0:
		if raw.Topology != puzzle.Square.Name {
			return puzzle.Level{}, fmt.Errorf("level %q: rows notation requires square topology", raw.ID)
		}
		grid := fmt.Sprintf("%d,%d\n%s", raw.Size.H, raw.Size.W, strings.Join(raw.Rows, "\n"))
		parsed, err := ParseText([]byte(grid))
		if err != nil {
			return puzzle.Level{}, fmt.Errorf("level %q: %w", raw.ID, err)
		}
		level.Cells = parsed.Cells
	default:
		if raw.Size.W <= 0 || raw.Size.H <= 0 {
			return puzzle.Level{}, fmt.Errorf("level %q: dimensions %dx%d must be positive",
				raw.ID, raw.Size.W, raw.Size.H)
		}
		level.Cells = make([]puzzle.CellSpec, raw.Size.W*raw.Size.H)
		for _, c := range raw.Cells {
			if c.X < 0 || c.X >= raw.Size.W || c.Y < 0 || c.Y >= raw.Size.H {
				return puzzle.Level{}, fmt.Errorf("level %q: cell (%d,%d) out of bounds", raw.ID, c.X, c.Y)
			}
			kind, ok := puzzle.ParseShapeKind(c.Shape)
			if !ok {
				return puzzle.Level{}, fmt.Errorf("level %q: cell (%d,%d): unknown shape %q",
					raw.ID, c.X, c.Y, c.Shape)
			}
			level.Cells[c.Y*raw.Size.W+c.X] = puzzle.CellSpec{Kind: kind, Rot: c.Rot}
		}
	}

	if err := level.Validate(); err != nil {
		return puzzle.Level{}, fmt.Errorf("level %q: %w", raw.ID, err)
	}
	return level, nil
}
