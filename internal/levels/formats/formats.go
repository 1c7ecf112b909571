package formats

import (
	"fmt"

	"github.com/okurenko/conduit/internal/puzzle"
)

// FormatExtensions lists the file extensions with a registered parser.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".txt"}
}

// Parse routes level data to the parser for the given extension.
func Parse(data []byte, ext string) (puzzle.Level, error) {
	switch ext {
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".txt":
		return ParseText(data)
	default:
		return puzzle.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
