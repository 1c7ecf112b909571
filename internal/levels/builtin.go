package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/okurenko/conduit/internal/levels/formats"
	"github.com/okurenko/conduit/internal/puzzle"
)

//go:embed builtin
var builtinFS embed.FS

// Builtin returns the compiled-in level set, sorted by ID. The embedded
// files ship in the solved state; callers scramble before play.
func Builtin() ([]puzzle.Level, error) {
	var out []puzzle.Level

	err := fs.WalkDir(builtinFS, "builtin", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		data, err := builtinFS.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		ext := strings.ToLower(filepath.Ext(path))
		lvl, err := formats.Parse(data, ext)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
		if lvl.ID == "" {
			lvl.ID = strings.TrimSuffix(filepath.Base(path), ext)
		}
		if lvl.Name == "" {
			lvl.Name = nameFromID(lvl.ID)
		}
		out = append(out, lvl)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out, nil
}
