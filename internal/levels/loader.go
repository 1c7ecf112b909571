// Package levels loads puzzle level definitions from embedded built-ins and
// user directories. This package depends on puzzle but puzzle does not
// depend on levels.
package levels

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/okurenko/conduit/internal/levels/formats"
	"github.com/okurenko/conduit/internal/puzzle"
)

// Loader loads levels from a directory tree, merged with the embedded
// built-in set. Root may be empty, in which case only built-ins are served.
type Loader struct {
	Root string
}

// NewLoader creates a loader rooted at dir.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll returns the built-in levels plus every level file found under
// Root, sorted by ID for deterministic ordering. A user level with the same
// ID as a built-in replaces it.
func (l *Loader) LoadAll() ([]puzzle.Level, error) {
	byID := make(map[string]puzzle.Level)

	builtins, err := Builtin()
	if err != nil {
		return nil, err
	}
	for _, lvl := range builtins {
		byID[lvl.ID] = lvl
	}

	if l.Root != "" {
		err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			ext := strings.ToLower(filepath.Ext(path))
			if !isSupportedExtension(ext) {
				return nil
			}

			lvl, err := l.LoadFile(path)
			if err != nil {
				// Skip invalid files
				return nil
			}
			byID[lvl.ID] = lvl
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
		}
	}

	out := make([]puzzle.Level, 0, len(byID))
	for _, lvl := range byID {
		out = append(out, lvl)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// LoadFile loads a single level file. Text levels take their ID and name
// from the file name since the format carries neither.
func (l *Loader) LoadFile(path string) (puzzle.Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return puzzle.Level{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	lvl, err := formats.Parse(data, ext)
	if err != nil {
		return puzzle.Level{}, fmt.Errorf("parsing file %s: %w", path, err)
	}

	if lvl.ID == "" {
		lvl.ID = strings.TrimSuffix(filepath.Base(path), ext)
	}
	if lvl.Name == "" {
		lvl.Name = nameFromID(lvl.ID)
	}
	return lvl, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (puzzle.Level, error) {
	all, err := l.LoadAll()
	if err != nil {
		return puzzle.Level{}, err
	}
	for _, lvl := range all {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return puzzle.Level{}, fmt.Errorf("level not found: %s", id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	all, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(all))
	for i, lvl := range all {
		ids[i] = lvl.ID
	}
	return ids, nil
}

func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// nameFromID turns "03-little-loop" into "Little Loop".
func nameFromID(id string) string {
	words := strings.FieldsFunc(id, func(r rune) bool {
		return r == '-' || r == '_'
	})
	var kept []string
	for _, w := range words {
		if strings.Trim(w, "0123456789") == "" {
			continue
		}
		kept = append(kept, strings.ToUpper(w[:1])+w[1:])
	}
	if len(kept) == 0 {
		return id
	}
	return strings.Join(kept, " ")
}
