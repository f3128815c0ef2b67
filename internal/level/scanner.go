package level

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Entry is a discoverable level file.
type Entry struct {
	Name        string // display name from the level definition
	Description string
	Path        string
}

// Scan discovers the level files in a directory. Files that fail to load
// are skipped with a warning so one broken definition does not hide the
// rest. Entries come back sorted by file name for a stable menu order.
func Scan(dir string) ([]Entry, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read level directory: %w", err)
	}

	var entries []Entry
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".json") || strings.HasPrefix(f.Name(), ".") {
			continue
		}
		path := filepath.Join(dir, f.Name())
		lvl, err := Load(path)
		if err != nil {
			log.Printf("Warning: skipping level file %s: %v", path, err)
			continue
		}
		entries = append(entries, Entry{
			Name:        lvl.Name,
			Description: lvl.Description,
			Path:        path,
		})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })
	return entries, nil
}
