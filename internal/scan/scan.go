// Package scan discovers RIS source folders and files on disk.
package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// IsRIS reports whether a filename has a .ris extension, any case.
func IsRIS(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".ris")
}

// ListFiles returns the RIS files directly inside dir, sorted by name.
func ListFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !IsRIS(e.Name()) {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// FindFolders returns the directories directly under root that contain at
// least one RIS file, sorted by name. Keeps unrelated dirs (outputs, .git,
// virtualenvs) out of a run.
func FindFolders(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", root, err)
	}

	var dirs []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		dir := filepath.Join(root, e.Name())
		files, err := ListFiles(dir)
		if err != nil || len(files) == 0 {
			continue
		}
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)
	return dirs, nil
}

// SelectFolders resolves a user selection against root: "all" (or empty)
// auto-detects RIS folders, otherwise each comma-separated name is taken as
// a directory under root. Names that are not directories come back in
// missing instead of failing the run.
func SelectFolders(root, selection string) (dirs, missing []string, err error) {
	selection = strings.TrimSpace(selection)
	if selection == "" || strings.EqualFold(selection, "all") {
		dirs, err = FindFolders(root)
		return dirs, nil, err
	}

	for _, name := range strings.Split(selection, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		dir := filepath.Join(root, name)
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			missing = append(missing, name)
			continue
		}
		dirs = append(dirs, dir)
	}
	return dirs, missing, nil
}
