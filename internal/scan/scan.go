// Package scan enumerates and filters candidate files for organization.
package scan

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Collect enumerates regular files under dir. Non-recursive mode lists only
// direct children; recursive mode walks the full subtree. Entries matched by
// ignore are excluded, as are directories and anything else that does not
// stat to a regular file. Unreadable entries are skipped; the only error
// returned is a failure to read dir itself.
func Collect(dir string, recursive bool, ignore func(path string) bool) ([]string, error) {
	if ignore == nil {
		ignore = func(string) bool { return false }
	}
	var files []string

	if !recursive {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			path := filepath.Join(dir, entry.Name())
			if isRegularFile(path) && !ignore(path) {
				files = append(files, path)
			}
		}
		return files, nil
	}

	walkErr := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				return err
			}
			// Unreadable subtree: partial results are acceptable.
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if isRegularFile(path) && !ignore(path) {
			files = append(files, path)
		}
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}
	return files, nil
}

// isRegularFile follows symlinks, so a link to a file counts while links to
// directories do not.
func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// FilterByExtension keeps files whose lowercased extension appears in
// allowed, preserving input order. Files without an extension are dropped
// when a filter is active. A nil or empty allow-list passes everything
// through unchanged.
func FilterByExtension(files []string, allowed []string) []string {
	if len(allowed) == 0 {
		return files
	}
	allowSet := make(map[string]struct{}, len(allowed))
	for _, ext := range allowed {
		ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
		if ext != "" {
			allowSet[ext] = struct{}{}
		}
	}

	kept := make([]string, 0, len(files))
	for _, file := range files {
		ext := strings.TrimPrefix(filepath.Ext(file), ".")
		if ext == "" {
			continue
		}
		if _, ok := allowSet[strings.ToLower(ext)]; ok {
			kept = append(kept, file)
		}
	}
	return kept
}
