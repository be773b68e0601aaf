package fonts

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Extensions we consider as font files.
var Exts = []string{".ttf", ".otf"}

// BaseDirs returns candidate base directories for fonts (relative to process cwd).
func BaseDirs() []string {
	return []string{"assets/fonts", "../../assets/fonts"}
}

// ScanDir returns relative paths of all font files under dir (e.g. "Inter/Inter-Regular.ttf"),
// sorted. Paths use forward slashes. A missing dir yields no paths and no error.
func ScanDir(dir string) ([]string, error) {
	var out []string
	dir = filepath.Clean(dir)
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if info.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		for _, e := range Exts {
			if ext == e {
				rel, err := filepath.Rel(dir, path)
				if err != nil {
					return err
				}
				out = append(out, filepath.ToSlash(rel))
				return nil
			}
		}
		return nil
	})
	sort.Strings(out)
	return out, err
}

// normalizeForMatch lowercases and removes spaces, dashes, and underscores for fuzzy matching.
func normalizeForMatch(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

// FindFont searches BaseDirs for a font. See FindIn.
func FindFont(search string) (fullPath string, err error) {
	return FindIn(BaseDirs(), search)
}

// FindIn returns the full path of a font file under dirs whose path matches search
// ("Inter", "Google Sans", "Inter-Regular"). An empty search takes any font.
// When several match, one whose path contains "regular" wins, then the first in dir order.
func FindIn(dirs []string, search string) (string, error) {
	norm := normalizeForMatch(search)
	var candidates []string
	for _, base := range dirs {
		list, walkErr := ScanDir(base)
		if walkErr != nil || len(list) == 0 {
			continue
		}
		for _, rel := range list {
			if norm != "" && !strings.Contains(normalizeForMatch(rel), norm) {
				continue
			}
			full := filepath.Join(base, filepath.FromSlash(rel))
			if _, err := os.Stat(full); err == nil {
				candidates = append(candidates, full)
			}
		}
	}
	if len(candidates) == 0 {
		return "", os.ErrNotExist
	}
	for _, c := range candidates {
		if strings.Contains(strings.ToLower(filepath.Base(c)), "regular") {
			return c, nil
		}
	}
	return candidates[0], nil
}
