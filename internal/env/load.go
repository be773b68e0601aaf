package env

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// Parse reads KEY=VALUE lines. Blank lines and lines starting with # are skipped,
// an optional "export " prefix is dropped, and one pair of surrounding quotes is removed from values.
func Parse(r io.Reader) (map[string]string, error) {
	vars := make(map[string]string)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")
		i := strings.Index(line, "=")
		if i <= 0 {
			continue
		}
		key := strings.TrimSpace(line[:i])
		value := strings.TrimSpace(line[i+1:])
		if key == "" {
			continue
		}
		if len(value) >= 2 && (value[0] == '"' && value[len(value)-1] == '"' || value[0] == '\'' && value[len(value)-1] == '\'') {
			value = value[1 : len(value)-1]
		}
		vars[key] = value
	}
	return vars, scanner.Err()
}

// Load parses path (e.g. ".env") and sets each variable in the process environment,
// overriding values already set. A missing file is not an error.
// Returns the keys that were set.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()
	vars, err := Parse(f)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(vars))
	for k, v := range vars {
		if err := os.Setenv(k, v); err != nil {
			return keys, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}
