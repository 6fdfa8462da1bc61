package schemafile

import (
	"fmt"
	"os"
	"strings"
)

// ParseProperties parses a minimal key=value properties format: one pair
// per line, '#' and '!' comment lines, blank lines skipped, whitespace
// around keys and values trimmed. Later occurrences of a key win.
func ParseProperties(data []byte) (map[string]string, error) {
	out := make(map[string]string)

	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "!") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("line %d: expected key=value, got %q", i+1, line)
		}

		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("line %d: empty key", i+1)
		}

		out[key] = strings.TrimSpace(value)
	}

	return out, nil
}

// LoadProperties reads and parses a properties file.
func LoadProperties(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read properties file %s: %w", path, err)
	}

	return ParseProperties(data)
}
