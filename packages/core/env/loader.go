package env

import (
	"fmt"
	"os"
	"strings"
)

// MergeVariables merges variable maps; later sources win.
func MergeVariables(sources ...map[string]string) map[string]string {
	result := make(map[string]string)
	for _, src := range sources {
		for k, v := range src {
			result[k] = v
		}
	}
	return result
}

// LoadSystemEnv returns process environment variables whose name starts with
// prefix, keyed by the remainder of the name.
func LoadSystemEnv(prefix string) map[string]string {
	result := make(map[string]string)
	for _, e := range os.Environ() {
		key, value, found := strings.Cut(e, "=")
		if !found {
			continue
		}
		if prefix == "" {
			result[key] = value
		} else if name, ok := strings.CutPrefix(key, prefix); ok && name != "" {
			result[name] = value
		}
	}
	return result
}

// ParseAssignments parses "key=value" pairs, as given by repeated --var flags.
func ParseAssignments(pairs []string) (map[string]string, error) {
	result := make(map[string]string, len(pairs))
	for _, p := range pairs {
		key, value, found := strings.Cut(p, "=")
		key = strings.TrimSpace(key)
		if !found || key == "" {
			return nil, &AssignmentError{Input: p}
		}
		result[key] = value
	}
	return result, nil
}

type AssignmentError struct {
	Input string
}

func (e *AssignmentError) Error() string {
	return fmt.Sprintf("invalid assignment %q, expected key=value", e.Input)
}
