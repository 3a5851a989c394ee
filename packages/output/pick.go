package output

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// Pick extracts the value at a gjson path from JSON output.
// Strings are returned raw; everything else keeps its JSON form.
func Pick(data []byte, path string) (string, error) {
	if !gjson.ValidBytes(data) {
		return "", fmt.Errorf("output is not valid JSON")
	}

	result := gjson.GetBytes(data, path)
	if !result.Exists() {
		return "", fmt.Errorf("path %q not found", path)
	}

	if result.Type == gjson.String {
		return result.Str, nil
	}
	return result.Raw, nil
}
