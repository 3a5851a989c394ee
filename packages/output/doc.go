// Package output provides formatters for displaying built requests.
//
// Supported output formats:
//   - Console: the human-readable "execute" report, optionally colored
//   - JSON: machine-readable output, accumulated until Flush
//
// Pick extracts a single value from JSON output with a gjson path.
package output
