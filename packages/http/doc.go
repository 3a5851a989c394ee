// Package http describes HTTP requests for reqforge without sending them.
//
// It provides:
//   - Request: an immutable request value (URL, method, headers, query, body, timeout)
//   - Builder: a fluent builder that validates on Build
//   - Director functions and named presets for common request shapes
//
// Nothing in this package performs network I/O.
package http
