// Package env handles variables and placeholder resolution for reqforge.
//
// It provides functionality for:
//   - Loading .env files
//   - Variable interpolation using {{variable}} syntax
//   - Process environment lookups with {{$NAME}}
//   - Built-in function evaluation (uuid, timestamp, base64, ...)
package env
