// Package cmd implements the reqforge CLI commands using Cobra.
//
// Available commands:
//   - demo: Build and display the three sample requests
//   - build: Build a request from flags with the builder
//   - get, post: Build a request with a director preset
//   - show: Build and display requests from recipe files
//   - validate: Check recipe files without displaying them
//   - version: Show reqforge version information
//
// Output can be switched to JSON with --output json, and a single value can
// be extracted with --pick.
package cmd
