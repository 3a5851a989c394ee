// Package config handles configuration loading and management for reqforge.
//
// It provides functionality for:
//   - Loading configuration from .reqforge.json, reqforge.config.json or .reqforgerc
//   - Default configuration values
//   - Merging file configuration with command-line overrides
package config
