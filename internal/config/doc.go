// Package config loads, validates, and normalizes the shelf configuration
// file. Configuration is optional: a missing file yields pure defaults.
package config
