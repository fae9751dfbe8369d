// Package config loads and saves the YAML configuration file, providing
// defaults and first-run creation.
package config
