// Package config loads CLI configuration: process settings from the
// environment and animation definitions from TOML files.
package config
