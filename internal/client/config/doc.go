// Package config loads runtime configuration for the Daily Epiphany CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables with the EPIPHANY_ prefix (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
package config
