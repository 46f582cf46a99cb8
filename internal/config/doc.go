// Package config loads application configuration from environment
// variables with sane defaults.
package config
