// Package config loads logsweep's optional YAML configuration.
// Precedence is CLI flag > project-local file > global file; the
// pointer fields distinguish "unset" from zero values so the layers
// merge cleanly.
package config
