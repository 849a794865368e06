package config

import "os"

const (
	DefaultRoot = "."

	// DefaultMinFiles is the smallest directory the analyzer considers.
	DefaultMinFiles = 2
)

// RootPath returns the library root from the QUIRE_ROOT env var,
// falling back to DefaultRoot.
func RootPath() string {
	if env := os.Getenv("QUIRE_ROOT"); env != "" {
		return env
	}
	return DefaultRoot
}
