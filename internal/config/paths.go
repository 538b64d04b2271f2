// Package config manages elemlist configuration and filesystem paths.
//
// The data root defaults to ~/.elemlist and can be moved with ELEMLIST_ROOT.
// It holds the sessions/ directory (per-document selection and drag state)
// and an optional config.yaml read through viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all the filesystem paths used by elemlist.
type Paths struct {
	// Root is the base directory for all elemlist data (default: ~/.elemlist)
	Root string

	// Sessions is the directory containing per-document session files
	Sessions string

	// Config is the path to the global config file
	Config string
}

// DefaultPaths returns the default paths for elemlist.
// Paths can be overridden with environment variables:
// - ELEMLIST_ROOT: Override the root directory
func DefaultPaths() (*Paths, error) {
	root := os.Getenv("ELEMLIST_ROOT")
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		root = filepath.Join(home, ".elemlist")
	}

	return NewPaths(root), nil
}

// NewPaths lays out the elemlist directories under root.
func NewPaths(root string) *Paths {
	return &Paths{
		Root:     root,
		Sessions: filepath.Join(root, "sessions"),
		Config:   filepath.Join(root, "config.yaml"),
	}
}

// EnsureDirectories creates all necessary directories if they don't exist.
func (p *Paths) EnsureDirectories() error {
	for _, dir := range []string{p.Root, p.Sessions} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}
