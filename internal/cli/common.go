package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/danieljhkim/elemlist/internal/clock"
	"github.com/danieljhkim/elemlist/internal/config"
	"github.com/danieljhkim/elemlist/internal/document"
	"github.com/danieljhkim/elemlist/internal/engine"
	"github.com/danieljhkim/elemlist/internal/fsops"
	"github.com/danieljhkim/elemlist/internal/hash"
	"github.com/danieljhkim/elemlist/internal/log"
	"github.com/danieljhkim/elemlist/internal/state"
)

// newEngine creates a new engine with real implementations of all dependencies.
func newEngine() (*engine.Engine, error) {
	paths, err := config.DefaultPaths()
	if err != nil {
		return nil, fmt.Errorf("failed to get config paths: %w", err)
	}

	if err := paths.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to ensure directories: %w", err)
	}

	settings, err := loadSettings(paths)
	if err != nil {
		return nil, err
	}

	fs := fsops.NewRealFS()
	docs := document.NewFileRepo(fs, hash.NewSHA256Hasher())
	sessions := state.NewFileSessionStore(fs, paths.Sessions)

	return engine.New(docs, sessions, &clock.RealClock{}, settings), nil
}

// loadSettings reads the config file and environment, then applies the
// global flags on top.
func loadSettings(paths *config.Paths) (config.Settings, error) {
	settings, err := config.Load(paths)
	if err != nil {
		return config.Settings{}, err
	}

	if documentFlag != "" {
		settings.Document = documentFlag
	}
	if logLevelFlag != "" {
		settings.Log.Level = logLevelFlag
	}
	if jsonOutput {
		settings.Output.JSON = true
	}
	jsonOutput = settings.Output.JSON

	if err := log.SetLevel(settings.Log.Level); err != nil {
		return config.Settings{}, err
	}
	return settings, nil
}

// outputJSON outputs a value as JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
