package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Settings holds user preferences.
type Settings struct {
	// Document is the template document used when --file is not given
	Document string `mapstructure:"document"`

	Log    LogSettings    `mapstructure:"log"`
	Drag   DragSettings   `mapstructure:"drag"`
	Output OutputSettings `mapstructure:"output"`
}

// LogSettings controls diagnostic logging.
type LogSettings struct {
	Level string `mapstructure:"level"`
}

// DragSettings controls drag session behaviour.
type DragSettings struct {
	// DriftCheck refuses to finish a drag when the document changed since it started
	DriftCheck bool `mapstructure:"drift_check"`
}

// OutputSettings controls command output.
type OutputSettings struct {
	JSON bool `mapstructure:"json"`
}

// Load reads settings from the config file at p.Config and the environment.
// Env var overrides use prefix ELEMLIST_ (e.g. ELEMLIST_DRAG_DRIFT_CHECK=false).
// A missing config file is not an error.
func Load(p *Paths) (Settings, error) {
	v := viper.New()

	v.SetDefault("document", "template.json")
	v.SetDefault("log.level", "error")
	v.SetDefault("drag.drift_check", true)
	v.SetDefault("output.json", false)

	v.SetConfigType("yaml")
	if override := os.Getenv("ELEMLIST_CONFIG"); override != "" {
		v.SetConfigFile(override)
	} else {
		v.SetConfigFile(p.Config)
	}

	v.SetEnvPrefix("ELEMLIST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return Settings{}, fmt.Errorf("failed to read config %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return s, nil
}
