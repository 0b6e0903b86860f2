package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"billing-perf/domain/config"
)

// Load parses the YAML configuration file at path on top of the built-in
// defaults. A missing file is not an error: the defaults cover a full run
// as long as the input paths are supplied on the command line.
func Load(path string) (*config.Config, error) {
	c := config.Defaults()
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			slog.Info(fmt.Sprintf("No config file at %s, using defaults", path))
			return c, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	slog.Info(fmt.Sprintf("Loaded config: %s", path))
	return c, nil
}
