package config

import (
	"fmt"
	"os"

	"github.com/hgaensbauer/ddsdata/record"
	"github.com/hgaensbauer/ddsdata/writer"
	"gopkg.in/yaml.v3"
)

// Config holds the defaults for a run. Positional arguments on the command
// line override Dir and PointsPerFile.
type Config struct {
	Dir           string `yaml:"dir"`
	PointsPerFile int    `yaml:"points_per_file"`
	Format        string `yaml:"format"` // canonical or legacy
	DB            string `yaml:"db"`     // empty disables the record catalog
}

// Default returns the built-in configuration.
func Default() Config {
	opts := writer.DefaultOptions()
	return Config{
		Dir:           opts.Dir,
		PointsPerFile: opts.PointsPerFile,
		Format:        opts.Format.String(),
	}
}

// Load reads filename on top of the defaults. Keys missing from the file keep
// their default value.
func Load(filename string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filename)
	if err != nil {
		return cfg, err
	}

	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", filename, err)
	}

	if _, err := record.ParseFormat(cfg.Format); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Options converts the configuration into writer options.
func (c Config) Options() (writer.Options, error) {
	f, err := record.ParseFormat(c.Format)
	if err != nil {
		return writer.Options{}, err
	}
	return writer.Options{
		Dir:           c.Dir,
		PointsPerFile: c.PointsPerFile,
		Format:        f,
	}, nil
}
