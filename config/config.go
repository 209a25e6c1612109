// Package config loads pcdstats settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// MaxAbsCoordinate is the implausibility bound of binary decoding.
	MaxAbsCoordinate float64 `yaml:"max_abs_coordinate"`
	ColorByAltitude  bool    `yaml:"color_by_altitude"`
	// Concurrency is the number of files analyzed at once.
	Concurrency int `yaml:"concurrency"`
	// MaxFileSize limits a single file read, like "256MiB".
	MaxFileSize string `yaml:"max_file_size"`
}

func Default() Config {
	return Config{
		MaxAbsCoordinate: 1e6,
		ColorByAltitude:  true,
		Concurrency:      4,
		MaxFileSize:      "1GiB",
	}
}

// Load reads path over the defaults.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	c, err := Parse(raw)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(raw []byte) (Config, error) {
	c := Default()
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return Config{}, err
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	if !(c.MaxAbsCoordinate > 0) {
		return errors.New("max_abs_coordinate must be positive")
	}
	if c.Concurrency < 1 {
		return errors.New("concurrency must be positive")
	}
	if _, err := c.MaxFileSizeBytes(); err != nil {
		return err
	}
	return nil
}

// MaxFileSizeBytes parses MaxFileSize.
func (c Config) MaxFileSizeBytes() (int64, error) {
	n, err := humanize.ParseBytes(c.MaxFileSize)
	if err != nil {
		return 0, fmt.Errorf("max_file_size: %w", err)
	}
	if n == 0 || n > 1<<62 {
		return 0, fmt.Errorf("max_file_size: %q out of range", c.MaxFileSize)
	}
	return int64(n), nil
}
