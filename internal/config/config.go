// Package config loads optional run settings from a YAML file.
package config

import (
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the set of run settings. The zero value is the default.
type Config struct {
	Debug   bool `yaml:"debug"`
	JSONLog bool `yaml:"json_log"`
	Verify  bool `yaml:"verify"`
}

// Load reads a Config from a YAML file. Unknown keys are rejected.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, &Error{Op: "config.load", Path: path, Err: err}
	}
	defer f.Close()

	var cfg Config
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			// An empty file is the default configuration.
			return Config{}, nil
		}
		return Config{}, &Error{Op: "config.decode", Path: path, Err: err}
	}
	return cfg, nil
}

// Error is an error loading a configuration file.
type Error struct {
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	return e.Op + " (path=" + e.Path + "): " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}
