package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultSettingsFile is read from the working directory when no --config
// flag is given.
const DefaultSettingsFile = "vhal-config.yaml"

// Settings holds the persistent options of vhal-config.
type Settings struct {
	// Schemas are extra enumeration schema files layered on the built-in
	// tables. Relative paths are relative to the settings file.
	Schemas []string `yaml:"schemas"`

	// TestConstants includes the test-only named constants.
	TestConstants bool `yaml:"testConstants"`

	// Flat parses every property against the system registry, so vendor
	// tags and numeric ids are accepted anywhere.
	Flat bool `yaml:"flat"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"logLevel"`

	// EventLog is the path of a CBOR load event log to append to.
	EventLog string `yaml:"eventLog"`

	// Snapshot is the default output path of the compile command.
	Snapshot string `yaml:"snapshot"`
}

// DefaultSettings returns the settings used when no file exists.
func DefaultSettings() *Settings {
	return &Settings{
		LogLevel: "warn",
		Snapshot: "properties.snap",
	}
}

// LoadSettings reads a settings file. An empty path reads
// DefaultSettingsFile if it exists and falls back to DefaultSettings.
func LoadSettings(path string) (*Settings, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultSettingsFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return DefaultSettings(), nil
		}
		return nil, fmt.Errorf("reading settings: %w", err)
	}

	s := DefaultSettings()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parsing settings %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	for i, schema := range s.Schemas {
		if !filepath.IsAbs(schema) {
			s.Schemas[i] = filepath.Join(dir, schema)
		}
	}
	if _, err := s.Level(); err != nil {
		return nil, fmt.Errorf("settings %s: %w", path, err)
	}
	return s, nil
}

// Level returns the slog level named by LogLevel.
func (s *Settings) Level() (slog.Level, error) {
	var level slog.Level
	if s.LogLevel == "" {
		return slog.LevelWarn, nil
	}
	if err := level.UnmarshalText([]byte(s.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log level %q", s.LogLevel)
	}
	return level, nil
}
