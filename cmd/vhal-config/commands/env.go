package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/rpi-demonstrator/vhal-go/pkg/jsonconfig"
	vlog "github.com/rpi-demonstrator/vhal-go/pkg/log"
)

// env is the per-invocation state built from settings and flags.
type env struct {
	settings *Settings
	logger   *slog.Logger
	loader   *jsonconfig.Loader
	events   *vlog.FileLogger
}

// settings loads the settings file and applies flag overrides.
func (o *rootOptions) settings(cmd *cobra.Command) (*Settings, error) {
	s, err := LoadSettings(o.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("schema") {
		s.Schemas = append(s.Schemas, o.schemas...)
	}
	if flags.Changed("test-constants") {
		s.TestConstants = o.testConstants
	}
	if flags.Changed("flat") {
		s.Flat = o.flat
	}
	if flags.Changed("log-level") {
		s.LogLevel = o.logLevel
	}
	if flags.Changed("event-log") {
		s.EventLog = o.eventLog
	}
	return s, nil
}

// env builds the logger and loader for a command. Callers must Close it.
func (o *rootOptions) env(cmd *cobra.Command) (*env, error) {
	s, err := o.settings(cmd)
	if err != nil {
		return nil, err
	}
	level, err := s.Level()
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	e := &env{settings: s, logger: logger}

	events := []vlog.Logger{vlog.NewSlogAdapter(logger)}
	if s.EventLog != "" {
		fl, err := vlog.NewFileLogger(s.EventLog)
		if err != nil {
			return nil, fmt.Errorf("opening event log: %w", err)
		}
		e.events = fl
		events = append(events, fl)
	}

	loaderOpts := []jsonconfig.Option{
		jsonconfig.WithLogger(logger),
		jsonconfig.WithEventLogger(vlog.NewMultiLogger(events...)),
	}
	if s.TestConstants {
		loaderOpts = append(loaderOpts, jsonconfig.WithTestConstants())
	}
	if len(s.Schemas) > 0 {
		loaderOpts = append(loaderOpts, jsonconfig.WithSchemaFiles(s.Schemas...))
	}
	if s.Flat {
		loaderOpts = append(loaderOpts, jsonconfig.WithFlat())
	}

	e.loader, err = jsonconfig.NewLoader(loaderOpts...)
	if err != nil {
		e.Close()
		return nil, err
	}
	return e, nil
}

// Close releases the event log.
func (e *env) Close() error {
	if e.events != nil {
		return e.events.Close()
	}
	return nil
}
