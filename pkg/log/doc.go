// Package log provides structured load event capture for the configuration
// compiler.
//
// This package defines the Logger interface and Event type for recording
// what happened during a configuration load: which properties were accepted,
// which were rejected and why, and how the load ended. It is separate from
// operational logging (slog) - event capture provides a complete
// machine-readable trace for debugging configuration files.
//
// # Basic Usage
//
//	// For development: log to console via slog
//	loader, _ := jsonconfig.NewLoader(jsonconfig.WithEventLogger(log.NewSlogAdapter(slog.Default())))
//
//	// For CI: write to binary file
//	fl, _ := log.NewFileLogger("/tmp/props.vlog")
//	loader, _ := jsonconfig.NewLoader(jsonconfig.WithEventLogger(fl))
//
// # File Format
//
// Event files use CBOR encoding with .vlog extension. The "vhal-config events"
// command prints them.
package log
