// Package commands implements the vhal-config subcommands.
package commands

import (
	"context"

	"github.com/spf13/cobra"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	configPath    string
	schemas       []string
	testConstants bool
	logLevel      string
	eventLog      string
	flat          bool
}

// Execute runs the root command.
func Execute(ctx context.Context, version string) error {
	return NewRootCommand(version).ExecuteContext(ctx)
}

// NewRootCommand builds the command tree.
func NewRootCommand(version string) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "vhal-config",
		Short: "Vehicle property configuration compiler",
		Long: `vhal-config compiles JSON vehicle property configurations into typed
declaration tables, resolving Type::Name constant references at load time.

Properties named VehicleProperty::* are resolved against the system
registry, VendorVehicleProperty::* against the vendor registry.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "settings file (default "+DefaultSettingsFile+")")
	flags.StringSliceVar(&opts.schemas, "schema", nil, "extra enumeration schema file (repeatable)")
	flags.BoolVar(&opts.testConstants, "test-constants", false, "include test-only named constants")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&opts.eventLog, "event-log", "", "append load events to this CBOR log file")
	flags.BoolVar(&opts.flat, "flat", false, "parse every property against the system registry")

	rootCmd.AddCommand(newCheckCommand(opts))
	rootCmd.AddCommand(newDumpCommand(opts))
	rootCmd.AddCommand(newDiffCommand(opts))
	rootCmd.AddCommand(newCompileCommand(opts))
	rootCmd.AddCommand(newResolveCommand(opts))
	rootCmd.AddCommand(newShellCommand(opts))
	rootCmd.AddCommand(newWatchCommand(opts))
	rootCmd.AddCommand(newEventsCommand())

	return rootCmd
}
