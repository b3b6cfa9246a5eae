// Command vhal-config checks, inspects and compiles vehicle property
// configuration files.
//
// Usage:
//
//	vhal-config <command> [flags]
//
// Commands:
//
//	check    Compile configuration files and report errors
//	dump     Print the compiled table with symbolic names
//	diff     Show a unified diff of two compiled configurations
//	compile  Write a compiled snapshot of a configuration
//	resolve  Resolve Type::Name constant references
//	shell    Explore a compiled configuration interactively
//	watch    Recompile a configuration whenever it changes
//	events   Print a recorded load event log
//
// Settings are read from vhal-config.yaml in the working directory, or from
// the file given with --config. Flags override settings.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rpi-demonstrator/vhal-go/cmd/vhal-config/commands"
)

// Version is set via ldflags during build.
var Version = "dev"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := commands.Execute(ctx, Version); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		cancel()
		os.Exit(1)
	}
}
