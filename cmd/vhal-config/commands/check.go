package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rpi-demonstrator/vhal-go/pkg/registration"
)

func newCheckCommand(opts *rootOptions) *cobra.Command {
	var register bool

	cmd := &cobra.Command{
		Use:   "check <file.json>...",
		Short: "Compile configuration files and report errors",
		Example: `  # Check one file
  vhal-config check properties.json

  # Check and register every property into an in-memory sink
  vhal-config check --register properties.json vendor.json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.env(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			out := cmd.OutOrStdout()
			failed := 0
			for _, path := range args {
				table, err := e.loader.LoadFile(path)
				if err != nil {
					failed++
					fmt.Fprintf(out, "FAIL %s\n  %s\n", path, strings.ReplaceAll(err.Error(), "\n", "\n  "))
					continue
				}

				if !register {
					fmt.Fprintf(out, "ok   %s: %d properties\n", path, len(table))
					continue
				}

				sink := registration.NewMemorySink()
				n, err := registration.Register(sink, table)
				if err != nil {
					failed++
					fmt.Fprintf(out, "FAIL %s: registered %d of %d\n  %s\n", path, n, len(table),
						strings.ReplaceAll(err.Error(), "\n", "\n  "))
					continue
				}
				fmt.Fprintf(out, "ok   %s: %d properties registered\n", path, n)
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d files failed", failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&register, "register", false, "register the compiled properties into an in-memory sink")
	return cmd
}
