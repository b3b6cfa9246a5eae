package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/rpi-demonstrator/vhal-go/pkg/snapshot"
)

func newCompileCommand(opts *rootOptions) *cobra.Command {
	var (
		output string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "compile <file.json>",
		Short: "Write a compiled snapshot of a configuration",
		Long: `Compile a configuration and store the resulting table as a CBOR snapshot.
The snapshot records a digest of the source; an up-to-date snapshot is left
untouched unless --force is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.env(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			if output == "" {
				output = e.settings.Snapshot
			}
			store := snapshot.NewStore(output)
			out := cmd.OutOrStdout()

			src, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			if !force {
				snap, err := store.LoadFresh(src)
				switch {
				case err == nil && snap != nil:
					fmt.Fprintf(out, "%s is up to date (%d properties)\n", store.Path(), len(snap.Declarations))
					return nil
				case err != nil && !errors.Is(err, snapshot.ErrStale):
					e.logger.Warn("ignoring unreadable snapshot", "path", store.Path(), "error", err)
				}
			}

			table, err := e.loader.LoadBytes(src)
			if err != nil {
				return err
			}

			snap := snapshot.New(table, src, uuid.NewString())
			if err := store.Save(snap); err != nil {
				return err
			}
			fmt.Fprintf(out, "wrote %s (%d properties)\n", store.Path(), len(table))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "snapshot path (default from settings)")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "rewrite the snapshot even if it is up to date")
	return cmd
}
