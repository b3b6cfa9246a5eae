package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rpi-demonstrator/vhal-go/pkg/inspect"
)

func newDiffCommand(opts *rootOptions) *cobra.Command {
	var brief bool

	cmd := &cobra.Command{
		Use:   "diff <old.json> <new.json>",
		Short: "Show a unified diff of two compiled configurations",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.env(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			from, err := e.loader.LoadFile(args[0])
			if err != nil {
				return err
			}
			to, err := e.loader.LoadFile(args[1])
			if err != nil {
				return err
			}

			f := inspect.NewFormatter(e.loader.VendorRegistry())
			out := cmd.OutOrStdout()

			if brief {
				changes := f.Compare(from, to)
				if changes.Empty() {
					fmt.Fprintln(out, "no differences")
					return nil
				}
				for _, id := range changes.Added {
					fmt.Fprintf(out, "+ %s\n", f.FormatProperty(id))
				}
				for _, id := range changes.Removed {
					fmt.Fprintf(out, "- %s\n", f.FormatProperty(id))
				}
				for _, id := range changes.Modified {
					fmt.Fprintf(out, "~ %s\n", f.FormatProperty(id))
				}
				return nil
			}

			diff, err := f.Diff(args[0], args[1], from, to)
			if err != nil {
				return fmt.Errorf("computing diff: %w", err)
			}
			if diff == "" {
				fmt.Fprintln(out, "no differences")
				return nil
			}
			fmt.Fprint(out, diff)
			return nil
		},
	}

	cmd.Flags().BoolVar(&brief, "brief", false, "list added, removed and modified properties only")
	return cmd
}
