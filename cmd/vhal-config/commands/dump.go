package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rpi-demonstrator/vhal-go/pkg/inspect"
)

func newDumpCommand(opts *rootOptions) *cobra.Command {
	var (
		property string
		list     bool
		summary  bool
		noIDs    bool
	)

	cmd := &cobra.Command{
		Use:   "dump <file.json>",
		Short: "Print the compiled table with symbolic names",
		Example: `  # Print every declaration
  vhal-config dump properties.json

  # Print one property
  vhal-config dump -p INFO_VIN properties.json

  # One line per property
  vhal-config dump --list properties.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.env(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			table, err := e.loader.LoadFile(args[0])
			if err != nil {
				return err
			}

			insp := inspect.NewInspector(table, e.loader.VendorRegistry())
			insp.Formatter().ShowIDs = !noIDs

			out := cmd.OutOrStdout()
			switch {
			case property != "":
				text, err := insp.Show(property)
				if err != nil {
					return err
				}
				fmt.Fprint(out, text)
			case list:
				fmt.Fprint(out, insp.FormatList())
			case summary:
				fmt.Fprint(out, insp.Summary())
			default:
				fmt.Fprint(out, insp.Formatter().FormatTable(table))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&property, "property", "p", "", "print only this property (name, Type::Name or id)")
	cmd.Flags().BoolVar(&list, "list", false, "print one line per property")
	cmd.Flags().BoolVar(&summary, "summary", false, "print property counts")
	cmd.Flags().BoolVar(&noIDs, "no-ids", false, "omit numeric ids next to names")
	return cmd
}
