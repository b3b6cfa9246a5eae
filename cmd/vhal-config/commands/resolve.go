package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rpi-demonstrator/vhal-go/pkg/constants"
)

func newResolveCommand(opts *rootOptions) *cobra.Command {
	var (
		system  bool
		reverse string
	)

	cmd := &cobra.Command{
		Use:   "resolve <Type::Name>...",
		Short: "Resolve Type::Name constant references",
		Example: `  # Resolve constants against the vendor registry
  vhal-config resolve Constants::HVAC_ALL VehicleGear::GEAR_PARK

  # Only system tags are known with --system
  vhal-config resolve --system VendorVehicleProperty::AMBIENT_LIGHT_MODE

  # Reverse lookup
  vhal-config resolve --name VehicleGear 4`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.env(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			reg := e.loader.VendorRegistry()
			if system {
				reg = e.loader.SystemRegistry()
			}

			out := cmd.OutOrStdout()
			failed := 0
			for _, arg := range args {
				if reverse != "" {
					v, err := strconv.ParseInt(arg, 0, 64)
					if err != nil {
						return fmt.Errorf("invalid value %q: %w", arg, err)
					}
					name, ok := reg.NameOf(reverse, v)
					if !ok {
						failed++
						fmt.Fprintf(out, "%s: no %s name\n", arg, reverse)
						continue
					}
					fmt.Fprintf(out, "%s = %s::%s\n", arg, reverse, name)
					continue
				}

				ref, ok := constants.ParseRef(arg)
				if !ok {
					failed++
					fmt.Fprintf(out, "%s: not a Type::Name reference\n", arg)
					continue
				}
				v, err := reg.ResolveRef(ref)
				if err != nil {
					failed++
					fmt.Fprintf(out, "%s: %v\n", arg, err)
					continue
				}
				fmt.Fprintf(out, "%s = %#x (%d)\n", ref, v, v)
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d lookups failed", failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&system, "system", false, "resolve against the system registry only")
	cmd.Flags().StringVar(&reverse, "name", "", "look up names of numeric values under this tag")
	return cmd
}
