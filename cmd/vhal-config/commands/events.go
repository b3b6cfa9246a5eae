package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	vlog "github.com/rpi-demonstrator/vhal-go/pkg/log"
)

func newEventsCommand() *cobra.Command {
	var (
		loadID    string
		category  string
		namespace string
		since     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "events <file.vlog>",
		Short: "Print a recorded load event log",
		Example: `  # Print every event
  vhal-config events loads.vlog

  # Only rejected properties of the last hour
  vhal-config events --category PROPERTY_REJECTED --since 1h loads.vlog`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := vlog.Filter{LoadID: loadID, Namespace: namespace}
			if category != "" {
				c, ok := vlog.ParseCategory(category)
				if !ok {
					return fmt.Errorf("unknown category %q", category)
				}
				filter.Category = &c
			}
			if since > 0 {
				start := time.Now().Add(-since)
				filter.TimeStart = &start
			}

			events, err := vlog.ReadEvents(args[0], filter)
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			out := cmd.OutOrStdout()
			for _, ev := range events {
				fmt.Fprintln(out, vlog.FormatEvent(ev))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&loadID, "load-id", "", "only events of this load")
	cmd.Flags().StringVar(&category, "category", "", "only events of this category (e.g. LOAD_FAILED)")
	cmd.Flags().StringVar(&namespace, "namespace", "", "only property events of this tier (system, vendor)")
	cmd.Flags().DurationVar(&since, "since", 0, "only events newer than this duration")
	return cmd
}
