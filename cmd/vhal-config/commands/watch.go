package commands

import (
	"fmt"
	"sync"

	"github.com/spf13/cobra"

	"github.com/rpi-demonstrator/vhal-go/pkg/inspect"
	"github.com/rpi-demonstrator/vhal-go/pkg/vehicle"
	"github.com/rpi-demonstrator/vhal-go/pkg/watch"
)

func newWatchCommand(opts *rootOptions) *cobra.Command {
	var signals bool

	cmd := &cobra.Command{
		Use:   "watch <file.json>",
		Short: "Recompile a configuration whenever it changes",
		Long: `Compile a configuration, then recompile it each time the file is written.
A failed recompilation is reported and the previous table is kept. Added,
removed and modified properties are printed after every successful reload.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.env(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			h, err := watch.NewHolder(args[0], e.loader, e.logger)
			if err != nil {
				return err
			}
			defer h.Stop()

			out := cmd.OutOrStdout()
			f := inspect.NewFormatter(e.loader.VendorRegistry())
			prev := h.Table()
			fmt.Fprintf(out, "loaded %s: %d properties\n", h.Path(), len(prev))

			var mu sync.Mutex
			h.OnChange(func(next vehicle.Table) {
				mu.Lock()
				defer mu.Unlock()
				changes := f.Compare(prev, next)
				prev = next
				fmt.Fprintf(out, "reloaded %s: %d properties (+%d -%d ~%d)\n", h.Path(), len(next),
					len(changes.Added), len(changes.Removed), len(changes.Modified))
			})

			if err := h.WatchFile(); err != nil {
				return err
			}
			if signals {
				h.WatchSignals()
			}

			<-cmd.Context().Done()
			return nil
		},
	}

	cmd.Flags().BoolVar(&signals, "sighup", true, "also reload on SIGHUP")
	return cmd
}
