package commands

import (
	"time"

	"github.com/spf13/cobra"
	"go.trai.ch/repoutil/internal/adapters/watcher"
	"go.trai.ch/repoutil/internal/app"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	var flags scanFlags
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "watch [root]",
		Short: "Verify again whenever a manifest or the config changes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Watch(cmd.Context(), app.WatchOptions{
				VerifyOptions: flags.options(cmd, args),
				Debounce:      debounce,
			})
		},
	}

	flags.register(cmd)
	cmd.Flags().DurationVar(&debounce, "debounce", watcher.DefaultDebounceWindow, "Quiet period before verifying again")

	return cmd
}
