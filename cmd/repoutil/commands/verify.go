package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/repoutil/internal/adapters/report"
	"go.trai.ch/repoutil/internal/core/domain"
)

func (c *CLI) newVerifyCmd() *cobra.Command {
	var flags scanFlags
	var format string

	cmd := &cobra.Command{
		Use:   "verify [root]",
		Short: "Check that package versions are consistent across all manifests",
		Long: "Scans every manifest under root. Floating packages must use one version " +
			"everywhere; static packages listed in " + domain.ConfigFileName +
			" must use one of their allowed versions.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := flags.options(cmd, args)
			opts.Format = format
			return c.app.Verify(cmd.Context(), opts)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "o", report.FormatText, "Report format: text or json")

	return cmd
}
