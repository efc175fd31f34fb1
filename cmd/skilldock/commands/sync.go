package commands

import (
	"github.com/spf13/cobra"
	"go.skilldock.io/skilldock/internal/core/domain"
	"go.skilldock.io/skilldock/internal/ui/output"
)

func (c *CLI) newSyncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Reconcile installed skills against the manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			watch, _ := cmd.Flags().GetBool("watch")
			printer := output.New(cmd.OutOrStdout())

			if !watch {
				result, err := c.app.Sync(cmd.Context())
				if err != nil {
					return err
				}
				printer.Summary(result)
				return nil
			}

			printer.Info("Watching manifest for changes. Press Ctrl-C to stop.")
			return c.app.SyncWatch(cmd.Context(), func(result *domain.ReconcileResult, err error) {
				if err != nil {
					printer.Error(err.Error())
					return
				}
				printer.Summary(result)
			})
		},
	}
	cmd.Flags().BoolP("watch", "w", false, "Keep running and re-sync when the manifest changes")
	return cmd
}
