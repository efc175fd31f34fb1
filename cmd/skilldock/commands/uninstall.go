package commands

import (
	"github.com/spf13/cobra"
	"go.skilldock.io/skilldock/internal/ui/output"
)

func (c *CLI) newUninstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "uninstall <namespace/slug>",
		Short: "Remove a skill and prune unused dependencies",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := c.app.Uninstall(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			output.New(cmd.OutOrStdout()).Summary(result)
			return nil
		},
	}
}
