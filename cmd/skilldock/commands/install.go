package commands

import (
	"github.com/spf13/cobra"
	"go.skilldock.io/skilldock/internal/ui/output"
)

func (c *CLI) newInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install <namespace/slug>[@<version>]",
		Short: "Install a skill and its dependencies",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			requirement, _ := cmd.Flags().GetString("version")

			result, err := c.app.Install(cmd.Context(), args[0], requirement)
			if err != nil {
				return err
			}
			output.New(cmd.OutOrStdout()).Summary(result)
			return nil
		},
	}
	cmd.Flags().String("version", "", "Version requirement (e.g. ^1.2.0, =2.0.0, latest)")
	return cmd
}
