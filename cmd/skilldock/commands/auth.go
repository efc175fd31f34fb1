package commands

import (
	"github.com/spf13/cobra"
	"go.skilldock.io/skilldock/internal/adapters/config"
	"go.skilldock.io/skilldock/internal/ui/output"
)

func (c *CLI) newAuthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage registry authentication",
	}
	cmd.AddCommand(c.newAuthSetTokenCmd())
	cmd.AddCommand(c.newAuthStatusCmd())
	cmd.AddCommand(c.newAuthClearCmd())
	return cmd
}

func (c *CLI) newAuthSetTokenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-token <token>",
		Short: "Store the registry API token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := c.settings.Load()
			if err != nil {
				return err
			}
			settings.Token = args[0]
			if err := c.settings.Save(settings); err != nil {
				return err
			}
			output.New(cmd.OutOrStdout()).Success("Token saved to " + c.settings.Path())
			return nil
		},
	}
}

func (c *CLI) newAuthStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current authentication state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := c.settings.Load()
			if err != nil {
				return err
			}
			printer := output.New(cmd.OutOrStdout())
			printer.KeyValue("registry", settings.RegistryURL)
			if settings.Token == "" {
				printer.Info("Not authenticated")
				return nil
			}
			printer.KeyValue("token", config.RedactToken(settings.Token))
			return nil
		},
	}
}

func (c *CLI) newAuthClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Forget the stored registry API token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := c.settings.Load()
			if err != nil {
				return err
			}
			settings.Token = ""
			if err := c.settings.Save(settings); err != nil {
				return err
			}
			output.New(cmd.OutOrStdout()).Success("Token cleared")
			return nil
		},
	}
}
