package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.skilldock.io/skilldock/internal/adapters/config"
	"go.skilldock.io/skilldock/internal/ui/output"
	"go.trai.ch/zerr"
)

func (c *CLI) newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the skilldock configuration",
	}
	cmd.AddCommand(c.newConfigPathCmd())
	cmd.AddCommand(c.newConfigShowCmd())
	cmd.AddCommand(c.newConfigSetCmd())
	return cmd
}

func (c *CLI) newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), c.settings.Path())
		},
	}
}

func (c *CLI) newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := c.settings.Load()
			if err != nil {
				return err
			}
			printer := output.New(cmd.OutOrStdout())
			printer.KeyValue("path", c.settings.Path())
			printer.KeyValue("registry", settings.RegistryURL)
			printer.KeyValue("token", config.RedactToken(settings.Token))
			return nil
		},
	}
}

func (c *CLI) newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value (registry-url or token)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := c.settings.Load()
			if err != nil {
				return err
			}

			switch args[0] {
			case "registry-url":
				settings.RegistryURL = args[1]
			case "token":
				settings.Token = args[1]
			default:
				return zerr.New(fmt.Sprintf("unknown configuration key %q, expected registry-url or token", args[0]))
			}

			if err := c.settings.Save(settings); err != nil {
				return err
			}
			output.New(cmd.OutOrStdout()).Success("Updated " + args[0])
			return nil
		},
	}
}
