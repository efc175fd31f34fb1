package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.skilldock.io/skilldock/internal/app"
	"go.skilldock.io/skilldock/internal/ui/output"
)

func (c *CLI) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List locked skills and their installed state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries, err := c.app.List()
			if err != nil {
				return err
			}

			printer := output.New(cmd.OutOrStdout())
			if len(entries) == 0 {
				printer.Info("No skills installed")
				return nil
			}

			for _, entry := range entries {
				printer.Item(formatListEntry(entry))
			}
			return nil
		},
	}
}

func formatListEntry(entry app.ListEntry) string {
	line := fmt.Sprintf("%s@%s", entry.Key, entry.Version)
	if entry.Direct {
		line += fmt.Sprintf(" (requested: %s)", entry.Requirement)
	} else {
		line += " (dependency)"
	}
	if !entry.Installed {
		line += " [missing on disk]"
	}
	return line
}
