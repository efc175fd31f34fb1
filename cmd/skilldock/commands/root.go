// Package commands implements the CLI commands for skilldock.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.skilldock.io/skilldock/internal/app"
	"go.skilldock.io/skilldock/internal/build"
	"go.skilldock.io/skilldock/internal/core/domain"
	"go.skilldock.io/skilldock/internal/core/ports"
)

// CLI represents the command line interface for skilldock.
type CLI struct {
	app      Application
	settings ports.SettingsStore
	rootCmd  *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Install(ctx context.Context, skillArg, requirement string) (*domain.ReconcileResult, error)
	Uninstall(ctx context.Context, skillArg string) (*domain.ReconcileResult, error)
	Sync(ctx context.Context) (*domain.ReconcileResult, error)
	SyncWatch(ctx context.Context, onPass func(*domain.ReconcileResult, error)) error
	List() ([]app.ListEntry, error)
	Pack(root string, opts ports.PackageOptions) (ports.SkillPackage, error)
}

// New creates a new CLI instance with the given app and settings store.
func New(a Application, settings ports.SettingsStore) *CLI {
	rootCmd := &cobra.Command{
		Use:           "skilldock",
		Short:         "A package manager for agent skills",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:      a,
		settings: settings,
		rootCmd:  rootCmd,
	}

	rootCmd.AddCommand(c.newInstallCmd())
	rootCmd.AddCommand(c.newUninstallCmd())
	rootCmd.AddCommand(c.newSyncCmd())
	rootCmd.AddCommand(c.newListCmd())
	rootCmd.AddCommand(c.newPackCmd())
	rootCmd.AddCommand(c.newAuthCmd())
	rootCmd.AddCommand(c.newConfigCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
