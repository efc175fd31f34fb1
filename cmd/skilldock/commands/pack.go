package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.skilldock.io/skilldock/internal/core/domain"
	"go.skilldock.io/skilldock/internal/core/ports"
	"go.skilldock.io/skilldock/internal/ui/output"
	"go.trai.ch/zerr"
)

func (c *CLI) newPackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pack <folder>",
		Short: "Zip a local skill folder into an uploadable archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("name")
			outPath, _ := cmd.Flags().GetString("output")

			pkg, err := c.app.Pack(args[0], ports.PackageOptions{TopLevelDir: name})
			if err != nil {
				return err
			}

			if outPath == "" {
				abs, err := filepath.Abs(args[0])
				if err != nil {
					return zerr.Wrap(err, domain.ErrPackageRootInvalid.Error())
				}
				outPath = filepath.Base(abs) + ".zip"
			}
			if err := os.WriteFile(outPath, pkg.ZipBytes, domain.FilePerm); err != nil {
				return zerr.Wrap(err, "failed to write archive")
			}

			printer := output.New(cmd.OutOrStdout())
			printer.Success("Packaged " + outPath)
			printer.KeyValue("files", fmt.Sprintf("%d", pkg.FileCount))
			printer.KeyValue("size", fmt.Sprintf("%d bytes", pkg.SizeBytes))
			printer.KeyValue("sha256", pkg.SHA256)
			for _, warning := range pkg.Warnings {
				printer.Warning(warning)
			}
			return nil
		},
	}
	cmd.Flags().StringP("name", "n", "", "Top-level folder name inside the archive")
	cmd.Flags().StringP("output", "o", "", "Archive file to write (defaults to <folder>.zip)")
	return cmd
}
