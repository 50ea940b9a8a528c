package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "export <path>",
		Short: "Write the shortcuts to a JSON or YAML file",
		Long:  "Write the shortcuts to a file. A .yaml or .yml extension selects YAML, anything else JSON.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := newService(app.configPath()).ExportConfig(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported to %s\n", args[0])
			return nil
		},
	}
}

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <path>",
		Short: "Replace the shortcuts with the contents of a JSON or YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := newService(app.configPath())
			if err := svc.ImportConfig(cmd.Context(), args[0]); err != nil {
				return err
			}
			list, err := svc.GetShortcuts(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d shortcuts from %s\n", len(list), args[0])
			return nil
		},
	}
}
