package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quicklaunch/shortcuts/internal/model"
)

func newLaunchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "launch <index|name>",
		Short: "Launch a shortcut by list position or name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := newService(app.configPath())
			list, err := svc.GetShortcuts(cmd.Context())
			if err != nil {
				return err
			}

			s, err := findShortcut(list, args[0])
			if err != nil {
				return err
			}
			if err := svc.LaunchShortcut(cmd.Context(), s); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "launched %s\n", s.Name)
			return nil
		},
	}
}

// findShortcut resolves a list index first, then a case-insensitive name
func findShortcut(list []model.Shortcut, ref string) (model.Shortcut, error) {
	ref = strings.TrimSpace(ref)
	if i, err := strconv.Atoi(ref); err == nil {
		if i < 0 || i >= len(list) {
			return model.Shortcut{}, fmt.Errorf("index %d out of range (len %d)", i, len(list))
		}
		return list[i], nil
	}

	for _, s := range list {
		if strings.EqualFold(s.Name, ref) {
			return s, nil
		}
	}
	return model.Shortcut{}, fmt.Errorf("no shortcut named %q", ref)
}
