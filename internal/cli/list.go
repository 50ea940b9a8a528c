package cli

import (
	"fmt"
	"image/color"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/quicklaunch/shortcuts/internal/model"
	"github.com/quicklaunch/shortcuts/internal/registry"
)

// columnGap separates the list columns
const columnGap = 2

func newListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the shortcuts in launcher order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := newService(app.configPath()).GetShortcuts(cmd.Context())
			if err != nil {
				return err
			}
			return writeList(cmd.OutOrStdout(), list)
		},
	}
}

// writeList prints "index  type  name  subtitle" per shortcut. The type is
// tinted with its registry color when out is a terminal.
func writeList(out io.Writer, list []model.Shortcut) error {
	r := lipgloss.NewRenderer(out)

	rows := make([][4]string, 0, len(list))
	var widths [3]int
	for i, s := range list {
		row := [4]string{strconv.Itoa(i), registry.For(s).Label, s.Name, registry.Subtitle(s)}
		for c := range widths {
			widths[c] = max(widths[c], lipgloss.Width(row[c]))
		}
		rows = append(rows, row)
	}

	for i, row := range rows {
		entry := registry.For(list[i])
		cells := []string{
			r.NewStyle().Width(widths[0] + columnGap).Render(row[0]),
			r.NewStyle().Width(widths[1] + columnGap).Foreground(hexColor(entry.ColorFrom)).Bold(true).Render(row[1]),
			r.NewStyle().Width(widths[2] + columnGap).Render(row[2]),
			r.NewStyle().Faint(true).Render(row[3]),
		}
		if _, err := fmt.Fprintln(out, lipgloss.JoinHorizontal(lipgloss.Top, cells...)); err != nil {
			return err
		}
	}
	return nil
}

func hexColor(c color.NRGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}
