package cli

import (
	"context"
	"log"
	"strings"

	fyneapp "fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"github.com/quicklaunch/shortcuts/internal/backend"
	"github.com/quicklaunch/shortcuts/internal/config"
	"github.com/quicklaunch/shortcuts/internal/launcher"
	"github.com/quicklaunch/shortcuts/internal/platform"
	"github.com/quicklaunch/shortcuts/internal/ui"
)

const (
	AppID   = "com.quicklaunch.shortcuts"
	AppName = "Shortcuts"
)

// App carries the flags shared by every subcommand
type App struct {
	ConfigPath string
	Version    string

	// runGUI starts the desktop app; replaced in tests
	runGUI func(app *App, showSettings bool) error
}

// NewRootCmd builds the command tree
func NewRootCmd(version string) *cobra.Command {
	return newRootCmd(&App{Version: version, runGUI: runDesktop})
}

func newRootCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "shortcuts",
		Short:        "Tray launcher for applications, URLs, files, folders and scripts",
		Version:      app.Version,
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the tray launcher
  shortcuts

  # Open the settings editor
  shortcuts settings

  # Scriptable commands
  shortcuts list
  shortcuts export backup.yaml
  shortcuts launch Notepad
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runGUI(app, false)
		},
	}

	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", "", "Path to config.json (default: user config dir)")

	cmd.AddCommand(newSettingsCmd(app))
	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newExportCmd(app))
	cmd.AddCommand(newImportCmd(app))
	cmd.AddCommand(newLaunchCmd(app))

	return cmd
}

// Execute runs the root command with os.Args
func Execute(version string) error {
	return NewRootCmd(version).Execute()
}

func newSettingsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "settings",
		Short: "Open the settings editor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runGUI(app, true)
		},
	}
}

// configPath resolves the --config flag, falling back to the default location
func (a *App) configPath() string {
	if p := strings.TrimSpace(a.ConfigPath); p != "" {
		return p
	}
	return config.DefaultConfigPath()
}

// newService wires the backend over path with the OS launcher and autostart
func newService(path string) *backend.Service {
	return backend.NewService(config.NewFile(path), launcher.NewService(), platform.SystemAutostart{})
}

// runDesktop starts the fyne app and blocks until Quit
func runDesktop(app *App, showSettings bool) error {
	log.Printf("%s v%s starting...", AppName, app.Version)

	fyneApp := fyneapp.NewWithID(AppID)
	fyneApp.Settings().SetTheme(ui.NewCompactTheme())

	settings := config.NewSettings(fyneApp)
	path := strings.TrimSpace(app.ConfigPath)
	if path == "" {
		path = settings.GetConfigPath()
	}

	svc := newService(path)

	// first load writes the defaults so the directory exists for the watcher
	if _, err := svc.GetShortcuts(context.Background()); err != nil {
		log.Printf("Warning: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := svc.Watch(ctx); err != nil {
		log.Printf("Warning: config watch disabled: %v", err)
	}

	ui.NewApp(fyneApp, svc, settings).Run(showSettings)
	return nil
}
