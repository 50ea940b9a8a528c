package cli

// Package cli is the command-line entry point. With no subcommand it starts
// the tray application; the list, export, import and launch subcommands work
// on the config file directly without a window.
