//go:build linux || freebsd || openbsd || netbsd || dragonfly

package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const desktopEntryFile = "shortcuts.desktop"

// AutostartEntryPath returns $XDG_CONFIG_HOME/autostart/shortcuts.desktop
func AutostartEntryPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "autostart", desktopEntryFile), nil
}

// DesktopEntry renders the XDG autostart entry for exe
func DesktopEntry(exe string) string {
	var b strings.Builder
	b.WriteString("[Desktop Entry]\n")
	b.WriteString("Type=Application\n")
	b.WriteString("Name=" + AutostartName + "\n")
	b.WriteString("Exec=\"" + exe + "\"\n")
	b.WriteString("X-GNOME-Autostart-enabled=true\n")
	return b.String()
}

func autostartEnabled() (bool, error) {
	path, err := AutostartEntryPath()
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func setAutostart(enabled bool) error {
	path, err := AutostartEntryPath()
	if err != nil {
		return err
	}

	if !enabled {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to remove autostart: %w", err)
		}
		return nil
	}

	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to get exe path: %w", err)
	}
	if err := CreateDirectoryIfNotExists(filepath.Dir(path)); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(DesktopEntry(exe)), 0644); err != nil {
		return fmt.Errorf("failed to set autostart: %w", err)
	}
	return nil
}
