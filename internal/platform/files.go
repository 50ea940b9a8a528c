package platform

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
	OSAndroid = "android"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
	CmdCommand      = "cmd"
	StartCommand    = "start"
)

// Command parameters
const (
	WindowsCmdFlag = "/C"
)

// File manager names
var (
	LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}
)

// OpenArgs returns the argv that opens target (a file or URL) with the
// default handler on goos
func OpenArgs(goos, target string) ([]string, error) {
	if target == "" {
		return nil, fmt.Errorf("target is empty")
	}

	switch goos {
	case OSDarwin:
		return []string{OpenCommand, target}, nil
	case OSWindows:
		// empty title argument so a quoted target is not taken as the window title
		return []string{CmdCommand, WindowsCmdFlag, StartCommand, "", target}, nil
	case OSLinux, "freebsd", "openbsd", "netbsd", "dragonfly":
		return []string{XDGOpenCommand, target}, nil
	default:
		return nil, fmt.Errorf("unsupported operating system: %s", goos)
	}
}

// RevealArgs returns the argv that shows dir in the file manager on goos
func RevealArgs(goos, dir string) ([]string, error) {
	if dir == "" {
		return nil, fmt.Errorf("folder path is empty")
	}

	switch goos {
	case OSWindows:
		return []string{ExplorerCommand, dir}, nil
	case OSLinux, "freebsd", "openbsd", "netbsd", "dragonfly":
		if _, err := exec.LookPath(XDGOpenCommand); err == nil {
			return []string{XDGOpenCommand, dir}, nil
		}
		for _, fm := range LinuxFileManagers {
			if _, err := exec.LookPath(fm); err == nil {
				return []string{fm, dir}, nil
			}
		}
		return nil, fmt.Errorf("no suitable file manager found")
	default:
		return OpenArgs(goos, dir)
	}
}

// OpenWithDefaultApp opens a file or URL with the default system application
func OpenWithDefaultApp(target string) error {
	argv, err := OpenArgs(runtime.GOOS, target)
	if err != nil {
		return err
	}
	return exec.Command(argv[0], argv[1:]...).Start()
}

// OpenFolder opens dir in the system file manager
func OpenFolder(dir string) error {
	argv, err := RevealArgs(runtime.GOOS, dir)
	if err != nil {
		return err
	}
	return exec.Command(argv[0], argv[1:]...).Start()
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}
