//go:build !windows && !linux && !freebsd && !openbsd && !netbsd && !dragonfly

package platform

func autostartEnabled() (bool, error) {
	return false, nil
}

func setAutostart(bool) error {
	return ErrAutostartUnsupported
}
