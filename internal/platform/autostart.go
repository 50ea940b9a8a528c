package platform

import "errors"

// AutostartName is the registry value / desktop entry name used for launch at login
const AutostartName = "Shortcuts"

// ErrAutostartUnsupported is returned where no launch-at-login mechanism is known
var ErrAutostartUnsupported = errors.New("autostart is not supported on this platform")

// SystemAutostart reads and writes the current user's launch-at-login entry
// for the running executable
type SystemAutostart struct{}

// Enabled reports whether the entry exists
func (SystemAutostart) Enabled() (bool, error) {
	return autostartEnabled()
}

// SetEnabled creates or removes the entry
func (SystemAutostart) SetEnabled(enabled bool) error {
	return setAutostart(enabled)
}
