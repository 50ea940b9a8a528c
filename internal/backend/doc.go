package backend

// Package backend is the authoritative owner of the shortcut list. It
// persists the list to the JSON config file, launches shortcuts, toggles
// launch at login, and publishes a reload event whenever the list changes,
// either through its own operations or through an external edit of the file.
