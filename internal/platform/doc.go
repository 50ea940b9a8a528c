package platform

// Package platform contains OS integration: opening files, URLs and folders
// with the system handlers, directory helpers, and the launch-at-login entry.
