package store

// Package store holds the settings editor's read-only projection of the
// backend shortcut list.
