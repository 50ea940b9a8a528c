package model

// Package model defines the shortcut record shared by every view and by the
// backend: the type enum, the canonical Shortcut value, and the normalization
// of raw form input into that value. Everything here is pure data and pure
// functions; no I/O happens in this package.
