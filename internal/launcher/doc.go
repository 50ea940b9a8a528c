package launcher

// Package launcher turns a shortcut into an OS process: it expands
// environment references, splits argument strings, picks the interpreter
// for script files, writes inline shell scripts to temp files, and requests
// elevation where the platform supports it.
