package drag

// Package drag implements pointer-driven reordering of a vertical list:
// hit-testing the pointer against item bounds, choosing the before/after
// insertion zone, and turning the drop position into a reorder call.
