package form

// Package form is the add/edit shortcut state machine: a raw input buffer
// kept across type changes, the per-type field visibility table, picker
// routing, submit through normalization, and confirmed delete.
