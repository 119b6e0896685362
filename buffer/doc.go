// Package buffer implements the pure document engine for Vellum: a flat rune
// sequence, the line index derived from it, a single cursor with
// sticky-column memory, and the viewport state that keeps the cursor inside
// the visible rectangle.
//
// Offsets are 0-based rune indices into the flat sequence. The cursor may
// sit at len(data), one past the last rune. The package performs no I/O and
// knows nothing about terminals.
package buffer
