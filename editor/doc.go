// Package editor provides the Bubble Tea text editing component backed by
// the buffer package.
//
// The package is responsible for key handling, layout, rendering (content
// area, line number gutter, status line, help row), and file load/save. It
// can run as the root model of a program or be embedded in a larger one.
package editor
