/*
File    : weave/style/style.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package style centralizes the color/emphasis conventions used when
// rendering REPL output and diagnostics, grounded on the original
// implementation's style.rs (bold/yellow/emphasize) but built on
// fatih/color, the teacher's own terminal-color dependency, instead of
// the original's termion crate.
package style

import "github.com/fatih/color"

var (
	boldColor   = color.New(color.Bold)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	cyanColor   = color.New(color.FgCyan)
)

// Bold renders s in bold.
func Bold(s string) string {
	return boldColor.Sprint(s)
}

// Yellow renders s in yellow, the teacher's convention for REPL results.
func Yellow(s string) string {
	return yellowColor.Sprint(s)
}

// Red renders s in red, the teacher's convention for error output.
func Red(s string) string {
	return redColor.Sprint(s)
}

// Cyan renders s in cyan, the teacher's convention for banner/prompt text.
func Cyan(s string) string {
	return cyanColor.Sprint(s)
}

// Emphasize is bold yellow, matching the original implementation's
// style::emphasize = bold(yellow(s)) used to highlight hints in parse
// error output.
func Emphasize(s string) string {
	return Bold(Yellow(s))
}
