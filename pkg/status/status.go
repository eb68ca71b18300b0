// Package status formats the fixed success and failure lines the commands
// print before exiting.
package status

import "school/pkg/ansi"

// ErrorLine formats msg as the terminal failure line, optionally naming the
// document it came from.
func ErrorLine(msg, path string) string {
	head := ansi.Color(ansi.Bold("ERROR"), 9)
	if path != "" {
		head += ansi.Color(" in "+path, 9)
	}
	return head + ansi.Color(":", 9) + " " + msg
}

// SuccessLine formats msg as the terminal success line.
func SuccessLine(msg string) string {
	return ansi.Color("SUCCESS: ", 10) + msg
}
