// Package ansi measures and aligns strings that may contain embedded
// ANSI color and style escape sequences, treating the sequences as
// zero-width. It deliberately recognizes only the escape grammar this
// application emits; anything else is left untouched.
package ansi

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
)

// sequence matches two-byte Fe escapes and CSI sequences. Unrecognized
// escapes are not stripped and count as visible text.
var sequence = regexp.MustCompile(`\x1b(?:[@-Z\\-_]|\[[0-?]*[ -/]*[@-~])`)

// widths must not depend on the RUNEWIDTH_EASTASIAN environment override
var cond = &runewidth.Condition{EastAsianWidth: false}

const reset = "\x1b[0m"

// Strip removes all recognized escape sequences from s.
func Strip(s string) string {
	return sequence.ReplaceAllString(s, "")
}

// Width returns the visible width of s, skipping escape sequences.
func Width(s string) int {
	return cond.StringWidth(Strip(s))
}

// PadRight left-justifies s to width visible cells.
func PadRight(s string, width int) string {
	if n := width - Width(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

// PadLeft right-justifies s to width visible cells.
func PadLeft(s string, width int) string {
	if n := width - Width(s); n > 0 {
		return strings.Repeat(" ", n) + s
	}
	return s
}

// Center pads s with the fill rune to width visible cells, splitting the
// extra evenly and putting any odd remainder on the trailing side.
func Center(s string, width int, fill rune) string {
	n := width - Width(s)
	if n <= 0 {
		return s
	}
	left := n / 2
	return strings.Repeat(string(fill), left) + s + strings.Repeat(string(fill), n-left)
}

// Color wraps s in a 256-color foreground sequence.
func Color(s string, color int) string {
	return fmt.Sprintf("\x1b[38;5;%dm%s%s", color, s, reset)
}

// Gray colors s with the dim gray used for table furniture.
func Gray(s string) string {
	return Color(s, 240)
}

// Bold makes s bold.
func Bold(s string) string {
	return "\x1b[1m" + s + reset
}

// Underline underlines s.
func Underline(s string) string {
	return "\x1b[4m" + s + reset
}

// Italic italicizes s.
func Italic(s string) string {
	return "\x1b[3m" + s + reset
}
