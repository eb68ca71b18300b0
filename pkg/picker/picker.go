// Package picker resolves a user's textual choice to one element of a
// numbered list read from a line-oriented input.
package picker

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Pick presents choices as a 1-based numbered list on out and reads replies
// from in until one resolves. A single candidate is returned immediately
// without any I/O. Blank input selects the first choice; input that does not
// parse to an in-range number is re-prompted without comment. ok is false
// when the input ends before a choice was made, which callers treat as a
// deliberate cancellation, not an error.
func Pick[T any](choices []T, in io.Reader, out io.Writer) (picked T, ok bool) {
	if len(choices) == 1 {
		return choices[0], true
	}

	for i, c := range choices {
		fmt.Fprintf(out, "%d) %v\n", i+1, c)
	}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "Pick one (leave blank for 1): ")
		if !scanner.Scan() {
			return picked, false
		}

		line := scanner.Text()
		if line == "" {
			return choices[0], true
		}

		n, err := strconv.Atoi(line)
		if err != nil || n < 1 || n > len(choices) {
			continue
		}
		return choices[n-1], true
	}
}
