// Package launch starts the user's configured handler programs (browser,
// editor, file manager) on a target.
package launch

import (
	"fmt"
	"os"
	"os/exec"
)

// Run starts the handler argv with target appended, attached to the current
// terminal, and waits for it to finish. Editors and terminal file managers
// need the tty; graphical browsers return immediately anyway.
func Run(handler []string, target string) error {
	if len(handler) == 0 {
		return fmt.Errorf("no handler configured")
	}

	args := append(append([]string{}, handler[1:]...), target)
	cmd := exec.Command(handler[0], args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("could not run %s: %w", handler[0], err)
	}
	return nil
}
