package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"school/pkg/config"
	"school/pkg/course"
	"school/pkg/picker"
	"school/pkg/tui"
)

var openCmd = &cobra.Command{
	Use:   "open [course] [folder|website|notes]",
	Short: "Open a course's folder, website, or notes",
	Long: `Open a course with the configured handler. The course may be named by any
part of its name; when several match, a numbered picker is shown. Ending
input at the picker cancels quietly.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		courses, err := course.LoadDir(cfg.Courses)
		if err != nil {
			return err
		}
		if len(courses) == 0 {
			return fmt.Errorf("no courses found in '%s'", cfg.Courses)
		}

		matched := courses
		if len(args) > 0 {
			matched = nil
			query := strings.ToLower(args[0])
			for _, c := range courses {
				if strings.Contains(strings.ToLower(c.Name), query) {
					matched = append(matched, c)
				}
			}
			if len(matched) == 0 {
				return fmt.Errorf("no course matching '%s'", args[0])
			}
		}

		picked, ok := picker.Pick(matched, os.Stdin, os.Stdout)
		if !ok {
			return nil // end of input: a quiet cancellation
		}

		target := "folder"
		if len(args) > 1 {
			target = args[1]
		}
		return tui.Open(cfg, picked, target)
	},
}

func init() {
	rootCmd.AddCommand(openCmd)
}
