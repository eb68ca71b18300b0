package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"school/pkg/config"
	"school/pkg/course"
	"school/pkg/table"
)

var timetableCmd = &cobra.Command{
	Use:     "timetable",
	Aliases: []string{"tt"},
	Short:   "Show the weekly timetable",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		courses, err := course.LoadDir(cfg.Courses)
		if err != nil {
			return err
		}

		rows := course.TimetableRows(courses, cfg)
		if len(rows) == 0 {
			fmt.Println("No scheduled classes found.")
			return nil
		}

		for _, line := range table.Render(rows) {
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(timetableCmd)
}
