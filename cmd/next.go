package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"school/pkg/ansi"
	"school/pkg/config"
	"school/pkg/course"
	"school/pkg/when"
)

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Show when the next class starts",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		courses, err := course.LoadDir(cfg.Courses)
		if err != nil {
			return err
		}

		occ, ok := course.NextSlot(courses, time.Now())
		if !ok {
			fmt.Println("No scheduled classes found.")
			return nil
		}

		name := occ.Course.Name
		if t, ok := cfg.TypeNamed(occ.Course.Type); ok {
			name = ansi.Color(name, t.Color)
		}

		where := ""
		if occ.Course.Room != "" {
			where = ", " + ansi.Gray(occ.Course.Room)
		}

		fmt.Printf("%s %s (%s at %s%s)\n",
			ansi.Bold(name),
			when.Due(time.Until(occ.Start)),
			occ.Start.Weekday(),
			strings.TrimSpace(when.HHMM(occ.Slot.Start)),
			where,
		)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(nextCmd)
}
