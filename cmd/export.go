package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"school/pkg/config"
	"school/pkg/course"
	"school/pkg/exporter"
	"school/pkg/status"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export upcoming classes to an .ics calendar file",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		courses, err := course.LoadDir(cfg.Courses)
		if err != nil {
			return err
		}

		weeks, _ := cmd.Flags().GetInt("weeks")
		output, _ := cmd.Flags().GetString("output")
		if !strings.HasSuffix(output, ".ics") {
			output += ".ics"
		}

		events := course.Upcoming(courses, time.Now(), weeks*7)
		if len(events) == 0 {
			fmt.Println("No scheduled classes found.")
			return nil
		}

		file, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()

		if err := exporter.Generate(events, file); err != nil {
			return fmt.Errorf("failed to generate calendar: %w", err)
		}

		fmt.Println(status.SuccessLine(fmt.Sprintf("exported %d class events to %s", len(events), output)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringP("output", "o", "timetable.ics", "output file name")
	exportCmd.Flags().IntP("weeks", "w", 2, "how many weeks ahead to export")
}
