package cmd

import (
	"github.com/spf13/cobra"

	"school/pkg/config"
	"school/pkg/tui"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Launch the interactive menu",
	Long:  `Launch the interactive menu to browse the timetable, open courses, and export the schedule.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		return tui.RunTUI(cfg)
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
