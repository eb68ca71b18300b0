package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"school/pkg/schema"
	"school/pkg/status"
)

var rootCmd = &cobra.Command{
	Use:   "school",
	Short: "A CLI for a student's courses",
	Long: `school keeps one YAML file per course in a courses folder and answers
the everyday questions: what does the week look like, when is the next
class, and how do I open a course's folder, website, or notes.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. Any error becomes a single ERROR line naming the offending
// document when one is known, and a non-zero exit.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(status.ErrorLine(err.Error(), schema.Source(err)))
		os.Exit(1)
	}
}
