package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"

	"school/pkg/config"
	"school/pkg/course"
	"school/pkg/exporter"
)

// RunExportTUI runs the interactive flow for choosing courses and exporting
// their upcoming classes to an .ics file.
func RunExportTUI(cfg *config.Config, courses []course.Course) error {
	if len(courses) == 0 {
		fmt.Println(errorStyle.Render("No courses found!"))
		return nil
	}

	var courseOptions []huh.Option[string]
	for _, c := range courses {
		courseOptions = append(courseOptions, huh.NewOption(c.String(), c.Name).Selected(true))
	}

	var selected []string
	outputFile := "timetable.ics"
	weeksStr := "2"

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Select courses to export").
				Description("Space = toggle, Enter = confirm").
				Options(courseOptions...).
				Value(&selected).
				Height(10),

			huh.NewInput().
				Title("How many weeks ahead?").
				Value(&weeksStr).
				Validate(func(s string) error {
					var n int
					if _, err := fmt.Sscanf(s, "%d", &n); err != nil || n < 1 || n > 52 {
						return fmt.Errorf("please enter a number between 1 and 52")
					}
					return nil
				}),

			huh.NewInput().
				Title("Output file name").
				Value(&outputFile).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("file name cannot be empty")
					}
					return nil
				}),
		),
	).WithTheme(Theme(cfg))

	if err := form.Run(); err != nil {
		return err
	}

	if !strings.HasSuffix(outputFile, ".ics") {
		outputFile += ".ics"
	}

	var weeks int
	fmt.Sscanf(weeksStr, "%d", &weeks)

	selectedMap := make(map[string]bool)
	for _, name := range selected {
		selectedMap[name] = true
	}

	var filtered []course.Course
	for _, c := range courses {
		if selectedMap[c.Name] {
			filtered = append(filtered, c)
		}
	}

	if len(filtered) == 0 {
		fmt.Println(errorStyle.Render("No courses selected!"))
		return nil
	}

	var exportErr error
	var count int

	_ = spinner.New().
		Title("Generating calendar...").
		Action(func() {
			events := course.Upcoming(filtered, time.Now(), weeks*7)
			count = len(events)

			file, err := os.Create(outputFile)
			if err != nil {
				exportErr = fmt.Errorf("failed to create output file: %w", err)
				return
			}
			defer file.Close()

			exportErr = exporter.Generate(events, file)
		}).
		Run()

	if exportErr != nil {
		return exportErr
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\nSuccess! Exported %d class events to %s", count, outputFile)))
	return nil
}
