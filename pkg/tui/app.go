package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"school/pkg/config"
	"school/pkg/course"
	"school/pkg/table"
	"school/pkg/when"
)

var (
	// These act as fallbacks; Theme() re-derives the accent from the config.
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

// Theme builds the form theme, taking the accent from the first configured
// course type so the forms match the timetable's palette.
func Theme(cfg *config.Config) *huh.Theme {
	base := "39"
	if len(cfg.Types) > 0 {
		base = strconv.Itoa(cfg.Types[0].Color)
	}

	// Update the global lipgloss accent so plain print statements match too
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(base))

	t := huh.ThemeCharm()
	p := lipgloss.Color(base)

	t.Focused.Title = t.Focused.Title.Foreground(p).Bold(true)
	t.Focused.Base = t.Focused.Base.Border(lipgloss.RoundedBorder()).BorderForeground(p).Padding(0, 1)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(p)
	t.Focused.MultiSelectSelector = t.Focused.MultiSelectSelector.Foreground(p)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(p)
	t.Focused.SelectedPrefix = t.Focused.SelectedPrefix.Foreground(p)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(p)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(p)
	t.Focused.FocusedButton = t.Focused.FocusedButton.Foreground(lipgloss.Color("0")).Background(p)

	return t
}

// RunTUI launches the main menu.
func RunTUI(cfg *config.Config) error {
	courses, err := course.LoadDir(cfg.Courses)
	if err != nil {
		return err
	}

	var action string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("What would you like to do?").
				Options(
					huh.NewOption("📅 Show Timetable", "timetable"),
					huh.NewOption("⏰ Time Until Next Class", "next"),
					huh.NewOption("📂 Open a Course", "open"),
					huh.NewOption("🗓️ Export Calendar", "export"),
				).
				Value(&action),
		),
	).WithTheme(Theme(cfg))

	if err := form.Run(); err != nil {
		return err
	}

	switch action {
	case "next":
		return showNext(courses)
	case "open":
		return RunOpenTUI(cfg, courses)
	case "export":
		return RunExportTUI(cfg, courses)
	}
	return showTimetable(cfg, courses)
}

func showTimetable(cfg *config.Config, courses []course.Course) error {
	rows := course.TimetableRows(courses, cfg)
	if len(rows) == 0 {
		fmt.Println(errorStyle.Render("No scheduled classes found!"))
		return nil
	}
	for _, line := range table.Render(rows) {
		fmt.Println(line)
	}
	return nil
}

func showNext(courses []course.Course) error {
	occ, ok := course.NextSlot(courses, time.Now())
	if !ok {
		fmt.Println(errorStyle.Render("No scheduled classes found!"))
		return nil
	}

	fmt.Printf("%s %s (%s at %s)\n",
		accentStyle.Render(occ.Course.Name),
		when.Due(time.Until(occ.Start)),
		occ.Start.Weekday(),
		strings.TrimSpace(when.HHMM(occ.Slot.Start)),
	)
	return nil
}
