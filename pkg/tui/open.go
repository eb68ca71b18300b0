package tui

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"school/pkg/config"
	"school/pkg/course"
	"school/pkg/launch"
)

// RunOpenTUI lets the user pick a course and a target to open with the
// configured handlers.
func RunOpenTUI(cfg *config.Config, courses []course.Course) error {
	if len(courses) == 0 {
		fmt.Println(errorStyle.Render("No courses found!"))
		return nil
	}

	var courseOptions []huh.Option[int]
	for i, c := range courses {
		courseOptions = append(courseOptions, huh.NewOption(c.String(), i))
	}

	var picked int
	var target string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Which course?").
				Options(courseOptions...).
				Value(&picked),

			huh.NewSelect[string]().
				Title("Open what?").
				Options(
					huh.NewOption("📂 Folder", "folder"),
					huh.NewOption("🌍 Website", "website"),
					huh.NewOption("📝 Notes", "notes"),
				).
				Value(&target),
		),
	).WithTheme(Theme(cfg))

	if err := form.Run(); err != nil {
		return err
	}

	return Open(cfg, courses[picked], target)
}

// Open launches the handler matching target for the given course.
func Open(cfg *config.Config, c course.Course, target string) error {
	switch target {
	case "website":
		if c.Website == "" {
			return fmt.Errorf("course '%s' has no website", c.Name)
		}
		return launch.Run(cfg.Browser, c.Website)
	case "notes":
		return launch.Run(cfg.Editor, c.Path)
	default:
		return launch.Run(cfg.Files, cfg.Courses)
	}
}
