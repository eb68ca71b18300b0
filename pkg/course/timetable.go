package course

import (
	"sort"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"school/pkg/ansi"
	"school/pkg/config"
	"school/pkg/table"
	"school/pkg/when"
)

// weekOrder is the display order of timetable sections.
var weekOrder = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}

// TimetableRows groups the courses by weekday and lays each day out as a
// captioned section followed by one row per class, sorted by start time.
// Days without classes are skipped entirely.
func TimetableRows(courses []Course, cfg *config.Config) []table.Row {
	type entry struct {
		c Course
		s Slot
	}

	byDay := make(map[time.Weekday][]entry)
	for _, c := range courses {
		for _, s := range c.Slots {
			byDay[s.Day] = append(byDay[s.Day], entry{c, s})
		}
	}

	title := cases.Title(language.English)

	var rows []table.Row
	for _, day := range weekOrder {
		entries := byDay[day]
		if len(entries) == 0 {
			continue
		}

		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].s.Start < entries[j].s.Start
		})

		rows = append(rows, table.Section(day.String()))
		for _, e := range entries {
			name := e.c.Name
			if t, ok := cfg.TypeNamed(e.c.Type); ok {
				name = ansi.Color(name, t.Color)
			}

			rows = append(rows, table.Data(
				when.HHMM(e.s.Start)+" - "+when.HHMM(e.s.End),
				name,
				ansi.Italic(title.String(e.c.Type)),
				ansi.Gray(e.c.Room),
			))
		}
	}
	return rows
}
