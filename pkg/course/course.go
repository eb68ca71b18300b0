// Package course loads the per-course YAML files from the courses folder
// and answers schedule questions about them.
package course

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"school/pkg/schema"
	"school/pkg/when"
)

// weekdays maps the day names accepted in schedule entries.
var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// Schema declares the strict shape of a course file. Only the schedule entry
// internals are required; everything else may be left out.
func Schema() schema.Record {
	return schema.Record{Fields: []schema.Field{
		{Name: "type", Shape: schema.Scalar{Kind: schema.String}, Optional: true},
		{Name: "room", Shape: schema.Scalar{Kind: schema.String}, Optional: true},
		{Name: "website", Shape: schema.Scalar{Kind: schema.String}, Optional: true},
		{Name: "teacher", Shape: schema.Record{Fields: []schema.Field{
			{Name: "name", Shape: schema.Scalar{Kind: schema.String}},
			{Name: "email", Shape: schema.Scalar{Kind: schema.String}, Optional: true},
		}}, Optional: true},
		{Name: "schedule", Shape: schema.Sequence{Elem: schema.Record{Fields: []schema.Field{
			{Name: "day", Shape: schema.Scalar{Kind: schema.String}},
			{Name: "start", Shape: schema.Scalar{Kind: schema.String}},
			{Name: "end", Shape: schema.Scalar{Kind: schema.String}},
		}}}, Optional: true},
	}}
}

// Load reads a single course file. The course name is the file stem.
func Load(path string) (Course, error) {
	v, err := schema.LoadFile(path, Schema())
	if err != nil {
		return Course{}, err
	}

	c := Course{
		Name:    strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		Path:    path,
		Type:    v.Field("type").Str(),
		Room:    v.Field("room").Str(),
		Website: v.Field("website").Str(),
	}

	if t := v.Field("teacher"); !t.Empty() {
		c.Teacher = Teacher{
			Name:  t.Field("name").Str(),
			Email: t.Field("email").Str(),
		}
	}

	for i, s := range v.Field("schedule").Seq() {
		slot, err := parseSlot(s)
		if err != nil {
			return Course{}, fmt.Errorf("%s: schedule entry %d: %w", path, i+1, err)
		}
		c.Slots = append(c.Slots, slot)
	}

	return c, nil
}

// LoadDir loads every .yaml/.yml file in dir, sorted by course name. An
// empty folder is not an error; a missing one is.
func LoadDir(dir string) ([]Course, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("could not read courses folder: %w", err)
	}

	var courses []Course
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		c, err := Load(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}

	sort.Slice(courses, func(i, j int) bool {
		return courses[i].Name < courses[j].Name
	})
	return courses, nil
}

// NextSlot finds the soonest upcoming occurrence across all courses.
func NextSlot(courses []Course, now time.Time) (Occurrence, bool) {
	var best Occurrence
	found := false

	for _, c := range courses {
		for _, s := range c.Slots {
			start := when.Next(now, s.Day, s.Start)
			if !found || start.Before(best.Start) {
				best = occurrence(c, s, start)
				found = true
			}
		}
	}
	return best, found
}

// Upcoming expands every schedule slot into concrete occurrences between now
// and now+days, sorted chronologically.
func Upcoming(courses []Course, now time.Time, days int) []Occurrence {
	horizon := now.AddDate(0, 0, days)

	var out []Occurrence
	for _, c := range courses {
		for _, s := range c.Slots {
			for t := when.Next(now, s.Day, s.Start); t.Before(horizon); t = t.AddDate(0, 0, 7) {
				out = append(out, occurrence(c, s, t))
			}
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Start.Before(out[j].Start)
	})
	return out
}

func occurrence(c Course, s Slot, start time.Time) Occurrence {
	return Occurrence{
		Course: c,
		Slot:   s,
		Start:  start,
		End:    start.Add(time.Duration(s.End-s.Start) * time.Minute),
	}
}

func parseSlot(v schema.Value) (Slot, error) {
	dayName := v.Field("day").Str()
	day, ok := weekdays[strings.ToLower(dayName)]
	if !ok {
		return Slot{}, fmt.Errorf("unknown weekday '%s'", dayName)
	}

	start, err := when.ParseHHMM(v.Field("start").Str())
	if err != nil {
		return Slot{}, err
	}
	end, err := when.ParseHHMM(v.Field("end").Str())
	if err != nil {
		return Slot{}, err
	}
	if end <= start {
		return Slot{}, fmt.Errorf("slot ends before it starts (%s to %s)",
			strings.TrimSpace(when.HHMM(start)), strings.TrimSpace(when.HHMM(end)))
	}

	return Slot{Day: day, Start: start, End: end}, nil
}
