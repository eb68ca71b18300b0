// Package exporter turns resolved schedule occurrences into an iCalendar
// document for import into a calendar app.
package exporter

import (
	"fmt"
	"io"
	"time"

	ics "github.com/arran4/golang-ical"

	"school/pkg/course"
)

// Generate writes the occurrences as an ICS calendar to w.
func Generate(events []course.Occurrence, w io.Writer) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	now := time.Now()
	for i, o := range events {
		event := cal.AddEvent(fmt.Sprintf("%s-%d", o.Start.Format("20060102T150405Z"), i))
		event.SetCreatedTime(now)
		event.SetDtStampTime(now)
		event.SetModifiedAt(now)
		event.SetStartAt(o.Start)
		event.SetEndAt(o.End)
		event.SetSummary(o.Course.Name)
		event.SetLocation(o.Course.Room)

		desc := fmt.Sprintf("Type: %s", o.Course.Type)
		if o.Course.Teacher.Name != "" {
			desc += fmt.Sprintf("\nTeacher: %s", o.Course.Teacher.Name)
		}
		if o.Course.Website != "" {
			desc += fmt.Sprintf("\nWebsite: %s", o.Course.Website)
		}
		event.SetDescription(desc)
	}

	return cal.SerializeTo(w)
}
