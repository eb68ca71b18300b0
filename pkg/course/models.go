package course

import (
	"fmt"
	"time"
)

// Course is one course described by a YAML file in the courses folder.
type Course struct {
	Name    string // file stem, e.g. "Linear Algebra"
	Path    string // the file it was loaded from
	Type    string // matches a configured course type, e.g. "lecture"
	Room    string
	Website string
	Teacher Teacher
	Slots   []Slot
}

// Teacher identifies who runs a course.
type Teacher struct {
	Name  string
	Email string
}

// Slot is one weekly occurrence of a course.
type Slot struct {
	Day   time.Weekday
	Start int // minutes after midnight
	End   int
}

// Occurrence is a slot resolved to a concrete date.
type Occurrence struct {
	Course Course
	Slot   Slot
	Start  time.Time
	End    time.Time
}

// String renders the course the way pickers and lists present it.
func (c Course) String() string {
	if c.Type != "" {
		return fmt.Sprintf("%s (%s)", c.Name, c.Type)
	}
	return c.Name
}
