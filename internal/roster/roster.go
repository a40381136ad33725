// Package roster holds the fixed student list and the attendance view filter.
package roster

import (
	"strings"

	"github.com/idilsaglam/classboard/internal/model"
	"github.com/idilsaglam/classboard/internal/observe"
)

// AttendanceThreshold is the exclusive lower bound used by the attendance filter.
const AttendanceThreshold = 75

// Seed returns the built-in roster.
func Seed() []model.Student {
	return []model.Student{
		{ID: 1, Name: "Ankit", Grade: "A", Attendance: 92},
		{ID: 2, Name: "Bhavna", Grade: "B", Attendance: 65},
		{ID: 3, Name: "Chetan", Grade: "A+", Attendance: 88},
		{ID: 4, Name: "Divya", Grade: "C", Attendance: 72},
	}
}

// Filter keeps students whose attendance is above AttendanceThreshold, in order.
func Filter(students []model.Student) []model.Student {
	out := make([]model.Student, 0, len(students))
	for _, s := range students {
		if s.Attendance > AttendanceThreshold {
			out = append(out, s)
		}
	}
	return out
}

// IsTopper reports whether a grade earns the highlight ("A" or "A+").
func IsTopper(grade string) bool { return strings.HasPrefix(grade, "A") }

// Panel is the student view state: an immutable roster plus the filter flag.
type Panel struct {
	students  []model.Student
	filtered  bool
	listeners observe.List[bool]
}

// NewPanel copies students; later changes to the caller's slice are not seen.
func NewPanel(students []model.Student) *Panel {
	cp := make([]model.Student, len(students))
	copy(cp, students)
	return &Panel{students: cp}
}

// SetFilterEnabled sets the filter flag and notifies subscribers.
func (p *Panel) SetFilterEnabled(on bool) {
	p.filtered = on
	p.listeners.Notify(on)
}

func (p *Panel) ToggleFilter() { p.SetFilterEnabled(!p.filtered) }

func (p *Panel) FilterEnabled() bool { return p.filtered }

// Students returns the full roster.
func (p *Panel) Students() []model.Student {
	cp := make([]model.Student, len(p.students))
	copy(cp, p.students)
	return cp
}

// Visible returns the roster as currently shown.
func (p *Panel) Visible() []model.Student {
	if p.filtered {
		return Filter(p.students)
	}
	return p.Students()
}

// Total is the size of the full roster, independent of the filter.
func (p *Panel) Total() int { return len(p.students) }

// FilterLabel is the caption of the control that flips the filter.
func (p *Panel) FilterLabel() string {
	if p.filtered {
		return "Show All Students"
	}
	return "Show Attendance > 75%"
}

// Subscribe registers fn to run whenever the filter flag is set.
func (p *Panel) Subscribe(fn func(filtered bool)) (cancel func()) {
	return p.listeners.Subscribe(fn)
}
