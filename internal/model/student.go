package model

// Student is one roster entry. Grade is a letter grade, optionally suffixed with "+".
type Student struct {
	ID         int    `json:"id" yaml:"id" validate:"required"`
	Name       string `json:"name" yaml:"name" validate:"required"`
	Grade      string `json:"grade" yaml:"grade" validate:"required,grade"`
	Attendance int    `json:"attendance" yaml:"attendance" validate:"min=0,max=100"`
}
