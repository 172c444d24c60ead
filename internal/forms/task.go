package forms

import (
	"strings"
	"unicode/utf8"
)

type TaskForm struct {
	Name        string `form:"name" json:"name"`
	Description string `form:"description" json:"description"`
}

func (f *TaskForm) Validate() Errors {
	errs := Errors{}

	f.Name = strings.TrimSpace(f.Name)
	if f.Name == "" {
		errs["name"] = "Task name cannot be empty."
	} else if utf8.RuneCountInString(f.Name) > 100 {
		errs["name"] = "Name cannot exceed 100 characters."
	}

	f.Description = strings.TrimSpace(f.Description)

	return errs
}
