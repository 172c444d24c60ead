package forms

import (
	"strings"
	"unicode/utf8"
)

type TodolistForm struct {
	Name        string `form:"name" json:"name"`
	Description string `form:"description" json:"description"`
}

func (f *TodolistForm) Validate() Errors {
	errs := Errors{}

	f.Name = strings.TrimSpace(f.Name)
	if f.Name == "" {
		errs["name"] = "Name cannot be empty."
	} else if utf8.RuneCountInString(f.Name) > 100 {
		errs["name"] = "Name cannot be longer than 100 characters."
	} else if isAlnum(f.Name) {
		// A bare run of letters and digits is rejected; list names are
		// expected to be multi-word.
		errs["name"] = "Name must be alphabetical."
	}

	f.Description = strings.TrimSpace(f.Description)
	if utf8.RuneCountInString(f.Description) > 500 {
		errs["description"] = "Description cannot be longer than 500 characters."
	}

	return errs
}
