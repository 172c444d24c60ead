package forms

import (
	"mime/multipart"
	"strings"
	"unicode/utf8"
)

type ProjectForm struct {
	Name        string `form:"name" json:"name"`
	Description string `form:"description" json:"description"`
}

func (f *ProjectForm) Validate() Errors {
	errs := Errors{}

	f.Name = strings.TrimSpace(f.Name)
	if f.Name == "" {
		errs["name"] = "Project name is required"
	} else if utf8.RuneCountInString(f.Name) > 100 {
		errs["name"] = "Name cannot exceed 100 characters."
	}

	return errs
}

type ProjectFileForm struct {
	Name       string                `form:"name" json:"name"`
	Attachment *multipart.FileHeader `form:"-" json:"-"`
}

func (f *ProjectFileForm) Validate() Errors {
	errs := Errors{}

	f.Name = strings.TrimSpace(f.Name)
	if f.Name == "" {
		errs["name"] = "Name cannot be empty."
	} else if utf8.RuneCountInString(f.Name) > 100 {
		errs["name"] = "Name cannot exceed 100 characters."
	}

	if f.Attachment == nil {
		errs["attachment"] = "An attachment is required."
	} else if msg := checkAttachment(f.Attachment); msg != "" {
		errs["attachment"] = msg
	}

	return errs
}

type ProjectNoteForm struct {
	Name string `form:"name" json:"name"`
	Body string `form:"body" json:"body"`
}

func (f *ProjectNoteForm) Validate() Errors {
	errs := Errors{}

	f.Name = strings.TrimSpace(f.Name)
	if f.Name == "" {
		errs["name"] = "Name cannot be empty."
	} else if utf8.RuneCountInString(f.Name) > 100 {
		errs["name"] = "Name cannot exceed 100 characters."
	}

	f.Body = strings.TrimSpace(f.Body)
	if f.Body == "" {
		errs["body"] = "Body cannot be empty."
	}

	return errs
}
