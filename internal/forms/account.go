package forms

import (
	"mime/multipart"
	"regexp"
	"strings"
	"unicode/utf8"
)

type SignupForm struct {
	Name      string `form:"name" json:"name"`
	Email     string `form:"email" json:"email"`
	Password1 string `form:"password1" json:"password1"`
	Password2 string `form:"password2" json:"password2"`
}

func (f *SignupForm) Validate() Errors {
	errs := Errors{}

	f.Name = strings.TrimSpace(f.Name)
	if f.Name == "" {
		errs["name"] = "Name cannot be empty."
	} else if utf8.RuneCountInString(f.Name) < 2 {
		errs["name"] = "Name must be at least 2 characters long."
	} else if utf8.RuneCountInString(f.Name) > 150 {
		errs["name"] = "Name cannot exceed 150 characters."
	}

	f.Email = NormalizeEmail(f.Email)
	if !validEmail(f.Email) {
		errs["email"] = "Enter a valid email address."
	}

	if utf8.RuneCountInString(f.Password1) < 8 {
		errs["password1"] = "Password must be at least 8 characters long."
	}

	if f.Password1 != "" && f.Password2 != "" && f.Password1 != f.Password2 {
		errs["password2"] = "The two password fields did not match."
	} else if f.Password2 == "" {
		errs["password2"] = "Please confirm your password."
	}

	return errs
}

type LoginForm struct {
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
}

func (f *LoginForm) Validate() Errors {
	errs := Errors{}

	f.Email = NormalizeEmail(f.Email)
	if !validEmail(f.Email) {
		errs["email"] = "Enter a valid email address."
	}

	if f.Password == "" {
		errs["password"] = "Password is required."
	}

	return errs
}

var phonePattern = regexp.MustCompile(`^\+?1?\d{9,15}$`)

type ProfileForm struct {
	JobTitle    string `form:"job_title" json:"job_title"`
	Bio         string `form:"bio" json:"bio"`
	Country     string `form:"country" json:"country"`
	City        string `form:"city" json:"city"`
	Department  string `form:"department" json:"department"`
	PhoneNumber string `form:"phone_number" json:"phone_number"`
	LinkedIn    string `form:"linkedin" json:"linkedin"`
	GitHub      string `form:"github" json:"github"`
	Website     string `form:"website" json:"website"`
	YouTube     string `form:"youtube" json:"youtube"`
	Facebook    string `form:"facebook" json:"facebook"`
	Instagram   string `form:"instagram" json:"instagram"`
	X           string `form:"x" json:"x"`

	// Optional uploads, bound separately from the multipart form.
	Avatar     *multipart.FileHeader `form:"-" json:"-"`
	CoverPhoto *multipart.FileHeader `form:"-" json:"-"`
}

func (f *ProfileForm) Validate() Errors {
	errs := Errors{}

	if utf8.RuneCountInString(f.Bio) > 1000 {
		errs["bio"] = "Bio cannot exceed 1000 characters."
	}

	if f.PhoneNumber != "" && !phonePattern.MatchString(f.PhoneNumber) {
		errs["phone_number"] = "Phone number must be entered in the format: '+1234567890'. Up to 15 digits allowed."
	}

	if f.Avatar != nil {
		if msg := checkImage(f.Avatar, "Avatar"); msg != "" {
			errs["avatar"] = msg
		}
	}

	if f.CoverPhoto != nil {
		if msg := checkImage(f.CoverPhoto, "Cover photo"); msg != "" {
			errs["cover_photo"] = msg
		}
	}

	return errs
}
