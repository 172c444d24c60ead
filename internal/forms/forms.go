// Package forms holds the per-entity field validation that runs before any
// write. Each form binds from a request body and reports problems as a
// field -> message map which handlers return to the client untouched.
package forms

import (
	"mime/multipart"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Errors maps a field name to its validation message.
type Errors map[string]string

func (e Errors) Valid() bool { return len(e) == 0 }

var validate = validator.New()

func validEmail(email string) bool {
	return validate.Var(email, "required,email") == nil
}

func isAlnum(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// NormalizeEmail lowercases and trims an address before any uniqueness
// comparison or lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// upload limits per purpose
const (
	MaxAttachmentSize = 5 * 1024 * 1024  // project file attachments
	MaxImageSize      = 10 * 1024 * 1024 // avatars and cover photos
)

var attachmentTypes = map[string]bool{
	"application/pdf": true,
	"image/jpeg":      true,
	"image/png":       true,
}

var imageExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true,
}

func checkAttachment(file *multipart.FileHeader) string {
	if file.Size > MaxAttachmentSize {
		return "File size must be under 5MB."
	}
	if !attachmentTypes[file.Header.Get("Content-Type")] {
		return "Invalid file type."
	}
	return ""
}

func checkImage(file *multipart.FileHeader, kind string) string {
	if file.Size > MaxImageSize {
		return kind + " file size must be under 10MB."
	}

	name := strings.ToLower(file.Filename)
	dot := strings.LastIndex(name, ".")
	if dot < 0 || !imageExtensions[name[dot:]] {
		return kind + " must be an image file (e.g., PNG, JPG)."
	}
	return ""
}
