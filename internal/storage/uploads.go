// Package storage writes validated uploads into the media directory and
// hands back the path a row references.
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

type Uploads struct {
	Dir string
}

func NewUploads(dir string) *Uploads {
	return &Uploads{Dir: dir}
}

// Save stores the upload under <dir>/<kind>/ with a uuid-prefixed filename
// so colliding client filenames never overwrite each other. It returns the
// path relative to the media root.
func (u *Uploads) Save(kind string, header *multipart.FileHeader) (string, error) {
	src, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	dir := filepath.Join(u.Dir, kind)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	filename := uuid.NewString() + "_" + filepath.Base(header.Filename)
	diskPath := filepath.Join(dir, filename)

	dst, err := os.Create(diskPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(diskPath)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return filepath.ToSlash(filepath.Join(kind, filename)), nil
}

// Remove deletes a previously stored file. Best-effort: a missing file is
// not an error, the referencing row is already gone or going.
func (u *Uploads) Remove(relPath string) error {
	if relPath == "" {
		return nil
	}

	err := os.Remove(filepath.Join(u.Dir, filepath.FromSlash(relPath)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
