// Package storage persists uploaded documents as opaque byte payloads
// addressed by a relative path.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/worklog-zero/backend/internal/types"
)

// A Store saves, reads and deletes opaque payloads by path.
type Store interface {
	Save(path string, data []byte) error
	Read(path string) ([]byte, error)
	Delete(path string) error
}

// LocalStore is a Store on the local filesystem below a root directory.
type LocalStore struct {
	Root string
}

func NewLocalStore(root string) (LocalStore, error) {
	err := os.MkdirAll(root, os.ModePerm)
	if err != nil {
		return LocalStore{}, fmt.Errorf("could not create upload directory: %w", err)
	}

	return LocalStore{Root: root}, nil
}

func (s LocalStore) Save(path string, data []byte) error {
	full := filepath.Join(s.Root, filepath.FromSlash(path))

	err := os.MkdirAll(filepath.Dir(full), os.ModePerm)
	if err != nil {
		return err
	}

	return os.WriteFile(full, data, 0o644)
}

func (s LocalStore) Read(path string) ([]byte, error) {
	return os.ReadFile(filepath.Join(s.Root, filepath.FromSlash(path)))
}

func (s LocalStore) Delete(path string) error {
	err := os.Remove(filepath.Join(s.Root, filepath.FromSlash(path)))
	if os.IsNotExist(err) {
		return nil
	}

	return err
}

var unsafePathChars = regexp.MustCompile(`[^a-zA-Z0-9_.-]`)

// SanitizeUserName makes a user name safe for use in file paths.
func SanitizeUserName(name string) string {
	return unsafePathChars.ReplaceAllString(name, "_")
}

// TimesheetPath is the canonical path for an uploaded timesheet document:
// one file per (user, year, month).
func TimesheetPath(user string, month types.Month) string {
	return fmt.Sprintf("%s_%s.pdf", SanitizeUserName(user), month)
}

// InvoicePath is the canonical path for an uploaded invoice file: grouped
// by year and month, unique per upload time.
func InvoicePath(user string, month types.Month, fileName string, now time.Time) string {
	ext := filepath.Ext(fileName)
	if ext == "" {
		ext = ".pdf"
	}

	return fmt.Sprintf("%d/%d/%s_%d_%d_%d%s",
		month.Year(), int(month.Month()),
		SanitizeUserName(user), month.Year(), int(month.Month()), now.UnixMilli(),
		strings.ToLower(ext))
}
