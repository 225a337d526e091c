package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gtr/internal/domain"
)

// ErrExists is returned by Record when an expectation is already on disk
var ErrExists = errors.New("expectation already exists")

// Load reads the expectation file of a test.
func (s *FileStorage) Load(tc domain.TestCase) (string, bool, error) {
	path := tc.ExpectationPath(s.ext)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read expectation %s: %w", path, err)
	}
	return NormalizeNewlines(string(data)), true, nil
}

// Record creates the expectation file of a test with the given text.
func (s *FileStorage) Record(tc domain.TestCase, text string) error {
	path := tc.ExpectationPath(s.ext)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if errors.Is(err, fs.ErrExist) {
		return fmt.Errorf("record %s: %w", path, ErrExists)
	}
	if err != nil {
		return fmt.Errorf("create expectation %s: %w", path, err)
	}
	if _, err := f.WriteString(text); err != nil {
		f.Close()
		return fmt.Errorf("write expectation %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close expectation %s: %w", path, err)
	}
	return nil
}

// NormalizeNewlines converts CRLF line endings to LF
func NormalizeNewlines(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}
