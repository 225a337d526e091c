package storage

import "gtr/internal/domain"

// Storage loads and records the expected output of tests
type Storage interface {
	// Load returns the recorded expectation. found is false when none exists.
	Load(tc domain.TestCase) (text string, found bool, err error)
	// Record writes a new expectation. An existing one is never overwritten.
	Record(tc domain.TestCase, text string) error
}

// FileStorage stores expectations next to the test sources
type FileStorage struct {
	ext string
}

// NewFileStorage returns a Storage keeping each expectation at the test
// path plus ext
func NewFileStorage(ext string) *FileStorage {
	return &FileStorage{ext: ext}
}
