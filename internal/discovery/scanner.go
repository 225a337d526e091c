package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gtr/internal/domain"
)

// Scanner scans for compiler test sources in a directory
type Scanner struct {
	sourceExt string
}

// NewScanner creates a new Scanner matching files with the given extension
func NewScanner(sourceExt string) *Scanner {
	return &Scanner{sourceExt: sourceExt}
}

// Scan finds all test sources in the given root directory
func (s *Scanner) Scan(root string) ([]domain.TestCase, error) {
	var tests []domain.TestCase

	root, err := filepath.Abs(filepath.Clean(root))
	if err != nil {
		return nil, fmt.Errorf("resolve test path %s: %w", root, err)
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("test path does not exist: %s", root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("test path is not a directory: %s", root)
	}

	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(d.Name()) != s.sourceExt {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		tests = append(tests, domain.TestCase{
			Identifier: strings.TrimSuffix(rel, s.sourceExt),
			Path:       strings.TrimSuffix(path, s.sourceExt),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}

	return tests, nil
}
