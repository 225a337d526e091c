package discovery

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestScanner_Scan(t *testing.T) {
	tmpDir := t.TempDir()

	testFiles := []string{
		"ok-print.bat",
		"ok-print.out",
		"types/fail-mismatch.bat",
		"types/nested/ok-deep.bat",
		"types/nested/notes.txt",
		"weird-test.bat",
		"README.md",
	}
	for _, file := range testFiles {
		fullPath := filepath.Join(tmpDir, filepath.FromSlash(file))
		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			t.Fatalf("failed to create dir for %s: %v", file, err)
		}
		if err := os.WriteFile(fullPath, []byte("print 1"), 0644); err != nil {
			t.Fatalf("failed to create file %s: %v", file, err)
		}
	}
	if err := os.MkdirAll(filepath.Join(tmpDir, "empty"), 0755); err != nil {
		t.Fatalf("failed to create empty dir: %v", err)
	}

	scanner := NewScanner(".bat")

	t.Run("scans test sources recursively", func(t *testing.T) {
		results, err := scanner.Scan(tmpDir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var ids []string
		for _, tc := range results {
			ids = append(ids, filepath.ToSlash(tc.Identifier))
		}
		expected := []string{
			"ok-print",
			"types/fail-mismatch",
			"types/nested/ok-deep",
			"weird-test",
		}
		if diff := cmp.Diff(expected, ids); diff != "" {
			t.Errorf("identifiers mismatch (-expected +got):\n%s", diff)
		}
	})

	t.Run("identifier is the root relative form of path", func(t *testing.T) {
		results, err := scanner.Scan(tmpDir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		root, err := filepath.Abs(tmpDir)
		if err != nil {
			t.Fatal(err)
		}
		for _, tc := range results {
			if !filepath.IsAbs(tc.Path) {
				t.Errorf("expected absolute path, got %s", tc.Path)
			}
			if strings.HasSuffix(tc.Path, ".bat") {
				t.Errorf("expected extension to be stripped from %s", tc.Path)
			}
			rel, err := filepath.Rel(root, tc.Path)
			if err != nil {
				t.Fatal(err)
			}
			if rel != tc.Identifier {
				t.Errorf("expected identifier %s, got %s", rel, tc.Identifier)
			}
		}
	})

	t.Run("empty directory yields no tests", func(t *testing.T) {
		results, err := scanner.Scan(filepath.Join(tmpDir, "empty"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 0 {
			t.Errorf("expected no tests, got %d", len(results))
		}
	})

	t.Run("returns error for non-existent directory", func(t *testing.T) {
		_, err := scanner.Scan(filepath.Join(tmpDir, "missing"))
		if err == nil {
			t.Error("expected error for non-existent directory")
		}
	})

	t.Run("returns error for file instead of directory", func(t *testing.T) {
		_, err := scanner.Scan(filepath.Join(tmpDir, "ok-print.bat"))
		if err == nil {
			t.Error("expected error for file path")
		}
	})
}

func TestScanner_ScanOtherExtension(t *testing.T) {
	tmpDir := t.TempDir()
	for _, name := range []string{"ok-a.lox", "ok-b.bat"} {
		if err := os.WriteFile(filepath.Join(tmpDir, name), nil, 0644); err != nil {
			t.Fatal(err)
		}
	}

	results, err := NewScanner(".lox").Scan(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 || results[0].Identifier != "ok-a" {
		t.Errorf("expected only ok-a, got %v", results)
	}
}
