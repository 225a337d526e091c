package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gtr/internal/domain"
)

func TestFileStorage(t *testing.T) {
	tmpDir := t.TempDir()
	st := NewFileStorage(".out")
	tc := domain.TestCase{Identifier: "ok-print", Path: filepath.Join(tmpDir, "ok-print")}

	t.Run("missing expectation is not an error", func(t *testing.T) {
		text, found, err := st.Load(tc)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found || text != "" {
			t.Errorf("expected nothing found, got %q", text)
		}
	})

	t.Run("record then load", func(t *testing.T) {
		if err := st.Record(tc, "1\n2\n"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		text, found, err := st.Load(tc)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !found {
			t.Fatal("expected expectation to be found")
		}
		if text != "1\n2\n" {
			t.Errorf("expected %q, got %q", "1\n2\n", text)
		}
	})

	t.Run("existing expectation is never rewritten", func(t *testing.T) {
		err := st.Record(tc, "changed\n")
		if !errors.Is(err, ErrExists) {
			t.Fatalf("expected ErrExists, got %v", err)
		}
		data, err := os.ReadFile(filepath.Join(tmpDir, "ok-print.out"))
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != "1\n2\n" {
			t.Errorf("expectation was modified: %q", data)
		}
	})

	t.Run("empty output is recorded", func(t *testing.T) {
		empty := domain.TestCase{Identifier: "ok-silent", Path: filepath.Join(tmpDir, "ok-silent")}
		if err := st.Record(empty, ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		_, found, err := st.Load(empty)
		if err != nil || !found {
			t.Errorf("expected empty expectation to be found, err=%v", err)
		}
	})

	t.Run("crlf is normalized on load", func(t *testing.T) {
		crlf := domain.TestCase{Identifier: "ok-crlf", Path: filepath.Join(tmpDir, "ok-crlf")}
		if err := os.WriteFile(crlf.ExpectationPath(".out"), []byte("a\r\nb\r\n"), 0644); err != nil {
			t.Fatal(err)
		}
		text, _, err := st.Load(crlf)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if text != "a\nb\n" {
			t.Errorf("expected normalized text, got %q", text)
		}
	})
}
