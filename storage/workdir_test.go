package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestClearIsIdempotent(t *testing.T) {
	w, err := NewWorkdir(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := w.Save("a.png", []byte("data")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < 2; i++ {
		if err := w.Clear(); err != nil {
			t.Fatalf("clear %d failed: %v", i, err)
		}
		names, err := w.List()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(names) != 0 {
			t.Fatalf("expected empty directory after clear, got %v", names)
		}
	}
}

func TestSaveOverwritesOnCollision(t *testing.T) {
	w, err := NewWorkdir(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := w.Save("a.png", []byte("first")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	path, err := w.Save("a.png", []byte("second"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != "second" {
		t.Fatalf("expected last write to win, got %q", data)
	}
}

func TestSaveStripsPathComponents(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWorkdir(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	path, err := w.Save("../../etc/passwd", []byte("x"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != filepath.Join(dir, "passwd") {
		t.Fatalf("expected upload confined to %s, got %s", dir, path)
	}
}

func TestSanitize(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"a.png", "a.png", true},
		{"photos/a.png", "a.png", true},
		{`C:\photos\a.png`, "a.png", true},
		{"../../etc/passwd", "passwd", true},
		{"", "", false},
		{".", "", false},
		{"..", "", false},
		{".hidden", "", false},
	}
	for _, tc := range cases {
		got, err := Sanitize(tc.in)
		if tc.ok && (err != nil || got != tc.want) {
			t.Fatalf("Sanitize(%q) = %q, %v; want %q", tc.in, got, err, tc.want)
		}
		if !tc.ok && err == nil {
			t.Fatalf("Sanitize(%q) = %q; want error", tc.in, got)
		}
	}
}

func TestListReturnsSortedFiles(t *testing.T) {
	w, err := NewWorkdir(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, name := range []string{"c.png", "a.png", "b.png"} {
		if _, err := w.Save(name, []byte("x")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	names, err := w.List()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"a.png", "b.png", "c.png"}
	if len(names) != len(want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, names)
		}
	}
}

func TestClearSurfacesMissingDirectory(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWorkdir(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := os.RemoveAll(dir); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err = w.Clear()
	if err == nil {
		t.Fatal("expected an error for a missing directory")
	}
	if _, ok := err.(*StoreError); !ok {
		t.Fatalf("expected *StoreError, got %T", err)
	}
}
