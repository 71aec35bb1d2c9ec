package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// StoreError reports a failed working-directory operation, naming the file
// that failed when one is known.
type StoreError struct {
	Op   string
	Name string
	Err  error
}

func (e *StoreError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("workdir %s %s: %v", e.Op, e.Name, e.Err)
	}
	return fmt.Sprintf("workdir %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// Workdir manages the filesystem area holding the current batch's uploads.
// It is a process-wide shared resource; callers serialize whole batches
// around it (see service.BatchService).
type Workdir struct {
	dir string
}

// NewWorkdir creates the directory if needed and returns the store.
func NewWorkdir(dir string) (*Workdir, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &StoreError{Op: "create", Name: dir, Err: err}
	}
	return &Workdir{dir: dir}, nil
}

// Dir returns the managed directory path.
func (w *Workdir) Dir() string { return w.dir }

// Clear removes every file in the directory. Calling it on an already-empty
// directory is a no-op. The first file that cannot be removed aborts with a
// StoreError naming it.
func (w *Workdir) Clear() error {
	entries, err := os.ReadDir(w.dir)
	if err != nil {
		return &StoreError{Op: "list", Err: err}
	}
	for _, entry := range entries {
		if err := os.RemoveAll(filepath.Join(w.dir, entry.Name())); err != nil {
			return &StoreError{Op: "remove", Name: entry.Name(), Err: err}
		}
	}
	return nil
}

// Save writes the upload bytes under the sanitized client filename and
// returns the stored path. A name colliding with an existing entry is
// overwritten (last write wins within a batch).
func (w *Workdir) Save(name string, data []byte) (string, error) {
	clean, err := Sanitize(name)
	if err != nil {
		return "", &StoreError{Op: "save", Name: name, Err: err}
	}
	path := filepath.Join(w.dir, clean)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", &StoreError{Op: "save", Name: clean, Err: err}
	}
	return path, nil
}

// List returns the names of all stored files in lexical order.
func (w *Workdir) List() ([]string, error) {
	entries, err := os.ReadDir(w.dir)
	if err != nil {
		return nil, &StoreError{Op: "list", Err: err}
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Sanitize reduces a client-supplied filename to a bare base name so an
// upload can never escape the working directory or hide as a dotfile.
func Sanitize(name string) (string, error) {
	base := filepath.Base(filepath.Clean(strings.ReplaceAll(name, "\\", "/")))
	if base == "" || base == "." || base == ".." || strings.HasPrefix(base, ".") {
		return "", fmt.Errorf("unusable filename %q", name)
	}
	return base, nil
}
