// Package fsstore is the document store: structured records persisted as
// individual JSON files under a per-work directory tree. There is no
// database: addressing is deterministic from work id + record id, and every
// save is a full overwrite of one file.
package fsstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// ErrNotFound: backing file absent, or present but not parseable as the
// expected schema. Callers map this to their domain not-found errors.
var ErrNotFound = errors.New("record not found")

// Store addresses and persists JSON records under a single data root.
// One work per top-level directory.
type Store struct {
	root string
}

// New creates the data root if needed and returns a Store rooted there.
func New(root string) (*Store, error) {
	if err := os.MkdirAll(root, 0o750); err != nil {
		return nil, fmt.Errorf("create data root %s: %w", root, err)
	}
	return &Store{root: root}, nil
}

// Root returns the absolute-or-as-configured data root path.
func (s *Store) Root() string {
	return s.root
}

// ListWorkIDs returns the ids of all works in the store, sorted.
// A directory counts as a work only if it contains work.json.
func (s *Store) ListWorkIDs() ([]string, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read data root: %w", err)
	}

	var ids []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if s.Exists(filepath.Join(s.root, entry.Name(), WorkFile)) {
			ids = append(ids, entry.Name())
		}
	}
	sort.Strings(ids)
	return ids, nil
}

// ReadJSON loads one record. Returns ErrNotFound when the file is absent or
// does not decode into v. A half-written or foreign file is treated the
// same as a missing one rather than surfaced as a schema error.
func (s *Store) ReadJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%s: %w", path, ErrNotFound)
		}
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %v: %w", path, err, ErrNotFound)
	}
	return nil
}

// WriteJSON serializes v pretty-printed and persists it at path, creating
// parent directories as needed.
//
// Pattern: temp file → write → fsync → atomic rename. A crash mid-save
// leaves either the old file or the new one, never a torn record.
func (s *Store) WriteJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}
	return s.writeAtomic(path, append(data, '\n'))
}

// WriteLines persists a JSONL artifact: one record per line, newline
// separated, no trailing separators beyond the final newline.
func (s *Store) WriteLines(path string, lines [][]byte) error {
	var buf []byte
	for _, line := range lines {
		buf = append(buf, line...)
		buf = append(buf, '\n')
	}
	return s.writeAtomic(path, buf)
}

func (s *Store) writeAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("create parent of %s: %w", path, err)
	}

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("fsync %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename %s: %w", path, err)
	}
	return nil
}

// Exists reports whether a record file is present.
func (s *Store) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Move relocates a record file (rename, not copy), creating the destination
// parent as needed. Used by the tombstone manager for trash relocation.
func (s *Store) Move(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o750); err != nil {
		return fmt.Errorf("create parent of %s: %w", dst, err)
	}
	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("move %s -> %s: %w", src, dst, err)
	}
	return nil
}
