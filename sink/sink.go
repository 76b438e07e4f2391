// Package sink provides output destinations for generated headers.
package sink

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Sink receives the complete content of one generated file.
type Sink interface {
	// WriteFile writes content to the specified path.
	WriteFile(ctx context.Context, path string, content []byte) error
}

// FileSink writes a generated file to the local filesystem through a
// temporary sibling file, so a failed run never leaves a half-written
// destination behind.
type FileSink struct {
	// Mode is the file permission mode (default: 0644).
	Mode os.FileMode

	// Lazy leaves the destination (and its modification time) untouched
	// when the new content is identical to the existing content.
	Lazy bool
}

// NewFileSink creates a FileSink with default permissions.
func NewFileSink(lazy bool) *FileSink {
	return &FileSink{Mode: 0644, Lazy: lazy}
}

// tmpSuffix is appended to the destination path to form the temporary
// file. A leftover temporary file from a previous, failed run is
// overwritten without trouble.
const tmpSuffix = ".tmp"

// WriteFile writes content to path. In lazy mode, an unchanged
// destination is left alone and the temporary file is removed.
func (s *FileSink) WriteFile(ctx context.Context, path string, content []byte) error {
	if err := ValidatePath(path); err != nil {
		return fmt.Errorf("invalid path %q: %w", path, err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	mode := s.Mode
	if mode == 0 {
		mode = 0644
	}

	tmpPath := path + tmpSuffix
	if err := os.WriteFile(tmpPath, content, mode); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if s.Lazy {
		old, err := os.ReadFile(path)
		if err == nil && bytes.Equal(old, content) {
			// No change; keep the existing file and its mtime.
			return os.Remove(tmpPath)
		}
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to replace %q: %w", path, err)
	}
	return nil
}

// MemorySink stores generated files in memory. All operations are
// thread-safe.
type MemorySink struct {
	mu    sync.RWMutex
	files map[string][]byte
}

// NewMemorySink creates a new MemorySink.
func NewMemorySink() *MemorySink {
	return &MemorySink{files: make(map[string][]byte)}
}

// WriteFile writes content to the in-memory store.
func (s *MemorySink) WriteFile(ctx context.Context, path string, content []byte) error {
	if err := ValidatePath(path); err != nil {
		return fmt.Errorf("invalid path %q: %w", path, err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	contentCopy := make([]byte, len(content))
	copy(contentCopy, content)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[path] = contentCopy
	return nil
}

// Get returns the content of a single file, or nil if not found.
func (s *MemorySink) Get(path string) []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()

	content, ok := s.files[path]
	if !ok {
		return nil
	}
	contentCopy := make([]byte, len(content))
	copy(contentCopy, content)
	return contentCopy
}

// ValidatePath checks that a path can serve as an input or output file:
// it must be non-empty, must name a file rather than a directory, and
// must not refer to an existing non-regular file.
func ValidatePath(path string) error {
	if path == "" {
		return errors.New("path is empty")
	}
	if strings.HasSuffix(path, string(filepath.Separator)) || strings.HasSuffix(path, "/") {
		return errors.New("path has no file name")
	}
	base := filepath.Base(path)
	if base == "." || base == ".." || base == string(filepath.Separator) {
		return errors.New("path has no file name")
	}
	if info, err := os.Stat(path); err == nil && !info.Mode().IsRegular() {
		return errors.New("not a regular file")
	}
	return nil
}
