// Package sink is the redirectable output abstraction every backend writes
// through. Open creates path+".new"; all emission happens there; Close
// flushes, closes and atomically renames it onto path, so a concurrent
// reader of path either sees the previous generation in full or the new
// one, never a torn file.
package sink

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Sink is one open output artefact. The zero value is not usable; obtain
// one from Open.
type Sink struct {
	path string
	tmp  string
	file *os.File
	buf  *bufio.Writer
	log  *slog.Logger
}

// Open creates path+".new" (creating parent directories as needed) and
// returns a Sink ready for writing. Callers must call Close to publish the
// file; if Close is never called, path is left untouched and only the
// ".new" file exists on disk.
func Open(path string, log *slog.Logger) (*Sink, error) {
	if log == nil {
		log = slog.New(slog.NewTextHandler(os.Stderr, nil))
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrCreateDir, dir, err)
		}
	}

	tmp := path + ".new"
	f, err := os.Create(tmp)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrOpenTemp, tmp, err)
	}

	return &Sink{
		path: path,
		tmp:  tmp,
		file: f,
		buf:  bufio.NewWriter(f),
		log:  log,
	}, nil
}

// Write implements io.Writer so a Sink can be passed directly to
// fmt.Fprintf and friends.
func (s *Sink) Write(p []byte) (int, error) {
	return s.buf.Write(p)
}

// Close flushes and closes the ".new" file and atomically renames it onto
// the sink's target path, then reports a one-line "written ..." status.
// Close is idempotent-unsafe: call it exactly once per Open.
func (s *Sink) Close() error {
	if err := s.buf.Flush(); err != nil {
		_ = s.file.Close()
		return fmt.Errorf("%w: flush %s: %w", ErrPublish, s.tmp, err)
	}
	if err := s.file.Sync(); err != nil {
		_ = s.file.Close()
		return fmt.Errorf("%w: sync %s: %w", ErrPublish, s.tmp, err)
	}
	if err := s.file.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %w", ErrPublish, s.tmp, err)
	}
	if err := os.Rename(s.tmp, s.path); err != nil {
		return fmt.Errorf("%w: rename %s to %s: %w", ErrPublish, s.tmp, s.path, err)
	}

	s.log.Info("written", "path", s.path)
	return nil
}

// Abort closes and removes the ".new" file without publishing it, for use
// when a backend fails partway through emission.
func (s *Sink) Abort() error {
	_ = s.file.Close()
	return os.Remove(s.tmp)
}
