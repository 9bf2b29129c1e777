package roster

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.uber.org/zap"
)

// Store owns the friend roster: an ordered list of unique, non-empty names
// mirrored to a plain-text file with one name per line.
//
// Store is not safe for concurrent use; the client mutates it from the frame
// loop only.
type Store struct {
	path  string
	names []string
	log   *zap.Logger
}

func NewStore(path string, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{path: path, log: log}
}

func (s *Store) Path() string {
	return s.path
}

// Load replaces the in-memory roster with the file contents. A missing file
// or a read failure both leave an empty roster.
func (s *Store) Load() []string {
	names, err := readRoster(s.path)
	if err != nil {
		s.log.Error("load friend list", zap.String("path", s.path), zap.Error(err))
		names = nil
	}
	s.names = names
	s.log.Info("loaded friend list", zap.Int("friends", len(names)))
	return s.Names()
}

// Reload re-reads the file and reports whether the roster changed. Unlike
// Load, a read failure keeps the current roster.
func (s *Store) Reload() bool {
	names, err := readRoster(s.path)
	if err != nil {
		s.log.Warn("reload friend list", zap.String("path", s.path), zap.Error(err))
		return false
	}
	if slices.Equal(names, s.names) {
		return false
	}
	s.names = names
	s.log.Info("friend list changed on disk", zap.Int("friends", len(names)))
	return true
}

// Save rewrites the file from memory. The write goes through a temp file so a
// failure leaves the previous file intact; memory is never rolled back.
func (s *Store) Save() error {
	if err := writeRoster(s.path, s.names); err != nil {
		s.log.Error("save friend list", zap.String("path", s.path), zap.Error(err))
		return err
	}
	s.log.Debug("friend list saved", zap.Int("friends", len(s.names)))
	return nil
}

// Add appends name after trimming it. Empty and already-present names are
// rejected.
func (s *Store) Add(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" || s.Contains(name) {
		return false
	}
	s.names = append(s.names, name)
	return true
}

func (s *Store) Remove(name string) bool {
	idx := slices.Index(s.names, name)
	if idx < 0 {
		return false
	}
	s.names = slices.Delete(s.names, idx, idx+1)
	return true
}

func (s *Store) Contains(name string) bool {
	return slices.Contains(s.names, name)
}

func (s *Store) Names() []string {
	return append([]string(nil), s.names...)
}

func (s *Store) Len() int {
	return len(s.names)
}

func readRoster(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return parseRoster(data)
}

func parseRoster(data []byte) ([]string, error) {
	var names []string
	seen := make(map[string]struct{})
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		name := strings.TrimSpace(scanner.Text())
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("parse roster: %w", err)
	}
	return names, nil
}

func formatRoster(names []string) []byte {
	var b bytes.Buffer
	for _, name := range names {
		b.WriteString(name)
		b.WriteByte('\n')
	}
	return b.Bytes()
}

func writeRoster(path string, names []string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, "friendlist-*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(formatRoster(names)); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return err
	}

	cleanup = false
	return nil
}
