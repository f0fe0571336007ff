package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"
)

// NoticeStore remembers which notices (announcement bars, promo popups) the
// user dismissed. The set survives restarts in a YAML file.
type NoticeStore struct {
	path string

	mu        sync.Mutex
	dismissed map[string]struct{}
}

type noticeFile struct {
	Dismissed []string `yaml:"dismissed"`
}

// OpenNoticeStore loads the file at path. A missing file is an empty set.
func OpenNoticeStore(path string) (*NoticeStore, error) {
	s := &NoticeStore{path: path, dismissed: map[string]struct{}{}}

	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read notices: %w", err)
	}

	var f noticeFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse notices %s: %w", path, err)
	}
	for _, id := range f.Dismissed {
		s.dismissed[id] = struct{}{}
	}
	return s, nil
}

// Dismiss records id and writes the file before returning.
func (s *NoticeStore) Dismiss(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.dismissed[id]; ok {
		return nil
	}
	s.dismissed[id] = struct{}{}
	if err := s.save(); err != nil {
		delete(s.dismissed, id)
		return err
	}
	return nil
}

func (s *NoticeStore) IsDismissed(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.dismissed[id]
	return ok
}

// Dismissed lists the dismissed IDs in sorted order.
func (s *NoticeStore) Dismissed() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortedLocked()
}

// Reset forgets every dismissal and removes the file.
func (s *NoticeStore) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dismissed = map[string]struct{}{}
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove notices: %w", err)
	}
	return nil
}

func (s *NoticeStore) sortedLocked() []string {
	ids := make([]string, 0, len(s.dismissed))
	for id := range s.dismissed {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// save writes to a temp file in the same directory and renames it over
// the old one, so a crash never leaves a half-written file.
func (s *NoticeStore) save() error {
	raw, err := yaml.Marshal(noticeFile{Dismissed: s.sortedLocked()})
	if err != nil {
		return fmt.Errorf("encode notices: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create notices dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".notices-*.yaml")
	if err != nil {
		return fmt.Errorf("create temp notices: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("write notices: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write notices: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace notices: %w", err)
	}
	return nil
}
