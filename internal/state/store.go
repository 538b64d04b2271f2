package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/danieljhkim/elemlist/internal/fsops"
)

// SessionStore provides an interface for persisting document sessions.
type SessionStore interface {
	// Load loads the session with the given ID.
	// Returns os.ErrNotExist if the session doesn't exist.
	Load(id string) (*Session, error)

	// Save saves the session atomically.
	Save(id string, session *Session) error

	// Delete deletes the session file. Deleting a missing session is not an error.
	Delete(id string) error

	// List returns the IDs of all stored sessions, sorted.
	List() ([]string, error)
}

// FileSessionStore implements SessionStore using JSON files on disk.
type FileSessionStore struct {
	fs  fsops.FS
	dir string
}

// NewFileSessionStore creates a new FileSessionStore rooted at dir.
func NewFileSessionStore(fs fsops.FS, dir string) *FileSessionStore {
	return &FileSessionStore{
		fs:  fs,
		dir: dir,
	}
}

func (s *FileSessionStore) path(id string) (string, error) {
	if err := s.fs.ValidateIdentifier(id); err != nil {
		return "", err
	}
	return filepath.Join(s.dir, id+".json"), nil
}

// Load loads the session with the given ID.
func (s *FileSessionStore) Load(id string) (*Session, error) {
	path, err := s.path(id)
	if err != nil {
		return nil, err
	}

	data, err := s.fs.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, os.ErrNotExist
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	if session.Selection == nil {
		session.Selection = []string{}
	}

	return &session, nil
}

// Save saves the session atomically.
func (s *FileSessionStore) Save(id string, session *Session) error {
	path, err := s.path(id)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := s.fs.AtomicWrite(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}

	return nil
}

// Delete deletes the session file.
func (s *FileSessionStore) Delete(id string) error {
	path, err := s.path(id)
	if err != nil {
		return err
	}

	if err := s.fs.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

// List returns the IDs of all stored sessions.
func (s *FileSessionStore) List() ([]string, error) {
	names, err := s.fs.ListFiles(s.dir, ".json")
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	ids := make([]string, 0, len(names))
	for _, name := range names {
		ids = append(ids, strings.TrimSuffix(name, ".json"))
	}
	return ids, nil
}
