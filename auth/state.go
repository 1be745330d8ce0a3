package auth

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"socialcal/shared"
	"socialcal/types"
)

// FileStore keeps the session as JSON on disk.
type FileStore struct {
	path string
	mu   sync.Mutex
}

var _ types.SessionStore = (*FileStore)(nil)

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load() (*shared.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bytes, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("error reading %s: %v", filepath.Base(s.path), err)
	}

	var session shared.Session
	err = json.Unmarshal(bytes, &session)
	if err != nil {
		return nil, fmt.Errorf("error unmarshalling %s: %v", filepath.Base(s.path), err)
	}

	if session.Token == "" {
		return nil, nil
	}

	return &session, nil
}

func (s *FileStore) Save(session *shared.Session) error {
	if session == nil || session.Token == "" {
		return fmt.Errorf("error writing session: token is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	bytes, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("error marshalling session: %v", err)
	}

	err = os.WriteFile(s.path, bytes, 0600)
	if err != nil {
		return fmt.Errorf("error writing session: %v", err)
	}

	return nil
}

func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("error removing session: %v", err)
	}
	return nil
}

// MemoryStore is a SessionStore that never touches disk.
type MemoryStore struct {
	mu      sync.Mutex
	session *shared.Session
}

var _ types.SessionStore = (*MemoryStore)(nil)

func NewMemoryStore(session *shared.Session) *MemoryStore {
	return &MemoryStore{session: session}
}

func (s *MemoryStore) Load() (*shared.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil, nil
	}
	cp := *s.session
	return &cp, nil
}

func (s *MemoryStore) Save(session *shared.Session) error {
	if session == nil || session.Token == "" {
		return fmt.Errorf("error writing session: token is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *session
	s.session = &cp
	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = nil
	return nil
}
