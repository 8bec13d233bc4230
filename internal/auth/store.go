package auth

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Store holds the access/refresh token pair for the current session. It does
// not validate token contents; callers decide what a token means.
type Store interface {
	Access() string
	SetAccess(token string) error
	Refresh() string
	SetRefresh(token string) error
	Clear() error
}

type credentials struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// FileStore persists the token pair as a JSON file so a session survives
// restarts. Every write goes straight to disk; reads are served from the
// copy loaded at construction and updated on write.
type FileStore struct {
	mu    sync.Mutex
	path  string
	creds credentials
}

func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *FileStore) load() error {
	data, err := os.ReadFile(filepath.Clean(s.path))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read credentials file: %w", err)
	}

	if err := json.Unmarshal(data, &s.creds); err != nil {
		return fmt.Errorf("decode credentials file: %w", err)
	}
	return nil
}

func (s *FileStore) save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	data, err := json.Marshal(s.creds)
	if err != nil {
		return fmt.Errorf("encode credentials: %w", err)
	}

	if err := os.WriteFile(filepath.Clean(s.path), data, 0600); err != nil {
		return fmt.Errorf("write credentials file: %w", err)
	}
	return nil
}

func (s *FileStore) Access() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.creds.AccessToken
}

func (s *FileStore) SetAccess(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds.AccessToken = token
	return s.save()
}

func (s *FileStore) Refresh() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.creds.RefreshToken
}

func (s *FileStore) SetRefresh(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds.RefreshToken = token
	return s.save()
}

// Clear removes both tokens. Clearing an already-empty store is a no-op and
// removing a missing file is not an error.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds = credentials{}

	if err := os.Remove(filepath.Clean(s.path)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove credentials file: %w", err)
	}
	return nil
}

// MemStore is an in-memory Store for tests and embedded use.
type MemStore struct {
	mu    sync.Mutex
	creds credentials
}

func NewMemStore() *MemStore {
	return &MemStore{}
}

func (s *MemStore) Access() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.creds.AccessToken
}

func (s *MemStore) SetAccess(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds.AccessToken = token
	return nil
}

func (s *MemStore) Refresh() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.creds.RefreshToken
}

func (s *MemStore) SetRefresh(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds.RefreshToken = token
	return nil
}

func (s *MemStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds = credentials{}
	return nil
}
