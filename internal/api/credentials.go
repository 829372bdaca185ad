package api

import (
	"encoding/json"
	"os"
	"sync"

	"tableside/internal/pkg/errs"
)

type Tokens struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// TokenStore persists tokens between sessions, standing in for the browser's
// local storage.
type TokenStore interface {
	Load() (Tokens, error)
	Save(Tokens) error
	Clear() error
}

type MemoryTokenStore struct {
	mu     sync.Mutex
	tokens Tokens
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{}
}

func (s *MemoryTokenStore) Load() (Tokens, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tokens, nil
}

func (s *MemoryTokenStore) Save(t Tokens) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens = t
	return nil
}

func (s *MemoryTokenStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens = Tokens{}
	return nil
}

// FileTokenStore keeps tokens in a mode-0600 JSON file.
type FileTokenStore struct {
	mu   sync.Mutex
	path string
}

func NewFileTokenStore(path string) *FileTokenStore {
	return &FileTokenStore{path: path}
}

func (s *FileTokenStore) Load() (Tokens, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Tokens{}, nil
		}
		return Tokens{}, errs.Wrap(err, "failed to read token file")
	}
	var t Tokens
	if err := json.Unmarshal(data, &t); err != nil {
		return Tokens{}, errs.Wrap(err, "failed to decode token file")
	}
	return t, nil
}

func (s *FileTokenStore) Save(t Tokens) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(t)
	if err != nil {
		return errs.Wrap(err, "failed to encode tokens")
	}
	return errs.Wrap(os.WriteFile(s.path, data, 0o600), "failed to write token file")
}

func (s *FileTokenStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return errs.Wrap(err, "failed to remove token file")
	}
	return nil
}
