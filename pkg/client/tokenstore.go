package client

import (
	"sync"

	"github.com/nitgconnect/backend/internal/storage"
)

// TokenStore persists the signed-in token and user between runs.
type TokenStore interface {
	// Load returns the saved token and user. Nothing saved is ("", nil, nil).
	Load() (string, Document, error)
	Save(token string, user Document) error
	Clear() error
}

type MemoryTokenStore struct {
	mu    sync.RWMutex
	token string
	user  Document
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{}
}

func (s *MemoryTokenStore) Load() (string, Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.user, nil
}

func (s *MemoryTokenStore) Save(token string, user Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token, s.user = token, user
	return nil
}

func (s *MemoryTokenStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token, s.user = "", nil
	return nil
}

type savedSession struct {
	Token string   `json:"token"`
	User  Document `json:"user"`
}

// FileTokenStore keeps the token and user in a JSON file.
type FileTokenStore struct {
	file *storage.JSONStore
}

func NewFileTokenStore(dir string) (*FileTokenStore, error) {
	file, err := storage.NewJSONStore(dir, "session.json")
	if err != nil {
		return nil, err
	}
	return &FileTokenStore{file: file}, nil
}

// Path is the session file location.
func (s *FileTokenStore) Path() string {
	return s.file.Path()
}

func (s *FileTokenStore) Load() (string, Document, error) {
	var saved savedSession
	if err := s.file.Load(&saved); err != nil {
		return "", nil, err
	}
	return saved.Token, saved.User, nil
}

func (s *FileTokenStore) Save(token string, user Document) error {
	return s.file.Save(savedSession{Token: token, User: user})
}

func (s *FileTokenStore) Clear() error {
	return s.file.Delete()
}
