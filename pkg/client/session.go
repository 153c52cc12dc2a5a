package client

import (
	"context"
	"sync"
)

// Session is the process-wide sign-in state. It starts loading; Init settles it.
type Session struct {
	mu      sync.RWMutex
	client  *Client
	user    Document
	loading bool
}

func NewSession(c *Client) *Session {
	return &Session{client: c, loading: true}
}

// Init restores the persisted session. A saved token is verified with the server first; when
// verification fails the saved state is cleared and the session is signed out. The returned
// error is only for failures reading or clearing the token store.
func (s *Session) Init(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	token, user, err := s.client.tokens.Load()
	if err != nil || token == "" || user == nil {
		s.settle(nil)
		return err
	}

	if _, err := s.client.Auth().Verify(ctx, token); err != nil {
		clearErr := s.client.tokens.Clear()
		s.settle(nil)
		return clearErr
	}

	s.settle(user)
	return nil
}

func (s *Session) settle(user Document) {
	s.mu.Lock()
	s.user = user
	s.loading = false
	s.mu.Unlock()
}

// Login adopts user and token without asking the server again.
func (s *Session) Login(user Document, token string) error {
	if err := s.client.tokens.Save(token, user); err != nil {
		return err
	}
	s.settle(user)
	return nil
}

func (s *Session) Logout() error {
	err := s.client.tokens.Clear()
	s.settle(nil)
	return err
}

// Refresh re-runs Init.
func (s *Session) Refresh(ctx context.Context) error {
	return s.Init(ctx)
}

func (s *Session) User() Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

func (s *Session) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}
