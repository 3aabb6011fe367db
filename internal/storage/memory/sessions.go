package memory

import (
	"context"
	"sync"

	"aadhira_hotel/internal/domain"
)

// Sessions is the process-local SessionStore used when Redis is not configured.
type Sessions struct {
	mu    sync.RWMutex
	langs map[string]string
}

func NewSessions() *Sessions { return &Sessions{langs: make(map[string]string)} }

func (s *Sessions) Language(_ context.Context, session string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.langs[session]
	if !ok {
		return "", domain.ErrNotFound
	}
	return l, nil
}

func (s *Sessions) Forget(_ context.Context, session string) error {
	s.mu.Lock()
	delete(s.langs, session)
	s.mu.Unlock()
	return nil
}

func (s *Sessions) SetLanguage(_ context.Context, session, lang string) error {
	s.mu.Lock()
	s.langs[session] = lang
	s.mu.Unlock()
	return nil
}
