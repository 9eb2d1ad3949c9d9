package session

import (
	"context"
	"sync"
)

// MemoryMessageStore is an in-process MessageStore, used in tests and when no
// Redis is configured.
type MemoryMessageStore struct {
	mu       sync.Mutex
	messages map[string]string
}

// NewMemoryMessageStore builds an empty store.
func NewMemoryMessageStore() *MemoryMessageStore {
	return &MemoryMessageStore{messages: make(map[string]string)}
}

// Store saves the pending message for the session.
func (s *MemoryMessageStore) Store(_ context.Context, sessionID, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages[sessionID] = message
	return nil
}

// Consume removes and returns the pending message, if any.
func (s *MemoryMessageStore) Consume(_ context.Context, sessionID string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	message, ok := s.messages[sessionID]
	if !ok {
		return "", false, nil
	}
	delete(s.messages, sessionID)
	return message, true, nil
}
