package otp

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	code      string
	expiresAt time.Time
}

// MemoryStore is a single-process Store used for local development and
// tests. Expired entries are swept by a background goroutine; Stop
// releases it.
type MemoryStore struct {
	mu     sync.Mutex
	codes  map[string]memoryEntry
	stopCh chan struct{}
}

func NewMemoryStore() *MemoryStore {
	store := &MemoryStore{
		codes:  make(map[string]memoryEntry),
		stopCh: make(chan struct{}),
	}

	go store.cleanup()

	return store
}

func (s *MemoryStore) Put(_ context.Context, phone, code string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.codes[phone] = memoryEntry{
		code:      code,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}

func (s *MemoryStore) Verify(_ context.Context, phone, code string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.codes[phone]
	if !ok {
		return false, nil
	}
	if time.Now().After(entry.expiresAt) {
		delete(s.codes, phone)
		return false, nil
	}
	if entry.code != code {
		return false, nil
	}

	delete(s.codes, phone)
	return true, nil
}

func (s *MemoryStore) cleanup() {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			now := time.Now()
			s.mu.Lock()
			for phone, entry := range s.codes {
				if now.After(entry.expiresAt) {
					delete(s.codes, phone)
				}
			}
			s.mu.Unlock()
		case <-s.stopCh:
			return
		}
	}
}

func (s *MemoryStore) Stop() {
	close(s.stopCh)
}
