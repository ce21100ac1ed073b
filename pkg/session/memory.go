package session

import (
	"context"
	"sync"
	"time"

	"github.com/mentora-labs/campus-map/pkg"
)

type entry struct {
	blob     []byte
	expireAt time.Time
}

// MemoryStore is the default single-instance store: a map with a
// janitor goroutine sweeping expired sessions.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]entry

	closeOnce sync.Once
	stop      chan struct{}
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore(sweepEvery time.Duration) *MemoryStore {
	if sweepEvery <= 0 {
		sweepEvery = time.Minute
	}
	s := &MemoryStore{
		entries: make(map[string]entry),
		stop:    make(chan struct{}),
	}
	go s.janitor(sweepEvery)
	return s
}

func (s *MemoryStore) Put(_ context.Context, id string, blob []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[id] = entry{
		blob:     blob,
		expireAt: time.Now().Add(ttl),
	}
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) ([]byte, error) {
	s.mu.RLock()
	e, ok := s.entries[id]
	s.mu.RUnlock()

	if !ok || time.Now().After(e.expireAt) {
		return nil, pkg.WrapErrorf(nil, pkg.ErrNotFound, "session %s not found or expired", id)
	}
	return e.blob, nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
	return nil
}

func (s *MemoryStore) Close() {
	s.closeOnce.Do(func() {
		close(s.stop)
	})
}

func (s *MemoryStore) janitor(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-s.stop:
			return
		case now := <-ticker.C:
			s.sweep(now)
		}
	}
}

func (s *MemoryStore) sweep(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, e := range s.entries {
		if now.After(e.expireAt) {
			delete(s.entries, id)
		}
	}
}
