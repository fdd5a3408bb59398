// pkg/memcache/seen_signatures.go
package mem

import (
	"sync"
	"time"
)

// SeenSignatures is a TTL cache of recently accepted webhook signatures.
// It short-circuits obvious redelivery storms before touching the database;
// the unique index on webhook_events.signature remains the correctness
// mechanism, this is only a fast path.
type SeenSignatures struct {
	mu   sync.RWMutex
	data map[string]time.Time
	ttl  time.Duration
}

func NewSeenSignatures(ttl time.Duration) *SeenSignatures {
	return &SeenSignatures{
		data: make(map[string]time.Time),
		ttl:  ttl,
	}
}

func (s *SeenSignatures) Add(signature string) {
	if signature == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[signature] = time.Now().Add(s.ttl)
}

func (s *SeenSignatures) Contains(signature string) bool {
	s.mu.RLock()
	expiresAt, ok := s.data[signature]
	s.mu.RUnlock()
	if !ok {
		return false
	}
	if time.Now().After(expiresAt) {
		s.mu.Lock()
		delete(s.data, signature) // cleanup expired
		s.mu.Unlock()
		return false
	}
	return true
}

// Len is used by tests and the occasional debug endpoint.
func (s *SeenSignatures) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
