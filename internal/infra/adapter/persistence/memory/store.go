package memory

import "sync"

// Store holds the named collections of one in-memory database.
type Store struct {
	mu          sync.Mutex
	collections map[string]any
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{collections: map[string]any{}}
}

// collectionFor returns the collection called name, creating it on first use.
func collectionFor[T any](s *Store, name string) *Collection[T] {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.collections[name].(*Collection[T]); ok {
		return c
	}
	c := NewCollection[T]()
	s.collections[name] = c
	return c
}
