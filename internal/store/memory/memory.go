package memory

import (
	"sync"

	"go.uber.org/zap"
)

// Store keeps the records of one kind for the lifetime of the process.
type Store[T any] struct {
	mu      sync.Mutex
	records []T
	log     *zap.Logger
}

func New[T any](seed []T, logger *zap.Logger) *Store[T] {
	records := make([]T, len(seed))
	copy(records, seed)
	return &Store[T]{records: records, log: logger}
}

func (s *Store[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}
