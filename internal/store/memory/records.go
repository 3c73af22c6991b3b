package memory

import (
	"context"

	"go.uber.org/zap"
)

func (s *Store[T]) All(_ context.Context) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]T, len(s.records))
	copy(result, s.records)
	return result, nil
}

// Append assigns the next id as the current record count plus one.
func (s *Store[T]) Append(_ context.Context, build func(id int32) T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := int32(len(s.records) + 1)
	record := build(id)
	s.records = append(s.records, record)
	s.log.Debug("record appended", zap.Int32("id", id), zap.Int("records", len(s.records)))
	return record, nil
}
