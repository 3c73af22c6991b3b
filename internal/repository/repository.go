package repository

import "context"

// Repository is an ordered, append-only record collection.
type Repository[T any] interface {
	All(ctx context.Context) ([]T, error)
	// Append stores the record returned by build. build receives the id the
	// record must carry.
	Append(ctx context.Context, build func(id int32) T) (T, error)
	Len() int
}

// Filter returns the records matching match, in order. The result is never nil.
func Filter[T any](records []T, match func(T) bool) []T {
	result := []T{}
	for _, record := range records {
		if match(record) {
			result = append(result, record)
		}
	}
	return result
}

// Find returns the first record matching match, or nil.
func Find[T any](records []T, match func(T) bool) *T {
	for i := range records {
		if match(records[i]) {
			return &records[i]
		}
	}
	return nil
}
