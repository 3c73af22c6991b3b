// Package fixture decodes the static seed data of a deployment.
package fixture

import (
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"mockgraph/internal/domain"
)

//go:embed data/*.json
var files embed.FS

// Load reads the seed for kind from path, or from the embedded fixture when
// path is empty.
func Load[T any](kind domain.Kind, path string) ([]T, error) {
	if path == "" {
		return Default[T](kind)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fixture: %w", err)
	}
	defer func() { _ = f.Close() }()
	return Decode[T](f)
}

func Default[T any](kind domain.Kind) ([]T, error) {
	if !domain.IsValidKind(string(kind)) {
		return nil, fmt.Errorf("fixture: %w: %q", domain.ErrUnknownKind, kind)
	}
	f, err := files.Open("data/" + string(kind) + ".json")
	if err != nil {
		return nil, fmt.Errorf("open embedded fixture: %w", err)
	}
	defer func() { _ = f.Close() }()
	return Decode[T](f)
}

// Decode expects a JSON array of flat records.
func Decode[T any](r io.Reader) ([]T, error) {
	var records []T
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode fixture: %w", err)
	}
	return records, nil
}
