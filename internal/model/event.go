package model

import (
	"encoding/json"
	"time"
)

// Event announces a record appended to a fixture store.
type Event struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	Record    json.RawMessage `json:"record"`
	CreatedAt time.Time       `json:"createdAt"`
}
