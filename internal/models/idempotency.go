package models

import (
	"encoding/json"
	"time"
)

// IdempotencyKey represents a stored idempotency key record. Wearable
// clients retry uploads aggressively, so replayed submissions return the
// original response instead of duplicating measurements.
type IdempotencyKey struct {
	ID           string          `json:"id"`
	Key          string          `json:"key"`
	Route        string          `json:"route"`
	UserID       string          `json:"user_id"`
	ResponseBody json.RawMessage `json:"response_body"`
	StatusCode   int             `json:"status_code"`
	CreatedAt    time.Time       `json:"created_at"`
}
