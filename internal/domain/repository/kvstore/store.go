package kvstore

import (
	"context"
	"encoding/json"
)

// Store is a read-only key-value store. Get returns (nil, nil) for a key
// that does not exist.
type Store interface {
	Get(ctx context.Context, key string) (json.RawMessage, error)
}

// Value turns a stored string into JSON. Text that is not valid JSON is
// returned as a JSON string, so plain URLs work as pointer values.
func Value(s string) json.RawMessage {
	if json.Valid([]byte(s)) {
		return json.RawMessage(s)
	}

	quoted, _ := json.Marshal(s)

	return quoted
}
