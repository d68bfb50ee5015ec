package store

import (
	"context"
	"encoding/json"
	"fmt"
)

// GetJSON decodes the document at key into v. It reports false, leaving v
// untouched, when the key is missing. A document that is not valid JSON is a
// read failure.
func GetJSON(ctx context.Context, s Store, key string, v any) (bool, error) {
	raw, ok, err := s.Get(ctx, key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false, fmt.Errorf("store: decode %s: %w: %w", key, ErrRead, err)
	}
	return true, nil
}

// SetJSON encodes v and writes it at key, replacing the whole document.
func SetJSON(ctx context.Context, s Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w: %w", key, ErrWrite, err)
	}
	return s.Set(ctx, key, string(raw))
}
