package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

// ErrCorrupt is wrapped when a stored value cannot be decoded.
var ErrCorrupt = errors.New("corrupt stored value")

// Store is an opaque string-keyed key-value store.
type Store interface {
	// Get returns the value under key; ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Remove deletes key. Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error
}

// Batcher is implemented by stores that can write several keys atomically.
type Batcher interface {
	SetMany(ctx context.Context, values map[string]string) error
}

// SetAll writes all values, atomically when s implements Batcher.
func SetAll(ctx context.Context, s Store, values map[string]string) error {
	if b, ok := s.(Batcher); ok {
		return b.SetMany(ctx, values)
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if err := s.Set(ctx, k, values[k]); err != nil {
			return err
		}
	}
	return nil
}

// GetJSON decodes the JSON document under key into a T. A missing key
// yields the zero T.
func GetJSON[T any](ctx context.Context, s Store, key string) (T, error) {
	var v T

	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		return v, fmt.Errorf("failed to get %s: %w", key, err)
	}
	if !ok || raw == "" {
		return v, nil
	}

	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return v, fmt.Errorf("%w: %s: %v", ErrCorrupt, key, err)
	}
	return v, nil
}

// SetJSON stores v under key as JSON.
func SetJSON(ctx context.Context, s Store, key string, v any) error {
	raw, err := Encode(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := s.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

// Encode marshals v to the JSON text stored by SetJSON.
func Encode(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
