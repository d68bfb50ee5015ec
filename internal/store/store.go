// Package store is the key-value document store the goals and streak
// documents live in.
package store

import (
	"context"
	"errors"
	"fmt"
)

// Document keys
const (
	GoalsKey       = "@goals"
	StreakKey      = "@streakData"
	DeviceTokenKey = "@deviceToken"
)

var (
	ErrRead  = errors.New("storage read failed")
	ErrWrite = errors.New("storage write failed")
)

// Store is an asynchronous-style get/set/remove string store. Get reports
// ok=false for a missing key.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

func readError(key string, err error) error {
	return fmt.Errorf("store: get %s: %w: %w", key, ErrRead, err)
}

func writeError(op, key string, err error) error {
	return fmt.Errorf("store: %s %s: %w: %w", op, key, ErrWrite, err)
}
