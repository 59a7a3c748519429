// Package cache provides the best-effort key-value cache used to hold derived balances.
//
// Cache failures are ordinary return values: Get reports Hit, Miss or Unavailable and
// writes return an error the caller may log and drop. Nothing in this package panics
// or blocks past its configured operation timeout when the backing service is down.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrUnavailable means the backing cache could not be reached or answered with an error.
	ErrUnavailable = errors.New("cache unavailable")

	// ErrDisabled is returned by DisabledClient. It wraps ErrUnavailable.
	ErrDisabled = fmt.Errorf("%w: caching disabled", ErrUnavailable)
)

// Status is the outcome of a cache lookup.
type Status int

const (
	Miss Status = iota
	Hit
	Unavailable
)

func (s Status) String() string {
	switch s {
	case Hit:
		return "hit"
	case Miss:
		return "miss"
	default:
		return "unavailable"
	}
}

// Lookup is the result of Client.Get. Value is set only when Status is Hit;
// Err is set only when Status is Unavailable.
type Lookup struct {
	Value  []byte
	Status Status
	Err    error
}

// Client is a key-value cache with per-key expiry.
type Client interface {
	// Get fetches key. A missing or expired key is a Miss, not an error.
	Get(ctx context.Context, key string) Lookup

	// Set stores value under key for ttl.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes key and reports whether it existed.
	Delete(ctx context.Context, key string) (bool, error)

	// Ping checks connectivity.
	Ping(ctx context.Context) error

	// Close releases the client's connections.
	Close() error
}

// DisabledClient is used when no cache is configured. Every lookup is Unavailable.
type DisabledClient struct{}

var _ Client = DisabledClient{}

func (DisabledClient) Get(context.Context, string) Lookup {
	return Lookup{Status: Unavailable, Err: ErrDisabled}
}

func (DisabledClient) Set(context.Context, string, []byte, time.Duration) error { return ErrDisabled }

func (DisabledClient) Delete(context.Context, string) (bool, error) { return false, ErrDisabled }

func (DisabledClient) Ping(context.Context) error { return ErrDisabled }

func (DisabledClient) Close() error { return nil }
