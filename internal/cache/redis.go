package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultOpTimeout bounds every Redis round trip when no timeout is configured.
const DefaultOpTimeout = 250 * time.Millisecond

// RedisOptions configures a RedisClient.
type RedisOptions struct {
	Addr     string
	Password string
	DB       int

	// OpTimeout bounds dialing and each command. Zero means DefaultOpTimeout.
	OpTimeout time.Duration
}

// RedisClient implements Client on top of go-redis.
// Connection errors and timeouts surface as Unavailable lookups or returned errors.
type RedisClient struct {
	rdb       *redis.Client
	opTimeout time.Duration
}

var _ Client = (*RedisClient)(nil)

// NewRedisClient creates a client for the given server. It does not dial; use Ping to
// check connectivity at startup.
func NewRedisClient(opts RedisOptions) *RedisClient {
	timeout := opts.OpTimeout
	if timeout <= 0 {
		timeout = DefaultOpTimeout
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:         opts.Addr,
		Password:     opts.Password,
		DB:           opts.DB,
		DialTimeout:  timeout,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
		// A failed cache call degrades to a miss; retrying only delays the request.
		MaxRetries: -1,
	})
	return &RedisClient{rdb: rdb, opTimeout: timeout}
}

// Get fetches key.
func (c *RedisClient) Get(ctx context.Context, key string) Lookup {
	ctx, cancel := context.WithTimeout(ctx, c.opTimeout)
	defer cancel()

	val, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return Lookup{Status: Miss}
	}
	if err != nil {
		return Lookup{Status: Unavailable, Err: fmt.Errorf("%w: get %q: %w", ErrUnavailable, key, err)}
	}
	return Lookup{Value: val, Status: Hit}
}

// Set stores value under key with the given expiry.
func (c *RedisClient) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, c.opTimeout)
	defer cancel()

	if err := c.rdb.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("%w: set %q: %w", ErrUnavailable, key, err)
	}
	return nil
}

// Delete removes key.
func (c *RedisClient) Delete(ctx context.Context, key string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, c.opTimeout)
	defer cancel()

	n, err := c.rdb.Del(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("%w: delete %q: %w", ErrUnavailable, key, err)
	}
	return n > 0, nil
}

// Ping checks that the server answers.
func (c *RedisClient) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.opTimeout)
	defer cancel()

	if err := c.rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%w: ping: %w", ErrUnavailable, err)
	}
	return nil
}

// Close closes the underlying connection pool.
func (c *RedisClient) Close() error {
	return c.rdb.Close()
}
