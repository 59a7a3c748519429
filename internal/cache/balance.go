package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mmynk/splitledger/internal/models"
)

// DefaultTTL is how long a cached balance summary lives when no TTL is configured.
const DefaultTTL = 300 * time.Second

// BalanceKey is the cache key holding the summary for userID.
func BalanceKey(userID int64) string {
	return fmt.Sprintf("user_balance_summary:%d", userID)
}

// BalanceCache stores per-user balance summaries as JSON under BalanceKey.
//
// All methods swallow cache failures. A failed or undecodable read is reported as a
// miss so the caller recomputes from the ledger.
type BalanceCache struct {
	client Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewBalanceCache wraps client. A non-positive ttl means DefaultTTL.
func NewBalanceCache(client Client, ttl time.Duration, logger *slog.Logger) *BalanceCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &BalanceCache{client: client, ttl: ttl, logger: logger}
}

// TTL returns the expiry applied to every stored summary.
func (c *BalanceCache) TTL() time.Duration {
	return c.ttl
}

// Get returns the cached summary for userID, or false on a miss or cache failure.
func (c *BalanceCache) Get(ctx context.Context, userID int64) (*models.BalanceSummary, bool) {
	lookup := c.client.Get(ctx, BalanceKey(userID))

	switch lookup.Status {
	case Hit:
		var summary models.BalanceSummary
		if err := json.Unmarshal(lookup.Value, &summary); err != nil {
			c.logger.Warn("Discarding undecodable balance cache entry", "user_id", userID, "error", err)
			errorsTotal.WithLabelValues("decode").Inc()
			lookupsTotal.WithLabelValues(Miss.String()).Inc()
			return nil, false
		}
		if summary.Balances == nil {
			summary.Balances = []models.CounterpartyBalance{}
		}
		lookupsTotal.WithLabelValues(Hit.String()).Inc()
		return &summary, true

	case Unavailable:
		c.logFailure("get", userID, lookup.Err)
		lookupsTotal.WithLabelValues(Unavailable.String()).Inc()
		return nil, false

	default:
		lookupsTotal.WithLabelValues(Miss.String()).Inc()
		return nil, false
	}
}

// Set stores summary under its user's key.
func (c *BalanceCache) Set(ctx context.Context, summary *models.BalanceSummary) {
	data, err := json.Marshal(summary)
	if err != nil {
		c.logger.Error("Failed to encode balance summary", "user_id", summary.UserID, "error", err)
		errorsTotal.WithLabelValues("encode").Inc()
		return
	}
	if err := c.client.Set(ctx, BalanceKey(summary.UserID), data, c.ttl); err != nil {
		c.logFailure("set", summary.UserID, err)
	}
}

// Invalidate deletes the cached summaries of every listed user. Duplicates are ignored.
func (c *BalanceCache) Invalidate(ctx context.Context, userIDs ...int64) {
	seen := make(map[int64]struct{}, len(userIDs))
	for _, id := range userIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}

		deleted, err := c.client.Delete(ctx, BalanceKey(id))
		if err != nil {
			c.logFailure("delete", id, err)
			continue
		}
		if deleted {
			invalidationsTotal.Inc()
			c.logger.Debug("Invalidated balance cache", "user_id", id)
		}
	}
}

func (c *BalanceCache) logFailure(op string, userID int64, err error) {
	if errors.Is(err, ErrDisabled) {
		return
	}
	errorsTotal.WithLabelValues(op).Inc()
	c.logger.Warn("Balance cache operation failed", "op", op, "user_id", userID, "error", err)
}
