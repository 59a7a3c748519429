package cache

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/shopspring/decimal"

	"github.com/mmynk/splitledger/internal/models"
)

func setupRedis(t *testing.T) (*miniredis.Miniredis, *RedisClient) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := NewRedisClient(RedisOptions{Addr: mr.Addr(), OpTimeout: 100 * time.Millisecond})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleSummary(userID int64) *models.BalanceSummary {
	return &models.BalanceSummary{
		UserID:   userID,
		NetTotal: decimal.RequireFromString("6.67"),
		Balances: []models.CounterpartyBalance{
			{UserID: 2, UserName: "bob", Amount: decimal.RequireFromString("3.33")},
			{UserID: 3, UserName: "charlie", Amount: decimal.RequireFromString("3.34")},
		},
	}
}

func TestBalanceKey(t *testing.T) {
	if got := BalanceKey(42); got != "user_balance_summary:42" {
		t.Errorf("BalanceKey(42) = %q", got)
	}
}

func TestRedisClient(t *testing.T) {
	ctx := context.Background()
	mr, client := setupRedis(t)

	if err := client.Ping(ctx); err != nil {
		t.Fatalf("Ping() error = %v", err)
	}

	if got := client.Get(ctx, "absent"); got.Status != Miss || got.Err != nil {
		t.Errorf("Get(absent) = %+v, want Miss", got)
	}

	if err := client.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if ttl := mr.TTL("k"); ttl != time.Minute {
		t.Errorf("TTL = %v, want %v", ttl, time.Minute)
	}

	got := client.Get(ctx, "k")
	if got.Status != Hit || string(got.Value) != "v" {
		t.Errorf("Get(k) = %+v, want Hit with v", got)
	}

	deleted, err := client.Delete(ctx, "k")
	if err != nil || !deleted {
		t.Errorf("Delete(k) = %v, %v; want true, nil", deleted, err)
	}
	deleted, err = client.Delete(ctx, "k")
	if err != nil || deleted {
		t.Errorf("second Delete(k) = %v, %v; want false, nil", deleted, err)
	}
}

func TestRedisClient_Expiry(t *testing.T) {
	ctx := context.Background()
	mr, client := setupRedis(t)

	if err := client.Set(ctx, "k", []byte("v"), time.Second); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	mr.FastForward(2 * time.Second)

	if got := client.Get(ctx, "k"); got.Status != Miss {
		t.Errorf("Get after expiry = %v, want miss", got.Status)
	}
}

func TestRedisClient_Unavailable(t *testing.T) {
	ctx := context.Background()
	mr, client := setupRedis(t)
	mr.Close()

	got := client.Get(ctx, "k")
	if got.Status != Unavailable {
		t.Fatalf("Get() status = %v, want unavailable", got.Status)
	}
	if !errors.Is(got.Err, ErrUnavailable) {
		t.Errorf("Get() err = %v, want ErrUnavailable", got.Err)
	}
	if err := client.Set(ctx, "k", []byte("v"), time.Minute); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Set() err = %v, want ErrUnavailable", err)
	}
	if _, err := client.Delete(ctx, "k"); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Delete() err = %v, want ErrUnavailable", err)
	}
	if err := client.Ping(ctx); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Ping() err = %v, want ErrUnavailable", err)
	}
}

func TestDisabledClient(t *testing.T) {
	ctx := context.Background()
	var client DisabledClient

	if got := client.Get(ctx, "k"); got.Status != Unavailable || !errors.Is(got.Err, ErrUnavailable) {
		t.Errorf("Get() = %+v, want unavailable", got)
	}
	if err := client.Set(ctx, "k", nil, time.Minute); !errors.Is(err, ErrDisabled) {
		t.Errorf("Set() err = %v, want ErrDisabled", err)
	}
	if err := client.Close(); err != nil {
		t.Errorf("Close() err = %v", err)
	}
}

func TestBalanceCache_RoundTrip(t *testing.T) {
	ctx := context.Background()
	mr, client := setupRedis(t)
	bc := NewBalanceCache(client, 0, discardLogger())

	if _, ok := bc.Get(ctx, 1); ok {
		t.Fatal("Get() on empty cache reported a hit")
	}

	want := sampleSummary(1)
	bc.Set(ctx, want)

	if ttl := mr.TTL(BalanceKey(1)); ttl != DefaultTTL {
		t.Errorf("TTL = %v, want %v", ttl, DefaultTTL)
	}

	got, ok := bc.Get(ctx, 1)
	if !ok {
		t.Fatal("Get() after Set() missed")
	}
	if got.UserID != want.UserID || !got.NetTotal.Equal(want.NetTotal) {
		t.Errorf("Get() = %+v, want %+v", got, want)
	}
	if len(got.Balances) != len(want.Balances) {
		t.Fatalf("got %d balances, want %d", len(got.Balances), len(want.Balances))
	}
	for i := range want.Balances {
		g, w := got.Balances[i], want.Balances[i]
		if g.UserID != w.UserID || g.UserName != w.UserName || !g.Amount.Equal(w.Amount) {
			t.Errorf("balance %d = %+v, want %+v", i, g, w)
		}
	}
}

func TestBalanceCache_EmptyBalancesDecodeAsEmptySlice(t *testing.T) {
	ctx := context.Background()
	_, client := setupRedis(t)
	bc := NewBalanceCache(client, time.Minute, discardLogger())

	bc.Set(ctx, &models.BalanceSummary{UserID: 9, NetTotal: decimal.Zero, Balances: []models.CounterpartyBalance{}})

	got, ok := bc.Get(ctx, 9)
	if !ok {
		t.Fatal("Get() missed")
	}
	if got.Balances == nil || len(got.Balances) != 0 {
		t.Errorf("Balances = %#v, want empty non-nil slice", got.Balances)
	}
}

func TestBalanceCache_Invalidate(t *testing.T) {
	ctx := context.Background()
	mr, client := setupRedis(t)
	bc := NewBalanceCache(client, time.Minute, discardLogger())

	for _, id := range []int64{1, 2, 3} {
		bc.Set(ctx, sampleSummary(id))
	}

	bc.Invalidate(ctx, 1, 2, 2, 99)

	if mr.Exists(BalanceKey(1)) || mr.Exists(BalanceKey(2)) {
		t.Error("invalidated keys still present")
	}
	if !mr.Exists(BalanceKey(3)) {
		t.Error("uninvolved key was removed")
	}
}

func TestBalanceCache_CorruptEntryIsMiss(t *testing.T) {
	ctx := context.Background()
	mr, client := setupRedis(t)
	bc := NewBalanceCache(client, time.Minute, discardLogger())

	if err := mr.Set(BalanceKey(5), "{not json"); err != nil {
		t.Fatalf("miniredis Set() error = %v", err)
	}
	if _, ok := bc.Get(ctx, 5); ok {
		t.Error("corrupt entry reported as a hit")
	}
}

func TestBalanceCache_Unavailable(t *testing.T) {
	ctx := context.Background()
	mr, client := setupRedis(t)
	bc := NewBalanceCache(client, time.Minute, discardLogger())
	mr.Close()

	start := time.Now()
	if _, ok := bc.Get(ctx, 1); ok {
		t.Error("Get() hit with cache down")
	}
	bc.Set(ctx, sampleSummary(1))
	bc.Invalidate(ctx, 1, 2)
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Errorf("cache calls took %v with server down", elapsed)
	}
}

func TestBalanceCache_Disabled(t *testing.T) {
	ctx := context.Background()
	bc := NewBalanceCache(DisabledClient{}, time.Minute, discardLogger())

	bc.Set(ctx, sampleSummary(1))
	if _, ok := bc.Get(ctx, 1); ok {
		t.Error("disabled cache reported a hit")
	}
	bc.Invalidate(ctx, 1)
}
