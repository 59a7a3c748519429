package service

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/alicebob/miniredis/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/mmynk/splitledger/internal/auth"
	"github.com/mmynk/splitledger/internal/cache"
	"github.com/mmynk/splitledger/internal/middleware"
	"github.com/mmynk/splitledger/internal/storage/sqlstore"
	pb "github.com/mmynk/splitledger/pkg/proto"
	"github.com/mmynk/splitledger/pkg/proto/protoconnect"
)

const testPassword = "correct-horse"

// testServer bundles the clients and backing services of one test server.
type testServer struct {
	auth   protoconnect.AuthServiceClient
	groups protoconnect.GroupServiceClient
	ledger protoconnect.LedgerServiceClient
	store  *sqlstore.Store
	redis  *miniredis.Miniredis
}

// setupTestServer starts all services over httptest with a temp SQLite database and
// an in-process Redis.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	store, err := sqlstore.NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	mr := miniredis.RunT(t)
	redisClient := cache.NewRedisClient(cache.RedisOptions{Addr: mr.Addr(), OpTimeout: 100 * time.Millisecond})

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	balances := cache.NewBalanceCache(redisClient, cache.DefaultTTL, logger)
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	authenticator := auth.NewPasswordAuthenticatorWithCost(store, bcrypt.MinCost)

	logging := middleware.LoggingInterceptor(logger)
	requireAuth := connect.WithInterceptors(logging, middleware.RequireAuth(jwtManager))
	optionalAuth := connect.WithInterceptors(logging, middleware.OptionalAuth(jwtManager))

	mux := http.NewServeMux()
	mux.Handle(protoconnect.NewAuthServiceHandler(NewAuthService(authenticator, jwtManager, store, logger), optionalAuth))
	mux.Handle(protoconnect.NewGroupServiceHandler(NewGroupService(store, logger), requireAuth))
	mux.Handle(protoconnect.NewLedgerServiceHandler(NewLedgerService(store, balances, logger), requireAuth))

	server := httptest.NewServer(mux)
	t.Cleanup(func() {
		server.Close()
		redisClient.Close()
		store.Close()
	})

	return &testServer{
		auth:   protoconnect.NewAuthServiceClient(http.DefaultClient, server.URL),
		groups: protoconnect.NewGroupServiceClient(http.DefaultClient, server.URL),
		ledger: protoconnect.NewLedgerServiceClient(http.DefaultClient, server.URL),
		store:  store,
		redis:  mr,
	}
}

// session is a registered user and their bearer token.
type session struct {
	id    int64
	name  string
	token string
}

func (ts *testServer) register(t *testing.T, name string) session {
	t.Helper()
	resp, err := ts.auth.Register(context.Background(), connect.NewRequest(&pb.RegisterRequest{
		Name:     name,
		Email:    name + "@example.com",
		Password: testPassword,
	}))
	if err != nil {
		t.Fatalf("Register(%s) failed: %v", name, err)
	}
	return session{id: resp.Msg.User.Id, name: name, token: resp.Msg.Token}
}

func (ts *testServer) createGroup(t *testing.T, owner session, name string) *pb.Group {
	t.Helper()
	resp, err := ts.groups.CreateGroup(context.Background(), authed(owner, &pb.CreateGroupRequest{Name: name}))
	if err != nil {
		t.Fatalf("CreateGroup(%s) failed: %v", name, err)
	}
	return resp.Msg.Group
}

// authed wraps msg in a request carrying the session's bearer token.
func authed[T any](s session, msg *T) *connect.Request[T] {
	req := connect.NewRequest(msg)
	req.Header().Set("Authorization", "Bearer "+s.token)
	return req
}

func assertCode(t *testing.T, err error, want connect.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", want)
	}
	if got := connect.CodeOf(err); got != want {
		t.Errorf("expected code %v, got %v (%v)", want, got, err)
	}
}
