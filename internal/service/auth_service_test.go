package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"

	pb "github.com/mmynk/splitledger/pkg/proto"
)

func TestAuthService_RegisterAndLogin(t *testing.T) {
	ts := setupTestServer(t)
	ctx := context.Background()

	alice := ts.register(t, "Alice")
	if alice.id == 0 || alice.token == "" {
		t.Fatalf("expected id and token, got %+v", alice)
	}

	login, err := ts.auth.Login(ctx, connect.NewRequest(&pb.LoginRequest{
		Email:    "ALICE@example.com",
		Password: testPassword,
	}))
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if login.Msg.User.Id != alice.id {
		t.Errorf("expected user %d, got %d", alice.id, login.Msg.User.Id)
	}
	if login.Msg.User.Email != "alice@example.com" {
		t.Errorf("expected normalized email, got %q", login.Msg.User.Email)
	}

	// The login token works on authenticated endpoints.
	me, err := ts.auth.GetCurrentUser(ctx, authed(session{token: login.Msg.Token}, &pb.GetCurrentUserRequest{}))
	if err != nil {
		t.Fatalf("GetCurrentUser failed: %v", err)
	}
	if me.Msg.User.Name != "Alice" {
		t.Errorf("expected Alice, got %q", me.Msg.User.Name)
	}
}

func TestAuthService_RegisterErrors(t *testing.T) {
	ts := setupTestServer(t)
	ts.register(t, "Alice")

	tests := []struct {
		name string
		req  *pb.RegisterRequest
		want connect.Code
	}{
		{
			name: "duplicate name",
			req:  &pb.RegisterRequest{Name: "Alice", Email: "other@example.com", Password: testPassword},
			want: connect.CodeAlreadyExists,
		},
		{
			name: "duplicate email",
			req:  &pb.RegisterRequest{Name: "Alicia", Email: "alice@example.com", Password: testPassword},
			want: connect.CodeAlreadyExists,
		},
		{
			name: "short password",
			req:  &pb.RegisterRequest{Name: "Bob", Email: "bob@example.com", Password: "short"},
			want: connect.CodeInvalidArgument,
		},
		{
			name: "missing name",
			req:  &pb.RegisterRequest{Email: "bob@example.com", Password: testPassword},
			want: connect.CodeInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ts.auth.Register(context.Background(), connect.NewRequest(tt.req))
			assertCode(t, err, tt.want)
		})
	}
}

func TestAuthService_LoginFailures(t *testing.T) {
	ts := setupTestServer(t)
	ts.register(t, "Alice")
	ctx := context.Background()

	_, err := ts.auth.Login(ctx, connect.NewRequest(&pb.LoginRequest{Email: "alice@example.com", Password: "wrong-password"}))
	assertCode(t, err, connect.CodeUnauthenticated)

	_, err = ts.auth.Login(ctx, connect.NewRequest(&pb.LoginRequest{Email: "nobody@example.com", Password: testPassword}))
	assertCode(t, err, connect.CodeUnauthenticated)

	_, err = ts.auth.Login(ctx, connect.NewRequest(&pb.LoginRequest{Email: "alice@example.com"}))
	assertCode(t, err, connect.CodeInvalidArgument)
}

func TestAuthService_GetUser(t *testing.T) {
	ts := setupTestServer(t)
	ctx := context.Background()
	alice := ts.register(t, "Alice")
	bob := ts.register(t, "Bob")

	byName, err := ts.auth.GetUser(ctx, authed(alice, &pb.GetUserRequest{Name: "Bob"}))
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if byName.Msg.User.Id != bob.id {
		t.Errorf("expected id %d, got %d", bob.id, byName.Msg.User.Id)
	}
	if byName.Msg.User.Email != "" {
		t.Errorf("expected other user's email to be hidden, got %q", byName.Msg.User.Email)
	}

	self, err := ts.auth.GetUser(ctx, authed(alice, &pb.GetUserRequest{Id: alice.id}))
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if self.Msg.User.Email != "alice@example.com" {
		t.Errorf("expected own email, got %q", self.Msg.User.Email)
	}

	_, err = ts.auth.GetUser(ctx, authed(alice, &pb.GetUserRequest{Name: "Nobody"}))
	assertCode(t, err, connect.CodeNotFound)

	_, err = ts.auth.GetUser(ctx, authed(alice, &pb.GetUserRequest{}))
	assertCode(t, err, connect.CodeInvalidArgument)

	_, err = ts.auth.GetUser(ctx, connect.NewRequest(&pb.GetUserRequest{Name: "Bob"}))
	assertCode(t, err, connect.CodeUnauthenticated)
}

func TestAuthService_GetCurrentUserRequiresToken(t *testing.T) {
	ts := setupTestServer(t)

	_, err := ts.auth.GetCurrentUser(context.Background(), connect.NewRequest(&pb.GetCurrentUserRequest{}))
	assertCode(t, err, connect.CodeUnauthenticated)

	_, err = ts.auth.GetCurrentUser(context.Background(), authed(session{token: "garbage"}, &pb.GetCurrentUserRequest{}))
	assertCode(t, err, connect.CodeUnauthenticated)
}
