package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/internal/auth"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage"
	pb "github.com/mmynk/splitledger/pkg/proto"
	"github.com/mmynk/splitledger/pkg/proto/protoconnect"
)

// AuthService implements the AuthService RPC interface.
type AuthService struct {
	protoconnect.UnimplementedAuthServiceHandler
	authenticator auth.Authenticator
	jwtManager    *auth.JWTManager
	users         storage.UserStore
	logger        *slog.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(authenticator auth.Authenticator, jwtManager *auth.JWTManager, users storage.UserStore, logger *slog.Logger) *AuthService {
	return &AuthService{
		authenticator: authenticator,
		jwtManager:    jwtManager,
		users:         users,
		logger:        logger,
	}
}

// Register creates a new user account and returns a session token.
func (s *AuthService) Register(ctx context.Context, req *connect.Request[pb.RegisterRequest]) (*connect.Response[pb.RegisterResponse], error) {
	s.logger.Info("Register request received", "name", req.Msg.Name, "email", req.Msg.Email)

	user, err := s.authenticator.Register(ctx, req.Msg.Name, req.Msg.Email, req.Msg.Password)
	if err != nil {
		s.logger.Warn("Registration failed", "name", req.Msg.Name, "error", err)
		return nil, toConnectError(err)
	}

	token, err := s.jwtManager.Generate(user)
	if err != nil {
		s.logger.Error("Failed to generate token", "user_id", user.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	s.logger.Info("User registered", "user_id", user.ID, "name", user.Name)
	return connect.NewResponse(&pb.RegisterResponse{
		User:  toProtoUser(user, true),
		Token: token,
	}), nil
}

// Login authenticates a user and returns a session token.
func (s *AuthService) Login(ctx context.Context, req *connect.Request[pb.LoginRequest]) (*connect.Response[pb.LoginResponse], error) {
	s.logger.Info("Login request received", "email", req.Msg.Email)

	if req.Msg.Email == "" || req.Msg.Password == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, auth.ErrInvalidCredentials)
	}

	user, err := s.authenticator.Authenticate(ctx, req.Msg.Email, req.Msg.Password)
	if err != nil {
		s.logger.Warn("Login failed", "email", req.Msg.Email, "error", err)
		return nil, toConnectError(err)
	}

	token, err := s.jwtManager.Generate(user)
	if err != nil {
		s.logger.Error("Failed to generate token", "user_id", user.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	s.logger.Info("User logged in", "user_id", user.ID)
	return connect.NewResponse(&pb.LoginResponse{
		User:  toProtoUser(user, true),
		Token: token,
	}), nil
}

// GetUser looks up another user by ID or name. Email is only returned for the caller.
func (s *AuthService) GetUser(ctx context.Context, req *connect.Request[pb.GetUserRequest]) (*connect.Response[pb.GetUserResponse], error) {
	caller, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	var user *models.User
	switch {
	case req.Msg.Id != 0:
		user, err = s.users.GetUserByID(ctx, req.Msg.Id)
	case strings.TrimSpace(req.Msg.Name) != "":
		user, err = s.users.GetUserByName(ctx, strings.TrimSpace(req.Msg.Name))
	default:
		err = fmt.Errorf("id or name is required: %w", models.ErrInvalidInput)
	}
	if err != nil {
		s.logger.Warn("GetUser failed", "id", req.Msg.Id, "name", req.Msg.Name, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&pb.GetUserResponse{
		User: toProtoUser(user, user.ID == caller),
	}), nil
}

// GetCurrentUser returns the currently authenticated user's information.
func (s *AuthService) GetCurrentUser(ctx context.Context, req *connect.Request[pb.GetCurrentUserRequest]) (*connect.Response[pb.GetCurrentUserResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		s.logger.Warn("GetCurrentUser failed", "user_id", userID, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&pb.GetCurrentUserResponse{
		User: toProtoUser(user, true),
	}), nil
}
