package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage"
	pb "github.com/mmynk/splitledger/pkg/proto"
	"github.com/mmynk/splitledger/pkg/proto/protoconnect"
)

// GroupService implements the Connect GroupService
type GroupService struct {
	protoconnect.UnimplementedGroupServiceHandler
	store  storage.Store
	logger *slog.Logger
}

// NewGroupService creates a new GroupService with the given storage backend.
func NewGroupService(store storage.Store, logger *slog.Logger) *GroupService {
	return &GroupService{store: store, logger: logger}
}

// CreateGroup creates a new group with the caller as its first member.
func (s *GroupService) CreateGroup(ctx context.Context, req *connect.Request[pb.CreateGroupRequest]) (*connect.Response[pb.CreateGroupResponse], error) {
	creatorID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Info("CreateGroup request received", "name", req.Msg.Name, "creator_id", creatorID)

	name := strings.TrimSpace(req.Msg.Name)
	if name == "" {
		return nil, toConnectError(fmt.Errorf("group name is required: %w", models.ErrInvalidInput))
	}

	group := &models.Group{Name: name, CreatedByID: creatorID}
	if err := s.store.CreateGroup(ctx, group); err != nil {
		s.logger.Error("CreateGroup failed", "name", name, "error", err)
		return nil, toConnectError(err)
	}

	s.logger.Info("Group created", "group_id", group.ID, "name", group.Name)

	names, err := s.memberNames(ctx, group)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&pb.CreateGroupResponse{
		Group: toProtoGroup(group, names),
	}), nil
}

// AddMember adds a user to a group by name. Adding an existing member succeeds and
// reports AlreadyMember.
func (s *GroupService) AddMember(ctx context.Context, req *connect.Request[pb.AddMemberRequest]) (*connect.Response[pb.AddMemberResponse], error) {
	if _, err := callerID(ctx); err != nil {
		return nil, err
	}
	s.logger.Info("AddMember request received", "group", req.Msg.GroupName, "user", req.Msg.UserName)

	group, err := s.store.GetGroupByName(ctx, strings.TrimSpace(req.Msg.GroupName))
	if err != nil {
		s.logger.Warn("AddMember: group lookup failed", "group", req.Msg.GroupName, "error", err)
		return nil, toConnectError(err)
	}
	user, err := s.store.GetUserByName(ctx, strings.TrimSpace(req.Msg.UserName))
	if err != nil {
		s.logger.Warn("AddMember: user lookup failed", "user", req.Msg.UserName, "error", err)
		return nil, toConnectError(err)
	}

	member, created, err := s.store.AddGroupMember(ctx, group.ID, user.ID)
	if err != nil {
		s.logger.Error("AddMember failed", "group_id", group.ID, "user_id", user.ID, "error", err)
		return nil, toConnectError(err)
	}

	if created {
		s.logger.Info("Member added", "group_id", group.ID, "user_id", user.ID)
	}
	return connect.NewResponse(&pb.AddMemberResponse{
		Member: &pb.GroupMember{
			UserId:   member.UserID,
			UserName: user.Name,
			JoinedAt: member.JoinedAt,
		},
		AlreadyMember: !created,
	}), nil
}

// GetGroup retrieves a group by name.
func (s *GroupService) GetGroup(ctx context.Context, req *connect.Request[pb.GetGroupRequest]) (*connect.Response[pb.GetGroupResponse], error) {
	if _, err := callerID(ctx); err != nil {
		return nil, err
	}
	s.logger.Info("GetGroup request received", "name", req.Msg.Name)

	group, err := s.store.GetGroupByName(ctx, strings.TrimSpace(req.Msg.Name))
	if err != nil {
		s.logger.Warn("GetGroup failed", "name", req.Msg.Name, "error", err)
		return nil, toConnectError(err)
	}

	names, err := s.memberNames(ctx, group)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&pb.GetGroupResponse{
		Group: toProtoGroup(group, names),
	}), nil
}

func (s *GroupService) memberNames(ctx context.Context, group *models.Group) (userNames, error) {
	ids := make([]int64, len(group.Members))
	for i, m := range group.Members {
		ids[i] = m.UserID
	}
	users, err := s.store.GetUsersByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return namesOf(users), nil
}
