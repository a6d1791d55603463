package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/sbilibin2017/fintrack/internal/logger"
	"github.com/sbilibin2017/fintrack/internal/models"
)

// Error variables
var (
	ErrGroupNotFound         = errors.New("group not found")
	ErrNotGroupMember        = errors.New("user is not a member of the group")
	ErrInvitationNotFound    = errors.New("invitation not found")
	ErrNotInvitee            = errors.New("invitation addressed to another user")
	ErrInvitationAlreadyUsed = errors.New("invitation already accepted")
	ErrEmptyGroupName        = errors.New("group name must not be empty")
	ErrEmptyInvitationEmail  = errors.New("invitation email must not be empty")
)

// GroupReader defines read operations for groups, members, and invitations.
type GroupReader interface {
	GetByID(ctx context.Context, groupID uuid.UUID) (*models.GroupDB, error)
	IsMember(ctx context.Context, groupID, userID uuid.UUID) (bool, error)
	ListMembers(ctx context.Context, groupID uuid.UUID) ([]models.GroupMemberDB, error)
	GetInvitationByID(ctx context.Context, invitationID uuid.UUID) (*models.GroupInvitationDB, error)
}

// GroupWriter defines write operations for groups, members, and invitations.
type GroupWriter interface {
	SaveGroup(ctx context.Context, group models.GroupDB) error
	SaveMember(ctx context.Context, groupID, userID uuid.UUID) error
	SaveInvitation(ctx context.Context, inv models.GroupInvitationDB) error
	MarkInvitationAccepted(ctx context.Context, invitationID uuid.UUID) error
}

// UserIDReader looks up users by id, used to match invitees by email.
type UserIDReader interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// GroupService handles shared financial groups and their invitations.
type GroupService struct {
	reader GroupReader
	writer GroupWriter
	users  UserIDReader
}

// NewGroupService creates a new GroupService.
func NewGroupService(reader GroupReader, writer GroupWriter, users UserIDReader) *GroupService {
	return &GroupService{
		reader: reader,
		writer: writer,
		users:  users,
	}
}

// Create creates a group and enrolls the creator as its first member.
func (svc *GroupService) Create(ctx context.Context, userID uuid.UUID, name string) (models.GroupDB, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.GroupDB{}, ErrEmptyGroupName
	}

	group := models.GroupDB{
		GroupID:   uuid.New(),
		Name:      name,
		CreatedBy: userID,
	}

	if err := svc.writer.SaveGroup(ctx, group); err != nil {
		logger.Log.Errorw("failed to save group", "name", name, "error", err)
		return models.GroupDB{}, err
	}
	if err := svc.writer.SaveMember(ctx, group.GroupID, userID); err != nil {
		logger.Log.Errorw("failed to enroll group creator", "groupID", group.GroupID, "userID", userID, "error", err)
		return models.GroupDB{}, err
	}

	return group, nil
}

// Invite invites a user by email to a group. Only members can invite.
func (svc *GroupService) Invite(ctx context.Context, inviterID, groupID uuid.UUID, email string) (models.GroupInvitationDB, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return models.GroupInvitationDB{}, ErrEmptyInvitationEmail
	}

	group, err := svc.reader.GetByID(ctx, groupID)
	if err != nil {
		logger.Log.Errorw("failed to get group", "groupID", groupID, "error", err)
		return models.GroupInvitationDB{}, err
	}
	if group == nil {
		return models.GroupInvitationDB{}, ErrGroupNotFound
	}

	isMember, err := svc.reader.IsMember(ctx, groupID, inviterID)
	if err != nil {
		logger.Log.Errorw("failed to check membership", "groupID", groupID, "userID", inviterID, "error", err)
		return models.GroupInvitationDB{}, err
	}
	if !isMember {
		return models.GroupInvitationDB{}, ErrNotGroupMember
	}

	inv := models.GroupInvitationDB{
		InvitationID: uuid.New(),
		GroupID:      groupID,
		Email:        email,
		InvitedBy:    inviterID,
	}

	if err := svc.writer.SaveInvitation(ctx, inv); err != nil {
		logger.Log.Errorw("failed to save invitation", "groupID", groupID, "email", email, "error", err)
		return models.GroupInvitationDB{}, err
	}

	return inv, nil
}

// Accept joins the calling user to the group an invitation points at. The
// caller's account email must match the invitation.
func (svc *GroupService) Accept(ctx context.Context, userID, invitationID uuid.UUID) error {
	inv, err := svc.reader.GetInvitationByID(ctx, invitationID)
	if err != nil {
		logger.Log.Errorw("failed to get invitation", "invitationID", invitationID, "error", err)
		return err
	}
	if inv == nil {
		return ErrInvitationNotFound
	}
	if inv.AcceptedAt != nil {
		return ErrInvitationAlreadyUsed
	}

	user, err := svc.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", userID, "error", err)
		return err
	}
	if user == nil || !strings.EqualFold(user.Email, inv.Email) {
		return ErrNotInvitee
	}

	if err := svc.writer.MarkInvitationAccepted(ctx, invitationID); err != nil {
		logger.Log.Errorw("failed to mark invitation accepted", "invitationID", invitationID, "error", err)
		return err
	}
	if err := svc.writer.SaveMember(ctx, inv.GroupID, userID); err != nil {
		logger.Log.Errorw("failed to enroll invited member", "groupID", inv.GroupID, "userID", userID, "error", err)
		return err
	}

	return nil
}

// Members lists the group's members. Only members may see the list.
func (svc *GroupService) Members(ctx context.Context, userID, groupID uuid.UUID) ([]models.GroupMemberDB, error) {
	isMember, err := svc.reader.IsMember(ctx, groupID, userID)
	if err != nil {
		logger.Log.Errorw("failed to check membership", "groupID", groupID, "userID", userID, "error", err)
		return nil, err
	}
	if !isMember {
		return nil, ErrNotGroupMember
	}

	members, err := svc.reader.ListMembers(ctx, groupID)
	if err != nil {
		logger.Log.Errorw("failed to list members", "groupID", groupID, "error", err)
		return nil, err
	}
	return members, nil
}
