package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/fintrack/internal/logger"
	"github.com/sbilibin2017/fintrack/internal/models"
)

// GroupReadRepository handles group read operations
type GroupReadRepository struct {
	db *sqlx.DB
}

func NewGroupReadRepository(db *sqlx.DB) *GroupReadRepository {
	return &GroupReadRepository{db: db}
}

// GetByID returns the group, or nil when it does not exist.
func (r *GroupReadRepository) GetByID(ctx context.Context, groupID uuid.UUID) (*models.GroupDB, error) {
	const query = `
		SELECT group_id, name, created_by, created_at
		FROM groups
		WHERE group_id = $1
	`

	var group models.GroupDB
	err := r.db.GetContext(ctx, &group, query, groupID)

	logger.Log.Infow("group get",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{groupID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &group, nil
}

// IsMember reports whether the user belongs to the group.
func (r *GroupReadRepository) IsMember(ctx context.Context, groupID, userID uuid.UUID) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM group_members
			WHERE group_id = $1 AND user_id = $2
		)
	`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, groupID, userID)

	logger.Log.Infow("group membership check",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{groupID, userID},
		"result", exists,
		"error", err,
	)

	return exists, err
}

// ListMembers returns the group's membership rows.
func (r *GroupReadRepository) ListMembers(ctx context.Context, groupID uuid.UUID) ([]models.GroupMemberDB, error) {
	const query = `
		SELECT group_id, user_id, joined_at
		FROM group_members
		WHERE group_id = $1
		ORDER BY joined_at
	`

	var members []models.GroupMemberDB
	err := r.db.SelectContext(ctx, &members, query, groupID)

	logger.Log.Infow("group members list",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{groupID},
		"count", len(members),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return members, nil
}

// GetInvitationByID returns the invitation, or nil when it does not exist.
func (r *GroupReadRepository) GetInvitationByID(ctx context.Context, invitationID uuid.UUID) (*models.GroupInvitationDB, error) {
	const query = `
		SELECT invitation_id, group_id, email, invited_by, accepted_at, created_at
		FROM group_invitations
		WHERE invitation_id = $1
	`

	var inv models.GroupInvitationDB
	err := r.db.GetContext(ctx, &inv, query, invitationID)

	logger.Log.Infow("group invitation get",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{invitationID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &inv, nil
}

// GroupWriteRepository handles group write operations
type GroupWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewGroupWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *GroupWriteRepository {
	return &GroupWriteRepository{db: db, txGetter: txGetter}
}

func (r *GroupWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// SaveGroup inserts a new group.
func (r *GroupWriteRepository) SaveGroup(ctx context.Context, group models.GroupDB) error {
	const query = `
		INSERT INTO groups (group_id, name, created_by, created_at)
		VALUES ($1, $2, $3, NOW())
	`
	args := []any{group.GroupID, group.Name, group.CreatedBy}

	_, err := r.executor(ctx).ExecContext(ctx, query, args...)

	logger.Log.Infow("group save",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// SaveMember adds a user to a group; joining twice is a no-op.
func (r *GroupWriteRepository) SaveMember(ctx context.Context, groupID, userID uuid.UUID) error {
	const query = `
		INSERT INTO group_members (group_id, user_id, joined_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (group_id, user_id) DO NOTHING
	`
	args := []any{groupID, userID}

	_, err := r.executor(ctx).ExecContext(ctx, query, args...)

	logger.Log.Infow("group member save",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// SaveInvitation inserts a new invitation.
func (r *GroupWriteRepository) SaveInvitation(ctx context.Context, inv models.GroupInvitationDB) error {
	const query = `
		INSERT INTO group_invitations (invitation_id, group_id, email, invited_by, created_at)
		VALUES ($1, $2, $3, $4, NOW())
	`
	args := []any{inv.InvitationID, inv.GroupID, inv.Email, inv.InvitedBy}

	_, err := r.executor(ctx).ExecContext(ctx, query, args...)

	logger.Log.Infow("group invitation save",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// MarkInvitationAccepted stamps the invitation as accepted. Returns
// sql.ErrNoRows when the invitation does not exist or was already accepted.
func (r *GroupWriteRepository) MarkInvitationAccepted(ctx context.Context, invitationID uuid.UUID) error {
	const query = `
		UPDATE group_invitations
		SET accepted_at = NOW()
		WHERE invitation_id = $1 AND accepted_at IS NULL
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, invitationID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("group invitation accept",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{invitationID},
		"rows_affected", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
