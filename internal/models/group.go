package models

import (
	"time"

	"github.com/google/uuid"
)

// GroupDB represents a shared financial group row in the database
type GroupDB struct {
	GroupID   uuid.UUID `json:"group_id" db:"group_id"`     // Unique group identifier
	Name      string    `json:"name" db:"name"`             // Display name of the group
	CreatedBy uuid.UUID `json:"created_by" db:"created_by"` // User who created the group
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Timestamp when the group was created
}

// GroupMemberDB represents a group membership row in the database
type GroupMemberDB struct {
	GroupID  uuid.UUID `json:"group_id" db:"group_id"` // Group the member belongs to
	UserID   uuid.UUID `json:"user_id" db:"user_id"`   // Member user identifier
	JoinedAt time.Time `json:"joined_at" db:"joined_at"`
}

// GroupInvitationDB represents a pending or accepted group invitation
type GroupInvitationDB struct {
	InvitationID uuid.UUID  `json:"invitation_id" db:"invitation_id"` // Unique invitation identifier
	GroupID      uuid.UUID  `json:"group_id" db:"group_id"`           // Group the invitee is invited to
	Email        string     `json:"email" db:"email"`                 // Email address of the invited user
	InvitedBy    uuid.UUID  `json:"invited_by" db:"invited_by"`       // Member who sent the invitation
	AcceptedAt   *time.Time `json:"accepted_at" db:"accepted_at"`     // Nil while the invitation is pending
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
}
