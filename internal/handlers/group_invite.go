package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sbilibin2017/fintrack/internal/logger"
	"github.com/sbilibin2017/fintrack/internal/models"
	"github.com/sbilibin2017/fintrack/internal/services"
)

// GroupInviter defines the interface that the service must implement.
type GroupInviter interface {
	Invite(ctx context.Context, inviterID, groupID uuid.UUID, email string) (models.GroupInvitationDB, error)
}

// InviteRequest represents the JSON body for inviting a user to a group
// swagger:model InviteRequest
type InviteRequest struct {
	// Email of the user to invite
	// required: true
	// default: jane@example.com
	Email string `json:"email"`
}

// InviteResponse represents a stored invitation
// swagger:model InviteResponse
type InviteResponse struct {
	// The stored invitation
	Invitation models.GroupInvitationDB `json:"invitation"`
}

// NewInviteToGroupHandler returns an HTTP handler for inviting a user into a group.
// @Summary Invite to a group
// @Description Invites a user by email; only group members may invite.
// @Tags groups
// @Accept json
// @Produce json
// @Param groupID path string true "Group ID"
// @Param request body handlers.InviteRequest true "Invite Request"
// @Success 201 {object} handlers.InviteResponse "Invitation created"
// @Failure 400 {object} handlers.GroupErrorResponse "Invalid request"
// @Failure 401 {object} handlers.GroupErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.GroupErrorResponse "Not a group member"
// @Failure 404 {object} handlers.GroupErrorResponse "Group not found"
// @Router /groups/{groupID}/invitations [post]
// @Security BearerAuth
func NewInviteToGroupHandler(
	svc GroupInviter,
	tokener AuthTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := authUserID(ctx, r, tokener)
		if err != nil {
			logger.Log.Errorw("unauthorized group invite", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(GroupErrorResponse{Error: "Unauthorized"})
			return
		}

		groupID, err := uuid.Parse(chi.URLParam(r, "groupID"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(GroupErrorResponse{Error: "invalid group id"})
			return
		}

		var req InviteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(GroupErrorResponse{Error: "invalid request body"})
			return
		}

		inv, err := svc.Invite(ctx, userID, groupID, req.Email)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmptyInvitationEmail):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(GroupErrorResponse{Error: "Email must not be empty"})
			case errors.Is(err, services.ErrGroupNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(GroupErrorResponse{Error: "Group not found"})
			case errors.Is(err, services.ErrNotGroupMember):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(GroupErrorResponse{Error: "Not a group member"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(GroupErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(InviteResponse{Invitation: inv})
	}
}
