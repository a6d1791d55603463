package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sbilibin2017/fintrack/internal/logger"
	"github.com/sbilibin2017/fintrack/internal/services"
)

// InvitationAccepter defines the interface that the service must implement.
type InvitationAccepter interface {
	Accept(ctx context.Context, userID, invitationID uuid.UUID) error
}

// AcceptInvitationResponse represents a successful invitation acceptance
// swagger:model AcceptInvitationResponse
type AcceptInvitationResponse struct {
	// Success message
	// default: Invitation accepted
	Message string `json:"message"`
}

// NewAcceptInvitationHandler returns an HTTP handler for joining a group via invitation.
// @Summary Accept an invitation
// @Description Joins the authenticated user to the group the invitation points at. The account email must match the invitation.
// @Tags groups
// @Produce json
// @Param invitationID path string true "Invitation ID"
// @Success 200 {object} handlers.AcceptInvitationResponse "Invitation accepted"
// @Failure 400 {object} handlers.GroupErrorResponse "Invalid invitation id"
// @Failure 401 {object} handlers.GroupErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.GroupErrorResponse "Invitation addressed to another user"
// @Failure 404 {object} handlers.GroupErrorResponse "Invitation not found"
// @Failure 409 {object} handlers.GroupErrorResponse "Invitation already accepted"
// @Router /invitations/{invitationID}/accept [post]
// @Security BearerAuth
func NewAcceptInvitationHandler(
	svc InvitationAccepter,
	tokener AuthTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := authUserID(ctx, r, tokener)
		if err != nil {
			logger.Log.Errorw("unauthorized invitation accept", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(GroupErrorResponse{Error: "Unauthorized"})
			return
		}

		invitationID, err := uuid.Parse(chi.URLParam(r, "invitationID"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(GroupErrorResponse{Error: "invalid invitation id"})
			return
		}

		if err := svc.Accept(ctx, userID, invitationID); err != nil {
			switch {
			case errors.Is(err, services.ErrInvitationNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(GroupErrorResponse{Error: "Invitation not found"})
			case errors.Is(err, services.ErrNotInvitee):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(GroupErrorResponse{Error: "Invitation addressed to another user"})
			case errors.Is(err, services.ErrInvitationAlreadyUsed):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(GroupErrorResponse{Error: "Invitation already accepted"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(GroupErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(AcceptInvitationResponse{Message: "Invitation accepted"})
	}
}
