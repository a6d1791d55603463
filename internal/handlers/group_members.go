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

// GroupMembersLister defines the interface that the service must implement.
type GroupMembersLister interface {
	Members(ctx context.Context, userID, groupID uuid.UUID) ([]models.GroupMemberDB, error)
}

// GroupMembersResponse represents the members of a group
// swagger:model GroupMembersResponse
type GroupMembersResponse struct {
	// Members ordered by join time
	Members []models.GroupMemberDB `json:"members"`
}

// NewGroupMembersHandler returns an HTTP handler listing a group's members.
// @Summary List group members
// @Description Returns the group's members; only members may see the list.
// @Tags groups
// @Produce json
// @Param groupID path string true "Group ID"
// @Success 200 {object} handlers.GroupMembersResponse "Group members"
// @Failure 400 {object} handlers.GroupErrorResponse "Invalid group id"
// @Failure 401 {object} handlers.GroupErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.GroupErrorResponse "Not a group member"
// @Router /groups/{groupID}/members [get]
// @Security BearerAuth
func NewGroupMembersHandler(
	svc GroupMembersLister,
	tokener AuthTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := authUserID(ctx, r, tokener)
		if err != nil {
			logger.Log.Errorw("unauthorized group members request", "error", err)
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

		members, err := svc.Members(ctx, userID, groupID)
		if err != nil {
			switch {
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

		if members == nil {
			members = []models.GroupMemberDB{}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(GroupMembersResponse{Members: members})
	}
}
