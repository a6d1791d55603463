package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/fintrack/internal/logger"
	"github.com/sbilibin2017/fintrack/internal/models"
	"github.com/sbilibin2017/fintrack/internal/services"
)

// GroupCreator defines the interface that the service must implement.
type GroupCreator interface {
	Create(ctx context.Context, userID uuid.UUID, name string) (models.GroupDB, error)
}

// CreateGroupRequest represents the JSON body for creating a group
// swagger:model CreateGroupRequest
type CreateGroupRequest struct {
	// Group display name
	// required: true
	// default: Household
	Name string `json:"name"`
}

// GroupResponse represents a stored group
// swagger:model GroupResponse
type GroupResponse struct {
	// The stored group
	Group models.GroupDB `json:"group"`
}

// GroupErrorResponse represents an error response for group endpoints
// swagger:model GroupErrorResponse
type GroupErrorResponse struct {
	// Error message
	// default: Group not found
	Error string `json:"error"`
}

// NewCreateGroupHandler returns an HTTP handler for creating a shared group.
// @Summary Create a group
// @Description Creates a shared financial group; the creator becomes its first member.
// @Tags groups
// @Accept json
// @Produce json
// @Param request body handlers.CreateGroupRequest true "Create Group Request"
// @Success 201 {object} handlers.GroupResponse "Group created"
// @Failure 400 {object} handlers.GroupErrorResponse "Invalid request"
// @Failure 401 {object} handlers.GroupErrorResponse "Unauthorized"
// @Router /groups [post]
// @Security BearerAuth
func NewCreateGroupHandler(
	svc GroupCreator,
	tokener AuthTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := authUserID(ctx, r, tokener)
		if err != nil {
			logger.Log.Errorw("unauthorized group create", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(GroupErrorResponse{Error: "Unauthorized"})
			return
		}

		var req CreateGroupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(GroupErrorResponse{Error: "invalid request body"})
			return
		}

		group, err := svc.Create(ctx, userID, req.Name)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmptyGroupName):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(GroupErrorResponse{Error: "Group name must not be empty"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(GroupErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(GroupResponse{Group: group})
	}
}
