package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/fintrack/internal/models"
	"github.com/sbilibin2017/fintrack/internal/services"
)

func TestInviteToGroupHandler(t *testing.T) {
	userID := uuid.New()
	groupID := uuid.New()
	invitation := models.GroupInvitationDB{
		InvitationID: uuid.New(),
		GroupID:      groupID,
		Email:        "jane@example.com",
		InvitedBy:    userID,
	}

	tests := []struct {
		name       string
		target     string
		body       string
		authorized bool
		setup      func(svc *MockGroupInviter)
		wantStatus int
	}{
		{
			name:       "success",
			target:     "/groups/" + groupID.String() + "/invitations",
			body:       `{"email":"jane@example.com"}`,
			authorized: true,
			setup: func(svc *MockGroupInviter) {
				svc.EXPECT().Invite(gomock.Any(), userID, groupID, "jane@example.com").
					Return(invitation, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "unauthorized",
			target:     "/groups/" + groupID.String() + "/invitations",
			body:       `{"email":"jane@example.com"}`,
			authorized: false,
			setup:      func(svc *MockGroupInviter) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid group id",
			target:     "/groups/not-a-uuid/invitations",
			body:       `{"email":"jane@example.com"}`,
			authorized: true,
			setup:      func(svc *MockGroupInviter) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "empty email",
			target:     "/groups/" + groupID.String() + "/invitations",
			body:       `{"email":""}`,
			authorized: true,
			setup: func(svc *MockGroupInviter) {
				svc.EXPECT().Invite(gomock.Any(), userID, groupID, "").
					Return(models.GroupInvitationDB{}, services.ErrEmptyInvitationEmail)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "group not found",
			target:     "/groups/" + groupID.String() + "/invitations",
			body:       `{"email":"jane@example.com"}`,
			authorized: true,
			setup: func(svc *MockGroupInviter) {
				svc.EXPECT().Invite(gomock.Any(), userID, groupID, gomock.Any()).
					Return(models.GroupInvitationDB{}, services.ErrGroupNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "inviter not a member",
			target:     "/groups/" + groupID.String() + "/invitations",
			body:       `{"email":"jane@example.com"}`,
			authorized: true,
			setup: func(svc *MockGroupInviter) {
				svc.EXPECT().Invite(gomock.Any(), userID, groupID, gomock.Any()).
					Return(models.GroupInvitationDB{}, services.ErrNotGroupMember)
			},
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockGroupInviter(ctrl)
			tt.setup(svc)

			var tokener AuthTokener
			if tt.authorized {
				tokener = authorizedTokener(ctrl, userID)
			} else {
				tokener = unauthorizedTokener(ctrl)
			}

			r := chi.NewRouter()
			r.Post("/groups/{groupID}/invitations", NewInviteToGroupHandler(svc, tokener))

			req := httptest.NewRequest(http.MethodPost, tt.target, bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)

			if tt.wantStatus == http.StatusCreated {
				var resp InviteResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, invitation.InvitationID, resp.Invitation.InvitationID)
			}
		})
	}
}
