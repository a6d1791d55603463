package handlers

import (
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

func TestGroupMembersHandler(t *testing.T) {
	userID := uuid.New()
	groupID := uuid.New()
	members := []models.GroupMemberDB{
		{GroupID: groupID, UserID: userID},
		{GroupID: groupID, UserID: uuid.New()},
	}

	tests := []struct {
		name        string
		target      string
		authorized  bool
		setup       func(svc *MockGroupMembersLister)
		wantStatus  int
		wantMembers int
	}{
		{
			name:       "success",
			target:     "/groups/" + groupID.String() + "/members",
			authorized: true,
			setup: func(svc *MockGroupMembersLister) {
				svc.EXPECT().Members(gomock.Any(), userID, groupID).Return(members, nil)
			},
			wantStatus:  http.StatusOK,
			wantMembers: 2,
		},
		{
			name:       "empty group list is an empty array",
			target:     "/groups/" + groupID.String() + "/members",
			authorized: true,
			setup: func(svc *MockGroupMembersLister) {
				svc.EXPECT().Members(gomock.Any(), userID, groupID).Return(nil, nil)
			},
			wantStatus:  http.StatusOK,
			wantMembers: 0,
		},
		{
			name:       "unauthorized",
			target:     "/groups/" + groupID.String() + "/members",
			authorized: false,
			setup:      func(svc *MockGroupMembersLister) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid group id",
			target:     "/groups/not-a-uuid/members",
			authorized: true,
			setup:      func(svc *MockGroupMembersLister) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "not a group member",
			target:     "/groups/" + groupID.String() + "/members",
			authorized: true,
			setup: func(svc *MockGroupMembersLister) {
				svc.EXPECT().Members(gomock.Any(), userID, groupID).
					Return(nil, services.ErrNotGroupMember)
			},
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockGroupMembersLister(ctrl)
			tt.setup(svc)

			var tokener AuthTokener
			if tt.authorized {
				tokener = authorizedTokener(ctrl, userID)
			} else {
				tokener = unauthorizedTokener(ctrl)
			}

			r := chi.NewRouter()
			r.Get("/groups/{groupID}/members", NewGroupMembersHandler(svc, tokener))

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)

			if tt.wantStatus == http.StatusOK {
				var resp GroupMembersResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Len(t, resp.Members, tt.wantMembers)
			}
		})
	}
}
