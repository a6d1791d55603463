package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/fintrack/internal/services"
)

func TestAcceptInvitationHandler(t *testing.T) {
	userID := uuid.New()
	invitationID := uuid.New()

	tests := []struct {
		name       string
		target     string
		authorized bool
		setup      func(svc *MockInvitationAccepter)
		wantStatus int
	}{
		{
			name:       "success",
			target:     "/invitations/" + invitationID.String() + "/accept",
			authorized: true,
			setup: func(svc *MockInvitationAccepter) {
				svc.EXPECT().Accept(gomock.Any(), userID, invitationID).Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "unauthorized",
			target:     "/invitations/" + invitationID.String() + "/accept",
			authorized: false,
			setup:      func(svc *MockInvitationAccepter) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid invitation id",
			target:     "/invitations/not-a-uuid/accept",
			authorized: true,
			setup:      func(svc *MockInvitationAccepter) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "not found",
			target:     "/invitations/" + invitationID.String() + "/accept",
			authorized: true,
			setup: func(svc *MockInvitationAccepter) {
				svc.EXPECT().Accept(gomock.Any(), userID, invitationID).
					Return(services.ErrInvitationNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "addressed to another user",
			target:     "/invitations/" + invitationID.String() + "/accept",
			authorized: true,
			setup: func(svc *MockInvitationAccepter) {
				svc.EXPECT().Accept(gomock.Any(), userID, invitationID).
					Return(services.ErrNotInvitee)
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "already accepted",
			target:     "/invitations/" + invitationID.String() + "/accept",
			authorized: true,
			setup: func(svc *MockInvitationAccepter) {
				svc.EXPECT().Accept(gomock.Any(), userID, invitationID).
					Return(services.ErrInvitationAlreadyUsed)
			},
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockInvitationAccepter(ctrl)
			tt.setup(svc)

			var tokener AuthTokener
			if tt.authorized {
				tokener = authorizedTokener(ctrl, userID)
			} else {
				tokener = unauthorizedTokener(ctrl)
			}

			r := chi.NewRouter()
			r.Post("/invitations/{invitationID}/accept", NewAcceptInvitationHandler(svc, tokener))

			req := httptest.NewRequest(http.MethodPost, tt.target, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
