package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/fintrack/internal/models"
	"github.com/sbilibin2017/fintrack/internal/services"
)

func TestCreateGroupHandler(t *testing.T) {
	userID := uuid.New()
	group := models.GroupDB{GroupID: uuid.New(), Name: "Household", CreatedBy: userID}

	tests := []struct {
		name       string
		body       string
		authorized bool
		setup      func(svc *MockGroupCreator)
		wantStatus int
	}{
		{
			name:       "success",
			body:       `{"name":"Household"}`,
			authorized: true,
			setup: func(svc *MockGroupCreator) {
				svc.EXPECT().Create(gomock.Any(), userID, "Household").Return(group, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "unauthorized",
			body:       `{"name":"Household"}`,
			authorized: false,
			setup:      func(svc *MockGroupCreator) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid body",
			body:       `{not json`,
			authorized: true,
			setup:      func(svc *MockGroupCreator) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "empty name",
			body:       `{"name":"  "}`,
			authorized: true,
			setup: func(svc *MockGroupCreator) {
				svc.EXPECT().Create(gomock.Any(), userID, "  ").
					Return(models.GroupDB{}, services.ErrEmptyGroupName)
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockGroupCreator(ctrl)
			tt.setup(svc)

			var tokener AuthTokener
			if tt.authorized {
				tokener = authorizedTokener(ctrl, userID)
			} else {
				tokener = unauthorizedTokener(ctrl)
			}

			handler := NewCreateGroupHandler(svc, tokener)

			req := httptest.NewRequest(http.MethodPost, "/groups", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)

			if tt.wantStatus == http.StatusCreated {
				var resp GroupResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, group.GroupID, resp.Group.GroupID)
				assert.Equal(t, "Household", resp.Group.Name)
			}
		})
	}
}
