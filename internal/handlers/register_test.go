package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/fintrack/internal/services"
)

func TestRegisterHandler(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(svc *MockRegisterer)
		wantStatus int
	}{
		{
			name: "success",
			body: `{"username":"john","password":"secret","email":"john@example.com"}`,
			setup: func(svc *MockRegisterer) {
				svc.EXPECT().Register(gomock.Any(), "john", "secret", "john@example.com").Return(nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "invalid body",
			body:       `{not json`,
			setup:      func(svc *MockRegisterer) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "user already exists",
			body: `{"username":"john","password":"secret","email":"john@example.com"}`,
			setup: func(svc *MockRegisterer) {
				svc.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(services.ErrUserAlreadyExists)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "internal error",
			body: `{"username":"john","password":"secret","email":"john@example.com"}`,
			setup: func(svc *MockRegisterer) {
				svc.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("db down"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockRegisterer(ctrl)
			tt.setup(svc)

			handler := NewRegisterHandler(svc)

			req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
