package handlers

import (
	"bytes"
	"context"
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

func TestUpdateTransactionHandler_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	transactionID := uuid.New()
	svc := NewMockTransactionUpdater(ctrl)

	svc.EXPECT().Update(gomock.Any(), userID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uuid.UUID, txn models.Transaction) (models.Transaction, error) {
			assert.Equal(t, transactionID, txn.TransactionID)
			return txn, nil
		})

	r := chi.NewRouter()
	r.Put("/transactions/{transactionID}", NewUpdateTransactionHandler(svc, authorizedTokener(ctrl, userID)))

	body := `{"type":"expense","occurred_on":"2024-05-10","amount":"55","category":"food"}`
	req := httptest.NewRequest(http.MethodPut, "/transactions/"+transactionID.String(), bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp TransactionResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, transactionID, resp.Transaction.TransactionID)
}

func TestUpdateTransactionHandler_Errors(t *testing.T) {
	userID := uuid.New()
	transactionID := uuid.New()
	validBody := `{"type":"expense","occurred_on":"2024-05-10","amount":"55","category":"food"}`

	tests := []struct {
		name       string
		target     string
		body       string
		setup      func(svc *MockTransactionUpdater)
		wantStatus int
	}{
		{
			name:       "invalid transaction id",
			target:     "/transactions/not-a-uuid",
			body:       validBody,
			setup:      func(svc *MockTransactionUpdater) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "not found",
			target: "/transactions/" + transactionID.String(),
			body:   validBody,
			setup: func(svc *MockTransactionUpdater) {
				svc.EXPECT().Update(gomock.Any(), userID, gomock.Any()).
					Return(models.Transaction{}, services.ErrTransactionNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "not the owner",
			target: "/transactions/" + transactionID.String(),
			body:   validBody,
			setup: func(svc *MockTransactionUpdater) {
				svc.EXPECT().Update(gomock.Any(), userID, gomock.Any()).
					Return(models.Transaction{}, services.ErrNotTransactionOwner)
			},
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockTransactionUpdater(ctrl)
			tt.setup(svc)

			r := chi.NewRouter()
			r.Put("/transactions/{transactionID}", NewUpdateTransactionHandler(svc, authorizedTokener(ctrl, userID)))

			req := httptest.NewRequest(http.MethodPut, tt.target, bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
