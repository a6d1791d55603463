package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/sbilibin2017/fintrack/internal/logger"
	"github.com/sbilibin2017/fintrack/internal/models"
)

// TransactionLister defines the interface that the service must implement.
type TransactionLister interface {
	List(ctx context.Context, userID uuid.UUID, month *time.Time) ([]models.Transaction, error)
}

// TransactionListResponse represents a list of visible transactions
// swagger:model TransactionListResponse
type TransactionListResponse struct {
	// Transactions visible to the user, newest first
	Transactions []models.Transaction `json:"transactions"`
}

// NewListTransactionsHandler returns an HTTP handler listing the user's
// visible transactions.
// @Summary List transactions
// @Description Returns the user's own transactions plus those shared with their groups, optionally restricted to one month.
// @Tags transactions
// @Produce json
// @Param month query string false "Calendar month, YYYY-MM"
// @Success 200 {object} handlers.TransactionListResponse "Visible transactions"
// @Failure 400 {object} handlers.TransactionErrorResponse "Invalid month"
// @Failure 401 {object} handlers.TransactionErrorResponse "Unauthorized"
// @Router /transactions [get]
// @Security BearerAuth
func NewListTransactionsHandler(
	svc TransactionLister,
	tokener AuthTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := authUserID(ctx, r, tokener)
		if err != nil {
			logger.Log.Errorw("unauthorized transaction list", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Unauthorized"})
			return
		}

		var month *time.Time
		if raw := r.URL.Query().Get("month"); raw != "" {
			parsed, err := time.Parse(monthLayout, raw)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "invalid month, expected YYYY-MM"})
				return
			}
			month = &parsed
		}

		txns, err := svc.List(ctx, userID, month)
		if err != nil {
			logger.Log.Errorw("failed to list transactions", "userID", userID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Internal server error"})
			return
		}

		if txns == nil {
			txns = []models.Transaction{}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(TransactionListResponse{Transactions: txns})
	}
}
