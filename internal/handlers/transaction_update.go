package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sbilibin2017/fintrack/internal/analytics"
	"github.com/sbilibin2017/fintrack/internal/logger"
	"github.com/sbilibin2017/fintrack/internal/models"
	"github.com/sbilibin2017/fintrack/internal/services"
)

// TransactionUpdater defines the interface that the service must implement.
type TransactionUpdater interface {
	Update(ctx context.Context, userID uuid.UUID, txn models.Transaction) (models.Transaction, error)
}

// NewUpdateTransactionHandler returns an HTTP handler for editing a transaction.
// @Summary Update a transaction
// @Description Replaces the mutable fields of a transaction owned by the authenticated user.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transactionID path string true "Transaction ID"
// @Param request body handlers.TransactionRequest true "Transaction Request"
// @Success 200 {object} handlers.TransactionResponse "Transaction updated"
// @Failure 400 {object} handlers.TransactionErrorResponse "Invalid transaction"
// @Failure 401 {object} handlers.TransactionErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.TransactionErrorResponse "Not the owner"
// @Failure 404 {object} handlers.TransactionErrorResponse "Transaction not found"
// @Router /transactions/{transactionID} [put]
// @Security BearerAuth
func NewUpdateTransactionHandler(
	svc TransactionUpdater,
	tokener AuthTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := authUserID(ctx, r, tokener)
		if err != nil {
			logger.Log.Errorw("unauthorized transaction update", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Unauthorized"})
			return
		}

		transactionID, err := uuid.Parse(chi.URLParam(r, "transactionID"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "invalid transaction id"})
			return
		}

		var req TransactionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "invalid request body"})
			return
		}

		txn, err := req.toModel()
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "invalid date format, expected YYYY-MM-DD"})
			return
		}
		txn.TransactionID = transactionID

		updated, err := svc.Update(ctx, userID, txn)
		if err != nil {
			switch {
			case errors.Is(err, analytics.ErrUnknownType),
				errors.Is(err, analytics.ErrNonPositiveAmount),
				errors.Is(err, analytics.ErrZeroDate):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Invalid transaction"})
			case errors.Is(err, services.ErrTransactionNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Transaction not found"})
			case errors.Is(err, services.ErrNotTransactionOwner):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Not the owner"})
			case errors.Is(err, services.ErrNotGroupMember):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Not a group member"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(TransactionResponse{Transaction: updated})
	}
}
