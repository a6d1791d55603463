package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sbilibin2017/fintrack/internal/logger"
	"github.com/sbilibin2017/fintrack/internal/services"
)

// TransactionDeleter defines the interface that the service must implement.
type TransactionDeleter interface {
	Delete(ctx context.Context, userID, transactionID uuid.UUID) error
}

// DeleteTransactionResponse represents a successful deletion response
// swagger:model DeleteTransactionResponse
type DeleteTransactionResponse struct {
	// Success message
	// default: Transaction deleted
	Message string `json:"message"`
}

// NewDeleteTransactionHandler returns an HTTP handler for removing a transaction.
// @Summary Delete a transaction
// @Description Removes a transaction owned by the authenticated user.
// @Tags transactions
// @Produce json
// @Param transactionID path string true "Transaction ID"
// @Success 200 {object} handlers.DeleteTransactionResponse "Transaction deleted"
// @Failure 401 {object} handlers.TransactionErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.TransactionErrorResponse "Not the owner"
// @Failure 404 {object} handlers.TransactionErrorResponse "Transaction not found"
// @Router /transactions/{transactionID} [delete]
// @Security BearerAuth
func NewDeleteTransactionHandler(
	svc TransactionDeleter,
	tokener AuthTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := authUserID(ctx, r, tokener)
		if err != nil {
			logger.Log.Errorw("unauthorized transaction delete", "error", err)
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

		if err := svc.Delete(ctx, userID, transactionID); err != nil {
			switch {
			case errors.Is(err, services.ErrTransactionNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Transaction not found"})
			case errors.Is(err, services.ErrNotTransactionOwner):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Not the owner"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DeleteTransactionResponse{Message: "Transaction deleted"})
	}
}
