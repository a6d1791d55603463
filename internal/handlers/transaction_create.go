package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/fintrack/internal/analytics"
	"github.com/sbilibin2017/fintrack/internal/logger"
	"github.com/sbilibin2017/fintrack/internal/models"
	"github.com/sbilibin2017/fintrack/internal/services"
)

// TransactionCreator defines the interface that the service must implement.
type TransactionCreator interface {
	Create(ctx context.Context, userID uuid.UUID, txn models.Transaction) (models.Transaction, error)
}

// TransactionRequest represents the JSON body for creating or updating a transaction
// swagger:model TransactionRequest
type TransactionRequest struct {
	// Optional shared group id
	GroupID *uuid.UUID `json:"group_id,omitempty"`

	// Transaction type: "income" or "expense"
	// required: true
	// default: expense
	Type string `json:"type"`

	// Calendar date the transaction is attributed to, YYYY-MM-DD
	// required: true
	// default: 2024-05-10
	OccurredOn string `json:"occurred_on"`

	// Free-text label
	// default: groceries
	Description string `json:"description"`

	// Positive decimal amount
	// required: true
	// default: 42.50
	Amount decimal.Decimal `json:"amount"`

	// Category label
	// required: true
	// default: food
	Category string `json:"category"`

	// Recurring flag
	// default: false
	IsRecurring bool `json:"is_recurring"`

	// Optional recurrence start date, YYYY-MM-DD
	RecurringStart *string `json:"recurring_start,omitempty"`

	// Optional recurrence end date, YYYY-MM-DD
	RecurringEnd *string `json:"recurring_end,omitempty"`
}

// TransactionResponse represents a successful transaction write response
// swagger:model TransactionResponse
type TransactionResponse struct {
	// The stored transaction
	Transaction models.Transaction `json:"transaction"`
}

// TransactionErrorResponse represents an error response for transaction endpoints
// swagger:model TransactionErrorResponse
type TransactionErrorResponse struct {
	// Error message
	// default: Invalid transaction
	Error string `json:"error"`
}

// toModel converts the request body into a domain transaction.
func (req TransactionRequest) toModel() (models.Transaction, error) {
	occurredOn, err := time.Parse(dateLayout, req.OccurredOn)
	if err != nil {
		return models.Transaction{}, err
	}

	txn := models.Transaction{
		GroupID:     req.GroupID,
		Type:        models.TransactionType(req.Type),
		OccurredOn:  occurredOn,
		Description: req.Description,
		Amount:      req.Amount,
		Category:    req.Category,
		IsRecurring: req.IsRecurring,
	}

	if req.RecurringStart != nil {
		start, err := time.Parse(dateLayout, *req.RecurringStart)
		if err != nil {
			return models.Transaction{}, err
		}
		txn.RecurringStart = &start
	}
	if req.RecurringEnd != nil {
		end, err := time.Parse(dateLayout, *req.RecurringEnd)
		if err != nil {
			return models.Transaction{}, err
		}
		txn.RecurringEnd = &end
	}

	return txn, nil
}

// NewCreateTransactionHandler returns an HTTP handler for recording a transaction.
// @Summary Record a transaction
// @Description Validates and stores a new income or expense record for the authenticated user.
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body handlers.TransactionRequest true "Transaction Request"
// @Success 201 {object} handlers.TransactionResponse "Transaction recorded"
// @Failure 400 {object} handlers.TransactionErrorResponse "Invalid transaction"
// @Failure 401 {object} handlers.TransactionErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.TransactionErrorResponse "Not a group member"
// @Router /transactions [post]
// @Security BearerAuth
func NewCreateTransactionHandler(
	svc TransactionCreator,
	tokener AuthTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := authUserID(ctx, r, tokener)
		if err != nil {
			logger.Log.Errorw("unauthorized transaction create", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Unauthorized"})
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

		created, err := svc.Create(ctx, userID, txn)
		if err != nil {
			switch {
			case errors.Is(err, analytics.ErrUnknownType),
				errors.Is(err, analytics.ErrNonPositiveAmount),
				errors.Is(err, analytics.ErrZeroDate):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Invalid transaction"})
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
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(TransactionResponse{Transaction: created})
	}
}
