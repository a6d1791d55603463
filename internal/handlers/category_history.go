package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/sbilibin2017/fintrack/internal/logger"
	"github.com/sbilibin2017/fintrack/internal/models"
	"github.com/sbilibin2017/fintrack/internal/services"
)

// CategoryHistorian defines the interface that the service must implement.
type CategoryHistorian interface {
	CategoryHistory(ctx context.Context, userID uuid.UUID, groupID *uuid.UUID, category string, txType models.TransactionType, month time.Time, window int) ([]models.MonthTotal, error)
}

// CategoryHistoryResponse represents a per-month total history for one category
// swagger:model CategoryHistoryResponse
type CategoryHistoryResponse struct {
	// Category label the history is for
	Category string `json:"category"`

	// Transaction type the history is for
	Type string `json:"type"`

	// Month totals ordered from the reference month backward
	History []models.MonthTotal `json:"history"`
}

// NewCategoryHistoryHandler returns an HTTP handler for category month-by-month totals.
// @Summary Category history
// @Description Returns the total for one category and type in each of the last N months ending at the given month.
// @Tags reports
// @Produce json
// @Param category query string true "Category label"
// @Param type query string true "Transaction type: income or expense"
// @Param month query string false "Calendar month, YYYY-MM; defaults to the current month"
// @Param window query int false "Number of months, default 3"
// @Param group_id query string false "Scope the history to a shared group"
// @Success 200 {object} handlers.CategoryHistoryResponse "Category history"
// @Failure 400 {object} handlers.ReportErrorResponse "Invalid parameters"
// @Failure 401 {object} handlers.ReportErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ReportErrorResponse "Not a group member"
// @Router /reports/categories/history [get]
// @Security BearerAuth
func NewCategoryHistoryHandler(
	svc CategoryHistorian,
	tokener AuthTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := authUserID(ctx, r, tokener)
		if err != nil {
			logger.Log.Errorw("unauthorized category history request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ReportErrorResponse{Error: "Unauthorized"})
			return
		}

		query := r.URL.Query()

		category := query.Get("category")
		if category == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ReportErrorResponse{Error: "category is required"})
			return
		}

		txType := models.TransactionType(query.Get("type"))
		if txType != models.TypeIncome && txType != models.TypeExpense {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ReportErrorResponse{Error: "type must be income or expense"})
			return
		}

		month, err := parseMonthParam(query.Get("month"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ReportErrorResponse{Error: "invalid month, expected YYYY-MM"})
			return
		}

		window := 0
		if raw := query.Get("window"); raw != "" {
			window, err = strconv.Atoi(raw)
			if err != nil || window < 1 {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ReportErrorResponse{Error: "window must be a positive integer"})
				return
			}
		}

		var groupID *uuid.UUID
		if raw := query.Get("group_id"); raw != "" {
			parsed, err := uuid.Parse(raw)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ReportErrorResponse{Error: "invalid group id"})
				return
			}
			groupID = &parsed
		}

		history, err := svc.CategoryHistory(ctx, userID, groupID, category, txType, month, window)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNotGroupMember):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(ReportErrorResponse{Error: "Not a group member"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ReportErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(CategoryHistoryResponse{
			Category: category,
			Type:     string(txType),
			History:  history,
		})
	}
}
