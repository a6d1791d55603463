package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/sbilibin2017/fintrack/internal/logger"
	"github.com/sbilibin2017/fintrack/internal/models"
	"github.com/sbilibin2017/fintrack/internal/services"
)

// MonthlyReporter defines the interface that the service must implement.
type MonthlyReporter interface {
	MonthlyReport(ctx context.Context, userID uuid.UUID, groupID *uuid.UUID, month time.Time) (*models.MonthlyReport, error)
}

// ReportErrorResponse represents an error response for report endpoints
// swagger:model ReportErrorResponse
type ReportErrorResponse struct {
	// Error message
	// default: Invalid month
	Error string `json:"error"`
}

// NewMonthlyReportHandler returns an HTTP handler for the monthly dashboard report.
// @Summary Monthly report
// @Description Returns totals, month-over-month variations, the expense category breakdown, and derived insights for one month.
// @Tags reports
// @Produce json
// @Param month query string false "Calendar month, YYYY-MM; defaults to the current month"
// @Param group_id query string false "Scope the report to a shared group"
// @Success 200 {object} models.MonthlyReport "Monthly report"
// @Failure 400 {object} handlers.ReportErrorResponse "Invalid month or group id"
// @Failure 401 {object} handlers.ReportErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ReportErrorResponse "Not a group member"
// @Router /reports/monthly [get]
// @Security BearerAuth
func NewMonthlyReportHandler(
	svc MonthlyReporter,
	tokener AuthTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := authUserID(ctx, r, tokener)
		if err != nil {
			logger.Log.Errorw("unauthorized report request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ReportErrorResponse{Error: "Unauthorized"})
			return
		}

		month, err := parseMonthParam(r.URL.Query().Get("month"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ReportErrorResponse{Error: "invalid month, expected YYYY-MM"})
			return
		}

		var groupID *uuid.UUID
		if raw := r.URL.Query().Get("group_id"); raw != "" {
			parsed, err := uuid.Parse(raw)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ReportErrorResponse{Error: "invalid group id"})
				return
			}
			groupID = &parsed
		}

		report, err := svc.MonthlyReport(ctx, userID, groupID, month)
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
		json.NewEncoder(w).Encode(report)
	}
}
