package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sbilibin2017/fintrack/internal/analytics"
	"github.com/sbilibin2017/fintrack/internal/logger"
	"github.com/sbilibin2017/fintrack/internal/models"
)

// ReportTransactionReader fetches the transactions a report is built from.
type ReportTransactionReader interface {
	ListVisible(ctx context.Context, userID uuid.UUID, from, to *time.Time) ([]models.Transaction, error)
	ListForGroup(ctx context.Context, groupID uuid.UUID, from, to *time.Time) ([]models.Transaction, error)
}

// ReportGroupReader checks group membership for group-scoped reports.
type ReportGroupReader interface {
	IsMember(ctx context.Context, groupID, userID uuid.UUID) (bool, error)
}

// ReportCache reads and writes cached monthly reports.
type ReportCache interface {
	Get(ctx context.Context, key string) (*models.MonthlyReport, error)
	Set(ctx context.Context, key string, report models.MonthlyReport) error
}

// ReportService assembles monthly dashboards: totals, month-over-month
// variations, category breakdowns, and insights.
type ReportService struct {
	txns   ReportTransactionReader
	groups ReportGroupReader
	cache  ReportCache
}

// NewReportService creates a new ReportService.
func NewReportService(txns ReportTransactionReader, groups ReportGroupReader, cache ReportCache) *ReportService {
	return &ReportService{
		txns:   txns,
		groups: groups,
		cache:  cache,
	}
}

// userReportKey is the cache key for a user-scoped monthly report.
func userReportKey(userID uuid.UUID, month time.Time) string {
	return fmt.Sprintf("report:user:%s:%04d-%02d", userID, month.Year(), int(month.Month()))
}

// groupReportKey is the cache key for a group-scoped monthly report.
func groupReportKey(groupID uuid.UUID, month time.Time) string {
	return fmt.Sprintf("report:group:%s:%04d-%02d", groupID, month.Year(), int(month.Month()))
}

// monthWindow returns the [start, end) bounds of the month containing t.
func monthWindow(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

// MonthlyReport builds the report for the given month. With a group id the
// report covers the group's shared transactions (members only); otherwise
// it covers everything the user can see. Reports are cached; cache failures
// fall back to recomputation.
func (s *ReportService) MonthlyReport(ctx context.Context, userID uuid.UUID, groupID *uuid.UUID, month time.Time) (*models.MonthlyReport, error) {
	var key string
	if groupID != nil {
		isMember, err := s.groups.IsMember(ctx, *groupID, userID)
		if err != nil {
			logger.Log.Errorw("failed to check group membership", "groupID", *groupID, "userID", userID, "error", err)
			return nil, err
		}
		if !isMember {
			return nil, ErrNotGroupMember
		}
		key = groupReportKey(*groupID, month)
	} else {
		key = userReportKey(userID, month)
	}

	if cached, err := s.cache.Get(ctx, key); err == nil && cached != nil {
		return cached, nil
	}

	// One fetch covers both the report month and the month before it.
	monthStart, monthEnd := monthWindow(month)
	from := monthStart.AddDate(0, -1, 0)

	var all []models.Transaction
	var err error
	if groupID != nil {
		all, err = s.txns.ListForGroup(ctx, *groupID, &from, &monthEnd)
	} else {
		all, err = s.txns.ListVisible(ctx, userID, &from, &monthEnd)
	}
	if err != nil {
		logger.Log.Errorw("failed to fetch transactions for report", "userID", userID, "error", err)
		return nil, err
	}

	current := analytics.FilterMonth(all, monthStart)
	previous := analytics.FilterMonth(all, from)

	currentTotals, err := analytics.MonthlyTotals(current)
	if err != nil {
		return nil, err
	}
	previousTotals, err := analytics.MonthlyTotals(previous)
	if err != nil {
		return nil, err
	}
	expenseByCategory, err := analytics.CategoryTotals(current, models.TypeExpense)
	if err != nil {
		return nil, err
	}
	insights, err := analytics.DeriveInsights(current, previous)
	if err != nil {
		return nil, err
	}

	report := models.MonthlyReport{
		Year:              monthStart.Year(),
		Month:             int(monthStart.Month()),
		Totals:            currentTotals,
		IncomeVariation:   analytics.PeriodVariation(currentTotals.Income, previousTotals.Income),
		ExpenseVariation:  analytics.PeriodVariation(currentTotals.Expense, previousTotals.Expense),
		ExpenseByCategory: expenseByCategory,
		Insights:          insights,
	}

	if err := s.cache.Set(ctx, key, report); err != nil {
		logger.Log.Errorw("failed to cache report", "key", key, "error", err)
	}

	return &report, nil
}

// CategoryHistory returns per-month totals for one category+type over the
// window months ending at the given month.
func (s *ReportService) CategoryHistory(
	ctx context.Context,
	userID uuid.UUID,
	groupID *uuid.UUID,
	category string,
	txType models.TransactionType,
	month time.Time,
	window int,
) ([]models.MonthTotal, error) {
	if window <= 0 {
		window = analytics.DefaultHistoryWindow
	}

	monthStart, monthEnd := monthWindow(month)
	from := monthStart.AddDate(0, -(window - 1), 0)

	var all []models.Transaction
	if groupID != nil {
		isMember, err := s.groups.IsMember(ctx, *groupID, userID)
		if err != nil {
			logger.Log.Errorw("failed to check group membership", "groupID", *groupID, "userID", userID, "error", err)
			return nil, err
		}
		if !isMember {
			return nil, ErrNotGroupMember
		}
		all, err = s.txns.ListForGroup(ctx, *groupID, &from, &monthEnd)
		if err != nil {
			logger.Log.Errorw("failed to fetch group transactions for history", "groupID", *groupID, "error", err)
			return nil, err
		}
	} else {
		var err error
		all, err = s.txns.ListVisible(ctx, userID, &from, &monthEnd)
		if err != nil {
			logger.Log.Errorw("failed to fetch transactions for history", "userID", userID, "error", err)
			return nil, err
		}
	}

	return analytics.CategoryHistory(all, category, txType, monthStart, window)
}
