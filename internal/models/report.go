package models

import (
	"github.com/shopspring/decimal"
)

// Totals holds the income/expense aggregates for one calendar month.
// Balance is always Income minus Expense.
type Totals struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
}

// MonthTotal is one entry of a per-category month-by-month history.
type MonthTotal struct {
	Year  int             `json:"year"`
	Month int             `json:"month"` // 1-12
	Total decimal.Decimal `json:"total"`
}

// InsightKind classifies the severity of a derived insight.
type InsightKind string

// Insight kinds, from most to least pressing.
const (
	InsightAlert      InsightKind = "alert"
	InsightWarning    InsightKind = "warning"
	InsightSuccess    InsightKind = "success"
	InsightSuggestion InsightKind = "suggestion"
)

// Insight is a human-readable observation about monthly financial behavior,
// produced by a threshold rule over the month's aggregates.
type Insight struct {
	Kind    InsightKind `json:"kind"`
	Title   string      `json:"title"`
	Message string      `json:"message"`
}

// MonthlyReport bundles everything the dashboard needs for one month.
type MonthlyReport struct {
	Year              int                        `json:"year"`
	Month             int                        `json:"month"` // 1-12
	Totals            Totals                     `json:"totals"`
	IncomeVariation   decimal.Decimal            `json:"income_variation"`  // percent vs previous month
	ExpenseVariation  decimal.Decimal            `json:"expense_variation"` // percent vs previous month
	ExpenseByCategory map[string]decimal.Decimal `json:"expense_by_category"`
	Insights          []Insight                  `json:"insights"`
}
