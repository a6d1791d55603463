// Package analytics computes monthly aggregates, category breakdowns,
// period-over-period variations, and rule-based insights over a list of
// transactions. Every function is pure: the result depends only on the
// arguments, and the input slice is never mutated.
package analytics

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/fintrack/internal/models"
)

// Error variables
var (
	ErrUnknownType       = errors.New("transaction has an unknown type")
	ErrNonPositiveAmount = errors.New("transaction amount must be positive")
	ErrZeroDate          = errors.New("transaction has no occurrence date")
)

// DefaultHistoryWindow is the number of months covered by a category history.
const DefaultHistoryWindow = 3

var hundred = decimal.NewFromInt(100)

// Validate reports whether a transaction is well-formed enough to aggregate.
// Malformed records reject the whole aggregation call: silently skipping
// them would produce misleading totals.
func Validate(txn models.Transaction) error {
	switch txn.Type {
	case models.TypeIncome, models.TypeExpense:
	default:
		return fmt.Errorf("transaction %s: %w", txn.TransactionID, ErrUnknownType)
	}
	if !txn.Amount.IsPositive() {
		return fmt.Errorf("transaction %s: %w", txn.TransactionID, ErrNonPositiveAmount)
	}
	if txn.OccurredOn.IsZero() {
		return fmt.Errorf("transaction %s: %w", txn.TransactionID, ErrZeroDate)
	}
	return nil
}

func validateAll(txns []models.Transaction) error {
	for _, txn := range txns {
		if err := Validate(txn); err != nil {
			return err
		}
	}
	return nil
}

// sameMonth reports whether two dates fall in the same calendar year and month.
func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// FilterMonth returns the transactions whose occurrence date falls in the
// same calendar year and month as ref.
func FilterMonth(txns []models.Transaction, ref time.Time) []models.Transaction {
	out := make([]models.Transaction, 0, len(txns))
	for _, txn := range txns {
		if sameMonth(txn.OccurredOn, ref) {
			out = append(out, txn)
		}
	}
	return out
}

// MonthlyTotals sums income and expense amounts over the given transactions.
// Empty input yields all-zero totals. Balance = Income - Expense.
func MonthlyTotals(txns []models.Transaction) (models.Totals, error) {
	if err := validateAll(txns); err != nil {
		return models.Totals{}, err
	}
	income := decimal.Zero
	expense := decimal.Zero
	for _, txn := range txns {
		switch txn.Type {
		case models.TypeIncome:
			income = income.Add(txn.Amount)
		case models.TypeExpense:
			expense = expense.Add(txn.Amount)
		}
	}
	return models.Totals{
		Income:  income,
		Expense: expense,
		Balance: income.Sub(expense),
	}, nil
}

// PeriodVariation returns the percentage change from previous to current.
// A zero previous value yields 0 rather than an undefined or infinite
// result, so the figure is always safe to display.
func PeriodVariation(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		return decimal.Zero
	}
	return current.Sub(previous).Div(previous).Mul(hundred)
}

// CategoryTotals groups the transactions of the given type by category,
// summing amounts per category.
func CategoryTotals(txns []models.Transaction, txType models.TransactionType) (map[string]decimal.Decimal, error) {
	if err := validateAll(txns); err != nil {
		return nil, err
	}
	totals := make(map[string]decimal.Decimal)
	for _, txn := range txns {
		if txn.Type != txType {
			continue
		}
		totals[txn.Category] = totals[txn.Category].Add(txn.Amount)
	}
	return totals, nil
}

// CategoryHistory computes the total for one category+type in each of the
// window months ending at ref (inclusive), stepping one calendar month
// backward per entry. The result always has exactly window entries, ordered
// from the reference month backward; months without matching transactions
// contribute a zero total. A window of zero or less falls back to
// DefaultHistoryWindow.
func CategoryHistory(
	txns []models.Transaction,
	category string,
	txType models.TransactionType,
	ref time.Time,
	window int,
) ([]models.MonthTotal, error) {
	if err := validateAll(txns); err != nil {
		return nil, err
	}
	if window <= 0 {
		window = DefaultHistoryWindow
	}

	history := make([]models.MonthTotal, 0, window)
	// Anchor at the first of the month so AddDate never skips short months.
	cursor := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < window; i++ {
		total := decimal.Zero
		for _, txn := range txns {
			if txn.Type == txType && txn.Category == category && sameMonth(txn.OccurredOn, cursor) {
				total = total.Add(txn.Amount)
			}
		}
		history = append(history, models.MonthTotal{
			Year:  cursor.Year(),
			Month: int(cursor.Month()),
			Total: total,
		})
		cursor = cursor.AddDate(0, -1, 0)
	}
	return history, nil
}
