package analytics

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/fintrack/internal/models"
)

// Thresholds for the insight rules, in percent.
var (
	expenseSwingThreshold = decimal.NewFromInt(20) // month-over-month expense change
	savingsRateThreshold  = decimal.NewFromInt(20) // minimum healthy savings rate
	fixedCostThreshold    = decimal.NewFromInt(50) // recurring expenses vs income
)

// DeriveInsights evaluates the insight rules against the current and
// previous month's transactions. Rules are independent and evaluated in a
// fixed order; each contributes zero or one insight. An empty result is a
// valid state ("no insights this month").
func DeriveInsights(current, previous []models.Transaction) ([]models.Insight, error) {
	currentTotals, err := MonthlyTotals(current)
	if err != nil {
		return nil, err
	}
	previousTotals, err := MonthlyTotals(previous)
	if err != nil {
		return nil, err
	}
	expenseByCategory, err := CategoryTotals(current, models.TypeExpense)
	if err != nil {
		return nil, err
	}

	insights := make([]models.Insight, 0, 5)

	if insight, ok := topExpenseCategory(expenseByCategory); ok {
		insights = append(insights, insight)
	}
	if insight, ok := expenseSwing(currentTotals.Expense, previousTotals.Expense); ok {
		insights = append(insights, insight)
	}
	if insight, ok := lowSavingsRate(currentTotals); ok {
		insights = append(insights, insight)
	}
	if insight, ok := highFixedCosts(current, currentTotals.Income); ok {
		insights = append(insights, insight)
	}

	return insights, nil
}

// topExpenseCategory names the single highest-total expense category of the
// month. Ties break on category name so the result is deterministic.
func topExpenseCategory(byCategory map[string]decimal.Decimal) (models.Insight, bool) {
	var top string
	var topTotal decimal.Decimal
	found := false
	for category, total := range byCategory {
		if !found || total.GreaterThan(topTotal) || (total.Equal(topTotal) && category < top) {
			top = category
			topTotal = total
			found = true
		}
	}
	if !found {
		return models.Insight{}, false
	}
	return models.Insight{
		Kind:    models.InsightAlert,
		Title:   "Top expense category",
		Message: fmt.Sprintf("Your biggest expense this month is %q at %s.", top, topTotal.String()),
	}, true
}

// expenseSwing fires when this month's expenses moved more than 20% in
// either direction against last month. Requires a non-zero previous month.
func expenseSwing(current, previous decimal.Decimal) (models.Insight, bool) {
	if !previous.IsPositive() {
		return models.Insight{}, false
	}
	variation := PeriodVariation(current, previous)
	switch {
	case variation.GreaterThan(expenseSwingThreshold):
		return models.Insight{
			Kind:    models.InsightWarning,
			Title:   "Expenses are up",
			Message: fmt.Sprintf("Spending increased %s%% compared to last month.", variation.Round(1).String()),
		}, true
	case variation.LessThan(expenseSwingThreshold.Neg()):
		return models.Insight{
			Kind:    models.InsightSuccess,
			Title:   "Expenses are down",
			Message: fmt.Sprintf("Spending decreased %s%% compared to last month.", variation.Abs().Round(1).String()),
		}, true
	}
	return models.Insight{}, false
}

// lowSavingsRate fires when less than 20% of the month's income is left
// after expenses. Guarded by income > 0.
func lowSavingsRate(totals models.Totals) (models.Insight, bool) {
	if !totals.Income.IsPositive() {
		return models.Insight{}, false
	}
	rate := totals.Balance.Div(totals.Income).Mul(hundred)
	if rate.GreaterThanOrEqual(savingsRateThreshold) {
		return models.Insight{}, false
	}
	return models.Insight{
		Kind:    models.InsightSuggestion,
		Title:   "Low savings rate",
		Message: fmt.Sprintf("You are saving %s%% of your income this month; try to reach at least %s%%.", rate.Round(1).String(), savingsRateThreshold.String()),
	}, true
}

// highFixedCosts fires when recurring expenses eat more than half of the
// month's income. Recurring transactions are counted by flag only; no
// occurrence expansion is performed.
func highFixedCosts(current []models.Transaction, income decimal.Decimal) (models.Insight, bool) {
	if !income.IsPositive() {
		return models.Insight{}, false
	}
	recurring := decimal.Zero
	count := 0
	for _, txn := range current {
		if txn.Type == models.TypeExpense && txn.IsRecurring {
			recurring = recurring.Add(txn.Amount)
			count++
		}
	}
	if count == 0 {
		return models.Insight{}, false
	}
	load := recurring.Div(income).Mul(hundred)
	if load.LessThanOrEqual(fixedCostThreshold) {
		return models.Insight{}, false
	}
	return models.Insight{
		Kind:    models.InsightAlert,
		Title:   "High fixed costs",
		Message: fmt.Sprintf("Recurring expenses take %s%% of your income this month.", load.Round(1).String()),
	}, true
}
