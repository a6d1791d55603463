package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/fintrack/internal/models"
)

func insightTitles(insights []models.Insight) []string {
	titles := make([]string, 0, len(insights))
	for _, ins := range insights {
		titles = append(titles, ins.Title)
	}
	return titles
}

func TestDeriveInsights_NoTransactions(t *testing.T) {
	insights, err := DeriveInsights(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, insights)
}

func TestDeriveInsights_MalformedInput(t *testing.T) {
	may := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	bad := makeTxn(models.TypeExpense, 100, "food", may)
	bad.Amount = decimal.Zero

	_, err := DeriveInsights([]models.Transaction{bad}, nil)
	assert.ErrorIs(t, err, ErrNonPositiveAmount)
}

// No income this month and a single "rent" expense: the top-category insight
// names rent, and the low-savings-rate rule stays silent without income.
func TestDeriveInsights_RentOnlyMonth(t *testing.T) {
	may := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	current := []models.Transaction{
		makeTxn(models.TypeExpense, 1200, "rent", may),
	}

	insights, err := DeriveInsights(current, nil)
	require.NoError(t, err)

	require.Len(t, insights, 1)
	assert.Equal(t, models.InsightAlert, insights[0].Kind)
	assert.Equal(t, "Top expense category", insights[0].Title)
	assert.Contains(t, insights[0].Message, "rent")
	assert.Contains(t, insights[0].Message, "1200")
	assert.NotContains(t, insightTitles(insights), "Low savings rate")
}

// Spending dropped from 100 to 0: the variation is -100 and the
// expense-decrease insight fires.
func TestDeriveInsights_SpendingStopped(t *testing.T) {
	april := time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC)
	previous := []models.Transaction{
		makeTxn(models.TypeExpense, 100, "food", april),
	}

	variation := PeriodVariation(decimal.Zero, decimal.NewFromInt(100))
	assert.True(t, variation.Equal(decimal.NewFromInt(-100)))

	insights, err := DeriveInsights(nil, previous)
	require.NoError(t, err)

	require.Len(t, insights, 1)
	assert.Equal(t, models.InsightSuccess, insights[0].Kind)
	assert.Equal(t, "Expenses are down", insights[0].Title)
}

func TestExpenseSwing(t *testing.T) {
	tests := []struct {
		name      string
		current   int64
		previous  int64
		wantFires bool
		wantKind  models.InsightKind
	}{
		{name: "no previous expenses", current: 500, previous: 0, wantFires: false},
		{name: "exactly twenty percent up does not fire", current: 120, previous: 100, wantFires: false},
		{name: "above threshold fires warning", current: 121, previous: 100, wantFires: true, wantKind: models.InsightWarning},
		{name: "exactly twenty percent down does not fire", current: 80, previous: 100, wantFires: false},
		{name: "below threshold fires success", current: 79, previous: 100, wantFires: true, wantKind: models.InsightSuccess},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			insight, ok := expenseSwing(decimal.NewFromInt(tt.current), decimal.NewFromInt(tt.previous))
			assert.Equal(t, tt.wantFires, ok)
			if tt.wantFires {
				assert.Equal(t, tt.wantKind, insight.Kind)
			}
		})
	}
}

func TestLowSavingsRate(t *testing.T) {
	tests := []struct {
		name      string
		income    int64
		expense   int64
		wantFires bool
	}{
		{name: "no income", income: 0, expense: 100, wantFires: false},
		{name: "healthy rate", income: 1000, expense: 700, wantFires: false},
		{name: "exactly twenty percent does not fire", income: 1000, expense: 800, wantFires: false},
		{name: "below twenty percent fires", income: 1000, expense: 801, wantFires: true},
		{name: "negative balance fires", income: 1000, expense: 1500, wantFires: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			income := decimal.NewFromInt(tt.income)
			expense := decimal.NewFromInt(tt.expense)
			totals := models.Totals{
				Income:  income,
				Expense: expense,
				Balance: income.Sub(expense),
			}

			insight, ok := lowSavingsRate(totals)
			assert.Equal(t, tt.wantFires, ok)
			if tt.wantFires {
				assert.Equal(t, models.InsightSuggestion, insight.Kind)
			}
		})
	}
}

func TestHighFixedCosts(t *testing.T) {
	may := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	recurring := func(amount int64) models.Transaction {
		txn := makeTxn(models.TypeExpense, amount, "rent", may)
		txn.IsRecurring = true
		return txn
	}

	tests := []struct {
		name      string
		txns      []models.Transaction
		income    int64
		wantFires bool
	}{
		{name: "no income", txns: []models.Transaction{recurring(600)}, income: 0, wantFires: false},
		{name: "no recurring expenses", txns: []models.Transaction{makeTxn(models.TypeExpense, 900, "rent", may)}, income: 1000, wantFires: false},
		{name: "exactly half does not fire", txns: []models.Transaction{recurring(500)}, income: 1000, wantFires: false},
		{name: "above half fires", txns: []models.Transaction{recurring(501)}, income: 1000, wantFires: true},
		{name: "recurring income is ignored", txns: func() []models.Transaction {
			txn := makeTxn(models.TypeIncome, 900, "salary", may)
			txn.IsRecurring = true
			return []models.Transaction{txn}
		}(), income: 1000, wantFires: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			insight, ok := highFixedCosts(tt.txns, decimal.NewFromInt(tt.income))
			assert.Equal(t, tt.wantFires, ok)
			if tt.wantFires {
				assert.Equal(t, models.InsightAlert, insight.Kind)
			}
		})
	}
}

func TestTopExpenseCategory_TieBreaksOnName(t *testing.T) {
	byCategory := map[string]decimal.Decimal{
		"food": decimal.NewFromInt(500),
		"auto": decimal.NewFromInt(500),
	}

	insight, ok := topExpenseCategory(byCategory)
	require.True(t, ok)
	assert.Contains(t, insight.Message, `"auto"`)
}

func TestDeriveInsights_Order(t *testing.T) {
	may := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	april := time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC)

	rent := makeTxn(models.TypeExpense, 700, "rent", may)
	rent.IsRecurring = true
	current := []models.Transaction{
		makeTxn(models.TypeIncome, 1000, "salary", may),
		rent,
		makeTxn(models.TypeExpense, 250, "food", may),
	}
	previous := []models.Transaction{
		makeTxn(models.TypeExpense, 500, "food", april),
	}

	insights, err := DeriveInsights(current, previous)
	require.NoError(t, err)

	// All four rules fire here, in their fixed evaluation order.
	require.Len(t, insights, 4)
	assert.Equal(t, []string{
		"Top expense category",
		"Expenses are up",
		"Low savings rate",
		"High fixed costs",
	}, insightTitles(insights))
}
