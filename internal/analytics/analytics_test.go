package analytics

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/fintrack/internal/models"
)

func makeTxn(txType models.TransactionType, amount int64, category string, occurredOn time.Time) models.Transaction {
	return models.Transaction{
		TransactionID: uuid.New(),
		OwnerID:       uuid.New(),
		Type:          txType,
		OccurredOn:    occurredOn,
		Amount:        decimal.NewFromInt(amount),
		Category:      category,
	}
}

func TestValidate(t *testing.T) {
	valid := makeTxn(models.TypeIncome, 100, "salary", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))

	tests := []struct {
		name    string
		mutate  func(txn *models.Transaction)
		wantErr error
	}{
		{
			name:    "valid income",
			mutate:  func(txn *models.Transaction) {},
			wantErr: nil,
		},
		{
			name:    "valid expense",
			mutate:  func(txn *models.Transaction) { txn.Type = models.TypeExpense },
			wantErr: nil,
		},
		{
			name:    "unknown type",
			mutate:  func(txn *models.Transaction) { txn.Type = "transfer" },
			wantErr: ErrUnknownType,
		},
		{
			name:    "empty type",
			mutate:  func(txn *models.Transaction) { txn.Type = "" },
			wantErr: ErrUnknownType,
		},
		{
			name:    "zero amount",
			mutate:  func(txn *models.Transaction) { txn.Amount = decimal.Zero },
			wantErr: ErrNonPositiveAmount,
		},
		{
			name:    "negative amount",
			mutate:  func(txn *models.Transaction) { txn.Amount = decimal.NewFromInt(-5) },
			wantErr: ErrNonPositiveAmount,
		},
		{
			name:    "zero date",
			mutate:  func(txn *models.Transaction) { txn.OccurredOn = time.Time{} },
			wantErr: ErrZeroDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := valid
			tt.mutate(&txn)
			err := Validate(txn)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestFilterMonth(t *testing.T) {
	may := time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)
	inMay := makeTxn(models.TypeExpense, 50, "food", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))
	inApril := makeTxn(models.TypeExpense, 70, "food", time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC))
	mayLastYear := makeTxn(models.TypeExpense, 90, "food", time.Date(2023, 5, 10, 0, 0, 0, 0, time.UTC))

	got := FilterMonth([]models.Transaction{inMay, inApril, mayLastYear}, may)

	require.Len(t, got, 1)
	assert.Equal(t, inMay.TransactionID, got[0].TransactionID)
}

func TestFilterMonth_Empty(t *testing.T) {
	got := FilterMonth(nil, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))
	assert.Empty(t, got)
}

func TestMonthlyTotals(t *testing.T) {
	may := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		txns        []models.Transaction
		wantIncome  int64
		wantExpense int64
		wantBalance int64
	}{
		{
			name:        "empty input yields zero totals",
			txns:        nil,
			wantIncome:  0,
			wantExpense: 0,
			wantBalance: 0,
		},
		{
			name: "income and expense are summed separately",
			txns: []models.Transaction{
				makeTxn(models.TypeIncome, 1000, "salary", may),
				makeTxn(models.TypeIncome, 200, "bonus", may),
				makeTxn(models.TypeExpense, 300, "food", may),
			},
			wantIncome:  1200,
			wantExpense: 300,
			wantBalance: 900,
		},
		{
			name: "expenses may exceed income",
			txns: []models.Transaction{
				makeTxn(models.TypeIncome, 100, "salary", may),
				makeTxn(models.TypeExpense, 400, "rent", may),
			},
			wantIncome:  100,
			wantExpense: 400,
			wantBalance: -300,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals, err := MonthlyTotals(tt.txns)
			require.NoError(t, err)
			assert.True(t, totals.Income.Equal(decimal.NewFromInt(tt.wantIncome)), "income = %s", totals.Income)
			assert.True(t, totals.Expense.Equal(decimal.NewFromInt(tt.wantExpense)), "expense = %s", totals.Expense)
			assert.True(t, totals.Balance.Equal(decimal.NewFromInt(tt.wantBalance)), "balance = %s", totals.Balance)
			// Balance always equals income minus expense.
			assert.True(t, totals.Balance.Equal(totals.Income.Sub(totals.Expense)))
		})
	}
}

func TestMonthlyTotals_MalformedRecordRejectsCall(t *testing.T) {
	may := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	bad := makeTxn(models.TypeIncome, 100, "salary", may)
	bad.Type = "transfer"

	_, err := MonthlyTotals([]models.Transaction{
		makeTxn(models.TypeIncome, 1000, "salary", may),
		bad,
	})

	assert.ErrorIs(t, err, ErrUnknownType)
}

func TestMonthlyTotals_ExactDecimalSums(t *testing.T) {
	may := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	cent := decimal.RequireFromString("0.01")

	txns := make([]models.Transaction, 0, 1000)
	for i := 0; i < 1000; i++ {
		txn := makeTxn(models.TypeExpense, 1, "micro", may)
		txn.Amount = cent
		txns = append(txns, txn)
	}

	totals, err := MonthlyTotals(txns)
	require.NoError(t, err)
	assert.True(t, totals.Expense.Equal(decimal.NewFromInt(10)), "expense = %s", totals.Expense)
}

func TestPeriodVariation(t *testing.T) {
	tests := []struct {
		name     string
		current  int64
		previous int64
		want     string
	}{
		{name: "zero previous yields zero", current: 500, previous: 0, want: "0"},
		{name: "twenty percent increase", current: 120, previous: 100, want: "20"},
		{name: "twenty percent decrease", current: 80, previous: 100, want: "-20"},
		{name: "drop to zero is minus hundred", current: 0, previous: 100, want: "-100"},
		{name: "unchanged", current: 100, previous: 100, want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PeriodVariation(decimal.NewFromInt(tt.current), decimal.NewFromInt(tt.previous))
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "variation = %s", got)
		})
	}
}

func TestCategoryTotals(t *testing.T) {
	may := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	txns := []models.Transaction{
		makeTxn(models.TypeExpense, 300, "food", may),
		makeTxn(models.TypeExpense, 150, "food", may),
		makeTxn(models.TypeExpense, 1200, "rent", may),
		makeTxn(models.TypeIncome, 1000, "salary", may),
	}

	got, err := CategoryTotals(txns, models.TypeExpense)
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.True(t, got["food"].Equal(decimal.NewFromInt(450)))
	assert.True(t, got["rent"].Equal(decimal.NewFromInt(1200)))
}

func TestCategoryTotals_Empty(t *testing.T) {
	got, err := CategoryTotals(nil, models.TypeExpense)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCategoryHistory(t *testing.T) {
	ref := time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)
	txns := []models.Transaction{
		makeTxn(models.TypeExpense, 300, "food", time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)),
		makeTxn(models.TypeExpense, 200, "food", time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC)),
		makeTxn(models.TypeExpense, 99, "rent", time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)),
		makeTxn(models.TypeIncome, 500, "food", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)),
	}

	history, err := CategoryHistory(txns, "food", models.TypeExpense, ref, DefaultHistoryWindow)
	require.NoError(t, err)

	// Always exactly window entries, newest month first.
	require.Len(t, history, 3)
	assert.Equal(t, 2024, history[0].Year)
	assert.Equal(t, 5, history[0].Month)
	assert.True(t, history[0].Total.Equal(decimal.NewFromInt(300)))
	assert.Equal(t, 4, history[1].Month)
	assert.True(t, history[1].Total.Equal(decimal.NewFromInt(200)))
	assert.Equal(t, 3, history[2].Month)
	assert.True(t, history[2].Total.IsZero())
}

func TestCategoryHistory_DefaultsWindow(t *testing.T) {
	ref := time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)

	history, err := CategoryHistory(nil, "food", models.TypeExpense, ref, 0)
	require.NoError(t, err)
	assert.Len(t, history, DefaultHistoryWindow)
}

func TestCategoryHistory_CrossesYearBoundary(t *testing.T) {
	ref := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)

	history, err := CategoryHistory(nil, "food", models.TypeExpense, ref, 3)
	require.NoError(t, err)

	require.Len(t, history, 3)
	assert.Equal(t, 2024, history[0].Year)
	assert.Equal(t, 1, history[0].Month)
	assert.Equal(t, 2023, history[1].Year)
	assert.Equal(t, 12, history[1].Month)
	assert.Equal(t, 2023, history[2].Year)
	assert.Equal(t, 11, history[2].Month)
}

func TestAggregationIsIdempotent(t *testing.T) {
	may := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	txns := []models.Transaction{
		makeTxn(models.TypeIncome, 1000, "salary", may),
		makeTxn(models.TypeExpense, 300, "food", may),
	}

	first, err := MonthlyTotals(txns)
	require.NoError(t, err)
	second, err := MonthlyTotals(txns)
	require.NoError(t, err)

	assert.True(t, first.Income.Equal(second.Income))
	assert.True(t, first.Expense.Equal(second.Expense))
	assert.True(t, first.Balance.Equal(second.Balance))

	firstHist, err := CategoryHistory(txns, "food", models.TypeExpense, may, 3)
	require.NoError(t, err)
	secondHist, err := CategoryHistory(txns, "food", models.TypeExpense, may, 3)
	require.NoError(t, err)
	assert.Equal(t, firstHist, secondHist)
}

// Scenario: a salary and a food expense in May 2024, a food expense in April.
func TestMonthlyAggregation_MayScenario(t *testing.T) {
	ref := time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)
	txns := []models.Transaction{
		makeTxn(models.TypeIncome, 1000, "salary", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)),
		makeTxn(models.TypeExpense, 300, "food", time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)),
		makeTxn(models.TypeExpense, 200, "food", time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC)),
	}

	current := FilterMonth(txns, ref)
	previous := FilterMonth(txns, ref.AddDate(0, -1, 0))

	currentTotals, err := MonthlyTotals(current)
	require.NoError(t, err)
	assert.True(t, currentTotals.Income.Equal(decimal.NewFromInt(1000)))
	assert.True(t, currentTotals.Expense.Equal(decimal.NewFromInt(300)))
	assert.True(t, currentTotals.Balance.Equal(decimal.NewFromInt(700)))

	previousTotals, err := MonthlyTotals(previous)
	require.NoError(t, err)

	variation := PeriodVariation(currentTotals.Expense, previousTotals.Expense)
	assert.True(t, variation.Equal(decimal.NewFromInt(50)), "variation = %s", variation)
}
