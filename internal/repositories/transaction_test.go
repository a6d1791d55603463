package repositories

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/fintrack/internal/models"
)

var txnColumns = []string{
	"transaction_id", "owner_id", "group_id", "type", "occurred_on", "description",
	"amount", "category", "is_recurring", "recurring_start", "recurring_end",
	"created_at", "updated_at",
}

func txnRow(transactionID, ownerID uuid.UUID, occurredOn time.Time) []driver.Value {
	now := time.Now()
	return []driver.Value{
		transactionID.String(), ownerID.String(), nil, "expense", occurredOn, "groceries",
		"300", "food", false, nil, nil, now, now,
	}
}

func TestTransactionReadRepository_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTransactionReadRepository(db)

	transactionID := uuid.New()
	ownerID := uuid.New()
	occurredOn := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT (.+) FROM transactions WHERE transaction_id`).
		WithArgs(transactionID).
		WillReturnRows(sqlmock.NewRows(txnColumns).
			AddRow(txnRow(transactionID, ownerID, occurredOn)...))

	txn, err := repo.GetByID(context.Background(), transactionID)

	require.NoError(t, err)
	require.NotNil(t, txn)
	assert.Equal(t, transactionID, txn.TransactionID)
	assert.Equal(t, ownerID, txn.OwnerID)
	assert.Equal(t, models.TypeExpense, txn.Type)
	assert.True(t, txn.Amount.Equal(decimal.NewFromInt(300)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionReadRepository_GetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTransactionReadRepository(db)

	transactionID := uuid.New()
	mock.ExpectQuery(`SELECT (.+) FROM transactions WHERE transaction_id`).
		WithArgs(transactionID).
		WillReturnError(sql.ErrNoRows)

	txn, err := repo.GetByID(context.Background(), transactionID)

	assert.NoError(t, err)
	assert.Nil(t, txn)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionReadRepository_ListVisible(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTransactionReadRepository(db)

	userID := uuid.New()
	from := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(txnColumns).
		AddRow(txnRow(uuid.New(), userID, time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC))...).
		AddRow(txnRow(uuid.New(), userID, time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC))...)

	mock.ExpectQuery(`SELECT (.+) FROM transactions WHERE \(owner_id`).
		WithArgs(userID, from, to).
		WillReturnRows(rows)

	txns, err := repo.ListVisible(context.Background(), userID, &from, &to)

	require.NoError(t, err)
	assert.Len(t, txns, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionReadRepository_ListVisible_NoWindow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTransactionReadRepository(db)

	userID := uuid.New()

	mock.ExpectQuery(`SELECT (.+) FROM transactions WHERE \(owner_id`).
		WithArgs(userID, nil, nil).
		WillReturnRows(sqlmock.NewRows(txnColumns))

	txns, err := repo.ListVisible(context.Background(), userID, nil, nil)

	require.NoError(t, err)
	assert.Empty(t, txns)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionReadRepository_ListForGroup(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTransactionReadRepository(db)

	groupID := uuid.New()

	mock.ExpectQuery(`SELECT (.+) FROM transactions WHERE group_id`).
		WithArgs(groupID, nil, nil).
		WillReturnRows(sqlmock.NewRows(txnColumns).
			AddRow(txnRow(uuid.New(), uuid.New(), time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC))...))

	txns, err := repo.ListForGroup(context.Background(), groupID, nil, nil)

	require.NoError(t, err)
	assert.Len(t, txns, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionWriteRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTransactionWriteRepository(db, nil)

	txn := models.Transaction{
		TransactionID: uuid.New(),
		OwnerID:       uuid.New(),
		Type:          models.TypeExpense,
		OccurredOn:    time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
		Description:   "groceries",
		Amount:        decimal.NewFromInt(300),
		Category:      "food",
	}

	mock.ExpectExec(`INSERT INTO transactions`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Save(context.Background(), txn)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionWriteRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTransactionWriteRepository(db, nil)

	transactionID := uuid.New()
	mock.ExpectExec(`DELETE FROM transactions`).
		WithArgs(transactionID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Delete(context.Background(), transactionID)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionWriteRepository_Delete_NothingDeleted(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTransactionWriteRepository(db, nil)

	transactionID := uuid.New()
	mock.ExpectExec(`DELETE FROM transactions`).
		WithArgs(transactionID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), transactionID)

	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
