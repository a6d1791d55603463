package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/fintrack/internal/logger"
	"github.com/sbilibin2017/fintrack/internal/models"
)

const transactionColumns = `
	transaction_id, owner_id, group_id, type, occurred_on, description,
	amount, category, is_recurring, recurring_start, recurring_end,
	created_at, updated_at
`

// TransactionReadRepository handles transaction read operations
type TransactionReadRepository struct {
	db *sqlx.DB
}

func NewTransactionReadRepository(db *sqlx.DB) *TransactionReadRepository {
	return &TransactionReadRepository{db: db}
}

// GetByID returns a single transaction, or nil when it does not exist.
func (r *TransactionReadRepository) GetByID(ctx context.Context, transactionID uuid.UUID) (*models.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE transaction_id = $1
	`

	var txn models.Transaction
	err := r.db.GetContext(ctx, &txn, query, transactionID)

	logger.Log.Infow("transaction get",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{transactionID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &txn, nil
}

// ListVisible returns all transactions the user can see: their own plus
// those shared with any group the user belongs to. The optional [from, to)
// window restricts by occurrence date.
func (r *TransactionReadRepository) ListVisible(ctx context.Context, userID uuid.UUID, from, to *time.Time) ([]models.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE (owner_id = $1
		       OR group_id IN (SELECT group_id FROM group_members WHERE user_id = $1))
		  AND ($2::DATE IS NULL OR occurred_on >= $2)
		  AND ($3::DATE IS NULL OR occurred_on < $3)
		ORDER BY occurred_on DESC, created_at DESC
	`

	var txns []models.Transaction
	err := r.db.SelectContext(ctx, &txns, query, userID, from, to)

	logger.Log.Infow("transaction list visible",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, from, to},
		"count", len(txns),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return txns, nil
}

// ListForGroup returns all transactions shared with the group, with an
// optional [from, to) occurrence-date window.
func (r *TransactionReadRepository) ListForGroup(ctx context.Context, groupID uuid.UUID, from, to *time.Time) ([]models.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE group_id = $1
		  AND ($2::DATE IS NULL OR occurred_on >= $2)
		  AND ($3::DATE IS NULL OR occurred_on < $3)
		ORDER BY occurred_on DESC, created_at DESC
	`

	var txns []models.Transaction
	err := r.db.SelectContext(ctx, &txns, query, groupID, from, to)

	logger.Log.Infow("transaction list for group",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{groupID, from, to},
		"count", len(txns),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return txns, nil
}

// TransactionWriteRepository handles transaction write operations
type TransactionWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTransactionWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TransactionWriteRepository {
	return &TransactionWriteRepository{db: db, txGetter: txGetter}
}

func (r *TransactionWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save performs an UPSERT: inserts the transaction or replaces its mutable
// fields when the id already exists.
func (r *TransactionWriteRepository) Save(ctx context.Context, txn models.Transaction) error {
	query := `
		INSERT INTO transactions (
			transaction_id, owner_id, group_id, type, occurred_on, description,
			amount, category, is_recurring, recurring_start, recurring_end,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		ON CONFLICT (transaction_id) DO UPDATE
		SET group_id = EXCLUDED.group_id,
		    type = EXCLUDED.type,
		    occurred_on = EXCLUDED.occurred_on,
		    description = EXCLUDED.description,
		    amount = EXCLUDED.amount,
		    category = EXCLUDED.category,
		    is_recurring = EXCLUDED.is_recurring,
		    recurring_start = EXCLUDED.recurring_start,
		    recurring_end = EXCLUDED.recurring_end,
		    updated_at = NOW()
	`
	args := []any{
		txn.TransactionID, txn.OwnerID, txn.GroupID, txn.Type, txn.OccurredOn,
		txn.Description, txn.Amount, txn.Category, txn.IsRecurring,
		txn.RecurringStart, txn.RecurringEnd,
	}

	_, err := r.executor(ctx).ExecContext(ctx, query, args...)

	logger.Log.Infow("transaction save",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{txn.TransactionID, txn.OwnerID, txn.Type, txn.Amount},
		"error", err,
	)

	return err
}

// Delete removes a transaction by id. Returns sql.ErrNoRows when nothing
// was deleted.
func (r *TransactionWriteRepository) Delete(ctx context.Context, transactionID uuid.UUID) error {
	query := `
		DELETE FROM transactions
		WHERE transaction_id = $1
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, transactionID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("transaction delete",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{transactionID},
		"rows_affected", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
