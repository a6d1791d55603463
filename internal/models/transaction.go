package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType is the direction of a transaction: money in or money out.
type TransactionType string

// Supported transaction types
const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Transaction represents a single income or expense record.
// Amount is always positive; the sign is carried by Type.
type Transaction struct {
	TransactionID  uuid.UUID       `json:"transaction_id" db:"transaction_id"`   // Unique transaction identifier
	OwnerID        uuid.UUID       `json:"owner_id" db:"owner_id"`               // User who recorded the transaction
	GroupID        *uuid.UUID      `json:"group_id,omitempty" db:"group_id"`     // Optional shared group; nil for personal transactions
	Type           TransactionType `json:"type" db:"type"`                       // "income" or "expense"
	OccurredOn     time.Time       `json:"occurred_on" db:"occurred_on"`         // Calendar date the transaction is attributed to
	Description    string          `json:"description" db:"description"`         // Free-text label
	Amount         decimal.Decimal `json:"amount" db:"amount"`                   // Positive amount, currency-agnostic
	Category       string          `json:"category" db:"category"`               // User-extensible category label
	IsRecurring    bool            `json:"is_recurring" db:"is_recurring"`       // Recurring flag; recurring records are not expanded into future months
	RecurringStart *time.Time      `json:"recurring_start" db:"recurring_start"` // Optional recurrence start date
	RecurringEnd   *time.Time      `json:"recurring_end" db:"recurring_end"`     // Optional recurrence end date
	CreatedAt      time.Time       `json:"created_at" db:"created_at"`           // Timestamp when the record was created
	UpdatedAt      time.Time       `json:"updated_at" db:"updated_at"`           // Timestamp of the last update
}
