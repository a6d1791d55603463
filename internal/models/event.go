package models

// TransactionEvent is published to Kafka whenever a transaction is
// created, updated, or deleted.
type TransactionEvent struct {
	TransactionID string `json:"transaction_id"` // Identifier of the affected transaction
	OwnerID       string `json:"owner_id"`       // User who owns the transaction
	Operation     string `json:"operation"`      // "created", "updated", or "deleted"
	Type          string `json:"type"`           // "income" or "expense"
	Amount        string `json:"amount"`         // Decimal amount as string to avoid precision loss
	OccurredOn    string `json:"occurred_on"`    // Calendar date in YYYY-MM-DD format
	Timestamp     int64  `json:"timestamp"`      // Unix timestamp (in seconds) when the event was emitted
}
