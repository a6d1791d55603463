package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/fintrack/internal/analytics"
	"github.com/sbilibin2017/fintrack/internal/logger"
	"github.com/sbilibin2017/fintrack/internal/models"
)

// Error variables
var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrNotTransactionOwner = errors.New("transaction belongs to another user")
)

// TransactionReader defines read operations for transactions.
type TransactionReader interface {
	GetByID(ctx context.Context, transactionID uuid.UUID) (*models.Transaction, error)
	ListVisible(ctx context.Context, userID uuid.UUID, from, to *time.Time) ([]models.Transaction, error)
}

// TransactionWriter defines write operations for transactions.
type TransactionWriter interface {
	Save(ctx context.Context, txn models.Transaction) error
	Delete(ctx context.Context, transactionID uuid.UUID) error
}

// GroupMembership checks and lists group membership.
type GroupMembership interface {
	IsMember(ctx context.Context, groupID, userID uuid.UUID) (bool, error)
	ListMembers(ctx context.Context, groupID uuid.UUID) ([]models.GroupMemberDB, error)
}

// ReportCacheInvalidator drops cached monthly reports.
type ReportCacheInvalidator interface {
	Delete(ctx context.Context, keys ...string) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// TransactionService handles transaction CRUD, event publishing, and
// report cache invalidation.
type TransactionService struct {
	readRepo    TransactionReader
	writeRepo   TransactionWriter
	groups      GroupMembership
	cache       ReportCacheInvalidator
	kafkaWriter KafkaWriter
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(
	readRepo TransactionReader,
	writeRepo TransactionWriter,
	groups GroupMembership,
	cache ReportCacheInvalidator,
	kafkaWriter KafkaWriter,
) *TransactionService {
	return &TransactionService{
		readRepo:    readRepo,
		writeRepo:   writeRepo,
		groups:      groups,
		cache:       cache,
		kafkaWriter: kafkaWriter,
	}
}

// publishEvent publishes a transaction lifecycle event to Kafka.
func (s *TransactionService) publishEvent(ctx context.Context, txn models.Transaction, operation string) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "transaction_id", txn.TransactionID)
		return
	}

	event := models.TransactionEvent{
		TransactionID: txn.TransactionID.String(),
		OwnerID:       txn.OwnerID.String(),
		Operation:     operation,
		Type:          string(txn.Type),
		Amount:        txn.Amount.String(),
		OccurredOn:    txn.OccurredOn.Format("2006-01-02"),
		Timestamp:     time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal transaction event", "transaction_id", txn.TransactionID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.TransactionID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish transaction event", "transaction_id", txn.TransactionID, "error", err)
	} else {
		logger.Log.Infow("Transaction event published", "transaction_id", txn.TransactionID, "operation", operation)
	}
}

// invalidateReports drops every cached report the transaction can appear
// in: the owner's month, the group's month, and each group member's month.
func (s *TransactionService) invalidateReports(ctx context.Context, txns ...models.Transaction) {
	if s.cache == nil {
		return
	}

	keySet := make(map[string]struct{})
	for _, txn := range txns {
		keySet[userReportKey(txn.OwnerID, txn.OccurredOn)] = struct{}{}
		if txn.GroupID == nil {
			continue
		}
		keySet[groupReportKey(*txn.GroupID, txn.OccurredOn)] = struct{}{}

		members, err := s.groups.ListMembers(ctx, *txn.GroupID)
		if err != nil {
			logger.Log.Errorw("failed to list group members for cache invalidation", "groupID", *txn.GroupID, "error", err)
			continue
		}
		for _, m := range members {
			keySet[userReportKey(m.UserID, txn.OccurredOn)] = struct{}{}
		}
	}

	keys := make([]string, 0, len(keySet))
	for key := range keySet {
		keys = append(keys, key)
	}

	if err := s.cache.Delete(ctx, keys...); err != nil {
		logger.Log.Errorw("failed to invalidate report cache", "keys", keys, "error", err)
	}
}

// checkGroup verifies the user belongs to the transaction's group, if any.
func (s *TransactionService) checkGroup(ctx context.Context, txn models.Transaction, userID uuid.UUID) error {
	if txn.GroupID == nil {
		return nil
	}
	isMember, err := s.groups.IsMember(ctx, *txn.GroupID, userID)
	if err != nil {
		logger.Log.Errorw("failed to check group membership", "groupID", *txn.GroupID, "userID", userID, "error", err)
		return err
	}
	if !isMember {
		return ErrNotGroupMember
	}
	return nil
}

// Create validates and persists a new transaction for the user. Malformed
// records are rejected here, at the ingestion boundary, so aggregation
// never sees them.
func (s *TransactionService) Create(ctx context.Context, userID uuid.UUID, txn models.Transaction) (models.Transaction, error) {
	if txn.TransactionID == uuid.Nil {
		txn.TransactionID = uuid.New()
	}
	txn.OwnerID = userID

	if err := analytics.Validate(txn); err != nil {
		logger.Log.Errorw("rejected malformed transaction", "userID", userID, "error", err)
		return models.Transaction{}, err
	}
	if err := s.checkGroup(ctx, txn, userID); err != nil {
		return models.Transaction{}, err
	}

	if err := s.writeRepo.Save(ctx, txn); err != nil {
		logger.Log.Errorw("failed to save transaction", "transaction_id", txn.TransactionID, "error", err)
		return models.Transaction{}, err
	}

	s.publishEvent(ctx, txn, "created")
	s.invalidateReports(ctx, txn)

	return txn, nil
}

// Update replaces the mutable fields of a transaction owned by the user.
func (s *TransactionService) Update(ctx context.Context, userID uuid.UUID, txn models.Transaction) (models.Transaction, error) {
	existing, err := s.readRepo.GetByID(ctx, txn.TransactionID)
	if err != nil {
		logger.Log.Errorw("failed to get transaction", "transaction_id", txn.TransactionID, "error", err)
		return models.Transaction{}, err
	}
	if existing == nil {
		return models.Transaction{}, ErrTransactionNotFound
	}
	if existing.OwnerID != userID {
		return models.Transaction{}, ErrNotTransactionOwner
	}

	txn.OwnerID = existing.OwnerID
	txn.CreatedAt = existing.CreatedAt

	if err := analytics.Validate(txn); err != nil {
		logger.Log.Errorw("rejected malformed transaction", "userID", userID, "error", err)
		return models.Transaction{}, err
	}
	if err := s.checkGroup(ctx, txn, userID); err != nil {
		return models.Transaction{}, err
	}

	if err := s.writeRepo.Save(ctx, txn); err != nil {
		logger.Log.Errorw("failed to update transaction", "transaction_id", txn.TransactionID, "error", err)
		return models.Transaction{}, err
	}

	s.publishEvent(ctx, txn, "updated")
	// Both the old and the new month may be affected when the date moved.
	s.invalidateReports(ctx, *existing, txn)

	return txn, nil
}

// Delete removes a transaction owned by the user.
func (s *TransactionService) Delete(ctx context.Context, userID, transactionID uuid.UUID) error {
	existing, err := s.readRepo.GetByID(ctx, transactionID)
	if err != nil {
		logger.Log.Errorw("failed to get transaction", "transaction_id", transactionID, "error", err)
		return err
	}
	if existing == nil {
		return ErrTransactionNotFound
	}
	if existing.OwnerID != userID {
		return ErrNotTransactionOwner
	}

	if err := s.writeRepo.Delete(ctx, transactionID); err != nil {
		logger.Log.Errorw("failed to delete transaction", "transaction_id", transactionID, "error", err)
		return err
	}

	s.publishEvent(ctx, *existing, "deleted")
	s.invalidateReports(ctx, *existing)

	return nil
}

// List returns the transactions visible to the user, optionally restricted
// to one calendar month.
func (s *TransactionService) List(ctx context.Context, userID uuid.UUID, month *time.Time) ([]models.Transaction, error) {
	var from, to *time.Time
	if month != nil {
		start, end := monthWindow(*month)
		from, to = &start, &end
	}

	txns, err := s.readRepo.ListVisible(ctx, userID, from, to)
	if err != nil {
		logger.Log.Errorw("failed to list transactions", "userID", userID, "error", err)
		return nil, err
	}
	return txns, nil
}
