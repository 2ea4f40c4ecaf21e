// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/silentmoney/silent-money/internal/model"
)

// Storage defines the contract for the persistence layer. The extraction
// engine never calls it directly; it returns records for the caller to
// persist.
type Storage interface {
	// SaveTransaction appends a newly parsed transaction.
	SaveTransaction(ctx context.Context, txn *model.Transaction) error
	// UpdateTransaction replaces a stored transaction by its identifier.
	UpdateTransaction(ctx context.Context, txn *model.Transaction) error
	// GetTransactionByID fetches a single transaction.
	GetTransactionByID(ctx context.Context, id string) (*model.Transaction, error)
	// ListTransactions returns all transactions, newest first.
	ListTransactions(ctx context.Context) ([]model.Transaction, error)

	// Settings operations.
	GetSettings(ctx context.Context) (*model.Settings, error)
	SaveSettings(ctx context.Context, settings *model.Settings) error

	// Database management.
	Migrate(ctx context.Context) error
	Close() error
}

// RetryOptions configures retry behavior for operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
