// Package engine orchestrates the SMS-to-transaction pipeline: parse the raw
// text, resolve the bank identity, assemble the final record, and optionally
// hand it to the semantic categorizer.
package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/silentmoney/silent-money/internal/bank"
	"github.com/silentmoney/silent-money/internal/common"
	"github.com/silentmoney/silent-money/internal/model"
	"github.com/silentmoney/silent-money/internal/sms"
)

// Engine converts raw SMS text into transaction records. It holds no mutable
// state; concurrent Process calls are safe and produce identical results for
// identical inputs.
type Engine struct {
	registry   *bank.Registry
	classifier Classifier
	clock      func() time.Time
	logger     *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithClassifier attaches the external semantic categorizer. Without one,
// every transaction keeps its default category.
func WithClassifier(c Classifier) Option {
	return func(e *Engine) { e.classifier = c }
}

// WithClock injects the time source used when no capture timestamp is
// supplied. Tests use this to pin the non-determinism boundary.
func WithClock(clock func() time.Time) Option {
	return func(e *Engine) { e.clock = clock }
}

// WithLogger sets the engine's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// New creates an engine over the given bank registry.
func New(registry *bank.Registry, opts ...Option) *Engine {
	e := &Engine{
		registry: registry,
		clock:    time.Now,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Process parses a raw SMS body into a transaction record. A zero receivedAt
// means "now" per the engine's clock. Unparseable input returns
// common.ErrUnparseable; this is the expected result for non-transaction
// messages, not a fault. Classifier failures never fail the parse: the
// default category stands and the AI flag stays false.
func (e *Engine) Process(ctx context.Context, text string, receivedAt time.Time) (*model.Transaction, error) {
	if receivedAt.IsZero() {
		receivedAt = e.clock()
	}

	outcome := sms.Parse(text, receivedAt, e.registry)
	if outcome == nil {
		return nil, common.ErrUnparseable
	}

	txn := e.assemble(text, outcome)

	e.logger.Debug("parsed transaction",
		"bank", txn.BankName,
		"amount", txn.Amount,
		"direction", txn.Direction)

	e.classify(ctx, txn)

	return txn, nil
}

// assemble maps a refined parse outcome into the final record. This is the
// only point where the original text is bound to a transaction.
func (e *Engine) assemble(text string, outcome *sms.Outcome) *model.Transaction {
	profile, ok := e.registry.Lookup(outcome.BankID)
	if !ok {
		profile = e.registry.Other()
	}

	currency := profile.Currency
	if currency == "" {
		currency = bank.DefaultCurrency
	}

	return &model.Transaction{
		ID:           uuid.NewString(),
		RawMessage:   text,
		BankName:     profile.Name,
		Amount:       outcome.Amount,
		Currency:     currency,
		Direction:    outcome.Direction,
		Date:         outcome.Date,
		Description:  outcome.Description,
		Category:     model.DefaultCategory(outcome.Direction),
		AIClassified: false,
	}
}

// classify asks the external categorizer to refine the default category.
// Credits are never sent out: their default (Income) is already the right
// answer, matching the upstream classifier's own short-circuit.
func (e *Engine) classify(ctx context.Context, txn *model.Transaction) {
	if e.classifier == nil || txn.Direction == model.DirectionCredit {
		return
	}

	category, err := e.classifier.Categorize(ctx, *txn)
	if err != nil {
		e.logger.Warn("classification failed, keeping default category",
			"transaction_id", txn.ID,
			"category", txn.Category,
			"error", err)
		return
	}

	txn.Category = category
	txn.AIClassified = true
}
