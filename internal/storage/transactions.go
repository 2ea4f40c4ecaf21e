package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/silentmoney/silent-money/internal/common"
	"github.com/silentmoney/silent-money/internal/model"
)

// SaveTransaction appends a newly parsed transaction.
func (s *SQLiteStorage) SaveTransaction(ctx context.Context, txn *model.Transaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateTransaction(txn); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO transactions (
			id, raw_message, bank_name, amount, currency,
			direction, date, description, category, ai_classified
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		txn.ID,
		txn.RawMessage,
		txn.BankName,
		txn.Amount,
		txn.Currency,
		string(txn.Direction),
		txn.Date,
		txn.Description,
		string(txn.Category),
		txn.AIClassified,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction %s: %w", txn.ID, err)
	}

	return nil
}

// UpdateTransaction replaces a stored transaction by its identifier.
func (s *SQLiteStorage) UpdateTransaction(ctx context.Context, txn *model.Transaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateTransaction(txn); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE transactions SET
			raw_message = ?, bank_name = ?, amount = ?, currency = ?,
			direction = ?, date = ?, description = ?, category = ?, ai_classified = ?
		WHERE id = ?
	`,
		txn.RawMessage,
		txn.BankName,
		txn.Amount,
		txn.Currency,
		string(txn.Direction),
		txn.Date,
		txn.Description,
		string(txn.Category),
		txn.AIClassified,
		txn.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", txn.ID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("transaction %s: %w", txn.ID, common.ErrNotFound)
	}

	return nil
}

// GetTransactionByID fetches a single transaction.
func (s *SQLiteStorage) GetTransactionByID(ctx context.Context, id string) (*model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, raw_message, bank_name, amount, currency,
		       direction, date, description, category, ai_classified
		FROM transactions WHERE id = ?
	`, id)

	txn, err := scanTransaction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("transaction %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction %s: %w", id, err)
	}

	return txn, nil
}

// ListTransactions returns all transactions, newest first.
func (s *SQLiteStorage) ListTransactions(ctx context.Context) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, raw_message, bank_name, amount, currency,
		       direction, date, description, category, ai_classified
		FROM transactions
		ORDER BY date DESC, created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var transactions []model.Transaction
	for rows.Next() {
		txn, scanErr := scanTransaction(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", scanErr)
		}
		transactions = append(transactions, *txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}

	return transactions, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (*model.Transaction, error) {
	var txn model.Transaction
	var direction, category string
	var description sql.NullString

	err := row.Scan(
		&txn.ID,
		&txn.RawMessage,
		&txn.BankName,
		&txn.Amount,
		&txn.Currency,
		&direction,
		&txn.Date,
		&description,
		&category,
		&txn.AIClassified,
	)
	if err != nil {
		return nil, err
	}

	txn.Direction = model.Direction(direction)
	txn.Category = model.Category(category)
	txn.Description = description.String

	return &txn, nil
}
