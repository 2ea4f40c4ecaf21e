// Package model defines the core domain types shared across the application.
package model

import (
	"fmt"
	"time"
)

// Direction indicates whether money moved into or out of the account.
type Direction string

const (
	// DirectionCredit represents money received.
	DirectionCredit Direction = "CREDIT"
	// DirectionDebit represents money spent or withdrawn.
	DirectionDebit Direction = "DEBIT"
)

// Valid reports whether the direction is one of the two known values.
func (d Direction) Valid() bool {
	return d == DirectionCredit || d == DirectionDebit
}

// Transaction is a single financial transaction extracted from a bank SMS.
// RawMessage holds the original SMS body verbatim; every other field is
// derived from it at parse time and never reverse-engineered from the record.
type Transaction struct {
	Date         time.Time
	ID           string
	RawMessage   string
	BankName     string
	Currency     string
	Description  string
	Category     Category
	Direction    Direction
	Amount       float64
	AIClassified bool
}

// Validate checks the transaction invariants before persistence.
func (t *Transaction) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("transaction ID is required")
	}
	if t.RawMessage == "" {
		return fmt.Errorf("raw message is required")
	}
	if t.BankName == "" {
		return fmt.Errorf("bank name is required")
	}
	if t.Amount < 0 {
		return fmt.Errorf("amount must be non-negative, got %f", t.Amount)
	}
	if !t.Direction.Valid() {
		return fmt.Errorf("invalid direction: %q", t.Direction)
	}
	if !t.Category.Valid() {
		return fmt.Errorf("invalid category: %q", t.Category)
	}
	return nil
}
