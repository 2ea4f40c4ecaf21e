package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTransaction() Transaction {
	return Transaction{
		ID:         "txn-1",
		RawMessage: "Debited ETB 350.00. Reason: Burger King.",
		BankName:   "Commercial Bank of Ethiopia",
		Amount:     350.00,
		Currency:   "ETB",
		Direction:  DirectionDebit,
		Category:   CategoryOther,
		Date:       time.Date(2024, 10, 12, 9, 30, 0, 0, time.UTC),
	}
}

func TestTransaction_Validate(t *testing.T) {
	txn := validTransaction()
	require.NoError(t, txn.Validate())

	tests := []struct {
		name   string
		mutate func(*Transaction)
	}{
		{name: "empty id", mutate: func(txn *Transaction) { txn.ID = "" }},
		{name: "empty raw message", mutate: func(txn *Transaction) { txn.RawMessage = "" }},
		{name: "empty bank name", mutate: func(txn *Transaction) { txn.BankName = "" }},
		{name: "negative amount", mutate: func(txn *Transaction) { txn.Amount = -0.01 }},
		{name: "unknown direction", mutate: func(txn *Transaction) { txn.Direction = "BOTH" }},
		{name: "unknown category", mutate: func(txn *Transaction) { txn.Category = "Misc" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := validTransaction()
			tt.mutate(&txn)
			assert.Error(t, txn.Validate())
		})
	}
}

func TestDirection_Valid(t *testing.T) {
	assert.True(t, DirectionCredit.Valid())
	assert.True(t, DirectionDebit.Valid())
	assert.False(t, Direction("credit").Valid())
	assert.False(t, Direction("").Valid())
}

func TestParseCategory(t *testing.T) {
	category, ok := ParseCategory("Food")
	require.True(t, ok)
	assert.Equal(t, CategoryFood, category)

	_, ok = ParseCategory("food")
	assert.False(t, ok)

	_, ok = ParseCategory("")
	assert.False(t, ok)
}

func TestDefaultCategory(t *testing.T) {
	assert.Equal(t, CategoryIncome, DefaultCategory(DirectionCredit))
	assert.Equal(t, CategoryOther, DefaultCategory(DirectionDebit))
}
