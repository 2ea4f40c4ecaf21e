package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/silentmoney/silent-money/internal/bank"
	"github.com/silentmoney/silent-money/internal/common"
	"github.com/silentmoney/silent-money/internal/model"
)

var fixedTime = time.Date(2024, 10, 12, 9, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedTime }

func newTestEngine(opts ...Option) *Engine {
	opts = append([]Option{WithClock(fixedClock)}, opts...)
	return New(bank.NewRegistry(), opts...)
}

func TestProcess_EndToEnd(t *testing.T) {
	tests := []struct {
		name            string
		text            string
		wantBank        string
		wantDescription string
		wantCategory    model.Category
		wantDirection   model.Direction
		wantAmount      float64
	}{
		{
			name:            "CBE debit with reason",
			text:            "Dear Customer, Acct 1000****123 Debited with ETB 350.00. Reason: Burger King.",
			wantBank:        "Commercial Bank of Ethiopia",
			wantAmount:      350.00,
			wantDirection:   model.DirectionDebit,
			wantDescription: "Burger King.",
			wantCategory:    model.CategoryOther,
		},
		{
			name:            "Dashen format credit without bank hint",
			text:            "Acct 1234 Credited ETB 15,000.00. Desc: Salary October. Bal: 20000",
			wantBank:        "Dashen Bank",
			wantAmount:      15000.00,
			wantDirection:   model.DirectionCredit,
			wantDescription: "Salary October",
			wantCategory:    model.CategoryIncome,
		},
		{
			name:            "generic debit refined to Zemen",
			text:            "Zemen Bank: You have paid ETB 450.00 at Kaldi's Coffee.",
			wantBank:        "Zemen Bank",
			wantAmount:      450.00,
			wantDirection:   model.DirectionDebit,
			wantDescription: "Kaldi's Coffee.",
			wantCategory:    model.CategoryOther,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng := newTestEngine()

			txn, err := eng.Process(context.Background(), tt.text, time.Time{})
			require.NoError(t, err)

			assert.NotEmpty(t, txn.ID)
			assert.Equal(t, tt.text, txn.RawMessage)
			assert.Equal(t, tt.wantBank, txn.BankName)
			assert.InDelta(t, tt.wantAmount, txn.Amount, 0.001)
			assert.Equal(t, "ETB", txn.Currency)
			assert.Equal(t, tt.wantDirection, txn.Direction)
			assert.Equal(t, fixedTime, txn.Date)
			assert.Equal(t, tt.wantDescription, txn.Description)
			assert.Equal(t, tt.wantCategory, txn.Category)
			assert.False(t, txn.AIClassified)
			assert.NoError(t, txn.Validate())
		})
	}
}

func TestProcess_Unparseable(t *testing.T) {
	eng := newTestEngine()

	txn, err := eng.Process(context.Background(), "Your OTP is 884213, do not share.", time.Time{})
	assert.Nil(t, txn)
	assert.ErrorIs(t, err, common.ErrUnparseable)
}

func TestProcess_ExplicitTimestamp(t *testing.T) {
	eng := newTestEngine()
	receivedAt := time.Date(2023, 1, 2, 15, 4, 5, 0, time.UTC)

	txn, err := eng.Process(context.Background(), "You have paid 700 ETB at Merkato Market", receivedAt)
	require.NoError(t, err)
	assert.Equal(t, receivedAt, txn.Date)
	assert.Equal(t, "Other Bank", txn.BankName)
	assert.Equal(t, "ETB", txn.Currency)
}

func TestProcess_ClassifierRefinesDebit(t *testing.T) {
	classifier := &MockClassifier{Response: model.CategoryFood}
	eng := newTestEngine(WithClassifier(classifier))

	txn, err := eng.Process(context.Background(),
		"Dear Customer, Acct 1000****123 Debited with ETB 350.00. Reason: Burger King.", time.Time{})
	require.NoError(t, err)

	assert.Equal(t, model.CategoryFood, txn.Category)
	assert.True(t, txn.AIClassified)
	assert.Equal(t, 1, classifier.CallCount())
}

func TestProcess_ClassifierSkippedForCredits(t *testing.T) {
	classifier := &MockClassifier{Response: model.CategoryFood}
	eng := newTestEngine(WithClassifier(classifier))

	txn, err := eng.Process(context.Background(),
		"Acct 1234 Credited ETB 15,000.00. Desc: Salary October. Bal: 20000", time.Time{})
	require.NoError(t, err)

	assert.Equal(t, model.CategoryIncome, txn.Category)
	assert.False(t, txn.AIClassified)
	assert.Equal(t, 0, classifier.CallCount())
}

func TestProcess_ClassifierFailureKeepsDefault(t *testing.T) {
	classifier := &MockClassifier{Err: errors.New("quota exceeded")}
	eng := newTestEngine(WithClassifier(classifier))

	txn, err := eng.Process(context.Background(),
		"Zemen Bank: You have paid ETB 450.00 at Kaldi's Coffee.", time.Time{})
	require.NoError(t, err)

	assert.Equal(t, model.CategoryOther, txn.Category)
	assert.False(t, txn.AIClassified)
	assert.Equal(t, 1, classifier.CallCount())
}

func TestProcess_Deterministic(t *testing.T) {
	eng := newTestEngine()
	text := "Dear Customer, Acct 1000****123 Debited with ETB 350.00. Reason: Burger King."

	first, err := eng.Process(context.Background(), text, fixedTime)
	require.NoError(t, err)
	second, err := eng.Process(context.Background(), text, fixedTime)
	require.NoError(t, err)

	// Identical inputs produce identical records modulo the fresh identifier.
	assert.NotEqual(t, first.ID, second.ID)
	first.ID, second.ID = "", ""
	assert.Equal(t, first, second)
}
