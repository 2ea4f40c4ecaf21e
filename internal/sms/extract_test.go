package sms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/silentmoney/silent-money/internal/model"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
		ok   bool
	}{
		{name: "thousands separator with decimals", raw: "2,500.00", want: 2500.00, ok: true},
		{name: "plain decimals", raw: "350.00", want: 350.00, ok: true},
		{name: "whole number", raw: "500", want: 500, ok: true},
		{name: "large amount", raw: "1,234,567.89", want: 1234567.89, ok: true},
		{name: "separators only", raw: ",,,", ok: false},
		{name: "empty", raw: "", ok: false},
		{name: "not a number", raw: "abc", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseAmount(tt.raw)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.want, got, 0.001)
			}
		})
	}
}

func TestExtractCurrencyAmount(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
		ok   bool
	}{
		{name: "currency before amount", text: "You paid ETB 500", want: 500, ok: true},
		{name: "currency after amount", text: "You paid 500 ETB", want: 500, ok: true},
		{name: "birr word", text: "Sent 1,200.50 BIRR today", want: 1200.50, ok: true},
		{name: "br abbreviation", text: "Br. 75 deducted", want: 75, ok: true},
		{name: "bare number is not enough", text: "Your code is 4421", ok: false},
		{name: "no number", text: "ETB balance unavailable", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := extractCurrencyAmount(tt.text)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.want, got, 0.001)
			}
		})
	}
}

func TestExtractDirection(t *testing.T) {
	tests := []struct {
		name string
		text string
		want model.Direction
		ok   bool
	}{
		{name: "credit keyword", text: "Amount received from Abebe", want: model.DirectionCredit, ok: true},
		{name: "debit keyword", text: "You have paid the vendor", want: model.DirectionDebit, ok: true},
		{name: "withdrawal is debit", text: "ATM withdrawal completed", want: model.DirectionDebit, ok: true},
		{name: "both vocabularies is ambiguous", text: "deposit received, transfer sent", ok: false},
		{name: "no signal", text: "Your balance is 100", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := extractDirection(tt.text)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestExtractDescription(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "label mid-sentence stops at sentence break",
			text: "Debited ETB 100. Reason: Groceries. Bal: 900",
			want: "Groceries",
		},
		{
			name: "trailing period at end of message is kept",
			text: "Paid ETB 450.00 at Kaldi's Coffee.",
			want: "Kaldi's Coffee.",
		},
		{
			name: "no label yields placeholder",
			text: "Debited ETB 100 from your account",
			want: "Transaction",
		},
		{
			name: "whitespace trimmed",
			text: "Desc:   Salary October  ",
			want: "Salary October",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractDescription(tt.text))
		})
	}
}
