package sms

import "time"

// parseGeneric is the best-effort recognizer for banks without a modeled
// format. It is deliberately conservative: a currency-marked amount alone is
// not a transaction. A direction signal is mandatory, and a message carrying
// both credit and debit vocabulary is ambiguous and rejected. This keeps
// non-financial numeric SMS (OTP codes, balance reminders) from being
// misread as transactions.
func parseGeneric(text string, receivedAt time.Time) *Outcome {
	amount, ok := extractCurrencyAmount(text)
	if !ok {
		return nil
	}
	direction, ok := extractDirection(text)
	if !ok {
		return nil
	}
	return &Outcome{
		BankID:      "other",
		Amount:      amount,
		Direction:   direction,
		Date:        receivedAt,
		Description: extractDescription(text),
	}
}
