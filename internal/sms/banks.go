package sms

import (
	"regexp"
	"time"

	"github.com/silentmoney/silent-money/internal/model"
)

// Each specialized parser is anchored on the trigger phrases its bank is
// known to use, one pattern per direction. The credit anchor wins when a
// message somehow carries both. A parser reports its own bank identifier
// only as a provisional candidate; dispatch refines it afterwards.

var (
	// Commercial Bank of Ethiopia: "Credited with ETB 2,500.00",
	// "Debited with ETB 350.00. Reason: ...".
	cbeCreditRe = regexp.MustCompile(`(?i)credited with (?:[a-z]{3} ?)?([\d,]+(?:\.\d{2})?)`)
	cbeDebitRe  = regexp.MustCompile(`(?i)debited with (?:[a-z]{3} ?)?([\d,]+(?:\.\d{2})?)`)
	cbeReasonRe = regexp.MustCompile(`(?i)reason:? (.+)$`)
	cbeRefRe    = regexp.MustCompile(`(?i)ref:? (.+)$`)

	// Dashen Bank: "Credited ETB 15,000.00. Desc: ...".
	dashenCreditRe = regexp.MustCompile(`(?i)credited (?:[a-z]{3} ?)?([\d,]+(?:\.\d{2})?)`)
	dashenDebitRe  = regexp.MustCompile(`(?i)debited (?:[a-z]{3} ?)?([\d,]+(?:\.\d{2})?)`)
	dashenDescRe   = regexp.MustCompile(`(?i)desc:? (.+?)(?:\.\s|$)`)

	// Awash Bank: "debited ETB 450.00 for ...".
	awashCreditRe = regexp.MustCompile(`(?i)credited (?:[a-z]{3} ?)?([\d,]+(?:\.\d{2})?)`)
	awashDebitRe  = regexp.MustCompile(`(?i)debited (?:[a-z]{3} ?)?([\d,]+(?:\.\d{2})?)`)
	awashForRe    = regexp.MustCompile(`(?i)for (.+?)(?:\.\s|$)`)
)

// anchoredOutcome matches the credit anchor, then the debit anchor, and
// parses the adjoining amount. A nil return means neither anchor was found,
// or the anchored amount token failed to parse as a number.
func anchoredOutcome(text string, creditRe, debitRe *regexp.Regexp) (float64, model.Direction, bool) {
	direction := model.DirectionCredit
	m := creditRe.FindStringSubmatch(text)
	if m == nil {
		direction = model.DirectionDebit
		m = debitRe.FindStringSubmatch(text)
	}
	if m == nil {
		return 0, "", false
	}
	amount, ok := parseAmount(m[1])
	if !ok {
		return 0, "", false
	}
	return amount, direction, true
}

func parseCBE(text string, receivedAt time.Time) *Outcome {
	amount, direction, ok := anchoredOutcome(text, cbeCreditRe, cbeDebitRe)
	if !ok {
		return nil
	}
	description := descriptionAfter(cbeReasonRe, text)
	if description == placeholderDescription {
		description = descriptionAfter(cbeRefRe, text)
	}
	return &Outcome{
		BankID:      "cbe",
		Amount:      amount,
		Direction:   direction,
		Date:        receivedAt,
		Description: description,
	}
}

func parseDashen(text string, receivedAt time.Time) *Outcome {
	amount, direction, ok := anchoredOutcome(text, dashenCreditRe, dashenDebitRe)
	if !ok {
		return nil
	}
	return &Outcome{
		BankID:      "dashen",
		Amount:      amount,
		Direction:   direction,
		Date:        receivedAt,
		Description: descriptionAfter(dashenDescRe, text),
	}
}

func parseAwash(text string, receivedAt time.Time) *Outcome {
	amount, direction, ok := anchoredOutcome(text, awashCreditRe, awashDebitRe)
	if !ok {
		return nil
	}
	return &Outcome{
		BankID:      "awash",
		Amount:      amount,
		Direction:   direction,
		Date:        receivedAt,
		Description: descriptionAfter(awashForRe, text),
	}
}
