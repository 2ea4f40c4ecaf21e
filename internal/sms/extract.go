package sms

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/silentmoney/silent-money/internal/model"
)

// placeholderDescription is used when no description label is found.
const placeholderDescription = "Transaction"

var (
	// A numeric token adjacent to a currency marker, in either order:
	// "ETB 500", "500 ETB", "Br. 1,200.50".
	currencyAmountRe = regexp.MustCompile(`(?i)(?:etb|br\.?|birr)\s*([\d,]+(?:\.\d{1,2})?)|([\d,]+(?:\.\d{1,2})?)\s*(?:etb|br\.?|birr)`)

	creditVocabRe = regexp.MustCompile(`(?i)credit|deposit|received|income`)
	debitVocabRe  = regexp.MustCompile(`(?i)debit|paid|sent|purchase|withdrawal|transfer`)

	// A label keyword followed by a delimiter, capturing up to the next
	// sentence break. A period at the very end of the message is part of
	// the description; a period followed by more text is a terminator.
	// The leading boundary keeps short labels like "at" from firing
	// inside words ("Enat").
	descriptionRe = regexp.MustCompile(`(?i)\b(?:at|for|reason|desc|ref|info)[:\s]+(.+?)(?:\.\s|$)`)
)

// parseAmount strips thousands separators and parses the remainder as a
// decimal number. It fails on anything non-numeric or negative.
func parseAmount(raw string) (float64, bool) {
	cleaned := strings.ReplaceAll(raw, ",", "")
	if cleaned == "" {
		return 0, false
	}
	amount, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || amount < 0 {
		return 0, false
	}
	return amount, true
}

// extractCurrencyAmount locates a currency-marked numeric token anywhere in
// the text. Amount presence without a currency marker is not enough.
func extractCurrencyAmount(text string) (float64, bool) {
	m := currencyAmountRe.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	raw := m[1]
	if raw == "" {
		raw = m[2]
	}
	return parseAmount(raw)
}

// extractDirection classifies the message against the generic credit and
// debit vocabularies. A message matching both is ambiguous and yields no
// direction; so does a message matching neither.
func extractDirection(text string) (model.Direction, bool) {
	isCredit := creditVocabRe.MatchString(text)
	isDebit := debitVocabRe.MatchString(text)
	switch {
	case isCredit && isDebit:
		return "", false
	case isCredit:
		return model.DirectionCredit, true
	case isDebit:
		return model.DirectionDebit, true
	default:
		return "", false
	}
}

// extractDescription captures the text following a known label keyword, or
// the placeholder when no label is present.
func extractDescription(text string) string {
	return descriptionAfter(descriptionRe, text)
}

// descriptionAfter applies a label pattern whose first capture group is the
// description, trimming whitespace and substituting the placeholder on a
// miss or an empty capture.
func descriptionAfter(re *regexp.Regexp, text string) string {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return placeholderDescription
	}
	desc := strings.TrimSpace(m[1])
	if desc == "" {
		return placeholderDescription
	}
	return desc
}
