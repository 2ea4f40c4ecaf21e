package model

// Category is a spending category assigned to a transaction.
type Category string

// The fixed category set. Credits default to Income; debits default to Other
// until the semantic classifier (or the user) refines them.
const (
	CategoryFood      Category = "Food"
	CategoryTransport Category = "Transport"
	CategoryRent      Category = "Rent"
	CategoryUtilities Category = "Utilities"
	CategoryInternet  Category = "Internet"
	CategoryTransfer  Category = "Transfer"
	CategoryFees      Category = "Fees"
	CategoryIncome    Category = "Income"
	CategoryOther     Category = "Other"
)

// Categories returns the full category set in display order.
func Categories() []Category {
	return []Category{
		CategoryFood,
		CategoryTransport,
		CategoryRent,
		CategoryUtilities,
		CategoryInternet,
		CategoryTransfer,
		CategoryFees,
		CategoryIncome,
		CategoryOther,
	}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory resolves a category by its display name.
func ParseCategory(name string) (Category, bool) {
	c := Category(name)
	if c.Valid() {
		return c, true
	}
	return "", false
}

// DefaultCategory returns the category assigned before any classification:
// Income for credits, Other for debits.
func DefaultCategory(d Direction) Category {
	if d == DirectionCredit {
		return CategoryIncome
	}
	return CategoryOther
}
