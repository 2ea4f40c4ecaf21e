package engine

import (
	"context"

	"github.com/silentmoney/silent-money/internal/model"
)

// Classifier defines the contract for the external semantic categorizer.
// Implementations may be slow or unavailable; the engine treats any error
// as "keep the default category".
type Classifier interface {
	Categorize(ctx context.Context, txn model.Transaction) (model.Category, error)
}
