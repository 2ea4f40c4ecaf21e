package engine

import (
	"context"
	"sync"

	"github.com/silentmoney/silent-money/internal/model"
)

// MockClassifier is a test double for the external categorizer.
type MockClassifier struct {
	mu       sync.Mutex
	Response model.Category
	Err      error
	Calls    []model.Transaction
}

// Categorize records the call and returns the configured response.
func (m *MockClassifier) Categorize(_ context.Context, txn model.Transaction) (model.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, txn)
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}

// CallCount returns how many times Categorize was invoked.
func (m *MockClassifier) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
