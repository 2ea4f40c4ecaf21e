package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/silentmoney/silent-money/internal/common"
	"github.com/silentmoney/silent-money/internal/model"
	"github.com/silentmoney/silent-money/internal/service"
)

// Categorizer implements the engine.Classifier interface using LLM APIs.
type Categorizer struct {
	client    Client
	cache     *categoryCache
	logger    *slog.Logger
	retryOpts service.RetryOptions
}

// NewCategorizer creates a new LLM-backed categorizer.
func NewCategorizer(cfg Config, logger *slog.Logger) (*Categorizer, error) {
	client, err := NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	return NewCategorizerWithClient(client, cfg, logger), nil
}

// NewCategorizerWithClient wires a categorizer over an existing client.
// Tests use this to inject a fake.
func NewCategorizerWithClient(client Client, cfg Config, logger *slog.Logger) *Categorizer {
	if logger == nil {
		logger = slog.Default()
	}

	retryOpts := service.RetryOptions{
		MaxAttempts:  cfg.MaxRetries,
		InitialDelay: cfg.RetryDelay,
		MaxDelay:     30 * time.Second,
		Multiplier:   2.0,
	}
	if retryOpts.MaxAttempts == 0 {
		retryOpts.MaxAttempts = 3
	}
	if retryOpts.InitialDelay == 0 {
		retryOpts.InitialDelay = time.Second
	}

	return &Categorizer{
		client:    client,
		cache:     newCategoryCache(cfg.CacheTTL),
		logger:    logger,
		retryOpts: retryOpts,
	}
}

// Categorize assigns a spending category to a parsed transaction. Credits
// are answered locally: they are Income, no model call needed. Anything the
// model returns outside the known category set is an error; the caller keeps
// the default category in that case.
func (c *Categorizer) Categorize(ctx context.Context, txn model.Transaction) (model.Category, error) {
	if txn.Direction == model.DirectionCredit {
		return model.CategoryIncome, nil
	}

	cacheKey := strings.ToLower(strings.TrimSpace(txn.Description))
	if category, found := c.cache.get(cacheKey); found {
		c.logger.Debug("classification cache hit",
			"transaction_id", txn.ID,
			"description", txn.Description)
		return category, nil
	}

	prompt := buildPrompt(txn)

	var response ClassificationResponse
	err := common.WithRetry(ctx, func() error {
		var classifyErr error
		response, classifyErr = c.client.Classify(ctx, prompt)
		return classifyErr
	}, c.retryOpts)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrClassificationFailed, err)
	}

	category, ok := model.ParseCategory(response.Category)
	if !ok {
		return "", fmt.Errorf("%w: unknown category %q", common.ErrClassificationFailed, response.Category)
	}

	c.cache.set(cacheKey, category)
	return category, nil
}

// buildPrompt renders the classification prompt for a transaction.
func buildPrompt(txn model.Transaction) string {
	var sb strings.Builder
	sb.WriteString("You are a financial transaction classifier for the African market.\n")
	sb.WriteString("Classify the following transaction description into exactly one of these categories:\n")
	for _, category := range model.Categories() {
		sb.WriteString("- ")
		sb.WriteString(string(category))
		sb.WriteString("\n")
	}
	sb.WriteString("\nRespond with a JSON object of the form {\"category\": \"<name>\"}.\n\n")
	fmt.Fprintf(&sb, "Transaction Description: %q\n", txn.Description)
	fmt.Fprintf(&sb, "Original SMS: %q\n", txn.RawMessage)
	return sb.String()
}
