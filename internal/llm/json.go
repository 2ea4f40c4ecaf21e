package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// parseClassification extracts the category from an LLM response body.
func parseClassification(content string) (ClassificationResponse, error) {
	var jsonResp struct {
		Category string `json:"category"`
	}

	content = cleanMarkdownWrapper(content)

	if err := json.Unmarshal([]byte(content), &jsonResp); err != nil {
		return ClassificationResponse{}, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	if jsonResp.Category == "" {
		return ClassificationResponse{}, fmt.Errorf("no category found in response")
	}

	return ClassificationResponse{Category: jsonResp.Category}, nil
}

// cleanMarkdownWrapper strips a ```json fence some models insist on adding.
func cleanMarkdownWrapper(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}
