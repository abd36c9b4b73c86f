package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// DecodeJSON parses a model reply that is expected to be a single JSON object.
func DecodeJSON(text string, v any) error {
	content := cleanJSONResponse(text)
	if err := json.Unmarshal([]byte(content), v); err != nil {
		return fmt.Errorf("failed to parse response: %w, content: %s", err, content)
	}
	return nil
}

func cleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	// Some model responses include extra prose around JSON.
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		content = content[start : end+1]
	}
	return content
}
