package recommend

import (
	"errors"
	"strings"
)

// extractJSON pulls the first {...} block out of a model reply that
// may be wrapped in prose or markdown fences.
func extractJSON(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")

	if start == -1 || end == -1 || end <= start {
		return ""
	}

	return text[start : end+1]
}

var errInvalidOutput = errors.New("invalid recommendation output")
