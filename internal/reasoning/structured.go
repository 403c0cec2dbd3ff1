package reasoning

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/jengzang/route-terrain-go/internal/models"
)

// ParseStructured decodes a completion into StructuredAnalysis. Markdown code
// fences and prose around the outermost JSON object are tolerated.
func ParseStructured(text string) (*models.StructuredAnalysis, error) {
	body := strings.TrimSpace(text)
	body = strings.TrimPrefix(body, "```json")
	body = strings.TrimPrefix(body, "```")
	body = strings.TrimSuffix(body, "```")

	start := strings.Index(body, "{")
	end := strings.LastIndex(body, "}")
	if start < 0 || end <= start {
		return nil, errors.New("no JSON object found")
	}

	var out models.StructuredAnalysis
	if err := json.Unmarshal([]byte(body[start:end+1]), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
