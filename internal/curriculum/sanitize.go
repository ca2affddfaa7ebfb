package curriculum

import (
	"encoding/json"
	"strings"
)

// Sanitize strips markdown code-fence markers from raw model output. The
// model is told not to fence its JSON but does so anyway often enough
// that this runs on every response. A single wrapping fence is removed by
// unwrapping, so fence characters inside string values survive; only when
// that still leaves invalid JSON does it fall back to removing every
// marker occurrence.
func Sanitize(raw string) string {
	cleaned := strings.TrimSpace(raw)

	if strings.HasPrefix(cleaned, "```") && strings.HasSuffix(cleaned, "```") {
		body := strings.TrimPrefix(cleaned, "```json")
		if body == cleaned {
			body = strings.TrimPrefix(cleaned, "```")
		}
		body = strings.TrimSuffix(body, "```")
		body = strings.TrimSpace(body)
		if json.Valid([]byte(body)) {
			return body
		}
	}
	if json.Valid([]byte(cleaned)) {
		return cleaned
	}

	cleaned = strings.ReplaceAll(cleaned, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	return strings.TrimSpace(cleaned)
}
