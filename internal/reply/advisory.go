package reply

import (
	"fmt"
	"strings"
)

// Expected ranges for a well-formed reply. Violations are advisory only:
// they are worth logging but never block the turn.
const (
	minTagCount    = 8
	maxTagCount    = 12
	minVisualWords = 24
	maxVisualWords = 70
)

// Advisory is a non-fatal validation signal about a parsed reply.
type Advisory struct {
	Field   string
	Message string
}

// CheckRanges reports advisory signals for a parsed reply: a tag count
// outside the expected range or a visual description whose word count
// falls outside the expected range.
func CheckRanges(r *Reply) []Advisory {
	var out []Advisory

	if n := len(r.Tags); n < minTagCount || n > maxTagCount {
		out = append(out, Advisory{
			Field:   "tags",
			Message: fmt.Sprintf("tag count %d outside expected range %d-%d", n, minTagCount, maxTagCount),
		})
	}

	if r.VisualDescription != "" {
		if n := len(strings.Fields(r.VisualDescription)); n < minVisualWords || n > maxVisualWords {
			out = append(out, Advisory{
				Field:   "visual_description",
				Message: fmt.Sprintf("word count %d outside expected range %d-%d", n, minVisualWords, maxVisualWords),
			})
		}
	}

	return out
}
