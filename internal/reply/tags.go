package reply

import "strings"

// NormalizeTags trims whitespace, drops empty strings, and removes
// case-insensitive duplicates while preserving first-occurrence order.
// Applying it twice yields the same result.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))

	for _, t := range tags {
		clean := strings.TrimSpace(t)
		if clean == "" {
			continue
		}
		key := strings.ToLower(clean)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, clean)
	}

	return out
}
