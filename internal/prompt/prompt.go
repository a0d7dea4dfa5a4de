// Package prompt assembles the final positive/negative prompt strings for
// the image backend from a character's base description, a parsed reply,
// and the selected catalog modifiers.
package prompt

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/fungone76-ux/luna-chat-v1/internal/lora"
	"github.com/fungone76-ux/luna-chat-v1/internal/reply"
)

// QualityTags is the fixed header prepended to every positive prompt.
// Any of these tokens already present in a character's base description
// are stripped first so they never appear twice.
var QualityTags = []string{
	"score_9",
	"score_8_up",
	"score_7_up",
	"score_6_up",
	"score_5_up",
	"score_4_up",
	"masterpiece",
	"photorealistic",
	"award-winning photo",
}

// QualityChain is the rendered header.
var QualityChain = strings.Join(QualityTags, ", ")

// Prompts is the pair of strings handed to the image backend.
type Prompts struct {
	Positive string
	Negative string
}

// Build assembles the positive prompt in fixed order — quality header,
// cleaned base description, tags, visual description, modifier tokens with
// their trigger phrases — and trims the negative prompt. Empty segments
// are omitted.
func Build(baseDescription, negative string, r *reply.Reply, picks []lora.Pick) Prompts {
	parts := make([]string, 0, 4+2*len(picks))

	parts = append(parts, QualityChain)
	if base := StripQuality(baseDescription); base != "" {
		parts = append(parts, base)
	}
	parts = append(parts, r.Tags...)
	if visual := strings.TrimSpace(r.VisualDescription); visual != "" {
		parts = append(parts, visual)
	}
	for _, p := range picks {
		parts = append(parts, fmt.Sprintf("<lora:%s:%.2f>", p.Entry.Name, p.Weight))
		if t := DisplayTrigger(p.Entry); t != "" {
			parts = append(parts, t)
		}
	}

	clean := parts[:0]
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			clean = append(clean, s)
		}
	}

	return Prompts{
		Positive: strings.Join(clean, ", "),
		Negative: strings.TrimSpace(negative),
	}
}

// StripQuality removes every occurrence of the quality vocabulary from a
// base description, then tidies the leftover commas and spacing.
func StripQuality(base string) string {
	if base == "" {
		return ""
	}
	text := base
	for _, qt := range QualityTags {
		text = strings.ReplaceAll(text, qt+",", "")
		text = strings.ReplaceAll(text, ","+qt, "")
		text = strings.ReplaceAll(text, qt, "")
	}
	for strings.Contains(text, ", ,") {
		text = strings.ReplaceAll(text, ", ,", ",")
	}
	text = strings.ReplaceAll(text, " ,", ",")
	text = strings.Join(strings.Fields(text), " ")
	return strings.Trim(text, ", ")
}

var (
	versionSuffix = regexp.MustCompile(`(?i)[\s_\-]v\d[\w.\-]*$`)
	epochSuffix   = regexp.MustCompile(`(?i)[\s_\-]\d+e$`)
)

// DisplayTrigger returns the human-readable phrase to place after an
// entry's token: the explicit trigger when there is one, otherwise a
// readable form of the name with separators flattened and trailing
// version suffixes removed.
func DisplayTrigger(e *lora.Entry) string {
	if e.Trigger != "" {
		return e.Trigger
	}
	base := strings.NewReplacer("_", " ", "-", " ").Replace(e.Name)
	base = versionSuffix.ReplaceAllString(base, "")
	base = epochSuffix.ReplaceAllString(base, "")
	return strings.TrimSpace(base)
}
