package reply

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Labels recognized by the labeled-block recovery stage, in scan order.
var labels = []string{"dialogue_text", "tags", "visual_description"}

// residualLabels also covers follow_up_action when scrubbing leftovers
// in the unstructured fallback.
var residualLabels = []string{"dialogue_text", "tags", "visual_description", "follow_up_action"}

// Parse converts raw model output into a Reply. It never fails: each
// recovery stage is tried in order and the last stage always succeeds,
// so the worst outcome is an unstructured reply. Tags are normalized
// regardless of which stage produced them.
func Parse(raw string) *Reply {
	if r, ok := parseStrict(raw); ok {
		r.Confidence = ConfidenceStrict
		return finish(r)
	}
	if r, ok := parseSubstring(raw); ok {
		r.Confidence = ConfidenceRecoveredJSON
		return finish(r)
	}
	if r, ok := parseLabeled(raw); ok {
		r.Confidence = ConfidenceRecoveredLabeled
		return finish(r)
	}

	r := &Reply{
		DialogueText: stripResidualLabels(raw),
		Confidence:   ConfidenceUnstructured,
	}
	return finish(r)
}

func finish(r *Reply) *Reply {
	r.Tags = NormalizeTags(r.Tags)
	return r
}

// wirePayload is the JSON shape the model is instructed to emit.
// Raw messages let us coerce loosely typed fields instead of rejecting them.
type wirePayload struct {
	DialogueText      json.RawMessage `json:"dialogue_text"`
	Tags              json.RawMessage `json:"tags"`
	VisualDescription json.RawMessage `json:"visual_description"`
	FollowUpAction    json.RawMessage `json:"follow_up_action"`
}

func parseStrict(input string) (*Reply, bool) {
	var wire wirePayload
	if err := json.Unmarshal([]byte(strings.TrimSpace(input)), &wire); err != nil {
		return nil, false
	}

	dialogue, ok := coerceString(wire.DialogueText)
	if !ok || strings.TrimSpace(dialogue) == "" {
		return nil, false
	}

	visual, _ := coerceString(wire.VisualDescription)
	followUp, _ := coerceString(wire.FollowUpAction)

	return &Reply{
		DialogueText:      strings.TrimSpace(dialogue),
		Tags:              coerceTags(wire.Tags),
		VisualDescription: strings.TrimSpace(visual),
		FollowUpAction:    strings.TrimSpace(followUp),
	}, true
}

// parseSubstring retries the strict decode on the slice between the first
// opening and last closing brace, recovering JSON wrapped in prose or fences.
func parseSubstring(input string) (*Reply, bool) {
	start := strings.Index(input, "{")
	end := strings.LastIndex(input, "}")
	if start == -1 || end == -1 || end <= start {
		return nil, false
	}
	return parseStrict(input[start : end+1])
}

// parseLabeled scans for line-anchored "label:" markers and takes each
// field's value as the text up to the next recognized label. It fails only
// when none of the three labels is present.
func parseLabeled(input string) (*Reply, bool) {
	fields := make(map[string][]string)
	current := ""
	found := false

	for _, line := range strings.Split(input, "\n") {
		if name, rest, ok := matchLabel(line); ok {
			found = true
			current = name
			if rest != "" {
				fields[name] = append(fields[name], rest)
			}
			continue
		}
		if current != "" {
			fields[current] = append(fields[current], line)
		}
	}

	if !found {
		return nil, false
	}

	r := &Reply{
		DialogueText:      strings.TrimSpace(strings.Join(fields["dialogue_text"], "\n")),
		Tags:              splitTagsValue(strings.TrimSpace(strings.Join(fields["tags"], "\n"))),
		VisualDescription: strings.TrimSpace(strings.Join(fields["visual_description"], "\n")),
	}
	return r, true
}

// matchLabel reports whether the line starts with a recognized label,
// returning the label name and the remainder of the line.
func matchLabel(line string) (string, string, bool) {
	trimmed := strings.TrimSpace(line)
	lower := strings.ToLower(trimmed)
	for _, name := range labels {
		if strings.HasPrefix(lower, name+":") {
			return name, strings.TrimSpace(trimmed[len(name)+1:]), true
		}
	}
	return "", "", false
}

// splitTagsValue interprets a labeled tags value: first as a JSON list
// literal, otherwise split on commas and newlines.
func splitTagsValue(value string) []string {
	if value == "" {
		return nil
	}

	var list []string
	if err := json.Unmarshal([]byte(value), &list); err == nil {
		return list
	}

	parts := strings.FieldsFunc(value, func(r rune) bool {
		return r == ',' || r == '\n'
	})
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// stripResidualLabels removes leftover label tokens so the unstructured
// fallback does not echo scaffolding back as dialogue.
func stripResidualLabels(raw string) string {
	var kept []string
	for _, line := range strings.Split(raw, "\n") {
		clean := line
		lower := strings.ToLower(strings.TrimSpace(line))
		for _, name := range residualLabels {
			if strings.HasPrefix(lower, name+":") {
				idx := strings.Index(strings.ToLower(line), name+":")
				clean = line[:idx] + line[idx+len(name)+1:]
				break
			}
		}
		if strings.TrimSpace(clean) != "" {
			kept = append(kept, strings.TrimSpace(clean))
		}
	}
	return strings.Join(kept, "\n")
}

// coerceString renders a raw JSON value as text: strings decode directly,
// null becomes empty, and anything else keeps its compact JSON form.
func coerceString(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, true
	}
	if string(raw) == "null" {
		return "", true
	}
	return string(raw), true
}

// coerceTags renders a raw JSON value as a tag list: a string array decodes
// directly, other arrays have their elements stringified, and a lone scalar
// becomes a single tag.
func coerceTags(raw json.RawMessage) []string {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}

	var anyList []interface{}
	if err := json.Unmarshal(raw, &anyList); err == nil {
		out := make([]string, 0, len(anyList))
		for _, v := range anyList {
			out = append(out, fmt.Sprintf("%v", v))
		}
		return out
	}

	if s, ok := coerceString(raw); ok && strings.TrimSpace(s) != "" {
		return []string{s}
	}
	return nil
}
