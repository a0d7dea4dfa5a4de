package reply

import (
	"reflect"
	"strings"
	"testing"
)

const strictPayload = `{
  "dialogue_text": "Ciao! Eccomi.",
  "tags": ["close-up", "soft lighting", "bedroom", "silk robe", "intimate", "woman", "eye-level shot", "warm colors"],
  "visual_description": "A warm cinematic frame of a woman in a silk robe.",
  "follow_up_action": null
}`

func TestParseStrict(t *testing.T) {
	r := Parse(strictPayload)

	if r.Confidence != ConfidenceStrict {
		t.Fatalf("Confidence = %v, want strict", r.Confidence)
	}
	if r.DialogueText != "Ciao! Eccomi." {
		t.Errorf("DialogueText = %q", r.DialogueText)
	}
	if len(r.Tags) != 8 {
		t.Errorf("len(Tags) = %d, want 8", len(r.Tags))
	}
	if r.FollowUpAction != "" {
		t.Errorf("FollowUpAction = %q, want empty for null", r.FollowUpAction)
	}
}

func TestParseRecoversWrappedJSON(t *testing.T) {
	raw := "Sure, here is the scene:\n" + strictPayload + "\nHope you like it!"
	r := Parse(raw)

	if r.Confidence != ConfidenceRecoveredJSON {
		t.Fatalf("Confidence = %v, want recovered_json", r.Confidence)
	}
	if r.DialogueText != "Ciao! Eccomi." {
		t.Errorf("DialogueText = %q", r.DialogueText)
	}
}

func TestParseLabeledBlocks(t *testing.T) {
	raw := "dialogue_text: Ciao!\ntags: [\"smile\",\"sunset\"]\nvisual_description: A warm glow."
	r := Parse(raw)

	if r.Confidence != ConfidenceRecoveredLabeled {
		t.Fatalf("Confidence = %v, want recovered_labeled", r.Confidence)
	}
	if r.DialogueText != "Ciao!" {
		t.Errorf("DialogueText = %q, want %q", r.DialogueText, "Ciao!")
	}
	if want := []string{"smile", "sunset"}; !reflect.DeepEqual(r.Tags, want) {
		t.Errorf("Tags = %v, want %v", r.Tags, want)
	}
	if r.VisualDescription != "A warm glow." {
		t.Errorf("VisualDescription = %q", r.VisualDescription)
	}
}

func TestParseLabeledCommaTags(t *testing.T) {
	raw := "Dialogue_Text: Guarda qui.\nTAGS: smile, sunset\nbeach\nvisual_description: Golden hour on the shore."
	r := Parse(raw)

	if r.Confidence != ConfidenceRecoveredLabeled {
		t.Fatalf("Confidence = %v, want recovered_labeled", r.Confidence)
	}
	if want := []string{"smile", "sunset", "beach"}; !reflect.DeepEqual(r.Tags, want) {
		t.Errorf("Tags = %v, want %v", r.Tags, want)
	}
}

func TestParseUnstructuredFallback(t *testing.T) {
	raw := "Just plain prose, nothing structured at all."
	r := Parse(raw)

	if r.Confidence != ConfidenceUnstructured {
		t.Fatalf("Confidence = %v, want unstructured", r.Confidence)
	}
	if r.DialogueText != raw {
		t.Errorf("DialogueText = %q, want the raw text", r.DialogueText)
	}
	if len(r.Tags) != 0 {
		t.Errorf("Tags = %v, want empty", r.Tags)
	}
	if r.VisualDescription != "" {
		t.Errorf("VisualDescription = %q, want empty", r.VisualDescription)
	}
}

func TestParseTotality(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"{",
		"}{",
		"{\"dialogue_text\": 42}",
		"tags:",
		strings.Repeat("a", 4096),
		"{\"unrelated\": true}",
	}

	for _, in := range inputs {
		r := Parse(in)
		if r == nil {
			t.Fatalf("Parse(%q) returned nil", in)
		}
		if r.Confidence.String() == "unknown" {
			t.Errorf("Parse(%q): unknown confidence", in)
		}
	}
}

func TestParseEmptyDialogueOnlyForDegenerateInput(t *testing.T) {
	if r := Parse(""); r.DialogueText != "" {
		t.Errorf("empty input should give empty dialogue, got %q", r.DialogueText)
	}

	// Input that is nothing but recognized labels
	if r := Parse("dialogue_text:\ntags:\nvisual_description:"); r.DialogueText != "" {
		t.Errorf("label-only input should give empty dialogue, got %q", r.DialogueText)
	}

	// Anything else keeps its text
	if r := Parse("hello"); r.DialogueText == "" {
		t.Error("plain input lost its dialogue text")
	}
}

func TestParseCoercesLooseTypes(t *testing.T) {
	raw := `{"dialogue_text": "Ecco.", "tags": [1, "two", 3.5], "visual_description": "x", "follow_up_action": "request_image"}`
	r := Parse(raw)

	if want := []string{"1", "two", "3.5"}; !reflect.DeepEqual(r.Tags, want) {
		t.Errorf("Tags = %v, want %v", r.Tags, want)
	}
	if r.FollowUpAction != "request_image" {
		t.Errorf("FollowUpAction = %q", r.FollowUpAction)
	}
}

func TestParseNormalizesTags(t *testing.T) {
	raw := `{"dialogue_text": "Ok.", "tags": [" Smile", "smile", "", "sunset "], "visual_description": "", "follow_up_action": null}`
	r := Parse(raw)

	if want := []string{"Smile", "sunset"}; !reflect.DeepEqual(r.Tags, want) {
		t.Errorf("Tags = %v, want %v", r.Tags, want)
	}
}

func TestCheckRanges(t *testing.T) {
	tags := func(n int) []string {
		out := make([]string, n)
		for i := range out {
			out[i] = strings.Repeat("t", i+1)
		}
		return out
	}
	words := func(n int) string {
		return strings.TrimSpace(strings.Repeat("word ", n))
	}

	tests := []struct {
		name       string
		reply      *Reply
		advisories int
	}{
		{
			name:       "in range",
			reply:      &Reply{Tags: tags(9), VisualDescription: words(30)},
			advisories: 0,
		},
		{
			name:       "too few tags",
			reply:      &Reply{Tags: tags(3), VisualDescription: words(30)},
			advisories: 1,
		},
		{
			name:       "too many tags and short visual",
			reply:      &Reply{Tags: tags(15), VisualDescription: words(5)},
			advisories: 2,
		},
		{
			name:       "empty visual not flagged for word count",
			reply:      &Reply{Tags: tags(9)},
			advisories: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckRanges(tt.reply)
			if len(got) != tt.advisories {
				t.Errorf("CheckRanges() = %v, want %d advisories", got, tt.advisories)
			}
		})
	}
}
