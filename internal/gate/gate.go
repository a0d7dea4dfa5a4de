// Package gate decides whether a chat turn warrants generating an image.
package gate

import (
	"strings"

	"github.com/fungone76-ux/luna-chat-v1/internal/reply"
)

// Mode selects the voting policy.
type Mode int

const (
	// ModeAny triggers on any single explicit signal (user request,
	// character promise, or follow-up action). Visual richness alone
	// never triggers in this mode.
	ModeAny Mode = iota
	// ModeQuorum triggers only when at least Quorum of {user request,
	// character promise, visual richness} hold at once.
	ModeQuorum
)

// Reason explains a positive or negative decision.
type Reason int

const (
	ReasonUserRequest Reason = iota
	ReasonCharacterPromise
	ReasonFollowUpSignal
	ReasonVisualRichness
	ReasonNoTrigger
)

func (r Reason) String() string {
	switch r {
	case ReasonUserRequest:
		return "user_request"
	case ReasonCharacterPromise:
		return "character_promise"
	case ReasonFollowUpSignal:
		return "follow_up_signal"
	case ReasonVisualRichness:
		return "visual_richness"
	case ReasonNoTrigger:
		return "no_trigger"
	default:
		return "unknown"
	}
}

// Config holds the trigger vocabulary and voting policy.
type Config struct {
	Mode           Mode
	Quorum         int
	RequestPhrases []string
	PromisePhrases []string
	ControlToken   string
	MinTags        int
}

// DefaultConfig returns the production gate: quorum of two, with the
// request vocabulary the chat has always recognized.
func DefaultConfig() Config {
	return Config{
		Mode:   ModeQuorum,
		Quorum: 2,
		RequestPhrases: []string{
			"immagine", "immagini", "foto", "fotografia",
			"picture", "image", "pic", "photo",
		},
		PromisePhrases: []string{
			"ti mando", "ti invio", "ecco la foto", "ecco una foto",
			"ti faccio vedere", "let me show you", "i'll send you",
			"here's a picture", "here is a picture",
		},
		ControlToken: "request_image",
		MinTags:      5,
	}
}

// Decision is the outcome of one gate evaluation.
type Decision struct {
	WillGenerate bool
	Reason       Reason
}

// Signals are the independent boolean inputs to the vote.
type Signals struct {
	UserRequest      bool
	CharacterPromise bool
	FollowUpSignal   bool
	VisualRichness   bool
}

// Evaluate computes the raw signals for a turn without applying a policy.
func (c Config) Evaluate(userText string, r *reply.Reply) Signals {
	return Signals{
		UserRequest:      containsAny(userText, c.RequestPhrases),
		CharacterPromise: containsAny(r.DialogueText, c.PromisePhrases),
		FollowUpSignal:   strings.EqualFold(strings.TrimSpace(r.FollowUpAction), c.ControlToken),
		VisualRichness:   r.VisualDescription != "" && len(r.Tags) >= c.MinTags,
	}
}

// Decide applies the configured voting policy to a turn. The reported
// reason always follows the fixed priority user request > character
// promise > follow-up signal > visual richness, independent of which
// combination of signals carried the vote.
func (c Config) Decide(userText string, r *reply.Reply) Decision {
	s := c.Evaluate(userText, r)

	var will bool
	switch c.Mode {
	case ModeQuorum:
		votes := 0
		for _, v := range []bool{s.UserRequest, s.CharacterPromise, s.VisualRichness} {
			if v {
				votes++
			}
		}
		will = votes >= c.Quorum
	default:
		will = s.UserRequest || s.CharacterPromise || s.FollowUpSignal
	}

	if !will {
		return Decision{WillGenerate: false, Reason: ReasonNoTrigger}
	}

	switch {
	case s.UserRequest:
		return Decision{WillGenerate: true, Reason: ReasonUserRequest}
	case s.CharacterPromise:
		return Decision{WillGenerate: true, Reason: ReasonCharacterPromise}
	case s.FollowUpSignal:
		return Decision{WillGenerate: true, Reason: ReasonFollowUpSignal}
	default:
		return Decision{WillGenerate: true, Reason: ReasonVisualRichness}
	}
}

func containsAny(text string, phrases []string) bool {
	if text == "" {
		return false
	}
	lower := strings.ToLower(text)
	for _, p := range phrases {
		if p != "" && strings.Contains(lower, strings.ToLower(p)) {
			return true
		}
	}
	return false
}
