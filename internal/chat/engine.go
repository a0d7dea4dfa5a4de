// Package chat holds the session container and the turn engine that
// drives the parse → decide → select → assemble pipeline for each turn.
package chat

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/fungone76-ux/luna-chat-v1/internal/gate"
	"github.com/fungone76-ux/luna-chat-v1/internal/lora"
	"github.com/fungone76-ux/luna-chat-v1/internal/prompt"
	"github.com/fungone76-ux/luna-chat-v1/internal/reply"
)

// Engine runs one chat turn end to end. It holds only immutable
// configuration, so turns for independent sessions may run in parallel.
type Engine struct {
	characters       map[string]Character
	defaultCharacter string
	gate             gate.Config
	catalog          *lora.Catalog
	sdxl             bool
	log              *zap.Logger
}

// NewEngine wires the engine. The default character must exist in the map
// and the catalog must already be validated by its loader.
func NewEngine(
	characters map[string]Character,
	defaultCharacter string,
	gateCfg gate.Config,
	catalog *lora.Catalog,
	sdxl bool,
	log *zap.Logger,
) (*Engine, error) {
	if _, ok := characters[defaultCharacter]; !ok {
		return nil, fmt.Errorf("default character %q not found", defaultCharacter)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{
		characters:       characters,
		defaultCharacter: defaultCharacter,
		gate:             gateCfg,
		catalog:          catalog,
		sdxl:             sdxl,
		log:              log,
	}, nil
}

// StartSession creates a new session with the default character.
func (e *Engine) StartSession() *Session {
	s := NewSession(e.defaultCharacter)
	e.log.Info("new session",
		zap.String("session", s.ID),
		zap.String("character", s.CharacterName))
	return s
}

// TurnResult bundles everything one turn produced. Prompts is nil when
// the gate declined.
type TurnResult struct {
	Reply      *reply.Reply
	Advisories []reply.Advisory
	Decision   gate.Decision
	Picks      []lora.Pick
	Prompts    *prompt.Prompts
}

// ProcessTurn appends the user message, parses the raw model output,
// decides whether to generate an image, and — when triggered — selects
// modifiers and assembles the prompts for the session's character.
func (e *Engine) ProcessTurn(session *Session, userText, rawModelOutput string) (*TurnResult, error) {
	char, ok := e.characters[session.CharacterName]
	if !ok {
		return nil, fmt.Errorf("unknown character %q", session.CharacterName)
	}

	session.append(RoleUser, "You", userText)

	r := reply.Parse(rawModelOutput)
	advisories := reply.CheckRanges(r)
	for _, a := range advisories {
		e.log.Warn("reply validation",
			zap.String("session", session.ID),
			zap.String("field", a.Field),
			zap.String("detail", a.Message))
	}

	session.append(RoleCharacter, char.Name, r.DialogueText)

	result := &TurnResult{
		Reply:      r,
		Advisories: advisories,
		Decision:   e.gate.Decide(userText, r),
	}

	e.log.Debug("turn parsed",
		zap.String("session", session.ID),
		zap.String("confidence", r.Confidence.String()),
		zap.Int("tags", len(r.Tags)),
		zap.Bool("will_generate", result.Decision.WillGenerate),
		zap.String("reason", result.Decision.Reason.String()))

	if !result.Decision.WillGenerate {
		return result, nil
	}

	result.Picks = e.catalog.Pick(r.Tags, r.VisualDescription, e.sdxl)
	p := prompt.Build(char.BasePrompt, char.NegativePrompt, r, result.Picks)
	result.Prompts = &p

	e.log.Info("prompts assembled",
		zap.String("session", session.ID),
		zap.String("reason", result.Decision.Reason.String()),
		zap.Int("modifiers", len(result.Picks)),
		zap.Int("positive_len", len(p.Positive)),
		zap.Int("negative_len", len(p.Negative)))

	return result, nil
}
