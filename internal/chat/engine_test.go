package chat

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fungone76-ux/luna-chat-v1/internal/gate"
	"github.com/fungone76-ux/luna-chat-v1/internal/lora"
	"github.com/fungone76-ux/luna-chat-v1/internal/prompt"
	"github.com/fungone76-ux/luna-chat-v1/internal/reply"
)

const richRawReply = `{
  "dialogue_text": "Certo, eccola!",
  "tags": ["close-up", "soft lighting", "bedroom", "silk robe", "intimate", "woman", "eye-level shot", "warm colors", "high detail"],
  "visual_description": "A woman in a silk robe stands by the window of a softly lit bedroom, warm evening light across her face, an intimate and quiet moment caught like a cinematic frame.",
  "follow_up_action": null
}`

func testCharacters() map[string]Character {
	return map[string]Character{
		"Luna": {
			Name:           "Luna",
			SystemPrompt:   "You are Luna.",
			BasePrompt:     "masterpiece, elegant woman, long dark hair",
			NegativePrompt: " blurry, lowres ",
		},
	}
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	engine, err := NewEngine(testCharacters(), "Luna", gate.DefaultConfig(), lora.Default(), true, zap.NewNop())
	require.NoError(t, err)
	return engine
}

func TestNewEngineRejectsUnknownDefault(t *testing.T) {
	_, err := NewEngine(testCharacters(), "Nobody", gate.DefaultConfig(), lora.Default(), true, nil)
	assert.Error(t, err)
}

func TestProcessTurnGeneratesPrompts(t *testing.T) {
	engine := newTestEngine(t)
	session := engine.StartSession()

	result, err := engine.ProcessTurn(session, "manda una foto", richRawReply)
	require.NoError(t, err)

	assert.Equal(t, reply.ConfidenceStrict, result.Reply.Confidence)
	assert.True(t, result.Decision.WillGenerate)
	assert.Equal(t, gate.ReasonUserRequest, result.Decision.Reason)

	require.NotNil(t, result.Prompts)
	assert.True(t, strings.HasPrefix(result.Prompts.Positive, prompt.QualityChain))
	assert.Equal(t, "blurry, lowres", result.Prompts.Negative)

	// Quality tokens from the base prompt never show up twice.
	assert.Equal(t, 1, strings.Count(result.Prompts.Positive, "masterpiece"))

	assert.NotEmpty(t, result.Picks)
	assert.LessOrEqual(t, len(result.Picks), lora.Default().MaxTotal)

	// Both sides of the turn land in the history.
	require.Len(t, session.History, 2)
	assert.Equal(t, RoleUser, session.History[0].Role)
	assert.Equal(t, "manda una foto", session.History[0].Text)
	assert.Equal(t, RoleCharacter, session.History[1].Role)
	assert.Equal(t, "Certo, eccola!", session.History[1].Text)
}

func TestProcessTurnDeclines(t *testing.T) {
	engine := newTestEngine(t)
	session := engine.StartSession()

	raw := `{"dialogue_text": "Va tutto bene.", "tags": ["smile"], "visual_description": "", "follow_up_action": null}`
	result, err := engine.ProcessTurn(session, "come stai?", raw)
	require.NoError(t, err)

	assert.False(t, result.Decision.WillGenerate)
	assert.Equal(t, gate.ReasonNoTrigger, result.Decision.Reason)
	assert.Nil(t, result.Prompts)
	assert.Empty(t, result.Picks)

	// A single tag is out of range, so there is an advisory.
	assert.NotEmpty(t, result.Advisories)
}

func TestProcessTurnSurvivesGarbageOutput(t *testing.T) {
	engine := newTestEngine(t)
	session := engine.StartSession()

	result, err := engine.ProcessTurn(session, "ciao", "the model rambled instead of answering")
	require.NoError(t, err)

	assert.Equal(t, reply.ConfidenceUnstructured, result.Reply.Confidence)
	assert.Equal(t, "the model rambled instead of answering", result.Reply.DialogueText)
	assert.False(t, result.Decision.WillGenerate)
}

func TestProcessTurnUnknownCharacter(t *testing.T) {
	engine := newTestEngine(t)
	session := engine.StartSession()
	session.CharacterName = "Nobody"

	_, err := engine.ProcessTurn(session, "ciao", richRawReply)
	assert.Error(t, err)
}

func TestProcessTurnParallelSessions(t *testing.T) {
	engine := newTestEngine(t)

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			session := engine.StartSession()
			result, err := engine.ProcessTurn(session, fmt.Sprintf("manda una foto %d", i), richRawReply)
			if err != nil {
				errs <- err
				return
			}
			if result.Prompts == nil {
				errs <- fmt.Errorf("turn %d: missing prompts", i)
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

func TestLoadCharacters(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "characters.yaml")

	data := `
Luna:
  system_prompt: You are Luna.
  base_prompt: elegant woman, long dark hair
  negative_prompt: blurry
  tone: warm
  style_tags: [cinematic, moody]
Aria:
  system_prompt: You are Aria.
  base_prompt: short red hair, freckles
  negative_prompt: lowres
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	chars, err := LoadCharacters(path)
	require.NoError(t, err)
	require.Len(t, chars, 2)

	luna := chars["Luna"]
	assert.Equal(t, "Luna", luna.Name)
	assert.Equal(t, "warm", luna.Tone)
	assert.Equal(t, []string{"cinematic", "moody"}, luna.StyleTags)
}

func TestLoadCharactersRejectsMissingBasePrompt(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "characters.yaml")

	data := `
Luna:
  system_prompt: You are Luna.
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	_, err := LoadCharacters(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base_prompt")
}
