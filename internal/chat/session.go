package chat

import (
	"time"

	"github.com/google/uuid"
)

// Role identifies who authored a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleCharacter Role = "character"
	RoleSystem    Role = "system"
)

// Message is one entry in a session's history.
type Message struct {
	Role      Role
	Speaker   string
	Text      string
	Timestamp time.Time
}

// Session is the in-memory state of one 1-to-1 conversation. The core
// pipeline never touches it concurrently; callers own serialization.
type Session struct {
	ID            string
	CharacterName string
	History       []Message
}

// NewSession creates an empty session bound to a character.
func NewSession(characterName string) *Session {
	return &Session{
		ID:            uuid.NewString(),
		CharacterName: characterName,
	}
}

func (s *Session) append(role Role, speaker, text string) {
	s.History = append(s.History, Message{
		Role:      role,
		Speaker:   speaker,
		Text:      text,
		Timestamp: time.Now(),
	})
}
