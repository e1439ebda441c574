package game

import (
	"strings"
	"time"

	"github.com/mathrush/mathrush-server/internal/ident"
)

const (
	maxChatLen     = 200
	maxChatHistory = 500

	// joinHistory is how many recent messages a joining player receives.
	joinHistory = 50
)

// ChatMessage is an immutable room chat entry. PlayerID is empty for
// system-authored notices.
type ChatMessage struct {
	ID       string    `json:"id"`
	PlayerID string    `json:"playerId,omitempty"`
	Name     string    `json:"name"`
	Text     string    `json:"text"`
	SentAt   time.Time `json:"-"`
}

var chatSanitizer = strings.NewReplacer("\r", " ", "\n", " ", "\t", " ")

// SanitizeChat strips control whitespace and trims the text. The second
// return is false when the message must be dropped (empty or oversized).
func SanitizeChat(raw string) (string, bool) {
	text := strings.TrimSpace(chatSanitizer.Replace(raw))
	if text == "" {
		return "", false
	}
	if len([]rune(text)) > maxChatLen {
		return "", false
	}
	return text, true
}

// NewChatMessage builds a player-authored message.
func NewChatMessage(p *Player, text string, now time.Time) ChatMessage {
	return ChatMessage{
		ID:       ident.New(),
		PlayerID: p.ID,
		Name:     p.Name,
		Text:     text,
		SentAt:   now,
	}
}

// NewSystemMessage builds a notice that bypasses author validation and the
// rate limit.
func NewSystemMessage(text string, now time.Time) ChatMessage {
	return ChatMessage{
		ID:     ident.New(),
		Name:   "System",
		Text:   text,
		SentAt: now,
	}
}
