package game

import (
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	maxNameLen  = 18
	defaultName = "Player"

	// chatInterval is the minimum gap between accepted chat messages from
	// one player.
	chatInterval = 250 * time.Millisecond
)

// Player is one connected participant. The Commands and Events channels are
// the opaque handles binding it to its connection; the hub never touches the
// socket directly.
type Player struct {
	ID        string
	Name      string
	Score     int
	Correct   int
	Questions int
	Streak    int

	Commands chan *Command
	Events   chan *Event

	// lastAnswerQuestionID guards against double-scoring a question.
	lastAnswerQuestionID string
	chatLimiter          *rate.Limiter

	room *Room
}

// NewPlayer constructs a player with initialized channels and a fresh chat
// rate limiter.
func NewPlayer(id string) *Player {
	return &Player{
		ID:          id,
		Name:        defaultName,
		Commands:    make(chan *Command, 8),
		Events:      make(chan *Event, 32),
		chatLimiter: rate.NewLimiter(rate.Every(chatInterval), 1),
	}
}

// SetName applies the display-name rules: trimmed, capped, never empty.
func (p *Player) SetName(raw string) {
	p.Name = SanitizeName(raw)
}

// SanitizeName trims the name, caps it at the display limit, and falls back
// to the default when nothing remains.
func SanitizeName(raw string) string {
	name := strings.TrimSpace(raw)
	if runes := []rune(name); len(runes) > maxNameLen {
		name = strings.TrimSpace(string(runes[:maxNameLen]))
	}
	if name == "" {
		return defaultName
	}
	return name
}

// AnsweredCurrent reports whether the player already answered question id.
func (p *Player) AnsweredCurrent(questionID string) bool {
	return p.lastAnswerQuestionID == questionID
}

// Summary is the per-player reveal line: who answered, at what standing.
type Summary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Answered bool   `json:"answered"`
	Score    int    `json:"score"`
	Streak   int    `json:"streak"`
}
