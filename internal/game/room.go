package game

import (
	"strings"
	"time"
)

// maxQuestionLimit caps the configurable per-room question count.
const maxQuestionLimit = 200

// normalizeCode canonicalizes a user-supplied room code for lookup.
func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Room is one isolated game session: its players, question stream, and chat.
// All mutation happens on the hub goroutine; the struct itself carries no lock.
type Room struct {
	Code    string
	Topics  []string
	Players map[string]*Player
	HostID  string

	CurrentQuestion    *Question
	QuestionDeadline   time.Time
	QuestionIndex      int
	RevealedQuestionID string
	Limit              int // 0 means unlimited
	InProgress         bool

	Messages []ChatMessage
}

// NewRoom constructs an empty room. An out-of-range limit is ignored.
func NewRoom(code string, topicIDs []string, limit int) *Room {
	if limit < 0 || limit > maxQuestionLimit {
		limit = 0
	}
	return &Room{
		Code:    code,
		Topics:  topicIDs,
		Limit:   limit,
		Players: make(map[string]*Player),
	}
}

// AddPlayer inserts a player into the room.
func (r *Room) AddPlayer(p *Player) {
	r.Players[p.ID] = p
	p.room = r
}

// RemovePlayer deletes a player and reassigns the host when needed. It
// returns the new host id ("" if the host did not change) and whether the
// room is now empty.
func (r *Room) RemovePlayer(playerID string) (newHostID string, empty bool) {
	p, ok := r.Players[playerID]
	if !ok {
		return "", len(r.Players) == 0
	}
	p.room = nil
	delete(r.Players, playerID)

	if len(r.Players) == 0 {
		return "", true
	}
	if r.HostID == playerID {
		// Deterministic pick: the smallest remaining player id.
		for id := range r.Players {
			if newHostID == "" || id < newHostID {
				newHostID = id
			}
		}
		r.HostID = newHostID
	}
	return newHostID, false
}

// PushChat appends a message, evicting the oldest entries beyond the bound.
func (r *Room) PushChat(msg ChatMessage) {
	r.Messages = append(r.Messages, msg)
	if n := len(r.Messages); n > maxChatHistory {
		r.Messages = r.Messages[n-maxChatHistory:]
	}
}

// RecentMessages returns the newest chat entries sent to a joining player.
func (r *Room) RecentMessages() []ChatMessage {
	if len(r.Messages) <= joinHistory {
		return r.Messages
	}
	return r.Messages[len(r.Messages)-joinHistory:]
}

// Revealed reports whether the current question's answer has been published.
func (r *Room) Revealed() bool {
	return r.CurrentQuestion != nil && r.RevealedQuestionID == r.CurrentQuestion.ID
}

// Broadcast fans an event out to every member. Sends are non-blocking so a
// dead or slow connection can never stall the rest of the room.
func (r *Room) Broadcast(event *Event) {
	for _, p := range r.Players {
		select {
		case p.Events <- event:
		default:
			// Drop for slow consumers.
		}
	}
}
