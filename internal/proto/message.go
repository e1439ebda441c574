// Package proto defines the wire format: one flat JSON object per message
// with a "type" discriminator alongside the payload fields.
package proto

// Inbound message types (client to server).
const (
	InboundCreateRoom = "create_room"
	InboundJoinRoom   = "join_room"
	InboundSetName    = "set_name"
	InboundStart      = "start"
	InboundAnswer     = "answer"
	InboundChat       = "chat"
)

// Outbound message types (server to client).
const (
	OutboundHello       = "hello"
	OutboundRoomCreated = "room_created"
	OutboundJoined      = "joined"
	OutboundChatHistory = "chat_history"
	OutboundError       = "error"
	OutboundLeaderboard = "leaderboard"
	OutboundPlayerJoin  = "player_join"
	OutboundHostChange  = "host_change"
	OutboundQuestion    = "question"
	OutboundReveal      = "reveal"
	OutboundEndGame     = "end_game"
	OutboundChat        = "chat"
)

// Inbound is the union of all client message fields; Type selects which are
// meaningful.
type Inbound struct {
	Type string `json:"type"`

	Topics []string `json:"topics,omitempty"` // create_room
	Limit  int      `json:"limit,omitempty"`  // create_room

	Code string `json:"code,omitempty"` // join_room
	Name string `json:"name,omitempty"` // set_name

	QuestionID string `json:"questionId,omitempty"` // answer
	Choice     int    `json:"choice"`               // answer

	Text string `json:"text,omitempty"` // chat
}

// TopicInfo advertises one supported topic to a new connection.
type TopicInfo struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// PlayerRef is the public identity of a player.
type PlayerRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// LeaderboardEntry is one row of the ranked standings.
type LeaderboardEntry struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Score     int    `json:"score"`
	Streak    int    `json:"streak"`
	Correct   int    `json:"correct"`
	Questions int    `json:"questions"`
}

// Question is the client view of an active question. The correct answer is
// only ever published through Reveal.
type Question struct {
	ID          string `json:"id"`
	TopicID     string `json:"topicId"`
	TopicLabel  string `json:"topicLabel"`
	TopicSymbol string `json:"topicSymbol"`
	Text        string `json:"text"`
	Options     []int  `json:"options"`
	Start       int64  `json:"start"`    // unix millis
	Duration    int64  `json:"duration"` // millis
}

// ChatMessage is one chat entry; PlayerID is null for system notices.
type ChatMessage struct {
	ID       string  `json:"id"`
	PlayerID *string `json:"playerId"`
	Name     string  `json:"name"`
	Text     string  `json:"text"`
	TS       int64   `json:"ts"` // unix millis
}

// PlayerSummary is the per-player reveal line.
type PlayerSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Answered bool   `json:"answered"`
	Score    int    `json:"score"`
	Streak   int    `json:"streak"`
}

// Hello greets a new connection.
type Hello struct {
	Type            string      `json:"type"`
	PlayerID        string      `json:"playerId"`
	SupportedTopics []TopicInfo `json:"supportedTopics"`
}

// RoomCreated confirms room creation to the creator.
type RoomCreated struct {
	Type   string   `json:"type"`
	Code   string   `json:"code"`
	HostID string   `json:"hostId"`
	Topics []string `json:"topics"`
	Limit  *int     `json:"limit"`
}

// Joined confirms a successful join.
type Joined struct {
	Type   string   `json:"type"`
	Code   string   `json:"code"`
	HostID string   `json:"hostId"`
	Topics []string `json:"topics"`
	Limit  *int     `json:"limit"`
}

// ChatHistory delivers recent chat to a joining player.
type ChatHistory struct {
	Type     string        `json:"type"`
	Messages []ChatMessage `json:"messages"`
}

// Error reports a rejected command.
type Error struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// Leaderboard carries refreshed standings.
type Leaderboard struct {
	Type        string             `json:"type"`
	Leaderboard []LeaderboardEntry `json:"leaderboard"`
}

// PlayerJoin announces a new room member.
type PlayerJoin struct {
	Type        string             `json:"type"`
	Player      PlayerRef          `json:"player"`
	Leaderboard []LeaderboardEntry `json:"leaderboard"`
}

// HostChange announces host reassignment.
type HostChange struct {
	Type   string `json:"type"`
	HostID string `json:"hostId"`
}

// QuestionStart begins a question round.
type QuestionStart struct {
	Type        string             `json:"type"`
	Question    Question           `json:"question"`
	Leaderboard []LeaderboardEntry `json:"leaderboard"`
	Index       int                `json:"index"`
	Total       *int               `json:"total"`
}

// Reveal publishes a question's answer at deadline expiry.
type Reveal struct {
	Type        string             `json:"type"`
	QuestionID  string             `json:"questionId"`
	Answer      int                `json:"answer"`
	Leaderboard []LeaderboardEntry `json:"leaderboard"`
	Players     []PlayerSummary    `json:"players"`
}

// EndGame closes a session with final standings.
type EndGame struct {
	Type           string             `json:"type"`
	Leaderboard    []LeaderboardEntry `json:"leaderboard"`
	TotalQuestions int                `json:"totalQuestions"`
}

// Chat delivers one chat message.
type Chat struct {
	Type    string      `json:"type"`
	Message ChatMessage `json:"message"`
}
