package game

// EventKind is a notification the game emits to connections.
type EventKind int

const (
	// EventHello greets a new connection with its player id and the topic list.
	EventHello EventKind = iota
	// EventRoomCreated confirms room creation to the creator.
	EventRoomCreated
	// EventJoined confirms a successful join to the joining player.
	EventJoined
	// EventChatHistory delivers recent chat to a joining player.
	EventChatHistory
	// EventError reports a rejected command to its sender.
	EventError
	// EventLeaderboard carries a refreshed standings snapshot to the room.
	EventLeaderboard
	// EventPlayerJoin announces a new member to the room.
	EventPlayerJoin
	// EventHostChange announces host reassignment to the room.
	EventHostChange
	// EventQuestion starts a question round for the room.
	EventQuestion
	// EventReveal publishes the answer at deadline expiry.
	EventReveal
	// EventEndGame closes a session with final standings.
	EventEndGame
	// EventChat delivers one chat message to the room.
	EventChat
)

// PlayerRef is the minimal public identity of a player.
type PlayerRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Event is sent to connections to describe what happened. Only the fields
// relevant to Kind are populated.
type Event struct {
	Kind EventKind

	PlayerID string  // EventHello
	Topics   []Topic // EventHello

	Code       string   // EventRoomCreated, EventJoined
	HostID     string   // EventRoomCreated, EventJoined, EventHostChange
	RoomTopics []string // EventRoomCreated, EventJoined
	Limit      int      // EventRoomCreated, EventJoined; 0 means unlimited

	Leaderboard []LeaderboardEntry

	Player *PlayerRef // EventPlayerJoin

	Question *Question // EventQuestion
	Index    int       // EventQuestion
	Total    int       // EventQuestion; 0 means unlimited

	QuestionID string    // EventReveal
	Answer     int       // EventReveal
	Players    []Summary // EventReveal

	TotalQuestions int // EventEndGame

	Message  *ChatMessage  // EventChat
	Messages []ChatMessage // EventChatHistory

	Error *GameError // EventError
}

// send delivers an event to one player without ever blocking the hub.
func send(p *Player, event *Event) {
	select {
	case p.Events <- event:
	default:
	}
}
