package game

// CommandKind describes what a connection wants to do.
type CommandKind int

const (
	// CommandCreateRoom opens a new room with the sender as host.
	CommandCreateRoom CommandKind = iota
	// CommandJoinRoom adds the sender to an existing room by code.
	CommandJoinRoom
	// CommandSetName changes the sender's display name.
	CommandSetName
	// CommandStart begins the question stream (host only).
	CommandStart
	// CommandAnswer submits a choice for the active question.
	CommandAnswer
	// CommandChat posts a chat message to the sender's room.
	CommandChat
)

// Command represents an action requested by a player's connection.
type Command struct {
	Kind CommandKind

	Topics []string // CommandCreateRoom
	Limit  int      // CommandCreateRoom; 0 means unlimited

	Code string // CommandJoinRoom
	Name string // CommandSetName

	QuestionID string // CommandAnswer
	Choice     int    // CommandAnswer

	Text string // CommandChat
}
