package game

import "errors"

// Error codes for domain errors surfaced to clients.
const (
	ErrCodeRoomNotFound   = "room_not_found"
	ErrCodeGameInProgress = "game_in_progress"
	ErrCodeNotHost        = "not_host"
	ErrCodeBadRequest     = "bad_request"
)

var (
	ErrRoomNotFound   = errors.New("room not found")
	ErrGameInProgress = errors.New("game already in progress")
	ErrNotHost        = errors.New("only host can start")
)

// GameError wraps a code and human-readable message.
type GameError struct {
	Code    string
	Message string
}

func (e *GameError) Error() string {
	return e.Message
}

func gameError(code, msg string) *GameError {
	return &GameError{Code: code, Message: msg}
}
