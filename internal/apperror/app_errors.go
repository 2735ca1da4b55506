package apperror

import "errors"

// Reasons a move is ignored. None of them is shown to the players as a failure.
var (
	ErrGameFinished = errors.New("game is already finished")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrInvalidCell  = errors.New("invalid cell index")
)

var ErrSessionNotFound = errors.New("session not found")

// Reason names why a move was ignored, or returns "" for a nil error.
func Reason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrCellOccupied):
		return "occupied"
	case errors.Is(err, ErrGameFinished):
		return "finished"
	default:
		return "invalid"
	}
}
