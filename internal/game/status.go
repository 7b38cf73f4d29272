package game

// Status is the lifecycle state of a game.
type Status int

const (
	StatusIdle    Status = iota // Not started
	StatusPlaying               // Accepting moves
	StatusWon                   // Win tile reached; Continue resumes play
	StatusLost                  // No move can change the board
)

// String returns the lowercase status name used in logs and on the wire.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusPlaying:
		return "playing"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}
