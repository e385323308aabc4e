package scoring

// ScoringError is a custom error type for scoring errors
type ScoringError string

// Error implements the error interface
func (e ScoringError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidPlayerCount  ScoringError = "a game needs 3 or 4 ranked players matching its mode"
	ErrDuplicatePlayer     ScoringError = "a player cannot finish a game more than once"
	ErrInvalidMode         ScoringError = "mode must be 3 or 4 players"
	ErrMissingPlayerID     ScoringError = "player ID cannot be empty"
	ErrNegativeGamesPlayed ScoringError = "games played cannot be negative"
	ErrPlayerNotFound      ScoringError = "player has no recorded games"
	ErrNilInput            ScoringError = "input cannot be nil"
	ErrNilConfig           ScoringError = "config cannot be nil"
	ErrNilRepository       ScoringError = "ledger repository cannot be nil"
	ErrNilNotifier         ScoringError = "notifier cannot be nil"
	ErrNilClock            ScoringError = "clock cannot be nil"
)
