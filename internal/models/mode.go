package models

import "fmt"

// Mode is the player-count variant of a game
type Mode int

const (
	// ModeThreePlayer is a game with three ranked players
	ModeThreePlayer Mode = 3

	// ModeFourPlayer is a game with four ranked players
	ModeFourPlayer Mode = 4
)

// Modes lists every supported mode in display order
var Modes = []Mode{ModeThreePlayer, ModeFourPlayer}

// IsValid reports whether the mode is supported
func (m Mode) IsValid() bool {
	return m == ModeThreePlayer || m == ModeFourPlayer
}

// PlayerCount returns the number of ranked players a game in this mode has
func (m Mode) PlayerCount() int {
	return int(m)
}

// Key returns the key used for the mode in the persisted ledger
func (m Mode) Key() string {
	return fmt.Sprintf("%d", int(m))
}

// String returns a human-readable label such as "3-player"
func (m Mode) String() string {
	return fmt.Sprintf("%d-player", int(m))
}
