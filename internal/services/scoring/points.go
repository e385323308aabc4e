package scoring

import "github.com/KirkDiggler/tabletally/internal/models"

// pointTable maps each mode to the points awarded by finishing position
var pointTable = map[models.Mode][]int{
	models.ModeThreePlayer: {2, 1, 0},
	models.ModeFourPlayer:  {6, 2, 0, -2},
}

// PointsFor returns a copy of the point vector for a mode, or nil when the
// mode is unsupported
func PointsFor(mode models.Mode) []int {
	points, ok := pointTable[mode]
	if !ok {
		return nil
	}
	return append([]int(nil), points...)
}

// resolveMode checks the player count against the declared mode.
// A zero mode is inferred from the count.
func resolveMode(count int, declared models.Mode) (models.Mode, error) {
	mode := declared
	if mode == 0 {
		mode = models.Mode(count)
	}

	if !mode.IsValid() || mode.PlayerCount() != count {
		return 0, ErrInvalidPlayerCount
	}

	return mode, nil
}
