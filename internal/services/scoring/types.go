package scoring

import (
	"github.com/KirkDiggler/tabletally/internal/common/clock"
	"github.com/KirkDiggler/tabletally/internal/models"
	ledgerRepo "github.com/KirkDiggler/tabletally/internal/repositories/ledger"
)

// Config holds configuration for the scoring service
type Config struct {
	// Repository dependencies
	LedgerRepo ledgerRepo.Repository

	// Notifier receives a signal after every persisted change
	Notifier Notifier

	// Clock stamps computed leaderboards
	Clock clock.Clock

	// DefaultAvatarURL is stored for players created without an avatar
	DefaultAvatarURL string
}

// RecordResultInput contains parameters for recording a game
type RecordResultInput struct {
	// Players in finishing order, first place first
	Players []*models.Player

	// Mode of the game; zero infers it from the number of players
	Mode models.Mode
}

// Placement is one player's outcome in a recorded game
type Placement struct {
	Player *models.Player

	// Rank is the finishing position starting at 1
	Rank int

	// PointsAwarded is what this game added to the player's total
	PointsAwarded int

	// Record is the player's updated totals for the mode
	Record models.ModeRecord
}

// RecordResultOutput contains the result of recording a game
type RecordResultOutput struct {
	Mode       models.Mode
	Placements []*Placement
}

// EditPlayerTotalsInput contains parameters for overwriting a player's totals
type EditPlayerTotalsInput struct {
	Player      *models.Player
	Mode        models.Mode
	Points      int
	GamesPlayed int
}

// EditPlayerTotalsOutput contains the result of overwriting a player's totals
type EditPlayerTotalsOutput struct {
	Player   *models.Player
	Mode     models.Mode
	Previous models.ModeRecord
	Current  models.ModeRecord
}

// GetPlayerStatsInput contains parameters for looking up one player
type GetPlayerStatsInput struct {
	PlayerID string
}

// GetPlayerStatsOutput contains one player's derived stats
type GetPlayerStatsOutput struct {
	Row *models.LeaderboardRow
}
