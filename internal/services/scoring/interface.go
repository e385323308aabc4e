package scoring

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/tabletally/internal/services/scoring Service
//go:generate mockgen -package=mocks -destination=mocks/mock_notifier.go github.com/KirkDiggler/tabletally/internal/services/scoring Notifier

import (
	"context"

	"github.com/KirkDiggler/tabletally/internal/models"
)

// Service defines the scoring ledger operations
type Service interface {
	// RecordResult applies a ranked game result to every player in it
	RecordResult(ctx context.Context, input *RecordResultInput) (*RecordResultOutput, error)

	// EditPlayerTotals overwrites a player's totals for one mode
	EditPlayerTotals(ctx context.Context, input *EditPlayerTotalsInput) (*EditPlayerTotalsOutput, error)

	// ComputeLeaderboard derives every row and the column maximums
	ComputeLeaderboard(ctx context.Context) (*models.Leaderboard, error)

	// GetPlayerStats returns the derived row for a single player
	GetPlayerStats(ctx context.Context, input *GetPlayerStatsInput) (*GetPlayerStatsOutput, error)
}

// Notifier is told once after every successfully persisted change
type Notifier interface {
	Notify()
}
