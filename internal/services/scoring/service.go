package scoring

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/KirkDiggler/tabletally/internal/common/clock"
	"github.com/KirkDiggler/tabletally/internal/models"
	ledgerRepo "github.com/KirkDiggler/tabletally/internal/repositories/ledger"
)

// service implements the Service interface
type service struct {
	// mu serialises load-mutate-save so concurrent mutations apply one after another
	mu sync.Mutex

	ledgerRepo       ledgerRepo.Repository
	notifier         Notifier
	clock            clock.Clock
	defaultAvatarURL string
}

// New creates a new scoring service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.LedgerRepo == nil {
		return nil, ErrNilRepository
	}

	if cfg.Notifier == nil {
		return nil, ErrNilNotifier
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	return &service{
		ledgerRepo:       cfg.LedgerRepo,
		notifier:         cfg.Notifier,
		clock:            cfg.Clock,
		defaultAvatarURL: cfg.DefaultAvatarURL,
	}, nil
}

// RecordResult applies a ranked game result to every player in it
func (s *service) RecordResult(ctx context.Context, input *RecordResultInput) (*RecordResultOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	mode, err := resolveMode(len(input.Players), input.Mode)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(input.Players))
	for _, player := range input.Players {
		if player == nil || strings.TrimSpace(player.ID) == "" {
			return nil, ErrMissingPlayerID
		}
		if seen[player.ID] {
			return nil, ErrDuplicatePlayer
		}
		seen[player.ID] = true
	}

	points := PointsFor(mode)

	s.mu.Lock()
	defer s.mu.Unlock()

	ledger, err := s.loadLedger(ctx)
	if err != nil {
		return nil, err
	}

	placements := make([]*Placement, 0, len(input.Players))
	for idx, player := range input.Players {
		entry := ledger.Ensure(s.withDefaults(player))

		record := entry.Record(mode)
		record.Points += points[idx]
		record.GamesPlayed++

		placements = append(placements, &Placement{
			Player: &models.Player{
				ID:        entry.ID,
				Nickname:  entry.Nickname,
				AvatarURL: entry.AvatarURL,
			},
			Rank:          idx + 1,
			PointsAwarded: points[idx],
			Record:        *record,
		})
	}

	if err := s.saveLedger(ctx, ledger); err != nil {
		return nil, err
	}

	return &RecordResultOutput{
		Mode:       mode,
		Placements: placements,
	}, nil
}

// EditPlayerTotals overwrites a player's totals for one mode
func (s *service) EditPlayerTotals(ctx context.Context, input *EditPlayerTotalsInput) (*EditPlayerTotalsOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if !input.Mode.IsValid() {
		return nil, ErrInvalidMode
	}

	if input.Player == nil || strings.TrimSpace(input.Player.ID) == "" {
		return nil, ErrMissingPlayerID
	}

	if input.GamesPlayed < 0 {
		return nil, ErrNegativeGamesPlayed
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ledger, err := s.loadLedger(ctx)
	if err != nil {
		return nil, err
	}

	entry := ledger.Ensure(s.withDefaults(input.Player))
	record := entry.Record(input.Mode)
	previous := *record

	record.Points = input.Points
	record.GamesPlayed = input.GamesPlayed

	if err := s.saveLedger(ctx, ledger); err != nil {
		return nil, err
	}

	return &EditPlayerTotalsOutput{
		Player: &models.Player{
			ID:        entry.ID,
			Nickname:  entry.Nickname,
			AvatarURL: entry.AvatarURL,
		},
		Mode:     input.Mode,
		Previous: previous,
		Current:  *record,
	}, nil
}

// ComputeLeaderboard derives every row and the column maximums
func (s *service) ComputeLeaderboard(ctx context.Context) (*models.Leaderboard, error) {
	ledger, err := s.loadLedger(ctx)
	if err != nil {
		return nil, err
	}

	board := &models.Leaderboard{
		Rows:        make([]*models.LeaderboardRow, 0, len(ledger)),
		GeneratedAt: s.clock.Now(),
	}

	for _, entry := range ledger {
		row := models.NewLeaderboardRow(entry)
		board.Rows = append(board.Rows, row)

		// Only modes the player has actually played compete for a crown
		if row.P3GamesPlayed > 0 {
			board.Maxima.P3Points.Observe(row.P3Points)
			board.Maxima.P3PPG.Observe(row.P3PPG)
		}
		if row.P4GamesPlayed > 0 {
			board.Maxima.P4Points.Observe(row.P4Points)
			board.Maxima.P4PPG.Observe(row.P4PPG)
		}
	}

	return board, nil
}

// GetPlayerStats returns the derived row for a single player
func (s *service) GetPlayerStats(ctx context.Context, input *GetPlayerStatsInput) (*GetPlayerStatsOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if strings.TrimSpace(input.PlayerID) == "" {
		return nil, ErrMissingPlayerID
	}

	ledger, err := s.loadLedger(ctx)
	if err != nil {
		return nil, err
	}

	entry, ok := ledger[input.PlayerID]
	if !ok {
		return nil, ErrPlayerNotFound
	}

	return &GetPlayerStatsOutput{
		Row: models.NewLeaderboardRow(entry),
	}, nil
}

func (s *service) loadLedger(ctx context.Context) (models.Ledger, error) {
	output, err := s.ledgerRepo.LoadLedger(ctx, &ledgerRepo.LoadLedgerInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}

	if output.Recovered {
		log.Println("Stored ledger was malformed; continuing with an empty ledger")
	}

	if output.Ledger == nil {
		return models.NewLedger(), nil
	}

	return output.Ledger, nil
}

// saveLedger persists the ledger and signals listeners only when the save succeeded
func (s *service) saveLedger(ctx context.Context, ledger models.Ledger) error {
	err := s.ledgerRepo.SaveLedger(ctx, &ledgerRepo.SaveLedgerInput{
		Ledger: ledger,
	})
	if err != nil {
		log.Printf("Failed to save ledger: %v", err)
		return fmt.Errorf("failed to save ledger: %w", err)
	}

	s.notifier.Notify()
	return nil
}

// withDefaults fills in display metadata for a player seen for the first time
func (s *service) withDefaults(player *models.Player) *models.Player {
	filled := *player
	if strings.TrimSpace(filled.Nickname) == "" {
		filled.Nickname = filled.ID
	}
	if strings.TrimSpace(filled.AvatarURL) == "" {
		filled.AvatarURL = s.defaultAvatarURL
	}
	return &filled
}
