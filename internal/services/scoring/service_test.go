package scoring_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/tabletally/internal/common/clock/mocks"
	"github.com/KirkDiggler/tabletally/internal/models"
	ledgerRepo "github.com/KirkDiggler/tabletally/internal/repositories/ledger"
	ledgerMocks "github.com/KirkDiggler/tabletally/internal/repositories/ledger/mocks"
	"github.com/KirkDiggler/tabletally/internal/services/scoring"
	"github.com/KirkDiggler/tabletally/internal/services/scoring/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testDefaultAvatar = "https://cdn.example/default.svg"

type ScoringServiceTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockLedgerRepo *ledgerMocks.MockRepository
	mockNotifier   *mocks.MockNotifier
	mockClock      *clockMocks.MockClock
	scoringService scoring.Service
	ctx            context.Context

	// Test data
	testTime time.Time
	alice    *models.Player
	bob      *models.Player
	carol    *models.Player
	dave     *models.Player
}

func (s *ScoringServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockLedgerRepo = ledgerMocks.NewMockRepository(s.mockCtrl)
	s.mockNotifier = mocks.NewMockNotifier(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)

	s.ctx = context.Background()
	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	s.alice = &models.Player{ID: "111", Nickname: "Alice", AvatarURL: "https://cdn.example/alice.png"}
	s.bob = &models.Player{ID: "222", Nickname: "Bob", AvatarURL: "https://cdn.example/bob.png"}
	s.carol = &models.Player{ID: "333", Nickname: "Carol", AvatarURL: "https://cdn.example/carol.png"}
	s.dave = &models.Player{ID: "444", Nickname: "Dave", AvatarURL: "https://cdn.example/dave.png"}

	svc, err := scoring.New(&scoring.Config{
		LedgerRepo:       s.mockLedgerRepo,
		Notifier:         s.mockNotifier,
		Clock:            s.mockClock,
		DefaultAvatarURL: testDefaultAvatar,
	})
	s.Require().NoError(err)
	s.scoringService = svc
}

func (s *ScoringServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestScoringServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ScoringServiceTestSuite))
}

// expectLoad returns the given ledger from the repository
func (s *ScoringServiceTestSuite) expectLoad(ledger models.Ledger) {
	s.mockLedgerRepo.EXPECT().
		LoadLedger(gomock.Any(), &ledgerRepo.LoadLedgerInput{}).
		Return(&ledgerRepo.LoadLedgerOutput{Ledger: ledger}, nil)
}

// expectSave captures the saved ledger
func (s *ScoringServiceTestSuite) expectSave(saved *models.Ledger) {
	s.mockLedgerRepo.EXPECT().
		SaveLedger(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *ledgerRepo.SaveLedgerInput) error {
			*saved = input.Ledger.Clone()
			return nil
		})
}

func (s *ScoringServiceTestSuite) TestNew_Validation() {
	_, err := scoring.New(nil)
	s.ErrorIs(err, scoring.ErrNilConfig)

	_, err = scoring.New(&scoring.Config{Notifier: s.mockNotifier, Clock: s.mockClock})
	s.ErrorIs(err, scoring.ErrNilRepository)

	_, err = scoring.New(&scoring.Config{LedgerRepo: s.mockLedgerRepo, Clock: s.mockClock})
	s.ErrorIs(err, scoring.ErrNilNotifier)

	_, err = scoring.New(&scoring.Config{LedgerRepo: s.mockLedgerRepo, Notifier: s.mockNotifier})
	s.ErrorIs(err, scoring.ErrNilClock)
}

func (s *ScoringServiceTestSuite) TestRecordResult_ThreePlayer() {
	var saved models.Ledger
	s.expectLoad(models.NewLedger())
	s.expectSave(&saved)
	s.mockNotifier.EXPECT().Notify().Times(1)

	output, err := s.scoringService.RecordResult(s.ctx, &scoring.RecordResultInput{
		Players: []*models.Player{s.alice, s.bob, s.carol},
		Mode:    models.ModeThreePlayer,
	})
	s.Require().NoError(err)
	s.Equal(models.ModeThreePlayer, output.Mode)
	s.Require().Len(output.Placements, 3)

	expected := []int{2, 1, 0}
	for idx, placement := range output.Placements {
		s.Equal(idx+1, placement.Rank)
		s.Equal(expected[idx], placement.PointsAwarded)
		s.Equal(models.ModeRecord{Points: expected[idx], GamesPlayed: 1}, placement.Record)
	}

	s.Require().Len(saved, 3)
	s.Equal(models.ModeRecord{Points: 2, GamesPlayed: 1}, saved["111"].ThreePlayer)
	s.Equal(models.ModeRecord{Points: 1, GamesPlayed: 1}, saved["222"].ThreePlayer)
	s.Equal(models.ModeRecord{Points: 0, GamesPlayed: 1}, saved["333"].ThreePlayer)
	s.Equal(models.ModeRecord{}, saved["111"].FourPlayer)
	s.Equal("Alice", saved["111"].Nickname)
	s.Equal("https://cdn.example/alice.png", saved["111"].AvatarURL)
}

func (s *ScoringServiceTestSuite) TestRecordResult_FourPlayerAddsToExistingTotals() {
	existing := models.NewLedger()
	aliceEntry := existing.Ensure(s.alice)
	aliceEntry.FourPlayer = models.ModeRecord{Points: 10, GamesPlayed: 3}
	aliceEntry.ThreePlayer = models.ModeRecord{Points: 5, GamesPlayed: 4}

	var saved models.Ledger
	s.expectLoad(existing)
	s.expectSave(&saved)
	s.mockNotifier.EXPECT().Notify().Times(1)

	output, err := s.scoringService.RecordResult(s.ctx, &scoring.RecordResultInput{
		Players: []*models.Player{s.bob, s.dave, s.carol, s.alice},
		Mode:    models.ModeFourPlayer,
	})
	s.Require().NoError(err)
	s.Require().Len(output.Placements, 4)

	s.Equal(models.ModeRecord{Points: 6, GamesPlayed: 1}, saved["222"].FourPlayer)
	s.Equal(models.ModeRecord{Points: 2, GamesPlayed: 1}, saved["444"].FourPlayer)
	s.Equal(models.ModeRecord{Points: 0, GamesPlayed: 1}, saved["333"].FourPlayer)
	s.Equal(models.ModeRecord{Points: 8, GamesPlayed: 4}, saved["111"].FourPlayer)
	s.Equal(models.ModeRecord{Points: 5, GamesPlayed: 4}, saved["111"].ThreePlayer)
	s.Equal(-2, output.Placements[3].PointsAwarded)
}

func (s *ScoringServiceTestSuite) TestRecordResult_InfersMode() {
	var saved models.Ledger
	s.expectLoad(models.NewLedger())
	s.expectSave(&saved)
	s.mockNotifier.EXPECT().Notify()

	output, err := s.scoringService.RecordResult(s.ctx, &scoring.RecordResultInput{
		Players: []*models.Player{s.alice, s.bob, s.carol, s.dave},
	})
	s.Require().NoError(err)
	s.Equal(models.ModeFourPlayer, output.Mode)
	s.Equal(6, saved["111"].FourPlayer.Points)
}

func (s *ScoringServiceTestSuite) TestRecordResult_KeepsExistingDisplayMetadata() {
	existing := models.NewLedger()
	existing.Ensure(&models.Player{ID: "111", Nickname: "Old Alice", AvatarURL: "old.png"})

	var saved models.Ledger
	s.expectLoad(existing)
	s.expectSave(&saved)
	s.mockNotifier.EXPECT().Notify()

	output, err := s.scoringService.RecordResult(s.ctx, &scoring.RecordResultInput{
		Players: []*models.Player{s.alice, s.bob, s.carol},
	})
	s.Require().NoError(err)
	s.Equal("Old Alice", saved["111"].Nickname)
	s.Equal("old.png", saved["111"].AvatarURL)
	s.Equal("Old Alice", output.Placements[0].Player.Nickname)
}

func (s *ScoringServiceTestSuite) TestRecordResult_FillsDefaultAvatarAndNickname() {
	var saved models.Ledger
	s.expectLoad(models.NewLedger())
	s.expectSave(&saved)
	s.mockNotifier.EXPECT().Notify()

	_, err := s.scoringService.RecordResult(s.ctx, &scoring.RecordResultInput{
		Players: []*models.Player{{ID: "999"}, s.bob, s.carol},
	})
	s.Require().NoError(err)
	s.Equal("999", saved["999"].Nickname)
	s.Equal(testDefaultAvatar, saved["999"].AvatarURL)
}

func (s *ScoringServiceTestSuite) TestRecordResult_InvalidPlayerCount() {
	testCases := []struct {
		name    string
		players []*models.Player
		mode    models.Mode
	}{
		{name: "two players", players: []*models.Player{s.alice, s.bob}},
		{name: "five players", players: []*models.Player{s.alice, s.bob, s.carol, s.dave, {ID: "555"}}},
		{name: "no players", players: nil},
		{name: "three players declared four", players: []*models.Player{s.alice, s.bob, s.carol}, mode: models.ModeFourPlayer},
		{name: "four players declared three", players: []*models.Player{s.alice, s.bob, s.carol, s.dave}, mode: models.ModeThreePlayer},
		{name: "two players declared two", players: []*models.Player{s.alice, s.bob}, mode: models.Mode(2)},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			// No repository or notifier calls are expected
			_, err := s.scoringService.RecordResult(s.ctx, &scoring.RecordResultInput{
				Players: tc.players,
				Mode:    tc.mode,
			})
			s.ErrorIs(err, scoring.ErrInvalidPlayerCount)
		})
	}
}

func (s *ScoringServiceTestSuite) TestRecordResult_DuplicatePlayer() {
	_, err := s.scoringService.RecordResult(s.ctx, &scoring.RecordResultInput{
		Players: []*models.Player{s.alice, s.bob, {ID: "111", Nickname: "Alice again"}},
	})
	s.ErrorIs(err, scoring.ErrDuplicatePlayer)
}

func (s *ScoringServiceTestSuite) TestRecordResult_MissingPlayerID() {
	_, err := s.scoringService.RecordResult(s.ctx, &scoring.RecordResultInput{
		Players: []*models.Player{s.alice, nil, s.carol},
	})
	s.ErrorIs(err, scoring.ErrMissingPlayerID)

	_, err = s.scoringService.RecordResult(s.ctx, &scoring.RecordResultInput{
		Players: []*models.Player{s.alice, {ID: " "}, s.carol},
	})
	s.ErrorIs(err, scoring.ErrMissingPlayerID)
}

func (s *ScoringServiceTestSuite) TestRecordResult_NilInput() {
	_, err := s.scoringService.RecordResult(s.ctx, nil)
	s.ErrorIs(err, scoring.ErrNilInput)
}

func (s *ScoringServiceTestSuite) TestRecordResult_LoadError() {
	loadErr := errors.New("disk on fire")
	s.mockLedgerRepo.EXPECT().
		LoadLedger(gomock.Any(), gomock.Any()).
		Return(nil, loadErr)

	_, err := s.scoringService.RecordResult(s.ctx, &scoring.RecordResultInput{
		Players: []*models.Player{s.alice, s.bob, s.carol},
	})
	s.ErrorIs(err, loadErr)
}

func (s *ScoringServiceTestSuite) TestRecordResult_SaveErrorSkipsNotification() {
	s.expectLoad(models.NewLedger())
	s.mockLedgerRepo.EXPECT().
		SaveLedger(gomock.Any(), gomock.Any()).
		Return(ledgerRepo.ErrPersistenceUnavailable)
	s.mockNotifier.EXPECT().Notify().Times(0)

	_, err := s.scoringService.RecordResult(s.ctx, &scoring.RecordResultInput{
		Players: []*models.Player{s.alice, s.bob, s.carol},
	})
	s.ErrorIs(err, ledgerRepo.ErrPersistenceUnavailable)
}

func (s *ScoringServiceTestSuite) TestEditPlayerTotals_HappyPath() {
	existing := models.NewLedger()
	existing.Ensure(s.alice).ThreePlayer = models.ModeRecord{Points: 7, GamesPlayed: 9}

	var saved models.Ledger
	s.expectLoad(existing)
	s.expectSave(&saved)
	s.mockNotifier.EXPECT().Notify().Times(1)

	output, err := s.scoringService.EditPlayerTotals(s.ctx, &scoring.EditPlayerTotalsInput{
		Player:      s.alice,
		Mode:        models.ModeThreePlayer,
		Points:      10,
		GamesPlayed: 4,
	})
	s.Require().NoError(err)
	s.Equal(models.ModeRecord{Points: 7, GamesPlayed: 9}, output.Previous)
	s.Equal(models.ModeRecord{Points: 10, GamesPlayed: 4}, output.Current)
	s.Equal(models.ModeRecord{Points: 10, GamesPlayed: 4}, saved["111"].ThreePlayer)
}

func (s *ScoringServiceTestSuite) TestEditPlayerTotals_CreatesEntry() {
	var saved models.Ledger
	s.expectLoad(models.NewLedger())
	s.expectSave(&saved)
	s.mockNotifier.EXPECT().Notify()

	_, err := s.scoringService.EditPlayerTotals(s.ctx, &scoring.EditPlayerTotalsInput{
		Player:      s.dave,
		Mode:        models.ModeFourPlayer,
		Points:      -8,
		GamesPlayed: 0,
	})
	s.Require().NoError(err)
	s.Require().Contains(saved, "444")
	s.Equal(models.ModeRecord{Points: -8, GamesPlayed: 0}, saved["444"].FourPlayer)
	s.Equal(models.ModeRecord{}, saved["444"].ThreePlayer)
}

func (s *ScoringServiceTestSuite) TestEditPlayerTotals_InvalidMode() {
	for _, mode := range []models.Mode{0, 2, 5} {
		_, err := s.scoringService.EditPlayerTotals(s.ctx, &scoring.EditPlayerTotalsInput{
			Player: s.alice,
			Mode:   mode,
		})
		s.ErrorIs(err, scoring.ErrInvalidMode)
	}
}

func (s *ScoringServiceTestSuite) TestEditPlayerTotals_NegativeGamesPlayed() {
	_, err := s.scoringService.EditPlayerTotals(s.ctx, &scoring.EditPlayerTotalsInput{
		Player:      s.alice,
		Mode:        models.ModeThreePlayer,
		GamesPlayed: -1,
	})
	s.ErrorIs(err, scoring.ErrNegativeGamesPlayed)
}

func (s *ScoringServiceTestSuite) TestComputeLeaderboard() {
	existing := models.NewLedger()
	existing.Ensure(s.alice).ThreePlayer = models.ModeRecord{Points: 10, GamesPlayed: 4}
	bob := existing.Ensure(s.bob)
	bob.ThreePlayer = models.ModeRecord{Points: 10, GamesPlayed: 5}
	bob.FourPlayer = models.ModeRecord{Points: -2, GamesPlayed: 1}
	existing.Ensure(s.carol).FourPlayer = models.ModeRecord{Points: -4, GamesPlayed: 1}
	s.expectLoad(existing)

	board, err := s.scoringService.ComputeLeaderboard(s.ctx)
	s.Require().NoError(err)
	s.Equal(s.testTime, board.GeneratedAt)
	s.Require().Len(board.Rows, 3)

	rows := make(map[string]*models.LeaderboardRow)
	for _, row := range board.Rows {
		rows[row.ID] = row
	}

	alice := rows["111"]
	s.Equal(models.PPG{Value: 2.5, Valid: true}, alice.P3PPG)
	s.False(alice.P4PPG.Valid, "no four player games means no data, not zero")
	s.Equal(4, alice.TotalGamesPlayed)

	s.Equal(6, rows["222"].TotalGamesPlayed)

	// Both Alice and Bob share the top three player points
	s.Equal(models.MaxInt{Value: 10, Valid: true}, board.Maxima.P3Points)
	s.Equal(models.MaxPPG{Value: 2.5, Valid: true}, board.Maxima.P3PPG)
	s.Equal(models.MaxInt{Value: -2, Valid: true}, board.Maxima.P4Points)
	s.Equal(models.MaxPPG{Value: -2, Valid: true}, board.Maxima.P4PPG)

	s.Equal(models.Crowns{P3Points: true, P3PPG: true}, board.Crowns(alice))
	s.Equal(models.Crowns{P3Points: true, P4Points: true, P4PPG: true}, board.Crowns(rows["222"]))
	s.Equal(models.Crowns{}, board.Crowns(rows["333"]))
}

func (s *ScoringServiceTestSuite) TestComputeLeaderboard_Empty() {
	s.expectLoad(models.NewLedger())

	board, err := s.scoringService.ComputeLeaderboard(s.ctx)
	s.Require().NoError(err)
	s.Empty(board.Rows)
	s.False(board.Maxima.P3Points.Valid)
	s.False(board.Maxima.P4PPG.Valid)
}

func (s *ScoringServiceTestSuite) TestComputeLeaderboard_RecoveredLedger() {
	s.mockLedgerRepo.EXPECT().
		LoadLedger(gomock.Any(), gomock.Any()).
		Return(&ledgerRepo.LoadLedgerOutput{Ledger: models.NewLedger(), Recovered: true}, nil)

	board, err := s.scoringService.ComputeLeaderboard(s.ctx)
	s.Require().NoError(err)
	s.Empty(board.Rows)
}

func (s *ScoringServiceTestSuite) TestGetPlayerStats() {
	existing := models.NewLedger()
	existing.Ensure(s.alice).FourPlayer = models.ModeRecord{Points: 6, GamesPlayed: 3}
	s.expectLoad(existing)

	output, err := s.scoringService.GetPlayerStats(s.ctx, &scoring.GetPlayerStatsInput{PlayerID: "111"})
	s.Require().NoError(err)
	s.Equal("Alice", output.Row.Nickname)
	s.Equal(models.PPG{Value: 2, Valid: true}, output.Row.P4PPG)
}

func (s *ScoringServiceTestSuite) TestGetPlayerStats_NotFound() {
	s.expectLoad(models.NewLedger())

	_, err := s.scoringService.GetPlayerStats(s.ctx, &scoring.GetPlayerStatsInput{PlayerID: "111"})
	s.ErrorIs(err, scoring.ErrPlayerNotFound)
}

// memoryRepository is a goroutine-safe in-memory repository for exercising the service lock
type memoryRepository struct {
	mu     sync.Mutex
	ledger models.Ledger
}

func (r *memoryRepository) LoadLedger(_ context.Context, _ *ledgerRepo.LoadLedgerInput) (*ledgerRepo.LoadLedgerOutput, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return &ledgerRepo.LoadLedgerOutput{Ledger: r.ledger.Clone()}, nil
}

func (r *memoryRepository) SaveLedger(_ context.Context, input *ledgerRepo.SaveLedgerInput) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ledger = input.Ledger.Clone()
	return nil
}

func (s *ScoringServiceTestSuite) TestConcurrentMutationsApplySequentially() {
	repo := &memoryRepository{ledger: models.NewLedger()}
	s.mockNotifier.EXPECT().Notify().Times(50)

	svc, err := scoring.New(&scoring.Config{
		LedgerRepo: repo,
		Notifier:   s.mockNotifier,
		Clock:      s.mockClock,
	})
	s.Require().NoError(err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.RecordResult(s.ctx, &scoring.RecordResultInput{
				Players: []*models.Player{s.alice, s.bob, s.carol},
			})
			s.NoError(err)
		}()
	}
	wg.Wait()

	s.Equal(models.ModeRecord{Points: 100, GamesPlayed: 50}, repo.ledger["111"].ThreePlayer)
	s.Equal(models.ModeRecord{Points: 50, GamesPlayed: 50}, repo.ledger["222"].ThreePlayer)
	s.Equal(models.ModeRecord{Points: 0, GamesPlayed: 50}, repo.ledger["333"].ThreePlayer)
}
