package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/KirkDiggler/tabletally/internal/services/scoring"
)

// service implements the Service interface
type service struct {
	// mu guards rand, which is not safe for concurrent use
	mu   sync.Mutex
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	var seed int64
	if config != nil && config.Seed != 0 {
		seed = config.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &service{
		rand: rand.New(rand.NewSource(seed)),
	}, nil
}

// GetGameRecordedMessage returns the reply for a recorded game
func (s *service) GetGameRecordedMessage(ctx context.Context, input *GetGameRecordedMessageInput) (*GetGameRecordedMessageOutput, error) {
	if input == nil || input.Result == nil || len(input.Result.Placements) == 0 {
		return nil, errors.New("input and result cannot be empty")
	}

	tone := input.PreferredTone
	if tone == "" {
		tone = ToneCelebration
	}

	result := input.Result
	var lines []string
	for _, placement := range result.Placements {
		lines = append(lines, fmt.Sprintf("%d. %s: %+d points (%d total in %d games)",
			placement.Rank,
			placement.Player.Nickname,
			placement.PointsAwarded,
			placement.Record.Points,
			placement.Record.GamesPlayed,
		))
	}

	winner := result.Placements[0].Player.Nickname
	var messages []string
	switch tone {
	case ToneNeutral:
		messages = []string{
			fmt.Sprintf("%s finished first.", winner),
		}
	case ToneFunny:
		messages = []string{
			fmt.Sprintf("%s would like everyone to know they won. Loudly.", winner),
			fmt.Sprintf("Somebody check %s's sleeves for extra cards.", winner),
			fmt.Sprintf("%s wins. The rest of you have some thinking to do.", winner),
		}
	default:
		messages = []string{
			fmt.Sprintf("Congratulations %s, the table is yours!", winner),
			fmt.Sprintf("%s takes the crown this round!", winner),
			fmt.Sprintf("Another one for %s. Well played!", winner),
			fmt.Sprintf("%s came, saw, and conquered.", winner),
		}
	}

	return &GetGameRecordedMessageOutput{
		Title:   fmt.Sprintf("Game recorded for %d players", len(result.Placements)),
		Message: strings.Join(lines, "\n"),
		Flavor:  s.pick(messages),
		Tone:    tone,
	}, nil
}

// GetTotalsEditedMessage returns the reply for an administrative edit
func (s *service) GetTotalsEditedMessage(ctx context.Context, input *GetTotalsEditedMessageInput) (*GetTotalsEditedMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	return &GetTotalsEditedMessageOutput{
		Message: fmt.Sprintf("%s's score for %s games has been updated to %d points in %d games played.",
			input.PlayerMention, input.Mode, input.Points, input.GamesPlayed),
	}, nil
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	tone := input.PreferredTone
	if tone == "" {
		tone = ToneFunny
	}

	// Select messages based on error type
	var messages []string
	switch {
	case errors.Is(input.Err, scoring.ErrInvalidPlayerCount):
		messages = []string{
			"Only 3 to 4 unique players allowed.",
		}
	case errors.Is(input.Err, scoring.ErrDuplicatePlayer):
		messages = []string{
			"Only 3 to 4 unique players allowed. Nobody gets to finish twice!",
			"Only 3 to 4 unique players allowed. Cloning yourself does not count.",
		}
	case errors.Is(input.Err, scoring.ErrMissingPlayerID):
		messages = []string{
			"Every player needs to be a Discord user.",
		}
	case errors.Is(input.Err, scoring.ErrInvalidMode):
		messages = []string{
			"Player count must be between 3 and 4.",
		}
	case errors.Is(input.Err, scoring.ErrNegativeGamesPlayed):
		messages = []string{
			"Games played cannot be negative.",
		}
	case errors.Is(input.Err, scoring.ErrPlayerNotFound):
		messages = []string{
			"That player has not played any games yet.",
			"No games on record for that player. Yet.",
		}
	default:
		messages = []string{
			"Something went wrong! Try again later.",
			"Oops! The scoresheet got smudged. Try again.",
			"Technical difficulties! The scorekeeper is sharpening their pencil.",
		}
	}

	return &GetErrorMessageOutput{
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}

// pick selects a random message
func (s *service) pick(messages []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return messages[s.rand.Intn(len(messages))]
}
