package messaging

import (
	"github.com/KirkDiggler/tabletally/internal/models"
	"github.com/KirkDiggler/tabletally/internal/services/scoring"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"

	// ToneCelebration is a celebratory tone
	ToneCelebration MessageTone = "celebration"
)

// ServiceConfig holds configuration for the messaging service
type ServiceConfig struct {
	// Optional seed for testing
	Seed int64
}

// GetGameRecordedMessageInput contains parameters for a recorded game reply
type GetGameRecordedMessageInput struct {
	// Result is what the scoring service recorded
	Result *scoring.RecordResultOutput

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetGameRecordedMessageOutput contains the recorded game reply
type GetGameRecordedMessageOutput struct {
	// Title is a short headline
	Title string

	// Message lists every placement and the points it earned
	Message string

	// Flavor is a one-line remark about the winner
	Flavor string

	// Tone is the tone of the message
	Tone MessageTone
}

// GetTotalsEditedMessageInput contains parameters for an edit reply
type GetTotalsEditedMessageInput struct {
	// PlayerMention is how to refer to the edited player
	PlayerMention string

	Mode        models.Mode
	Points      int
	GamesPlayed int
}

// GetTotalsEditedMessageOutput contains the edit reply
type GetTotalsEditedMessageOutput struct {
	Message string
}

// GetErrorMessageInput contains parameters for getting an error message
type GetErrorMessageInput struct {
	// Err is the error to explain
	Err error

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetErrorMessageOutput contains the result of getting an error message
type GetErrorMessageOutput struct {
	// Message explains what went wrong
	Message string

	// Tone is the tone of the message
	Tone MessageTone
}
