package messaging

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetGameRecordedMessage returns the reply for a recorded game
	GetGameRecordedMessage(ctx context.Context, input *GetGameRecordedMessageInput) (*GetGameRecordedMessageOutput, error)

	// GetTotalsEditedMessage returns the reply for an administrative edit
	GetTotalsEditedMessage(ctx context.Context, input *GetTotalsEditedMessageInput) (*GetTotalsEditedMessageOutput, error)

	// GetErrorMessage returns a user-friendly error message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
