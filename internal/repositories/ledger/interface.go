package ledger

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/tabletally/internal/repositories/ledger Repository

import (
	"context"
)

// Repository defines the interface for scoring ledger persistence.
// Implementations always load and save the whole ledger.
type Repository interface {
	// LoadLedger reads the current ledger. Missing state yields an empty ledger.
	// Malformed state yields an empty ledger with Recovered set.
	LoadLedger(ctx context.Context, input *LoadLedgerInput) (*LoadLedgerOutput, error)

	// SaveLedger replaces the persisted ledger
	SaveLedger(ctx context.Context, input *SaveLedgerInput) error
}
