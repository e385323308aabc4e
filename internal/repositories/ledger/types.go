package ledger

import "github.com/KirkDiggler/tabletally/internal/models"

// LoadLedgerInput contains parameters for loading the ledger
type LoadLedgerInput struct{}

// LoadLedgerOutput contains the result of loading the ledger
type LoadLedgerOutput struct {
	Ledger models.Ledger

	// Recovered is set when stored data was malformed and replaced with an empty ledger
	Recovered bool
}

// SaveLedgerInput contains parameters for saving the ledger
type SaveLedgerInput struct {
	Ledger models.Ledger
}
