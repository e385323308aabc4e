package ledger

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/KirkDiggler/tabletally/internal/models"
)

// decodeLedger parses a whole-ledger JSON document
func decodeLedger(data []byte) (models.Ledger, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return models.NewLedger(), nil
	}

	var ledger models.Ledger
	if err := json.Unmarshal(data, &ledger); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedState, err)
	}
	if ledger == nil {
		return nil, fmt.Errorf("%w: ledger is null", ErrMalformedState)
	}

	for id, entry := range ledger {
		if entry == nil {
			return nil, fmt.Errorf("%w: entry %s is null", ErrMalformedState, id)
		}
		entry.ID = id
	}

	return ledger, nil
}

// decodeEntry parses a single entry stored under its player ID
func decodeEntry(id string, data []byte) (*models.LedgerEntry, error) {
	var entry *models.LedgerEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("%w: entry %s: %v", ErrMalformedState, id, err)
	}
	if entry == nil {
		return nil, fmt.Errorf("%w: entry %s is null", ErrMalformedState, id)
	}
	entry.ID = id
	return entry, nil
}

func encodeEntry(entry *models.LedgerEntry) ([]byte, error) {
	payload, err := json.Marshal(entry)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entry %s: %w", entry.ID, err)
	}
	return payload, nil
}
