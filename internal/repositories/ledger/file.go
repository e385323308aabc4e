package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/KirkDiggler/tabletally/internal/models"
)

// FileConfig holds configuration for the JSON file ledger repository
type FileConfig struct {
	// Path of the JSON document holding the ledger
	Path string
}

// fileRepository stores the ledger as a single JSON object on disk
type fileRepository struct {
	path string
}

// NewFile creates a new file-backed ledger repository
func NewFile(cfg *FileConfig) (*fileRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if strings.TrimSpace(cfg.Path) == "" {
		return nil, errors.New("path cannot be empty")
	}

	return &fileRepository{
		path: filepath.Clean(cfg.Path),
	}, nil
}

// LoadLedger reads the ledger from disk
func (r *fileRepository) LoadLedger(ctx context.Context, input *LoadLedgerInput) (*LoadLedgerOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &LoadLedgerOutput{
				Ledger: models.NewLedger(),
			}, nil
		}
		return nil, fmt.Errorf("%w: read %s: %w", ErrPersistenceUnavailable, r.path, err)
	}

	ledger, err := decodeLedger(data)
	if err != nil {
		log.Printf("Error decoding ledger from %s, starting from an empty ledger: %v", r.path, err)
		return &LoadLedgerOutput{
			Ledger:    models.NewLedger(),
			Recovered: true,
		}, nil
	}

	return &LoadLedgerOutput{
		Ledger: ledger,
	}, nil
}

// SaveLedger writes the ledger to a temporary file and renames it into place,
// so readers never observe a partially written document
func (r *fileRepository) SaveLedger(ctx context.Context, input *SaveLedgerInput) error {
	if input == nil || input.Ledger == nil {
		return errors.New("input and ledger cannot be nil")
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := json.MarshalIndent(input.Ledger, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal ledger: %w", err)
	}

	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %w", ErrPersistenceUnavailable, err)
	}
	tmpPath := tmp.Name()

	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: chmod %s: %w", ErrPersistenceUnavailable, tmpPath, err)
	}

	if _, err := tmp.Write(payload); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: write %s: %w", ErrPersistenceUnavailable, tmpPath, err)
	}

	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: sync %s: %w", ErrPersistenceUnavailable, tmpPath, err)
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: close %s: %w", ErrPersistenceUnavailable, tmpPath, err)
	}

	if err := os.Rename(tmpPath, r.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: rename into %s: %w", ErrPersistenceUnavailable, r.path, err)
	}

	return nil
}
