package ledger

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/KirkDiggler/tabletally/internal/models"
	"go.etcd.io/bbolt"
)

const ledgerBucket = "ledger"

// BoltConfig holds configuration for the bbolt ledger repository
type BoltConfig struct {
	// Path of the database file
	Path string

	// Timeout waiting for the file lock; defaults to one second
	Timeout time.Duration
}

// BoltRepository stores one bucket key per player in an embedded bbolt database
type BoltRepository struct {
	db *bbolt.DB
}

// OpenBolt opens a bbolt-backed ledger repository at the configured path
func OpenBolt(cfg *BoltConfig) (*BoltRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if strings.TrimSpace(cfg.Path) == "" {
		return nil, errors.New("path cannot be empty")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = time.Second
	}

	db, err := bbolt.Open(filepath.Clean(cfg.Path), 0o600, &bbolt.Options{Timeout: timeout})
	if err != nil {
		return nil, fmt.Errorf("%w: open ledger db: %w", ErrPersistenceUnavailable, err)
	}

	repo := &BoltRepository{db: db}
	if err := repo.ensureBucket(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return repo, nil
}

// Close closes the underlying database
func (r *BoltRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

// LoadLedger reads every entry inside a single read transaction
func (r *BoltRepository) LoadLedger(ctx context.Context, input *LoadLedgerInput) (*LoadLedgerOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ledger := models.NewLedger()
	err := r.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(ledgerBucket))
		if bucket == nil {
			return fmt.Errorf("%w: ledger bucket is missing", ErrPersistenceUnavailable)
		}
		return bucket.ForEach(func(k, v []byte) error {
			entry, err := decodeEntry(string(k), v)
			if err != nil {
				return err
			}
			ledger[entry.ID] = entry
			return nil
		})
	})
	if err != nil {
		if errors.Is(err, ErrMalformedState) {
			log.Printf("Error decoding ledger from bolt, starting from an empty ledger: %v", err)
			return &LoadLedgerOutput{
				Ledger:    models.NewLedger(),
				Recovered: true,
			}, nil
		}
		if errors.Is(err, ErrPersistenceUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrPersistenceUnavailable, err)
	}

	return &LoadLedgerOutput{
		Ledger: ledger,
	}, nil
}

// SaveLedger replaces the bucket contents inside a single write transaction
func (r *BoltRepository) SaveLedger(ctx context.Context, input *SaveLedgerInput) error {
	if input == nil || input.Ledger == nil {
		return errors.New("input and ledger cannot be nil")
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	err := r.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(ledgerBucket))
		if bucket == nil {
			return errors.New("ledger bucket is missing")
		}

		var stale [][]byte
		err := bucket.ForEach(func(k, _ []byte) error {
			if _, ok := input.Ledger[string(k)]; !ok {
				stale = append(stale, append([]byte(nil), k...))
			}
			return nil
		})
		if err != nil {
			return err
		}
		for _, k := range stale {
			if err := bucket.Delete(k); err != nil {
				return err
			}
		}

		for id, entry := range input.Ledger {
			payload, err := encodeEntry(entry)
			if err != nil {
				return err
			}
			if err := bucket.Put([]byte(id), payload); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: failed to save ledger: %w", ErrPersistenceUnavailable, err)
	}

	return nil
}

func (r *BoltRepository) ensureBucket() error {
	return r.db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(ledgerBucket)); err != nil {
			return fmt.Errorf("create ledger bucket: %w", err)
		}
		return nil
	})
}
