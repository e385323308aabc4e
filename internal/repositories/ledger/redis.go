package ledger

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/KirkDiggler/tabletally/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// DefaultRedisKey is the hash holding one field per player
	DefaultRedisKey = "tabletally:ledger"
)

// RedisConfig holds configuration for the Redis ledger repository
type RedisConfig struct {
	// Redis client
	RedisClient *redis.Client

	// Key of the hash holding the ledger; defaults to DefaultRedisKey
	Key string
}

// redisRepository implements the Repository interface using a Redis hash
type redisRepository struct {
	client *redis.Client
	key    string
}

// NewRedis creates a new Redis-backed ledger repository
func NewRedis(cfg *RedisConfig) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	key := strings.TrimSpace(cfg.Key)
	if key == "" {
		key = DefaultRedisKey
	}

	return &redisRepository{
		client: cfg.RedisClient,
		key:    key,
	}, nil
}

// LoadLedger reads every entry with a single HGETALL
func (r *redisRepository) LoadLedger(ctx context.Context, input *LoadLedgerInput) (*LoadLedgerOutput, error) {
	fields, err := r.client.HGetAll(ctx, r.key).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get ledger: %w", ErrPersistenceUnavailable, err)
	}

	ledger := models.NewLedger()
	for id, payload := range fields {
		entry, err := decodeEntry(id, []byte(payload))
		if err != nil {
			log.Printf("Error decoding ledger from Redis key %s, starting from an empty ledger: %v", r.key, err)
			return &LoadLedgerOutput{
				Ledger:    models.NewLedger(),
				Recovered: true,
			}, nil
		}
		ledger[id] = entry
	}

	return &LoadLedgerOutput{
		Ledger: ledger,
	}, nil
}

// SaveLedger replaces the hash inside a MULTI/EXEC transaction
func (r *redisRepository) SaveLedger(ctx context.Context, input *SaveLedgerInput) error {
	if input == nil || input.Ledger == nil {
		return errors.New("input and ledger cannot be nil")
	}

	values := make(map[string]interface{}, len(input.Ledger))
	for id, entry := range input.Ledger {
		payload, err := encodeEntry(entry)
		if err != nil {
			return err
		}
		values[id] = payload
	}

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, r.key)
		if len(values) > 0 {
			pipe.HSet(ctx, r.key, values)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: failed to save ledger: %w", ErrPersistenceUnavailable, err)
	}

	return nil
}
