package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/mcoot/seabattle-go/internal/model"
	"github.com/mcoot/seabattle-go/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
// Games are decoded fresh on every read, so callers must re-fetch after a write.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connecting to redis at %s: %w", opts.Addr, err)
	}

	return NewWithClient(client, cfg), nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	if cfg.Namespace == "" {
		cfg.Namespace = uuid.NewString()
	}
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Namespace returns the key scope of this session
func (s *Storage) Namespace() string {
	return s.cfg.Namespace
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Game operations

func (s *Storage) SaveGame(ctx context.Context, game *model.Game) error {
	data, err := json.Marshal(game)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, s.gameKey(game.ID), data, s.cfg.GameTTL).Err()
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	data, err := s.client.Get(ctx, s.gameKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrGameNotFound
		}
		return nil, err
	}

	var game model.Game
	if err := json.Unmarshal(data, &game); err != nil {
		return nil, err
	}
	if game.Shots == nil {
		game.Shots = make(map[model.Side]int)
	}
	return &game, nil
}

func (s *Storage) DeleteGame(ctx context.Context, id model.GameID) error {
	return s.client.Del(ctx, s.gameKey(id)).Err()
}

// Summary operations

func (s *Storage) SaveSummary(ctx context.Context, summary *model.GameSummary) error {
	data, err := json.Marshal(summary)
	if err != nil {
		return err
	}

	seq, err := s.client.Incr(ctx, s.summarySeqKey()).Result()
	if err != nil {
		return err
	}

	// Re-saving a summary replaces the record but keeps its first position
	indexKey := s.summaryIndexKey()
	pipe := s.client.Pipeline()
	pipe.Set(ctx, s.summaryKey(summary.ID), data, s.cfg.SummaryTTL)
	pipe.ZAddNX(ctx, indexKey, redis.Z{Score: float64(seq), Member: string(summary.ID)})
	pipe.Expire(ctx, indexKey, s.cfg.SummaryTTL)
	pipe.Expire(ctx, s.summarySeqKey(), s.cfg.SummaryTTL)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) ListSummaries(ctx context.Context) ([]*model.GameSummary, error) {
	ids, err := s.client.ZRange(ctx, s.summaryIndexKey(), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return []*model.GameSummary{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = s.summaryKey(model.GameID(id))
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	summaries := make([]*model.GameSummary, 0, len(values))
	for _, val := range values {
		raw, ok := val.(string)
		if !ok {
			continue // Summary may have expired
		}
		var summary model.GameSummary
		if err := json.Unmarshal([]byte(raw), &summary); err != nil {
			return nil, err
		}
		summaries = append(summaries, &summary)
	}

	return summaries, nil
}
