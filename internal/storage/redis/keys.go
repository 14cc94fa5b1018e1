package redis

import (
	"fmt"

	"github.com/mcoot/seabattle-go/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "seabattle"

// gameKey returns the Redis key for a running Game
func (s *Storage) gameKey(id model.GameID) string {
	return fmt.Sprintf("%s:%s:game:%s", keyPrefix, s.cfg.Namespace, id)
}

// summaryKey returns the Redis key for a GameSummary
func (s *Storage) summaryKey(id model.GameID) string {
	return fmt.Sprintf("%s:%s:summary:%s", keyPrefix, s.cfg.Namespace, id)
}

// summaryIndexKey returns the Redis key for the ZSET ordering summaries by completion
func (s *Storage) summaryIndexKey() string {
	return fmt.Sprintf("%s:%s:idx:summaries", keyPrefix, s.cfg.Namespace)
}

// summarySeqKey returns the Redis key for the completion counter
func (s *Storage) summarySeqKey() string {
	return fmt.Sprintf("%s:%s:seq:summaries", keyPrefix, s.cfg.Namespace)
}
