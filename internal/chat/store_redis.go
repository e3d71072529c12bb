package chat

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const transcriptTTL = 7 * 24 * time.Hour

type redisStore struct {
	rdb *redis.Client
}

// NewRedisStore returns a transcript store backed by Redis, so chats
// survive application restarts. Entries expire after a week of inactivity.
func NewRedisStore(redisURL string) (Store, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	return &redisStore{rdb: redis.NewClient(opts)}, nil
}

func (s *redisStore) key(gameID string) string {
	return "chat:" + strings.TrimSpace(gameID)
}

func (s *redisStore) Append(ctx context.Context, gameID string, msg Message) error {
	raw, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	key := s.key(gameID)
	if err := s.rdb.RPush(ctx, key, raw).Err(); err != nil {
		return err
	}
	return s.rdb.Expire(ctx, key, transcriptTTL).Err()
}

func (s *redisStore) History(ctx context.Context, gameID string) ([]Message, error) {
	raws, err := s.rdb.LRange(ctx, s.key(gameID), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	msgs := make([]Message, 0, len(raws))
	for _, raw := range raws {
		var m Message
		if err := json.Unmarshal([]byte(raw), &m); err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	return msgs, nil
}

func (s *redisStore) Clear(ctx context.Context, gameID string) error {
	return s.rdb.Del(ctx, s.key(gameID)).Err()
}
