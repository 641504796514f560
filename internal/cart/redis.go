package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const cartKeyFormat = "cart:%d:%s"

type redisStorage struct {
	rdb *redis.Client
}

// NewRedisStorage returns a Storage backed by Redis. Records are plain string
// values keyed cart:{userID}:{record} with no expiry, matching the durable
// client-side storage they replace.
func NewRedisStorage(rdb *redis.Client) Storage {
	return &redisStorage{rdb: rdb}
}

func (s *redisStorage) Load(ctx context.Context, userID uint, record string) ([]byte, error) {
	data, err := s.rdb.Get(ctx, key(userID, record)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedLoadCart, err)
	}
	return data, nil
}

func (s *redisStorage) Save(ctx context.Context, userID uint, record string, data []byte) error {
	if err := s.rdb.Set(ctx, key(userID, record), data, 0).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedSaveCart, err)
	}
	return nil
}

func (s *redisStorage) Delete(ctx context.Context, userID uint, records ...string) error {
	keys := make([]string, 0, len(records))
	for _, r := range records {
		keys = append(keys, key(userID, r))
	}
	return s.rdb.Del(ctx, keys...).Err()
}

func key(userID uint, record string) string {
	return fmt.Sprintf(cartKeyFormat, userID, record)
}
