package userdict

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps the user dictionary in a Redis list per profile so that
// insertion order survives a reload.
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore creates a RedisStore for profile on the provided client.
func NewRedisStore(client *redis.Client, profile string) *RedisStore {
	return &RedisStore{client: client, key: "medspell:userdict:" + profile}
}

// Load returns all words stored for the profile.
func (rs *RedisStore) Load(ctx context.Context) ([]string, error) {
	words, err := rs.client.LRange(ctx, rs.key, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	return clean(words), nil
}

// Save replaces the stored list atomically.
func (rs *RedisStore) Save(ctx context.Context, terms []string) error {
	_, err := rs.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Del(ctx, rs.key)
		if len(terms) > 0 {
			args := make([]any, len(terms))
			for i, t := range terms {
				args[i] = t
			}
			p.RPush(ctx, rs.key, args...)
		}
		return nil
	})
	return err
}
