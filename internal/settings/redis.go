package settings

import (
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// RedisStore keeps Settings in a hash, one per profile.
type RedisStore struct {
	client *redis.Client
	key    string
	log    zerolog.Logger
}

func NewRedisStore(client *redis.Client, profile string, log zerolog.Logger) *RedisStore {
	return &RedisStore{client: client, key: "medspell:settings:" + profile, log: log}
}

func (rs *RedisStore) Load(ctx context.Context) Settings {
	fields, err := rs.client.HGetAll(ctx, rs.key).Result()
	if err != nil {
		rs.log.Warn().Err(err).Str("key", rs.key).Msg("settings unavailable, using defaults")
		return Defaults()
	}
	s := Defaults()
	for k, v := range fields {
		if err := s.Set(k, v); err != nil {
			rs.log.Warn().Err(err).Str("key", rs.key).Msg("ignoring stored setting")
		}
	}
	return s
}

func (rs *RedisStore) Save(ctx context.Context, s Settings) error {
	return rs.client.HSet(ctx, rs.key,
		"enabled", strconv.FormatBool(s.Enabled),
		"auto_correct", strconv.FormatBool(s.AutoCorrect),
		"use_medical_dictionary", strconv.FormatBool(s.UseMedicalDictionary),
	).Err()
}
