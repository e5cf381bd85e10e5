package main

import (
	"context"
	"fmt"
	"os"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"medspell/internal/config"
	"medspell/internal/dictionary"
	"medspell/internal/session"
	"medspell/internal/settings"
	"medspell/internal/userdict"
)

// app holds the collaborators shared by every command.
type app struct {
	cfg      *config.Config
	log      zerolog.Logger
	dict     *dictionary.Store
	engine   *session.Engine
	settings settings.Store
	closers  []func()
}

func newLogger(level, format string) zerolog.Logger {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	if format != "json" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	return logger.Level(lvl)
}

func openApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	a := &app{cfg: cfg, log: newLogger(cfg.LogLevel, cfg.LogFormat)}

	if cfg.Storage != "memory" {
		if err := cfg.ResolveProfile(); err != nil {
			return nil, err
		}
	}

	terms, err := a.openStores(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}

	a.dict, err = dictionary.Open(ctx, terms,
		dictionary.WithLogger(a.log),
		dictionary.WithWordFiles(cfg.WordFiles()...),
	)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.engine = session.NewEngine(a.dict, nil)

	a.log.Debug().
		Str("storage", cfg.Storage).
		Str("profile", cfg.Profile).
		Int("user_terms", a.dict.Len(dictionary.User)).
		Msg("dictionary ready")
	return a, nil
}

func (a *app) openStores(ctx context.Context) (dictionary.TermStore, error) {
	cfg := a.cfg
	switch cfg.Storage {
	case "memory":
		a.settings = settings.NewMemoryStore(settings.Defaults())
		return userdict.NewMemoryStore(), nil

	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		a.closers = append(a.closers, func() { client.Close() })
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("connect to redis: %w", err)
		}
		a.log.Info().Str("addr", cfg.RedisAddr).Msg("connected to redis")
		a.settings = settings.NewRedisStore(client, cfg.Profile, a.log)
		return userdict.NewRedisStore(client, cfg.Profile), nil

	case "postgres":
		pool, err := userdict.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, pool.Close)
		a.log.Info().Msg("connected to database")
		store := userdict.NewPostgresStore(pool, cfg.Profile)
		if err := store.EnsureSchema(ctx); err != nil {
			return nil, err
		}
		// settings are per device and stay on disk
		a.settings = settings.NewFileStore(cfg.SettingsPath(), a.log)
		return store, nil

	default:
		a.settings = settings.NewFileStore(cfg.SettingsPath(), a.log)
		return userdict.NewFileStore(cfg.UserDictPath(), cfg.Profile, a.log), nil
	}
}

func (a *app) newSession(host session.Host, src session.SettingsSource) *session.Session {
	return session.New(a.engine, host, src, session.WithLogger(a.log))
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}
