package userdict

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is the subset of *pgxpool.Pool used by PostgresStore.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const schemaSQL = `CREATE TABLE IF NOT EXISTS user_dictionary (
	profile    TEXT PRIMARY KEY,
	terms      TEXT[] NOT NULL DEFAULT '{}',
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// PostgresStore keeps one row per profile with the terms in order.
type PostgresStore struct {
	db      Querier
	profile string
}

func NewPostgresStore(db Querier, profile string) *PostgresStore {
	return &PostgresStore{db: db, profile: profile}
}

func NewPool(ctx context.Context, databaseURL string, maxConns, minConns int32) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	cfg.MaxConns = maxConns
	cfg.MinConns = minConns

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return pool, nil
}

// EnsureSchema creates the user_dictionary table when missing.
func (ps *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := ps.db.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create user_dictionary: %w", err)
	}
	return nil
}

func (ps *PostgresStore) Load(ctx context.Context) ([]string, error) {
	var terms []string
	err := ps.db.QueryRow(ctx,
		`SELECT terms FROM user_dictionary WHERE profile = $1`, ps.profile).Scan(&terms)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load user dictionary: %w", err)
	}
	return clean(terms), nil
}

func (ps *PostgresStore) Save(ctx context.Context, terms []string) error {
	if terms == nil {
		terms = []string{}
	}
	_, err := ps.db.Exec(ctx,
		`INSERT INTO user_dictionary (profile, terms, updated_at) VALUES ($1, $2, now())
		 ON CONFLICT (profile) DO UPDATE SET terms = EXCLUDED.terms, updated_at = now()`,
		ps.profile, terms)
	if err != nil {
		return fmt.Errorf("save user dictionary: %w", err)
	}
	return nil
}
