package userdict

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medspell/internal/dictionary"
)

var (
	_ dictionary.TermStore = (*RedisStore)(nil)
	_ dictionary.TermStore = (*FileStore)(nil)
	_ dictionary.TermStore = (*PostgresStore)(nil)
	_ dictionary.TermStore = (*MemoryStore)(nil)
)

func TestRedisStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	rs := NewRedisStore(client, "ward-3")
	words, err := rs.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, words)

	require.NoError(t, rs.Save(ctx, []string{"zeta", "alfa", "meio"}))
	words, err = rs.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"zeta", "alfa", "meio"}, words)

	require.NoError(t, rs.Save(ctx, []string{"alfa"}))
	words, err = rs.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alfa"}, words)

	require.NoError(t, rs.Save(ctx, nil))
	assert.False(t, mr.Exists("medspell:userdict:ward-3"))
}

func TestRedisStoreUnavailable(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()
	mr.Close()

	_, err := NewRedisStore(client, "p").Load(context.Background())
	assert.Error(t, err)
}

func TestRedisStoreWithDictionary(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	d, err := dictionary.Open(ctx, NewRedisStore(client, "p"))
	require.NoError(t, err)
	require.NoError(t, d.AddUserTerm(ctx, "Xyzmed"))

	reopened, err := dictionary.Open(ctx, NewRedisStore(client, "p"))
	require.NoError(t, err)
	assert.True(t, reopened.IsKnown("xyzmed"))
	assert.Equal(t, []string{"xyzmed"}, reopened.ListUserTerms())
}

func TestFileStore(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "profile", "userdict.json")
	fs := NewFileStore(path, "tablet-7", zerolog.Nop())

	words, err := fs.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, words)

	require.NoError(t, fs.Save(ctx, []string{"beta", "alfa"}))
	words, err = fs.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"beta", "alfa"}, words)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"profile": "tablet-7"`)

	require.NoError(t, fs.Save(ctx, nil))
	words, err = fs.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, words)
}

func TestFileStoreTolerance(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"corrupt", `{"words": ["a",`, nil},
		{"not an object", `[1,2,3]`, nil},
		{"words not array", `{"words": "alfa"}`, nil},
		{"mixed types", `{"words": ["alfa", 3, null, "beta", "alfa", " "]}`, []string{"alfa", "beta"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "userdict.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))
			words, err := NewFileStore(path, "p", zerolog.Nop()).Load(context.Background())
			require.NoError(t, err)
			if tt.want == nil {
				assert.Empty(t, words)
			} else {
				assert.Equal(t, tt.want, words)
			}
		})
	}
}

type fakeRow struct {
	terms []string
	err   error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*[]string)) = r.terms
	return nil
}

type fakeDB struct {
	rows  map[string][]string
	execs []string
	err   error
}

func (f *fakeDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.execs = append(f.execs, sql)
	if f.err != nil {
		return pgconn.CommandTag{}, f.err
	}
	if len(args) == 2 {
		f.rows[args[0].(string)] = args[1].([]string)
	}
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func (f *fakeDB) QueryRow(_ context.Context, _ string, args ...any) pgx.Row {
	if f.err != nil {
		return fakeRow{err: f.err}
	}
	terms, ok := f.rows[args[0].(string)]
	if !ok {
		return fakeRow{err: pgx.ErrNoRows}
	}
	return fakeRow{terms: terms}
}

func TestPostgresStore(t *testing.T) {
	ctx := context.Background()
	db := &fakeDB{rows: map[string][]string{}}
	ps := NewPostgresStore(db, "clinic-a")

	require.NoError(t, ps.EnsureSchema(ctx))
	assert.Contains(t, db.execs[0], "CREATE TABLE IF NOT EXISTS user_dictionary")

	words, err := ps.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, words)

	require.NoError(t, ps.Save(ctx, []string{"alfa", "beta"}))
	words, err = ps.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alfa", "beta"}, words)

	require.NoError(t, ps.Save(ctx, nil))
	assert.Equal(t, []string{}, db.rows["clinic-a"])
}

func TestPostgresStoreErrors(t *testing.T) {
	ctx := context.Background()
	db := &fakeDB{rows: map[string][]string{}, err: errors.New("connection reset")}
	ps := NewPostgresStore(db, "clinic-a")

	_, err := ps.Load(ctx)
	assert.Error(t, err)
	assert.Error(t, ps.Save(ctx, []string{"x"}))
	assert.Error(t, ps.EnsureSchema(ctx))
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore("alfa", "alfa", "")
	words, err := m.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alfa"}, words)

	require.NoError(t, m.Save(ctx, []string{"beta"}))
	words, _ = m.Load(ctx)
	assert.Equal(t, []string{"beta"}, words)
	assert.Equal(t, 1, m.Saves())
}
