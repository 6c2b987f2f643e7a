package cache

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-user-lookup/internal/domain/entity"
	"github.com/oksasatya/go-user-lookup/internal/domain/repository"
	"github.com/oksasatya/go-user-lookup/pkg/helpers"
)

type countingSource struct {
	connectErr error
	fetchErr   error
	fetches    int
	closed     bool
}

func (s *countingSource) Connect(context.Context) error { return s.connectErr }

func (s *countingSource) FetchByID(_ context.Context, id int64) (entity.Record, error) {
	s.fetches++
	if s.fetchErr != nil {
		return entity.Record{}, s.fetchErr
	}
	return entity.Record{ID: id, Name: "John Doe", Email: "john@example.com", Active: true}, nil
}

func (s *countingSource) Close() error {
	s.closed = true
	return nil
}

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := NewClient(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

func TestFetchByIDCachesRecords(t *testing.T) {
	mr, rdb := newRedis(t)
	inner := &countingSource{}
	src := NewRecordSource(inner, rdb, time.Minute, nil)
	ctx := context.Background()

	require.NoError(t, src.Connect(ctx))

	first, err := src.FetchByID(ctx, 7)
	require.NoError(t, err)
	second, err := src.FetchByID(ctx, 7)
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.Equal(t, 1, inner.fetches)
	require.True(t, mr.Exists("user:record:7"))
	require.Equal(t, time.Minute, mr.TTL("user:record:7"))

	mr.Del("user:record:7")
	_, err = src.FetchByID(ctx, 7)
	require.NoError(t, err)
	require.Equal(t, 2, inner.fetches)
}

func TestFetchByIDDoesNotCacheErrors(t *testing.T) {
	mr, rdb := newRedis(t)
	inner := &countingSource{fetchErr: repository.ErrNotFound}
	src := NewRecordSource(inner, rdb, 0, nil)

	_, err := src.FetchByID(context.Background(), 9)
	require.ErrorIs(t, err, repository.ErrNotFound)
	require.False(t, mr.Exists("user:record:9"))
	require.Equal(t, DefaultTTL, src.TTL)
}

func TestCorruptEntryFallsBackToInner(t *testing.T) {
	mr, rdb := newRedis(t)
	inner := &countingSource{}
	src := NewRecordSource(inner, rdb, time.Minute, nil)
	require.NoError(t, mr.Set("user:record:4", "not json"))

	rec, err := src.FetchByID(context.Background(), 4)
	require.NoError(t, err)
	require.Equal(t, int64(4), rec.ID)
	require.Equal(t, 1, inner.fetches)

	// the fresh record replaced the corrupt entry
	_, err = src.FetchByID(context.Background(), 4)
	require.NoError(t, err)
	require.Equal(t, 1, inner.fetches)
}

func TestConnectPropagatesInnerFailure(t *testing.T) {
	_, rdb := newRedis(t)
	inner := &countingSource{connectErr: repository.ErrConnection}
	err := NewRecordSource(inner, rdb, time.Minute, nil).Connect(context.Background())
	require.ErrorIs(t, err, repository.ErrConnection)
}

func TestRedisOutageFailsOpen(t *testing.T) {
	mr, rdb := newRedis(t)
	var logs bytes.Buffer
	logger := helpers.NewLogger("test", "test", "line", "info", &logs)
	inner := &countingSource{}
	src := NewRecordSource(inner, rdb, time.Minute, logger)

	mr.Close()

	require.NoError(t, src.Connect(context.Background()))
	for i := 0; i < 2; i++ {
		rec, err := src.FetchByID(context.Background(), 3)
		require.NoError(t, err)
		require.Equal(t, int64(3), rec.ID)
	}
	require.Equal(t, 2, inner.fetches)

	// one line per outage, on the info level
	lines := bytes.Split(bytes.TrimSuffix(logs.Bytes(), []byte("\n")), []byte("\n"))
	require.Len(t, lines, 1)
	require.True(t, bytes.HasPrefix(lines[0], []byte("[INFO] record cache unavailable, serving uncached: ")))
}

func TestRedisRecoveryIsLogged(t *testing.T) {
	mr, rdb := newRedis(t)
	var logs bytes.Buffer
	logger := helpers.NewLogger("test", "test", "line", "info", &logs)
	src := NewRecordSource(&countingSource{}, rdb, time.Minute, logger)
	ctx := context.Background()

	require.NoError(t, rdb.Ping(ctx).Err())
	mr.SetError("ERR cache offline")
	_, err := src.FetchByID(ctx, 1)
	require.NoError(t, err)
	mr.SetError("")
	_, err = src.FetchByID(ctx, 1)
	require.NoError(t, err)

	require.Contains(t, logs.String(), "[INFO] record cache unavailable, serving uncached: ")
	require.Contains(t, logs.String(), "[INFO] record cache recovered\n")
	require.NotContains(t, logs.String(), "[ERROR]")
}

func TestCloseClosesInner(t *testing.T) {
	_, rdb := newRedis(t)
	inner := &countingSource{}
	require.NoError(t, NewRecordSource(inner, rdb, time.Minute, nil).Close())
	require.True(t, inner.closed)
}
