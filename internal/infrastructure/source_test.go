package infrastructure

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-user-lookup/config"
	"github.com/oksasatya/go-user-lookup/internal/infrastructure/cache"
	"github.com/oksasatya/go-user-lookup/internal/infrastructure/mock"
	"github.com/oksasatya/go-user-lookup/internal/infrastructure/postgres"
)

func TestNewRecordSourceSelectsVariant(t *testing.T) {
	cfg := &config.Config{RecordSource: SourceMock}
	src, err := NewRecordSource(cfg, nil, nil)
	require.NoError(t, err)
	require.IsType(t, &mock.RecordSource{}, src)

	cfg.RecordSource = SourcePostgres
	src, err = NewRecordSource(cfg, nil, nil)
	require.NoError(t, err)
	require.IsType(t, &postgres.RecordSource{}, src)

	cfg.RecordSource = "mysql"
	_, err = NewRecordSource(cfg, nil, nil)
	require.ErrorContains(t, err, `unknown record source "mysql"`)
}

func TestNewRecordSourceWrapsInCache(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer func() { _ = rdb.Close() }()

	src, err := NewRecordSource(&config.Config{}, nil, rdb)
	require.NoError(t, err)
	cached, ok := src.(*cache.RecordSource)
	require.True(t, ok)
	require.IsType(t, &mock.RecordSource{}, cached.Inner)
}
