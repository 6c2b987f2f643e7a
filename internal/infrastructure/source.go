package infrastructure

import (
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-user-lookup/config"
	"github.com/oksasatya/go-user-lookup/internal/domain/repository"
	"github.com/oksasatya/go-user-lookup/internal/infrastructure/cache"
	"github.com/oksasatya/go-user-lookup/internal/infrastructure/mock"
	"github.com/oksasatya/go-user-lookup/internal/infrastructure/postgres"
)

const (
	SourceMock     = "mock"
	SourcePostgres = "postgres"
)

// NewRecordSource picks the record source named by cfg.RecordSource and
// wraps it in the redis cache when rdb is non-nil.
func NewRecordSource(cfg *config.Config, logger *logrus.Logger, rdb *redis.Client) (repository.RecordSource, error) {
	var src repository.RecordSource
	switch cfg.RecordSource {
	case "", SourceMock:
		src = mock.NewRecordSource(cfg.Source(), logger)
	case SourcePostgres:
		src = postgres.NewRecordSource(cfg.Source(), postgres.PoolOptions{
			MaxConns:    cfg.DBMaxConns,
			MinConns:    cfg.DBMinConns,
			MaxConnLife: cfg.DBMaxConnLife,
		}, logger)
	default:
		return nil, fmt.Errorf("unknown record source %q", cfg.RecordSource)
	}
	if rdb != nil {
		src = cache.NewRecordSource(src, rdb, cfg.ProfileCacheTTL, logger)
	}
	return src, nil
}
