package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-user-lookup/internal/domain/entity"
	"github.com/oksasatya/go-user-lookup/internal/domain/repository"
)

var errNotConnected = errors.New("record source not connected")

// RecordSource reads user rows from the users table.
// The pool is opened by Connect; FetchByID before Connect fails.
type RecordSource struct {
	cfg    repository.SourceConfig
	opts   PoolOptions
	logger *logrus.Logger
	pool   *pgxpool.Pool
}

func NewRecordSource(cfg repository.SourceConfig, opts PoolOptions, logger *logrus.Logger) *RecordSource {
	return &RecordSource{cfg: cfg, opts: opts, logger: logger}
}

func (r *RecordSource) Connect(ctx context.Context) error {
	if r.cfg.Password == "" {
		return fmt.Errorf("%w: database password not set", repository.ErrConnection)
	}
	if r.pool != nil {
		return nil
	}
	pool, err := NewPool(ctx, r.cfg.DSN(), r.opts)
	if err != nil {
		return fmt.Errorf("%w: %v", repository.ErrConnection, err)
	}
	r.pool = pool
	if r.logger != nil {
		r.logger.WithFields(logrus.Fields{"host": r.cfg.Host, "db": r.cfg.Name}).Info("Database connected successfully")
	}
	return nil
}

func (r *RecordSource) FetchByID(ctx context.Context, id int64) (entity.Record, error) {
	if r.pool == nil {
		return entity.Record{}, fmt.Errorf("%w: %v", repository.ErrConnection, errNotConnected)
	}
	var rec entity.Record
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, email, active
		FROM users
		WHERE id = $1
	`, id)
	if err := row.Scan(&rec.ID, &rec.Name, &rec.Email, &rec.Active); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Record{}, repository.ErrNotFound
		}
		return entity.Record{}, fmt.Errorf("fetch user %d: %w", id, err)
	}
	return rec, nil
}

// Close releases the pool, if one was opened.
func (r *RecordSource) Close() error {
	if r.pool != nil {
		r.pool.Close()
		r.pool = nil
	}
	return nil
}

var _ repository.RecordSource = (*RecordSource)(nil)
