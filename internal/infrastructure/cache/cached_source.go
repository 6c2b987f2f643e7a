package cache

import (
	"context"
	"io"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-user-lookup/internal/domain/entity"
	"github.com/oksasatya/go-user-lookup/internal/domain/repository"
)

const DefaultTTL = 5 * time.Minute

func recordKey(id int64) string {
	return "user:record:" + strconv.FormatInt(id, 10)
}

// RecordSource caches records of an underlying source in redis.
// Redis faults never fail a lookup: the inner source answers and the outage is
// logged once at info level, then once more when redis answers again.
type RecordSource struct {
	Inner  repository.RecordSource
	Redis  *redis.Client
	TTL    time.Duration
	Logger *logrus.Logger

	down atomic.Bool
}

func NewRecordSource(inner repository.RecordSource, rdb *redis.Client, ttl time.Duration, logger *logrus.Logger) *RecordSource {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RecordSource{Inner: inner, Redis: rdb, TTL: ttl, Logger: logger}
}

func (s *RecordSource) Connect(ctx context.Context) error {
	if err := s.Inner.Connect(ctx); err != nil {
		return err
	}
	s.observe(s.Redis.Ping(ctx).Err())
	return nil
}

func (s *RecordSource) FetchByID(ctx context.Context, id int64) (entity.Record, error) {
	key := recordKey(id)
	var rec entity.Record
	hit, err := getJSON(ctx, s.Redis, key, &rec)
	s.observe(err)
	if hit {
		return rec, nil
	}

	rec, err = s.Inner.FetchByID(ctx, id)
	if err != nil {
		return entity.Record{}, err
	}
	s.observe(setJSON(ctx, s.Redis, key, rec, s.TTL))
	return rec, nil
}

// Close closes the inner source when it holds resources. The redis client is owned by the caller.
func (s *RecordSource) Close() error {
	if c, ok := s.Inner.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (s *RecordSource) observe(err error) {
	if err == nil {
		if s.down.CompareAndSwap(true, false) {
			s.info("record cache recovered")
		}
		return
	}
	if s.down.CompareAndSwap(false, true) {
		s.info("record cache unavailable, serving uncached: " + err.Error())
	}
}

func (s *RecordSource) info(msg string) {
	if s.Logger != nil {
		s.Logger.Info(msg)
	}
}

var _ repository.RecordSource = (*RecordSource)(nil)
