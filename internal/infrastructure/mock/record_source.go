package mock

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-user-lookup/internal/domain/entity"
	"github.com/oksasatya/go-user-lookup/internal/domain/repository"
)

const (
	PlaceholderName  = "John Doe"
	PlaceholderEmail = "john@example.com"
)

// RecordSource stands in for a database: it never performs I/O and
// answers every id with the same placeholder user, echoing the id back.
type RecordSource struct {
	cfg    repository.SourceConfig
	logger *logrus.Logger
}

func NewRecordSource(cfg repository.SourceConfig, logger *logrus.Logger) *RecordSource {
	return &RecordSource{cfg: cfg, logger: logger}
}

// Connect only checks that a password is configured.
func (s *RecordSource) Connect(_ context.Context) error {
	if s.cfg.Password == "" {
		return fmt.Errorf("%w: database password not set", repository.ErrConnection)
	}
	if s.logger != nil {
		s.logger.WithField("host", s.cfg.Host).Info("Database connected successfully")
	}
	return nil
}

func (s *RecordSource) FetchByID(_ context.Context, id int64) (entity.Record, error) {
	return entity.Record{
		ID:     id,
		Name:   PlaceholderName,
		Email:  PlaceholderEmail,
		Active: true,
	}, nil
}

var _ repository.RecordSource = (*RecordSource)(nil)
