package application

import (
	"context"

	"github.com/oksasatya/go-user-lookup/internal/domain/entity"
	repo "github.com/oksasatya/go-user-lookup/internal/domain/repository"
	"github.com/oksasatya/go-user-lookup/pkg/validation"
)

// Service resolves a single user through a record source.
type Service struct {
	Source repo.RecordSource
}

func NewService(source repo.RecordSource) *Service {
	return &Service{Source: source}
}

// GetUser validates id, fetches the record and builds the user.
// Errors from each step are returned as is.
func (s *Service) GetUser(ctx context.Context, id int64) (*entity.User, error) {
	if err := validation.ValidateIdentifier(id); err != nil {
		return nil, err
	}
	rec, err := s.Source.FetchByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return entity.NewUserFromRecord(rec)
}
