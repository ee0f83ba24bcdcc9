package psmaster

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"

	psmastererrors "github.com/JohanKruger/traindev-api/internal/psmaster/errors"
)

type Service interface {
	GetAll(ctx context.Context) ([]TrainingPsMaster, error)
	GetByPersonnelNumber(ctx context.Context, personnelNumber string) (*TrainingPsMaster, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("psmaster.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("psmaster.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) GetAll(ctx context.Context) ([]TrainingPsMaster, error) {
	masters, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("HR mart query failed", zap.Error(err))
		return nil, psmastererrors.ErrMartUnavailable
	}
	return masters, nil
}

func (s *service) GetByPersonnelNumber(ctx context.Context, personnelNumber string) (*TrainingPsMaster, error) {
	m, err := s.repo.FindByPersonnelNumber(ctx, personnelNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, psmastererrors.ErrPersonNotFound
		}
		s.logger.Error("HR mart query failed", zap.Error(err))
		return nil, psmastererrors.ErrMartUnavailable
	}
	return m, nil
}
