package trainingrecord

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	trainingrecorderrors "github.com/JohanKruger/traindev-api/internal/trainingrecord/errors"
)

// EventChecker verifies that a training event exists. Satisfied by the
// trainingevent repository.
type EventChecker interface {
	Exists(ctx context.Context, id int) (bool, error)
}

type Service interface {
	Create(ctx context.Context, req CreateTrainingRecordEventRequest) (*TrainingRecordEventResponse, error)
	GetAll(ctx context.Context) ([]TrainingRecordEventResponse, error)
	GetByID(ctx context.Context, id int) (*TrainingRecordEventResponse, error)
	GetByTrainingEvent(ctx context.Context, trainingEventID int) ([]TrainingRecordEventResponse, error)
	GetByPersonnelNumber(ctx context.Context, personnelNumber string) ([]TrainingRecordEventResponse, error)
	GetByDateRange(ctx context.Context, start, end time.Time) ([]TrainingRecordEventResponse, error)
	GetWithEvidence(ctx context.Context) ([]TrainingRecordEventResponse, error)
	GetWithoutEvidence(ctx context.Context) ([]TrainingRecordEventResponse, error)
	CostsByTrainingEvent(ctx context.Context, trainingEventID int) (*CostSummary, error)
	CostsByPersonnelNumber(ctx context.Context, personnelNumber string) (*CostSummary, error)
	CostsByDateRange(ctx context.Context, start, end time.Time) (*CostSummary, error)
	Update(ctx context.Context, id int, req UpdateTrainingRecordEventRequest) (*TrainingRecordEventResponse, error)
	Delete(ctx context.Context, id int) error
}

type service struct {
	repo   Repository
	events EventChecker
}

func NewService(repo Repository, events EventChecker) Service {
	return &service{repo: repo, events: events}
}

func (s *service) Create(ctx context.Context, req CreateTrainingRecordEventRequest) (*TrainingRecordEventResponse, error) {
	if err := s.validate(ctx, req); err != nil {
		return nil, err
	}

	rec := entityFromRequest(req)
	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, err
	}

	resp := mapToResponse(*rec)
	return &resp, nil
}

func (s *service) GetAll(ctx context.Context) ([]TrainingRecordEventResponse, error) {
	recs, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(recs), nil
}

func (s *service) GetByID(ctx context.Context, id int) (*TrainingRecordEventResponse, error) {
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, trainingrecorderrors.ErrTrainingRecordNotFound
		}
		return nil, err
	}
	resp := mapToResponse(*rec)
	return &resp, nil
}

func (s *service) GetByTrainingEvent(ctx context.Context, trainingEventID int) ([]TrainingRecordEventResponse, error) {
	recs, err := s.repo.FindByTrainingEvent(ctx, trainingEventID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(recs), nil
}

func (s *service) GetByPersonnelNumber(ctx context.Context, personnelNumber string) ([]TrainingRecordEventResponse, error) {
	recs, err := s.repo.FindByPersonnelNumber(ctx, personnelNumber)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(recs), nil
}

func (s *service) GetByDateRange(ctx context.Context, start, end time.Time) ([]TrainingRecordEventResponse, error) {
	if end.Before(start) {
		return nil, trainingrecorderrors.ErrInvalidDateRange
	}
	recs, err := s.repo.FindByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(recs), nil
}

func (s *service) GetWithEvidence(ctx context.Context) ([]TrainingRecordEventResponse, error) {
	recs, err := s.repo.FindWithEvidence(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(recs), nil
}

func (s *service) GetWithoutEvidence(ctx context.Context) ([]TrainingRecordEventResponse, error) {
	recs, err := s.repo.FindWithoutEvidence(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(recs), nil
}

func (s *service) CostsByTrainingEvent(ctx context.Context, trainingEventID int) (*CostSummary, error) {
	return s.repo.SumCostsByTrainingEvent(ctx, trainingEventID)
}

func (s *service) CostsByPersonnelNumber(ctx context.Context, personnelNumber string) (*CostSummary, error) {
	return s.repo.SumCostsByPersonnelNumber(ctx, personnelNumber)
}

func (s *service) CostsByDateRange(ctx context.Context, start, end time.Time) (*CostSummary, error) {
	if end.Before(start) {
		return nil, trainingrecorderrors.ErrInvalidDateRange
	}
	return s.repo.SumCostsByDateRange(ctx, start, end)
}

func (s *service) Update(ctx context.Context, id int, req UpdateTrainingRecordEventRequest) (*TrainingRecordEventResponse, error) {
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, trainingrecorderrors.ErrTrainingRecordNotFound
		}
		return nil, err
	}

	if err := s.validate(ctx, req); err != nil {
		return nil, err
	}

	updated := entityFromRequest(req)
	updated.TrainingRecordEventID = rec.TrainingRecordEventID
	if err := s.repo.Update(ctx, updated); err != nil {
		return nil, err
	}

	resp := mapToResponse(*updated)
	return &resp, nil
}

func (s *service) Delete(ctx context.Context, id int) error {
	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return trainingrecorderrors.ErrTrainingRecordNotFound
	}
	return nil
}

func (s *service) validate(ctx context.Context, req CreateTrainingRecordEventRequest) error {
	if req.EndDate.Before(req.StartDate) {
		return trainingrecorderrors.ErrInvalidDateRange
	}
	exists, err := s.events.Exists(ctx, req.TrainingEventID)
	if err != nil {
		return err
	}
	if !exists {
		return trainingrecorderrors.ErrTrainingEventNotFound
	}
	return nil
}

func entityFromRequest(req CreateTrainingRecordEventRequest) *TrainingRecordEvent {
	return &TrainingRecordEvent{
		TrainingEventID:         req.TrainingEventID,
		StartDate:               req.StartDate,
		EndDate:                 req.EndDate,
		Hours:                   req.Hours,
		Minutes:                 req.Minutes,
		PersonnelNumber:         req.PersonnelNumber,
		Evidence:                req.Evidence,
		ServiceProviderExternal: req.ServiceProviderExternal,
		CostTrainingMaterials:   req.CostTrainingMaterials,
		CostTrainers:            req.CostTrainers,
		CostTrainingFacilities:  req.CostTrainingFacilities,
		ScholarshipsBursaries:   req.ScholarshipsBursaries,
		CourseFees:              req.CourseFees,
		Accommodation:           req.Accommodation,
		Travel:                  req.Travel,
		Meal:                    req.Meal,
		AdministrationCosts:     req.AdministrationCosts,
		EquipmentDepreciation:   req.EquipmentDepreciation,
	}
}
