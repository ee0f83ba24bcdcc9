package trainingevent

import (
	"context"
	"errors"

	"gorm.io/gorm"

	trainingeventerrors "github.com/JohanKruger/traindev-api/internal/trainingevent/errors"
)

// LookupChecker verifies that a lookup value exists. Satisfied by the
// lookup repository.
type LookupChecker interface {
	Exists(ctx context.Context, id int) (bool, error)
}

type Service interface {
	Create(ctx context.Context, req CreateTrainingEventRequest) (*TrainingEvent, error)
	GetAll(ctx context.Context) ([]TrainingEvent, error)
	GetByID(ctx context.Context, id int) (*TrainingEvent, error)
	GetByPersonnelNumber(ctx context.Context, personnelNumber string) ([]TrainingEvent, error)
	GetByIDNumber(ctx context.Context, idNumber string) ([]TrainingEvent, error)
	GetByEventType(ctx context.Context, lookupID int) ([]TrainingEvent, error)
	GetByRegion(ctx context.Context, lookupID int) ([]TrainingEvent, error)
	GetByProvince(ctx context.Context, lookupID int) ([]TrainingEvent, error)
	GetByMunicipality(ctx context.Context, lookupID int) ([]TrainingEvent, error)
	GetBySite(ctx context.Context, lookupID int) ([]TrainingEvent, error)
	Search(ctx context.Context, term string) ([]TrainingEvent, error)
	Update(ctx context.Context, id int, req UpdateTrainingEventRequest) (*TrainingEvent, error)
	Delete(ctx context.Context, id int) error
}

type service struct {
	repo    Repository
	lookups LookupChecker
}

func NewService(repo Repository, lookups LookupChecker) Service {
	return &service{repo: repo, lookups: lookups}
}

func (s *service) Create(ctx context.Context, req CreateTrainingEventRequest) (*TrainingEvent, error) {
	participant, err := NewParticipant(req.PersonnelNumber, req.IDNumber)
	if err != nil {
		return nil, err
	}

	lookupIDs := []int{
		req.EventTypeID, req.TrainingEventNameID, req.RegionID,
		req.ProvinceID, req.MunicipalityID, req.SiteID,
	}
	if err := s.checkLookups(ctx, lookupIDs); err != nil {
		return nil, err
	}

	ev := &TrainingEvent{
		PersonnelNumber:     participant.PersonnelNumber(),
		IDNumber:            participant.IDNumber(),
		EventTypeID:         req.EventTypeID,
		TrainingEventNameID: req.TrainingEventNameID,
		RegionID:            req.RegionID,
		ProvinceID:          req.ProvinceID,
		MunicipalityID:      req.MunicipalityID,
		SiteID:              req.SiteID,
	}

	if err := s.repo.Create(ctx, ev); err != nil {
		return nil, err
	}
	return ev, nil
}

func (s *service) GetAll(ctx context.Context) ([]TrainingEvent, error) {
	return s.repo.FindAll(ctx)
}

func (s *service) GetByID(ctx context.Context, id int) (*TrainingEvent, error) {
	ev, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, trainingeventerrors.ErrTrainingEventNotFound
		}
		return nil, err
	}
	return ev, nil
}

func (s *service) GetByPersonnelNumber(ctx context.Context, personnelNumber string) ([]TrainingEvent, error) {
	return s.repo.FindByPersonnelNumber(ctx, personnelNumber)
}

func (s *service) GetByIDNumber(ctx context.Context, idNumber string) ([]TrainingEvent, error) {
	return s.repo.FindByIDNumber(ctx, idNumber)
}

func (s *service) GetByEventType(ctx context.Context, lookupID int) ([]TrainingEvent, error) {
	return s.repo.FindByLookup(ctx, colEventType, lookupID)
}

func (s *service) GetByRegion(ctx context.Context, lookupID int) ([]TrainingEvent, error) {
	return s.repo.FindByLookup(ctx, colRegion, lookupID)
}

func (s *service) GetByProvince(ctx context.Context, lookupID int) ([]TrainingEvent, error) {
	return s.repo.FindByLookup(ctx, colProvince, lookupID)
}

func (s *service) GetByMunicipality(ctx context.Context, lookupID int) ([]TrainingEvent, error) {
	return s.repo.FindByLookup(ctx, colMunicipality, lookupID)
}

func (s *service) GetBySite(ctx context.Context, lookupID int) ([]TrainingEvent, error) {
	return s.repo.FindByLookup(ctx, colSite, lookupID)
}

func (s *service) Search(ctx context.Context, term string) ([]TrainingEvent, error) {
	return s.repo.Search(ctx, term)
}

func (s *service) Update(ctx context.Context, id int, req UpdateTrainingEventRequest) (*TrainingEvent, error) {
	ev, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, trainingeventerrors.ErrTrainingEventNotFound
		}
		return nil, err
	}

	participant, err := NewParticipant(req.PersonnelNumber, req.IDNumber)
	if err != nil {
		return nil, err
	}

	lookupIDs := []int{
		req.EventTypeID, req.TrainingEventNameID, req.RegionID,
		req.ProvinceID, req.MunicipalityID, req.SiteID,
	}
	if err := s.checkLookups(ctx, lookupIDs); err != nil {
		return nil, err
	}

	ev.PersonnelNumber = participant.PersonnelNumber()
	ev.IDNumber = participant.IDNumber()
	ev.EventTypeID = req.EventTypeID
	ev.TrainingEventNameID = req.TrainingEventNameID
	ev.RegionID = req.RegionID
	ev.ProvinceID = req.ProvinceID
	ev.MunicipalityID = req.MunicipalityID
	ev.SiteID = req.SiteID

	if err := s.repo.Update(ctx, ev); err != nil {
		return nil, err
	}
	return ev, nil
}

// Delete removes the event; training records hanging off it go with it
// through the cascade on the child foreign key.
func (s *service) Delete(ctx context.Context, id int) error {
	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return trainingeventerrors.ErrTrainingEventNotFound
	}
	return nil
}

func (s *service) checkLookups(ctx context.Context, ids []int) error {
	for _, id := range ids {
		exists, err := s.lookups.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return trainingeventerrors.ErrLookupReferenceNotFound
		}
	}
	return nil
}
