package employeelookup

import (
	"context"
	"errors"
	"strings"

	employeelookuperrors "github.com/JohanKruger/traindev-api/internal/employeelookup/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	GetAll(ctx context.Context) ([]EmployeeLookup, error)
	GetByPersonnelNumber(ctx context.Context, personnelNumber string) (*EmployeeLookup, error)
	Search(ctx context.Context, term string) ([]EmployeeLookup, error)
	GetByRace(ctx context.Context, race string) ([]EmployeeLookup, error)
	GetByGender(ctx context.Context, gender string) ([]EmployeeLookup, error)
	GetByEELevel(ctx context.Context, eeLevel string) ([]EmployeeLookup, error)
	GetByEECategory(ctx context.Context, eeCategory string) ([]EmployeeLookup, error)
	GetByDisability(ctx context.Context, hasDisability bool) ([]EmployeeLookup, error)
	Create(ctx context.Context, req CreateEmployeeLookupRequest) (*EmployeeLookup, error)
	Update(ctx context.Context, personnelNumber string, req UpdateEmployeeLookupRequest) (*EmployeeLookup, error)
	Delete(ctx context.Context, personnelNumber string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employeelookup.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employeelookup.service")
	}
	return &service{repo: repo, logger: l}
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeelookuperrors.ErrEmployeeLookupNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return employeelookuperrors.ErrEmployeeLookupAlreadyExists
	}
	if strings.Contains(strings.ToLower(err.Error()), "duplicate key value") {
		return employeelookuperrors.ErrEmployeeLookupAlreadyExists
	}
	return err
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeLookup, error) {
	recs, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all employee lookups failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return recs, nil
}

func (s *service) GetByPersonnelNumber(ctx context.Context, personnelNumber string) (*EmployeeLookup, error) {
	rec, err := s.repo.FindByPersonnelNumber(ctx, personnelNumber)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return rec, nil
}

func (s *service) Search(ctx context.Context, term string) ([]EmployeeLookup, error) {
	recs, err := s.repo.Search(ctx, term)
	if err != nil {
		s.logger.Error("search employee lookups failed", zap.String("term", term), zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return recs, nil
}

func (s *service) GetByRace(ctx context.Context, race string) ([]EmployeeLookup, error) {
	return s.byAttribute(ctx, colRace, race)
}

func (s *service) GetByGender(ctx context.Context, gender string) ([]EmployeeLookup, error) {
	return s.byAttribute(ctx, colGender, gender)
}

func (s *service) GetByEELevel(ctx context.Context, eeLevel string) ([]EmployeeLookup, error) {
	return s.byAttribute(ctx, colEELevel, eeLevel)
}

func (s *service) GetByEECategory(ctx context.Context, eeCategory string) ([]EmployeeLookup, error) {
	return s.byAttribute(ctx, colEECategory, eeCategory)
}

func (s *service) GetByDisability(ctx context.Context, hasDisability bool) ([]EmployeeLookup, error) {
	return s.byAttribute(ctx, colDisability, hasDisability)
}

func (s *service) byAttribute(ctx context.Context, column string, value any) ([]EmployeeLookup, error) {
	recs, err := s.repo.FindByAttribute(ctx, column, value)
	if err != nil {
		s.logger.Error("filter employee lookups failed", zap.String("column", column), zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return recs, nil
}

func (s *service) Create(ctx context.Context, req CreateEmployeeLookupRequest) (*EmployeeLookup, error) {
	exists, err := s.repo.Exists(ctx, req.PersonnelNumber)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	if exists {
		return nil, employeelookuperrors.ErrEmployeeLookupAlreadyExists
	}

	rec := &EmployeeLookup{
		PersonnelNumber: req.PersonnelNumber,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		KnownName:       req.KnownName,
		Initials:        req.Initials,
		Race:            req.Race,
		Gender:          req.Gender,
		Disability:      req.Disability,
		EELevel:         req.EELevel,
		EECategory:      req.EECategory,
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		s.logger.Error("create employee lookup persist failed",
			zap.String("personnel_number", req.PersonnelNumber), zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	s.logger.Info("create employee lookup success",
		zap.String("personnel_number", rec.PersonnelNumber))
	return rec, nil
}

func (s *service) Update(ctx context.Context, personnelNumber string, req UpdateEmployeeLookupRequest) (*EmployeeLookup, error) {
	rec, err := s.repo.FindByPersonnelNumber(ctx, personnelNumber)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	rec.FirstName = req.FirstName
	rec.LastName = req.LastName
	rec.KnownName = req.KnownName
	rec.Initials = req.Initials
	rec.Race = req.Race
	rec.Gender = req.Gender
	rec.Disability = req.Disability
	rec.EELevel = req.EELevel
	rec.EECategory = req.EECategory

	if err := s.repo.Update(ctx, rec); err != nil {
		s.logger.Error("update employee lookup persist failed",
			zap.String("personnel_number", personnelNumber), zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	s.logger.Info("update employee lookup success",
		zap.String("personnel_number", personnelNumber))
	return rec, nil
}

func (s *service) Delete(ctx context.Context, personnelNumber string) error {
	affected, err := s.repo.Delete(ctx, personnelNumber)
	if err != nil {
		s.logger.Error("delete employee lookup failed",
			zap.String("personnel_number", personnelNumber), zap.Error(err))
		return mapRepositoryError(err)
	}
	if affected == 0 {
		return employeelookuperrors.ErrEmployeeLookupNotFound
	}

	s.logger.Info("delete employee lookup success",
		zap.String("personnel_number", personnelNumber))
	return nil
}
