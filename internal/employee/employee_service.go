package employee

import (
	"context"

	employeeerrors "github.com/JohanKruger/traindev-api/internal/employee/errors"
	"github.com/JohanKruger/traindev-api/internal/shared/contextutil"

	"go.uber.org/zap"
)

type Service interface {
	GetAll(ctx context.Context) ([]Employee, error)
	GetByPersonnelNumber(ctx context.Context, personnelNumber string) (*Employee, error)
	Search(ctx context.Context, term string) ([]Employee, error)
	GetByRace(ctx context.Context, race string) ([]Employee, error)
	GetByGender(ctx context.Context, gender string) ([]Employee, error)
	GetByEELevel(ctx context.Context, eeLevel string) ([]Employee, error)
	GetByEECategory(ctx context.Context, eeCategory string) ([]Employee, error)
	GetByDisability(ctx context.Context, hasDisability bool) ([]Employee, error)
	GetByJobTitle(ctx context.Context, jobTitle string) ([]Employee, error)
	GetByJobGrade(ctx context.Context, jobGrade string) ([]Employee, error)
	GetBySite(ctx context.Context, site string) ([]Employee, error)
	GetByIDNumber(ctx context.Context, idNumber string) ([]Employee, error)
	Create(ctx context.Context, req CreateEmployeeRequest) (*Employee, error)
	Update(ctx context.Context, personnelNumber string, req UpdateEmployeeRequest) (*Employee, error)
	Delete(ctx context.Context, personnelNumber string) error
	Exists(ctx context.Context, personnelNumber string) (bool, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) GetAll(ctx context.Context) ([]Employee, error) {
	empls, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return empls, nil
}

func (s *service) GetByPersonnelNumber(ctx context.Context, personnelNumber string) (*Employee, error) {
	empl, err := s.repo.FindByPersonnelNumber(ctx, personnelNumber)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return empl, nil
}

func (s *service) Search(ctx context.Context, term string) ([]Employee, error) {
	empls, err := s.repo.Search(ctx, term)
	if err != nil {
		s.logger.Error("search employees failed", zap.String("term", term), zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return empls, nil
}

func (s *service) GetByRace(ctx context.Context, race string) ([]Employee, error) {
	return s.byAttribute(ctx, colRace, race)
}

func (s *service) GetByGender(ctx context.Context, gender string) ([]Employee, error) {
	return s.byAttribute(ctx, colGender, gender)
}

func (s *service) GetByEELevel(ctx context.Context, eeLevel string) ([]Employee, error) {
	return s.byAttribute(ctx, colEELevel, eeLevel)
}

func (s *service) GetByEECategory(ctx context.Context, eeCategory string) ([]Employee, error) {
	return s.byAttribute(ctx, colEECategory, eeCategory)
}

func (s *service) GetByDisability(ctx context.Context, hasDisability bool) ([]Employee, error) {
	return s.byAttribute(ctx, colDisability, hasDisability)
}

func (s *service) GetByJobTitle(ctx context.Context, jobTitle string) ([]Employee, error) {
	return s.byAttribute(ctx, colJobTitle, jobTitle)
}

func (s *service) GetByJobGrade(ctx context.Context, jobGrade string) ([]Employee, error) {
	return s.byAttribute(ctx, colJobGrade, jobGrade)
}

func (s *service) GetBySite(ctx context.Context, site string) ([]Employee, error) {
	return s.byAttribute(ctx, colSite, site)
}

func (s *service) GetByIDNumber(ctx context.Context, idNumber string) ([]Employee, error) {
	return s.byAttribute(ctx, colIDNumber, idNumber)
}

func (s *service) byAttribute(ctx context.Context, column string, value any) ([]Employee, error) {
	empls, err := s.repo.FindByAttribute(ctx, column, value)
	if err != nil {
		s.logger.Error("filter employees failed", zap.String("column", column), zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return empls, nil
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (*Employee, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("personnel_number", req.PersonnelNumber),
	)

	empl := &Employee{
		PersonnelNumber:      req.PersonnelNumber,
		FirstName:            req.FirstName,
		LastName:             req.LastName,
		KnownName:            req.KnownName,
		Initials:             req.Initials,
		Race:                 req.Race,
		Gender:               req.Gender,
		Disability:           req.Disability,
		EELevel:              req.EELevel,
		EECategory:           req.EECategory,
		JobTitle:             req.JobTitle,
		JobGrade:             req.JobGrade,
		IDNumber:             req.IDNumber,
		Site:                 req.Site,
		HighestQualification: req.HighestQualification,
		Notes:                req.Notes,
	}

	// Probe first for a clean conflict message; a concurrent create racing
	// past the probe is still rejected by the primary key.
	exists, err := s.repo.Exists(ctx, req.PersonnelNumber)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	if exists {
		return nil, employeeerrors.ErrEmployeeAlreadyExists
	}

	if err := s.repo.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed",
			zap.String("request_id", rid), zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("personnel_number", empl.PersonnelNumber),
	)
	return empl, nil
}

func (s *service) Update(ctx context.Context, personnelNumber string, req UpdateEmployeeRequest) (*Employee, error) {
	empl, err := s.repo.FindByPersonnelNumber(ctx, personnelNumber)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	empl.FirstName = req.FirstName
	empl.LastName = req.LastName
	empl.KnownName = req.KnownName
	empl.Initials = req.Initials
	empl.Race = req.Race
	empl.Gender = req.Gender
	empl.Disability = req.Disability
	empl.EELevel = req.EELevel
	empl.EECategory = req.EECategory
	empl.JobTitle = req.JobTitle
	empl.JobGrade = req.JobGrade
	empl.IDNumber = req.IDNumber
	empl.Site = req.Site
	empl.HighestQualification = req.HighestQualification
	empl.Notes = req.Notes

	if err := s.repo.Update(ctx, empl); err != nil {
		s.logger.Error("update employee persist failed",
			zap.String("personnel_number", personnelNumber), zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	s.logger.Info("update employee success", zap.String("personnel_number", personnelNumber))
	return empl, nil
}

func (s *service) Delete(ctx context.Context, personnelNumber string) error {
	affected, err := s.repo.Delete(ctx, personnelNumber)
	if err != nil {
		s.logger.Error("delete employee failed",
			zap.String("personnel_number", personnelNumber), zap.Error(err))
		return mapRepositoryError(err)
	}
	if affected == 0 {
		return employeeerrors.ErrEmployeeNotFound
	}

	s.logger.Info("delete employee success", zap.String("personnel_number", personnelNumber))
	return nil
}

func (s *service) Exists(ctx context.Context, personnelNumber string) (bool, error) {
	exists, err := s.repo.Exists(ctx, personnelNumber)
	if err != nil {
		return false, mapRepositoryError(err)
	}
	return exists, nil
}
