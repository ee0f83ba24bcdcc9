package reports

import (
	"context"
	"time"

	reportserrors "github.com/JohanKruger/traindev-api/internal/reports/errors"
)

type Service interface {
	Export(ctx context.Context) ([]TrainingReportRow, error)
	ExportByDate(ctx context.Context, start, end time.Time) ([]TrainingReportRow, error)
	ExportByPersonnelNumber(ctx context.Context, personnelNumber string) ([]TrainingReportRow, error)
	ExportByTrainingEvent(ctx context.Context, trainingEventID int) ([]TrainingReportRow, error)
	ExportFiltered(ctx context.Context, filter ReportFilter) ([]TrainingReportRow, error)
	ExportCSV(ctx context.Context, filter ReportFilter) (string, string, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) Export(ctx context.Context) ([]TrainingReportRow, error) {
	return s.repo.FindRows(ctx, ReportFilter{})
}

func (s *service) ExportByDate(ctx context.Context, start, end time.Time) ([]TrainingReportRow, error) {
	if end.Before(start) {
		return nil, reportserrors.ErrInvalidDateRange
	}
	return s.repo.FindRows(ctx, ReportFilter{StartDate: &start, EndDate: &end})
}

func (s *service) ExportByPersonnelNumber(ctx context.Context, personnelNumber string) ([]TrainingReportRow, error) {
	return s.repo.FindRows(ctx, ReportFilter{PersonnelNumber: &personnelNumber})
}

func (s *service) ExportByTrainingEvent(ctx context.Context, trainingEventID int) ([]TrainingReportRow, error) {
	return s.repo.FindRows(ctx, ReportFilter{TrainingEventID: &trainingEventID})
}

func (s *service) ExportFiltered(ctx context.Context, filter ReportFilter) ([]TrainingReportRow, error) {
	if filter.StartDate != nil && filter.EndDate != nil && filter.EndDate.Before(*filter.StartDate) {
		return nil, reportserrors.ErrInvalidDateRange
	}
	return s.repo.FindRows(ctx, filter)
}

// ExportCSV returns the rendered document and its suggested file name.
func (s *service) ExportCSV(ctx context.Context, filter ReportFilter) (string, string, error) {
	rows, err := s.ExportFiltered(ctx, filter)
	if err != nil {
		return "", "", err
	}
	return BuildCSV(rows), CSVFileName(s.now()), nil
}
