package trainingrecord_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/JohanKruger/traindev-api/internal/trainingrecord"
	trainingrecorderrors "github.com/JohanKruger/traindev-api/internal/trainingrecord/errors"
)

type fakeRecordRepository struct {
	CreateFn                    func(ctx context.Context, rec *trainingrecord.TrainingRecordEvent) error
	FindAllFn                   func(ctx context.Context) ([]trainingrecord.TrainingRecordEvent, error)
	FindByIDFn                  func(ctx context.Context, id int) (*trainingrecord.TrainingRecordEvent, error)
	FindByTrainingEventFn       func(ctx context.Context, trainingEventID int) ([]trainingrecord.TrainingRecordEvent, error)
	FindByPersonnelNumberFn     func(ctx context.Context, pn string) ([]trainingrecord.TrainingRecordEvent, error)
	FindByDateRangeFn           func(ctx context.Context, start, end time.Time) ([]trainingrecord.TrainingRecordEvent, error)
	FindWithEvidenceFn          func(ctx context.Context) ([]trainingrecord.TrainingRecordEvent, error)
	FindWithoutEvidenceFn       func(ctx context.Context) ([]trainingrecord.TrainingRecordEvent, error)
	SumCostsByTrainingEventFn   func(ctx context.Context, trainingEventID int) (*trainingrecord.CostSummary, error)
	SumCostsByPersonnelNumberFn func(ctx context.Context, pn string) (*trainingrecord.CostSummary, error)
	SumCostsByDateRangeFn       func(ctx context.Context, start, end time.Time) (*trainingrecord.CostSummary, error)
	UpdateFn                    func(ctx context.Context, rec *trainingrecord.TrainingRecordEvent) error
	DeleteFn                    func(ctx context.Context, id int) (int64, error)
}

func (f *fakeRecordRepository) Create(ctx context.Context, rec *trainingrecord.TrainingRecordEvent) error {
	return f.CreateFn(ctx, rec)
}
func (f *fakeRecordRepository) FindAll(ctx context.Context) ([]trainingrecord.TrainingRecordEvent, error) {
	return f.FindAllFn(ctx)
}
func (f *fakeRecordRepository) FindByID(ctx context.Context, id int) (*trainingrecord.TrainingRecordEvent, error) {
	return f.FindByIDFn(ctx, id)
}
func (f *fakeRecordRepository) FindByTrainingEvent(ctx context.Context, id int) ([]trainingrecord.TrainingRecordEvent, error) {
	return f.FindByTrainingEventFn(ctx, id)
}
func (f *fakeRecordRepository) FindByPersonnelNumber(ctx context.Context, pn string) ([]trainingrecord.TrainingRecordEvent, error) {
	return f.FindByPersonnelNumberFn(ctx, pn)
}
func (f *fakeRecordRepository) FindByDateRange(ctx context.Context, start, end time.Time) ([]trainingrecord.TrainingRecordEvent, error) {
	return f.FindByDateRangeFn(ctx, start, end)
}
func (f *fakeRecordRepository) FindWithEvidence(ctx context.Context) ([]trainingrecord.TrainingRecordEvent, error) {
	return f.FindWithEvidenceFn(ctx)
}
func (f *fakeRecordRepository) FindWithoutEvidence(ctx context.Context) ([]trainingrecord.TrainingRecordEvent, error) {
	return f.FindWithoutEvidenceFn(ctx)
}
func (f *fakeRecordRepository) SumCostsByTrainingEvent(ctx context.Context, id int) (*trainingrecord.CostSummary, error) {
	return f.SumCostsByTrainingEventFn(ctx, id)
}
func (f *fakeRecordRepository) SumCostsByPersonnelNumber(ctx context.Context, pn string) (*trainingrecord.CostSummary, error) {
	return f.SumCostsByPersonnelNumberFn(ctx, pn)
}
func (f *fakeRecordRepository) SumCostsByDateRange(ctx context.Context, start, end time.Time) (*trainingrecord.CostSummary, error) {
	return f.SumCostsByDateRangeFn(ctx, start, end)
}
func (f *fakeRecordRepository) Update(ctx context.Context, rec *trainingrecord.TrainingRecordEvent) error {
	return f.UpdateFn(ctx, rec)
}
func (f *fakeRecordRepository) Delete(ctx context.Context, id int) (int64, error) {
	return f.DeleteFn(ctx, id)
}

type fakeEventChecker struct {
	exists bool
	err    error
}

func (f *fakeEventChecker) Exists(ctx context.Context, id int) (bool, error) {
	return f.exists, f.err
}

func intp(v int) *int { return &v }
func floatp(v float64) *float64 { return &v }
func boolp(v bool) *bool { return &v }
func day(d int) time.Time { return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC) }

func validRecordRequest() trainingrecord.CreateTrainingRecordEventRequest {
	return trainingrecord.CreateTrainingRecordEventRequest{
		TrainingEventID: 1,
		StartDate:       day(1),
		EndDate:         day(3),
		Hours:           intp(2),
		Minutes:         intp(30),
	}
}

func TestTrainingRecordService_Create(t *testing.T) {
	t.Run("success computes derived fields", func(t *testing.T) {
		repo := &fakeRecordRepository{
			CreateFn: func(ctx context.Context, rec *trainingrecord.TrainingRecordEvent) error {
				rec.TrainingRecordEventID = 5
				return nil
			},
		}
		svc := trainingrecord.NewService(repo, &fakeEventChecker{exists: true})

		req := validRecordRequest()
		req.CostTrainers = floatp(1500)
		req.Accommodation = floatp(250.50)

		resp, err := svc.Create(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, 5, resp.TrainingRecordEventID)
		assert.Equal(t, 1750.50, resp.TotalCosts)
		assert.Equal(t, 150, resp.TotalDurationMinutes)
	})

	t.Run("end before start rejected", func(t *testing.T) {
		svc := trainingrecord.NewService(&fakeRecordRepository{}, &fakeEventChecker{exists: true})

		req := validRecordRequest()
		req.StartDate = day(10)
		req.EndDate = day(9)

		_, err := svc.Create(context.Background(), req)

		assert.ErrorIs(t, err, trainingrecorderrors.ErrInvalidDateRange)
	})

	t.Run("equal start and end allowed", func(t *testing.T) {
		repo := &fakeRecordRepository{
			CreateFn: func(ctx context.Context, rec *trainingrecord.TrainingRecordEvent) error { return nil },
		}
		svc := trainingrecord.NewService(repo, &fakeEventChecker{exists: true})

		req := validRecordRequest()
		req.StartDate = day(10)
		req.EndDate = day(10)

		_, err := svc.Create(context.Background(), req)

		assert.NoError(t, err)
	})

	t.Run("unknown training event rejected", func(t *testing.T) {
		svc := trainingrecord.NewService(&fakeRecordRepository{}, &fakeEventChecker{exists: false})

		_, err := svc.Create(context.Background(), validRecordRequest())

		assert.ErrorIs(t, err, trainingrecorderrors.ErrTrainingEventNotFound)
	})
}

func TestTrainingRecordService_GetByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		repo := &fakeRecordRepository{
			FindByIDFn: func(ctx context.Context, id int) (*trainingrecord.TrainingRecordEvent, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		svc := trainingrecord.NewService(repo, &fakeEventChecker{exists: true})

		_, err := svc.GetByID(context.Background(), 99)

		assert.ErrorIs(t, err, trainingrecorderrors.ErrTrainingRecordNotFound)
	})
}

func TestTrainingRecordService_GetByDateRange(t *testing.T) {
	t.Run("inverted range rejected", func(t *testing.T) {
		svc := trainingrecord.NewService(&fakeRecordRepository{}, &fakeEventChecker{exists: true})

		_, err := svc.GetByDateRange(context.Background(), day(10), day(1))

		assert.ErrorIs(t, err, trainingrecorderrors.ErrInvalidDateRange)
	})
}

func TestTrainingRecordService_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		repo := &fakeRecordRepository{
			DeleteFn: func(ctx context.Context, id int) (int64, error) { return 0, nil },
		}
		svc := trainingrecord.NewService(repo, &fakeEventChecker{exists: true})

		err := svc.Delete(context.Background(), 42)

		assert.ErrorIs(t, err, trainingrecorderrors.ErrTrainingRecordNotFound)
	})
}

func TestTrainingRecordEvent_Totals(t *testing.T) {
	t.Run("nil costs count as zero", func(t *testing.T) {
		rec := trainingrecord.TrainingRecordEvent{
			CostTrainers: floatp(100),
			Meal:         floatp(49.99),
		}
		assert.InDelta(t, 149.99, rec.TotalCosts(), 0.0001)
	})

	t.Run("all nil sums to zero", func(t *testing.T) {
		assert.Equal(t, 0.0, trainingrecord.TrainingRecordEvent{}.TotalCosts())
		assert.Equal(t, 0, trainingrecord.TrainingRecordEvent{}.TotalDurationMinutes())
	})

	t.Run("salary is not a training cost", func(t *testing.T) {
		rec := trainingrecord.TrainingRecordEvent{
			CostTrainers: floatp(100),
			Salary:       floatp(25000),
		}
		assert.InDelta(t, 100.0, rec.TotalCosts(), 0.0001)
	})

	t.Run("duration folds hours into minutes", func(t *testing.T) {
		rec := trainingrecord.TrainingRecordEvent{Hours: intp(3), Minutes: intp(15)}
		assert.Equal(t, 195, rec.TotalDurationMinutes())
	})

	t.Run("evidence pointer survives mapping", func(t *testing.T) {
		rec := trainingrecord.TrainingRecordEvent{Evidence: boolp(true)}
		assert.True(t, *rec.Evidence)
	})
}
