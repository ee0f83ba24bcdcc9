package trainingevent_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/JohanKruger/traindev-api/internal/trainingevent"
	trainingeventerrors "github.com/JohanKruger/traindev-api/internal/trainingevent/errors"
)

type fakeEventRepository struct {
	CreateFn                func(ctx context.Context, ev *trainingevent.TrainingEvent) error
	FindAllFn               func(ctx context.Context) ([]trainingevent.TrainingEvent, error)
	FindByIDFn              func(ctx context.Context, id int) (*trainingevent.TrainingEvent, error)
	FindByPersonnelNumberFn func(ctx context.Context, personnelNumber string) ([]trainingevent.TrainingEvent, error)
	FindByIDNumberFn        func(ctx context.Context, idNumber string) ([]trainingevent.TrainingEvent, error)
	FindByLookupFn          func(ctx context.Context, column string, lookupID int) ([]trainingevent.TrainingEvent, error)
	SearchFn                func(ctx context.Context, term string) ([]trainingevent.TrainingEvent, error)
	UpdateFn                func(ctx context.Context, ev *trainingevent.TrainingEvent) error
	DeleteFn                func(ctx context.Context, id int) (int64, error)
	ExistsFn                func(ctx context.Context, id int) (bool, error)
}

func (f *fakeEventRepository) Create(ctx context.Context, ev *trainingevent.TrainingEvent) error {
	return f.CreateFn(ctx, ev)
}
func (f *fakeEventRepository) FindAll(ctx context.Context) ([]trainingevent.TrainingEvent, error) {
	return f.FindAllFn(ctx)
}
func (f *fakeEventRepository) FindByID(ctx context.Context, id int) (*trainingevent.TrainingEvent, error) {
	return f.FindByIDFn(ctx, id)
}
func (f *fakeEventRepository) FindByPersonnelNumber(ctx context.Context, pn string) ([]trainingevent.TrainingEvent, error) {
	return f.FindByPersonnelNumberFn(ctx, pn)
}
func (f *fakeEventRepository) FindByIDNumber(ctx context.Context, id string) ([]trainingevent.TrainingEvent, error) {
	return f.FindByIDNumberFn(ctx, id)
}
func (f *fakeEventRepository) FindByLookup(ctx context.Context, column string, lookupID int) ([]trainingevent.TrainingEvent, error) {
	return f.FindByLookupFn(ctx, column, lookupID)
}
func (f *fakeEventRepository) Search(ctx context.Context, term string) ([]trainingevent.TrainingEvent, error) {
	return f.SearchFn(ctx, term)
}
func (f *fakeEventRepository) Update(ctx context.Context, ev *trainingevent.TrainingEvent) error {
	return f.UpdateFn(ctx, ev)
}
func (f *fakeEventRepository) Delete(ctx context.Context, id int) (int64, error) {
	return f.DeleteFn(ctx, id)
}
func (f *fakeEventRepository) Exists(ctx context.Context, id int) (bool, error) {
	return f.ExistsFn(ctx, id)
}

type fakeLookupChecker struct {
	ExistsFn func(ctx context.Context, id int) (bool, error)
}

func (f *fakeLookupChecker) Exists(ctx context.Context, id int) (bool, error) {
	return f.ExistsFn(ctx, id)
}

func str(s string) *string { return &s }

func validCreateRequest() trainingevent.CreateTrainingEventRequest {
	return trainingevent.CreateTrainingEventRequest{
		PersonnelNumber:     str("EMP001"),
		EventTypeID:         1,
		TrainingEventNameID: 2,
		RegionID:            3,
		ProvinceID:          4,
		MunicipalityID:      5,
		SiteID:              6,
	}
}

func allLookupsExist() *fakeLookupChecker {
	return &fakeLookupChecker{
		ExistsFn: func(ctx context.Context, id int) (bool, error) { return true, nil },
	}
}

func TestTrainingEventService_Create(t *testing.T) {
	t.Run("success with personnel number", func(t *testing.T) {
		repo := &fakeEventRepository{
			CreateFn: func(ctx context.Context, ev *trainingevent.TrainingEvent) error {
				ev.TrainingEventID = 10
				return nil
			},
		}
		svc := trainingevent.NewService(repo, allLookupsExist())

		ev, err := svc.Create(context.Background(), validCreateRequest())

		require.NoError(t, err)
		assert.Equal(t, 10, ev.TrainingEventID)
		require.NotNil(t, ev.PersonnelNumber)
		assert.Equal(t, "EMP001", *ev.PersonnelNumber)
		assert.Nil(t, ev.IDNumber)
	})

	t.Run("success with id number", func(t *testing.T) {
		repo := &fakeEventRepository{
			CreateFn: func(ctx context.Context, ev *trainingevent.TrainingEvent) error { return nil },
		}
		svc := trainingevent.NewService(repo, allLookupsExist())

		req := validCreateRequest()
		req.PersonnelNumber = nil
		req.IDNumber = str("9001015009087")

		ev, err := svc.Create(context.Background(), req)

		require.NoError(t, err)
		assert.Nil(t, ev.PersonnelNumber)
		require.NotNil(t, ev.IDNumber)
		assert.Equal(t, "9001015009087", *ev.IDNumber)
	})

	t.Run("rejects both identifiers", func(t *testing.T) {
		svc := trainingevent.NewService(&fakeEventRepository{}, allLookupsExist())

		req := validCreateRequest()
		req.IDNumber = str("9001015009087")

		_, err := svc.Create(context.Background(), req)

		assert.ErrorIs(t, err, trainingeventerrors.ErrInvalidParticipant)
	})

	t.Run("rejects neither identifier", func(t *testing.T) {
		svc := trainingevent.NewService(&fakeEventRepository{}, allLookupsExist())

		req := validCreateRequest()
		req.PersonnelNumber = nil

		_, err := svc.Create(context.Background(), req)

		assert.ErrorIs(t, err, trainingeventerrors.ErrInvalidParticipant)
	})

	t.Run("rejects empty string identifiers as absent", func(t *testing.T) {
		svc := trainingevent.NewService(&fakeEventRepository{}, allLookupsExist())

		req := validCreateRequest()
		req.PersonnelNumber = str("")

		_, err := svc.Create(context.Background(), req)

		assert.ErrorIs(t, err, trainingeventerrors.ErrInvalidParticipant)
	})

	t.Run("rejects unknown lookup reference", func(t *testing.T) {
		checker := &fakeLookupChecker{
			ExistsFn: func(ctx context.Context, id int) (bool, error) {
				return id != 3, nil
			},
		}
		svc := trainingevent.NewService(&fakeEventRepository{}, checker)

		_, err := svc.Create(context.Background(), validCreateRequest())

		assert.ErrorIs(t, err, trainingeventerrors.ErrLookupReferenceNotFound)
	})
}

func TestTrainingEventService_Update(t *testing.T) {
	t.Run("switches participant kind", func(t *testing.T) {
		existing := &trainingevent.TrainingEvent{
			TrainingEventID: 7,
			PersonnelNumber: str("EMP001"),
			EventTypeID:     1,
		}
		repo := &fakeEventRepository{
			FindByIDFn: func(ctx context.Context, id int) (*trainingevent.TrainingEvent, error) {
				return existing, nil
			},
			UpdateFn: func(ctx context.Context, ev *trainingevent.TrainingEvent) error { return nil },
		}
		svc := trainingevent.NewService(repo, allLookupsExist())

		req := trainingevent.UpdateTrainingEventRequest(validCreateRequest())
		req.PersonnelNumber = nil
		req.IDNumber = str("9001015009087")

		ev, err := svc.Update(context.Background(), 7, req)

		require.NoError(t, err)
		assert.Nil(t, ev.PersonnelNumber)
		require.NotNil(t, ev.IDNumber)
	})

	t.Run("not found", func(t *testing.T) {
		repo := &fakeEventRepository{
			FindByIDFn: func(ctx context.Context, id int) (*trainingevent.TrainingEvent, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		svc := trainingevent.NewService(repo, allLookupsExist())

		_, err := svc.Update(context.Background(), 99, trainingevent.UpdateTrainingEventRequest(validCreateRequest()))

		assert.ErrorIs(t, err, trainingeventerrors.ErrTrainingEventNotFound)
	})
}

func TestTrainingEventService_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := &fakeEventRepository{
			DeleteFn: func(ctx context.Context, id int) (int64, error) { return 1, nil },
		}
		svc := trainingevent.NewService(repo, allLookupsExist())

		assert.NoError(t, svc.Delete(context.Background(), 7))
	})

	t.Run("not found", func(t *testing.T) {
		repo := &fakeEventRepository{
			DeleteFn: func(ctx context.Context, id int) (int64, error) { return 0, nil },
		}
		svc := trainingevent.NewService(repo, allLookupsExist())

		err := svc.Delete(context.Background(), 99)

		assert.ErrorIs(t, err, trainingeventerrors.ErrTrainingEventNotFound)
	})
}

func TestNewParticipant(t *testing.T) {
	t.Run("employee", func(t *testing.T) {
		p, err := trainingevent.NewParticipant(str("EMP001"), nil)
		require.NoError(t, err)
		assert.True(t, p.IsEmployee())
		require.NotNil(t, p.PersonnelNumber())
		assert.Equal(t, "EMP001", *p.PersonnelNumber())
		assert.Nil(t, p.IDNumber())
	})

	t.Run("non employee", func(t *testing.T) {
		p, err := trainingevent.NewParticipant(nil, str("9001015009087"))
		require.NoError(t, err)
		assert.False(t, p.IsEmployee())
		assert.Nil(t, p.PersonnelNumber())
	})

	t.Run("both rejected", func(t *testing.T) {
		_, err := trainingevent.NewParticipant(str("EMP001"), str("9001015009087"))
		assert.ErrorIs(t, err, trainingeventerrors.ErrInvalidParticipant)
	})

	t.Run("neither rejected", func(t *testing.T) {
		_, err := trainingevent.NewParticipant(nil, nil)
		assert.ErrorIs(t, err, trainingeventerrors.ErrInvalidParticipant)
	})
}
