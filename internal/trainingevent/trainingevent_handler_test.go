package trainingevent_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/JohanKruger/traindev-api/internal/trainingevent"
	trainingeventerrors "github.com/JohanKruger/traindev-api/internal/trainingevent/errors"
)

type fakeEventService struct {
	CreateFn               func(ctx context.Context, req trainingevent.CreateTrainingEventRequest) (*trainingevent.TrainingEvent, error)
	GetAllFn               func(ctx context.Context) ([]trainingevent.TrainingEvent, error)
	GetByIDFn              func(ctx context.Context, id int) (*trainingevent.TrainingEvent, error)
	GetByPersonnelNumberFn func(ctx context.Context, pn string) ([]trainingevent.TrainingEvent, error)
	GetByIDNumberFn        func(ctx context.Context, idNumber string) ([]trainingevent.TrainingEvent, error)
	GetByEventTypeFn       func(ctx context.Context, lookupID int) ([]trainingevent.TrainingEvent, error)
	GetByRegionFn          func(ctx context.Context, lookupID int) ([]trainingevent.TrainingEvent, error)
	GetByProvinceFn        func(ctx context.Context, lookupID int) ([]trainingevent.TrainingEvent, error)
	GetByMunicipalityFn    func(ctx context.Context, lookupID int) ([]trainingevent.TrainingEvent, error)
	GetBySiteFn            func(ctx context.Context, lookupID int) ([]trainingevent.TrainingEvent, error)
	SearchFn               func(ctx context.Context, term string) ([]trainingevent.TrainingEvent, error)
	UpdateFn               func(ctx context.Context, id int, req trainingevent.UpdateTrainingEventRequest) (*trainingevent.TrainingEvent, error)
	DeleteFn               func(ctx context.Context, id int) error
}

func (f *fakeEventService) Create(ctx context.Context, req trainingevent.CreateTrainingEventRequest) (*trainingevent.TrainingEvent, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeEventService) GetAll(ctx context.Context) ([]trainingevent.TrainingEvent, error) {
	return f.GetAllFn(ctx)
}
func (f *fakeEventService) GetByID(ctx context.Context, id int) (*trainingevent.TrainingEvent, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeEventService) GetByPersonnelNumber(ctx context.Context, pn string) ([]trainingevent.TrainingEvent, error) {
	return f.GetByPersonnelNumberFn(ctx, pn)
}
func (f *fakeEventService) GetByIDNumber(ctx context.Context, idNumber string) ([]trainingevent.TrainingEvent, error) {
	return f.GetByIDNumberFn(ctx, idNumber)
}
func (f *fakeEventService) GetByEventType(ctx context.Context, lookupID int) ([]trainingevent.TrainingEvent, error) {
	return f.GetByEventTypeFn(ctx, lookupID)
}
func (f *fakeEventService) GetByRegion(ctx context.Context, lookupID int) ([]trainingevent.TrainingEvent, error) {
	return f.GetByRegionFn(ctx, lookupID)
}
func (f *fakeEventService) GetByProvince(ctx context.Context, lookupID int) ([]trainingevent.TrainingEvent, error) {
	return f.GetByProvinceFn(ctx, lookupID)
}
func (f *fakeEventService) GetByMunicipality(ctx context.Context, lookupID int) ([]trainingevent.TrainingEvent, error) {
	return f.GetByMunicipalityFn(ctx, lookupID)
}
func (f *fakeEventService) GetBySite(ctx context.Context, lookupID int) ([]trainingevent.TrainingEvent, error) {
	return f.GetBySiteFn(ctx, lookupID)
}
func (f *fakeEventService) Search(ctx context.Context, term string) ([]trainingevent.TrainingEvent, error) {
	return f.SearchFn(ctx, term)
}
func (f *fakeEventService) Update(ctx context.Context, id int, req trainingevent.UpdateTrainingEventRequest) (*trainingevent.TrainingEvent, error) {
	return f.UpdateFn(ctx, id, req)
}
func (f *fakeEventService) Delete(ctx context.Context, id int) error {
	return f.DeleteFn(ctx, id)
}

const validEventBody = `{"personnel_number":"EMP001","event_type_id":1,"training_event_name_id":2,` +
	`"region_id":3,"province_id":4,"municipality_id":5,"site_id":6}`

func TestTrainingEventHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		svc := &fakeEventService{
			CreateFn: func(ctx context.Context, req trainingevent.CreateTrainingEventRequest) (*trainingevent.TrainingEvent, error) {
				assert.Equal(t, 1, req.EventTypeID)
				return &trainingevent.TrainingEvent{TrainingEventID: 1}, nil
			},
		}

		h := trainingevent.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodPost, "/training-event", strings.NewReader(validEventBody))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("validation error", func(t *testing.T) {
		h := trainingevent.NewHandler(&fakeEventService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodPost, "/training-event", strings.NewReader(`{}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("participant conflict", func(t *testing.T) {
		svc := &fakeEventService{
			CreateFn: func(ctx context.Context, req trainingevent.CreateTrainingEventRequest) (*trainingevent.TrainingEvent, error) {
				return nil, trainingeventerrors.ErrInvalidParticipant
			},
		}

		h := trainingevent.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodPost, "/training-event", strings.NewReader(validEventBody))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "but not both")
	})

	t.Run("service error", func(t *testing.T) {
		svc := &fakeEventService{
			CreateFn: func(ctx context.Context, req trainingevent.CreateTrainingEventRequest) (*trainingevent.TrainingEvent, error) {
				return nil, errors.New("boom")
			},
		}

		h := trainingevent.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodPost, "/training-event", strings.NewReader(validEventBody))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "boom")
	})
}

func TestTrainingEventHandler_GetByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		svc := &fakeEventService{
			GetByIDFn: func(ctx context.Context, id int) (*trainingevent.TrainingEvent, error) {
				assert.Equal(t, 7, id)
				return &trainingevent.TrainingEvent{TrainingEventID: id}, nil
			},
		}

		h := trainingevent.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodGet, "/training-event/7", nil)
		c.Params = []gin.Param{{Key: "id", Value: "7"}}

		h.GetByID(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		h := trainingevent.NewHandler(&fakeEventService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodGet, "/training-event/abc", nil)
		c.Params = []gin.Param{{Key: "id", Value: "abc"}}

		h.GetByID(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		svc := &fakeEventService{
			GetByIDFn: func(ctx context.Context, id int) (*trainingevent.TrainingEvent, error) {
				return nil, trainingeventerrors.ErrTrainingEventNotFound
			},
		}

		h := trainingevent.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodGet, "/training-event/99", nil)
		c.Params = []gin.Param{{Key: "id", Value: "99"}}

		h.GetByID(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestTrainingEventHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		svc := &fakeEventService{
			DeleteFn: func(ctx context.Context, id int) error { return nil },
		}

		h := trainingevent.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodDelete, "/training-event/7", nil)
		c.Params = []gin.Param{{Key: "id", Value: "7"}}

		h.Delete(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
