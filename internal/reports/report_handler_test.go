package reports_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/JohanKruger/traindev-api/internal/reports"
)

type fakeReportService struct {
	ExportFn                  func(ctx context.Context) ([]reports.TrainingReportRow, error)
	ExportByDateFn            func(ctx context.Context, start, end time.Time) ([]reports.TrainingReportRow, error)
	ExportByPersonnelNumberFn func(ctx context.Context, personnelNumber string) ([]reports.TrainingReportRow, error)
	ExportByTrainingEventFn   func(ctx context.Context, trainingEventID int) ([]reports.TrainingReportRow, error)
	ExportFilteredFn          func(ctx context.Context, filter reports.ReportFilter) ([]reports.TrainingReportRow, error)
	ExportCSVFn               func(ctx context.Context, filter reports.ReportFilter) (string, string, error)
}

func (f *fakeReportService) Export(ctx context.Context) ([]reports.TrainingReportRow, error) {
	return f.ExportFn(ctx)
}
func (f *fakeReportService) ExportByDate(ctx context.Context, start, end time.Time) ([]reports.TrainingReportRow, error) {
	return f.ExportByDateFn(ctx, start, end)
}
func (f *fakeReportService) ExportByPersonnelNumber(ctx context.Context, personnelNumber string) ([]reports.TrainingReportRow, error) {
	return f.ExportByPersonnelNumberFn(ctx, personnelNumber)
}
func (f *fakeReportService) ExportByTrainingEvent(ctx context.Context, trainingEventID int) ([]reports.TrainingReportRow, error) {
	return f.ExportByTrainingEventFn(ctx, trainingEventID)
}
func (f *fakeReportService) ExportFiltered(ctx context.Context, filter reports.ReportFilter) ([]reports.TrainingReportRow, error) {
	return f.ExportFilteredFn(ctx, filter)
}
func (f *fakeReportService) ExportCSV(ctx context.Context, filter reports.ReportFilter) (string, string, error) {
	return f.ExportCSVFn(ctx, filter)
}

func newReportContext(t *testing.T, target string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c, w
}

func TestReportHandler_ExportCSV(t *testing.T) {
	t.Run("streams a file download", func(t *testing.T) {
		svc := &fakeReportService{
			ExportCSVFn: func(ctx context.Context, filter reports.ReportFilter) (string, string, error) {
				return "header\r\n", "training_records_20260302_140509.csv", nil
			},
		}
		h := reports.NewHandler(svc, zap.NewNop())
		c, w := newReportContext(t, "/api/reports/training-records/export/csv")

		h.ExportCSV(c)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename="training_records_20260302_140509.csv"`,
			w.Header().Get("Content-Disposition"))
		assert.Equal(t, "header\r\n", w.Body.String())
	})

	t.Run("filter is built from the query string", func(t *testing.T) {
		var got reports.ReportFilter
		svc := &fakeReportService{
			ExportCSVFn: func(ctx context.Context, filter reports.ReportFilter) (string, string, error) {
				got = filter
				return "header\r\n", "f.csv", nil
			},
		}
		h := reports.NewHandler(svc, zap.NewNop())
		c, w := newReportContext(t,
			"/api/reports/training-records/export/csv?startDate=2026-03-01&personnelNumber=00012345&hasEvidence=true")

		h.ExportCSV(c)

		require.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, got.StartDate)
		assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), *got.StartDate)
		require.NotNil(t, got.PersonnelNumber)
		assert.Equal(t, "00012345", *got.PersonnelNumber)
		require.NotNil(t, got.HasEvidence)
		assert.True(t, *got.HasEvidence)
		assert.Nil(t, got.EndDate)
		assert.Nil(t, got.TrainingEventID)
	})

	t.Run("bad hasEvidence flag", func(t *testing.T) {
		h := reports.NewHandler(&fakeReportService{}, zap.NewNop())
		c, w := newReportContext(t, "/api/reports/training-records/export/csv?hasEvidence=maybe")

		h.ExportCSV(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestReportHandler_ExportByDate(t *testing.T) {
	t.Run("bad start date", func(t *testing.T) {
		h := reports.NewHandler(&fakeReportService{}, zap.NewNop())
		c, w := newReportContext(t, "/api/reports/training-records/export/by-date?startDate=x&endDate=2026-03-02")

		h.ExportByDate(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("success", func(t *testing.T) {
		svc := &fakeReportService{
			ExportByDateFn: func(ctx context.Context, start, end time.Time) ([]reports.TrainingReportRow, error) {
				return []reports.TrainingReportRow{}, nil
			},
		}
		h := reports.NewHandler(svc, zap.NewNop())
		c, w := newReportContext(t, "/api/reports/training-records/export/by-date?startDate=2026-03-01&endDate=2026-03-02")

		h.ExportByDate(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
