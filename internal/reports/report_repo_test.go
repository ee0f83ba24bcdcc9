package reports_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/JohanKruger/traindev-api/internal/reports"
)

func newReportRepo(t *testing.T) (reports.Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		Logger: logger.Discard,
	})
	require.NoError(t, err)

	return reports.NewRepository(gdb), mock
}

func TestReportRepository_FindRows_EmployeeJoin(t *testing.T) {
	repo, mock := newReportRepo(t)

	// The employee resolves through the event; only the emitted
	// personnel_number column prefers the record-level override.
	mock.ExpectQuery(regexp.QuoteMeta("LEFT JOIN employees e ON e.personnel_number = te.personnel_number")).
		WillReturnRows(sqlmock.NewRows([]string{"training_record_event_id"}))

	_, err := repo.FindRows(context.Background(), reports.ReportFilter{})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportRepository_FindRows_PersonnelNumberColumn(t *testing.T) {
	repo, mock := newReportRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("COALESCE(r.personnel_number, te.personnel_number) AS personnel_number")).
		WillReturnRows(sqlmock.NewRows([]string{"training_record_event_id"}))

	_, err := repo.FindRows(context.Background(), reports.ReportFilter{})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportRepository_FindRows_PersonnelFilter(t *testing.T) {
	repo, mock := newReportRepo(t)

	pn := "00012345"
	mock.ExpectQuery(regexp.QuoteMeta("COALESCE(r.personnel_number, te.personnel_number) = ")).
		WithArgs(pn).
		WillReturnRows(sqlmock.NewRows([]string{"training_record_event_id"}))

	_, err := repo.FindRows(context.Background(), reports.ReportFilter{PersonnelNumber: &pn})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
