package psmaster_test

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JohanKruger/traindev-api/internal/psmaster"
)

var masterColumns = []string{
	"PERSONNEL_NUMBER", "TITLE", "LAST_NAME", "FIRST_NAME", "INITIALS", "SECOND_NAME",
	"KNOWN_AS", "GENDER", "DATE_OF_BIRTH", "ID_NUMBER", "RACE_CODE", "RACE_DESCRIPTION",
	"COMPANY_CODE", "COMPANY_NAME", "PERSONNEL_AREA", "PERSONNEL_AREA_DESCRIPTION",
	"PERSONNEL_SUB_AREA", "PERSONNEL_SUB_AREA_DESCRIPTION", "EMPLOYEE_GROUP",
	"EMPLOYEE_GROUP_DESCRIPTION", "EMPLOYEE_SUB_GROUP", "EMPLOYEE_SUB_GROUP_DESCRIPTION",
	"ORGANISATION_UNIT", "ORGANISATION_UNIT_DESCRIPTION", "POSITION", "POSITION_DESCRIPTION",
	"START_DATE", "END_DATE", "COST_CENTER", "COST_CENTER_DESCRIPTION", "EMPLOYMENT_STATUS",
	"EMPLOYEMENT_STATUS_DESCRIPTION", "EMAIL_ADDRESS", "DISABILITY", "EE_LEVEL", "EE_CATEGORY",
	"JOB_GRADE", "MANAGER_PERSONNEL_NUMBER", "MANAGER_NAME", "MANAGER_EMAIL_ADDRESS",
	"MANAGER_KNOWN_AS", "MANAGER_COST_CENTER",
}

// sampleMasterValues builds a full 42-cell row for personnel number pn.
// Columns the tests do not assert on stay nil to cover the null paths.
func sampleMasterValues(pn string) []driver.Value {
	dob := time.Date(1985, 6, 15, 0, 0, 0, 0, time.UTC)
	start := time.Date(2010, 1, 4, 0, 0, 0, 0, time.UTC)
	end := time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)
	return []driver.Value{
		pn, "Ms", "Dlamini", "Naledi", "N", nil,
		"Naledi", "F", dob, "8506150000000", "AFR", "African",
		"1000", "Faidan Holdings", nil, nil,
		nil, nil, nil,
		nil, nil, nil,
		nil, nil, "Analyst", "Business Analyst",
		start, end, "CC100", "Head Office", "A",
		"Active", "naledi@example.com", nil, "PQ", nil,
		"C4", "00098765", "T Mokoena", nil,
		nil, nil,
	}
}

func TestPsMasterRepository_FindByPersonnelNumber(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM SAPBIUSER.MV_EMP_TRAINING_PS_MASTER").
		WithArgs(sql.Named("personnelNumber", "00012345")).
		WillReturnRows(sqlmock.NewRows(masterColumns).AddRow(sampleMasterValues("00012345")...))

	repo := psmaster.NewRepository(db)
	m, err := repo.FindByPersonnelNumber(context.Background(), "00012345")

	require.NoError(t, err)
	require.NotNil(t, m.PersonnelNumber)
	assert.Equal(t, "00012345", *m.PersonnelNumber)
	assert.Equal(t, "Dlamini", *m.LastName)
	assert.Equal(t, "Active", *m.EmployementStatusDescription)
	require.NotNil(t, m.DateOfBirth)
	assert.Equal(t, 1985, m.DateOfBirth.Year())
	assert.Nil(t, m.SecondName)
	assert.Nil(t, m.ManagerKnownAs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPsMasterRepository_FindByPersonnelNumber_NoRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM SAPBIUSER.MV_EMP_TRAINING_PS_MASTER").
		WithArgs(sql.Named("personnelNumber", "unknown")).
		WillReturnRows(sqlmock.NewRows(masterColumns))

	repo := psmaster.NewRepository(db)
	_, err = repo.FindByPersonnelNumber(context.Background(), "unknown")

	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestPsMasterRepository_FindAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows(masterColumns).
		AddRow(sampleMasterValues("00012345")...).
		AddRow(sampleMasterValues("00054321")...)
	mock.ExpectQuery("FROM SAPBIUSER.MV_EMP_TRAINING_PS_MASTER").WillReturnRows(rows)

	repo := psmaster.NewRepository(db)
	all, err := repo.FindAll(context.Background())

	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "00054321", *all[1].PersonnelNumber)
	assert.NoError(t, mock.ExpectationsWereMet())
}
