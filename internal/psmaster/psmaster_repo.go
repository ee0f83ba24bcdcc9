package psmaster

import (
	"context"
	"database/sql"
)

// The view lives in the SAP BI schema. Columns are selected by name so
// scan order never depends on the view definition, and the active-row
// and row-cap predicates mirror the mart's access policy.
const (
	masterColumns = `PERSONNEL_NUMBER, TITLE, LAST_NAME, FIRST_NAME, INITIALS, SECOND_NAME,
	KNOWN_AS, GENDER, DATE_OF_BIRTH, ID_NUMBER, RACE_CODE, RACE_DESCRIPTION,
	COMPANY_CODE, COMPANY_NAME, PERSONNEL_AREA, PERSONNEL_AREA_DESCRIPTION,
	PERSONNEL_SUB_AREA, PERSONNEL_SUB_AREA_DESCRIPTION, EMPLOYEE_GROUP,
	EMPLOYEE_GROUP_DESCRIPTION, EMPLOYEE_SUB_GROUP, EMPLOYEE_SUB_GROUP_DESCRIPTION,
	ORGANISATION_UNIT, ORGANISATION_UNIT_DESCRIPTION, POSITION, POSITION_DESCRIPTION,
	START_DATE, END_DATE, COST_CENTER, COST_CENTER_DESCRIPTION, EMPLOYMENT_STATUS,
	EMPLOYEMENT_STATUS_DESCRIPTION, EMAIL_ADDRESS, DISABILITY, EE_LEVEL, EE_CATEGORY,
	JOB_GRADE, MANAGER_PERSONNEL_NUMBER, MANAGER_NAME, MANAGER_EMAIL_ADDRESS,
	MANAGER_KNOWN_AS, MANAGER_COST_CENTER`

	selectAllQuery = `SELECT ` + masterColumns + `
	FROM SAPBIUSER.MV_EMP_TRAINING_PS_MASTER
	WHERE ROWNUM <= 50 AND END_DATE > TRUNC(SYSDATE)`

	selectByNumberQuery = `SELECT ` + masterColumns + `
	FROM SAPBIUSER.MV_EMP_TRAINING_PS_MASTER
	WHERE (PERSONNEL_NUMBER = :personnelNumber OR ID_NUMBER = :personnelNumber)
	AND END_DATE > TRUNC(SYSDATE) AND ROWNUM <= 50`
)

type Repository interface {
	FindAll(ctx context.Context) ([]TrainingPsMaster, error)
	FindByPersonnelNumber(ctx context.Context, personnelNumber string) (*TrainingPsMaster, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindAll(ctx context.Context) ([]TrainingPsMaster, error) {
	rows, err := r.db.QueryContext(ctx, selectAllQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []TrainingPsMaster
	for rows.Next() {
		m, err := scanMaster(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *m)
	}
	return result, rows.Err()
}

func (r *repository) FindByPersonnelNumber(ctx context.Context, personnelNumber string) (*TrainingPsMaster, error) {
	row := r.db.QueryRowContext(ctx, selectByNumberQuery,
		sql.Named("personnelNumber", personnelNumber))
	return scanMaster(row)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMaster(row rowScanner) (*TrainingPsMaster, error) {
	var (
		m       TrainingPsMaster
		strings [39]sql.NullString
		dates   [3]sql.NullTime
	)

	err := row.Scan(
		&strings[0], &strings[1], &strings[2], &strings[3], &strings[4], &strings[5],
		&strings[6], &strings[7], &dates[0], &strings[8], &strings[9], &strings[10],
		&strings[11], &strings[12], &strings[13], &strings[14],
		&strings[15], &strings[16], &strings[17],
		&strings[18], &strings[19], &strings[20],
		&strings[21], &strings[22], &strings[23], &strings[24],
		&dates[1], &dates[2], &strings[25], &strings[26], &strings[27],
		&strings[28], &strings[29], &strings[30], &strings[31], &strings[32],
		&strings[33], &strings[34], &strings[35], &strings[36],
		&strings[37], &strings[38],
	)
	if err != nil {
		return nil, err
	}

	fields := []**string{
		&m.PersonnelNumber, &m.Title, &m.LastName, &m.FirstName, &m.Initials,
		&m.SecondName, &m.KnownAs, &m.Gender, &m.IDNumber, &m.RaceCode,
		&m.RaceDescription, &m.CompanyCode, &m.CompanyName, &m.PersonnelArea,
		&m.PersonnelAreaDescription, &m.PersonnelSubArea,
		&m.PersonnelSubAreaDescription, &m.EmployeeGroup,
		&m.EmployeeGroupDescription, &m.EmployeeSubGroup,
		&m.EmployeeSubGroupDescription, &m.OrganisationUnit,
		&m.OrganisationUnitDescription, &m.Position, &m.PositionDescription,
		&m.CostCenter, &m.CostCenterDescription, &m.EmploymentStatus,
		&m.EmployementStatusDescription, &m.EmailAddress, &m.Disability,
		&m.EELevel, &m.EECategory, &m.JobGrade, &m.ManagerPersonnelNumber,
		&m.ManagerName, &m.ManagerEmailAddress, &m.ManagerKnownAs,
		&m.ManagerCostCenter,
	}
	for i, f := range fields {
		if strings[i].Valid {
			v := strings[i].String
			*f = &v
		}
	}

	if dates[0].Valid {
		v := dates[0].Time
		m.DateOfBirth = &v
	}
	if dates[1].Valid {
		v := dates[1].Time
		m.StartDate = &v
	}
	if dates[2].Valid {
		v := dates[2].Time
		m.EndDate = &v
	}

	return &m, nil
}
