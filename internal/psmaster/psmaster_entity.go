package psmaster

import "time"

// TrainingPsMaster is one row of the HR mart's personnel materialized
// view, read straight from Oracle and never persisted locally. The
// EmployementStatusDescription spelling matches the view's column name.
type TrainingPsMaster struct {
	PersonnelNumber              *string    `json:"personnel_number"`
	Title                        *string    `json:"title"`
	LastName                     *string    `json:"last_name"`
	FirstName                    *string    `json:"first_name"`
	Initials                     *string    `json:"initials"`
	SecondName                   *string    `json:"second_name"`
	KnownAs                      *string    `json:"known_as"`
	Gender                       *string    `json:"gender"`
	DateOfBirth                  *time.Time `json:"date_of_birth"`
	IDNumber                     *string    `json:"id_number"`
	RaceCode                     *string    `json:"race_code"`
	RaceDescription              *string    `json:"race_description"`
	CompanyCode                  *string    `json:"company_code"`
	CompanyName                  *string    `json:"company_name"`
	PersonnelArea                *string    `json:"personnel_area"`
	PersonnelAreaDescription     *string    `json:"personnel_area_description"`
	PersonnelSubArea             *string    `json:"personnel_sub_area"`
	PersonnelSubAreaDescription  *string    `json:"personnel_sub_area_description"`
	EmployeeGroup                *string    `json:"employee_group"`
	EmployeeGroupDescription     *string    `json:"employee_group_description"`
	EmployeeSubGroup             *string    `json:"employee_sub_group"`
	EmployeeSubGroupDescription  *string    `json:"employee_sub_group_description"`
	OrganisationUnit             *string    `json:"organisation_unit"`
	OrganisationUnitDescription  *string    `json:"organisation_unit_description"`
	Position                     *string    `json:"position"`
	PositionDescription          *string    `json:"position_description"`
	StartDate                    *time.Time `json:"start_date"`
	EndDate                      *time.Time `json:"end_date"`
	CostCenter                   *string    `json:"cost_center"`
	CostCenterDescription        *string    `json:"cost_center_description"`
	EmploymentStatus             *string    `json:"employment_status"`
	EmployementStatusDescription *string    `json:"employement_status_description"`
	EmailAddress                 *string    `json:"email_address"`
	Disability                   *string    `json:"disability"`
	EELevel                      *string    `json:"ee_level"`
	EECategory                   *string    `json:"ee_category"`
	JobGrade                     *string    `json:"job_grade"`
	ManagerPersonnelNumber       *string    `json:"manager_personnel_number"`
	ManagerName                  *string    `json:"manager_name"`
	ManagerEmailAddress          *string    `json:"manager_email_address"`
	ManagerKnownAs               *string    `json:"manager_known_as"`
	ManagerCostCenter            *string    `json:"manager_cost_center"`
}
