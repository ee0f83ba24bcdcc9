package reports

import "time"

// TrainingReportRow is one flattened line of the training report: the
// record, its event, the six lookup dimensions resolved to display
// values, and the participant details. Employee fields stay nil for
// external participants; NonEmployeeIDNumber carries their identity.
type TrainingReportRow struct {
	TrainingRecordEventID   int       `gorm:"column:training_record_event_id" json:"training_record_event_id"`
	TrainingEventID         int       `gorm:"column:training_event_id" json:"training_event_id"`
	StartDate               time.Time `gorm:"column:start_date" json:"start_date"`
	EndDate                 time.Time `gorm:"column:end_date" json:"end_date"`
	Hours                   *int      `gorm:"column:hours" json:"hours,omitempty"`
	Minutes                 *int      `gorm:"column:minutes" json:"minutes,omitempty"`
	Evidence                *bool     `gorm:"column:evidence" json:"evidence,omitempty"`
	ServiceProviderExternal *string   `gorm:"column:service_provider_external" json:"service_provider_external,omitempty"`
	CostTrainingMaterials   *float64  `gorm:"column:cost_training_materials" json:"cost_training_materials,omitempty"`
	CostTrainers            *float64  `gorm:"column:cost_trainers" json:"cost_trainers,omitempty"`
	CostTrainingFacilities  *float64  `gorm:"column:cost_training_facilities" json:"cost_training_facilities,omitempty"`
	ScholarshipsBursaries   *float64  `gorm:"column:scholarships_bursaries" json:"scholarships_bursaries,omitempty"`
	CourseFees              *float64  `gorm:"column:course_fees" json:"course_fees,omitempty"`
	Accommodation           *float64  `gorm:"column:accommodation" json:"accommodation,omitempty"`
	Travel                  *float64  `gorm:"column:travel" json:"travel,omitempty"`
	Meal                    *float64  `gorm:"column:meal" json:"meal,omitempty"`
	AdministrationCosts     *float64  `gorm:"column:administration_costs" json:"administration_costs,omitempty"`
	EquipmentDepreciation   *float64  `gorm:"column:equipment_depreciation" json:"equipment_depreciation,omitempty"`

	EventType         *string `gorm:"column:event_type" json:"event_type,omitempty"`
	TrainingEventName *string `gorm:"column:training_event_name" json:"training_event_name,omitempty"`
	Region            *string `gorm:"column:region" json:"region,omitempty"`
	Province          *string `gorm:"column:province" json:"province,omitempty"`
	Municipality      *string `gorm:"column:municipality" json:"municipality,omitempty"`
	Site              *string `gorm:"column:site" json:"site,omitempty"`

	PersonnelNumber              *string `gorm:"column:personnel_number" json:"personnel_number,omitempty"`
	EmployeeFirstName            *string `gorm:"column:employee_first_name" json:"employee_first_name,omitempty"`
	EmployeeLastName             *string `gorm:"column:employee_last_name" json:"employee_last_name,omitempty"`
	EmployeeKnownName            *string `gorm:"column:employee_known_name" json:"employee_known_name,omitempty"`
	EmployeeInitials             *string `gorm:"column:employee_initials" json:"employee_initials,omitempty"`
	EmployeeRace                 *string `gorm:"column:employee_race" json:"employee_race,omitempty"`
	EmployeeGender               *string `gorm:"column:employee_gender" json:"employee_gender,omitempty"`
	EmployeeDisability           *bool   `gorm:"column:employee_disability" json:"employee_disability,omitempty"`
	EmployeeEELevel              *string `gorm:"column:employee_ee_level" json:"employee_ee_level,omitempty"`
	EmployeeEECategory           *string `gorm:"column:employee_ee_category" json:"employee_ee_category,omitempty"`
	EmployeeJobTitle             *string `gorm:"column:employee_job_title" json:"employee_job_title,omitempty"`
	EmployeeJobGrade             *string `gorm:"column:employee_job_grade" json:"employee_job_grade,omitempty"`
	EmployeeIDNumber             *string `gorm:"column:employee_id_number" json:"employee_id_number,omitempty"`
	EmployeeSite                 *string `gorm:"column:employee_site" json:"employee_site,omitempty"`
	EmployeeHighestQualification *string `gorm:"column:employee_highest_qualification" json:"employee_highest_qualification,omitempty"`
	EmployeeNotes                *string `gorm:"column:employee_notes" json:"employee_notes,omitempty"`
	NonEmployeeIDNumber          *string `gorm:"column:non_employee_id_number" json:"non_employee_id_number,omitempty"`
}

// TotalCosts sums the cost columns with nil counted as zero.
func (r TrainingReportRow) TotalCosts() float64 {
	var total float64
	for _, c := range []*float64{
		r.CostTrainingMaterials, r.CostTrainers, r.CostTrainingFacilities,
		r.ScholarshipsBursaries, r.CourseFees, r.Accommodation,
		r.Travel, r.Meal, r.AdministrationCosts, r.EquipmentDepreciation,
	} {
		if c != nil {
			total += *c
		}
	}
	return total
}

// TotalDurationMinutes folds hours into minutes with nil as zero.
func (r TrainingReportRow) TotalDurationMinutes() int {
	var total int
	if r.Hours != nil {
		total += *r.Hours * 60
	}
	if r.Minutes != nil {
		total += *r.Minutes
	}
	return total
}

// ReportFilter narrows the report. Nil fields are not applied; set
// fields combine with AND.
type ReportFilter struct {
	StartDate       *time.Time
	EndDate         *time.Time
	PersonnelNumber *string
	TrainingEventID *int
	HasEvidence     *bool
}
