package reports

import (
	"context"

	"gorm.io/gorm"
)

// The projection resolves each lookup dimension to its display value and
// attaches the employee through the event's personnel number; the emitted
// personnel_number column alone prefers a record-level override. External
// participants surface through non_employee_id_number instead.
const reportSelect = `
	r.training_record_event_id,
	r.training_event_id,
	r.start_date,
	r.end_date,
	r.hours,
	r.minutes,
	r.evidence,
	r.service_provider_external,
	r.cost_training_materials,
	r.cost_trainers,
	r.cost_training_facilities,
	r.scholarships_bursaries,
	r.course_fees,
	r.accommodation,
	r.travel,
	r.meal,
	r.administration_costs,
	r.equipment_depreciation,
	event_types.value AS event_type,
	event_names.value AS training_event_name,
	regions.value AS region,
	provinces.value AS province,
	municipalities.value AS municipality,
	sites.value AS site,
	COALESCE(r.personnel_number, te.personnel_number) AS personnel_number,
	e.first_name AS employee_first_name,
	e.last_name AS employee_last_name,
	e.known_name AS employee_known_name,
	e.initials AS employee_initials,
	e.race AS employee_race,
	e.gender AS employee_gender,
	e.disability AS employee_disability,
	e.ee_level AS employee_ee_level,
	e.ee_category AS employee_ee_category,
	e.job_title AS employee_job_title,
	e.job_grade AS employee_job_grade,
	e.id_number AS employee_id_number,
	e.site AS employee_site,
	e.highest_qualification AS employee_highest_qualification,
	e.notes AS employee_notes,
	te.id_number AS non_employee_id_number`

type Repository interface {
	FindRows(ctx context.Context, filter ReportFilter) ([]TrainingReportRow, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindRows(ctx context.Context, filter ReportFilter) ([]TrainingReportRow, error) {
	q := r.db.WithContext(ctx).
		Table("training_record_events AS r").
		Select(reportSelect).
		Joins("JOIN training_events te ON te.training_event_id = r.training_event_id").
		Joins("LEFT JOIN lookup_values event_types ON event_types.lookup_id = te.event_type_id").
		Joins("LEFT JOIN lookup_values event_names ON event_names.lookup_id = te.training_event_name_id").
		Joins("LEFT JOIN lookup_values regions ON regions.lookup_id = te.region_id").
		Joins("LEFT JOIN lookup_values provinces ON provinces.lookup_id = te.province_id").
		Joins("LEFT JOIN lookup_values municipalities ON municipalities.lookup_id = te.municipality_id").
		Joins("LEFT JOIN lookup_values sites ON sites.lookup_id = te.site_id").
		Joins("LEFT JOIN employees e ON e.personnel_number = te.personnel_number").
		Order("r.start_date, r.training_record_event_id")

	if filter.StartDate != nil {
		q = q.Where("r.start_date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		q = q.Where("r.end_date <= ?", *filter.EndDate)
	}
	if filter.PersonnelNumber != nil {
		q = q.Where("COALESCE(r.personnel_number, te.personnel_number) = ?", *filter.PersonnelNumber)
	}
	if filter.TrainingEventID != nil {
		q = q.Where("r.training_event_id = ?", *filter.TrainingEventID)
	}
	if filter.HasEvidence != nil {
		if *filter.HasEvidence {
			q = q.Where("r.evidence = ?", true)
		} else {
			q = q.Where("r.evidence = ? OR r.evidence IS NULL", false)
		}
	}

	var rows []TrainingReportRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
