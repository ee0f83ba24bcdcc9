package trainingrecord

import (
	"time"

	"github.com/JohanKruger/traindev-api/internal/trainingevent"
)

// TrainingRecordEvent is the attendance and cost record for one training
// event occurrence. Cost columns are nullable so a blank capture form
// stays distinguishable from a zero cost. Deleting the parent event
// removes its records through the foreign key.
type TrainingRecordEvent struct {
	TrainingRecordEventID   int                          `gorm:"primaryKey;autoIncrement" json:"training_record_event_id"`
	TrainingEventID         int                          `gorm:"not null;index" json:"training_event_id"`
	TrainingEvent           *trainingevent.TrainingEvent `gorm:"foreignKey:TrainingEventID;constraint:OnDelete:CASCADE" json:"-"`
	StartDate               time.Time                    `gorm:"not null;index" json:"start_date"`
	EndDate                 time.Time                    `gorm:"not null" json:"end_date"`
	Hours                   *int                         `json:"hours,omitempty"`
	Minutes                 *int                         `json:"minutes,omitempty"`
	PersonnelNumber         *string                      `gorm:"size:20;index" json:"personnel_number,omitempty"`
	Evidence                *bool                        `json:"evidence,omitempty"`
	ServiceProviderExternal *string                      `gorm:"size:200" json:"service_provider_external,omitempty"`
	CostTrainingMaterials   *float64                     `gorm:"type:decimal(18,2)" json:"cost_training_materials,omitempty"`
	CostTrainers            *float64                     `gorm:"type:decimal(18,2)" json:"cost_trainers,omitempty"`
	CostTrainingFacilities  *float64                     `gorm:"type:decimal(18,2)" json:"cost_training_facilities,omitempty"`
	ScholarshipsBursaries   *float64                     `gorm:"type:decimal(18,2)" json:"scholarships_bursaries,omitempty"`
	CourseFees              *float64                     `gorm:"type:decimal(18,2)" json:"course_fees,omitempty"`
	Accommodation           *float64                     `gorm:"type:decimal(18,2)" json:"accommodation,omitempty"`
	Travel                  *float64                     `gorm:"type:decimal(18,2)" json:"travel,omitempty"`
	Meal                    *float64                     `gorm:"type:decimal(18,2)" json:"meal,omitempty"`
	AdministrationCosts     *float64                     `gorm:"type:decimal(18,2)" json:"administration_costs,omitempty"`
	EquipmentDepreciation   *float64                     `gorm:"type:decimal(18,2)" json:"equipment_depreciation,omitempty"`
	// Salary is captured for payroll reconciliation; it is not a training
	// cost and never feeds the totals or the report.
	Salary *float64 `gorm:"type:decimal(18,2)" json:"salary,omitempty"`
}

// TotalCosts sums every cost column, treating nil as zero.
func (r TrainingRecordEvent) TotalCosts() float64 {
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

// TotalDurationMinutes folds hours into minutes, treating nil as zero.
func (r TrainingRecordEvent) TotalDurationMinutes() int {
	var total int
	if r.Hours != nil {
		total += *r.Hours * 60
	}
	if r.Minutes != nil {
		total += *r.Minutes
	}
	return total
}
