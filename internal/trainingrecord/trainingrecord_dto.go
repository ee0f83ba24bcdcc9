package trainingrecord

import "time"

type CreateTrainingRecordEventRequest struct {
	TrainingEventID         int       `json:"training_event_id" binding:"required"`
	StartDate               time.Time `json:"start_date" binding:"required"`
	EndDate                 time.Time `json:"end_date" binding:"required"`
	Hours                   *int      `json:"hours" binding:"omitempty,min=0"`
	Minutes                 *int      `json:"minutes" binding:"omitempty,min=0,max=59"`
	PersonnelNumber         *string   `json:"personnel_number" binding:"omitempty,max=20"`
	Evidence                *bool     `json:"evidence"`
	ServiceProviderExternal *string   `json:"service_provider_external" binding:"omitempty,max=200"`
	CostTrainingMaterials   *float64  `json:"cost_training_materials" binding:"omitempty,min=0"`
	CostTrainers            *float64  `json:"cost_trainers" binding:"omitempty,min=0"`
	CostTrainingFacilities  *float64  `json:"cost_training_facilities" binding:"omitempty,min=0"`
	ScholarshipsBursaries   *float64  `json:"scholarships_bursaries" binding:"omitempty,min=0"`
	CourseFees              *float64  `json:"course_fees" binding:"omitempty,min=0"`
	Accommodation           *float64  `json:"accommodation" binding:"omitempty,min=0"`
	Travel                  *float64  `json:"travel" binding:"omitempty,min=0"`
	Meal                    *float64  `json:"meal" binding:"omitempty,min=0"`
	AdministrationCosts     *float64  `json:"administration_costs" binding:"omitempty,min=0"`
	EquipmentDepreciation   *float64  `json:"equipment_depreciation" binding:"omitempty,min=0"`
}

type UpdateTrainingRecordEventRequest = CreateTrainingRecordEventRequest

// TrainingRecordEventResponse is the entity plus the two derived fields
// clients expect alongside the raw columns.
type TrainingRecordEventResponse struct {
	TrainingRecordEvent
	TotalCosts           float64 `json:"total_costs"`
	TotalDurationMinutes int     `json:"total_duration_minutes"`
}

func mapToResponse(rec TrainingRecordEvent) TrainingRecordEventResponse {
	return TrainingRecordEventResponse{
		TrainingRecordEvent:  rec,
		TotalCosts:           rec.TotalCosts(),
		TotalDurationMinutes: rec.TotalDurationMinutes(),
	}
}

func mapToListResponse(recs []TrainingRecordEvent) []TrainingRecordEventResponse {
	res := make([]TrainingRecordEventResponse, len(recs))
	for i, rec := range recs {
		res[i] = mapToResponse(rec)
	}
	return res
}

// CostSummary is the aggregate of every cost column over a filtered set
// of records, nulls counted as zero.
type CostSummary struct {
	RecordCount            int64   `json:"record_count"`
	CostTrainingMaterials  float64 `json:"cost_training_materials"`
	CostTrainers           float64 `json:"cost_trainers"`
	CostTrainingFacilities float64 `json:"cost_training_facilities"`
	ScholarshipsBursaries  float64 `json:"scholarships_bursaries"`
	CourseFees             float64 `json:"course_fees"`
	Accommodation          float64 `json:"accommodation"`
	Travel                 float64 `json:"travel"`
	Meal                   float64 `json:"meal"`
	AdministrationCosts    float64 `json:"administration_costs"`
	EquipmentDepreciation  float64 `json:"equipment_depreciation"`
	TotalCosts             float64 `json:"total_costs"`
}
