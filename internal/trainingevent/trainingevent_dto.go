package trainingevent

// CreateTrainingEventRequest carries both participant identifiers; the
// service folds them into a Participant and rejects anything but an
// exact one-of.
type CreateTrainingEventRequest struct {
	PersonnelNumber     *string `json:"personnel_number" binding:"omitempty,max=20"`
	IDNumber            *string `json:"id_number" binding:"omitempty,max=13"`
	EventTypeID         int     `json:"event_type_id" binding:"required"`
	TrainingEventNameID int     `json:"training_event_name_id" binding:"required"`
	RegionID            int     `json:"region_id" binding:"required"`
	ProvinceID          int     `json:"province_id" binding:"required"`
	MunicipalityID      int     `json:"municipality_id" binding:"required"`
	SiteID              int     `json:"site_id" binding:"required"`
}

type UpdateTrainingEventRequest struct {
	PersonnelNumber     *string `json:"personnel_number" binding:"omitempty,max=20"`
	IDNumber            *string `json:"id_number" binding:"omitempty,max=13"`
	EventTypeID         int     `json:"event_type_id" binding:"required"`
	TrainingEventNameID int     `json:"training_event_name_id" binding:"required"`
	RegionID            int     `json:"region_id" binding:"required"`
	ProvinceID          int     `json:"province_id" binding:"required"`
	MunicipalityID      int     `json:"municipality_id" binding:"required"`
	SiteID              int     `json:"site_id" binding:"required"`
}
