package trainingevent

// TrainingEvent is a scheduled training occurrence tied to a participant
// (an employee by personnel number or an external person by ID number)
// and classified by six lookup dimensions.
type TrainingEvent struct {
	TrainingEventID     int     `gorm:"primaryKey;autoIncrement" json:"training_event_id"`
	PersonnelNumber     *string `gorm:"size:20;index" json:"personnel_number,omitempty"`
	IDNumber            *string `gorm:"column:id_number;size:13;index" json:"id_number,omitempty"`
	EventTypeID         int     `gorm:"not null;index" json:"event_type_id"`
	TrainingEventNameID int     `gorm:"not null" json:"training_event_name_id"`
	RegionID            int     `gorm:"not null;index" json:"region_id"`
	ProvinceID          int     `gorm:"not null;index" json:"province_id"`
	MunicipalityID      int     `gorm:"not null;index" json:"municipality_id"`
	SiteID              int     `gorm:"not null;index" json:"site_id"`
}

// NonEmployee is an external training participant identified by national
// ID number only.
type NonEmployee struct {
	IDNumber string `gorm:"column:id_number;primaryKey;size:13" json:"id_number"`
}
