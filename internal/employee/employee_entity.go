package employee

// Employee is the internal HR record for a training participant, keyed by
// the personnel number from the HR master system.
type Employee struct {
	PersonnelNumber      string  `gorm:"primaryKey;size:20" json:"personnel_number"`
	FirstName            string  `gorm:"size:50;not null" json:"first_name"`
	LastName             string  `gorm:"size:50;not null" json:"last_name"`
	KnownName            *string `gorm:"size:50" json:"known_name,omitempty"`
	Initials             *string `gorm:"size:10" json:"initials,omitempty"`
	Race                 *string `gorm:"size:50" json:"race,omitempty"`
	Gender               *string `gorm:"size:20" json:"gender,omitempty"`
	Disability           *bool   `json:"disability,omitempty"`
	EELevel              *string `gorm:"column:ee_level;size:50" json:"ee_level,omitempty"`
	EECategory           *string `gorm:"column:ee_category;size:50" json:"ee_category,omitempty"`
	JobTitle             *string `gorm:"size:100" json:"job_title,omitempty"`
	JobGrade             *string `gorm:"size:20" json:"job_grade,omitempty"`
	IDNumber             *string `gorm:"column:id_number;size:13" json:"id_number,omitempty"`
	Site                 *string `gorm:"size:100" json:"site,omitempty"`
	HighestQualification *string `gorm:"size:100" json:"highest_qualification,omitempty"`
	Notes                *string `gorm:"type:text" json:"notes,omitempty"`
}
