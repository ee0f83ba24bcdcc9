package employee

type CreateEmployeeRequest struct {
	PersonnelNumber      string  `json:"personnel_number" binding:"required,max=20"`
	FirstName            string  `json:"first_name" binding:"required,max=50"`
	LastName             string  `json:"last_name" binding:"required,max=50"`
	KnownName            *string `json:"known_name" binding:"omitempty,max=50"`
	Initials             *string `json:"initials" binding:"omitempty,max=10"`
	Race                 *string `json:"race" binding:"omitempty,max=50"`
	Gender               *string `json:"gender" binding:"omitempty,max=20"`
	Disability           *bool   `json:"disability"`
	EELevel              *string `json:"ee_level" binding:"omitempty,max=50"`
	EECategory           *string `json:"ee_category" binding:"omitempty,max=50"`
	JobTitle             *string `json:"job_title" binding:"omitempty,max=100"`
	JobGrade             *string `json:"job_grade" binding:"omitempty,max=20"`
	IDNumber             *string `json:"id_number" binding:"omitempty,max=13"`
	Site                 *string `json:"site" binding:"omitempty,max=100"`
	HighestQualification *string `json:"highest_qualification" binding:"omitempty,max=100"`
	Notes                *string `json:"notes"`
}

// UpdateEmployeeRequest replaces every mutable field; the personnel number
// comes from the URL and cannot change.
type UpdateEmployeeRequest struct {
	FirstName            string  `json:"first_name" binding:"required,max=50"`
	LastName             string  `json:"last_name" binding:"required,max=50"`
	KnownName            *string `json:"known_name" binding:"omitempty,max=50"`
	Initials             *string `json:"initials" binding:"omitempty,max=10"`
	Race                 *string `json:"race" binding:"omitempty,max=50"`
	Gender               *string `json:"gender" binding:"omitempty,max=20"`
	Disability           *bool   `json:"disability"`
	EELevel              *string `json:"ee_level" binding:"omitempty,max=50"`
	EECategory           *string `json:"ee_category" binding:"omitempty,max=50"`
	JobTitle             *string `json:"job_title" binding:"omitempty,max=100"`
	JobGrade             *string `json:"job_grade" binding:"omitempty,max=20"`
	IDNumber             *string `json:"id_number" binding:"omitempty,max=13"`
	Site                 *string `json:"site" binding:"omitempty,max=100"`
	HighestQualification *string `json:"highest_qualification" binding:"omitempty,max=100"`
	Notes                *string `json:"notes"`
}
