package employeelookup

type CreateEmployeeLookupRequest struct {
	PersonnelNumber string  `json:"personnel_number" binding:"required,max=20"`
	FirstName       string  `json:"first_name" binding:"required,max=50"`
	LastName        string  `json:"last_name" binding:"required,max=50"`
	KnownName       *string `json:"known_name" binding:"omitempty,max=50"`
	Initials        *string `json:"initials" binding:"omitempty,max=10"`
	Race            *string `json:"race" binding:"omitempty,max=50"`
	Gender          *string `json:"gender" binding:"omitempty,max=20"`
	Disability      *bool   `json:"disability"`
	EELevel         *string `json:"ee_level" binding:"omitempty,max=50"`
	EECategory      *string `json:"ee_category" binding:"omitempty,max=50"`
}

type UpdateEmployeeLookupRequest struct {
	FirstName  string  `json:"first_name" binding:"required,max=50"`
	LastName   string  `json:"last_name" binding:"required,max=50"`
	KnownName  *string `json:"known_name" binding:"omitempty,max=50"`
	Initials   *string `json:"initials" binding:"omitempty,max=10"`
	Race       *string `json:"race" binding:"omitempty,max=50"`
	Gender     *string `json:"gender" binding:"omitempty,max=20"`
	Disability *bool   `json:"disability"`
	EELevel    *string `json:"ee_level" binding:"omitempty,max=50"`
	EECategory *string `json:"ee_category" binding:"omitempty,max=50"`
}
