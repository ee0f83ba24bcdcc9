package employeelookup

// EmployeeLookup is a denormalized demographic-only employee record backing
// the lookup-style search surface. It shares the personnel-number identity
// with the full Employee record but is not foreign-keyed to it.
type EmployeeLookup struct {
	PersonnelNumber string  `gorm:"primaryKey;size:20" json:"personnel_number"`
	FirstName       string  `gorm:"size:50;not null" json:"first_name"`
	LastName        string  `gorm:"size:50;not null" json:"last_name"`
	KnownName       *string `gorm:"size:50" json:"known_name,omitempty"`
	Initials        *string `gorm:"size:10" json:"initials,omitempty"`
	Race            *string `gorm:"size:50" json:"race,omitempty"`
	Gender          *string `gorm:"size:20" json:"gender,omitempty"`
	Disability      *bool   `json:"disability,omitempty"`
	EELevel         *string `gorm:"column:ee_level;size:50" json:"ee_level,omitempty"`
	EECategory      *string `gorm:"column:ee_category;size:50" json:"ee_category,omitempty"`
}
