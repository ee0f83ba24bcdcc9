package seed

import (
	"context"
	"os"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/JohanKruger/traindev-api/internal/employeelookup"
	"github.com/JohanKruger/traindev-api/internal/lookup"
)

// Seeder writes the baseline lookup taxonomies on first boot. Each
// seed checks for existing rows first so a restart never duplicates.
type Seeder struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewSeeder(db *gorm.DB, logger *zap.Logger) *Seeder {
	return &Seeder{db: db, logger: logger.Named("seed")}
}

func (s *Seeder) Run(ctx context.Context) error {
	if err := s.seedLookupValues(ctx); err != nil {
		return err
	}
	if os.Getenv("SEED_SAMPLE_DATA") == "true" {
		if err := s.seedEmployeeLookups(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedLookupValues(ctx context.Context) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&lookup.LookupValue{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	values := defaultLookupValues()
	if err := s.db.WithContext(ctx).Create(&values).Error; err != nil {
		return err
	}
	s.logger.Info("seeded lookup values", zap.Int("count", len(values)))
	return nil
}

func (s *Seeder) seedEmployeeLookups(ctx context.Context) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&employeelookup.EmployeeLookup{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	empls := sampleEmployeeLookups()
	if err := s.db.WithContext(ctx).Create(&empls).Error; err != nil {
		return err
	}
	s.logger.Info("seeded sample employee lookups", zap.Int("count", len(empls)))
	return nil
}

func lv(lookupType, value, code string, sortOrder int) lookup.LookupValue {
	return lookup.LookupValue{
		LookupType: lookupType,
		Value:      value,
		Code:       &code,
		SortOrder:  &sortOrder,
		IsActive:   true,
	}
}

func defaultLookupValues() []lookup.LookupValue {
	return []lookup.LookupValue{
		lv("EmployeeStatus", "Active", "ACTIVE", 1),
		lv("EmployeeStatus", "Inactive", "INACTIVE", 2),
		lv("EmployeeStatus", "Terminated", "TERM", 3),

		lv("Gender", "Male", "M", 1),
		lv("Gender", "Female", "F", 2),
		lv("Gender", "Other", "O", 3),

		lv("Race", "African", "AFR", 1),
		lv("Race", "Coloured", "COL", 2),
		lv("Race", "Indian", "IND", 3),
		lv("Race", "White", "WHT", 4),

		lv("Department", "Information Technology", "IT", 1),
		lv("Department", "Human Resources", "HR", 2),
		lv("Department", "Finance", "FIN", 3),
		lv("Department", "Operations", "OPS", 4),

		lv("EELevel", "Top Management", "TM", 1),
		lv("EELevel", "Senior Management", "SM", 2),
		lv("EELevel", "Professionally Qualified", "PQ", 3),
		lv("EELevel", "Skilled Technical", "ST", 4),
		lv("EELevel", "Semi-skilled", "SS", 5),
		lv("EELevel", "Unskilled", "US", 6),

		lv("TrainingStatus", "Not Started", "NS", 1),
		lv("TrainingStatus", "In Progress", "IP", 2),
		lv("TrainingStatus", "Completed", "COMP", 3),
		lv("TrainingStatus", "Cancelled", "CANC", 4),

		lv("TrainingType", "Skills Development", "SD", 1),
		lv("TrainingType", "Learnership", "LRN", 2),
		lv("TrainingType", "Internship", "INT", 3),
		lv("TrainingType", "Bursary", "BUR", 4),
	}
}

func el(pn, first, last, known, initials, race, gender string, disability bool, eeLevel, eeCategory string) employeelookup.EmployeeLookup {
	return employeelookup.EmployeeLookup{
		PersonnelNumber: pn,
		FirstName:       first,
		LastName:        last,
		KnownName:       &known,
		Initials:        &initials,
		Race:            &race,
		Gender:          &gender,
		Disability:      &disability,
		EELevel:         &eeLevel,
		EECategory:      &eeCategory,
	}
}

func sampleEmployeeLookups() []employeelookup.EmployeeLookup {
	return []employeelookup.EmployeeLookup{
		el("EMP001", "John", "Smith", "Johnny", "J.S.", "African", "Male", false, "Professionally Qualified", "Professional"),
		el("EMP002", "Sarah", "Johnson", "Sarah", "S.J.", "White", "Female", false, "Senior Management", "Management"),
		el("EMP003", "Michael", "Brown", "Mike", "M.B.", "Coloured", "Male", true, "Skilled Technical", "Technical"),
		el("EMP004", "Lisa", "Davis", "Lisa", "L.D.", "Indian", "Female", false, "Professionally Qualified", "Professional"),
		el("EMP005", "David", "Wilson", "Dave", "D.W.", "White", "Male", false, "Top Management", "Executive"),
		el("EMP006", "Jennifer", "Miller", "Jen", "J.M.", "African", "Female", false, "Semi-skilled", "Operator"),
		el("EMP007", "Robert", "Garcia", "Bob", "R.G.", "Coloured", "Male", false, "Skilled Technical", "Technical"),
		el("EMP008", "Emily", "Rodriguez", "Emily", "E.R.", "Indian", "Female", true, "Professionally Qualified", "Professional"),
		el("EMP009", "James", "Martinez", "Jim", "J.M.", "African", "Male", false, "Senior Management", "Management"),
		el("EMP010", "Amanda", "Anderson", "Amanda", "A.A.", "White", "Female", false, "Unskilled", "General"),
	}
}
