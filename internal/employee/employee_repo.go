package employee

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

// Filter columns passed to FindByAttribute. These are package constants,
// never user input, so they are safe to splice into a condition.
const (
	colRace       = "race"
	colGender     = "gender"
	colEELevel    = "ee_level"
	colEECategory = "ee_category"
	colDisability = "disability"
	colJobTitle   = "job_title"
	colJobGrade   = "job_grade"
	colSite       = "site"
	colIDNumber   = "id_number"
)

type Repository interface {
	Create(ctx context.Context, empl *Employee) error
	FindAll(ctx context.Context) ([]Employee, error)
	FindByPersonnelNumber(ctx context.Context, personnelNumber string) (*Employee, error)
	Search(ctx context.Context, term string) ([]Employee, error)
	FindByAttribute(ctx context.Context, column string, value any) ([]Employee, error)
	Update(ctx context.Context, empl *Employee) error
	Delete(ctx context.Context, personnelNumber string) (int64, error)
	Exists(ctx context.Context, personnelNumber string) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Create(empl).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	var empls []Employee
	err := r.db.WithContext(ctx).
		Order("last_name, first_name").
		Find(&empls).Error
	return empls, err
}

func (r *repository) FindByPersonnelNumber(ctx context.Context, personnelNumber string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		First(&empl, "personnel_number = ?", personnelNumber).Error
	if err != nil {
		return nil, err
	}
	return &empl, nil
}

func (r *repository) Search(ctx context.Context, term string) ([]Employee, error) {
	pattern := "%" + strings.ToLower(term) + "%"
	var empls []Employee
	err := r.db.WithContext(ctx).
		Where(`LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(known_name) LIKE ?
			OR LOWER(personnel_number) LIKE ? OR LOWER(job_title) LIKE ? OR LOWER(job_grade) LIKE ?
			OR LOWER(id_number) LIKE ? OR LOWER(site) LIKE ? OR LOWER(notes) LIKE ?`,
			pattern, pattern, pattern, pattern, pattern, pattern, pattern, pattern, pattern).
		Order("last_name, first_name").
		Find(&empls).Error
	return empls, err
}

func (r *repository) FindByAttribute(ctx context.Context, column string, value any) ([]Employee, error) {
	var empls []Employee
	err := r.db.WithContext(ctx).
		Where(column+" = ?", value).
		Order("last_name, first_name").
		Find(&empls).Error
	return empls, err
}

func (r *repository) Update(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Save(empl).Error
}

func (r *repository) Delete(ctx context.Context, personnelNumber string) (int64, error) {
	res := r.db.WithContext(ctx).
		Delete(&Employee{}, "personnel_number = ?", personnelNumber)
	return res.RowsAffected, res.Error
}

func (r *repository) Exists(ctx context.Context, personnelNumber string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Employee{}).
		Where("personnel_number = ?", personnelNumber).
		Count(&count).Error
	return count > 0, err
}
