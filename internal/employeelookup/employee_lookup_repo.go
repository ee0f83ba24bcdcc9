package employeelookup

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

// Filter columns for FindByAttribute; package constants only.
const (
	colRace       = "race"
	colGender     = "gender"
	colEELevel    = "ee_level"
	colEECategory = "ee_category"
	colDisability = "disability"
)

type Repository interface {
	Create(ctx context.Context, rec *EmployeeLookup) error
	FindAll(ctx context.Context) ([]EmployeeLookup, error)
	FindByPersonnelNumber(ctx context.Context, personnelNumber string) (*EmployeeLookup, error)
	Search(ctx context.Context, term string) ([]EmployeeLookup, error)
	FindByAttribute(ctx context.Context, column string, value any) ([]EmployeeLookup, error)
	Update(ctx context.Context, rec *EmployeeLookup) error
	Delete(ctx context.Context, personnelNumber string) (int64, error)
	Exists(ctx context.Context, personnelNumber string) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, rec *EmployeeLookup) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *repository) FindAll(ctx context.Context) ([]EmployeeLookup, error) {
	var recs []EmployeeLookup
	err := r.db.WithContext(ctx).
		Order("last_name, first_name").
		Find(&recs).Error
	return recs, err
}

func (r *repository) FindByPersonnelNumber(ctx context.Context, personnelNumber string) (*EmployeeLookup, error) {
	var rec EmployeeLookup
	err := r.db.WithContext(ctx).
		First(&rec, "personnel_number = ?", personnelNumber).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *repository) Search(ctx context.Context, term string) ([]EmployeeLookup, error) {
	pattern := "%" + strings.ToLower(term) + "%"
	var recs []EmployeeLookup
	err := r.db.WithContext(ctx).
		Where(`LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(known_name) LIKE ?
			OR LOWER(personnel_number) LIKE ?`,
			pattern, pattern, pattern, pattern).
		Order("last_name, first_name").
		Find(&recs).Error
	return recs, err
}

func (r *repository) FindByAttribute(ctx context.Context, column string, value any) ([]EmployeeLookup, error) {
	var recs []EmployeeLookup
	err := r.db.WithContext(ctx).
		Where(column+" = ?", value).
		Order("last_name, first_name").
		Find(&recs).Error
	return recs, err
}

func (r *repository) Update(ctx context.Context, rec *EmployeeLookup) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

func (r *repository) Delete(ctx context.Context, personnelNumber string) (int64, error) {
	res := r.db.WithContext(ctx).
		Delete(&EmployeeLookup{}, "personnel_number = ?", personnelNumber)
	return res.RowsAffected, res.Error
}

func (r *repository) Exists(ctx context.Context, personnelNumber string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&EmployeeLookup{}).
		Where("personnel_number = ?", personnelNumber).
		Count(&count).Error
	return count > 0, err
}
