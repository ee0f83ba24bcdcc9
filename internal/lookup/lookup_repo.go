package lookup

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, lv *LookupValue) error
	FindAll(ctx context.Context) ([]LookupValue, error)
	FindByID(ctx context.Context, id int) (*LookupValue, error)
	FindByType(ctx context.Context, lookupType string) ([]LookupValue, error)
	FindActiveByType(ctx context.Context, lookupType string) ([]LookupValue, error)
	FindChildren(ctx context.Context, parentID int) ([]LookupValue, error)
	Update(ctx context.Context, lv *LookupValue) error
	Delete(ctx context.Context, id int) (int64, error)
	Exists(ctx context.Context, id int) (bool, error)
	HasChildren(ctx context.Context, id int) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, lv *LookupValue) error {
	return r.db.WithContext(ctx).Create(lv).Error
}

func (r *repository) FindAll(ctx context.Context) ([]LookupValue, error) {
	var lvs []LookupValue
	err := r.db.WithContext(ctx).
		Order("lookup_type, sort_order, value").
		Find(&lvs).Error
	return lvs, err
}

func (r *repository) FindByID(ctx context.Context, id int) (*LookupValue, error) {
	var lv LookupValue
	err := r.db.WithContext(ctx).First(&lv, "lookup_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &lv, nil
}

func (r *repository) FindByType(ctx context.Context, lookupType string) ([]LookupValue, error) {
	var lvs []LookupValue
	err := r.db.WithContext(ctx).
		Where("lookup_type = ?", lookupType).
		Order("sort_order, value").
		Find(&lvs).Error
	return lvs, err
}

func (r *repository) FindActiveByType(ctx context.Context, lookupType string) ([]LookupValue, error) {
	var lvs []LookupValue
	err := r.db.WithContext(ctx).
		Where("lookup_type = ? AND is_active = ?", lookupType, true).
		Order("sort_order, value").
		Find(&lvs).Error
	return lvs, err
}

func (r *repository) FindChildren(ctx context.Context, parentID int) ([]LookupValue, error) {
	var lvs []LookupValue
	err := r.db.WithContext(ctx).
		Where("parent_id = ?", parentID).
		Order("sort_order, value").
		Find(&lvs).Error
	return lvs, err
}

func (r *repository) Update(ctx context.Context, lv *LookupValue) error {
	return r.db.WithContext(ctx).Save(lv).Error
}

func (r *repository) Delete(ctx context.Context, id int) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&LookupValue{}, "lookup_id = ?", id)
	return res.RowsAffected, res.Error
}

func (r *repository) Exists(ctx context.Context, id int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&LookupValue{}).
		Where("lookup_id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) HasChildren(ctx context.Context, id int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&LookupValue{}).
		Where("parent_id = ?", id).
		Count(&count).Error
	return count > 0, err
}
