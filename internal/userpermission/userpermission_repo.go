package userpermission

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, perm *UserPermission) error
	FindAll(ctx context.Context) ([]UserPermission, error)
	FindByID(ctx context.Context, id int) (*UserPermission, error)
	FindByUsername(ctx context.Context, username string) ([]UserPermission, error)
	FindByPermissionCode(ctx context.Context, code string) ([]UserPermission, error)
	Search(ctx context.Context, term string) ([]UserPermission, error)
	Has(ctx context.Context, username, code string) (bool, error)
	CountForUser(ctx context.Context, username string) (int64, error)
	Update(ctx context.Context, perm *UserPermission) error
	Delete(ctx context.Context, id int) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, perm *UserPermission) error {
	return r.db.WithContext(ctx).Create(perm).Error
}

func (r *repository) FindAll(ctx context.Context) ([]UserPermission, error) {
	var perms []UserPermission
	err := r.db.WithContext(ctx).
		Order("username, permission_code").
		Find(&perms).Error
	return perms, err
}

func (r *repository) FindByID(ctx context.Context, id int) (*UserPermission, error) {
	var perm UserPermission
	err := r.db.WithContext(ctx).First(&perm, "permission_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &perm, nil
}

func (r *repository) FindByUsername(ctx context.Context, username string) ([]UserPermission, error) {
	var perms []UserPermission
	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		Order("permission_code").
		Find(&perms).Error
	return perms, err
}

func (r *repository) FindByPermissionCode(ctx context.Context, code string) ([]UserPermission, error) {
	var perms []UserPermission
	err := r.db.WithContext(ctx).
		Where("permission_code = ?", code).
		Order("username").
		Find(&perms).Error
	return perms, err
}

func (r *repository) Search(ctx context.Context, term string) ([]UserPermission, error) {
	pattern := "%" + strings.ToLower(term) + "%"
	var perms []UserPermission
	err := r.db.WithContext(ctx).
		Where("LOWER(username) LIKE ? OR LOWER(permission_code) LIKE ?", pattern, pattern).
		Order("username, permission_code").
		Find(&perms).Error
	return perms, err
}

func (r *repository) Has(ctx context.Context, username, code string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&UserPermission{}).
		Where("username = ? AND permission_code = ?", username, code).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) CountForUser(ctx context.Context, username string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&UserPermission{}).
		Where("username = ?", username).
		Count(&count).Error
	return count, err
}

func (r *repository) Update(ctx context.Context, perm *UserPermission) error {
	return r.db.WithContext(ctx).Save(perm).Error
}

func (r *repository) Delete(ctx context.Context, id int) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&UserPermission{}, "permission_id = ?", id)
	return res.RowsAffected, res.Error
}
