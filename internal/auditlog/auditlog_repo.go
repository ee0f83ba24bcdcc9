package auditlog

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, entry *AuditLog) error
	FindPage(ctx context.Context, offset, limit int) ([]AuditLog, int64, error)
	FindByID(ctx context.Context, id int) (*AuditLog, error)
	FindByUser(ctx context.Context, userID string, offset, limit int) ([]AuditLog, int64, error)
	FindByController(ctx context.Context, controller string, offset, limit int) ([]AuditLog, int64, error)
	FindByDateRange(ctx context.Context, start, end time.Time, offset, limit int) ([]AuditLog, int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, entry *AuditLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *repository) FindPage(ctx context.Context, offset, limit int) ([]AuditLog, int64, error) {
	return r.page(r.db.WithContext(ctx).Model(&AuditLog{}), offset, limit)
}

func (r *repository) FindByID(ctx context.Context, id int) (*AuditLog, error) {
	var entry AuditLog
	err := r.db.WithContext(ctx).First(&entry, "audit_log_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *repository) FindByUser(ctx context.Context, userID string, offset, limit int) ([]AuditLog, int64, error) {
	q := r.db.WithContext(ctx).Model(&AuditLog{}).Where("user_id = ?", userID)
	return r.page(q, offset, limit)
}

func (r *repository) FindByController(ctx context.Context, controller string, offset, limit int) ([]AuditLog, int64, error) {
	q := r.db.WithContext(ctx).Model(&AuditLog{}).Where("controller = ?", controller)
	return r.page(q, offset, limit)
}

func (r *repository) FindByDateRange(ctx context.Context, start, end time.Time, offset, limit int) ([]AuditLog, int64, error) {
	q := r.db.WithContext(ctx).Model(&AuditLog{}).
		Where("timestamp >= ? AND timestamp <= ?", start, end)
	return r.page(q, offset, limit)
}

func (r *repository) page(q *gorm.DB, offset, limit int) ([]AuditLog, int64, error) {
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var entries []AuditLog
	err := q.Order("timestamp DESC").
		Offset(offset).
		Limit(limit).
		Find(&entries).Error
	return entries, total, err
}
