package trainingevent

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

// Lookup dimension columns passed to FindByLookup. Package constants,
// never user input.
const (
	colEventType    = "event_type_id"
	colRegion       = "region_id"
	colProvince     = "province_id"
	colMunicipality = "municipality_id"
	colSite         = "site_id"
)

// Listings join the event-name lookup so events come back in event-name
// order regardless of the filter.
const eventNameJoin = "JOIN lookup_values event_names ON event_names.lookup_id = training_events.training_event_name_id"

type Repository interface {
	Create(ctx context.Context, ev *TrainingEvent) error
	FindAll(ctx context.Context) ([]TrainingEvent, error)
	FindByID(ctx context.Context, id int) (*TrainingEvent, error)
	FindByPersonnelNumber(ctx context.Context, personnelNumber string) ([]TrainingEvent, error)
	FindByIDNumber(ctx context.Context, idNumber string) ([]TrainingEvent, error)
	FindByLookup(ctx context.Context, column string, lookupID int) ([]TrainingEvent, error)
	Search(ctx context.Context, term string) ([]TrainingEvent, error)
	Update(ctx context.Context, ev *TrainingEvent) error
	Delete(ctx context.Context, id int) (int64, error)
	Exists(ctx context.Context, id int) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, ev *TrainingEvent) error {
	return r.db.WithContext(ctx).Create(ev).Error
}

func (r *repository) FindAll(ctx context.Context) ([]TrainingEvent, error) {
	var evs []TrainingEvent
	err := r.db.WithContext(ctx).
		Joins(eventNameJoin).
		Order("event_names.value").
		Find(&evs).Error
	return evs, err
}

func (r *repository) FindByID(ctx context.Context, id int) (*TrainingEvent, error) {
	var ev TrainingEvent
	err := r.db.WithContext(ctx).First(&ev, "training_event_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

func (r *repository) FindByPersonnelNumber(ctx context.Context, personnelNumber string) ([]TrainingEvent, error) {
	var evs []TrainingEvent
	err := r.db.WithContext(ctx).
		Joins(eventNameJoin).
		Where("training_events.personnel_number = ?", personnelNumber).
		Order("event_names.value").
		Find(&evs).Error
	return evs, err
}

func (r *repository) FindByIDNumber(ctx context.Context, idNumber string) ([]TrainingEvent, error) {
	var evs []TrainingEvent
	err := r.db.WithContext(ctx).
		Joins(eventNameJoin).
		Where("training_events.id_number = ?", idNumber).
		Order("event_names.value").
		Find(&evs).Error
	return evs, err
}

func (r *repository) FindByLookup(ctx context.Context, column string, lookupID int) ([]TrainingEvent, error) {
	var evs []TrainingEvent
	err := r.db.WithContext(ctx).
		Joins(eventNameJoin).
		Where("training_events."+column+" = ?", lookupID).
		Order("event_names.value").
		Find(&evs).Error
	return evs, err
}

func (r *repository) Search(ctx context.Context, term string) ([]TrainingEvent, error) {
	pattern := "%" + strings.ToLower(term) + "%"
	var evs []TrainingEvent
	err := r.db.WithContext(ctx).
		Joins(eventNameJoin).
		Joins("JOIN lookup_values event_types ON event_types.lookup_id = training_events.event_type_id").
		Where("LOWER(event_names.value) LIKE ? OR LOWER(event_types.value) LIKE ?", pattern, pattern).
		Order("event_names.value").
		Find(&evs).Error
	return evs, err
}

func (r *repository) Update(ctx context.Context, ev *TrainingEvent) error {
	return r.db.WithContext(ctx).Save(ev).Error
}

func (r *repository) Delete(ctx context.Context, id int) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&TrainingEvent{}, "training_event_id = ?", id)
	return res.RowsAffected, res.Error
}

func (r *repository) Exists(ctx context.Context, id int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&TrainingEvent{}).
		Where("training_event_id = ?", id).
		Count(&count).Error
	return count > 0, err
}
