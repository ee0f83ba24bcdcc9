package trainingrecord

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// costSumSelect aggregates every cost column with nulls folded to zero,
// so sparse capture forms still sum cleanly.
const costSumSelect = `COUNT(*) AS record_count,
	COALESCE(SUM(cost_training_materials), 0) AS cost_training_materials,
	COALESCE(SUM(cost_trainers), 0) AS cost_trainers,
	COALESCE(SUM(cost_training_facilities), 0) AS cost_training_facilities,
	COALESCE(SUM(scholarships_bursaries), 0) AS scholarships_bursaries,
	COALESCE(SUM(course_fees), 0) AS course_fees,
	COALESCE(SUM(accommodation), 0) AS accommodation,
	COALESCE(SUM(travel), 0) AS travel,
	COALESCE(SUM(meal), 0) AS meal,
	COALESCE(SUM(administration_costs), 0) AS administration_costs,
	COALESCE(SUM(equipment_depreciation), 0) AS equipment_depreciation`

type Repository interface {
	Create(ctx context.Context, rec *TrainingRecordEvent) error
	FindAll(ctx context.Context) ([]TrainingRecordEvent, error)
	FindByID(ctx context.Context, id int) (*TrainingRecordEvent, error)
	FindByTrainingEvent(ctx context.Context, trainingEventID int) ([]TrainingRecordEvent, error)
	FindByPersonnelNumber(ctx context.Context, personnelNumber string) ([]TrainingRecordEvent, error)
	FindByDateRange(ctx context.Context, start, end time.Time) ([]TrainingRecordEvent, error)
	FindWithEvidence(ctx context.Context) ([]TrainingRecordEvent, error)
	FindWithoutEvidence(ctx context.Context) ([]TrainingRecordEvent, error)
	SumCostsByTrainingEvent(ctx context.Context, trainingEventID int) (*CostSummary, error)
	SumCostsByPersonnelNumber(ctx context.Context, personnelNumber string) (*CostSummary, error)
	SumCostsByDateRange(ctx context.Context, start, end time.Time) (*CostSummary, error)
	Update(ctx context.Context, rec *TrainingRecordEvent) error
	Delete(ctx context.Context, id int) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, rec *TrainingRecordEvent) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *repository) FindAll(ctx context.Context) ([]TrainingRecordEvent, error) {
	var recs []TrainingRecordEvent
	err := r.db.WithContext(ctx).
		Order("start_date").
		Find(&recs).Error
	return recs, err
}

func (r *repository) FindByID(ctx context.Context, id int) (*TrainingRecordEvent, error) {
	var rec TrainingRecordEvent
	err := r.db.WithContext(ctx).First(&rec, "training_record_event_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *repository) FindByTrainingEvent(ctx context.Context, trainingEventID int) ([]TrainingRecordEvent, error) {
	var recs []TrainingRecordEvent
	err := r.db.WithContext(ctx).
		Where("training_event_id = ?", trainingEventID).
		Order("start_date").
		Find(&recs).Error
	return recs, err
}

func (r *repository) FindByPersonnelNumber(ctx context.Context, personnelNumber string) ([]TrainingRecordEvent, error) {
	var recs []TrainingRecordEvent
	err := r.db.WithContext(ctx).
		Where("personnel_number = ?", personnelNumber).
		Order("start_date").
		Find(&recs).Error
	return recs, err
}

func (r *repository) FindByDateRange(ctx context.Context, start, end time.Time) ([]TrainingRecordEvent, error) {
	var recs []TrainingRecordEvent
	err := r.db.WithContext(ctx).
		Where("start_date >= ? AND end_date <= ?", start, end).
		Order("start_date").
		Find(&recs).Error
	return recs, err
}

func (r *repository) FindWithEvidence(ctx context.Context) ([]TrainingRecordEvent, error) {
	var recs []TrainingRecordEvent
	err := r.db.WithContext(ctx).
		Where("evidence = ?", true).
		Order("start_date").
		Find(&recs).Error
	return recs, err
}

// FindWithoutEvidence includes records where evidence was never captured,
// not just those explicitly marked false.
func (r *repository) FindWithoutEvidence(ctx context.Context) ([]TrainingRecordEvent, error) {
	var recs []TrainingRecordEvent
	err := r.db.WithContext(ctx).
		Where("evidence = ? OR evidence IS NULL", false).
		Order("start_date").
		Find(&recs).Error
	return recs, err
}

func (r *repository) SumCostsByTrainingEvent(ctx context.Context, trainingEventID int) (*CostSummary, error) {
	return r.sumCosts(r.db.WithContext(ctx).
		Model(&TrainingRecordEvent{}).
		Where("training_event_id = ?", trainingEventID))
}

func (r *repository) SumCostsByPersonnelNumber(ctx context.Context, personnelNumber string) (*CostSummary, error) {
	return r.sumCosts(r.db.WithContext(ctx).
		Model(&TrainingRecordEvent{}).
		Where("personnel_number = ?", personnelNumber))
}

func (r *repository) SumCostsByDateRange(ctx context.Context, start, end time.Time) (*CostSummary, error) {
	return r.sumCosts(r.db.WithContext(ctx).
		Model(&TrainingRecordEvent{}).
		Where("start_date >= ? AND end_date <= ?", start, end))
}

func (r *repository) sumCosts(q *gorm.DB) (*CostSummary, error) {
	var summary CostSummary
	if err := q.Select(costSumSelect).Scan(&summary).Error; err != nil {
		return nil, err
	}
	summary.TotalCosts = summary.CostTrainingMaterials + summary.CostTrainers +
		summary.CostTrainingFacilities + summary.ScholarshipsBursaries +
		summary.CourseFees + summary.Accommodation + summary.Travel +
		summary.Meal + summary.AdministrationCosts + summary.EquipmentDepreciation
	return &summary, nil
}

func (r *repository) Update(ctx context.Context, rec *TrainingRecordEvent) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

func (r *repository) Delete(ctx context.Context, id int) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&TrainingRecordEvent{}, "training_record_event_id = ?", id)
	return res.RowsAffected, res.Error
}
