package repository

import (
	"context"

	"pengasuh_backend/internal/model"

	"gorm.io/gorm"
)

// ResultRepository is append-only: results are inserted and listed, never
// updated or deleted.
type ResultRepository struct {
	DB *gorm.DB
}

func NewResultRepository(db *gorm.DB) *ResultRepository {
	return &ResultRepository{DB: db}
}

func (r *ResultRepository) CreateStress(ctx context.Context, res *model.StressResult) error {
	return r.DB.WithContext(ctx).Create(res).Error
}

func (r *ResultRepository) CreateQuiz(ctx context.Context, res *model.QuizResult) error {
	return r.DB.WithContext(ctx).Create(res).Error
}

// ListStress returns the user's stress results, newest first.
func (r *ResultRepository) ListStress(ctx context.Context, userID uint, limit int) ([]model.StressResult, error) {
	var rs []model.StressResult
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("tested_at desc, id desc").
		Limit(limit).
		Find(&rs).Error
	return rs, err
}

func (r *ResultRepository) ListQuiz(ctx context.Context, userID uint, limit int) ([]model.QuizResult, error) {
	var rs []model.QuizResult
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("tested_at desc, id desc").
		Limit(limit).
		Find(&rs).Error
	return rs, err
}
