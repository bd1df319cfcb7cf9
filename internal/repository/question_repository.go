package repository

import (
	"context"

	"pengasuh_backend/internal/model"

	"gorm.io/gorm"
)

// QuestionRepository reads the immutable question sets.
type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) ListStress(ctx context.Context) ([]model.StressQuestion, error) {
	var qs []model.StressQuestion
	err := r.DB.WithContext(ctx).Order("display_order asc, id asc").Find(&qs).Error
	return qs, err
}

func (r *QuestionRepository) ListKnowledge(ctx context.Context, set model.QuizSet) ([]model.KnowledgeQuestion, error) {
	var qs []model.KnowledgeQuestion
	err := r.DB.WithContext(ctx).
		Where("quiz_set = ?", set).
		Order("display_order asc, id asc").
		Find(&qs).Error
	return qs, err
}

func (r *QuestionRepository) CreateStress(ctx context.Context, q *model.StressQuestion) error {
	return r.DB.WithContext(ctx).Create(q).Error
}

func (r *QuestionRepository) CreateKnowledge(ctx context.Context, q *model.KnowledgeQuestion) error {
	return r.DB.WithContext(ctx).Create(q).Error
}
