package service

import (
	"context"
	"time"

	"pengasuh_backend/internal/model"
)

//go:generate mockgen -source=service.go -destination=mock/mock_service.go -package=mock_service

type UserRepositoryI interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
	UpdateLastLogin(ctx context.Context, userID uint, at time.Time) error
}

type QuestionRepositoryI interface {
	ListStress(ctx context.Context) ([]model.StressQuestion, error)
	ListKnowledge(ctx context.Context, set model.QuizSet) ([]model.KnowledgeQuestion, error)
	CreateStress(ctx context.Context, q *model.StressQuestion) error
	CreateKnowledge(ctx context.Context, q *model.KnowledgeQuestion) error
}

type ResultRepositoryI interface {
	CreateStress(ctx context.Context, res *model.StressResult) error
	CreateQuiz(ctx context.Context, res *model.QuizResult) error
	ListStress(ctx context.Context, userID uint, limit int) ([]model.StressResult, error)
	ListQuiz(ctx context.Context, userID uint, limit int) ([]model.QuizResult, error)
}

type MediaRepositoryI interface {
	ListByTopic(ctx context.Context, topic model.MediaTopic, kind model.MediaKind) ([]model.MediaContent, error)
	Create(ctx context.Context, item *model.MediaContent) error
}
