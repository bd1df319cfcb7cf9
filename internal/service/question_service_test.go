package service

import (
	"context"
	"testing"
	"time"

	"pengasuh_backend/internal/model"
	mock_service "pengasuh_backend/internal/service/mock"
	"pengasuh_backend/internal/util"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestQuestionService_CacheInvalidatedOnCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockQuestionRepositoryI(ctrl)
	svc := NewQuestionService(repo, NewMemoryStore(), time.Minute, zap.NewNop())
	ctx := context.Background()

	gomock.InOrder(
		repo.EXPECT().ListKnowledge(gomock.Any(), model.PatientQuiz).Return(knowledgeQuestions(model.PatientQuiz, 2), nil),
		repo.EXPECT().CreateKnowledge(gomock.Any(), gomock.Any()).Return(nil),
		repo.EXPECT().ListKnowledge(gomock.Any(), model.PatientQuiz).Return(knowledgeQuestions(model.PatientQuiz, 3), nil),
	)

	qs, err := svc.KnowledgeQuestions(ctx, model.PatientQuiz)
	require.NoError(t, err)
	assert.Len(t, qs, 2)

	qs, err = svc.KnowledgeQuestions(ctx, model.PatientQuiz)
	require.NoError(t, err)
	assert.Len(t, qs, 2, "second read is served from cache")

	_, err = svc.CreateKnowledgeQuestion(ctx, KnowledgeQuestionRequest{
		QuestionRequest: QuestionRequest{Question: "Apa?", Options: []string{"A", "B"}, CorrectOption: 1},
		QuizSet:         model.PatientQuiz,
	})
	require.NoError(t, err)

	qs, err = svc.KnowledgeQuestions(ctx, model.PatientQuiz)
	require.NoError(t, err)
	assert.Len(t, qs, 3)
}

func TestQuestionService_CacheUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockQuestionRepositoryI(ctrl)
	repo.EXPECT().ListStress(gomock.Any()).Return(stressQuestions(2), nil).Times(2)

	svc := NewQuestionService(repo, failingStore{err: errDB}, time.Minute, zap.NewNop())
	for i := 0; i < 2; i++ {
		qs, err := svc.StressQuestions(context.Background())
		require.NoError(t, err)
		assert.Len(t, qs, 2)
	}
}

func TestQuestionService_CreateValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		req  QuestionRequest
	}{
		{name: "single option", req: QuestionRequest{Question: "Q", Options: []string{"A"}}},
		{name: "blank options dropped", req: QuestionRequest{Question: "Q", Options: []string{"A", " "}}},
		{name: "correct option out of range", req: QuestionRequest{Question: "Q", Options: []string{"A", "B"}, CorrectOption: 2}},
		{name: "stress needs five options", req: QuestionRequest{Question: "Q", Options: []string{"A", "B", "C"}}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewQuestionService(mock_service.NewMockQuestionRepositoryI(ctrl), NewMemoryStore(), 0, zap.NewNop())
			_, err := svc.CreateStressQuestion(context.Background(), tt.req)
			assert.ErrorIs(t, err, util.ErrInvalidQuestion)
		})
	}
}

func TestQuestionService_CreateStressQuestion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockQuestionRepositoryI(ctrl)
	repo.EXPECT().CreateStress(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, q *model.StressQuestion) error {
		assert.Equal(t, "Tidak pernah|Jarang|Kadang-kadang|Sering|Hampir selalu", q.Options)
		return nil
	})

	svc := NewQuestionService(repo, NewMemoryStore(), 0, zap.NewNop())
	q, err := svc.CreateStressQuestion(context.Background(), QuestionRequest{
		Question: "Saya mudah marah",
		Options:  []string{"Tidak pernah", "Jarang", "Kadang-kadang", "Sering", "Hampir selalu"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Saya mudah marah", q.Question)
}
