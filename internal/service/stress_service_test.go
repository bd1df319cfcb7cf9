package service

import (
	"context"
	"testing"
	"time"

	"pengasuh_backend/internal/model"
	"pengasuh_backend/internal/scoring"
	mock_service "pengasuh_backend/internal/service/mock"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newStressServiceMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_service.MockQuestionRepositoryI, *mock_service.MockResultRepositoryI)) *StressService {
	t.Helper()
	questions := mock_service.NewMockQuestionRepositoryI(ctrl)
	results := mock_service.NewMockResultRepositoryI(ctrl)
	if setupMock != nil {
		setupMock(questions, results)
	}

	log := zap.NewNop()
	svc := NewStressService(NewQuestionService(questions, NewMemoryStore(), time.Minute, log), results, log)
	svc.now = fixedClock(time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC))
	return svc
}

func answersAll(n, value int) map[uint]int {
	a := make(map[uint]int, n)
	for i := 1; i <= n; i++ {
		a[uint(i)] = value
	}
	return a
}

func TestStressService_Submit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		answers   map[uint]int
		f         func(*mock_service.MockQuestionRepositoryI, *mock_service.MockResultRepositoryI)
		wantErr   error
		wantTotal int
		wantLevel scoring.StressLevel
		wantSaved bool
	}{
		{
			name:    "all zero is low and saved",
			answers: answersAll(24, 0),
			f: func(q *mock_service.MockQuestionRepositoryI, r *mock_service.MockResultRepositoryI) {
				q.EXPECT().ListStress(gomock.Any()).Return(stressQuestions(24), nil)
				r.EXPECT().CreateStress(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, res *model.StressResult) error {
						res.ID = 7
						return nil
					})
			},
			wantTotal: 0,
			wantLevel: scoring.StressLow,
			wantSaved: true,
		},
		{
			name:    "all max is high",
			answers: answersAll(24, 4),
			f: func(q *mock_service.MockQuestionRepositoryI, r *mock_service.MockResultRepositoryI) {
				q.EXPECT().ListStress(gomock.Any()).Return(stressQuestions(24), nil)
				r.EXPECT().CreateStress(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantTotal: 96,
			wantLevel: scoring.StressHigh,
			wantSaved: true,
		},
		{
			name:    "insert failure still returns the score",
			answers: answersAll(24, 2),
			f: func(q *mock_service.MockQuestionRepositoryI, r *mock_service.MockResultRepositoryI) {
				q.EXPECT().ListStress(gomock.Any()).Return(stressQuestions(24), nil)
				r.EXPECT().CreateStress(gomock.Any(), gomock.Any()).Return(errDB)
			},
			wantTotal: 48,
			wantLevel: scoring.StressMedium,
			wantSaved: false,
		},
		{
			name:    "incomplete answers are rejected before insert",
			answers: answersAll(23, 1),
			f: func(q *mock_service.MockQuestionRepositoryI, r *mock_service.MockResultRepositoryI) {
				q.EXPECT().ListStress(gomock.Any()).Return(stressQuestions(24), nil)
			},
			wantErr: scoring.ErrIncompleteAnswers,
		},
		{
			name:    "out of range answer",
			answers: map[uint]int{1: 5},
			f: func(q *mock_service.MockQuestionRepositoryI, r *mock_service.MockResultRepositoryI) {
				q.EXPECT().ListStress(gomock.Any()).Return(stressQuestions(1), nil)
			},
			wantErr: scoring.ErrResponseOutOfRange,
		},
		{
			name:    "no questions configured",
			answers: map[uint]int{},
			f: func(q *mock_service.MockQuestionRepositoryI, r *mock_service.MockResultRepositoryI) {
				q.EXPECT().ListStress(gomock.Any()).Return(nil, nil)
			},
			wantErr: scoring.ErrNoQuestions,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := newStressServiceMock(t, ctrl, tt.f)
			got, err := svc.Submit(context.Background(), 3, StressSubmitRequest{Answers: tt.answers})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantSaved, got.Saved)
			assert.Equal(t, tt.wantTotal, got.Result.TotalScore)
			assert.Equal(t, string(tt.wantLevel), got.Result.Level)
			assert.Equal(t, uint(3), got.Result.UserID)
			assert.False(t, got.Result.TestedAt.IsZero())
		})
	}
}

func TestStressService_ListQuestions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newStressServiceMock(t, ctrl, func(q *mock_service.MockQuestionRepositoryI, _ *mock_service.MockResultRepositoryI) {
		q.EXPECT().ListStress(gomock.Any()).Return(stressQuestions(3), nil).Times(1)
	})

	for i := 0; i < 2; i++ {
		views, err := svc.ListQuestions(context.Background())
		require.NoError(t, err)
		require.Len(t, views, 3)
		assert.Len(t, views[0].Options, 5)
		assert.Equal(t, 1, views[0].Order)
	}
}
