package service

import (
	"context"
	"time"

	"pengasuh_backend/internal/model"
	"pengasuh_backend/internal/scoring"
	"pengasuh_backend/pkg/monitoring"
	"pengasuh_backend/pkg/tracing"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

const (
	KindStress = "stres"
	KindQuiz   = "kuis"
)

type StressService struct {
	Questions *QuestionService
	Results   ResultRepositoryI
	log       *zap.Logger
	now       func() time.Time
}

func NewStressService(questions *QuestionService, results ResultRepositoryI, log *zap.Logger) *StressService {
	return &StressService{
		Questions: questions,
		Results:   results,
		log:       log,
		now:       time.Now,
	}
}

// StressQuestionView is a questionnaire item as shown to the caregiver.
type StressQuestionView struct {
	ID       uint     `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Order    int      `json:"order"`
}

func (s *StressService) ListQuestions(ctx context.Context) ([]StressQuestionView, error) {
	qs, err := s.Questions.StressQuestions(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]StressQuestionView, len(qs))
	for i, q := range qs {
		views[i] = StressQuestionView{
			ID:       q.ID,
			Question: q.Question,
			Options:  q.OptionList(),
			Order:    q.DisplayOrder,
		}
	}
	return views, nil
}

type StressSubmitRequest struct {
	// Answers maps question id to the selected Likert value (0..4).
	Answers map[uint]int `json:"answers" binding:"required"`
}

type StressSubmission struct {
	Result model.StressResult `json:"result"`
	Saved  bool               `json:"saved"`
}

// Submit scores a completed questionnaire and stores the result. Storing is
// best-effort: when the insert fails the scored result is still returned with
// Saved=false.
func (s *StressService) Submit(ctx context.Context, userID uint, req StressSubmitRequest) (*StressSubmission, error) {
	ctx, span := tracing.Start(ctx, "StressService.Submit")
	defer span.End()

	qs, err := s.Questions.StressQuestions(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, len(qs))
	for i, q := range qs {
		ids[i] = q.ID
	}

	outcome, err := scoring.ScoreStress(ids, req.Answers)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(
		attribute.Int("stress.total", outcome.Total),
		attribute.String("stress.level", string(outcome.Level)),
	)

	result := model.StressResult{
		UserID:     userID,
		TotalScore: outcome.Total,
		Level:      string(outcome.Level),
		TestedAt:   s.now(),
	}

	saved := true
	if err := s.Results.CreateStress(ctx, &result); err != nil {
		saved = false
		s.log.Warn("stress result not persisted",
			zap.Uint("user_id", userID),
			zap.Int("total", outcome.Total),
			zap.Error(err),
		)
	}
	monitoring.RecordSubmission(KindStress, string(outcome.Level), saved)

	return &StressSubmission{Result: result, Saved: saved}, nil
}
