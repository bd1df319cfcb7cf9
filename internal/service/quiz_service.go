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

type QuizService struct {
	Questions *QuestionService
	Results   ResultRepositoryI
	log       *zap.Logger
	now       func() time.Time
}

func NewQuizService(questions *QuestionService, results ResultRepositoryI, log *zap.Logger) *QuizService {
	return &QuizService{
		Questions: questions,
		Results:   results,
		log:       log,
		now:       time.Now,
	}
}

// QuizQuestionView hides the correct option.
type QuizQuestionView struct {
	ID       uint          `json:"id"`
	QuizSet  model.QuizSet `json:"quizSet"`
	Question string        `json:"question"`
	Options  []string      `json:"options"`
	Order    int           `json:"order"`
}

func (s *QuizService) ListQuestions(ctx context.Context, set model.QuizSet) ([]QuizQuestionView, error) {
	qs, err := s.Questions.KnowledgeQuestions(ctx, set)
	if err != nil {
		return nil, err
	}
	views := make([]QuizQuestionView, len(qs))
	for i, q := range qs {
		views[i] = QuizQuestionView{
			ID:       q.ID,
			QuizSet:  q.QuizSet,
			Question: q.Question,
			Options:  q.OptionList(),
			Order:    q.DisplayOrder,
		}
	}
	return views, nil
}

type QuizSubmitRequest struct {
	QuizSet model.QuizSet `json:"quizSet" binding:"required"`
	// Answers maps question id to the selected option text.
	Answers map[uint]string `json:"answers" binding:"required"`
}

type QuizSubmission struct {
	Result model.QuizResult `json:"result"`
	Saved  bool             `json:"saved"`
}

// Submit scores a knowledge quiz. Persistence follows the same best-effort
// policy as StressService.Submit.
func (s *QuizService) Submit(ctx context.Context, userID uint, req QuizSubmitRequest) (*QuizSubmission, error) {
	ctx, span := tracing.Start(ctx, "QuizService.Submit")
	defer span.End()

	qs, err := s.Questions.KnowledgeQuestions(ctx, req.QuizSet)
	if err != nil {
		return nil, err
	}

	items := make([]scoring.KnowledgeItem, len(qs))
	for i, q := range qs {
		items[i] = scoring.KnowledgeItem{ID: q.ID, Options: q.OptionList(), CorrectOption: q.CorrectAnswer()}
	}

	outcome, err := scoring.ScoreKnowledge(items, req.Answers)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(
		attribute.Int("quiz.percentage", outcome.Percentage),
		attribute.String("quiz.level", string(outcome.Level)),
	)

	result := model.QuizResult{
		UserID:         userID,
		QuizSet:        req.QuizSet,
		CorrectAnswers: outcome.Correct,
		TotalQuestions: outcome.Total,
		Percentage:     outcome.Percentage,
		Level:          string(outcome.Level),
		TestedAt:       s.now(),
	}

	saved := true
	if err := s.Results.CreateQuiz(ctx, &result); err != nil {
		saved = false
		s.log.Warn("quiz result not persisted",
			zap.Uint("user_id", userID),
			zap.String("quiz_set", string(req.QuizSet)),
			zap.Error(err),
		)
	}
	monitoring.RecordSubmission(KindQuiz, string(outcome.Level), saved)

	return &QuizSubmission{Result: result, Saved: saved}, nil
}
