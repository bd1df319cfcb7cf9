package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"pengasuh_backend/internal/model"
	"pengasuh_backend/internal/scoring"
	"pengasuh_backend/internal/util"

	"go.uber.org/zap"
)

const (
	stressQuestionsKey    = "questions:stress"
	knowledgeQuestionsKey = "questions:knowledge:"
	defaultQuestionTTL    = 10 * time.Minute
)

// QuestionService serves the question sets through a read-through cache.
type QuestionService struct {
	Repo  QuestionRepositoryI
	Cache KeyValueStore
	TTL   time.Duration
	log   *zap.Logger
}

func NewQuestionService(repo QuestionRepositoryI, cache KeyValueStore, ttl time.Duration, log *zap.Logger) *QuestionService {
	if ttl <= 0 {
		ttl = defaultQuestionTTL
	}
	return &QuestionService{Repo: repo, Cache: cache, TTL: ttl, log: log}
}

func (s *QuestionService) readCache(ctx context.Context, key string, dst interface{}) bool {
	raw, err := s.Cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrCacheMiss) {
			s.log.Warn("question cache read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		s.log.Warn("question cache entry corrupt", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (s *QuestionService) writeCache(ctx context.Context, key string, v interface{}) {
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, key, string(raw), s.TTL); err != nil {
		s.log.Warn("question cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func (s *QuestionService) invalidate(ctx context.Context, key string) {
	if err := s.Cache.Delete(ctx, key); err != nil {
		s.log.Warn("question cache invalidation failed", zap.String("key", key), zap.Error(err))
	}
}

func (s *QuestionService) StressQuestions(ctx context.Context) ([]model.StressQuestion, error) {
	var qs []model.StressQuestion
	if s.readCache(ctx, stressQuestionsKey, &qs) {
		return qs, nil
	}

	qs, err := s.Repo.ListStress(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stress questions: %w", err)
	}
	if len(qs) > 0 {
		s.writeCache(ctx, stressQuestionsKey, qs)
	}
	return qs, nil
}

func (s *QuestionService) KnowledgeQuestions(ctx context.Context, set model.QuizSet) ([]model.KnowledgeQuestion, error) {
	if !set.Valid() {
		return nil, util.ErrInvalidQuizSet
	}

	key := knowledgeQuestionsKey + string(set)
	var qs []model.KnowledgeQuestion
	if s.readCache(ctx, key, &qs) {
		return qs, nil
	}

	qs, err := s.Repo.ListKnowledge(ctx, set)
	if err != nil {
		return nil, fmt.Errorf("list %s questions: %w", set, err)
	}
	if len(qs) > 0 {
		s.writeCache(ctx, key, qs)
	}
	return qs, nil
}

type QuestionRequest struct {
	Question      string   `json:"question" binding:"required"`
	Options       []string `json:"options" binding:"required,min=2"`
	CorrectOption int      `json:"correctOption" binding:"min=0"`
	DisplayOrder  int      `json:"displayOrder"`
}

func (req QuestionRequest) options() (string, error) {
	joined := scoring.JoinOptions(req.Options)
	if err := scoring.CheckChoices(scoring.SplitOptions(joined), req.CorrectOption); err != nil {
		return "", fmt.Errorf("%w: %v", util.ErrInvalidQuestion, err)
	}
	return joined, nil
}

func (s *QuestionService) CreateStressQuestion(ctx context.Context, req QuestionRequest) (*model.StressQuestion, error) {
	opts, err := req.options()
	if err != nil {
		return nil, err
	}
	if err := scoring.CheckLikertLabels(scoring.SplitOptions(opts)); err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrInvalidQuestion, err)
	}

	q := &model.StressQuestion{
		Question:      req.Question,
		Options:       opts,
		CorrectOption: req.CorrectOption,
		DisplayOrder:  req.DisplayOrder,
	}
	if err := s.Repo.CreateStress(ctx, q); err != nil {
		return nil, err
	}
	s.invalidate(ctx, stressQuestionsKey)
	return q, nil
}

type KnowledgeQuestionRequest struct {
	QuestionRequest
	QuizSet model.QuizSet `json:"quizSet" binding:"required"`
}

func (s *QuestionService) CreateKnowledgeQuestion(ctx context.Context, req KnowledgeQuestionRequest) (*model.KnowledgeQuestion, error) {
	if !req.QuizSet.Valid() {
		return nil, util.ErrInvalidQuizSet
	}
	opts, err := req.options()
	if err != nil {
		return nil, err
	}

	q := &model.KnowledgeQuestion{
		QuizSet:       req.QuizSet,
		Question:      req.Question,
		Options:       opts,
		CorrectOption: req.CorrectOption,
		DisplayOrder:  req.DisplayOrder,
	}
	if err := s.Repo.CreateKnowledge(ctx, q); err != nil {
		return nil, err
	}
	s.invalidate(ctx, knowledgeQuestionsKey+string(req.QuizSet))
	return q, nil
}
