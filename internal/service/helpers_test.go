package service

import (
	"context"
	"errors"
	"time"

	"pengasuh_backend/internal/model"
)

var errDB = errors.New("database is gone")

func stressQuestions(n int) []model.StressQuestion {
	qs := make([]model.StressQuestion, n)
	for i := range qs {
		qs[i] = model.StressQuestion{
			ID:           uint(i + 1),
			Question:     "Q",
			Options:      "Tidak pernah|Jarang|Kadang-kadang|Sering|Hampir selalu",
			DisplayOrder: i + 1,
		}
	}
	return qs
}

func knowledgeQuestions(set model.QuizSet, n int) []model.KnowledgeQuestion {
	qs := make([]model.KnowledgeQuestion, n)
	for i := range qs {
		qs[i] = model.KnowledgeQuestion{
			ID:            uint(i + 1),
			QuizSet:       set,
			Question:      "Q",
			Options:       "A|B|C|D",
			CorrectOption: 1,
			DisplayOrder:  i + 1,
		}
	}
	return qs
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// failingStore returns err from every call.
type failingStore struct{ err error }

func (s failingStore) Get(context.Context, string) (string, error) { return "", s.err }

func (s failingStore) Set(context.Context, string, string, time.Duration) error { return s.err }

func (s failingStore) Delete(context.Context, ...string) error { return s.err }
