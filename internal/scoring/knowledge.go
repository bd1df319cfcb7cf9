package scoring

import (
	"fmt"
	"strings"
)

// KnowledgeLevel is one of the three ordered knowledge bands.
type KnowledgeLevel string

const (
	KnowledgeGood     KnowledgeLevel = "baik"
	KnowledgeAdequate KnowledgeLevel = "cukup"
	KnowledgePoor     KnowledgeLevel = "kurang"
)

// Lower bounds (inclusive) of the good and adequate bands, in percent.
const (
	KnowledgeGoodMin     = 76
	KnowledgeAdequateMin = 56
)

// Percentage returns correct/total*100 truncated to an integer and clamped to
// [0, 100]. A non-positive total yields 0.
func Percentage(correct, total int) int {
	if total <= 0 || correct <= 0 {
		return 0
	}
	if correct >= total {
		return 100
	}
	return correct * 100 / total
}

func ClassifyKnowledge(pct int) KnowledgeLevel {
	switch {
	case pct >= KnowledgeGoodMin:
		return KnowledgeGood
	case pct >= KnowledgeAdequateMin:
		return KnowledgeAdequate
	default:
		return KnowledgePoor
	}
}

// KnowledgeItem is the part of a quiz question the scorer needs.
type KnowledgeItem struct {
	ID            uint
	Options       []string
	CorrectOption string
}

func (it KnowledgeItem) hasOption(text string) bool {
	for _, o := range it.Options {
		if strings.TrimSpace(o) == text {
			return true
		}
	}
	return false
}

type KnowledgeOutcome struct {
	Correct    int            `json:"correctAnswers"`
	Total      int            `json:"totalQuestions"`
	Percentage int            `json:"percentage"`
	Level      KnowledgeLevel `json:"level"`
}

// ScoreKnowledge counts answers whose option text equals the correct option
// (ignoring surrounding whitespace), then derives percentage and band. A blank
// answer counts as unanswered; text that is not one of the item's options is
// rejected.
func ScoreKnowledge(items []KnowledgeItem, answers map[uint]string) (KnowledgeOutcome, error) {
	if len(items) == 0 {
		return KnowledgeOutcome{}, ErrNoQuestions
	}

	known := make(map[uint]struct{}, len(items))
	var missing []uint
	correct := 0
	for _, it := range items {
		known[it.ID] = struct{}{}
		selected := strings.TrimSpace(answers[it.ID])
		if selected == "" {
			missing = append(missing, it.ID)
			continue
		}
		if !it.hasOption(selected) {
			return KnowledgeOutcome{}, fmt.Errorf("%w: question %d got %q", ErrUnknownOption, it.ID, selected)
		}
		if selected == strings.TrimSpace(it.CorrectOption) {
			correct++
		}
	}
	if len(missing) > 0 {
		return KnowledgeOutcome{}, fmt.Errorf("%w: missing %v", ErrIncompleteAnswers, missing)
	}

	ids := make([]uint, 0, len(answers))
	for id := range answers {
		ids = append(ids, id)
	}
	if err := checkUnknown(known, ids); err != nil {
		return KnowledgeOutcome{}, err
	}

	pct := Percentage(correct, len(items))
	return KnowledgeOutcome{
		Correct:    correct,
		Total:      len(items),
		Percentage: pct,
		Level:      ClassifyKnowledge(pct),
	}, nil
}
