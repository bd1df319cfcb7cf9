package scoring

import (
	"fmt"
	"sort"
)

// StressLevel is one of the three ordered stress bands.
type StressLevel string

const (
	StressLow    StressLevel = "rendah"
	StressMedium StressLevel = "sedang"
	StressHigh   StressLevel = "tinggi"
)

// Likert response range for a single questionnaire item.
const (
	MinLikert = 0
	MaxLikert = 4
)

// Upper bounds (inclusive) of the low and medium bands. A score sitting exactly
// on a boundary belongs to the lower band.
const (
	StressLowMax    = 32
	StressMediumMax = 64
)

// Severity orders the bands: 1 for rendah up to 3 for tinggi, 0 if unknown.
func (l StressLevel) Severity() int {
	switch l {
	case StressLow:
		return 1
	case StressMedium:
		return 2
	case StressHigh:
		return 3
	}
	return 0
}

// ClassifyStress maps a summed questionnaire score to its band.
func ClassifyStress(total int) StressLevel {
	switch {
	case total <= StressLowMax:
		return StressLow
	case total <= StressMediumMax:
		return StressMedium
	default:
		return StressHigh
	}
}

type StressOutcome struct {
	Total    int         `json:"totalScore"`
	Level    StressLevel `json:"level"`
	Answered int         `json:"answered"`
}

// ScoreStress sums the Likert responses for every question in questionIDs and
// classifies the total. The answer map must cover the question set exactly.
func ScoreStress(questionIDs []uint, answers map[uint]int) (StressOutcome, error) {
	if len(questionIDs) == 0 {
		return StressOutcome{}, ErrNoQuestions
	}

	known := make(map[uint]struct{}, len(questionIDs))
	var missing []uint
	total := 0
	for _, id := range questionIDs {
		known[id] = struct{}{}
		v, ok := answers[id]
		if !ok {
			missing = append(missing, id)
			continue
		}
		if v < MinLikert || v > MaxLikert {
			return StressOutcome{}, fmt.Errorf("%w: question %d has %d, want %d..%d",
				ErrResponseOutOfRange, id, v, MinLikert, MaxLikert)
		}
		total += v
	}
	if len(missing) > 0 {
		return StressOutcome{}, fmt.Errorf("%w: missing %v", ErrIncompleteAnswers, missing)
	}
	if err := checkUnknown(known, intKeys(answers)); err != nil {
		return StressOutcome{}, err
	}

	return StressOutcome{
		Total:    total,
		Level:    ClassifyStress(total),
		Answered: len(questionIDs),
	}, nil
}

func intKeys(m map[uint]int) []uint {
	keys := make([]uint, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func checkUnknown(known map[uint]struct{}, ids []uint) error {
	var unknown []uint
	for _, id := range ids {
		if _, ok := known[id]; !ok {
			unknown = append(unknown, id)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	sort.Slice(unknown, func(i, j int) bool { return unknown[i] < unknown[j] })
	return fmt.Errorf("%w: %v", ErrUnknownQuestion, unknown)
}
