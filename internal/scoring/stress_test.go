package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func questionIDs(n int) []uint {
	ids := make([]uint, n)
	for i := range ids {
		ids[i] = uint(i + 1)
	}
	return ids
}

// answersSumming spreads total over n Likert items.
func answersSumming(n, total int) map[uint]int {
	answers := make(map[uint]int, n)
	for i := 1; i <= n; i++ {
		v := total
		if v > MaxLikert {
			v = MaxLikert
		}
		answers[uint(i)] = v
		total -= v
	}
	return answers
}

func TestClassifyStress_Boundaries(t *testing.T) {
	cases := []struct {
		total int
		want  StressLevel
	}{
		{0, StressLow},
		{StressLowMax, StressLow},
		{StressLowMax + 1, StressMedium},
		{StressMediumMax, StressMedium},
		{StressMediumMax + 1, StressHigh},
		{96, StressHigh},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ClassifyStress(c.total), "total=%d", c.total)
	}
}

func TestClassifyStress_Monotonic(t *testing.T) {
	prev := ClassifyStress(0).Severity()
	for s := 1; s <= 24*MaxLikert; s++ {
		cur := ClassifyStress(s).Severity()
		require.GreaterOrEqual(t, cur, prev, "severity dropped at score %d", s)
		prev = cur
	}
}

func TestClassifyStress_Idempotent(t *testing.T) {
	for s := 0; s <= 96; s += 7 {
		assert.Equal(t, ClassifyStress(s), ClassifyStress(s))
	}
}

func TestScoreStress(t *testing.T) {
	ids := questionIDs(24)

	tests := []struct {
		name      string
		answers   map[uint]int
		wantTotal int
		wantLevel StressLevel
	}{
		{"below first threshold", answersSumming(24, 20), 20, StressLow},
		{"on first threshold", answersSumming(24, 32), 32, StressLow},
		{"between thresholds", answersSumming(24, 50), 50, StressMedium},
		{"above second threshold", answersSumming(24, 80), 80, StressHigh},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ScoreStress(ids, tt.answers)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, got.Total)
			assert.Equal(t, tt.wantLevel, got.Level)
			assert.Equal(t, 24, got.Answered)
		})
	}
}

func TestScoreStress_Rejects(t *testing.T) {
	ids := questionIDs(3)

	_, err := ScoreStress(nil, map[uint]int{1: 1})
	assert.ErrorIs(t, err, ErrNoQuestions)

	_, err = ScoreStress(ids, map[uint]int{1: 1, 2: 2})
	assert.ErrorIs(t, err, ErrIncompleteAnswers)

	_, err = ScoreStress(ids, map[uint]int{1: 1, 2: 2, 3: 5})
	assert.ErrorIs(t, err, ErrResponseOutOfRange)

	_, err = ScoreStress(ids, map[uint]int{1: 1, 2: 2, 3: -1})
	assert.ErrorIs(t, err, ErrResponseOutOfRange)

	_, err = ScoreStress(ids, map[uint]int{1: 1, 2: 2, 3: 3, 9: 0})
	assert.ErrorIs(t, err, ErrUnknownQuestion)
}
