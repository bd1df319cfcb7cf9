package scoring

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercentage(t *testing.T) {
	for total := 1; total <= 40; total++ {
		for correct := 0; correct <= total; correct++ {
			got := Percentage(correct, total)
			assert.Equal(t, correct*100/total, got)
			assert.True(t, got >= 0 && got <= 100)
		}
	}
	assert.Equal(t, 0, Percentage(3, 0))
	assert.Equal(t, 100, Percentage(5, 4))
	assert.Equal(t, 0, Percentage(-1, 4))
}

func TestClassifyKnowledge(t *testing.T) {
	cases := []struct {
		pct  int
		want KnowledgeLevel
	}{
		{100, KnowledgeGood},
		{76, KnowledgeGood},
		{75, KnowledgeAdequate},
		{56, KnowledgeAdequate},
		{55, KnowledgePoor},
		{0, KnowledgePoor},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ClassifyKnowledge(c.pct), "pct=%d", c.pct)
	}
}

func knowledgeItems(n int) []KnowledgeItem {
	items := make([]KnowledgeItem, n)
	for i := range items {
		correct := fmt.Sprintf("benar %d", i+1)
		items[i] = KnowledgeItem{ID: uint(i + 1), Options: []string{correct, "salah"}, CorrectOption: correct}
	}
	return items
}

func TestScoreKnowledge_EighteenOfTwentyFour(t *testing.T) {
	items := knowledgeItems(24)
	answers := make(map[uint]string, 24)
	for i, it := range items {
		if i < 18 {
			answers[it.ID] = " " + it.CorrectOption + " "
		} else {
			answers[it.ID] = "salah"
		}
	}

	got, err := ScoreKnowledge(items, answers)
	require.NoError(t, err)
	assert.Equal(t, 18, got.Correct)
	assert.Equal(t, 24, got.Total)
	assert.Equal(t, 75, got.Percentage)
	assert.Equal(t, KnowledgeAdequate, got.Level)
}

func TestScoreKnowledge_Rejects(t *testing.T) {
	items := knowledgeItems(2)

	tests := []struct {
		name    string
		items   []KnowledgeItem
		answers map[uint]string
		wantErr error
	}{
		{name: "no questions", wantErr: ErrNoQuestions},
		{name: "missing answer", items: items, answers: map[uint]string{1: "benar 1"}, wantErr: ErrIncompleteAnswers},
		{name: "blank answer", items: items, answers: map[uint]string{1: "benar 1", 2: "   "}, wantErr: ErrIncompleteAnswers},
		{name: "empty answer", items: items, answers: map[uint]string{1: "", 2: "salah"}, wantErr: ErrIncompleteAnswers},
		{name: "text outside the options", items: items, answers: map[uint]string{1: "benar 1", 2: "not-an-option"}, wantErr: ErrUnknownOption},
		{name: "another question's answer", items: items, answers: map[uint]string{1: "benar 2", 2: "salah"}, wantErr: ErrUnknownOption},
		{name: "unknown question id", items: items, answers: map[uint]string{1: "salah", 2: "salah", 3: "salah"}, wantErr: ErrUnknownQuestion},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, err := ScoreKnowledge(tt.items, tt.answers)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, got)
		})
	}
}

func TestScoreKnowledge_BlankKeyEarnsNoCredit(t *testing.T) {
	items := []KnowledgeItem{{ID: 1, Options: []string{"a", "b"}, CorrectOption: ""}}

	_, err := ScoreKnowledge(items, map[uint]string{1: ""})
	assert.ErrorIs(t, err, ErrIncompleteAnswers)

	got, err := ScoreKnowledge(items, map[uint]string{1: "a"})
	require.NoError(t, err)
	assert.Equal(t, 0, got.Correct)
}

func TestCheckChoices(t *testing.T) {
	assert.NoError(t, CheckChoices([]string{"a", "b"}, 1))
	assert.ErrorIs(t, CheckChoices([]string{"a"}, 0), ErrInvalidOptions)
	assert.ErrorIs(t, CheckChoices([]string{"a", "b"}, 2), ErrInvalidOptions)
	assert.ErrorIs(t, CheckChoices([]string{"a", "b"}, -1), ErrInvalidOptions)

	assert.NoError(t, CheckLikertLabels(SplitOptions("Tidak pernah|Jarang|Kadang-kadang|Sering|Hampir selalu")))
	assert.ErrorIs(t, CheckLikertLabels([]string{"a", "b", "c"}), ErrInvalidOptions)
}

func TestSplitOptions(t *testing.T) {
	assert.Equal(t, []string{"Tidak pernah", "Jarang", "Sering"}, SplitOptions(" Tidak pernah | Jarang||Sering "))
	assert.Empty(t, SplitOptions(""))
	assert.Equal(t, "a|b", JoinOptions([]string{" a", "", "b "}))
	assert.Equal(t, "Jarang", OptionAt("Tidak pernah|Jarang", 1))
	assert.Equal(t, "", OptionAt("Tidak pernah|Jarang", 2))
	assert.Equal(t, "", OptionAt("Tidak pernah|Jarang", -1))
}
