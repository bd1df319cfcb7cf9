package database

import (
	"path/filepath"
	"testing"

	"pengasuh_backend/internal/config"
	"pengasuh_backend/internal/model"
	"pengasuh_backend/internal/scoring"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDB_SQLiteAndSeed(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Driver: "sqlite",
		Path:   filepath.Join(t.TempDir(), "pengasuh.db"),
	}
	db, err := InitDB(cfg, false, true)
	require.NoError(t, err)

	seedPath := filepath.Join("..", "..", "configs", "seed.yaml")
	require.NoError(t, Seed(db, seedPath))

	var stress int64
	require.NoError(t, db.Model(&model.StressQuestion{}).Count(&stress).Error)
	assert.EqualValues(t, 24, stress)

	var first model.StressQuestion
	require.NoError(t, db.Order("display_order").First(&first).Error)
	assert.Len(t, first.OptionList(), 5)

	var patient []model.KnowledgeQuestion
	require.NoError(t, db.Where("quiz_set = ?", model.PatientQuiz).Find(&patient).Error)
	require.NotEmpty(t, patient)
	assert.NotEmpty(t, patient[0].CorrectAnswer())

	// Seeding again must not duplicate rows.
	require.NoError(t, Seed(db, seedPath))
	require.NoError(t, db.Model(&model.StressQuestion{}).Count(&stress).Error)
	assert.EqualValues(t, 24, stress)
}

func TestInitDB_UnknownDriver(t *testing.T) {
	_, err := InitDB(&config.DatabaseConfig{Driver: "oracle"}, false, false)
	assert.Error(t, err)
}

func TestSeedWith_RejectsUnknownTopic(t *testing.T) {
	db, err := InitDB(&config.DatabaseConfig{
		Driver: "sqlite",
		Path:   filepath.Join(t.TempDir(), "pengasuh.db"),
	}, false, true)
	require.NoError(t, err)

	err = SeedWith(db, &SeedData{
		Media: map[string][]SeedMedia{"astronomi": {{Kind: "video", Link: "https://x"}}},
	})
	assert.Error(t, err)
}

func TestSeedWith_ValidatesQuestions(t *testing.T) {
	likert := []string{"Tidak pernah", "Jarang", "Kadang-kadang", "Sering", "Hampir selalu"}

	tests := []struct {
		name string
		data *SeedData
	}{
		{
			name: "correct option out of range",
			data: &SeedData{KnowledgeQuestions: map[string][]SeedQuestion{
				"umum": {
					{Question: "Q1", Options: []string{"a", "b"}, CorrectOption: 1},
					{Question: "Q2", Options: []string{"a", "b"}, CorrectOption: 5},
				},
			}},
		},
		{
			name: "single option",
			data: &SeedData{KnowledgeQuestions: map[string][]SeedQuestion{
				"pasien": {{Question: "Q", Options: []string{"a", " "}}},
			}},
		},
		{
			name: "stress item without five labels",
			data: &SeedData{StressQuestions: []SeedQuestion{
				{Question: "Q1", Options: likert},
				{Question: "Q2", Options: []string{"a", "b", "c"}},
			}},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			db, err := InitDB(&config.DatabaseConfig{
				Driver: "sqlite",
				Path:   filepath.Join(t.TempDir(), "pengasuh.db"),
			}, false, true)
			require.NoError(t, err)

			err = SeedWith(db, tt.data)
			require.ErrorIs(t, err, scoring.ErrInvalidOptions)

			var n int64
			require.NoError(t, db.Model(&model.KnowledgeQuestion{}).Count(&n).Error)
			assert.Zero(t, n)
			require.NoError(t, db.Model(&model.StressQuestion{}).Count(&n).Error)
			assert.Zero(t, n)
		})
	}
}
