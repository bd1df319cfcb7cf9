package database

import (
	"fmt"
	"os"

	"pengasuh_backend/internal/model"
	"pengasuh_backend/internal/scoring"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

type SeedQuestion struct {
	Question      string   `yaml:"question"`
	Options       []string `yaml:"options"`
	CorrectOption int      `yaml:"correct_option"`
}

type SeedMedia struct {
	Kind  string `yaml:"kind"`
	Title string `yaml:"title"`
	Link  string `yaml:"link"`
}

// SeedData is the layout of configs/seed.yaml.
type SeedData struct {
	StressQuestions    []SeedQuestion            `yaml:"stress_questions"`
	KnowledgeQuestions map[string][]SeedQuestion `yaml:"knowledge_questions"`
	Media              map[string][]SeedMedia    `yaml:"media"`
}

// rowOptions normalises the option list and applies the same checks the admin
// create endpoints run.
func (q SeedQuestion) rowOptions(likert bool) (string, error) {
	joined := scoring.JoinOptions(q.Options)
	opts := scoring.SplitOptions(joined)
	if err := scoring.CheckChoices(opts, q.CorrectOption); err != nil {
		return "", err
	}
	if likert {
		if err := scoring.CheckLikertLabels(opts); err != nil {
			return "", err
		}
	}
	return joined, nil
}

func LoadSeedFile(path string) (*SeedData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var data SeedData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return &data, nil
}

// Seed fills reference tables from the seed file. Each table is only touched
// while it is empty, so running it twice is harmless.
func Seed(db *gorm.DB, path string) error {
	data, err := LoadSeedFile(path)
	if err != nil {
		return err
	}
	return SeedWith(db, data)
}

// SeedWith runs the whole seed in one transaction, so a bad row leaves every
// table as it was.
func SeedWith(db *gorm.DB, data *SeedData) error {
	return db.Transaction(func(tx *gorm.DB) error {
		return seedTables(tx, data)
	})
}

func seedTables(db *gorm.DB, data *SeedData) error {
	empty := func(m interface{}) (bool, error) {
		var n int64
		err := db.Model(m).Count(&n).Error
		return n == 0, err
	}

	if ok, err := empty(&model.StressQuestion{}); err != nil {
		return err
	} else if ok && len(data.StressQuestions) > 0 {
		rows := make([]model.StressQuestion, len(data.StressQuestions))
		for i, q := range data.StressQuestions {
			opts, err := q.rowOptions(true)
			if err != nil {
				return fmt.Errorf("seed stress question %d: %w", i+1, err)
			}
			rows[i] = model.StressQuestion{
				Question:      q.Question,
				Options:       opts,
				CorrectOption: q.CorrectOption,
				DisplayOrder:  i + 1,
			}
		}
		if err := db.Create(&rows).Error; err != nil {
			return fmt.Errorf("seed stress questions: %w", err)
		}
	}

	if ok, err := empty(&model.KnowledgeQuestion{}); err != nil {
		return err
	} else if ok {
		for set, qs := range data.KnowledgeQuestions {
			quizSet := model.QuizSet(set)
			if !quizSet.Valid() {
				return fmt.Errorf("seed: unknown quiz set %q", set)
			}
			for i, q := range qs {
				opts, err := q.rowOptions(false)
				if err != nil {
					return fmt.Errorf("seed %s question %d: %w", set, i+1, err)
				}
				row := model.KnowledgeQuestion{
					QuizSet:       quizSet,
					Question:      q.Question,
					Options:       opts,
					CorrectOption: q.CorrectOption,
					DisplayOrder:  i + 1,
				}
				if err := db.Create(&row).Error; err != nil {
					return fmt.Errorf("seed knowledge questions: %w", err)
				}
			}
		}
	}

	if ok, err := empty(&model.MediaContent{}); err != nil {
		return err
	} else if ok {
		for topic, items := range data.Media {
			t := model.MediaTopic(topic)
			if !t.Valid() {
				return fmt.Errorf("seed: unknown media topic %q", topic)
			}
			for i, m := range items {
				row := model.MediaContent{
					Topic:        t,
					Kind:         model.MediaKind(m.Kind),
					Title:        m.Title,
					Link:         m.Link,
					DisplayOrder: i + 1,
				}
				if !row.Kind.Valid() {
					return fmt.Errorf("seed: unknown media kind %q", m.Kind)
				}
				if err := db.Create(&row).Error; err != nil {
					return fmt.Errorf("seed media: %w", err)
				}
			}
		}
	}

	return nil
}
