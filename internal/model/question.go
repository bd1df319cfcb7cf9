package model

import "pengasuh_backend/internal/scoring"

// StressQuestion is one Likert item of the stress questionnaire. Options are
// pipe-delimited labels; the selected option index is the response value.
// swagger:model StressQuestion
type StressQuestion struct {
	ID            uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Question      string `gorm:"type:text;not null" json:"question"`
	Options       string `gorm:"type:text;not null" json:"options"`
	CorrectOption int    `gorm:"default:0" json:"correctOption"`
	DisplayOrder  int    `gorm:"default:0;index" json:"displayOrder"`
}

func (StressQuestion) TableName() string {
	return "stress_quiz_questions"
}

func (q StressQuestion) OptionList() []string {
	return scoring.SplitOptions(q.Options)
}

type QuizSet string

const (
	// PatientQuiz covers knowledge about caring for the patient.
	PatientQuiz QuizSet = "pasien"
	// GeneralQuiz covers general mental-health knowledge.
	GeneralQuiz QuizSet = "umum"
)

func (s QuizSet) Valid() bool {
	return s == PatientQuiz || s == GeneralQuiz
}

// swagger:model KnowledgeQuestion
type KnowledgeQuestion struct {
	ID            uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	QuizSet       QuizSet `gorm:"size:20;not null;index" json:"quizSet"`
	Question      string  `gorm:"type:text;not null" json:"question"`
	Options       string  `gorm:"type:text;not null" json:"options"`
	CorrectOption int     `gorm:"default:0" json:"correctOption"`
	DisplayOrder  int     `gorm:"default:0;index" json:"displayOrder"`
}

func (KnowledgeQuestion) TableName() string {
	return "knowledge_quiz_questions"
}

func (q KnowledgeQuestion) OptionList() []string {
	return scoring.SplitOptions(q.Options)
}

// CorrectAnswer resolves CorrectOption to its option text.
func (q KnowledgeQuestion) CorrectAnswer() string {
	return scoring.OptionAt(q.Options, q.CorrectOption)
}
