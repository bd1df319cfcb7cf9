package model

import (
	"time"
)

// StressResult is written once per completed questionnaire and never updated.
// swagger:model StressResult
type StressResult struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     uint      `gorm:"index;not null" json:"userId"`
	TotalScore int       `gorm:"not null" json:"totalScore"`
	Level      string    `gorm:"size:20;not null" json:"level"`
	TestedAt   time.Time `gorm:"index;not null" json:"testedAt"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (StressResult) TableName() string {
	return "stress_results"
}

// QuizResult holds one knowledge quiz attempt. Same write-once lifecycle.
// swagger:model QuizResult
type QuizResult struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID         uint      `gorm:"index;not null" json:"userId"`
	QuizSet        QuizSet   `gorm:"size:20;not null" json:"quizSet"`
	CorrectAnswers int       `gorm:"not null" json:"correctAnswers"`
	TotalQuestions int       `gorm:"not null" json:"totalQuestions"`
	Percentage     int       `gorm:"not null" json:"percentage"`
	Level          string    `gorm:"size:20;not null" json:"level"`
	TestedAt       time.Time `gorm:"index;not null" json:"testedAt"`
	CreatedAt      time.Time `json:"createdAt"`
}

func (QuizResult) TableName() string {
	return "quiz_results"
}
