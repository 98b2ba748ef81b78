package model

import "time"

// TestResult is a user's single scored attempt at a test. The composite unique
// index is what keeps a second submission for the same pair from being stored.
type TestResult struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	TestID         string    `json:"test_id" gorm:"type:varchar(6);not null;uniqueIndex:idx_test_results_test_user"`
	UserID         string    `json:"user_id" gorm:"not null;uniqueIndex:idx_test_results_test_user;index"`
	Score          float64   `json:"score" gorm:"not null"`
	CorrectAnswers int       `json:"correct_answers" gorm:"not null"`
	TotalQuestions int       `json:"total_questions" gorm:"not null"`
	CompletedAt    time.Time `json:"completed_at" gorm:"not null;index"`
}
