package dto

import "time"

// ScoredResultDTO is returned right after a submission is scored.
type ScoredResultDTO struct {
	ID             uint    `json:"id"`
	Score          float64 `json:"score"`
	CorrectAnswers int     `json:"correct_answers"`
	TotalQuestions int     `json:"total_questions"`
}

type SubmitResponseDTO struct {
	Success bool            `json:"success"`
	Result  ScoredResultDTO `json:"result"`
}

// TestResultEntryDTO is one row of a per-test result listing.
type TestResultEntryDTO struct {
	ID             uint      `json:"id"`
	UserName       string    `json:"user_name"`
	UserID         string    `json:"user_id"`
	Score          float64   `json:"score"`
	CorrectAnswers int       `json:"correct_answers"`
	TotalQuestions int       `json:"total_questions"`
	CompletedAt    time.Time `json:"completed_at"`
}

type TestResultsResponseDTO struct {
	TestName        string               `json:"test_name"`
	ClassLevel      *string              `json:"class_level"`
	DurationMinutes *int                 `json:"duration_minutes"`
	Results         []TestResultEntryDTO `json:"results"`
}

// UserResultEntryDTO is one row of a per-user result listing.
type UserResultEntryDTO struct {
	ID             uint      `json:"id"`
	TestID         string    `json:"test_id"`
	TestName       string    `json:"test_name"`
	Score          float64   `json:"score"`
	CorrectAnswers int       `json:"correct_answers"`
	TotalQuestions int       `json:"total_questions"`
	CompletedAt    time.Time `json:"completed_at"`
}

type UserResultsResponseDTO struct {
	Results []UserResultEntryDTO `json:"results"`
}

type ResultDetailDTO struct {
	ID             uint      `json:"id"`
	UserName       string    `json:"user_name"`
	UserID         string    `json:"user_id"`
	TestName       string    `json:"test_name"`
	TestID         string    `json:"test_id"`
	Score          float64   `json:"score"`
	CorrectAnswers int       `json:"correct_answers"`
	TotalQuestions int       `json:"total_questions"`
	CompletedAt    time.Time `json:"completed_at"`
}

type ResultDetailResponseDTO struct {
	Result ResultDetailDTO `json:"result"`
}
