package dto

import "time"

// TestSummaryDTO is used for listing tests. Optional metadata is rendered as null.
type TestSummaryDTO struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Image           *string   `json:"image"`
	ClassLevel      *string   `json:"class_level"`
	DurationMinutes *int      `json:"duration_minutes"`
	Subject         *string   `json:"subject"`
	CreatedAt       time.Time `json:"created_at"`
}

type TestListResponseDTO struct {
	Tests []TestSummaryDTO `json:"tests"`
}

type AnswerOptionDTO struct {
	ID      uint   `json:"id"`
	Variant string `json:"variant"`
	Text    string `json:"text"`
}

// QuestionDTO deliberately has no correct answer field.
type QuestionDTO struct {
	ID           uint              `json:"id"`
	QuestionText string            `json:"question_text"`
	Answers      []AnswerOptionDTO `json:"answers"`
}

// TestDetailDTO is used for displaying a full test to someone about to take it.
type TestDetailDTO struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Image           *string       `json:"image"`
	ClassLevel      *string       `json:"class_level"`
	DurationMinutes *int          `json:"duration_minutes"`
	Subject         *string       `json:"subject"`
	CreatedAt       time.Time     `json:"created_at"`
	Questions       []QuestionDTO `json:"questions"`
}

type TestDetailResponseDTO struct {
	Test TestDetailDTO `json:"test"`
}

type TestCreatedResponseDTO struct {
	Success bool   `json:"success"`
	TestID  string `json:"test_id"`
	Message string `json:"message,omitempty"`
}
