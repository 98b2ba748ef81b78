package event

import (
	"encoding/json"
	"time"
)

type EventType string

const (
	ResultSubmitted EventType = "result.submitted"
	TestDeleted     EventType = "test.deleted"
)

type ResultSubmittedEvent struct {
	ResultID       uint      `json:"result_id"`
	TestID         string    `json:"test_id"`
	UserID         string    `json:"user_id"`
	Score          float64   `json:"score"`
	CorrectAnswers int       `json:"correct_answers"`
	TotalQuestions int       `json:"total_questions"`
	CompletedAt    time.Time `json:"completed_at"`
}

type TestDeletedEvent struct {
	TestID    string    `json:"test_id"`
	DeletedAt time.Time `json:"deleted_at"`
}

// envelope is the body of every message put on the exchange.
type envelope struct {
	EventID   string      `json:"event_id"`
	EventType EventType   `json:"event_type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

func (e envelope) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}
