package dto

import (
	"encoding/json"
	"strconv"
	"strings"
)

// LoginRequestDTO accepts id and name as strings or numbers.
type LoginRequestDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (r *LoginRequestDTO) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID   json.RawMessage `json:"id"`
		Name json.RawMessage `json:"name"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.ID = lenientString(raw.ID)
	r.Name = lenientString(raw.Name)
	return nil
}

// AnswerOptionCreateDTO is one lettered option inside QuestionCreateDTO.
type AnswerOptionCreateDTO struct {
	Variant string `json:"variant"`
	Text    string `json:"text"`
}

// QuestionCreateDTO is used within TestCreateDTO. Entries without question text
// or without options are skipped when the test is stored.
type QuestionCreateDTO struct {
	QuestionText  string                  `json:"question_text"`
	Answers       []AnswerOptionCreateDTO `json:"answers"`
	CorrectAnswer string                  `json:"correct_answer"`
}

// TestCreateDTO is for admin to create a new test with all its questions.
type TestCreateDTO struct {
	Name            string              `json:"name"`
	Questions       []QuestionCreateDTO `json:"questions"`
	Image           *string             `json:"image"`
	ClassLevel      *string             `json:"class_level"`
	DurationMinutes *json.Number        `json:"duration_minutes" swaggertype:"integer"` // number or numeric string
	Subject         *string             `json:"subject"`
}

type TestDeleteDTO struct {
	Code string `json:"code"`
}

// SubmittedAnswerDTO is the variant a user picked for one question. An entry
// whose question_id is not a whole number decodes with QuestionID 0 and so
// never matches a question.
type SubmittedAnswerDTO struct {
	QuestionID uint   `json:"question_id"`
	Answer     string `json:"answer"`
}

func (a *SubmittedAnswerDTO) UnmarshalJSON(data []byte) error {
	var raw struct {
		QuestionID json.RawMessage `json:"question_id"`
		Answer     json.RawMessage `json:"answer"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		*a = SubmittedAnswerDTO{}
		return nil
	}
	a.QuestionID = lenientUint(raw.QuestionID)
	a.Answer = lenientString(raw.Answer)
	return nil
}

type TestSubmitDTO struct {
	UserID  string               `json:"user_id"`
	Answers []SubmittedAnswerDTO `json:"answers"`
}

func (r *TestSubmitDTO) UnmarshalJSON(data []byte) error {
	var raw struct {
		UserID  json.RawMessage      `json:"user_id"`
		Answers []SubmittedAnswerDTO `json:"answers"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.UserID = lenientString(raw.UserID)
	r.Answers = raw.Answers
	return nil
}

// lenientString reads a JSON string or number as text. Anything else is "".
func lenientString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

// lenientUint reads a whole number given as a JSON number or numeric string.
// Anything else is 0.
func lenientUint(raw json.RawMessage) uint {
	id, err := strconv.ParseUint(strings.TrimSpace(lenientString(raw)), 10, strconv.IntSize)
	if err != nil {
		return 0
	}
	return uint(id)
}
