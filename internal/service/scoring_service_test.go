package service

import (
	"math"
	"testing"

	"github.com/lshigami/testhub/internal/dto"
	"github.com/lshigami/testhub/internal/model"
)

func TestScoringService_Evaluate(t *testing.T) {
	questions := []model.Question{
		{ID: 1, CorrectAnswer: "A"},
		{ID: 2, CorrectAnswer: "B"},
		{ID: 3, CorrectAnswer: "C"},
	}

	tests := []struct {
		name      string
		questions []model.Question
		answers   []dto.SubmittedAnswerDTO
		correct   int
		total     int
		score     float64
	}{
		{
			name:      "all correct with mixed case",
			questions: questions,
			answers:   []dto.SubmittedAnswerDTO{{QuestionID: 1, Answer: "a"}, {QuestionID: 2, Answer: "B"}, {QuestionID: 3, Answer: "c"}},
			correct:   3,
			total:     3,
			score:     100,
		},
		{
			name:      "one of three",
			questions: questions,
			answers:   []dto.SubmittedAnswerDTO{{QuestionID: 1, Answer: "A"}, {QuestionID: 2, Answer: "A"}, {QuestionID: 3, Answer: "A"}},
			correct:   1,
			total:     3,
			score:     100.0 / 3,
		},
		{
			name:      "first entry for a question wins",
			questions: questions,
			answers:   []dto.SubmittedAnswerDTO{{QuestionID: 2, Answer: "A"}, {QuestionID: 2, Answer: "B"}},
			correct:   0,
			total:     3,
			score:     0,
		},
		{
			name:      "later duplicate of a correct answer is ignored",
			questions: questions,
			answers:   []dto.SubmittedAnswerDTO{{QuestionID: 2, Answer: "b"}, {QuestionID: 2, Answer: "D"}},
			correct:   1,
			total:     3,
			score:     100.0 / 3,
		},
		{
			name:      "unknown question ids are ignored",
			questions: questions,
			answers:   []dto.SubmittedAnswerDTO{{QuestionID: 99, Answer: "A"}, {QuestionID: 1, Answer: "A"}},
			correct:   1,
			total:     3,
			score:     100.0 / 3,
		},
		{
			name:      "empty answer is wrong",
			questions: []model.Question{{ID: 1, CorrectAnswer: ""}},
			answers:   []dto.SubmittedAnswerDTO{{QuestionID: 1, Answer: ""}},
			correct:   0,
			total:     1,
			score:     0,
		},
		{
			name:      "no answers",
			questions: questions,
			answers:   nil,
			correct:   0,
			total:     3,
			score:     0,
		},
		{
			name:      "no questions scores zero",
			questions: nil,
			answers:   []dto.SubmittedAnswerDTO{{QuestionID: 1, Answer: "A"}},
			correct:   0,
			total:     0,
			score:     0,
		},
	}

	scoring := NewScoringService()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := scoring.Evaluate(tc.questions, tc.answers)
			if got.CorrectAnswers != tc.correct {
				t.Errorf("CorrectAnswers = %d, want %d", got.CorrectAnswers, tc.correct)
			}
			if got.TotalQuestions != tc.total {
				t.Errorf("TotalQuestions = %d, want %d", got.TotalQuestions, tc.total)
			}
			if math.Abs(got.Score-tc.score) > 1e-9 {
				t.Errorf("Score = %v, want %v", got.Score, tc.score)
			}
		})
	}
}

func TestRoundScore(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{100.0 / 3, 33.33},
		{200.0 / 3, 66.67},
		{100, 100},
		{0, 0},
		{12.5, 12.5},
		{87.5, 87.5},
	}
	for _, tc := range tests {
		if got := RoundScore(tc.in); got != tc.want {
			t.Errorf("RoundScore(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
