package service

import (
	"math"
	"strings"

	"github.com/lshigami/testhub/internal/dto"
	"github.com/lshigami/testhub/internal/model"
)

const MaxScore float64 = 100.0

// ScoreSummary is the outcome of grading one submission. Score keeps full
// precision; RoundScore is applied when it leaves the service.
type ScoreSummary struct {
	CorrectAnswers int
	TotalQuestions int
	Score          float64
}

type ScoringService interface {
	Evaluate(questions []model.Question, answers []dto.SubmittedAnswerDTO) ScoreSummary
}

type scoringServiceImpl struct{}

func NewScoringService() ScoringService {
	return &scoringServiceImpl{}
}

// Evaluate grades each question against the first submitted entry for it.
// Later duplicates are ignored and a question without an entry counts as wrong.
func (s *scoringServiceImpl) Evaluate(questions []model.Question, answers []dto.SubmittedAnswerDTO) ScoreSummary {
	firstAnswer := make(map[uint]string, len(answers))
	for _, a := range answers {
		if _, seen := firstAnswer[a.QuestionID]; !seen {
			firstAnswer[a.QuestionID] = a.Answer
		}
	}

	summary := ScoreSummary{TotalQuestions: len(questions)}
	for _, q := range questions {
		given, ok := firstAnswer[q.ID]
		if ok && given != "" && strings.EqualFold(given, q.CorrectAnswer) {
			summary.CorrectAnswers++
		}
	}

	if summary.TotalQuestions > 0 {
		summary.Score = float64(summary.CorrectAnswers) / float64(summary.TotalQuestions) * MaxScore
	}
	return summary
}

// RoundScore rounds to two decimal places.
func RoundScore(score float64) float64 {
	return math.Round(score*100) / 100
}
