package service

import (
	"context"
	"time"

	"github.com/lshigami/testhub/internal/dto"
	"github.com/lshigami/testhub/internal/event"
	"github.com/lshigami/testhub/internal/metrics"
	"github.com/lshigami/testhub/internal/model"
	"github.com/lshigami/testhub/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// TestSubmissionService scores a user's single attempt at a test.
type TestSubmissionService interface {
	SubmitTest(ctx context.Context, testID string, req dto.TestSubmitDTO) (*dto.ScoredResultDTO, error)
}

type testSubmissionService struct {
	db           *gorm.DB
	testRepo     repository.TestRepository
	questionRepo repository.QuestionRepository
	resultRepo   repository.TestResultRepository
	scoring      ScoringService
	publisher    event.Publisher
}

// NewTestSubmissionService creates a new instance of TestSubmissionService.
func NewTestSubmissionService(
	db *gorm.DB,
	testRepo repository.TestRepository,
	questionRepo repository.QuestionRepository,
	resultRepo repository.TestResultRepository,
	scoring ScoringService,
	publisher event.Publisher,
) TestSubmissionService {
	return &testSubmissionService{
		db:           db,
		testRepo:     testRepo,
		questionRepo: questionRepo,
		resultRepo:   resultRepo,
		scoring:      scoring,
		publisher:    publisher,
	}
}

// SubmitTest stores at most one result per (test, user). A repeated call
// returns a conflict that carries the id of the stored result. Two concurrent
// first submissions can both pass the existence check; the unique index on
// (test_id, user_id) rejects the second insert and it is reported the same way.
func (s *testSubmissionService) SubmitTest(ctx context.Context, testID string, req dto.TestSubmitDTO) (*dto.ScoredResultDTO, error) {
	if req.UserID == "" {
		metrics.Submissions.WithLabelValues(metrics.SubmissionInvalid).Inc()
		return nil, validationError("user_id is required")
	}

	var result model.TestResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := s.testRepo.WithTx(tx).ExistsByID(ctx, testID)
		if err != nil {
			return err
		}
		if !exists {
			return notFoundError("test not found with ID %s", testID)
		}

		results := s.resultRepo.WithTx(tx)
		existing, err := results.FindByTestAndUser(ctx, testID, req.UserID)
		if err == nil {
			return alreadySubmittedError(existing.ID)
		}
		if !isNotFound(err) {
			return err
		}

		questions, err := s.questionRepo.WithTx(tx).FindByTestID(ctx, testID)
		if err != nil {
			return err
		}
		summary := s.scoring.Evaluate(questions, req.Answers)

		result = model.TestResult{
			TestID:         testID,
			UserID:         req.UserID,
			Score:          summary.Score,
			CorrectAnswers: summary.CorrectAnswers,
			TotalQuestions: summary.TotalQuestions,
			CompletedAt:    time.Now(),
		}
		return results.Create(ctx, &result)
	})
	if err != nil {
		return nil, s.submissionFailed(ctx, testID, req.UserID, err)
	}

	metrics.Submissions.WithLabelValues(metrics.SubmissionScored).Inc()
	metrics.SubmissionScore.Observe(result.Score)
	log.Info().
		Str("testID", testID).
		Str("userID", req.UserID).
		Uint("resultID", result.ID).
		Int("correct", result.CorrectAnswers).
		Int("total", result.TotalQuestions).
		Msg("Submission scored")

	if err := s.publisher.PublishResultSubmitted(ctx, event.ResultSubmittedEvent{
		ResultID:       result.ID,
		TestID:         result.TestID,
		UserID:         result.UserID,
		Score:          result.Score,
		CorrectAnswers: result.CorrectAnswers,
		TotalQuestions: result.TotalQuestions,
		CompletedAt:    result.CompletedAt,
	}); err != nil {
		log.Warn().Err(err).Uint("resultID", result.ID).Msg("SubmitTest: failed to publish event")
	}

	return &dto.ScoredResultDTO{
		ID:             result.ID,
		Score:          RoundScore(result.Score),
		CorrectAnswers: result.CorrectAnswers,
		TotalQuestions: result.TotalQuestions,
	}, nil
}

func (s *testSubmissionService) submissionFailed(ctx context.Context, testID, userID string, err error) error {
	if isDuplicateKey(err) {
		// Lost the race against a concurrent submission; report the winner.
		if existing, findErr := s.resultRepo.FindByTestAndUser(ctx, testID, userID); findErr == nil {
			err = alreadySubmittedError(existing.ID)
		}
	}

	switch KindOf(err) {
	case KindConflict:
		metrics.Submissions.WithLabelValues(metrics.SubmissionConflict).Inc()
		log.Info().Str("testID", testID).Str("userID", userID).Msg("SubmitTest: already submitted")
		return err
	case KindNotFound:
		metrics.Submissions.WithLabelValues(metrics.SubmissionNotFound).Inc()
		return err
	default:
		metrics.Submissions.WithLabelValues(metrics.SubmissionError).Inc()
		log.Error().Err(err).Str("testID", testID).Str("userID", userID).Msg("SubmitTest: transaction failed")
		return storeError("failed to submit test", err)
	}
}
