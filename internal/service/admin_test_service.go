package service

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/lshigami/testhub/internal/cache"
	"github.com/lshigami/testhub/internal/dto"
	"github.com/lshigami/testhub/internal/event"
	"github.com/lshigami/testhub/internal/metrics"
	"github.com/lshigami/testhub/internal/model"
	"github.com/lshigami/testhub/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const (
	// DeleteCode is the fixed code that authorizes test deletion.
	DeleteCode = "2025"
	// DefaultCorrectAnswer applies when a question arrives without one.
	DefaultCorrectAnswer = "A"
	// maxCreateTestAttempts bounds retries when a concurrent creation takes
	// the allocated id between the existence check and the insert.
	maxCreateTestAttempts = 5
)

type AdminTestService interface {
	CreateTest(ctx context.Context, req dto.TestCreateDTO) (string, error)
	DeleteTest(ctx context.Context, testID, code string) error
}

type adminTestService struct {
	db           *gorm.DB
	testRepo     repository.TestRepository
	questionRepo repository.QuestionRepository
	answerRepo   repository.AnswerRepository
	resultRepo   repository.TestResultRepository
	allocator    TestIDAllocator
	testCache    cache.TestCache
	publisher    event.Publisher
}

func NewAdminTestService(
	db *gorm.DB,
	testRepo repository.TestRepository,
	questionRepo repository.QuestionRepository,
	answerRepo repository.AnswerRepository,
	resultRepo repository.TestResultRepository,
	allocator TestIDAllocator,
	testCache cache.TestCache,
	publisher event.Publisher,
) AdminTestService {
	return &adminTestService{
		db:           db,
		testRepo:     testRepo,
		questionRepo: questionRepo,
		answerRepo:   answerRepo,
		resultRepo:   resultRepo,
		allocator:    allocator,
		testCache:    testCache,
		publisher:    publisher,
	}
}

func (s *adminTestService) CreateTest(ctx context.Context, req dto.TestCreateDTO) (string, error) {
	if req.Name == "" {
		return "", validationError("test name is required")
	}
	if len(req.Questions) == 0 {
		return "", validationError("a test must have at least one question")
	}
	duration, err := parseDuration(req.DurationMinutes)
	if err != nil {
		return "", err
	}

	for attempt := 1; ; attempt++ {
		testID, err := s.createOnce(ctx, req, duration)
		if err == nil {
			metrics.TestsCreated.Inc()
			log.Info().Str("testID", testID).Str("name", req.Name).Msg("Test created")
			return testID, nil
		}
		if isDuplicateKey(err) && attempt < maxCreateTestAttempts {
			log.Warn().Err(err).Int("attempt", attempt).Msg("CreateTest: test id taken concurrently, retrying")
			continue
		}
		log.Error().Err(err).Str("name", req.Name).Msg("Failed to create test with questions in transaction")
		return "", storeError("failed to create test", err)
	}
}

// createOnce stores the test, then each accepted question followed by its
// options, in one transaction.
func (s *adminTestService) createOnce(ctx context.Context, req dto.TestCreateDTO, duration *int) (string, error) {
	var testID string
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tests := s.testRepo.WithTx(tx)
		questions := s.questionRepo.WithTx(tx)
		answers := s.answerRepo.WithTx(tx)

		id, err := s.allocator.Allocate(ctx, tests)
		if err != nil {
			return err
		}
		test := model.Test{
			ID:              id,
			Name:            req.Name,
			Image:           req.Image,
			ClassLevel:      req.ClassLevel,
			DurationMinutes: duration,
			Subject:         req.Subject,
			CreatedAt:       time.Now(),
		}
		if err := tests.Create(ctx, &test); err != nil {
			return err
		}

		for i, qReq := range req.Questions {
			if qReq.QuestionText == "" || len(qReq.Answers) == 0 {
				log.Debug().Str("testID", id).Int("index", i).Msg("Skipping question without text or options")
				continue
			}
			correct := qReq.CorrectAnswer
			if correct == "" {
				correct = DefaultCorrectAnswer
			}
			question := model.Question{TestID: id, QuestionText: qReq.QuestionText, CorrectAnswer: correct}
			if err := questions.Create(ctx, &question); err != nil {
				return err
			}

			options := make([]model.Answer, 0, len(qReq.Answers))
			for _, a := range qReq.Answers {
				options = append(options, model.Answer{QuestionID: question.ID, Variant: a.Variant, Text: a.Text})
			}
			if err := answers.CreateBatch(ctx, options); err != nil {
				return err
			}
		}
		testID = id
		return nil
	})
	return testID, err
}

// DeleteTest checks the code before anything else, so a wrong code is
// reported as forbidden whether or not the test exists.
func (s *adminTestService) DeleteTest(ctx context.Context, testID, code string) error {
	if code != DeleteCode {
		log.Warn().Str("testID", testID).Msg("DeleteTest: wrong delete code")
		return forbiddenError("invalid delete code")
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := s.testRepo.WithTx(tx).ExistsByID(ctx, testID)
		if err != nil {
			return err
		}
		if !exists {
			return notFoundError("test not found with ID %s", testID)
		}
		if err := s.answerRepo.WithTx(tx).DeleteByTestID(ctx, testID); err != nil {
			return err
		}
		if err := s.questionRepo.WithTx(tx).DeleteByTestID(ctx, testID); err != nil {
			return err
		}
		if err := s.resultRepo.WithTx(tx).DeleteByTestID(ctx, testID); err != nil {
			return err
		}
		return s.testRepo.WithTx(tx).Delete(ctx, testID)
	})
	if err != nil {
		if KindOf(err) == KindStore {
			log.Error().Err(err).Str("testID", testID).Msg("DeleteTest: cascade delete failed")
		}
		return storeError("failed to delete test", err)
	}

	s.testCache.Delete(ctx, testID)
	metrics.TestsDeleted.Inc()
	if err := s.publisher.PublishTestDeleted(ctx, testID); err != nil {
		log.Warn().Err(err).Str("testID", testID).Msg("DeleteTest: failed to publish event")
	}
	log.Info().Str("testID", testID).Msg("Test deleted")
	return nil
}

// parseDuration accepts a JSON number or a numeric string. Absent means no limit.
func parseDuration(raw *json.Number) (*int, error) {
	if raw == nil {
		return nil, nil
	}
	text := strings.TrimSpace(raw.String())
	if text == "" {
		return nil, nil
	}
	minutes, err := strconv.Atoi(text)
	if err != nil {
		return nil, validationError("duration_minutes must be an integer")
	}
	if minutes < 1 {
		return nil, validationError("duration_minutes must be at least 1")
	}
	return &minutes, nil
}
