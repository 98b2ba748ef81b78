package service

import (
	"context"

	"github.com/jinzhu/copier"
	"github.com/lshigami/testhub/internal/cache"
	"github.com/lshigami/testhub/internal/dto"
	"github.com/lshigami/testhub/internal/model"
	"github.com/lshigami/testhub/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type UserTestService interface {
	GetAllTests(ctx context.Context) ([]dto.TestSummaryDTO, error)
	GetTestDetails(ctx context.Context, testID string) (*dto.TestDetailDTO, error)
}

type userTestService struct {
	db        *gorm.DB
	testRepo  repository.TestRepository
	testCache cache.TestCache
}

func NewUserTestService(db *gorm.DB, testRepo repository.TestRepository, testCache cache.TestCache) UserTestService {
	return &userTestService{db: db, testRepo: testRepo, testCache: testCache}
}

func (s *userTestService) GetAllTests(ctx context.Context) ([]dto.TestSummaryDTO, error) {
	tests, err := s.testRepo.FindAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to get all tests from repository")
		return nil, storeError("error fetching tests", err)
	}

	dtos := make([]dto.TestSummaryDTO, 0, len(tests))
	if err := copier.Copy(&dtos, &tests); err != nil {
		log.Error().Err(err).Msg("Failed to copy Test models to TestSummaryDTO")
		return nil, storeError("error preparing test list", err)
	}
	if dtos == nil {
		dtos = []dto.TestSummaryDTO{}
	}
	return dtos, nil
}

// GetTestDetails loads a test with its questions and options in stored order.
func (s *userTestService) GetTestDetails(ctx context.Context, testID string) (*dto.TestDetailDTO, error) {
	if cached, ok := s.testCache.Get(ctx, testID); ok {
		return cached, nil
	}

	var test *model.Test
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		test, err = s.testRepo.WithTx(tx).FindByIDWithQuestions(ctx, testID)
		return err
	})
	if err != nil {
		if isNotFound(err) {
			return nil, notFoundError("test not found with ID %s", testID)
		}
		log.Error().Err(err).Str("testID", testID).Msg("Failed to get test details from repository")
		return nil, storeError("error fetching test", err)
	}

	var resp dto.TestDetailDTO
	if err := copier.Copy(&resp, test); err != nil {
		log.Error().Err(err).Msg("Failed to copy Test model to TestDetailDTO")
		return nil, storeError("error preparing test details response", err)
	}
	if resp.Questions == nil {
		resp.Questions = []dto.QuestionDTO{}
	}
	for i := range resp.Questions {
		if resp.Questions[i].Answers == nil {
			resp.Questions[i].Answers = []dto.AnswerOptionDTO{}
		}
	}

	s.testCache.Set(ctx, &resp)
	return &resp, nil
}
