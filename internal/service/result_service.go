package service

import (
	"context"

	"github.com/lshigami/testhub/internal/dto"
	"github.com/lshigami/testhub/internal/model"
	"github.com/lshigami/testhub/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Labels shown in place of a user or test that no longer exists.
const (
	UnknownUserLabel = "Noma'lum"
	UnknownTestLabel = "Noma'lum test"
)

// ResultService reads stored results joined with user and test names. A
// dangling reference degrades to a label and never fails the read.
type ResultService interface {
	GetTestResults(ctx context.Context, testID string) (*dto.TestResultsResponseDTO, error)
	GetUserResults(ctx context.Context, userID string) ([]dto.UserResultEntryDTO, error)
	GetResult(ctx context.Context, resultID uint) (*dto.ResultDetailDTO, error)
}

type resultService struct {
	db         *gorm.DB
	testRepo   repository.TestRepository
	userRepo   repository.UserRepository
	resultRepo repository.TestResultRepository
}

func NewResultService(
	db *gorm.DB,
	testRepo repository.TestRepository,
	userRepo repository.UserRepository,
	resultRepo repository.TestResultRepository,
) ResultService {
	return &resultService{db: db, testRepo: testRepo, userRepo: userRepo, resultRepo: resultRepo}
}

func (s *resultService) GetTestResults(ctx context.Context, testID string) (*dto.TestResultsResponseDTO, error) {
	var (
		test    *model.Test
		results []model.TestResult
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		test, err = s.testRepo.WithTx(tx).FindByID(ctx, testID)
		if err != nil {
			if isNotFound(err) {
				return notFoundError("test not found with ID %s", testID)
			}
			return err
		}
		results, err = s.resultRepo.WithTx(tx).FindAllByTestID(ctx, testID)
		return err
	})
	if err != nil {
		if KindOf(err) == KindStore {
			log.Error().Err(err).Str("testID", testID).Msg("GetTestResults: failed to load results")
		}
		return nil, storeError("error fetching test results", err)
	}

	names := s.userNames(ctx, results)
	resp := &dto.TestResultsResponseDTO{
		TestName:        test.Name,
		ClassLevel:      test.ClassLevel,
		DurationMinutes: test.DurationMinutes,
		Results:         make([]dto.TestResultEntryDTO, 0, len(results)),
	}
	for _, r := range results {
		resp.Results = append(resp.Results, dto.TestResultEntryDTO{
			ID:             r.ID,
			UserName:       labelOr(names, r.UserID, UnknownUserLabel),
			UserID:         r.UserID,
			Score:          RoundScore(r.Score),
			CorrectAnswers: r.CorrectAnswers,
			TotalQuestions: r.TotalQuestions,
			CompletedAt:    r.CompletedAt,
		})
	}
	return resp, nil
}

func (s *resultService) GetUserResults(ctx context.Context, userID string) ([]dto.UserResultEntryDTO, error) {
	results, err := s.resultRepo.FindAllByUserID(ctx, userID)
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("GetUserResults: failed to load results")
		return nil, storeError("error fetching user results", err)
	}

	names := s.testNames(ctx, results)
	entries := make([]dto.UserResultEntryDTO, 0, len(results))
	for _, r := range results {
		entries = append(entries, dto.UserResultEntryDTO{
			ID:             r.ID,
			TestID:         r.TestID,
			TestName:       labelOr(names, r.TestID, UnknownTestLabel),
			Score:          RoundScore(r.Score),
			CorrectAnswers: r.CorrectAnswers,
			TotalQuestions: r.TotalQuestions,
			CompletedAt:    r.CompletedAt,
		})
	}
	return entries, nil
}

func (s *resultService) GetResult(ctx context.Context, resultID uint) (*dto.ResultDetailDTO, error) {
	r, err := s.resultRepo.FindByID(ctx, resultID)
	if err != nil {
		if isNotFound(err) {
			return nil, notFoundError("result not found with ID %d", resultID)
		}
		log.Error().Err(err).Uint("resultID", resultID).Msg("GetResult: failed to load result")
		return nil, storeError("error fetching result", err)
	}

	results := []model.TestResult{*r}
	users := s.userNames(ctx, results)
	tests := s.testNames(ctx, results)
	return &dto.ResultDetailDTO{
		ID:             r.ID,
		UserName:       labelOr(users, r.UserID, UnknownUserLabel),
		UserID:         r.UserID,
		TestName:       labelOr(tests, r.TestID, UnknownTestLabel),
		TestID:         r.TestID,
		Score:          RoundScore(r.Score),
		CorrectAnswers: r.CorrectAnswers,
		TotalQuestions: r.TotalQuestions,
		CompletedAt:    r.CompletedAt,
	}, nil
}

// userNames maps user id to name for every user referenced by results. A
// failed lookup is logged and yields an empty map, so callers fall back to
// the unknown label. Never call it inside a transaction.
func (s *resultService) userNames(ctx context.Context, results []model.TestResult) map[string]string {
	ids := make([]string, 0, len(results))
	for _, r := range results {
		ids = append(ids, r.UserID)
	}
	found, err := s.userRepo.FindByIDs(ctx, uniqueStrings(ids))
	if err != nil {
		log.Warn().Err(err).Msg("Failed to resolve user names for results")
		return map[string]string{}
	}
	names := make(map[string]string, len(found))
	for _, u := range found {
		names[u.ID] = u.Name
	}
	return names
}

func (s *resultService) testNames(ctx context.Context, results []model.TestResult) map[string]string {
	ids := make([]string, 0, len(results))
	for _, r := range results {
		ids = append(ids, r.TestID)
	}
	found, err := s.testRepo.FindByIDs(ctx, uniqueStrings(ids))
	if err != nil {
		log.Warn().Err(err).Msg("Failed to resolve test names for results")
		return map[string]string{}
	}
	names := make(map[string]string, len(found))
	for _, t := range found {
		names[t.ID] = t.Name
	}
	return names
}

func labelOr(names map[string]string, id, fallback string) string {
	if name, ok := names[id]; ok {
		return name
	}
	return fallback
}

func uniqueStrings(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, v := range in {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
