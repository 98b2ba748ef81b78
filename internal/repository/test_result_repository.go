package repository

import (
	"context"

	"github.com/lshigami/testhub/internal/model"
	"gorm.io/gorm"
)

type TestResultRepository interface {
	WithTx(tx *gorm.DB) TestResultRepository
	Create(ctx context.Context, result *model.TestResult) error
	FindByID(ctx context.Context, id uint) (*model.TestResult, error)
	FindByTestAndUser(ctx context.Context, testID, userID string) (*model.TestResult, error)
	FindAllByTestID(ctx context.Context, testID string) ([]model.TestResult, error)
	FindAllByUserID(ctx context.Context, userID string) ([]model.TestResult, error)
	DeleteByTestID(ctx context.Context, testID string) error
}

type testResultRepository struct {
	db *gorm.DB
}

func NewTestResultRepository(db *gorm.DB) TestResultRepository {
	return &testResultRepository{db: db}
}

func (r *testResultRepository) WithTx(tx *gorm.DB) TestResultRepository {
	return &testResultRepository{db: tx}
}

func (r *testResultRepository) Create(ctx context.Context, result *model.TestResult) error {
	return r.db.WithContext(ctx).Create(result).Error
}

func (r *testResultRepository) FindByID(ctx context.Context, id uint) (*model.TestResult, error) {
	var result model.TestResult
	if err := r.db.WithContext(ctx).First(&result, id).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *testResultRepository) FindByTestAndUser(ctx context.Context, testID, userID string) (*model.TestResult, error) {
	var result model.TestResult
	err := r.db.WithContext(ctx).
		Where("test_id = ? AND user_id = ?", testID, userID).
		First(&result).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *testResultRepository) FindAllByTestID(ctx context.Context, testID string) ([]model.TestResult, error) {
	var results []model.TestResult
	err := r.db.WithContext(ctx).
		Where("test_id = ?", testID).
		Order("completed_at DESC").Order("id DESC").
		Find(&results).Error
	return results, err
}

func (r *testResultRepository) FindAllByUserID(ctx context.Context, userID string) ([]model.TestResult, error) {
	var results []model.TestResult
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("completed_at DESC").Order("id DESC").
		Find(&results).Error
	return results, err
}

func (r *testResultRepository) DeleteByTestID(ctx context.Context, testID string) error {
	return r.db.WithContext(ctx).Where("test_id = ?", testID).Delete(&model.TestResult{}).Error
}
