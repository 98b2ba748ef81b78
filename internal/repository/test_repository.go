package repository

import (
	"context"

	"github.com/lshigami/testhub/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TestRepository interface {
	WithTx(tx *gorm.DB) TestRepository
	Create(ctx context.Context, test *model.Test) error
	ExistsByID(ctx context.Context, id string) (bool, error)
	FindByID(ctx context.Context, id string) (*model.Test, error)
	FindByIDWithQuestions(ctx context.Context, id string) (*model.Test, error)
	FindByIDs(ctx context.Context, ids []string) ([]model.Test, error)
	FindAll(ctx context.Context) ([]model.Test, error)
	Delete(ctx context.Context, id string) error
}

type testRepository struct {
	db *gorm.DB
}

func NewTestRepository(db *gorm.DB) TestRepository {
	return &testRepository{db: db}
}

func (r *testRepository) WithTx(tx *gorm.DB) TestRepository {
	return &testRepository{db: tx}
}

// Create inserts the test row only. Questions are stored separately so their
// ids follow the order in which they were submitted.
func (r *testRepository) Create(ctx context.Context, test *model.Test) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(test).Error
}

func (r *testRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Test{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *testRepository) FindByID(ctx context.Context, id string) (*model.Test, error) {
	var test model.Test
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&test).Error; err != nil {
		return nil, err
	}
	return &test, nil
}

func (r *testRepository) FindByIDWithQuestions(ctx context.Context, id string) (*model.Test, error) {
	var test model.Test
	err := r.db.WithContext(ctx).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.id ASC")
		}).
		Preload("Questions.Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("answers.id ASC")
		}).
		Where("id = ?", id).
		First(&test).Error
	if err != nil {
		return nil, err
	}
	return &test, nil
}

func (r *testRepository) FindByIDs(ctx context.Context, ids []string) ([]model.Test, error) {
	var tests []model.Test
	if len(ids) == 0 {
		return tests, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&tests).Error
	return tests, err
}

// FindAll returns metadata only, newest first.
func (r *testRepository) FindAll(ctx context.Context) ([]model.Test, error) {
	var tests []model.Test
	err := r.db.WithContext(ctx).Order("created_at DESC").Order("id DESC").Find(&tests).Error
	return tests, err
}

func (r *testRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Test{}).Error
}
