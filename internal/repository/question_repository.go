package repository

import (
	"context"

	"github.com/lshigami/testhub/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type QuestionRepository interface {
	WithTx(tx *gorm.DB) QuestionRepository
	Create(ctx context.Context, question *model.Question) error
	FindByTestID(ctx context.Context, testID string) ([]model.Question, error)
	DeleteByTestID(ctx context.Context, testID string) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) WithTx(tx *gorm.DB) QuestionRepository {
	return &questionRepository{db: tx}
}

func (r *questionRepository) Create(ctx context.Context, question *model.Question) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(question).Error
}

func (r *questionRepository) FindByTestID(ctx context.Context, testID string) ([]model.Question, error) {
	var questions []model.Question
	if err := r.db.WithContext(ctx).Where("test_id = ?", testID).Order("id ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) DeleteByTestID(ctx context.Context, testID string) error {
	return r.db.WithContext(ctx).Where("test_id = ?", testID).Delete(&model.Question{}).Error
}
