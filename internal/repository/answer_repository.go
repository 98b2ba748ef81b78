package repository

import (
	"context"

	"github.com/lshigami/testhub/internal/model"
	"gorm.io/gorm"
)

type AnswerRepository interface {
	WithTx(tx *gorm.DB) AnswerRepository
	CreateBatch(ctx context.Context, answers []model.Answer) error
	DeleteByTestID(ctx context.Context, testID string) error
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) WithTx(tx *gorm.DB) AnswerRepository {
	return &answerRepository{db: tx}
}

// CreateBatch inserts the options in slice order.
func (r *answerRepository) CreateBatch(ctx context.Context, answers []model.Answer) error {
	if len(answers) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&answers).Error
}

// DeleteByTestID removes every option of every question that belongs to the test.
func (r *answerRepository) DeleteByTestID(ctx context.Context, testID string) error {
	return r.db.WithContext(ctx).
		Where("question_id IN (?)", r.questionIDs(testID)).
		Delete(&model.Answer{}).Error
}

func (r *answerRepository) questionIDs(testID string) *gorm.DB {
	return r.db.Model(&model.Question{}).Select("id").Where("test_id = ?", testID)
}
