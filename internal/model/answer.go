package model

// Answer is one lettered option of a question.
type Answer struct {
	ID         uint   `gorm:"primarykey" json:"id"`
	QuestionID uint   `json:"question_id" gorm:"not null;index"`
	Variant    string `json:"variant" gorm:"type:text;not null"`
	Text       string `json:"text" gorm:"type:text;not null"`
}
