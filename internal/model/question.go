package model

type Question struct {
	ID            uint     `gorm:"primarykey" json:"id"`
	TestID        string   `json:"test_id" gorm:"type:varchar(6);not null;index"`
	QuestionText  string   `json:"question_text" gorm:"type:text;not null"`
	CorrectAnswer string   `json:"correct_answer" gorm:"type:text;not null;default:'A'"`
	Answers       []Answer `json:"answers,omitempty" gorm:"foreignKey:QuestionID"`
}
