package model

import "time"

// Test is identified by a 6-digit numeric string handed out by the allocator.
type Test struct {
	ID              string     `gorm:"primaryKey;type:varchar(6)" json:"id"`
	Name            string     `json:"name" gorm:"not null"`
	Image           *string    `json:"image,omitempty" gorm:"type:text"` // base64 payload
	ClassLevel      *string    `json:"class_level,omitempty"`
	DurationMinutes *int       `json:"duration_minutes,omitempty"`
	Subject         *string    `json:"subject,omitempty"`
	Questions       []Question `json:"questions,omitempty" gorm:"foreignKey:TestID"`
	CreatedAt       time.Time  `json:"created_at" gorm:"index"`
}
