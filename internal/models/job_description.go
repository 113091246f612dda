package models

import (
	"time"

	"github.com/google/uuid"
)

type JobDescriptionStatus string

const (
	StatusPending            JobDescriptionStatus = "pending"
	StatusQuestionsGenerated JobDescriptionStatus = "questions_generated"
	StatusError              JobDescriptionStatus = "error"
)

type JobDescription struct {
	ID            uuid.UUID            `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID        uuid.UUID            `gorm:"type:uuid;not null;index" json:"user_id"`
	CompanyName   string               `gorm:"type:text;not null" json:"company_name"`
	JobTitle      string               `gorm:"type:text;not null" json:"job_title"`
	FilePath      string               `gorm:"type:text;not null" json:"file_path"`
	ExtractedText string               `gorm:"type:text" json:"-"`
	Status        JobDescriptionStatus `gorm:"type:text;not null;default:'pending'" json:"status"`
	ErrorMessage  string               `gorm:"type:text" json:"error_message,omitempty"`
	CreatedAt     time.Time            `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt     time.Time            `gorm:"type:timestamp;default:now()" json:"updated_at"`

	// Relations
	User      User       `gorm:"foreignKey:UserID" json:"-"`
	Questions []Question `gorm:"foreignKey:JobDescriptionID;constraint:OnDelete:CASCADE" json:"-"`
}

func (JobDescription) TableName() string {
	return "job_descriptions"
}
