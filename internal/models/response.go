package models

import (
	"time"

	"github.com/google/uuid"
)

// Response is only created once transcription has succeeded, so the
// transcript column is never empty.
type Response struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	QuestionID uuid.UUID `gorm:"type:uuid;not null;index" json:"question_id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	AudioPath  string    `gorm:"type:text;not null" json:"audio_path"`
	Transcript string    `gorm:"type:text;not null" json:"transcript"`
	CreatedAt  time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`

	// Relations
	Question Question      `gorm:"foreignKey:QuestionID" json:"-"`
	Score    ResponseScore `gorm:"foreignKey:ResponseID;constraint:OnDelete:CASCADE" json:"score,omitempty"`
}

func (Response) TableName() string {
	return "responses"
}

type ResponseScore struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ResponseID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"response_id"`

	ScoreConfidence          int `gorm:"not null" json:"score_confidence"`
	ScoreClarityStructure    int `gorm:"not null" json:"score_clarity_structure"`
	ScoreTechnicalDepth      int `gorm:"not null" json:"score_technical_depth"`
	ScoreCommunicationSkills int `gorm:"not null" json:"score_communication_skills"`
	ScoreRelevance           int `gorm:"not null" json:"score_relevance"`

	FeedbackConfidence          string `gorm:"type:text" json:"feedback_confidence"`
	FeedbackClarityStructure    string `gorm:"type:text" json:"feedback_clarity_structure"`
	FeedbackTechnicalDepth      string `gorm:"type:text" json:"feedback_technical_depth"`
	FeedbackCommunicationSkills string `gorm:"type:text" json:"feedback_communication_skills"`
	FeedbackRelevance           string `gorm:"type:text" json:"feedback_relevance"`

	OverallComment string    `gorm:"type:text" json:"overall_comment"`
	CreatedAt      time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
}

func (ResponseScore) TableName() string {
	return "response_scores"
}
