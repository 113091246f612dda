package models

import "time"

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// ScoreSet holds the five 1-10 sub-scores of an evaluation.
type ScoreSet struct {
	Confidence          int `json:"confidence"`
	ClarityStructure    int `json:"clarity_structure"`
	TechnicalDepth      int `json:"technical_depth"`
	CommunicationSkills int `json:"communication_skills"`
	Relevance           int `json:"relevance"`
}

// FeedbackSet holds the per-dimension feedback strings matching ScoreSet.
type FeedbackSet struct {
	Confidence          string `json:"confidence"`
	ClarityStructure    string `json:"clarity_structure"`
	TechnicalDepth      string `json:"technical_depth"`
	CommunicationSkills string `json:"communication_skills"`
	Relevance           string `json:"relevance"`
}

type SubmitResponseResult struct {
	ResponseID     string      `json:"response_id"`
	Transcript     string      `json:"transcript"`
	Scores         ScoreSet    `json:"scores"`
	Feedback       FeedbackSet `json:"feedback"`
	OverallComment string      `json:"overall_comment"`
	CreatedAt      time.Time   `json:"created_at"`
}

// ResponseListItem is the list projection: feedback and the overall
// comment are omitted, only the sub-scores are returned.
type ResponseListItem struct {
	ResponseID string    `json:"response_id"`
	CreatedAt  time.Time `json:"created_at"`
	Scores     ScoreSet  `json:"scores"`
}
