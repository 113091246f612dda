package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"interview-coach/internal/models"
)

type ResponseRepository interface {
	Create(response *models.Response) error
	CreateScore(score *models.ResponseScore) error
	ListScoredByQuestion(questionID uuid.UUID) ([]models.Response, error)
}

type responseRepository struct {
	db *gorm.DB
}

func NewResponseRepository(db *gorm.DB) ResponseRepository {
	return &responseRepository{db: db}
}

func (r *responseRepository) Create(response *models.Response) error {
	if err := r.db.Create(response).Error; err != nil {
		return fmt.Errorf("failed to create response: %w", err)
	}
	return nil
}

func (r *responseRepository) CreateScore(score *models.ResponseScore) error {
	if err := r.db.Create(score).Error; err != nil {
		return fmt.Errorf("failed to create response score: %w", err)
	}
	return nil
}

// ListScoredByQuestion returns responses joined with their scores,
// newest first. Responses without a score (evaluation aborted after the
// response row was written) are excluded, matching the inner join.
func (r *responseRepository) ListScoredByQuestion(questionID uuid.UUID) ([]models.Response, error) {
	var responses []models.Response
	err := r.db.
		InnerJoins("Score").
		Where("responses.question_id = ?", questionID).
		Order("responses.created_at DESC").
		Find(&responses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list responses: %w", err)
	}
	return responses, nil
}
