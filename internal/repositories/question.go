package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"interview-coach/internal/models"
)

type QuestionRepository interface {
	CreateBatch(questions []models.Question) error
	FindByIDForUser(id, userID uuid.UUID) (*models.Question, error)
	ListByJobDescription(jobDescriptionID uuid.UUID) ([]models.Question, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

// CreateBatch inserts all generated questions in a single statement.
func (r *questionRepository) CreateBatch(questions []models.Question) error {
	if len(questions) == 0 {
		return nil
	}
	if err := r.db.Create(&questions).Error; err != nil {
		return fmt.Errorf("failed to create questions: %w", err)
	}
	return nil
}

func (r *questionRepository) FindByIDForUser(id, userID uuid.UUID) (*models.Question, error) {
	var question models.Question
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&question).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find question: %w", err)
	}
	return &question, nil
}

func (r *questionRepository) ListByJobDescription(jobDescriptionID uuid.UUID) ([]models.Question, error) {
	var questions []models.Question
	err := r.db.
		Where("job_description_id = ?", jobDescriptionID).
		Order("created_at ASC").
		Find(&questions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	return questions, nil
}
