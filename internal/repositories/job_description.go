package repositories

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"interview-coach/internal/models"
)

type JobDescriptionRepository interface {
	Create(jd *models.JobDescription) error
	FindByID(id uuid.UUID) (*models.JobDescription, error)
	FindByIDForUser(id, userID uuid.UUID) (*models.JobDescription, error)
	ListByUser(userID uuid.UUID) ([]models.JobDescription, error)
	MarkQuestionsGenerated(id uuid.UUID) error
	MarkError(id uuid.UUID, errorMsg string) error
}

type jobDescriptionRepository struct {
	db *gorm.DB
}

func NewJobDescriptionRepository(db *gorm.DB) JobDescriptionRepository {
	return &jobDescriptionRepository{db: db}
}

func (r *jobDescriptionRepository) Create(jd *models.JobDescription) error {
	if err := r.db.Create(jd).Error; err != nil {
		return fmt.Errorf("failed to create job description: %w", err)
	}
	return nil
}

func (r *jobDescriptionRepository) FindByID(id uuid.UUID) (*models.JobDescription, error) {
	var jd models.JobDescription
	if err := r.db.Where("id = ?", id).First(&jd).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find job description: %w", err)
	}
	return &jd, nil
}

// FindByIDForUser filters by the requesting user so that a foreign
// job description is indistinguishable from a missing one.
func (r *jobDescriptionRepository) FindByIDForUser(id, userID uuid.UUID) (*models.JobDescription, error) {
	var jd models.JobDescription
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&jd).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find job description: %w", err)
	}
	return &jd, nil
}

func (r *jobDescriptionRepository) ListByUser(userID uuid.UUID) ([]models.JobDescription, error) {
	var jds []models.JobDescription
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&jds).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list job descriptions: %w", err)
	}
	return jds, nil
}

func (r *jobDescriptionRepository) MarkQuestionsGenerated(id uuid.UUID) error {
	return r.updateStatus(id, map[string]interface{}{
		"status":     models.StatusQuestionsGenerated,
		"updated_at": time.Now(),
	})
}

func (r *jobDescriptionRepository) MarkError(id uuid.UUID, errorMsg string) error {
	return r.updateStatus(id, map[string]interface{}{
		"status":        models.StatusError,
		"error_message": errorMsg,
		"updated_at":    time.Now(),
	})
}

func (r *jobDescriptionRepository) updateStatus(id uuid.UUID, updates map[string]interface{}) error {
	result := r.db.Model(&models.JobDescription{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return fmt.Errorf("failed to update status: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
