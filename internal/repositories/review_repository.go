package repositories

import (
	"errors"

	"servhub_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrReviewNotFound      = errors.New("review not found")
	ErrReviewAlreadyExists = errors.New("review already exists")
)

type ReviewRepository interface {
	FindByID(id string) (*models.Review, error)
	FindByServiceAndClient(serviceID, clientID string) (*models.Review, error)
	FindByService(serviceID string) ([]models.Review, error)
	Create(review *models.Review) error
	Update(review *models.Review) error
	Delete(id string) error
	RatingStats(serviceID string) (avg float64, count int, err error)
}

type ReviewRepositoryImpl struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &ReviewRepositoryImpl{db: db}
}

func (r *ReviewRepositoryImpl) FindByID(id string) (*models.Review, error) {
	var review models.Review
	err := r.db.First(&review, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepositoryImpl) FindByServiceAndClient(serviceID, clientID string) (*models.Review, error) {
	var review models.Review
	err := r.db.First(&review, "service_id = ? AND client_id = ?", serviceID, clientID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepositoryImpl) FindByService(serviceID string) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Where("service_id = ?", serviceID).Order("created_at DESC").Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepositoryImpl) Create(review *models.Review) error {
	var existing models.Review
	err := r.db.Where("service_id = ? AND client_id = ?", review.ServiceID, review.ClientID).
		First(&existing).Error
	if err == nil {
		return ErrReviewAlreadyExists
	}
	return r.db.Create(review).Error
}

func (r *ReviewRepositoryImpl) Update(review *models.Review) error {
	result := r.db.Model(&models.Review{}).Where("id = ?", review.ID).
		Updates(map[string]interface{}{
			"rating":      review.Rating,
			"description": review.Description,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReviewNotFound
	}
	return nil
}

func (r *ReviewRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.Review{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReviewNotFound
	}
	return nil
}

func (r *ReviewRepositoryImpl) RatingStats(serviceID string) (float64, int, error) {
	var stats struct {
		Avg   float64
		Count int
	}
	err := r.db.Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Where("service_id = ?", serviceID).Scan(&stats).Error
	return stats.Avg, stats.Count, err
}
