package services

import (
	"errors"

	"servhub_backend/internal/messages"
	"servhub_backend/internal/models"
	"servhub_backend/internal/repositories"
	"servhub_backend/internal/services/dto"
	"servhub_backend/pkg/apperrors"
)

// ReviewService - отзывы клиентов об услугах.
// После каждой мутации пересчитывается средний рейтинг услуги.
type ReviewService struct {
	reviews  repositories.ReviewRepository
	services repositories.ServiceRepository
}

func NewReviewService(
	reviews repositories.ReviewRepository,
	services repositories.ServiceRepository,
) *ReviewService {
	return &ReviewService{
		reviews:  reviews,
		services: services,
	}
}

// List возвращает отзывы услуги
func (s *ReviewService) List(serviceID string) ([]models.Review, error) {
	if _, err := s.services.FindByID(serviceID); err != nil {
		if errors.Is(err, repositories.ErrServiceNotFound) {
			return nil, apperrors.NotFound(messages.CatalogErrors.InvalidService)
		}
		return nil, apperrors.InternalError(err)
	}

	reviews, err := s.reviews.FindByService(serviceID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return reviews, nil
}

// Add создаёт отзыв. Один клиент - один отзыв на услугу.
func (s *ReviewService) Add(clientID, serviceID string, req *dto.ReviewRequest) (*dto.MessageResponse, error) {
	if _, err := s.services.FindByID(serviceID); err != nil {
		if errors.Is(err, repositories.ErrServiceNotFound) {
			return nil, apperrors.NotFound(messages.CatalogErrors.InvalidService)
		}
		return nil, apperrors.InternalError(err)
	}

	review := &models.Review{
		ServiceID:   serviceID,
		ClientID:    clientID,
		Rating:      req.Rating,
		Description: req.Description,
	}
	if err := s.reviews.Create(review); err != nil {
		if errors.Is(err, repositories.ErrReviewAlreadyExists) {
			return nil, apperrors.InvalidOperation(messages.ReviewMessages.AlreadyExists)
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.recalcRating(serviceID); err != nil {
		return nil, err
	}

	return &dto.MessageResponse{Message: messages.ReviewMessages.Added}, nil
}

// Edit обновляет собственный отзыв клиента
func (s *ReviewService) Edit(clientID, serviceID, reviewID string, req *dto.ReviewRequest) (*dto.MessageResponse, error) {
	review, err := s.ownReview(clientID, serviceID, reviewID)
	if err != nil {
		return nil, err
	}

	review.Rating = req.Rating
	review.Description = req.Description
	if err := s.reviews.Update(review); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.recalcRating(serviceID); err != nil {
		return nil, err
	}

	return &dto.MessageResponse{Message: messages.ReviewMessages.Edited}, nil
}

// Delete удаляет собственный отзыв клиента
func (s *ReviewService) Delete(clientID, serviceID, reviewID string) (*dto.MessageResponse, error) {
	if _, err := s.ownReview(clientID, serviceID, reviewID); err != nil {
		return nil, err
	}

	if err := s.reviews.Delete(reviewID); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.recalcRating(serviceID); err != nil {
		return nil, err
	}

	return &dto.MessageResponse{Message: messages.ReviewMessages.Deleted}, nil
}

func (s *ReviewService) ownReview(clientID, serviceID, reviewID string) (*models.Review, error) {
	review, err := s.reviews.FindByID(reviewID)
	if err != nil {
		if errors.Is(err, repositories.ErrReviewNotFound) {
			return nil, apperrors.NotFound(messages.ReviewMessages.NotFound)
		}
		return nil, apperrors.InternalError(err)
	}
	if review.ServiceID != serviceID {
		return nil, apperrors.NotFound(messages.ReviewMessages.NotFound)
	}
	if review.ClientID != clientID {
		return nil, apperrors.InvalidOperation(messages.CatalogErrors.InvalidOperation)
	}
	return review, nil
}

func (s *ReviewService) recalcRating(serviceID string) error {
	avg, count, err := s.reviews.RatingStats(serviceID)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if err := s.services.UpdateRating(serviceID, avg, count); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
