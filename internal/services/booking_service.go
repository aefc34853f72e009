package services

import (
	"errors"

	"servhub_backend/internal/messages"
	"servhub_backend/internal/models"
	"servhub_backend/internal/repositories"
	"servhub_backend/internal/services/dto"
	"servhub_backend/pkg/apperrors"
)

const bookingPageSize = 10

// BookingService - бронирование предложений клиентами
type BookingService struct {
	bookings  repositories.BookingRepository
	services  repositories.ServiceRepository
	offerings repositories.OfferingRepository
}

func NewBookingService(
	bookings repositories.BookingRepository,
	services repositories.ServiceRepository,
	offerings repositories.OfferingRepository,
) *BookingService {
	return &BookingService{
		bookings:  bookings,
		services:  services,
		offerings: offerings,
	}
}

// Make бронирует предложение. Цена фиксируется из предложения на момент
// бронирования и не меняется при последующих правках предложения.
func (s *BookingService) Make(clientID string, req *dto.BookingRequest) (*dto.MessageResponse, error) {
	if _, err := s.services.FindByID(req.ServiceID); err != nil {
		if errors.Is(err, repositories.ErrServiceNotFound) {
			return nil, apperrors.NotFound(messages.CatalogErrors.InvalidService)
		}
		return nil, apperrors.InternalError(err)
	}

	offering, err := s.offerings.FindByID(req.OfferingID)
	if err != nil {
		if errors.Is(err, repositories.ErrOfferingNotFound) {
			return nil, apperrors.NotFound(messages.CatalogErrors.InvalidOffering)
		}
		return nil, apperrors.InternalError(err)
	}
	if offering.ServiceID != req.ServiceID {
		return nil, apperrors.NewBadRequestError(messages.BookingMessages.InvalidOffering)
	}

	booking := &models.Booking{
		ClientID:   clientID,
		ServiceID:  req.ServiceID,
		OfferingID: req.OfferingID,
		Price:      offering.Price,
	}
	if err := s.bookings.Create(booking); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.MessageResponse{Message: messages.BookingMessages.Made}, nil
}

// History возвращает страницу бронирований клиента
func (s *BookingService) History(clientID string, page int) (*dto.PageResponse, error) {
	if page < 1 {
		page = 1
	}

	bookings, total, err := s.bookings.FindByClient(clientID, bookingPageSize, (page-1)*bookingPageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.PageResponse{
		Results: bookings,
		Total:   total,
		Page:    page,
		PerPage: bookingPageSize,
	}, nil
}
