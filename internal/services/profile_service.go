package services

import (
	"errors"
	"time"

	"servhub_backend/internal/messages"
	"servhub_backend/internal/models"
	"servhub_backend/internal/repositories"
	"servhub_backend/internal/services/dto"
	"servhub_backend/pkg/apperrors"
)

// ProfileService - просмотр и правка профиля клиента
type ProfileService struct {
	clients repositories.ClientRepository
}

func NewProfileService(clients repositories.ClientRepository) *ProfileService {
	return &ProfileService{clients: clients}
}

func (s *ProfileService) Get(clientID string) (*models.Client, error) {
	client, err := s.clients.FindClientByID(clientID)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, apperrors.NotFound(messages.AdminMessages.ClientNotFound)
		}
		return nil, apperrors.InternalError(err)
	}
	return client, nil
}

func (s *ProfileService) Edit(clientID string, req *dto.EditProfileRequest) (*dto.MessageResponse, error) {
	client, err := s.clients.FindClientByID(clientID)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, apperrors.NotFound(messages.AdminMessages.ClientNotFound)
		}
		return nil, apperrors.InternalError(err)
	}

	birthdate, err := time.Parse("2006-01-02", req.Birthdate)
	if err != nil {
		return nil, apperrors.ValidationError(map[string]string{"birthdate": "Must be a valid date (YYYY-MM-DD)"})
	}

	client.FirstName = req.FirstName
	client.LastName = req.LastName
	client.Mobile = req.Mobile
	client.Gender = req.Gender
	client.Birthdate = birthdate
	if err := s.clients.Save(client); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.MessageResponse{Message: messages.ProfileMessages.InfoEdit}, nil
}
