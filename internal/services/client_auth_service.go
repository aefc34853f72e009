package services

import (
	"errors"
	"time"

	"servhub_backend/internal/auth"
	"servhub_backend/internal/messages"
	"servhub_backend/internal/models"
	"servhub_backend/internal/repositories"
	"servhub_backend/internal/services/dto"
	"servhub_backend/pkg/apperrors"
)

// ClientAuthService - потоки аутентификации клиента:
// общие потоки наследуются от AuthService, регистрация своя.
type ClientAuthService struct {
	*AuthService
	clients repositories.ClientRepository
}

func NewClientAuthService(base *AuthService, clients repositories.ClientRepository) *ClientAuthService {
	return &ClientAuthService{
		AuthService: base,
		clients:     clients,
	}
}

// Signup регистрирует клиента и шлёт письмо подтверждения.
// Аккаунт создаётся в статусе unverified.
func (s *ClientAuthService) Signup(req *dto.ClientSignupRequest) (*dto.MessageResponse, error) {
	birthdate, err := time.Parse("2006-01-02", req.Birthdate)
	if err != nil {
		return nil, apperrors.ValidationError(map[string]string{"birthdate": "Must be a valid date (YYYY-MM-DD)"})
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	client := &models.Client{
		Credentials: models.Credentials{
			Email:        req.Email,
			PasswordHash: hash,
		},
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Mobile:    req.Mobile,
		Gender:    req.Gender,
		Birthdate: birthdate,
		State:     models.AccountStatusUnverified,
	}

	if err := s.clients.Create(client); err != nil {
		if errors.Is(err, repositories.ErrAccountAlreadyExists) {
			return nil, apperrors.ErrDuplicateAccount
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.sendConfirmation(client); err != nil {
		return nil, err
	}

	return &dto.MessageResponse{Message: messages.AuthSuccess.Signup}, nil
}
