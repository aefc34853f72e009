package services

import (
	"errors"
	"time"

	"servhub_backend/internal/auth"
	"servhub_backend/internal/logger"
	"servhub_backend/internal/messages"
	"servhub_backend/internal/models"
	"servhub_backend/internal/repositories"
	"servhub_backend/internal/services/dto"
	"servhub_backend/pkg/apperrors"
)

// BusinessAuthService - потоки аутентификации бизнеса.
// Бизнес регистрируется заявкой в статусе pending; модерация переводит
// её в unverified, после чего бизнес завершает регистрацию по письму.
type BusinessAuthService struct {
	*AuthService
	businesses repositories.BusinessRepository
	branches   repositories.BranchRepository
	categories repositories.CategoryRepository
}

func NewBusinessAuthService(
	base *AuthService,
	businesses repositories.BusinessRepository,
	branches repositories.BranchRepository,
	categories repositories.CategoryRepository,
) *BusinessAuthService {
	return &BusinessAuthService{
		AuthService: base,
		businesses:  businesses,
		branches:    branches,
		categories:  categories,
	}
}

// Signup принимает заявку бизнеса. До решения модерации аккаунт
// существует, но письмо подтверждения не отправляется.
func (s *BusinessAuthService) Signup(req *dto.BusinessSignupRequest) (*dto.MessageResponse, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	business := &models.Business{
		Credentials: models.Credentials{
			Email:        req.Email,
			PasswordHash: hash,
		},
		Name:             req.Name,
		ShortDescription: req.ShortDescription,
		PhoneNumbers:     req.PhoneNumbers,
		State:            models.AccountStatusPending,
	}

	if err := s.businesses.Create(business); err != nil {
		if errors.Is(err, repositories.ErrAccountAlreadyExists) {
			return nil, apperrors.ErrDuplicateAccount
		}
		return nil, apperrors.InternalError(err)
	}

	logger.Info("business application received", "business_id", business.ID)

	return &dto.MessageResponse{Message: messages.BusinessMessages.PendingApproval}, nil
}

// CompleteSignup завершает регистрацию одобренного бизнеса: по токену
// из письма модерации бизнес задаёт пароль, заполняет описание, часы
// работы, категории и филиалы, аккаунт подтверждается. Токен одноразовый:
// использованный заносится в журнал отозванных.
func (s *BusinessAuthService) CompleteSignup(token string, req *dto.BusinessConfirmRequest) (*dto.MessageResponse, error) {
	claims, err := s.signer.Verify(token, auth.PurposeConfirmEmail)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	account, err := s.businesses.FindByID(claims.Subject)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	if account.Status() == models.AccountStatusConfirmed {
		return nil, apperrors.ErrAlreadyConfirmed
	}
	if account.Status() == models.AccountStatusPending || account.Status() == models.AccountStatusRejected {
		return nil, apperrors.ErrInvalidToken
	}

	revoked, err := s.ledger.IsInvalidated(token)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if revoked {
		return nil, apperrors.ErrInvalidToken
	}

	if !auth.IssuedAtOnOrAfter(claims, account.Creds().ConfirmationTokenDate) {
		return nil, apperrors.ErrInvalidToken
	}

	var cats []models.Category
	if len(req.CategoryIDs) > 0 {
		cats, err = s.categories.FindByIDs(req.CategoryIDs)
		if err != nil {
			if errors.Is(err, repositories.ErrCategoryNotFound) {
				return nil, apperrors.NewBadRequestError(messages.CatalogErrors.InvalidCategory)
			}
			return nil, apperrors.InternalError(err)
		}
		for _, cat := range cats {
			if cat.Type != models.CategoryTypeBusiness {
				return nil, apperrors.NewBadRequestError(messages.CatalogErrors.InvalidCategory)
			}
		}
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	business, err := s.businesses.FindBusinessByID(account.AccountID())
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	now := time.Now().Truncate(time.Second)
	business.State = models.AccountStatusConfirmed
	business.PasswordHash = hash
	business.ConfirmationTokenDate = nil
	business.PasswordChangeDate = &now
	business.Description = req.Description
	business.WorkingHours = req.WorkingHours
	if err := s.businesses.Save(business); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.businesses.ReplaceCategories(business, cats); err != nil {
		return nil, apperrors.InternalError(err)
	}

	for _, br := range req.Branches {
		branch := &models.Branch{
			BusinessID: business.ID,
			Location:   br.Location,
			Address:    br.Address,
		}
		if err := s.branches.Create(branch); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	if err := s.ledger.Record(token, claims.ExpiresAt.Time); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("business signup completed", "business_id", business.ID)

	return &dto.MessageResponse{Message: messages.AuthSuccess.Confirmed}, nil
}
