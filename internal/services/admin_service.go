package services

import (
	"errors"

	"servhub_backend/internal/auth"
	"servhub_backend/internal/email"
	"servhub_backend/internal/logger"
	"servhub_backend/internal/messages"
	"servhub_backend/internal/models"
	"servhub_backend/internal/repositories"
	"servhub_backend/internal/services/dto"
	"servhub_backend/pkg/apperrors"
)

const adminPageSize = 20

// AdminService - модерация заявок бизнесов, категории и учётные записи
type AdminService struct {
	businesses     repositories.BusinessRepository
	clients        repositories.ClientRepository
	categories     repositories.CategoryRepository
	businessSigner *auth.Signer
	mailer         email.Mailer
	confirmTTL     TokenTTLs
	hostname       string
}

func NewAdminService(
	businesses repositories.BusinessRepository,
	clients repositories.ClientRepository,
	categories repositories.CategoryRepository,
	businessSigner *auth.Signer,
	mailer email.Mailer,
	ttls TokenTTLs,
	hostname string,
) *AdminService {
	return &AdminService{
		businesses:     businesses,
		clients:        clients,
		categories:     categories,
		businessSigner: businessSigner,
		mailer:         mailer,
		confirmTTL:     ttls,
		hostname:       hostname,
	}
}

// --- Модерация бизнесов ---

// PendingBusinesses возвращает страницу заявок, ожидающих решения
func (s *AdminService) PendingBusinesses(page int) (*dto.PageResponse, error) {
	if page < 1 {
		page = 1
	}

	businesses, err := s.businesses.FindByStatus(models.AccountStatusPending, adminPageSize, (page-1)*adminPageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.PageResponse{
		Results: businesses,
		Total:   int64(len(businesses)),
		Page:    page,
		PerPage: adminPageSize,
	}, nil
}

// ConfirmBusiness одобряет заявку: статус unverified, бизнесу уходит
// письмо с токеном завершения регистрации.
func (s *AdminService) ConfirmBusiness(businessID string) (*dto.MessageResponse, error) {
	business, err := s.pendingBusiness(businessID)
	if err != nil {
		return nil, err
	}

	token, err := s.businessSigner.Issue(business.ID, business.Email, auth.PurposeConfirmEmail, s.confirmTTL.Confirm)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	claims, _ := s.businessSigner.Verify(token, auth.PurposeConfirmEmail)
	issuedAt := claims.IssuedAt.Time
	business.State = models.AccountStatusUnverified
	business.ConfirmationTokenDate = &issuedAt
	if err := s.businesses.Save(business); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.mailer.SendConfirmation(business.Email, s.hostname, token); err != nil {
		logger.Error("failed to send business confirmation email", "error", err, "business_id", business.ID)
	}
	if err := s.mailer.SendBusinessDecision(business.Email, true); err != nil {
		logger.Error("failed to send business decision email", "error", err, "business_id", business.ID)
	}

	logger.Info("business application confirmed", "business_id", business.ID)

	return &dto.MessageResponse{Message: messages.AdminMessages.BusinessConfirmed}, nil
}

// DenyBusiness отклоняет заявку
func (s *AdminService) DenyBusiness(businessID string) (*dto.MessageResponse, error) {
	business, err := s.pendingBusiness(businessID)
	if err != nil {
		return nil, err
	}

	business.State = models.AccountStatusRejected
	if err := s.businesses.Save(business); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.mailer.SendBusinessDecision(business.Email, false); err != nil {
		logger.Error("failed to send business decision email", "error", err, "business_id", business.ID)
	}

	logger.Info("business application denied", "business_id", business.ID)

	return &dto.MessageResponse{Message: messages.AdminMessages.BusinessDenied}, nil
}

func (s *AdminService) pendingBusiness(businessID string) (*models.Business, error) {
	business, err := s.businesses.FindBusinessByID(businessID)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, apperrors.NotFound(messages.AdminMessages.BusinessNotFound)
		}
		return nil, apperrors.InternalError(err)
	}
	if business.State != models.AccountStatusPending {
		return nil, apperrors.InvalidOperation(messages.AdminMessages.BusinessNotFound)
	}
	return business, nil
}

// --- Категории ---

func (s *AdminService) AddCategory(req *dto.CategoryRequest) (*dto.MessageResponse, error) {
	category := &models.Category{
		Type:  models.CategoryType(req.Type),
		Title: req.Title,
		Icon:  req.Icon,
	}
	if err := s.categories.Create(category); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.MessageResponse{Message: messages.AdminMessages.CategoryAdded}, nil
}

func (s *AdminService) EditCategory(categoryID string, req *dto.CategoryRequest) (*dto.MessageResponse, error) {
	category, err := s.categories.FindByID(categoryID)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, apperrors.NotFound(messages.AdminMessages.CategoryNotFound)
		}
		return nil, apperrors.InternalError(err)
	}

	category.Type = models.CategoryType(req.Type)
	category.Title = req.Title
	category.Icon = req.Icon
	if err := s.categories.Update(category); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.MessageResponse{Message: messages.AdminMessages.CategoryEdited}, nil
}

func (s *AdminService) DeleteCategory(categoryID string) (*dto.MessageResponse, error) {
	if err := s.categories.Delete(categoryID); err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, apperrors.NotFound(messages.AdminMessages.CategoryNotFound)
		}
		return nil, apperrors.InternalError(err)
	}
	return &dto.MessageResponse{Message: messages.AdminMessages.CategoryDeleted}, nil
}

func (s *AdminService) ListCategories() ([]models.Category, error) {
	cats, err := s.categories.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return cats, nil
}

// --- Учётные записи ---

func (s *AdminService) ListClients(page int) (*dto.PageResponse, error) {
	if page < 1 {
		page = 1
	}

	clients, err := s.clients.FindAll(adminPageSize, (page-1)*adminPageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	total, err := s.clients.CountAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.PageResponse{Results: clients, Total: total, Page: page, PerPage: adminPageSize}, nil
}

func (s *AdminService) ListBusinesses(page int) (*dto.PageResponse, error) {
	if page < 1 {
		page = 1
	}

	businesses, err := s.businesses.FindAll(adminPageSize, (page-1)*adminPageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	total, err := s.businesses.CountAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.PageResponse{Results: businesses, Total: total, Page: page, PerPage: adminPageSize}, nil
}

func (s *AdminService) DeleteClient(clientID string) (*dto.MessageResponse, error) {
	if err := s.clients.Delete(clientID); err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, apperrors.NotFound(messages.AdminMessages.ClientNotFound)
		}
		return nil, apperrors.InternalError(err)
	}
	return &dto.MessageResponse{Message: messages.AdminMessages.AccountDeleted}, nil
}

func (s *AdminService) DeleteBusiness(businessID string) (*dto.MessageResponse, error) {
	if err := s.businesses.Delete(businessID); err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, apperrors.NotFound(messages.AdminMessages.BusinessNotFound)
		}
		return nil, apperrors.InternalError(err)
	}
	return &dto.MessageResponse{Message: messages.AdminMessages.AccountDeleted}, nil
}
