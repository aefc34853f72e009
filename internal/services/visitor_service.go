package services

import (
	"errors"

	"servhub_backend/internal/messages"
	"servhub_backend/internal/models"
	"servhub_backend/internal/repositories"
	"servhub_backend/internal/services/dto"
	"servhub_backend/pkg/apperrors"
)

const (
	topRatedLimit      = 5
	relatedPageSize    = 10
	searchPageSize     = 10
	maxVisitorPageSize = 50
)

// VisitorService - публичный просмотр каталога без аутентификации
type VisitorService struct {
	services   repositories.ServiceRepository
	categories repositories.CategoryRepository
}

func NewVisitorService(
	services repositories.ServiceRepository,
	categories repositories.CategoryRepository,
) *VisitorService {
	return &VisitorService{
		services:   services,
		categories: categories,
	}
}

// TopRated возвращает пять услуг с лучшим средним рейтингом
func (s *VisitorService) TopRated() ([]models.Service, error) {
	services, err := s.services.FindTopRated(topRatedLimit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return services, nil
}

// Related возвращает страницу услуг категории.
// Пустая страница за пределами результатов - ошибка, а не пустой список.
func (s *VisitorService) Related(categoryID string, page int) (*dto.PageResponse, error) {
	if _, err := s.categories.FindByID(categoryID); err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, apperrors.NotFound(messages.CatalogErrors.InvalidCategory)
		}
		return nil, apperrors.InternalError(err)
	}

	if page < 1 {
		page = 1
	}
	offset := (page - 1) * relatedPageSize

	services, total, err := s.services.FindRelated(categoryID, relatedPageSize, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if len(services) == 0 {
		return nil, apperrors.NotFound(messages.VisitorErrors.NoRelatedServices)
	}

	return &dto.PageResponse{
		Results: services,
		Total:   total,
		Page:    page,
		PerPage: relatedPageSize,
	}, nil
}

// View возвращает услугу со всеми связями для публичной страницы
func (s *VisitorService) View(serviceID string) (*models.Service, error) {
	service, err := s.services.FindByIDWithRelations(serviceID)
	if err != nil {
		if errors.Is(err, repositories.ErrServiceNotFound) {
			return nil, apperrors.NotFound(messages.VisitorErrors.ServiceNotFound)
		}
		return nil, apperrors.InternalError(err)
	}
	return service, nil
}

// Search ищет услуги по имени и краткому описанию
func (s *VisitorService) Search(query string, page, perPage int) (*dto.PageResponse, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = searchPageSize
	}
	if perPage > maxVisitorPageSize {
		perPage = maxVisitorPageSize
	}

	services, total, err := s.services.Search(query, perPage, (page-1)*perPage)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.PageResponse{
		Results: services,
		Total:   total,
		Page:    page,
		PerPage: perPage,
	}, nil
}

// Categories возвращает все категории для фильтров каталога
func (s *VisitorService) Categories() ([]models.Category, error) {
	cats, err := s.categories.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return cats, nil
}
