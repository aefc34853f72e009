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

// CatalogService - CRUD услуг и предложений бизнеса.
// Все мутации проверяют, что ресурс принадлежит вызывающему бизнесу.
type CatalogService struct {
	services   repositories.ServiceRepository
	offerings  repositories.OfferingRepository
	branches   repositories.BranchRepository
	categories repositories.CategoryRepository
}

func NewCatalogService(
	services repositories.ServiceRepository,
	offerings repositories.OfferingRepository,
	branches repositories.BranchRepository,
	categories repositories.CategoryRepository,
) *CatalogService {
	return &CatalogService{
		services:   services,
		offerings:  offerings,
		branches:   branches,
		categories: categories,
	}
}

// ListOwn возвращает услуги бизнеса вместе с предложениями
func (s *CatalogService) ListOwn(businessID string) ([]models.Service, error) {
	services, err := s.services.FindByBusiness(businessID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return services, nil
}

// CreateService добавляет услугу в каталог бизнеса
func (s *CatalogService) CreateService(businessID string, req *dto.CreateServiceRequest) (*dto.MessageResponse, error) {
	cats, err := s.serviceCategories(req.CategoryIDs)
	if err != nil {
		return nil, err
	}

	service := &models.Service{
		BusinessID:       businessID,
		Name:             req.Name,
		ShortDescription: req.ShortDescription,
		Description:      req.Description,
		CoverImage:       req.CoverImage,
		Categories:       cats,
	}
	if err := s.services.Create(service); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.MessageResponse{Message: messages.CatalogSuccess.ServiceAdded}, nil
}

// EditService обновляет услугу бизнеса
func (s *CatalogService) EditService(businessID, serviceID string, req *dto.UpdateServiceRequest) (*dto.MessageResponse, error) {
	service, err := s.ownedService(businessID, serviceID)
	if err != nil {
		return nil, err
	}

	cats, err := s.serviceCategories(req.CategoryIDs)
	if err != nil {
		return nil, err
	}

	service.Name = req.Name
	service.ShortDescription = req.ShortDescription
	service.Description = req.Description
	service.CoverImage = req.CoverImage
	if err := s.services.Save(service); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if err := s.services.ReplaceCategories(service, cats); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.MessageResponse{Message: messages.CatalogSuccess.ServiceEdited}, nil
}

// DeleteService помечает услугу удалённой вместе с её предложениями
func (s *CatalogService) DeleteService(businessID, serviceID string) (*dto.MessageResponse, error) {
	if _, err := s.ownedService(businessID, serviceID); err != nil {
		return nil, err
	}

	offerings, err := s.offerings.FindByService(serviceID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	for _, offering := range offerings {
		if err := s.offerings.Delete(offering.ID); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	if err := s.services.Delete(serviceID); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.MessageResponse{Message: messages.CatalogSuccess.ServiceDeleted}, nil
}

// CreateOffering добавляет предложение к услуге.
// Филиал обязан принадлежать тому же бизнесу, что и услуга.
func (s *CatalogService) CreateOffering(businessID, serviceID string, req *dto.OfferingRequest) (*dto.MessageResponse, error) {
	if _, err := s.ownedService(businessID, serviceID); err != nil {
		return nil, err
	}

	branch, start, end, err := s.offeringParts(businessID, req)
	if err != nil {
		return nil, err
	}

	offering := &models.Offering{
		ServiceID: serviceID,
		BranchID:  branch.ID,
		StartDate: start,
		EndDate:   end,
		Location:  branch.Location,
		Address:   branch.Address,
		Price:     req.Price,
	}
	if err := s.offerings.Create(offering); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.MessageResponse{Message: messages.CatalogSuccess.OfferingAdded}, nil
}

// EditOffering обновляет предложение услуги
func (s *CatalogService) EditOffering(businessID, serviceID, offeringID string, req *dto.OfferingRequest) (*dto.MessageResponse, error) {
	offering, err := s.ownedOffering(businessID, serviceID, offeringID)
	if err != nil {
		return nil, err
	}

	branch, start, end, err := s.offeringParts(businessID, req)
	if err != nil {
		return nil, err
	}

	offering.BranchID = branch.ID
	offering.StartDate = start
	offering.EndDate = end
	offering.Location = branch.Location
	offering.Address = branch.Address
	offering.Price = req.Price
	if err := s.offerings.Update(offering); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.MessageResponse{Message: messages.CatalogSuccess.OfferingEdited}, nil
}

// DeleteOffering помечает предложение удалённым
func (s *CatalogService) DeleteOffering(businessID, serviceID, offeringID string) (*dto.MessageResponse, error) {
	if _, err := s.ownedOffering(businessID, serviceID, offeringID); err != nil {
		return nil, err
	}

	if err := s.offerings.Delete(offeringID); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.MessageResponse{Message: messages.CatalogSuccess.OfferingDeleted}, nil
}

func (s *CatalogService) ownedService(businessID, serviceID string) (*models.Service, error) {
	service, err := s.services.FindByID(serviceID)
	if err != nil {
		if errors.Is(err, repositories.ErrServiceNotFound) {
			return nil, apperrors.NotFound(messages.CatalogErrors.InvalidService)
		}
		return nil, apperrors.InternalError(err)
	}
	if service.BusinessID != businessID {
		return nil, apperrors.InvalidOperation(messages.CatalogErrors.InvalidOperation)
	}
	return service, nil
}

func (s *CatalogService) ownedOffering(businessID, serviceID, offeringID string) (*models.Offering, error) {
	if _, err := s.ownedService(businessID, serviceID); err != nil {
		return nil, err
	}

	offering, err := s.offerings.FindByID(offeringID)
	if err != nil {
		if errors.Is(err, repositories.ErrOfferingNotFound) {
			return nil, apperrors.NotFound(messages.CatalogErrors.InvalidOffering)
		}
		return nil, apperrors.InternalError(err)
	}
	if offering.ServiceID != serviceID {
		return nil, apperrors.InvalidOperation(messages.CatalogErrors.InvalidOperation)
	}
	return offering, nil
}

// offeringParts валидирует филиал и разбирает даты предложения
func (s *CatalogService) offeringParts(businessID string, req *dto.OfferingRequest) (*models.Branch, time.Time, time.Time, error) {
	var zero time.Time

	branch, err := s.branches.FindByID(req.BranchID)
	if err != nil {
		if errors.Is(err, repositories.ErrBranchNotFound) {
			return nil, zero, zero, apperrors.NewBadRequestError(messages.CatalogErrors.InvalidBranch)
		}
		return nil, zero, zero, apperrors.InternalError(err)
	}
	if branch.BusinessID != businessID {
		return nil, zero, zero, apperrors.NewBadRequestError(messages.CatalogErrors.InvalidBranch)
	}

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, zero, zero, apperrors.ValidationError(map[string]string{"startDate": "Must be a valid date (YYYY-MM-DD)"})
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return nil, zero, zero, apperrors.ValidationError(map[string]string{"endDate": "Must be a valid date (YYYY-MM-DD)"})
	}
	if end.Before(start) {
		return nil, zero, zero, apperrors.ValidationError(map[string]string{"endDate": "Must not be before startDate"})
	}

	return branch, start, end, nil
}

func (s *CatalogService) serviceCategories(ids []string) ([]models.Category, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	cats, err := s.categories.FindByIDs(ids)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, apperrors.NewBadRequestError(messages.CatalogErrors.InvalidCategory)
		}
		return nil, apperrors.InternalError(err)
	}
	for _, cat := range cats {
		if cat.Type != models.CategoryTypeService {
			return nil, apperrors.NewBadRequestError(messages.CatalogErrors.InvalidCategory)
		}
	}
	return cats, nil
}
