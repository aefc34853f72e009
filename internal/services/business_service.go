package services

import (
	"errors"

	"servhub_backend/internal/messages"
	"servhub_backend/internal/models"
	"servhub_backend/internal/repositories"
	"servhub_backend/internal/services/dto"
	"servhub_backend/pkg/apperrors"
)

// BusinessService - управление профилем бизнеса и филиалами
type BusinessService struct {
	businesses repositories.BusinessRepository
	branches   repositories.BranchRepository
	categories repositories.CategoryRepository
	offerings  repositories.OfferingRepository
}

func NewBusinessService(
	businesses repositories.BusinessRepository,
	branches repositories.BranchRepository,
	categories repositories.CategoryRepository,
	offerings repositories.OfferingRepository,
) *BusinessService {
	return &BusinessService{
		businesses: businesses,
		branches:   branches,
		categories: categories,
		offerings:  offerings,
	}
}

// Get возвращает публичный профиль бизнеса
func (s *BusinessService) Get(businessID string) (*models.Business, error) {
	business, err := s.businesses.FindBusinessByID(businessID)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, apperrors.NotFound(messages.BusinessMessages.BusinessDoesntExist)
		}
		return nil, apperrors.InternalError(err)
	}
	return business, nil
}

// EditInfo обновляет описание, часы работы, категории и филиалы бизнеса.
// Категории проверяются на существование и тип Business.
func (s *BusinessService) EditInfo(businessID string, req *dto.BusinessInfoRequest) (*dto.MessageResponse, error) {
	business, err := s.businesses.FindBusinessByID(businessID)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, apperrors.NotFound(messages.BusinessMessages.BusinessDoesntExist)
		}
		return nil, apperrors.InternalError(err)
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
			BusinessID: businessID,
			Location:   br.Location,
			Address:    br.Address,
		}
		if err := s.branches.Create(branch); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	return &dto.MessageResponse{Message: messages.BusinessSuccess.InfoEdit}, nil
}

// AddBranch добавляет филиал бизнесу
func (s *BusinessService) AddBranch(businessID string, req *dto.BranchRequest) (*dto.MessageResponse, error) {
	branch := &models.Branch{
		BusinessID: businessID,
		Location:   req.Location,
		Address:    req.Address,
	}
	if err := s.branches.Create(branch); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.MessageResponse{Message: messages.BusinessSuccess.BranchAdded}, nil
}

// EditBranch обновляет филиал. Предложения в этом филиале несут копию
// его локации и адреса, поэтому правка филиала переписывает и их.
// Чужой филиал редактировать нельзя.
func (s *BusinessService) EditBranch(businessID, branchID string, req *dto.BranchRequest) (*dto.MessageResponse, error) {
	branch, err := s.ownedBranch(businessID, branchID)
	if err != nil {
		return nil, err
	}

	branch.Location = req.Location
	branch.Address = req.Address
	if err := s.branches.Update(branch); err != nil {
		return nil, apperrors.InternalError(err)
	}

	offerings, err := s.offerings.FindByBranch(branchID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	for i := range offerings {
		offerings[i].Location = branch.Location
		offerings[i].Address = branch.Address
		if err := s.offerings.Update(&offerings[i]); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	return &dto.MessageResponse{Message: messages.BusinessSuccess.BranchEdit}, nil
}

// DeleteBranch помечает филиал удалённым вместе с его предложениями
func (s *BusinessService) DeleteBranch(businessID, branchID string) (*dto.MessageResponse, error) {
	if _, err := s.ownedBranch(businessID, branchID); err != nil {
		return nil, err
	}

	offerings, err := s.offerings.FindByBranch(branchID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	for _, offering := range offerings {
		if err := s.offerings.Delete(offering.ID); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	if err := s.branches.Delete(branchID); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.MessageResponse{Message: messages.BusinessSuccess.BranchDelete}, nil
}

func (s *BusinessService) ownedBranch(businessID, branchID string) (*models.Branch, error) {
	branch, err := s.branches.FindByID(branchID)
	if err != nil {
		if errors.Is(err, repositories.ErrBranchNotFound) {
			return nil, apperrors.NotFound(messages.BusinessMessages.BranchDoesntExist)
		}
		return nil, apperrors.InternalError(err)
	}
	if branch.BusinessID != businessID {
		return nil, apperrors.InvalidOperation(messages.BusinessMessages.MismatchID)
	}
	return branch, nil
}
