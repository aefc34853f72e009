package repositories

import (
	"errors"

	"servhub_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrBranchNotFound   = errors.New("branch not found")
	ErrServiceNotFound  = errors.New("service not found")
	ErrOfferingNotFound = errors.New("offering not found")
)

// --- Categories ---

type CategoryRepository interface {
	FindByID(id string) (*models.Category, error)
	FindByIDs(ids []string) ([]models.Category, error)
	FindByType(categoryType models.CategoryType) ([]models.Category, error)
	FindAll() ([]models.Category, error)
	Create(category *models.Category) error
	Update(category *models.Category) error
	Delete(id string) error
}

type CategoryRepositoryImpl struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &CategoryRepositoryImpl{db: db}
}

func (r *CategoryRepositoryImpl) FindByID(id string) (*models.Category, error) {
	var category models.Category
	err := r.db.First(&category, "id = ? AND deleted = false", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepositoryImpl) FindByIDs(ids []string) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Where("id IN ? AND deleted = false", ids).Find(&categories).Error
	if err != nil {
		return nil, err
	}
	if len(categories) != len(ids) {
		return nil, ErrCategoryNotFound
	}
	return categories, nil
}

func (r *CategoryRepositoryImpl) FindByType(categoryType models.CategoryType) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Where("type = ? AND deleted = false", categoryType).
		Order("title").Find(&categories).Error
	return categories, err
}

func (r *CategoryRepositoryImpl) FindAll() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Where("deleted = false").Order("title").Find(&categories).Error
	return categories, err
}

func (r *CategoryRepositoryImpl) Create(category *models.Category) error {
	return r.db.Create(category).Error
}

func (r *CategoryRepositoryImpl) Update(category *models.Category) error {
	result := r.db.Model(&models.Category{}).Where("id = ? AND deleted = false", category.ID).
		Updates(map[string]interface{}{
			"type":  category.Type,
			"title": category.Title,
			"icon":  category.Icon,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

func (r *CategoryRepositoryImpl) Delete(id string) error {
	result := r.db.Model(&models.Category{}).Where("id = ?", id).Update("deleted", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

// --- Branches ---

type BranchRepository interface {
	FindByID(id string) (*models.Branch, error)
	FindByBusiness(businessID string) ([]models.Branch, error)
	Create(branch *models.Branch) error
	Update(branch *models.Branch) error
	Delete(id string) error
}

type BranchRepositoryImpl struct {
	db *gorm.DB
}

func NewBranchRepository(db *gorm.DB) BranchRepository {
	return &BranchRepositoryImpl{db: db}
}

func (r *BranchRepositoryImpl) FindByID(id string) (*models.Branch, error) {
	var branch models.Branch
	err := r.db.First(&branch, "id = ? AND deleted = false", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBranchNotFound
		}
		return nil, err
	}
	return &branch, nil
}

func (r *BranchRepositoryImpl) FindByBusiness(businessID string) ([]models.Branch, error) {
	var branches []models.Branch
	err := r.db.Where("business_id = ? AND deleted = false", businessID).Find(&branches).Error
	return branches, err
}

func (r *BranchRepositoryImpl) Create(branch *models.Branch) error {
	return r.db.Create(branch).Error
}

func (r *BranchRepositoryImpl) Update(branch *models.Branch) error {
	result := r.db.Model(&models.Branch{}).Where("id = ? AND deleted = false", branch.ID).
		Updates(map[string]interface{}{
			"location": branch.Location,
			"address":  branch.Address,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBranchNotFound
	}
	return nil
}

func (r *BranchRepositoryImpl) Delete(id string) error {
	result := r.db.Model(&models.Branch{}).Where("id = ?", id).Update("deleted", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBranchNotFound
	}
	return nil
}

// --- Services ---

type ServiceRepository interface {
	FindByID(id string) (*models.Service, error)
	FindByIDWithRelations(id string) (*models.Service, error)
	FindByBusiness(businessID string) ([]models.Service, error)
	FindTopRated(limit int) ([]models.Service, error)
	FindRelated(categoryID string, limit, offset int) ([]models.Service, int64, error)
	Search(query string, limit, offset int) ([]models.Service, int64, error)
	Create(service *models.Service) error
	Save(service *models.Service) error
	ReplaceCategories(service *models.Service, categories []models.Category) error
	UpdateRating(serviceID string, avgRating float64, ratingCount int) error
	Delete(id string) error
}

type ServiceRepositoryImpl struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) ServiceRepository {
	return &ServiceRepositoryImpl{db: db}
}

func (r *ServiceRepositoryImpl) FindByID(id string) (*models.Service, error) {
	var service models.Service
	err := r.db.Preload("Categories").First(&service, "id = ? AND deleted = false", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	return &service, nil
}

func (r *ServiceRepositoryImpl) FindByIDWithRelations(id string) (*models.Service, error) {
	var service models.Service
	err := r.db.Preload("Categories").Preload("Business").
		Preload("Offerings", "deleted = false").Preload("Reviews").
		First(&service, "id = ? AND deleted = false", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	return &service, nil
}

func (r *ServiceRepositoryImpl) FindByBusiness(businessID string) ([]models.Service, error) {
	var services []models.Service
	err := r.db.Preload("Categories").Preload("Offerings", "deleted = false").
		Where("business_id = ? AND deleted = false", businessID).Find(&services).Error
	return services, err
}

func (r *ServiceRepositoryImpl) FindTopRated(limit int) ([]models.Service, error) {
	var services []models.Service
	err := r.db.Preload("Business").Where("deleted = false").
		Order("avg_rating DESC").Limit(limit).Find(&services).Error
	return services, err
}

func (r *ServiceRepositoryImpl) FindRelated(categoryID string, limit, offset int) ([]models.Service, int64, error) {
	base := r.db.Model(&models.Service{}).
		Joins("JOIN service_categories sc ON sc.service_id = services.id").
		Where("sc.category_id = ? AND services.deleted = false", categoryID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var services []models.Service
	err := base.Preload("Business").
		Order("services.created_at DESC").Limit(limit).Offset(offset).Find(&services).Error
	return services, total, err
}

func (r *ServiceRepositoryImpl) Search(query string, limit, offset int) ([]models.Service, int64, error) {
	pattern := "%" + query + "%"
	base := r.db.Model(&models.Service{}).
		Where("deleted = false AND (name ILIKE ? OR short_description ILIKE ?)", pattern, pattern)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var services []models.Service
	err := base.Preload("Business").
		Order("avg_rating DESC").Limit(limit).Offset(offset).Find(&services).Error
	return services, total, err
}

func (r *ServiceRepositoryImpl) Create(service *models.Service) error {
	return r.db.Create(service).Error
}

func (r *ServiceRepositoryImpl) Save(service *models.Service) error {
	return r.db.Omit("Categories", "Offerings", "Reviews", "Business").Save(service).Error
}

func (r *ServiceRepositoryImpl) ReplaceCategories(service *models.Service, categories []models.Category) error {
	return r.db.Model(service).Association("Categories").Replace(categories)
}

func (r *ServiceRepositoryImpl) UpdateRating(serviceID string, avgRating float64, ratingCount int) error {
	return r.db.Model(&models.Service{}).Where("id = ?", serviceID).
		Updates(map[string]interface{}{
			"avg_rating":   avgRating,
			"rating_count": ratingCount,
		}).Error
}

func (r *ServiceRepositoryImpl) Delete(id string) error {
	result := r.db.Model(&models.Service{}).Where("id = ?", id).Update("deleted", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrServiceNotFound
	}
	return nil
}

// --- Offerings ---

type OfferingRepository interface {
	FindByID(id string) (*models.Offering, error)
	FindByService(serviceID string) ([]models.Offering, error)
	FindByBranch(branchID string) ([]models.Offering, error)
	Create(offering *models.Offering) error
	Update(offering *models.Offering) error
	Delete(id string) error
}

type OfferingRepositoryImpl struct {
	db *gorm.DB
}

func NewOfferingRepository(db *gorm.DB) OfferingRepository {
	return &OfferingRepositoryImpl{db: db}
}

func (r *OfferingRepositoryImpl) FindByID(id string) (*models.Offering, error) {
	var offering models.Offering
	err := r.db.First(&offering, "id = ? AND deleted = false", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOfferingNotFound
		}
		return nil, err
	}
	return &offering, nil
}

func (r *OfferingRepositoryImpl) FindByService(serviceID string) ([]models.Offering, error) {
	var offerings []models.Offering
	err := r.db.Where("service_id = ? AND deleted = false", serviceID).Find(&offerings).Error
	return offerings, err
}

func (r *OfferingRepositoryImpl) FindByBranch(branchID string) ([]models.Offering, error) {
	var offerings []models.Offering
	err := r.db.Where("branch_id = ? AND deleted = false", branchID).Find(&offerings).Error
	return offerings, err
}

func (r *OfferingRepositoryImpl) Create(offering *models.Offering) error {
	return r.db.Create(offering).Error
}

func (r *OfferingRepositoryImpl) Update(offering *models.Offering) error {
	result := r.db.Model(&models.Offering{}).Where("id = ? AND deleted = false", offering.ID).
		Updates(map[string]interface{}{
			"branch_id":  offering.BranchID,
			"start_date": offering.StartDate,
			"end_date":   offering.EndDate,
			"location":   offering.Location,
			"address":    offering.Address,
			"price":      offering.Price,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOfferingNotFound
	}
	return nil
}

func (r *OfferingRepositoryImpl) Delete(id string) error {
	result := r.db.Model(&models.Offering{}).Where("id = ?", id).Update("deleted", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOfferingNotFound
	}
	return nil
}
