package repositories

import (
	"errors"

	"servhub_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrAccountNotFound      = errors.New("account not found")
	ErrAccountAlreadyExists = errors.New("account already exists")
)

// CredentialStore - общий доступ к учётным записям одного вида.
// Сервис аутентификации работает через этот интерфейс и не знает,
// клиент перед ним, бизнес или админ.
type CredentialStore interface {
	FindByID(id string) (models.Account, error)
	FindByEmail(email string) (models.Account, error)
	Create(account models.Account) error
	Save(account models.Account) error
}

// --- Client ---

type ClientRepository interface {
	CredentialStore
	FindClientByID(id string) (*models.Client, error)
	FindAll(limit, offset int) ([]models.Client, error)
	CountAll() (int64, error)
	Delete(id string) error
}

type ClientRepositoryImpl struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) ClientRepository {
	return &ClientRepositoryImpl{db: db}
}

func (r *ClientRepositoryImpl) FindClientByID(id string) (*models.Client, error) {
	var client models.Client
	err := r.db.First(&client, "id = ? AND deleted = false", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &client, nil
}

func (r *ClientRepositoryImpl) FindByID(id string) (models.Account, error) {
	return r.FindClientByID(id)
}

func (r *ClientRepositoryImpl) FindByEmail(email string) (models.Account, error) {
	var client models.Client
	err := r.db.First(&client, "email = ? AND deleted = false", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &client, nil
}

func (r *ClientRepositoryImpl) Create(account models.Account) error {
	client, ok := account.(*models.Client)
	if !ok {
		return errors.New("account is not a client")
	}
	var existing models.Client
	if err := r.db.Where("email = ?", client.Email).First(&existing).Error; err == nil {
		return ErrAccountAlreadyExists
	}
	return r.db.Create(client).Error
}

func (r *ClientRepositoryImpl) Save(account models.Account) error {
	client, ok := account.(*models.Client)
	if !ok {
		return errors.New("account is not a client")
	}
	return r.db.Save(client).Error
}

func (r *ClientRepositoryImpl) FindAll(limit, offset int) ([]models.Client, error) {
	var clients []models.Client
	err := r.db.Where("deleted = false").
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&clients).Error
	return clients, err
}

func (r *ClientRepositoryImpl) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.Client{}).Where("deleted = false").Count(&count).Error
	return count, err
}

func (r *ClientRepositoryImpl) Delete(id string) error {
	result := r.db.Model(&models.Client{}).Where("id = ?", id).Update("deleted", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}
	return nil
}

// --- Business ---

type BusinessRepository interface {
	CredentialStore
	FindBusinessByID(id string) (*models.Business, error)
	FindByStatus(status models.AccountStatus, limit, offset int) ([]models.Business, error)
	FindAll(limit, offset int) ([]models.Business, error)
	CountAll() (int64, error)
	Delete(id string) error
	ReplaceCategories(business *models.Business, categories []models.Category) error
}

type BusinessRepositoryImpl struct {
	db *gorm.DB
}

func NewBusinessRepository(db *gorm.DB) BusinessRepository {
	return &BusinessRepositoryImpl{db: db}
}

func (r *BusinessRepositoryImpl) FindBusinessByID(id string) (*models.Business, error) {
	var business models.Business
	err := r.db.Preload("Categories").Preload("Branches", "deleted = false").
		First(&business, "id = ? AND deleted = false", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &business, nil
}

func (r *BusinessRepositoryImpl) FindByID(id string) (models.Account, error) {
	return r.FindBusinessByID(id)
}

func (r *BusinessRepositoryImpl) FindByEmail(email string) (models.Account, error) {
	var business models.Business
	err := r.db.First(&business, "email = ? AND deleted = false", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &business, nil
}

func (r *BusinessRepositoryImpl) Create(account models.Account) error {
	business, ok := account.(*models.Business)
	if !ok {
		return errors.New("account is not a business")
	}
	var existing models.Business
	if err := r.db.Where("email = ?", business.Email).First(&existing).Error; err == nil {
		return ErrAccountAlreadyExists
	}
	return r.db.Create(business).Error
}

func (r *BusinessRepositoryImpl) Save(account models.Account) error {
	business, ok := account.(*models.Business)
	if !ok {
		return errors.New("account is not a business")
	}
	return r.db.Omit("Categories", "Branches", "Services").Save(business).Error
}

func (r *BusinessRepositoryImpl) FindByStatus(status models.AccountStatus, limit, offset int) ([]models.Business, error) {
	var businesses []models.Business
	err := r.db.Where("status = ? AND deleted = false", status).
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&businesses).Error
	return businesses, err
}

func (r *BusinessRepositoryImpl) FindAll(limit, offset int) ([]models.Business, error) {
	var businesses []models.Business
	err := r.db.Where("deleted = false").
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&businesses).Error
	return businesses, err
}

func (r *BusinessRepositoryImpl) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.Business{}).Where("deleted = false").Count(&count).Error
	return count, err
}

func (r *BusinessRepositoryImpl) Delete(id string) error {
	result := r.db.Model(&models.Business{}).Where("id = ?", id).Update("deleted", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}
	return nil
}

func (r *BusinessRepositoryImpl) ReplaceCategories(business *models.Business, categories []models.Category) error {
	return r.db.Model(business).Association("Categories").Replace(categories)
}

// --- Admin ---

type AdminRepository interface {
	CredentialStore
	Count() (int64, error)
}

type AdminRepositoryImpl struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &AdminRepositoryImpl{db: db}
}

func (r *AdminRepositoryImpl) FindByID(id string) (models.Account, error) {
	var admin models.Admin
	err := r.db.First(&admin, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &admin, nil
}

func (r *AdminRepositoryImpl) FindByEmail(email string) (models.Account, error) {
	var admin models.Admin
	err := r.db.First(&admin, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &admin, nil
}

func (r *AdminRepositoryImpl) Create(account models.Account) error {
	admin, ok := account.(*models.Admin)
	if !ok {
		return errors.New("account is not an admin")
	}
	var existing models.Admin
	if err := r.db.Where("email = ?", admin.Email).First(&existing).Error; err == nil {
		return ErrAccountAlreadyExists
	}
	return r.db.Create(admin).Error
}

func (r *AdminRepositoryImpl) Save(account models.Account) error {
	admin, ok := account.(*models.Admin)
	if !ok {
		return errors.New("account is not an admin")
	}
	return r.db.Save(admin).Error
}

func (r *AdminRepositoryImpl) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Admin{}).Count(&count).Error
	return count, err
}
