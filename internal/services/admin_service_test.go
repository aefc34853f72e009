package services

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"servhub_backend/internal/auth"
	"servhub_backend/internal/email"
	"servhub_backend/internal/models"
	"servhub_backend/internal/repositories"
	"servhub_backend/internal/services/dto"
)

type fakeBusinessRepo struct {
	mu         sync.Mutex
	nextID     int
	businesses map[string]*models.Business
}

func newFakeBusinessRepo() *fakeBusinessRepo {
	return &fakeBusinessRepo{businesses: make(map[string]*models.Business)}
}

func (r *fakeBusinessRepo) FindBusinessByID(id string) (*models.Business, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	business, ok := r.businesses[id]
	if !ok || business.Deleted {
		return nil, repositories.ErrAccountNotFound
	}
	return business, nil
}

func (r *fakeBusinessRepo) FindByID(id string) (models.Account, error) {
	return r.FindBusinessByID(id)
}

func (r *fakeBusinessRepo) FindByEmail(email string) (models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, business := range r.businesses {
		if business.Email == email && !business.Deleted {
			return business, nil
		}
	}
	return nil, repositories.ErrAccountNotFound
}

func (r *fakeBusinessRepo) Create(account models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	business := account.(*models.Business)
	for _, existing := range r.businesses {
		if existing.Email == business.Email {
			return repositories.ErrAccountAlreadyExists
		}
	}
	r.nextID++
	business.ID = "business-" + string(rune('0'+r.nextID))
	r.businesses[business.ID] = business
	return nil
}

func (r *fakeBusinessRepo) Save(account models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	business := account.(*models.Business)
	r.businesses[business.ID] = business
	return nil
}

func (r *fakeBusinessRepo) FindByStatus(status models.AccountStatus, limit, offset int) ([]models.Business, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Business
	for _, business := range r.businesses {
		if business.State == status && !business.Deleted {
			out = append(out, *business)
		}
	}
	return out, nil
}

func (r *fakeBusinessRepo) FindAll(limit, offset int) ([]models.Business, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Business
	for _, business := range r.businesses {
		if !business.Deleted {
			out = append(out, *business)
		}
	}
	return out, nil
}

func (r *fakeBusinessRepo) CountAll() (int64, error) {
	all, _ := r.FindAll(0, 0)
	return int64(len(all)), nil
}

func (r *fakeBusinessRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	business, ok := r.businesses[id]
	if !ok {
		return repositories.ErrAccountNotFound
	}
	business.Deleted = true
	return nil
}

func (r *fakeBusinessRepo) ReplaceCategories(business *models.Business, categories []models.Category) error {
	business.Categories = categories
	return r.Save(business)
}

func TestBusinessModerationFlow(t *testing.T) {
	businesses := newFakeBusinessRepo()
	clients := newFakeClientRepo()
	categories := newFakeCategoryRepo()
	mailer := email.NewMockMailer()
	businessSigner := auth.NewSigner("test-business-secret")
	ttls := TokenTTLs{Login: time.Hour, Confirm: time.Hour, Reset: time.Hour}

	branches := newFakeBranchRepo()
	require.NoError(t, categories.Create(&models.Category{
		BaseModel: models.BaseModel{ID: "cat-salons"},
		Type:      models.CategoryTypeBusiness,
		Title:     "Salons",
	}))

	adminSvc := NewAdminService(businesses, clients, categories, businessSigner, mailer, ttls, "http://localhost:3000")
	businessAuth := NewBusinessAuthService(
		NewAuthService(businesses, businessSigner, newFakeLedger(), mailer, ttls, "http://localhost:3000"),
		businesses,
		branches,
		categories,
	)

	// Заявка бизнеса
	_, err := businessAuth.Signup(&dto.BusinessSignupRequest{
		Email:            "salon@test.com",
		Password:         "initial-pass-1",
		ConfirmPassword:  "initial-pass-1",
		Name:             "Salon",
		ShortDescription: "Hair salon",
		PhoneNumbers:     "+77001112233",
	})
	require.NoError(t, err)

	pending, err := adminSvc.PendingBusinesses(1)
	require.NoError(t, err)
	pendingList := pending.Results.([]models.Business)
	require.Len(t, pendingList, 1)
	businessID := pendingList[0].ID

	// Одобрение: статус unverified, в письме токен завершения регистрации
	_, err = adminSvc.ConfirmBusiness(businessID)
	require.NoError(t, err)

	business, err := businesses.FindBusinessByID(businessID)
	require.NoError(t, err)
	assert.Equal(t, models.AccountStatusUnverified, business.State)

	confirmToken := mailer.ConfirmationTokens["salon@test.com"]
	require.NotEmpty(t, confirmToken)

	// Повторное одобрение невозможно: заявка уже не pending
	_, err = adminSvc.ConfirmBusiness(businessID)
	require.Error(t, err)

	// Бизнес завершает регистрацию: пароль, описание, часы работы,
	// категории и филиалы задаются одним запросом
	_, err = businessAuth.CompleteSignup(confirmToken, &dto.BusinessConfirmRequest{
		Password:        "final-pass-22",
		ConfirmPassword: "final-pass-22",
		Description:     "Full-service hair salon downtown",
		WorkingHours:    "Mon-Sat 9:00-20:00",
		CategoryIDs:     []string{"cat-salons"},
		Branches: []dto.BranchRequest{
			{Location: "Downtown", Address: "Abay 10"},
		},
	})
	require.NoError(t, err)

	business, err = businesses.FindBusinessByID(businessID)
	require.NoError(t, err)
	assert.Equal(t, models.AccountStatusConfirmed, business.State)
	assert.Equal(t, "Full-service hair salon downtown", business.Description)
	assert.Equal(t, "Mon-Sat 9:00-20:00", business.WorkingHours)
	require.Len(t, business.Categories, 1)
	assert.Equal(t, "Salons", business.Categories[0].Title)

	branchList, err := branches.FindByBusiness(businessID)
	require.NoError(t, err)
	require.Len(t, branchList, 1)
	assert.Equal(t, "Downtown", branchList[0].Location)

	// Токен завершения одноразовый
	_, err = businessAuth.CompleteSignup(confirmToken, &dto.BusinessConfirmRequest{
		Password:        "again-pass-33",
		ConfirmPassword: "again-pass-33",
	})
	require.Error(t, err)

	login, err := businessAuth.Login(&dto.LoginRequest{Email: "salon@test.com", Password: "final-pass-22"})
	require.NoError(t, err)
	assert.NotEmpty(t, login.Token)
}

func TestDenyBusiness(t *testing.T) {
	businesses := newFakeBusinessRepo()
	mailer := email.NewMockMailer()
	ttls := TokenTTLs{Login: time.Hour, Confirm: time.Hour, Reset: time.Hour}

	adminSvc := NewAdminService(businesses, newFakeClientRepo(), newFakeCategoryRepo(),
		auth.NewSigner("test-business-secret"), mailer, ttls, "http://localhost:3000")

	business := &models.Business{
		Credentials: models.Credentials{Email: "reject@test.com", PasswordHash: "x"},
		Name:        "Rejected Inc",
		State:       models.AccountStatusPending,
	}
	require.NoError(t, businesses.Create(business))

	_, err := adminSvc.DenyBusiness(business.ID)
	require.NoError(t, err)

	got, err := businesses.FindBusinessByID(business.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AccountStatusRejected, got.State)

	// Отклонённую заявку нельзя одобрить
	_, err = adminSvc.ConfirmBusiness(business.ID)
	require.Error(t, err)
}

func TestCategoryCRUD(t *testing.T) {
	categories := newFakeCategoryRepo()
	adminSvc := NewAdminService(newFakeBusinessRepo(), newFakeClientRepo(), categories,
		auth.NewSigner("s"), email.NewMockMailer(),
		TokenTTLs{Login: time.Hour, Confirm: time.Hour, Reset: time.Hour}, "")

	_, err := adminSvc.AddCategory(&dto.CategoryRequest{Type: "Service", Title: "Spa"})
	require.NoError(t, err)

	list, err := adminSvc.ListCategories()
	require.NoError(t, err)
	require.Len(t, list, 1)

	_, err = adminSvc.EditCategory(list[0].ID, &dto.CategoryRequest{Type: "Service", Title: "Wellness"})
	require.NoError(t, err)

	list, err = adminSvc.ListCategories()
	require.NoError(t, err)
	assert.Equal(t, "Wellness", list[0].Title)

	_, err = adminSvc.DeleteCategory(list[0].ID)
	require.NoError(t, err)

	list, err = adminSvc.ListCategories()
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = adminSvc.DeleteCategory("ghost")
	require.Error(t, err)
}
