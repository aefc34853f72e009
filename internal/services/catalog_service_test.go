package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"servhub_backend/internal/messages"
	"servhub_backend/internal/models"
	"servhub_backend/internal/repositories"
	"servhub_backend/internal/services/dto"
	"servhub_backend/pkg/apperrors"
)

type catalogFixture struct {
	svc        *CatalogService
	services   *fakeServiceRepo
	offerings  *fakeOfferingRepo
	branches   *fakeBranchRepo
	categories *fakeCategoryRepo
}

type fakeBranchRepo struct {
	branches map[string]*models.Branch
}

func newFakeBranchRepo() *fakeBranchRepo {
	return &fakeBranchRepo{branches: make(map[string]*models.Branch)}
}

func (r *fakeBranchRepo) FindByID(id string) (*models.Branch, error) {
	branch, ok := r.branches[id]
	if !ok || branch.Deleted {
		return nil, repositories.ErrBranchNotFound
	}
	return branch, nil
}

func (r *fakeBranchRepo) FindByBusiness(businessID string) ([]models.Branch, error) {
	var out []models.Branch
	for _, branch := range r.branches {
		if branch.BusinessID == businessID && !branch.Deleted {
			out = append(out, *branch)
		}
	}
	return out, nil
}

func (r *fakeBranchRepo) Create(branch *models.Branch) error {
	if branch.ID == "" {
		branch.ID = "branch-" + branch.Location
	}
	r.branches[branch.ID] = branch
	return nil
}

func (r *fakeBranchRepo) Update(branch *models.Branch) error {
	if _, ok := r.branches[branch.ID]; !ok {
		return repositories.ErrBranchNotFound
	}
	r.branches[branch.ID] = branch
	return nil
}

func (r *fakeBranchRepo) Delete(id string) error {
	branch, ok := r.branches[id]
	if !ok {
		return repositories.ErrBranchNotFound
	}
	branch.Deleted = true
	return nil
}

func newCatalogFixture(t *testing.T) *catalogFixture {
	t.Helper()

	f := &catalogFixture{
		services:   newFakeServiceRepo(),
		offerings:  newFakeOfferingRepo(),
		branches:   newFakeBranchRepo(),
		categories: newFakeCategoryRepo(),
	}
	f.svc = NewCatalogService(f.services, f.offerings, f.branches, f.categories)

	require.NoError(t, f.branches.Create(&models.Branch{
		BaseModel:  models.BaseModel{ID: "branch-1"},
		BusinessID: "biz-1",
		Location:   "Downtown",
	}))
	require.NoError(t, f.categories.Create(&models.Category{
		BaseModel: models.BaseModel{ID: "cat-1"},
		Type:      models.CategoryTypeService,
		Title:     "Hair",
	}))

	return f
}

func TestCreateServiceWithCategories(t *testing.T) {
	f := newCatalogFixture(t)

	_, err := f.svc.CreateService("biz-1", &dto.CreateServiceRequest{
		Name:             "Haircut",
		ShortDescription: "Quick haircut",
		CategoryIDs:      []string{"cat-1"},
	})
	require.NoError(t, err)

	services, err := f.svc.ListOwn("biz-1")
	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.Equal(t, "Haircut", services[0].Name)
}

func TestCreateServiceRejectsBusinessCategory(t *testing.T) {
	f := newCatalogFixture(t)

	require.NoError(t, f.categories.Create(&models.Category{
		BaseModel: models.BaseModel{ID: "cat-biz"},
		Type:      models.CategoryTypeBusiness,
		Title:     "Salons",
	}))

	_, err := f.svc.CreateService("biz-1", &dto.CreateServiceRequest{
		Name:             "Haircut",
		ShortDescription: "Quick haircut",
		CategoryIDs:      []string{"cat-biz"},
	})
	require.Error(t, err)
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, messages.CatalogErrors.InvalidCategory, appErr.Message)
}

func TestEditServiceEnforcesOwnership(t *testing.T) {
	f := newCatalogFixture(t)

	_, err := f.svc.CreateService("biz-1", &dto.CreateServiceRequest{
		Name:             "Haircut",
		ShortDescription: "Quick haircut",
	})
	require.NoError(t, err)

	services, err := f.svc.ListOwn("biz-1")
	require.NoError(t, err)
	serviceID := services[0].ID

	_, err = f.svc.EditService("biz-2", serviceID, &dto.UpdateServiceRequest{
		Name:             "Hijacked",
		ShortDescription: "x",
	})
	require.Error(t, err)
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, messages.CatalogErrors.InvalidOperation, appErr.Message)

	_, err = f.svc.EditService("biz-1", serviceID, &dto.UpdateServiceRequest{
		Name:             "Haircut Deluxe",
		ShortDescription: "Better haircut",
	})
	require.NoError(t, err)
}

func TestOfferingBranchMustBelongToBusiness(t *testing.T) {
	f := newCatalogFixture(t)

	require.NoError(t, f.branches.Create(&models.Branch{
		BaseModel:  models.BaseModel{ID: "branch-foreign"},
		BusinessID: "biz-2",
		Location:   "Elsewhere",
	}))

	_, err := f.svc.CreateService("biz-1", &dto.CreateServiceRequest{
		Name:             "Haircut",
		ShortDescription: "Quick haircut",
	})
	require.NoError(t, err)
	services, _ := f.svc.ListOwn("biz-1")
	serviceID := services[0].ID

	_, err = f.svc.CreateOffering("biz-1", serviceID, &dto.OfferingRequest{
		BranchID:  "branch-foreign",
		StartDate: "2026-09-01",
		EndDate:   "2026-09-30",
		Price:     50,
	})
	require.Error(t, err)
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, messages.CatalogErrors.InvalidBranch, appErr.Message)

	// Свой филиал принимается, локация копируется из него
	_, err = f.svc.CreateOffering("biz-1", serviceID, &dto.OfferingRequest{
		BranchID:  "branch-1",
		StartDate: "2026-09-01",
		EndDate:   "2026-09-30",
		Price:     50,
	})
	require.NoError(t, err)

	offerings, err := f.offerings.FindByService(serviceID)
	require.NoError(t, err)
	require.Len(t, offerings, 1)
	assert.Equal(t, "Downtown", offerings[0].Location)
	assert.Equal(t, float64(50), offerings[0].Price)
}

func TestOfferingRejectsInvertedDates(t *testing.T) {
	f := newCatalogFixture(t)

	_, err := f.svc.CreateService("biz-1", &dto.CreateServiceRequest{
		Name:             "Haircut",
		ShortDescription: "Quick haircut",
	})
	require.NoError(t, err)
	services, _ := f.svc.ListOwn("biz-1")

	_, err = f.svc.CreateOffering("biz-1", services[0].ID, &dto.OfferingRequest{
		BranchID:  "branch-1",
		StartDate: "2026-09-30",
		EndDate:   "2026-09-01",
		Price:     50,
	})
	require.Error(t, err)
}

func TestDeleteServiceCascadesToOfferings(t *testing.T) {
	f := newCatalogFixture(t)

	_, err := f.svc.CreateService("biz-1", &dto.CreateServiceRequest{
		Name:             "Haircut",
		ShortDescription: "Quick haircut",
	})
	require.NoError(t, err)
	services, _ := f.svc.ListOwn("biz-1")
	serviceID := services[0].ID

	_, err = f.svc.CreateOffering("biz-1", serviceID, &dto.OfferingRequest{
		BranchID:  "branch-1",
		StartDate: "2026-09-01",
		EndDate:   "2026-09-30",
		Price:     50,
	})
	require.NoError(t, err)

	_, err = f.svc.DeleteService("biz-1", serviceID)
	require.NoError(t, err)

	remaining, err := f.offerings.FindByService(serviceID)
	require.NoError(t, err)
	assert.Empty(t, remaining)

	_, err = f.svc.ListOwn("biz-1")
	require.NoError(t, err)
	left, _ := f.services.FindByBusiness("biz-1")
	assert.Empty(t, left)
}
